package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// RunRecord is one row per assignment run: what was scheduled and how evenly
// it came out. Scheduling state itself is never persisted; these rows are an
// audit trail.
type RunRecord struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	RunID             string    `gorm:"unique;not null" json:"run_id"`
	Year              int       `gorm:"not null" json:"year"`
	Month             int       `gorm:"not null" json:"month"`
	MemberCount       int       `json:"member_count"`
	SlotCount         int       `json:"slot_count"`
	SupplementalCount int       `json:"supplemental_count"`
	Spread            int       `json:"spread"`
	CreatedAt         time.Time `json:"created_at"`
}

// RunStats aggregates runs per calendar day, upserted on each request.
type RunStats struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Date         string `gorm:"uniqueIndex;not null" json:"date"`
	RequestCount int    `gorm:"default:0" json:"request_count"`
	TotalSlots   int    `gorm:"default:0" json:"total_slots"`
	TotalMembers int    `gorm:"default:0" json:"total_members"`
}

// InitDB initializes the database connection and migrates the schema.
// DATABASE_URL selects Postgres; otherwise a local SQLite file at DATA_PATH
// (default rota.db) is used.
func InitDB() *gorm.DB {
	var db *gorm.DB
	var err error

	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	} else {
		dbPath := os.Getenv("DATA_PATH")
		if dbPath == "" {
			dbPath = "rota.db"
		}
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	}

	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	db.AutoMigrate(&RunRecord{}, &RunStats{})

	return db
}

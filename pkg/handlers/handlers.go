package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/toolsched/rota-api-go/pkg/database"
	"github.com/toolsched/rota-api-go/pkg/models"
	"github.com/toolsched/rota-api-go/pkg/session"
)

// Handler contains dependencies for the route handlers.
type Handler struct {
	DB      *gorm.DB
	Session *session.Store
}

// GenerateSchedule runs one assignment pass and returns the filled schedule
// with per-member counts and the load spread.
func (h *Handler) GenerateSchedule(c *gin.Context) {
	var input models.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.Session.Generate(input)
	if err != nil {
		status := http.StatusInternalServerError
		var cfgErr *models.ConfigError
		if errors.Is(err, models.ErrInsufficientRoster) ||
			errors.Is(err, models.ErrEmptyCatalog) ||
			errors.As(err, &cfgErr) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	h.RecordRun(resp)
	c.JSON(http.StatusOK, resp)
}

// RecordRun writes the audit rows for a completed run: a per-run record plus
// a single-query upsert into the daily stats, the latter supported by both
// Postgres and SQLite. A nil DB (tests, stateless deployments) records
// nothing.
func (h *Handler) RecordRun(resp models.ScheduleResponse) {
	if h.DB == nil {
		return
	}

	h.DB.Create(&database.RunRecord{
		RunID:             uuid.NewString(),
		Year:              resp.Year,
		Month:             resp.Month,
		MemberCount:       len(resp.ShiftsPerMember),
		SlotCount:         len(resp.Schedule),
		SupplementalCount: resp.Supplemental,
		Spread:            resp.Spread,
	})

	today := time.Now().Format("2006-01-02")
	h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"request_count": gorm.Expr("request_count + ?", 1),
			"total_slots":   gorm.Expr("total_slots + ?", len(resp.Schedule)),
			"total_members": gorm.Expr("total_members + ?", len(resp.ShiftsPerMember)),
		}),
	}).Create(&database.RunStats{
		Date:         today,
		RequestCount: 1,
		TotalSlots:   len(resp.Schedule),
		TotalMembers: len(resp.ShiftsPerMember),
	})
}

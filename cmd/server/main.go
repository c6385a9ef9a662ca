package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/toolsched/rota-api-go/pkg/database"
	"github.com/toolsched/rota-api-go/pkg/handlers"
	"github.com/toolsched/rota-api-go/pkg/session"
)

func main() {
	// Load .env if it exists
	// Try root and parent directories for flexibility
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.InitDB()
	h := &handlers.Handler{DB: db, Session: session.NewStore()}

	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Rota Planner API",
			"version": "1.0.0",
		})
	})

	api := r.Group("/api")
	{
		api.POST("/schedule", h.GenerateSchedule)
		api.POST("/validate", h.ValidateInput)

		api.GET("/config/export", h.ExportConfig)
		api.POST("/config/import", h.ImportConfig)

		api.GET("/export/csv", h.ExportCSV)
		api.GET("/export/ics", h.ExportICS)
		api.GET("/export/xlsx", h.ExportXLSX)
		api.GET("/export/grid", h.ExportGrid)

		api.POST("/swaps", h.CreateSwap)
		api.GET("/swaps", h.ListSwaps)
		api.POST("/swaps/:id/approve", h.ApproveSwap)
		api.POST("/swaps/:id/reject", h.RejectSwap)

		api.GET("/runs", h.GetRuns)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("could not run server: %v", err)
	}
}

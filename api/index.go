package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/toolsched/rota-api-go/pkg/database"
	"github.com/toolsched/rota-api-go/pkg/handlers"
	"github.com/toolsched/rota-api-go/pkg/session"
)

var r *gin.Engine

func init() {
	// Load .env if it exists (for local testing with vercel dev)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	db := database.InitDB()
	h := &handlers.Handler{DB: db, Session: session.NewStore()}

	gin.SetMode(gin.ReleaseMode)
	r = gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Rota Planner API (Vercel)",
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
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, r_req *http.Request) {
	r.ServeHTTP(w, r_req)
}

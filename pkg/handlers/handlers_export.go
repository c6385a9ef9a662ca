package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/toolsched/rota-api-go/pkg/export"
	"github.com/toolsched/rota-api-go/pkg/models"
)

// ExportConfig returns the session configuration as the YAML interchange
// document.
func (h *Handler) ExportConfig(c *gin.Context) {
	data, err := h.Session.Export(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="schedule_config.yaml"`)
	c.Data(http.StatusOK, "application/x-yaml", data)
}

// ImportConfig merge-replaces session state from an uploaded interchange
// document. Parse failures and well-formed-but-empty documents get distinct
// errors.
func (h *Handler) ImportConfig(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.Session.Import(data)
	if err != nil {
		status := http.StatusBadRequest
		kind := "invalid_configuration"
		switch {
		case errors.Is(err, models.ErrMalformedDocument):
			kind = "malformed_document"
		case errors.Is(err, models.ErrEmptyDocument):
			kind = "empty_document"
		}
		c.JSON(status, gin.H{"error": err.Error(), "kind": kind})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imported": summary})
}

// currentSchedule fetches the session schedule, replying 404 when no run has
// happened yet.
func (h *Handler) currentSchedule(c *gin.Context) (models.Schedule, int, int, bool) {
	sched, year, month := h.Session.Schedule()
	if len(sched) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no schedule generated yet"})
		return nil, 0, 0, false
	}
	return sched, year, month, true
}

// ExportCSV streams the current schedule as delimited rows.
func (h *Handler) ExportCSV(c *gin.Context) {
	sched, year, month, ok := h.currentSchedule(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, sched); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="schedule_%d_%02d.csv"`, year, month))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// ExportICS streams the current schedule as an iCalendar event stream.
func (h *Handler) ExportICS(c *gin.Context) {
	sched, year, month, ok := h.currentSchedule(c)
	if !ok {
		return
	}
	ics, err := export.ICS(sched)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="schedule_%d_%02d.ics"`, year, month))
	c.Data(http.StatusOK, "text/calendar", []byte(ics))
}

// ExportXLSX streams the current schedule as the three-sheet workbook.
func (h *Handler) ExportXLSX(c *gin.Context) {
	sched, year, month, ok := h.currentSchedule(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, sched, year, month); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="schedule_%d_%02d.xlsx"`, year, month))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// ExportGrid returns the month-grid report as JSON.
func (h *Handler) ExportGrid(c *gin.Context) {
	sched, year, month, ok := h.currentSchedule(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, export.MonthGrid(sched, year, month))
}

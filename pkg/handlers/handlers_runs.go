package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/toolsched/rota-api-go/pkg/database"
)

// GetRuns returns the most recent run-history rows with aggregate totals.
func (h *Handler) GetRuns(c *gin.Context) {
	if h.DB == nil {
		c.JSON(http.StatusOK, gin.H{"runs": []database.RunRecord{}, "totals": gin.H{}})
		return
	}

	var runs []database.RunRecord
	if err := h.DB.Order("created_at desc").Limit(30).Find(&runs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch run history"})
		return
	}

	var totalRuns, totalSlots, totalSupplemental int64
	for _, r := range runs {
		totalRuns++
		totalSlots += int64(r.SlotCount)
		totalSupplemental += int64(r.SupplementalCount)
	}

	c.JSON(http.StatusOK, gin.H{
		"runs": runs,
		"totals": gin.H{
			"runs":         totalRuns,
			"slots":        totalSlots,
			"supplemental": totalSupplemental,
		},
	})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/toolsched/rota-api-go/pkg/models"
)

// ValidateInput checks a scheduling request without running it: roster size,
// duplicate members, a usable shift configuration, and fixed rules that name
// shift types their weekday actually defines.
func (h *Handler) ValidateInput(c *gin.Context) {
	var input models.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	if len(input.TeamMembers) < 2 {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": models.ErrInsufficientRoster.Error(),
		})
		return
	}

	seen := make(map[string]bool)
	for _, m := range input.TeamMembers {
		if seen[m] {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Duplicate team member: " + m})
			return
		}
		seen[m] = true
	}

	if input.ShiftConfiguration.TotalShiftTypes() == 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": models.ErrEmptyCatalog.Error(),
		})
		return
	}
	if err := input.ShiftConfiguration.Validate(); err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": err.Error()})
		return
	}
	if err := input.Constraints.Validate(input.ShiftConfiguration); err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"stats": gin.H{
			"member_count":     len(input.TeamMembers),
			"shift_type_count": input.ShiftConfiguration.TotalShiftTypes(),
		},
	})
}

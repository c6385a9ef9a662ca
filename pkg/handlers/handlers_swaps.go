package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/toolsched/rota-api-go/pkg/models"
)

// CreateSwap records a pending shift exchange request against the current
// schedule.
func (h *Handler) CreateSwap(c *gin.Context) {
	var req models.SwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.FromMember == "" || req.ToMember == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from_member and to_member are required"})
		return
	}

	created, err := h.Session.AddSwap(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, created)
}

// ListSwaps returns all swap requests for the current schedule.
func (h *Handler) ListSwaps(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"swaps": h.Session.Swaps()})
}

// ApproveSwap executes a pending exchange and marks it completed.
func (h *Handler) ApproveSwap(c *gin.Context) {
	req, err := h.Session.ResolveSwap(c.Param("id"), true)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, req)
}

// RejectSwap declines a pending exchange, leaving the schedule untouched.
func (h *Handler) RejectSwap(c *gin.Context) {
	req, err := h.Session.ResolveSwap(c.Param("id"), false)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, req)
}

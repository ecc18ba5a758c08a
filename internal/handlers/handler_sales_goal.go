package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/retailcore/cashdesk/internal/core/ports/services"
	"github.com/retailcore/cashdesk/internal/dto"
	"github.com/retailcore/cashdesk/internal/middleware"
)

// salesGoalHandler serves sales goal reads for the cashier UI.
type salesGoalHandler struct {
	salesGoalService portssvc.SalesGoalSvcFacade
}

func newSalesGoalHandler(gs portssvc.SalesGoalSvcFacade) *salesGoalHandler {
	return &salesGoalHandler{salesGoalService: gs}
}

// RegisterSalesGoalRoutes registers routes related to sales goals.
func RegisterSalesGoalRoutes(rg *gin.RouterGroup, salesGoalService portssvc.SalesGoalSvcFacade) {
	h := newSalesGoalHandler(salesGoalService)

	goals := rg.Group("/sales-goals")
	{
		goals.GET("/current", h.currentGoal)
	}
}

func (h *salesGoalHandler) currentGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	goal, err := h.salesGoalService.CurrentGoal(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve sales goal")
		return
	}

	c.JSON(http.StatusOK, dto.ToSalesGoalResponse(goal))
}

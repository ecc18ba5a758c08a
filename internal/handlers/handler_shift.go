package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/retailcore/cashdesk/internal/core/ports/services"
	"github.com/retailcore/cashdesk/internal/dto"
	"github.com/retailcore/cashdesk/internal/middleware"
)

// shiftHandler handles HTTP requests related to cash shifts.
type shiftHandler struct {
	shiftService portssvc.ShiftSvcFacade
}

func newShiftHandler(ss portssvc.ShiftSvcFacade) *shiftHandler {
	return &shiftHandler{shiftService: ss}
}

// RegisterShiftRoutes registers routes related to shifts.
func RegisterShiftRoutes(rg *gin.RouterGroup, shiftService portssvc.ShiftSvcFacade) {
	h := newShiftHandler(shiftService)

	shifts := rg.Group("/shifts")
	{
		shifts.POST("", h.openShift)
		shifts.GET("/open", h.findOpenShift)
		shifts.GET("/:id/balances", h.shiftBalances)
		shifts.GET("/:id/sales", h.shiftSales)
		shifts.POST("/:id/close", h.closeShift)
	}
}

func (h *shiftHandler) openShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.OpenShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for OpenShift", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	shift, err := h.shiftService.OpenShift(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to open shift")
		return
	}

	c.JSON(http.StatusCreated, dto.ToShiftResponse(shift))
}

func (h *shiftHandler) findOpenShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	branchID := c.Query("branchID")
	if branchID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "branchID query parameter is required"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	shift, err := h.shiftService.FindOpenShift(c.Request.Context(), branchID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to find open shift")
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

func (h *shiftHandler) shiftBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("id")

	balances, err := h.shiftService.ShiftBalances(c.Request.Context(), shiftID)
	if err != nil {
		respondError(c, logger, err, "Failed to compute shift balances")
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftBalancesResponse(*balances))
}

func (h *shiftHandler) shiftSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("id")

	sales, err := h.shiftService.ListShiftSales(c.Request.Context(), shiftID)
	if err != nil {
		respondError(c, logger, err, "Failed to list shift sales")
		return
	}

	c.JSON(http.StatusOK, gin.H{"sales": dto.ToSaleResponses(sales)})
}

func (h *shiftHandler) closeShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("id")

	var req dto.CloseShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CloseShift", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	shift, err := h.shiftService.CloseShift(c.Request.Context(), shiftID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to close shift")
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

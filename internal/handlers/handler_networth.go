package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/finbuddy/finbuddy_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// netWorthHandler handles HTTP requests for net worth reporting.
type netWorthHandler struct {
	netWorthService portssvc.NetWorthSvc
}

func newNetWorthHandler(ns portssvc.NetWorthSvc) *netWorthHandler {
	return &netWorthHandler{netWorthService: ns}
}

// registerNetWorthRoutes registers routes related to net worth reporting.
func registerNetWorthRoutes(rg *gin.RouterGroup, netWorthService portssvc.NetWorthSvc) {
	h := newNetWorthHandler(netWorthService)

	networth := rg.Group("/networth")
	{
		networth.GET("", h.getNetWorthSummary)
		networth.GET("/loans", h.getLoanBreakdown)
	}
}

// asOfOrNow parses the optional asOf query parameter (RFC 3339 or YYYY-MM-DD).
func asOfOrNow(c *gin.Context) (time.Time, bool) {
	raw := c.Query("asOf")
	if raw == "" {
		return time.Now().UTC(), true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid asOf parameter, expected RFC 3339 timestamp or YYYY-MM-DD"})
	return time.Time{}, false
}

// getNetWorthSummary godoc
// @Summary Get net worth summary
// @Description Computes the logged-in user's net worth from account balances and loan positions, with per-type breakdowns.
// @Tags networth
// @Produce json
// @Param asOf query string false "Reference time for overdue checks (RFC 3339 or YYYY-MM-DD, defaults to now)"
// @Success 200 {object} domain.NetWorthSummary
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /networth [get]
func (h *netWorthHandler) getNetWorthSummary(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	asOf, ok := asOfOrNow(c)
	if !ok {
		return
	}

	summary, err := h.netWorthService.GetNetWorthSummary(c.Request.Context(), userID, asOf)
	if err != nil {
		respondServiceError(c, err, "Failed to compute net worth")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// getLoanBreakdown godoc
// @Summary Get loan breakdown
// @Description Summarizes the logged-in user's loans per direction, including active and overdue counts.
// @Tags networth
// @Produce json
// @Param asOf query string false "Reference time for overdue checks (RFC 3339 or YYYY-MM-DD, defaults to now)"
// @Success 200 {array} domain.LoanTypeBreakdown
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /networth/loans [get]
func (h *netWorthHandler) getLoanBreakdown(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	asOf, ok := asOfOrNow(c)
	if !ok {
		return
	}

	breakdown, err := h.netWorthService.GetLoanBreakdown(c.Request.Context(), userID, asOf)
	if err != nil {
		respondServiceError(c, err, "Failed to compute loan breakdown")
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

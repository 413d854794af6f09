package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/finbuddy/finbuddy_backend/internal/core/domain"
	portssvc "github.com/finbuddy/finbuddy_backend/internal/core/ports/services"
	"github.com/finbuddy/finbuddy_backend/internal/dto"
	"github.com/finbuddy/finbuddy_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// recurringExpenseHandler handles HTTP requests related to recurring expenses.
type recurringExpenseHandler struct {
	recurringService portssvc.RecurringExpenseSvcFacade
}

func newRecurringExpenseHandler(rs portssvc.RecurringExpenseSvcFacade) *recurringExpenseHandler {
	return &recurringExpenseHandler{recurringService: rs}
}

// registerRecurringExpenseRoutes registers routes related to recurring expenses.
func registerRecurringExpenseRoutes(rg *gin.RouterGroup, recurringService portssvc.RecurringExpenseSvcFacade) {
	h := newRecurringExpenseHandler(recurringService)

	recurring := rg.Group("/recurring-expenses")
	{
		recurring.POST("", h.createRecurringExpense)
		recurring.GET("", h.listRecurringExpenses)
		recurring.GET("/:id", h.getRecurringExpense)
		recurring.POST("/:id/pay", h.markAsPaid)
		recurring.POST("/:id/pause", h.pause)
		recurring.POST("/:id/resume", h.resume)
		recurring.POST("/:id/cancel", h.cancel)
		recurring.POST("/process-due", h.processDue)
	}
}

// createRecurringExpense godoc
// @Summary Create a recurring expense
// @Description Creates a recurring expense template. The first due date is derived from the start date and frequency.
// @Tags recurring-expenses
// @Accept json
// @Produce json
// @Param expense body dto.CreateRecurringExpenseRequest true "Recurring expense details"
// @Success 201 {object} dto.RecurringExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recurring-expenses [post]
func (h *recurringExpenseHandler) createRecurringExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateRecurringExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createRecurringExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	expense, err := h.recurringService.CreateRecurringExpense(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create recurring expense")
		return
	}

	logger.Info("Recurring expense created", slog.String("recurring_expense_id", expense.RecurringExpenseID))
	c.JSON(http.StatusCreated, dto.ToRecurringExpenseResponse(expense))
}

// getRecurringExpense godoc
// @Summary Get a recurring expense by ID
// @Tags recurring-expenses
// @Produce json
// @Param id path string true "Recurring expense ID"
// @Success 200 {object} dto.RecurringExpenseResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recurring-expenses/{id} [get]
func (h *recurringExpenseHandler) getRecurringExpense(c *gin.Context) {
	expenseID := c.Param("id")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	expense, err := h.recurringService.GetRecurringExpenseByID(c.Request.Context(), expenseID, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve recurring expense")
		return
	}

	c.JSON(http.StatusOK, dto.ToRecurringExpenseResponse(expense))
}

// listRecurringExpenses godoc
// @Summary List recurring expenses
// @Tags recurring-expenses
// @Produce json
// @Success 200 {array} dto.RecurringExpenseResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recurring-expenses [get]
func (h *recurringExpenseHandler) listRecurringExpenses(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	expenses, err := h.recurringService.ListRecurringExpenses(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list recurring expenses")
		return
	}

	c.JSON(http.StatusOK, dto.ToListRecurringExpenseResponse(expenses))
}

// markAsPaid godoc
// @Summary Mark a recurring expense as paid
// @Description Pays the current occurrence: debits the linked account, emits an expense transaction and advances the next due date, all in one unit of work.
// @Tags recurring-expenses
// @Produce json
// @Param id path string true "Recurring expense ID"
// @Success 200 {object} dto.RecurringExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recurring-expenses/{id}/pay [post]
func (h *recurringExpenseHandler) markAsPaid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("id")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	expense, err := h.recurringService.MarkAsPaid(c.Request.Context(), expenseID, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to mark recurring expense as paid")
		return
	}

	logger.Info("Recurring expense paid",
		slog.String("recurring_expense_id", expenseID),
		slog.Time("next_due_date", expense.NextDueDate),
	)
	c.JSON(http.StatusOK, dto.ToRecurringExpenseResponse(expense))
}

// pause godoc
// @Summary Pause a recurring expense
// @Tags recurring-expenses
// @Produce json
// @Param id path string true "Recurring expense ID"
// @Success 200 {object} dto.RecurringExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recurring-expenses/{id}/pause [post]
func (h *recurringExpenseHandler) pause(c *gin.Context) {
	h.transition(c, h.recurringService.Pause, "Failed to pause recurring expense")
}

// resume godoc
// @Summary Resume a paused recurring expense
// @Tags recurring-expenses
// @Produce json
// @Param id path string true "Recurring expense ID"
// @Success 200 {object} dto.RecurringExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recurring-expenses/{id}/resume [post]
func (h *recurringExpenseHandler) resume(c *gin.Context) {
	h.transition(c, h.recurringService.Resume, "Failed to resume recurring expense")
}

// cancel godoc
// @Summary Cancel a recurring expense
// @Tags recurring-expenses
// @Produce json
// @Param id path string true "Recurring expense ID"
// @Success 200 {object} dto.RecurringExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recurring-expenses/{id}/cancel [post]
func (h *recurringExpenseHandler) cancel(c *gin.Context) {
	h.transition(c, h.recurringService.Cancel, "Failed to cancel recurring expense")
}

// transition runs one of the status transition operations against the path id.
func (h *recurringExpenseHandler) transition(c *gin.Context, op func(ctx context.Context, expenseID string, userID string) (*domain.RecurringExpense, error), fallback string) {
	expenseID := c.Param("id")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	expense, err := op(c.Request.Context(), expenseID, userID)
	if err != nil {
		respondServiceError(c, err, fallback)
		return
	}

	c.JSON(http.StatusOK, dto.ToRecurringExpenseResponse(expense))
}

// processDue godoc
// @Summary Process due recurring expenses
// @Description Pays every ACTIVE auto-pay expense due today for the logged-in user. Each expense commits independently; failures are reported per item.
// @Tags recurring-expenses
// @Produce json
// @Success 200 {object} dto.ProcessDueResult
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recurring-expenses/process-due [post]
func (h *recurringExpenseHandler) processDue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	result, err := h.recurringService.ProcessDueRecurringExpenses(c.Request.Context(), userID, time.Now().UTC())
	if err != nil {
		respondServiceError(c, err, "Failed to process due recurring expenses")
		return
	}

	logger.Info("Processed due recurring expenses",
		slog.Int("examined", result.Examined),
		slog.Int("paid", result.Paid),
		slog.Int("skipped", result.Skipped),
		slog.Int("failures", len(result.Failures)),
	)
	c.JSON(http.StatusOK, result)
}

package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/finbuddy/finbuddy_backend/internal/core/ports/services"
	"github.com/finbuddy/finbuddy_backend/internal/dto"
	"github.com/finbuddy/finbuddy_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// loanHandler handles HTTP requests related to loans.
type loanHandler struct {
	loanService portssvc.LoanSvcFacade
}

func newLoanHandler(ls portssvc.LoanSvcFacade) *loanHandler {
	return &loanHandler{loanService: ls}
}

// registerLoanRoutes registers routes related to loans.
func registerLoanRoutes(rg *gin.RouterGroup, loanService portssvc.LoanSvcFacade) {
	h := newLoanHandler(loanService)

	loans := rg.Group("/loans")
	{
		loans.POST("", h.createLoan)
		loans.GET("", h.listLoans)
		loans.GET("/:id", h.getLoan)
		loans.POST("/:id/payments", h.recordPayment)
		loans.POST("/:id/installments", h.recordInstallmentPayment)
		loans.PUT("/:id/urgent", h.markAsUrgent)
		loans.DELETE("/:id/urgent", h.markAsNotUrgent)
	}
}

// createLoan godoc
// @Summary Create a new loan
// @Description Records money lent to or borrowed from a counterparty. When a linked account is given, the principal moves through it atomically.
// @Tags loans
// @Accept json
// @Produce json
// @Param loan body dto.CreateLoanRequest true "Loan details"
// @Success 201 {object} dto.LoanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans [post]
func (h *loanHandler) createLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createLoan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	loan, err := h.loanService.CreateLoan(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create loan")
		return
	}

	logger.Info("Loan created", slog.String("loan_id", loan.LoanID), slog.String("loan_type", string(loan.LoanType)))
	c.JSON(http.StatusCreated, dto.ToLoanResponse(loan))
}

// getLoan godoc
// @Summary Get a loan by ID
// @Description Retrieves details for one of the logged-in user's loans.
// @Tags loans
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} dto.LoanResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans/{id} [get]
func (h *loanHandler) getLoan(c *gin.Context) {
	loanID := c.Param("id")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	loan, err := h.loanService.GetLoanByID(c.Request.Context(), loanID, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve loan")
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

// listLoans godoc
// @Summary List loans
// @Description Lists the logged-in user's loans, optionally filtered by direction, status or overdue state.
// @Tags loans
// @Produce json
// @Param type query string false "Loan type filter (LENT or BORROWED)"
// @Param status query string false "Loan status filter"
// @Param overdue query bool false "Only loans past their due date"
// @Success 200 {array} dto.LoanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans [get]
func (h *loanHandler) listLoans(c *gin.Context) {
	var params dto.ListLoansParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	loans, err := h.loanService.ListLoans(c.Request.Context(), userID, params)
	if err != nil {
		respondServiceError(c, err, "Failed to list loans")
		return
	}

	c.JSON(http.StatusOK, dto.ToListLoanResponse(loans))
}

// recordPayment godoc
// @Summary Record a loan payment
// @Description Records a payment against a loan through its linked account, if any. Updates paid/remaining amounts and the loan status.
// @Tags loans
// @Accept json
// @Produce json
// @Param id path string true "Loan ID"
// @Param payment body dto.RecordLoanPaymentRequest true "Payment details"
// @Success 200 {object} dto.LoanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans/{id}/payments [post]
func (h *loanHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loanID := c.Param("id")

	var req dto.RecordLoanPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for recordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	loan, err := h.loanService.RecordPayment(c.Request.Context(), loanID, req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to record payment")
		return
	}

	logger.Info("Loan payment recorded", slog.String("loan_id", loanID), slog.String("status", string(loan.Status)))
	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

// recordInstallmentPayment godoc
// @Summary Record a loan installment payment
// @Description Records a payment against a loan from an explicitly chosen account, with an optional note and payment date.
// @Tags loans
// @Accept json
// @Produce json
// @Param id path string true "Loan ID"
// @Param installment body dto.RecordInstallmentPaymentRequest true "Installment details"
// @Success 200 {object} dto.LoanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans/{id}/installments [post]
func (h *loanHandler) recordInstallmentPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loanID := c.Param("id")

	var req dto.RecordInstallmentPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for recordInstallmentPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	loan, err := h.loanService.RecordInstallmentPayment(c.Request.Context(), loanID, req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to record installment payment")
		return
	}

	logger.Info("Loan installment recorded", slog.String("loan_id", loanID), slog.String("status", string(loan.Status)))
	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

// markAsUrgent godoc
// @Summary Mark a loan as urgent
// @Tags loans
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} dto.LoanResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans/{id}/urgent [put]
func (h *loanHandler) markAsUrgent(c *gin.Context) {
	loanID := c.Param("id")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	loan, err := h.loanService.MarkAsUrgent(c.Request.Context(), loanID, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to mark loan as urgent")
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

// markAsNotUrgent godoc
// @Summary Clear the urgent flag on a loan
// @Tags loans
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} dto.LoanResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans/{id}/urgent [delete]
func (h *loanHandler) markAsNotUrgent(c *gin.Context) {
	loanID := c.Param("id")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	loan, err := h.loanService.MarkAsNotUrgent(c.Request.Context(), loanID, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to clear urgent flag")
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

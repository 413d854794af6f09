package handlers

import (
	"net/http"
	"strconv"

	portssvc "github.com/finbuddy/finbuddy_backend/internal/core/ports/services"
	"github.com/finbuddy/finbuddy_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// transactionHandler exposes read access to the transaction log.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	rg.GET("/transactions", h.listTransactions)
	rg.GET("/accounts/:id/transactions", h.listTransactionsByAccount)
}

func parseLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true // Service applies its default
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid limit parameter"})
		return 0, false
	}
	return limit, true
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists the logged-in user's most recent transactions.
// @Tags transactions
// @Produce json
// @Param limit query int false "Maximum number of transactions to return"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), userID, limit)
	if err != nil {
		respondServiceError(c, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

// listTransactionsByAccount godoc
// @Summary List transactions for an account
// @Description Lists the most recent transactions for one of the logged-in user's accounts.
// @Tags transactions
// @Produce json
// @Param id path string true "Account ID"
// @Param limit query int false "Maximum number of transactions to return"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{id}/transactions [get]
func (h *transactionHandler) listTransactionsByAccount(c *gin.Context) {
	accountID := c.Param("id")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	txns, err := h.transactionService.ListTransactionsByAccount(c.Request.Context(), accountID, userID, limit)
	if err != nil {
		respondServiceError(c, err, "Failed to list account transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

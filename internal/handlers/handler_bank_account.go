package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/retailcore/cashdesk/internal/core/ports/services"
	"github.com/retailcore/cashdesk/internal/dto"
	"github.com/retailcore/cashdesk/internal/middleware"
)

// bankAccountHandler serves the read-only bank account directory.
type bankAccountHandler struct {
	bankAccountService portssvc.BankAccountSvcFacade
}

func newBankAccountHandler(bs portssvc.BankAccountSvcFacade) *bankAccountHandler {
	return &bankAccountHandler{bankAccountService: bs}
}

// RegisterBankAccountRoutes registers routes related to bank accounts.
func RegisterBankAccountRoutes(rg *gin.RouterGroup, bankAccountService portssvc.BankAccountSvcFacade) {
	h := newBankAccountHandler(bankAccountService)

	accounts := rg.Group("/bank-accounts")
	{
		accounts.GET("/:id", h.getBankAccount)
		accounts.GET("", h.listBankAccounts)
	}
}

func (h *bankAccountHandler) getBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	account, err := h.bankAccountService.GetBankAccountByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve bank account")
		return
	}

	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account))
}

func (h *bankAccountHandler) listBankAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	branchID := c.Query("branchID")
	if branchID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "branchID query parameter is required"})
		return
	}

	accounts, err := h.bankAccountService.ListBankAccountsByBranch(c.Request.Context(), branchID)
	if err != nil {
		respondError(c, logger, err, "Failed to list bank accounts")
		return
	}

	c.JSON(http.StatusOK, gin.H{"bankAccounts": dto.ToBankAccountResponses(accounts)})
}

package handler

import (
	"github.com/flukesan/POS-System/internal/domain/repository"
	"github.com/flukesan/POS-System/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// BankAccountHandler handles receiving account HTTP requests
type BankAccountHandler struct {
	bankAccountRepo repository.BankAccountRepository
}

// NewBankAccountHandler creates a new bank account handler
func NewBankAccountHandler(bankAccountRepo repository.BankAccountRepository) *BankAccountHandler {
	return &BankAccountHandler{bankAccountRepo: bankAccountRepo}
}

// List handles listing active receiving accounts
func (h *BankAccountHandler) List(c *gin.Context) {
	accounts, err := h.bankAccountRepo.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bank accounts retrieved successfully", accounts)
}

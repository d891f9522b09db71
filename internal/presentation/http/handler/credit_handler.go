package handler

import (
	"github.com/flukesan/POS-System/internal/application/service"
	"github.com/flukesan/POS-System/internal/presentation/http/dto/request"
	"github.com/flukesan/POS-System/internal/presentation/http/dto/response"
	"github.com/flukesan/POS-System/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreditHandler handles customer credit ledger HTTP requests
type CreditHandler struct {
	creditService *service.CreditService
}

// NewCreditHandler creates a new credit handler
func NewCreditHandler(creditService *service.CreditService) *CreditHandler {
	return &CreditHandler{creditService: creditService}
}

// Summary handles fetching a customer's credit position
func (h *CreditHandler) Summary(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer id")
		return
	}

	summary, err := h.creditService.GetSummary(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Credit summary retrieved successfully", summary)
}

// ListTransactions handles listing a customer's ledger entries
func (h *CreditHandler) ListTransactions(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer id")
		return
	}

	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	params.Validate()

	result, err := h.creditService.ListTransactions(c.Request.Context(), customerID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Credit transactions retrieved successfully", result)
}

// RecordPayment handles recording a repayment against the credit balance
func (h *CreditHandler) RecordPayment(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer id")
		return
	}

	var req request.RecordCreditPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	entry, err := h.creditService.RecordPayment(c.Request.Context(), customerID, req.Amount, req.Notes)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Credit payment recorded", entry)
}

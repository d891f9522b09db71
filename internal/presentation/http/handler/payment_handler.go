package handler

import (
	"github.com/flukesan/POS-System/internal/application/service"
	"github.com/flukesan/POS-System/internal/domain/enum"
	"github.com/flukesan/POS-System/internal/domain/repository"
	"github.com/flukesan/POS-System/internal/presentation/http/dto/request"
	"github.com/flukesan/POS-System/internal/presentation/http/dto/response"
	"github.com/flukesan/POS-System/pkg/apperror"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler handles payment settlement HTTP requests
type PaymentHandler struct {
	paymentService  *service.PaymentService
	bankAccountRepo repository.BankAccountRepository
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService, bankAccountRepo repository.BankAccountRepository) *PaymentHandler {
	return &PaymentHandler{
		paymentService:  paymentService,
		bankAccountRepo: bankAccountRepo,
	}
}

// Initiate handles payment initiation for an order
func (h *PaymentHandler) Initiate(c *gin.Context) {
	var req request.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		response.BadRequest(c, "Invalid order_id")
		return
	}

	method := enum.PaymentMethod(req.PaymentMethod)
	if !method.IsValid() {
		response.Error(c, apperror.ErrUnsupportedPaymentMethod)
		return
	}

	input := &service.InitiatePaymentInput{
		OrderID:    orderID,
		Method:     method,
		PaidAmount: req.PaidAmount,
	}

	// the receiving account is resolved here and passed in explicitly
	if method == enum.PaymentMethodQRPromptPay {
		account, err := h.bankAccountRepo.GetDefault(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		input.Account = account
	}

	result, err := h.paymentService.InitiatePayment(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment initiated", result)
}

// Confirm handles manual confirmation of a transfer payment
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var req request.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.paymentService.ConfirmPayment(c.Request.Context(), req.TransactionRef, req.BankReference, req.PayerName)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment confirmed", result)
}

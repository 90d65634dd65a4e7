package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abhijeetcode911/customgpt-payment/internal/domain/model"
	"github.com/Abhijeetcode911/customgpt-payment/internal/server/http/dto"
)

// OrderHandler manages order creation and verification endpoints.
type OrderHandler struct {
	facade OrderFacade
	logger *slog.Logger
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{facade: facade, logger: logger}
}

// Create handles POST /api/payments/razorpay/create_order.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgInvalidBody})
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), model.CreateOrderRequest{
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Notes:    req.Notes,
	})
	if err != nil {
		writeError(c, h.logger, err, msgInvalidBody, msgOrderCreateFailed)
		return
	}

	c.JSON(http.StatusOK, dto.CreateOrderResponse{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
	})
}

// Verify handles POST /api/payments/razorpay/verify.
func (h *OrderHandler) Verify(c *gin.Context) {
	var req dto.VerifyRequest
	// An empty body is reported as a missing order_id.
	if err := c.ShouldBind(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgInvalidBody})
		return
	}

	result, err := h.facade.VerifyOrder(c.Request.Context(), req.ID())
	if err != nil {
		writeError(c, h.logger, err, msgOrderIDRequired, msgVerificationFailed)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyResponse{
		Paid:      result.Paid,
		PaymentID: result.PaymentID,
		Amount:    result.Amount,
		Currency:  result.Currency,
	})
}

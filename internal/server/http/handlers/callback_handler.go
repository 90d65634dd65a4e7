package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Abhijeetcode911/customgpt-payment/internal/server/http/dto"
)

// CallbackHandler forwards checkout callbacks to the confirmation page.
// It never decides whether an order is paid.
type CallbackHandler struct {
	facade           CallbackFacade
	confirmationPath string
	logger           *slog.Logger
}

// NewCallbackHandler constructs CallbackHandler redirecting to confirmationPath.
func NewCallbackHandler(facade CallbackFacade, confirmationPath string, logger *slog.Logger) *CallbackHandler {
	return &CallbackHandler{facade: facade, confirmationPath: confirmationPath, logger: logger}
}

// Handle handles POST /payment/callback.
func (h *CallbackHandler) Handle(c *gin.Context) {
	var req dto.CallbackRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("unreadable payment callback", slog.String("error", err.Error()))
	}
	orderID := strings.TrimSpace(req.OrderID)

	if req.PaymentID != "" && req.Signature != "" {
		if err := h.facade.VerifyCallbackSignature(orderID, req.PaymentID, req.Signature); err != nil {
			h.logger.Warn("payment callback signature mismatch",
				slog.String("order", orderID),
				slog.String("payment", req.PaymentID),
			)
		} else {
			h.logger.Info("payment callback received",
				slog.String("order", orderID),
				slog.String("payment", req.PaymentID),
			)
		}
	}

	c.Redirect(http.StatusSeeOther, ConfirmationURL(h.confirmationPath, orderID))
}

// ConfirmationURL builds the redirect target for orderID.
func ConfirmationURL(path, orderID string) string {
	return path + "?order_id=" + url.QueryEscape(orderID)
}

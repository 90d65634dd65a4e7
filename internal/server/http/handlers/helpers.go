package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/Abhijeetcode911/customgpt-payment/internal/domain/errors"
	"github.com/Abhijeetcode911/customgpt-payment/internal/server/http/dto"
)

const (
	msgOrderIDRequired    = "order_id is required"
	msgInvalidBody        = "invalid request body"
	msgOrderNotFound      = "Order not found"
	msgOrderExpired       = "Order expired."
	msgVerificationFailed = "Verification failed"
	msgOrderCreateFailed  = "Order creation failed"
	msgInternal           = "Internal server error"
)

// errorStatus maps a domain failure onto an HTTP status and client message.
// invalidMsg is used when err is the bare invalid request sentinel and
// upstreamMsg when the processor gave no description.
func errorStatus(err error, invalidMsg, upstreamMsg string) (int, string) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidRequest):
		return http.StatusBadRequest, invalidMessage(err, invalidMsg)
	case errors.Is(err, domainErrors.ErrOrderNotFound):
		return processorStatus(err, http.StatusBadRequest), processorMessage(err, msgOrderNotFound)
	case errors.Is(err, domainErrors.ErrOrderExpired):
		return http.StatusBadRequest, msgOrderExpired
	case errors.Is(err, domainErrors.ErrUpstreamFailure):
		return processorStatus(err, http.StatusInternalServerError), processorMessage(err, upstreamMsg)
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

func invalidMessage(err error, fallback string) string {
	if err == domainErrors.ErrInvalidRequest {
		return fallback
	}
	prefix := domainErrors.ErrInvalidRequest.Error() + ": "
	if msg := strings.TrimPrefix(err.Error(), prefix); msg != err.Error() {
		return msg
	}
	return fallback
}

// processorStatus keeps the processor's status only when it is a client or server error.
func processorStatus(err error, fallback int) int {
	if code := domainErrors.StatusCode(err); code >= http.StatusBadRequest && code <= 599 {
		return code
	}
	return fallback
}

func processorMessage(err error, fallback string) string {
	if desc := domainErrors.Describe(err); desc != "" {
		return desc
	}
	return fallback
}

func writeError(c *gin.Context, logger *slog.Logger, err error, invalidMsg, upstreamMsg string) {
	status, msg := errorStatus(err, invalidMsg, upstreamMsg)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
	}
	c.JSON(status, dto.ErrorResponse{Error: msg})
}

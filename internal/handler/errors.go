package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scottmc500/ScottLMS/internal/domain"
	"github.com/scottmc500/ScottLMS/internal/logger"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

const codeInternal = "INTERNAL"

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindReference, domain.KindInvalidState, domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindStorageTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as an ErrorResponse and aborts the chain.
// Internal failures are logged and their details are not sent to the client.
func respondError(c *gin.Context, err error) {
	var de *domain.Error
	if !errors.As(err, &de) || de.Kind == domain.KindInternal {
		logger.FromContext(c.Request.Context()).Error("Request failed",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()))
		code := codeInternal
		if de != nil {
			code = string(de.Code)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
			Error: "internal server error",
			Code:  code,
		})
		return
	}

	status := StatusFor(de.Kind)
	if status >= http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error("Request failed",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()))
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: de.Message, Code: string(de.Code)})
}

// badRequest rejects malformed input that never reached a service.
func badRequest(c *gin.Context, message string) {
	respondError(c, domain.Validation(domain.CodeInvalidInput, message))
}

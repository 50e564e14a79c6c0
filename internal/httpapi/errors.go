package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ischultz503/Survivor/internal/ctxutil"
	"github.com/ischultz503/Survivor/internal/metrics"
	"github.com/ischultz503/Survivor/internal/observability"
	"github.com/ischultz503/Survivor/internal/service"
	"go.uber.org/zap"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// fail пишет ошибку в ответ; внутренние ошибки логируются и уходят в Sentry без подробностей клиенту.
func (h *handler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status != http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()
	op, ok := ctxutil.Op(ctx)
	if !ok {
		op = "http " + c.FullPath()
	}
	fields := []zap.Field{zap.String("op", op), zap.Error(err)}
	if id, ok := ctxutil.UserID(ctx); ok {
		fields = append(fields, zap.Int64("user_id", id))
	}
	if name, ok := ctxutil.Username(ctx); ok {
		fields = append(fields, zap.String("username", name))
	}
	h.log.Error("request failed", fields...)
	metrics.HandlerErrors.Inc()
	observability.CaptureOp(op, err)
	c.JSON(status, gin.H{"error": "internal error"})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

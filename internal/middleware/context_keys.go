package middleware

import (
	"context"
	"log/slog"

	"github.com/SscSPs/ipt_portal_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is a private key type so context values cannot collide with
// other packages.
type contextKey string

const (
	loggerCtxKey      = contextKey("logger")
	sessionAccountKey = contextKey("sessionAccount")
)

// GetLoggerFromCtx retrieves the request-scoped logger from the standard
// context, falling back to the default logger when middleware did not run.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// GetSessionAccount retrieves the account resolved by the auth middleware.
// The second return is false when the request carries no session.
func GetSessionAccount(c *gin.Context) (*domain.Account, bool) {
	account, ok := c.Request.Context().Value(sessionAccountKey).(*domain.Account)
	return account, ok
}

package middleware

import (
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into a 500 error envelope. When the client
// has already gone away, or the response is already on the wire, the request
// is only aborted.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			ctx := c.Request.Context()

			attrs := []any{
				"error", rec,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"route", c.FullPath(),
			}
			if user := GetUser(ctx); user != nil {
				attrs = append(attrs, "user_id", user.ID)
			}

			if clientGone(rec) {
				slog.WarnContext(ctx, "client disconnected mid-response", attrs...)
				c.Abort()
				return
			}

			slog.ErrorContext(ctx, "panic recovered", append(attrs, "stack", string(debug.Stack()))...)

			if c.Writer.Written() {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}()
		c.Next()
	}
}

func clientGone(rec any) bool {
	err, ok := rec.(error)
	if !ok {
		return false
	}
	var opErr *net.OpError
	if !errors.As(err, &opErr) {
		return false
	}
	var sysErr *os.SyscallError
	if !errors.As(opErr, &sysErr) {
		return false
	}
	msg := strings.ToLower(sysErr.Error())
	return strings.Contains(msg, "broken pipe") || strings.Contains(msg, "connection reset by peer")
}

package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"meeting-room-reservation/internal/handler/httperr"
	"meeting-room-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLinesLogged = 12

// ErrorHandler renders errors a handler recorded without writing a response and logs
// the cause of every 5xx with its stack.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && c.Writer.Status() >= http.StatusInternalServerError {
			last := c.Errors.Last()
			slog.ErrorContext(c.Request.Context(), "request failed",
				"request_id", GetRequestID(c),
				"path", c.FullPath(),
				"error", last.Err.Error(),
				"stack", errs.ExtractStackLines(last.Err, stackLinesLogged))
		}

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			c.JSON(http.StatusInternalServerError, internalErrorResponse())
		}
	}
}

// CustomRecovery turns a panic into a 500 with the standard error body.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err := errs.New(fmt.Sprintf("panic: %v", rec))
				slog.ErrorContext(c.Request.Context(), "recovered from panic",
					"request_id", GetRequestID(c),
					"path", c.Request.URL.Path,
					"error", err.Error())

				c.AbortWithStatusJSON(http.StatusInternalServerError, internalErrorResponse())
			}
		}()
		c.Next()
	}
}

func internalErrorResponse() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	return resp
}

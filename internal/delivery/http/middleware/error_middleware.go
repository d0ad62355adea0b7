package middleware

import (
	"errors"
	"net/http"

	"go-hiring-portal/internal/delivery/http/response"
	"go-hiring-portal/pkg/apperror"
	"go-hiring-portal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler is the single boundary translator: usecases raise typed
// apperror values, handlers attach them with c.Error, and this middleware
// maps the last one to its HTTP status. Untyped errors are logged with
// detail and reported as a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Code == http.StatusInternalServerError && appErr.Err != nil {
					logger.Log.Error("internal error", "error", appErr.Err, "path", c.Request.URL.Path)
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				logger.Log.Error("unexpected error", "error", err, "path", c.Request.URL.Path)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}

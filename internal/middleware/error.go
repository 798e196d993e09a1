package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "kumbara/internal/errors"
	"kumbara/internal/logger"
)

// ErrorHandler renders the last error a handler attached with c.Error as
// {"error": {"code", "message"}}. Errors that are not AppErrors become
// INTERNAL_ERROR with their details kept out of the response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		appErr := asAppError(c.Errors.Last().Err)
		if appErr.Internal != nil {
			logger.Named("http").Errorw("Request failed",
				"request_id", RequestID(c),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"code", appErr.Code,
				"error", appErr.Internal.Error(),
			)
		}
		c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
			"error": gin.H{"code": appErr.Code, "message": appErr.Message},
		})
	}
}

func asAppError(err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}

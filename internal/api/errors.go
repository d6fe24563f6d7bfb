package api

import (
	"errors"
	"net/http"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgInternalError = "Internal Server Error"

// notFoundMessages maps service not-found errors to response messages.
var notFoundMessages = map[error]string{
	service.ErrClientNotFound:  "Client not found",
	service.ErrTrainerNotFound: "Trainer not found",
	service.ErrClassNotFound:   "Class not found",
	service.ErrPackageNotFound: "Package not found",
	service.ErrUserNotFound:    "User not found",
	service.ErrPhotoNotFound:   "Photo not found",
}

// abortWithError writes {"message": ...} and stops the handler chain.
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"message": message})
}

// handleServiceError maps a service error to its HTTP response. Unknown
// errors are logged and reported as a generic 500 without detail.
func handleServiceError(c *gin.Context, logger *zap.Logger, action string, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		abortWithError(c, http.StatusBadRequest, vErr.Message)
		return
	}
	for target, msg := range notFoundMessages {
		if errors.Is(err, target) {
			abortWithError(c, http.StatusNotFound, msg)
			return
		}
	}
	switch {
	case errors.Is(err, service.ErrUnsupportedPhotoType):
		abortWithError(c, http.StatusBadRequest, "Unsupported photo type. Use image/jpeg, image/png or image/webp")
	case errors.Is(err, service.ErrPhotoStoreUnavailable):
		abortWithError(c, http.StatusServiceUnavailable, "Photo storage is not available")
	default:
		logger.Error(action+" failed",
			zap.Error(err),
			zap.String("request_id", c.GetString(ContextRequestIDKey)),
		)
		abortWithError(c, http.StatusInternalServerError, msgInternalError)
	}
}

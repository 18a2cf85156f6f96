package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	domainerrors "github.com/Gitau-joseph/projectz/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response, mapping AppError to its HTTP status,
// known domain sentinels to their conventional statuses, and anything
// else to a 500.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = fromSentinel(err)
	}

	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

func fromSentinel(err error) *domainerrors.AppError {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("Resource not found")
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.Conflict("Resource already exists")
	case errors.Is(err, domainerrors.ErrInvalidInput), errors.Is(err, domainerrors.ErrBadRequest):
		return domainerrors.BadRequest("Invalid input")
	case errors.Is(err, domainerrors.ErrUnauthorized), errors.Is(err, domainerrors.ErrTokenExpired):
		return domainerrors.Unauthorized("Authentication required")
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return domainerrors.Unauthorized("Invalid email or password")
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden("Access denied")
	case errors.Is(err, domainerrors.ErrKYCRequired):
		return domainerrors.UnprocessableEntity(domainerrors.CodeKYCRequired, "KYC approval is required first", err)
	case errors.Is(err, domainerrors.ErrInsufficientFunds):
		return domainerrors.UnprocessableEntity(domainerrors.CodeInsufficientFunds, "Insufficient balance", err)
	case errors.Is(err, domainerrors.ErrHoldingPeriod):
		return domainerrors.UnprocessableEntity(domainerrors.CodeHoldingPeriod, "Minimum holding period not reached", err)
	case errors.Is(err, domainerrors.ErrNoApprovedDeposits):
		return domainerrors.UnprocessableEntity(domainerrors.CodeNoDeposits, "No approved deposits yet", err)
	default:
		return domainerrors.InternalError(err)
	}
}

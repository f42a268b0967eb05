package response

import (
	"errors"
	"net/http"

	"github.com/leavedesk/leave-backend-go/internal/domain/auth"
	"github.com/leavedesk/leave-backend-go/internal/domain/leave"
	"github.com/leavedesk/leave-backend-go/internal/domain/user"
	"github.com/leavedesk/leave-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrManagerPrivilegeRequired):
		Forbidden(w, "Manager privilege required")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave record not found")
	case errors.Is(err, leave.ErrInvalidRange):
		BadRequest(w, "Date range contains no chargeable workdays", nil)
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "Date range overlaps an existing request")
	case errors.Is(err, leave.ErrApprovedOverlap):
		Conflict(w, "Date range overlaps an already approved leave")
	case errors.Is(err, leave.ErrAllowanceExceeded):
		BadRequest(w, "Remaining allowance is not sufficient", nil)
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave record already processed")
	case errors.Is(err, leave.ErrNotRecordOwner):
		Forbidden(w, "Leave record belongs to another user")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

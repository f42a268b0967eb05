package user

import "github.com/leavedesk/leave-backend-go/internal/pkg/validator"

type ProfileResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
	IsManager   bool   `json:"is_manager"`
}

func NewProfileResponse(u User) ProfileResponse {
	resp := ProfileResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.ResolveDisplayName(),
		IsManager:   u.IsManager,
	}
	if u.FirstName != nil {
		resp.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		resp.LastName = *u.LastName
	}
	return resp
}

type UpdateProfileRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.FirstName) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must not exceed 100 characters",
		})
	}
	if len(r.LastName) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name must not exceed 100 characters",
		})
	}
	if len(r.DisplayName) > 200 {
		errs = append(errs, validator.ValidationError{
			Field:   "display_name",
			Message: "display_name must not exceed 200 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

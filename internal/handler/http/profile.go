package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/leavedesk/leave-backend-go/internal/domain/auth"
	"github.com/leavedesk/leave-backend-go/internal/domain/user"
	"github.com/leavedesk/leave-backend-go/internal/handler/http/response"
)

type ProfileHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type ProfileHandlerImpl struct {
	userService user.UserService
}

func NewProfileHandler(userService user.UserService) ProfileHandler {
	return &ProfileHandlerImpl{userService: userService}
}

// userIDFromClaims pulls the authenticated user's id out of the verified
// access token.
func userIDFromClaims(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}
	return userID, nil
}

// Get implements ProfileHandler.
func (p *ProfileHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	profile, err := p.userService.GetProfile(r.Context(), userID)
	if err != nil {
		slog.Error("GetProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}

// Update implements ProfileHandler.
func (p *ProfileHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req user.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateProfile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	profile, err := p.userService.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		slog.Error("UpdateProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated successfully", profile)
}

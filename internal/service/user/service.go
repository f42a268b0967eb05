package user

import (
	"context"
	"fmt"

	"github.com/leavedesk/leave-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{UserRepository: userRepository}
}

// GetProfile implements user.UserService.
func (u *UserServiceImpl) GetProfile(ctx context.Context, userID string) (user.ProfileResponse, error) {
	userData, err := u.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.ProfileResponse{}, err
	}
	return user.NewProfileResponse(userData), nil
}

// UpdateProfile implements user.UserService.
func (u *UserServiceImpl) UpdateProfile(ctx context.Context, userID string, req user.UpdateProfileRequest) (user.ProfileResponse, error) {
	userData, err := u.UserRepository.UpdateProfile(ctx, userID, req.FirstName, req.LastName, req.DisplayName)
	if err != nil {
		if err == user.ErrUserNotFound {
			return user.ProfileResponse{}, err
		}
		return user.ProfileResponse{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return user.NewProfileResponse(userData), nil
}

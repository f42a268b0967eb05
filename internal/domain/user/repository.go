package user

import "context"

// UserRepository - interface for the users table
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	UpdateProfile(ctx context.Context, id string, firstName, lastName, displayName string) (User, error)
	LinkGoogleAccount(ctx context.Context, googleID string, email string) (User, error)
}

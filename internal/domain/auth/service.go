package auth

import "context"

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)
	LoginWithGoogle(ctx context.Context, googleEmail, googleID, googleName string, sessionReq SessionTrackingRequest) (TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string, sessionReq SessionTrackingRequest) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/leavedesk/leave-backend-go/internal/domain/auth"
	"github.com/leavedesk/leave-backend-go/internal/domain/leave"
	"github.com/leavedesk/leave-backend-go/internal/domain/user"
	"github.com/leavedesk/leave-backend-go/internal/pkg/database"
	"github.com/leavedesk/leave-backend-go/internal/pkg/jwt"
	"github.com/leavedesk/leave-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	leave.AllowanceRepository
	jwt.Service
	postgresql.RefreshTokenRepository
	defaultAllowance int
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, allowanceRepository leave.AllowanceRepository, jwtService jwt.Service, refreshTokenRepository postgresql.RefreshTokenRepository, defaultAllowance int) auth.AuthService {
	return &AuthServiceImpl{
		db:                     db,
		UserRepository:         userRepository,
		AllowanceRepository:    allowanceRepository,
		Service:                jwtService,
		RefreshTokenRepository: refreshTokenRepository,
		defaultAllowance:       defaultAllowance,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, u user.User, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	err := postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(u.ID, u.Email, u.IsManager)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(u.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		err = a.CreateRefreshToken(txCtx, u.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionReq)
		if err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// Register implements auth.AuthService. A fresh account also gets its leave
// allowance row for the current year so the first summary request never
// sees a missing quota.
func (a *AuthServiceImpl) Register(ctx context.Context, registerReq auth.RegisterRequest, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	existing, err := a.UserRepository.GetByEmail(ctx, registerReq.Email)
	if err != nil {
		if err != pgx.ErrNoRows {
			return auth.TokenResponse{}, fmt.Errorf("failed to get user data by email: %w", err)
		}
	}
	if existing.ID != "" {
		return auth.TokenResponse{}, user.ErrEmailExists
	}

	hashedPassword, err := a.hashPassword(registerReq.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var newUser user.User
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		newUser, err = a.UserRepository.Create(txCtx, user.User{
			Email:        registerReq.Email,
			PasswordHash: &hashedPassword,
		})
		if err != nil {
			return err
		}

		if err := a.AllowanceRepository.Upsert(txCtx, newUser.ID, time.Now().UTC().Year(), a.defaultAllowance); err != nil {
			return fmt.Errorf("failed to provision allowance: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return a.issueTokens(ctx, newUser, sessionReq)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	userData, err := a.UserRepository.GetByEmail(ctx, loginReq.Email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	// OAuth-only accounts have no password hash.
	if userData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, userData, sessionReq)
}

// LoginWithGoogle implements auth.AuthService. Unknown emails get a fresh
// account; known ones without a linked provider get the Google identity
// attached.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, googleEmail, googleID, googleName string, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var userExists bool

	userData, err := a.UserRepository.GetByEmail(ctx, googleEmail)
	if err != nil {
		if err != pgx.ErrNoRows {
			return auth.TokenResponse{}, fmt.Errorf("failed to get user data by email: %w", err)
		}
	}
	if userData.ID != "" {
		userExists = true
	}

	if !userExists {
		newUser := user.User{
			Email:           googleEmail,
			OAuthProvider:   func(s string) *string { return &s }("google"),
			OAuthProviderID: &googleID,
		}
		if googleName != "" {
			newUser.DisplayName = &googleName
		}

		err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
			txCtx := context.WithValue(ctx, "tx", tx)

			userData, err = a.UserRepository.Create(txCtx, newUser)
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}
			if err := a.AllowanceRepository.Upsert(txCtx, userData.ID, time.Now().UTC().Year(), a.defaultAllowance); err != nil {
				return fmt.Errorf("failed to provision allowance: %w", err)
			}
			return nil
		})
		if err != nil {
			return auth.TokenResponse{}, err
		}
	}

	if userData.OAuthProvider == nil || userData.OAuthProviderID == nil {
		userData, err = a.UserRepository.LinkGoogleAccount(ctx, googleID, userData.Email)
		if err != nil {
			return auth.TokenResponse{}, err
		}
	}

	return a.issueTokens(ctx, userData, sessionReq)
}

// Refresh implements auth.AuthService. The old refresh token is rotated:
// revoked and replaced in the same transaction that stores the new one.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	token, err := jwtauth.VerifyToken(a.JWTAuth(), refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userID, isRevoked, err := a.RefreshTokenRepository.IsRefreshTokenRevoked(ctx, refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if isRevoked {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	var tokenResponse auth.TokenResponse
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := a.RefreshTokenRepository.RevokeRefreshToken(txCtx, refreshToken); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}

		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.IsManager)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		err = a.CreateRefreshToken(txCtx, userData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionReq)
		if err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	return postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		_, isRevoked, err := a.RefreshTokenRepository.IsRefreshTokenRevoked(txCtx, refreshToken)
		if err != nil {
			if err == pgx.ErrNoRows {
				return nil
			}
			return fmt.Errorf("failed to check if refresh token is revoked: %w", err)
		}
		if !isRevoked {
			if err := a.RefreshTokenRepository.RevokeRefreshToken(txCtx, refreshToken); err != nil {
				return fmt.Errorf("failed to revoke refresh token: %w", err)
			}
		}
		return nil
	})
}

package main

import (
	"fmt"
	"net/http"

	"github.com/leavedesk/leave-backend-go/internal/config"
	appHTTP "github.com/leavedesk/leave-backend-go/internal/handler/http"
	"github.com/leavedesk/leave-backend-go/internal/pkg/database"
	"github.com/leavedesk/leave-backend-go/internal/pkg/holiday"
	"github.com/leavedesk/leave-backend-go/internal/pkg/jwt"
	"github.com/leavedesk/leave-backend-go/internal/pkg/oauth"
	"github.com/leavedesk/leave-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/leavedesk/leave-backend-go/internal/service/auth"
	serviceLeave "github.com/leavedesk/leave-backend-go/internal/service/leave"
	serviceUser "github.com/leavedesk/leave-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	allowanceRepo := postgresql.NewAllowanceRepository(db)
	leaveRecordRepo := postgresql.NewLeaveRecordRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	region := holiday.Region(cfg.Leave.HolidayRegion)
	calculator := serviceLeave.NewWorkdayCalculator(region)

	authService := serviceAuth.NewAuthService(db, userRepo, allowanceRepo, JWTService, refreshTokenRepo, cfg.Leave.DefaultAllowance)
	userService := serviceUser.NewUserService(userRepo)
	leaveService := serviceLeave.NewLeaveService(db, leaveRecordRepo, allowanceRepo, calculator)

	authHandler := appHTTP.NewAuthHandler(JWTService, authService, GoogleService, cfg.App.FrontendURL)
	profileHandler := appHTTP.NewProfileHandler(userService)
	leaveHandler := appHTTP.NewLeaveHandler(leaveService)
	holidayHandler := appHTTP.NewHolidayHandler(region)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			FrontendURL: cfg.App.FrontendURL,
			Env:         cfg.App.Env,
			OAuthGoogle: cfg.OAuth2Google.Enabled(),
		},
		JWTService,
		authHandler,
		profileHandler,
		leaveHandler,
		holidayHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

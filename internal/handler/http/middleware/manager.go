package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/leavedesk/leave-backend-go/internal/domain/user"
	"github.com/leavedesk/leave-backend-go/internal/handler/http/response"
)

// ManagerOnly guards the approval endpoints.
func ManagerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrManagerPrivilegeRequired)
			return
		}

		isManager, ok := claims["is_manager"].(bool)
		if !ok || !isManager {
			response.HandleError(w, user.ErrManagerPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

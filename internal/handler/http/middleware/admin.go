package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/wagepoint/wagepoint-api/internal/domain/auth"
	"github.com/wagepoint/wagepoint-api/internal/domain/employee"
	"github.com/wagepoint/wagepoint-api/internal/handler/http/response"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(employee.RoleAdmin) {
			response.Forbidden(w, "Admin privilege required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

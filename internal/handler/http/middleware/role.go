package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/workforcelab/hrms-backend-go/internal/domain/user"
	"github.com/workforcelab/hrms-backend-go/internal/handler/http/response"
)

// RequireRole gates a route on role membership. An empty allowed list
// means any authenticated user; an unknown or missing role always
// fails closed.
func RequireRole(allowed ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Forbidden(w, "Access denied")
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.Forbidden(w, "Access denied")
				return
			}

			if !user.HasAnyRole(user.Role(roleStr), allowed...) {
				response.Forbidden(w, "Access denied")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClaimUserID extracts the authenticated user's id from the token.
func ClaimUserID(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	id, _ := claims["user_id"].(string)
	return id
}

// ClaimOrganizationID extracts the organization scope from the token.
func ClaimOrganizationID(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	id, _ := claims["organization_id"].(string)
	return id
}

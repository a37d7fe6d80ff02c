package middlewares

import (
	"context"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// Authenticate verifies the bearer token and stores the caller e-mail in the
// request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, err := m.AuthUsecase.IdentifyCaller(r.Context(), r.Header.Get(constvars.HeaderAuthorization))
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_CALLER_EMAIL_KEY, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole must run after Authenticate.
func (m *Middlewares) RequireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			email, ok := r.Context().Value(constvars.CONTEXT_CALLER_EMAIL_KEY).(string)
			if !ok || email == "" {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrMissingCallerEmail(nil))
				return
			}

			err := m.AuthUsecase.Authorize(r.Context(), email, role)
			if err != nil {
				m.Log.Warn("Middlewares.RequireRole access denied",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingEmailKey, email),
					zap.String(constvars.LoggingRoleKey, role.String()),
				)
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Заголовки идентификации вызывающего
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

const (
	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgInvalidRole   = "некорректная роль пользователя"
	msgForbidden     = "доступ запрещен"
)

type ctxKey struct{}

// Auth кладёт пользователя из заголовков в контекст
// Роль по умолчанию member
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(HeaderUserID)
		if userID == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		role := domain.RoleMember
		if raw := r.Header.Get(HeaderUserRole); raw != "" {
			role = domain.Role(raw)
		}
		if !role.IsValid() {
			handlers.RespondUnauthorized(w, msgInvalidRole)
			return
		}

		ctx := WithUser(r.Context(), domain.User{ID: userID, Role: role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole пропускает только пользователей с одной из ролей
// Должен стоять после Auth
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUser(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingUserID)
				return
			}

			for _, role := range roles {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			handlers.RespondForbidden(w, msgForbidden)
		})
	}
}

// WithUser кладёт пользователя в контекст
func WithUser(ctx context.Context, user domain.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

// GetUser получает пользователя из контекста
func GetUser(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(ctxKey{}).(domain.User)
	return user, ok
}

// GetUserID получает ID пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	user, ok := GetUser(ctx)
	if !ok {
		return "", false
	}
	return user.ID, true
}

package handlers

import (
	"context"
	"net/http"
	"strings"

	"hotelbooking/internal/service"
)

type sessionKey struct{}

// SessionMiddleware verifies the "Bearer <token>" header and stores the
// authenticated user id in the request context.
func SessionMiddleware(authService service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				WriteError(w, "Неверный формат токена", http.StatusUnauthorized)
				return
			}

			userID, err := authService.ParseToken(parts[1])
			if err != nil {
				writeServiceError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey{}, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func SessionUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(sessionKey{}).(int64)
	return id, ok
}

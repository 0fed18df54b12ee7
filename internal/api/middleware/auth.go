package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/bizqueue/BQ-SchedulingService/internal/api/handlers"
	authService "github.com/bizqueue/BQ-SchedulingService/internal/service/auth"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	roleKey   contextKey = "userRole"
)

const (
	msgMissingToken = "требуется токен авторизации"
	msgInvalidToken = "недействительный токен авторизации"
	msgForbidden    = "недостаточно прав для выполнения операции"
)

// TokenParser интерфейс проверки токенов
type TokenParser interface {
	Parse(tokenString string) (*authService.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth проверяет Bearer токен и кладет userID и роль в контекст запроса
func Auth(parser TokenParser, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				logger.Warn("%s %s - Missing Authorization header", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				logger.Warn("%s %s - Malformed Authorization header", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			claims, err := parser.Parse(tokenString)
			if err != nil {
				logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			ctx = context.WithValue(ctx, roleKey, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole пропускает запрос только для пользователей с указанной ролью.
// Должен стоять после Auth.
func RequireRole(role string, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actual, ok := RoleFromContext(r.Context())
			if !ok || actual != role {
				logger.Warn("%s %s - Forbidden: required role=%s, actual=%s", r.Method, r.URL.Path, role, actual)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserIDFromContext возвращает ID пользователя, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// RoleFromContext возвращает роль пользователя, положенную Auth middleware
func RoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(roleKey).(string)
	return role, ok
}

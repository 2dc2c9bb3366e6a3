package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
)

type contextKey string

const professionalIDKey contextKey = "professionalID"

const (
	msgMissingToken = "требуется авторизация"
	msgInvalidToken = "сессия недействительна или истекла"
)

// TokenParser интерфейс проверки токена сессии
type TokenParser interface {
	Parse(token string) (string, error)
}

// Auth проверяет Bearer токен и кладет id специалиста в контекст запроса
func Auth(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			professionalID, err := parser.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := WithProfessionalID(r.Context(), professionalID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithProfessionalID возвращает контекст с id авторизованного специалиста
func WithProfessionalID(ctx context.Context, professionalID string) context.Context {
	return context.WithValue(ctx, professionalIDKey, professionalID)
}

// GetProfessionalID извлекает id авторизованного специалиста из контекста
func GetProfessionalID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(professionalIDKey).(string)
	return id, ok && id != ""
}

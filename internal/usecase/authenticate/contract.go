package authenticate

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// ProfessionalRepository интерфейс справочника специалистов
type ProfessionalRepository interface {
	GetByEmail(email string) (*domain.Professional, error)
}

// TokenIssuer интерфейс выпуска токена сессии
type TokenIssuer interface {
	Issue(professionalID string) (token string, expiresAt time.Time, err error)
}

// Metrics интерфейс метрик аутентификации
type Metrics interface {
	ObserveAuthentication(success bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

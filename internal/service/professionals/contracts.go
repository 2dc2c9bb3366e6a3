package professionals

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// ProfessionalRepository интерфейс справочника специалистов
type ProfessionalRepository interface {
	GetByID(id string) (*domain.Professional, error)
	Default() *domain.Professional
	ListPublic() []domain.PublicProfile
}

// DurationResolver интерфейс разрешения эффективной длительности
type DurationResolver interface {
	Resolve(ctx context.Context, p *domain.Professional, requested string) domain.Duration
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package schedule

import (
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// EventRepository интерфейс хранилища подтвержденных событий
type EventRepository interface {
	EventsFor(professionalID string, date types.DateKey) []domain.ScheduledEvent
}

// ProfessionalRepository интерфейс справочника специалистов
type ProfessionalRepository interface {
	GetByID(id string) (*domain.Professional, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

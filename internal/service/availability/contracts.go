package availability

import "github.com/m04kA/SMC-AgendaService/internal/domain"

// ProfessionalRepository интерфейс справочника специалистов
type ProfessionalRepository interface {
	GetByID(id string) (*domain.Professional, error)
}

// Metrics интерфейс метрик разрешения длительности
type Metrics interface {
	ObserveDurationResolution(step string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_schedule

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

type ScheduleService interface {
	DayAgenda(ctx context.Context, professionalID string, date types.DateKey) (*domain.Professional, []domain.ScheduledEvent, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

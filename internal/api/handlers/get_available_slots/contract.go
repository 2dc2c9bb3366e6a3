package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

type AvailabilityService interface {
	ListSlots(ctx context.Context, professionalID, requestedDuration string, date types.DateKey) (domain.Duration, []domain.AvailableSlot)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

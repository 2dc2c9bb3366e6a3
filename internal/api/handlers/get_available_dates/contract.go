package get_available_dates

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

type AvailabilityService interface {
	ListAvailableDates(ctx context.Context, professionalID, requestedDuration string) (domain.Duration, []types.DateKey)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

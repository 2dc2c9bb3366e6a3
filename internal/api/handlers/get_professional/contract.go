package get_professional

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/service/professionals/models"
)

type ProfessionalsService interface {
	GetForBooking(ctx context.Context, professionalID, requestedDuration string) *models.BookingProfile
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package confirm_booking

import (
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// validateRequest проверяет формат даты и времени
func validateRequest(req *Request) (types.DateKey, types.TimeString, error) {
	if req.ProfessionalID == "" {
		return "", "", fmt.Errorf("%w: professionalId is required", ErrInvalidInput)
	}

	date, err := types.ParseDateKey(req.Date)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	return date, start, nil
}

// validateSelection проверяет, что слот предложен специалистом и не заблокирован
func validateSelection(p *domain.Professional, duration domain.Duration, date types.DateKey, start types.TimeString) error {
	day, ok := p.Availability.Day(duration, date)
	if !ok {
		return fmt.Errorf("%w: %s for duration %s", ErrDateNotAvailable, date, duration)
	}

	if !day.IsOffered(start) {
		return fmt.Errorf("%w: %s on %s", ErrSlotNotOffered, start, date)
	}

	if day.IsBlocked(start) {
		return fmt.Errorf("%w: %s on %s", ErrSlotNotAvailable, start, date)
	}

	return nil
}

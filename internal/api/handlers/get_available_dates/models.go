package get_available_dates

import (
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	ProfessionalID string   `json:"professionalId"`
	Duration       string   `json:"duration"`
	Dates          []string `json:"dates"`
}

// FromServiceResponse конвертирует даты в HTTP ответ
func FromServiceResponse(professionalID string, duration domain.Duration, dates []types.DateKey) *AvailableDatesResponse {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.String()
	}
	return &AvailableDatesResponse{
		ProfessionalID: professionalID,
		Duration:       duration.String(),
		Dates:          out,
	}
}

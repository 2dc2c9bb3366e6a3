package get_available_slots

import (
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ProfessionalID string          `json:"professionalId"`
	Date           string          `json:"date"`
	Duration       string          `json:"duration"`
	Slots          []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Label     string `json:"label"`     // "09:00 (1 час)"
	TimeRange string `json:"timeRange"` // "09:00 - 10:00"
	Disabled  bool   `json:"disabled"`
}

// FromServiceResponse конвертирует слоты в HTTP ответ
func FromServiceResponse(professionalID string, date types.DateKey, duration domain.Duration, slots []domain.AvailableSlot) *AvailableSlotsResponse {
	out := make([]AvailableSlot, len(slots))
	for i := range slots {
		slot := &slots[i]
		out[i] = AvailableSlot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Label:     slot.Label(),
			TimeRange: slot.TimeRange(),
			Disabled:  slot.Disabled,
		}
	}

	return &AvailableSlotsResponse{
		ProfessionalID: professionalID,
		Date:           date.String(),
		Duration:       duration.String(),
		Slots:          out,
	}
}

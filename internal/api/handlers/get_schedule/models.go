package get_schedule

import (
	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

type ScheduleResponse struct {
	Professional ProfessionalBrief `json:"professional"`
	Date         string            `json:"date"`
	Events       []EventResponse   `json:"events"`
}

type ProfessionalBrief struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

type EventResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Duration      string  `json:"duration"`
	DurationLabel string  `json:"durationLabel"`
	ClientName    string  `json:"clientName"`
	Location      *string `json:"location,omitempty"`
}

// FromDomain собирает ответ. События с некорректным окончанием отсекаются на валидации сида
func FromDomain(p *domain.Professional, date string, events []domain.ScheduledEvent) *ScheduleResponse {
	resp := &ScheduleResponse{
		Professional: ProfessionalBrief{
			ID:      p.ID,
			Name:    p.Name,
			Address: p.Address,
		},
		Date:   date,
		Events: make([]EventResponse, 0, len(events)),
	}

	for i := range events {
		e := &events[i]
		end, _ := e.EndTime()
		resp.Events = append(resp.Events, EventResponse{
			ID:            e.ID,
			Title:         e.Title,
			StartTime:     e.StartTime.String(),
			EndTime:       end.String(),
			Duration:      e.Duration.String(),
			DurationLabel: e.Duration.Label(),
			ClientName:    e.ClientName,
			Location:      e.Location,
		})
	}

	return resp
}

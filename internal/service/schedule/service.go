package schedule

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Service сервис расписания подтвержденных событий
type Service struct {
	events        EventRepository
	professionals ProfessionalRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(events EventRepository, professionals ProfessionalRepository, logger Logger) *Service {
	return &Service{
		events:        events,
		professionals: professionals,
		logger:        logger,
	}
}

// EventsFor возвращает события специалиста за день по возрастанию времени начала.
// Промахи дают пустой список
func (s *Service) EventsFor(_ context.Context, professionalID string, date types.DateKey) []domain.ScheduledEvent {
	return s.events.EventsFor(professionalID, date)
}

// DayAgenda возвращает специалиста и его события за день.
// В отличие от EventsFor, требует существующего специалиста
func (s *Service) DayAgenda(ctx context.Context, professionalID string, date types.DateKey) (*domain.Professional, []domain.ScheduledEvent, error) {
	p, err := s.professionals.GetByID(professionalID)
	if err != nil {
		s.logger.Warn("DayAgenda: professional id=%s not found", professionalID)
		return nil, nil, ErrProfessionalNotFound
	}

	events := s.EventsFor(ctx, professionalID, date)
	s.logger.Info("DayAgenda: professional id=%s date=%s events=%d", professionalID, date, len(events))

	return p, events, nil
}

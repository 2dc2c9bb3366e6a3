package availability

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Service сервис доступности специалистов.
// Все запросы только читают каталог. Запрошенная длительность всегда проходит
// разрешение; промах по специалисту или дате дает пустой результат, а не ошибку.
type Service struct {
	repo    ProfessionalRepository
	metrics Metrics
	logger  Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(repo ProfessionalRepository, metrics Metrics, logger Logger) *Service {
	return &Service{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
}

// Resolve разрешает длительность для уже найденного специалиста и учитывает шаг в метриках
func (s *Service) Resolve(_ context.Context, p *domain.Professional, requested string) domain.Duration {
	duration, step := ResolveDuration(p, requested)
	if s.metrics != nil {
		s.metrics.ObserveDurationResolution(string(step))
	}
	if step != StepRequested && requested != "" {
		s.logger.Info("Resolve: professional id=%s requested=%q resolved to %s (step: %s)",
			p.ID, requested, duration, step)
	}
	return duration
}

// ListAvailableDates разрешает эффективную длительность и возвращает даты
// ее календаря по возрастанию. Для неизвестного специалиста длительность пустая
func (s *Service) ListAvailableDates(ctx context.Context, professionalID, requested string) (domain.Duration, []types.DateKey) {
	p, err := s.repo.GetByID(professionalID)
	if err != nil {
		s.logger.Warn("ListAvailableDates: professional id=%s not found", professionalID)
		return "", []types.DateKey{}
	}

	duration := s.Resolve(ctx, p, requested)
	return duration, p.Availability.Dates(duration)
}

// ListSlots разрешает эффективную длительность и возвращает слоты дня в порядке из календаря.
// Заблокированные слоты возвращаются с Disabled=true
func (s *Service) ListSlots(ctx context.Context, professionalID, requested string, date types.DateKey) (domain.Duration, []domain.AvailableSlot) {
	p, err := s.repo.GetByID(professionalID)
	if err != nil {
		s.logger.Warn("ListSlots: professional id=%s not found", professionalID)
		return "", []domain.AvailableSlot{}
	}

	duration := s.Resolve(ctx, p, requested)
	day, ok := p.Availability.Day(duration, date)
	if !ok {
		return duration, []domain.AvailableSlot{}
	}

	slots := make([]domain.AvailableSlot, 0, len(day.Slots))
	for _, start := range day.Slots {
		end, err := start.AddMinutes(duration.Minutes())
		if err != nil {
			// такие слоты отсекаются проверкой каталога при старте
			s.logger.Error("ListSlots: professional id=%s date=%s slot %s: %v", professionalID, date, start, err)
			continue
		}
		slots = append(slots, domain.AvailableSlot{
			StartTime: start,
			EndTime:   end,
			Duration:  duration,
			Disabled:  day.IsBlocked(start),
		})
	}

	return duration, slots
}

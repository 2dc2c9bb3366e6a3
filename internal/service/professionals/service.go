package professionals

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/professionals/models"
)

// Service сервис справочника специалистов для публичных страниц
type Service struct {
	repo     ProfessionalRepository
	resolver DurationResolver
	logger   Logger
}

// NewService создает новый экземпляр сервиса специалистов
func NewService(repo ProfessionalRepository, resolver DurationResolver, logger Logger) *Service {
	return &Service{
		repo:     repo,
		resolver: resolver,
		logger:   logger,
	}
}

// ListPublic возвращает публичные профили всех специалистов
func (s *Service) ListPublic(_ context.Context) []domain.PublicProfile {
	return s.repo.ListPublic()
}

// GetForBooking возвращает специалиста для страницы бронирования вместе с эффективной длительностью.
// Пустой или неизвестный id подменяется специалистом по умолчанию
func (s *Service) GetForBooking(ctx context.Context, professionalID, requestedDuration string) *models.BookingProfile {
	profile := &models.BookingProfile{}

	p, err := s.repo.GetByID(professionalID)
	if err != nil {
		p = s.repo.Default()
		profile.IsFallback = true
		s.logger.Info("GetForBooking: professional id=%q not found, using default id=%s", professionalID, p.ID)
	}

	profile.Professional = p
	profile.EffectiveDuration = s.resolver.Resolve(ctx, p, requestedDuration)

	return profile
}

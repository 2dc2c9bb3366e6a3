package models

import "github.com/m04kA/SMC-AgendaService/internal/domain"

// BookingProfile специалист для страницы бронирования
type BookingProfile struct {
	Professional      *domain.Professional
	EffectiveDuration domain.Duration
	// IsFallback true, если запрошенный id не найден и показан специалист по умолчанию
	IsFallback bool
}

package get_professional

import (
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/professionals/models"
)

// DurationOption вариант длительности для переключателя на странице
type DurationOption struct {
	Code      string `json:"code"`
	Label     string `json:"label"`
	Minutes   int    `json:"minutes"`
	Available bool   `json:"available"` // у специалиста есть даты под эту длительность
}

// BookingProfileResponse HTTP ответ для страницы бронирования
type BookingProfileResponse struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Email             string           `json:"email"`
	Bio               string           `json:"bio"`
	Address           string           `json:"address"`
	AvatarURL         string           `json:"avatarUrl"`
	DefaultDuration   string           `json:"defaultDuration"`
	EffectiveDuration string           `json:"effectiveDuration"`
	Durations         []DurationOption `json:"durations"`
	IsFallback        bool             `json:"isFallback"`
}

// FromServiceResponse конвертирует профиль в HTTP ответ
func FromServiceResponse(profile *models.BookingProfile) *BookingProfileResponse {
	p := profile.Professional

	durations := domain.SupportedDurations()
	options := make([]DurationOption, len(durations))
	for i, d := range durations {
		options[i] = DurationOption{
			Code:      d.String(),
			Label:     d.Label(),
			Minutes:   d.Minutes(),
			Available: p.Availability.HasEntries(d),
		}
	}

	return &BookingProfileResponse{
		ID:                p.ID,
		Name:              p.Name,
		Email:             p.Email,
		Bio:               p.Bio,
		Address:           p.Address,
		AvatarURL:         p.AvatarURL,
		DefaultDuration:   p.DefaultDuration.String(),
		EffectiveDuration: profile.EffectiveDuration.String(),
		Durations:         options,
		IsFallback:        profile.IsFallback,
	}
}

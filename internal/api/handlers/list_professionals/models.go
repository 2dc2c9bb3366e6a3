package list_professionals

import "github.com/m04kA/SMC-AgendaService/internal/domain"

// ProfessionalResponse публичный профиль специалиста
type ProfessionalResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	AvatarURL       string `json:"avatarUrl"`
	DefaultDuration string `json:"defaultDuration"`
}

// FromDomain конвертирует публичные профили в HTTP ответ
func FromDomain(profiles []domain.PublicProfile) []ProfessionalResponse {
	result := make([]ProfessionalResponse, len(profiles))
	for i, p := range profiles {
		result[i] = ProfessionalResponse{
			ID:              p.ID,
			Name:            p.Name,
			Email:           p.Email,
			AvatarURL:       p.AvatarURL,
			DefaultDuration: p.DefaultDuration.String(),
		}
	}
	return result
}

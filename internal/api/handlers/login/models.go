package login

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/usecase/authenticate"
)

type LoginRequest struct {
	Email  string `json:"email"`
	Secret string `json:"secret"`
}

type LoginResponse struct {
	Token        string            `json:"token"`
	ExpiresAt    time.Time         `json:"expiresAt"`
	Professional ProfessionalBrief `json:"professional"`
}

type ProfessionalBrief struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

func FromUseCaseResponse(resp *authenticate.Response) *LoginResponse {
	return &LoginResponse{
		Token:     resp.Token,
		ExpiresAt: resp.ExpiresAt.UTC(),
		Professional: ProfessionalBrief{
			ID:        resp.Professional.ID,
			Name:      resp.Professional.Name,
			Email:     resp.Professional.Email,
			AvatarURL: resp.Professional.AvatarURL,
		},
	}
}

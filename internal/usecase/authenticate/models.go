package authenticate

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Request модель запроса на вход
type Request struct {
	Email  string
	Secret string
}

// Response модель ответа с токеном сессии
type Response struct {
	Professional *domain.Professional
	Token        string
	ExpiresAt    time.Time
}

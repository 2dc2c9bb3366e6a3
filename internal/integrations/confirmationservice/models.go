package confirmationservice

import "github.com/m04kA/SMC-AgendaService/internal/domain"

// Confirmation модель подтверждения для ConfirmationService
type Confirmation struct {
	ProfessionalID      string  `json:"professional_id"`
	ProfessionalName    string  `json:"professional_name"`
	ProfessionalAddress string  `json:"professional_address"`
	Date                string  `json:"date"`
	StartTime           string  `json:"start_time"`
	EndTime             string  `json:"end_time"`
	Duration            string  `json:"duration"`
	DurationLabel       string  `json:"duration_label"`
	ClientName          string  `json:"client_name"`
	ClientPhone         string  `json:"client_phone"`
	ClientEmail         *string `json:"client_email,omitempty"`
}

// Receipt ответ ConfirmationService
type Receipt struct {
	ID string `json:"id"`
	// Local true, если клиент выключен и подтверждение никуда не передавалось
	Local bool `json:"-"`
}

// ErrorResponse модель ошибки от ConfirmationService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// FromDomain преобразует доменное подтверждение в модель запроса
func FromDomain(c *domain.BookingConfirmation) *Confirmation {
	out := &Confirmation{
		ProfessionalID:      c.ProfessionalID,
		ProfessionalName:    c.ProfessionalName,
		ProfessionalAddress: c.ProfessionalAddress,
		Date:                c.Date.String(),
		StartTime:           c.StartTime.String(),
		EndTime:             c.EndTime.String(),
		Duration:            c.Duration.String(),
		DurationLabel:       c.Duration.Label(),
		ClientName:          c.Client.FullName,
		ClientPhone:         c.Client.Phone,
	}
	if c.Client.HasEmail() {
		email := c.Client.Email
		out.ClientEmail = &email
	}
	return out
}

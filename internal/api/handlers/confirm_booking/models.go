package confirm_booking

import (
	confirmBooking "github.com/m04kA/SMC-AgendaService/internal/usecase/confirm_booking"
	validateDraft "github.com/m04kA/SMC-AgendaService/internal/usecase/validate_draft"
)

// ConfirmRequest HTTP модель запроса на подтверждение
type ConfirmRequest struct {
	ProfessionalID string `json:"professionalId"`
	Duration       string `json:"duration"`
	Date           string `json:"date"`
	StartTime      string `json:"startTime"`
	FullName       string `json:"fullName"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Consent        bool   `json:"consent"`
}

// ConfirmResponse HTTP модель ответа
type ConfirmResponse struct {
	ProfessionalID      string  `json:"professionalId"`
	ProfessionalName    string  `json:"professionalName"`
	ProfessionalAddress string  `json:"professionalAddress"`
	Date                string  `json:"date"`
	StartTime           string  `json:"startTime"`
	EndTime             string  `json:"endTime"`
	Duration            string  `json:"duration"`
	DurationLabel       string  `json:"durationLabel"`
	FullName            string  `json:"fullName"`
	Phone               string  `json:"phone"`
	Email               *string `json:"email,omitempty"`
	Delivered           bool    `json:"delivered"`
	ReceiptID           string  `json:"receiptId,omitempty"`
}

// ToUseCaseRequest создает запрос use case
func (r *ConfirmRequest) ToUseCaseRequest() *confirmBooking.Request {
	return &confirmBooking.Request{
		ProfessionalID: r.ProfessionalID,
		Duration:       r.Duration,
		Date:           r.Date,
		StartTime:      r.StartTime,
		Contact: validateDraft.Request{
			FullName: r.FullName,
			Phone:    r.Phone,
			Email:    r.Email,
			Consent:  r.Consent,
		},
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *confirmBooking.Response) *ConfirmResponse {
	c := resp.Confirmation
	out := &ConfirmResponse{
		ProfessionalID:      c.ProfessionalID,
		ProfessionalName:    c.ProfessionalName,
		ProfessionalAddress: c.ProfessionalAddress,
		Date:                c.Date.String(),
		StartTime:           c.StartTime.String(),
		EndTime:             c.EndTime.String(),
		Duration:            c.Duration.String(),
		DurationLabel:       c.Duration.Label(),
		FullName:            c.Client.FullName,
		Phone:               c.Client.Phone,
		Delivered:           resp.Delivered,
		ReceiptID:           resp.ReceiptID,
	}
	if c.Client.HasEmail() {
		email := c.Client.Email
		out.Email = &email
	}
	return out
}

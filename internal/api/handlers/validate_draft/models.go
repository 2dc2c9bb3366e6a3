package validate_draft

import (
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	validateDraft "github.com/m04kA/SMC-AgendaService/internal/usecase/validate_draft"
)

// DraftRequest контактные данные из формы бронирования
type DraftRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Consent  bool   `json:"consent"`
}

// DraftResponse нормализованные контактные данные
type DraftResponse struct {
	FullName string  `json:"fullName"`
	Phone    string  `json:"phone"`
	Email    *string `json:"email,omitempty"`
	Consent  bool    `json:"consent"`
}

// ToUseCaseRequest создает запрос use case
func (r *DraftRequest) ToUseCaseRequest() *validateDraft.Request {
	return &validateDraft.Request{
		FullName: r.FullName,
		Phone:    r.Phone,
		Email:    r.Email,
		Consent:  r.Consent,
	}
}

// FromDomain конвертирует черновик в HTTP ответ
func FromDomain(d *domain.BookingDraft) *DraftResponse {
	resp := &DraftResponse{
		FullName: d.FullName,
		Phone:    d.Phone,
		Consent:  d.Consent,
	}
	if d.HasEmail() {
		email := d.Email
		resp.Email = &email
	}
	return resp
}

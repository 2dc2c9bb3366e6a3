package confirm_booking

import (
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/usecase/validate_draft"
)

// Request модель запроса на подтверждение выбранного слота
type Request struct {
	ProfessionalID string
	Duration       string // запрошенная длительность, может быть пустой
	Date           string // YYYY-MM-DD
	StartTime      string // HH:MM
	Contact        validate_draft.Request
}

// Response модель ответа с проверенным подтверждением
type Response struct {
	Confirmation domain.BookingConfirmation
	ReceiptID    string // идентификатор во внешнем сервисе, пустой если не доставлено
	Delivered    bool
}

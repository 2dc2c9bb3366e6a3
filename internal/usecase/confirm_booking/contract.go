package confirm_booking

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/integrations/confirmationservice"
	"github.com/m04kA/SMC-AgendaService/internal/usecase/validate_draft"
)

// ProfessionalRepository интерфейс справочника специалистов
type ProfessionalRepository interface {
	GetByID(id string) (*domain.Professional, error)
}

// DurationResolver интерфейс разрешения эффективной длительности
type DurationResolver interface {
	Resolve(ctx context.Context, p *domain.Professional, requested string) domain.Duration
}

// DraftValidator интерфейс проверки контактных данных
type DraftValidator interface {
	Execute(ctx context.Context, req *validate_draft.Request) (*domain.BookingDraft, error)
}

// ConfirmationServiceClient интерфейс клиента внешнего сервиса подтверждений
type ConfirmationServiceClient interface {
	SendWithGracefulDegradation(ctx context.Context, confirmation *domain.BookingConfirmation) (*confirmationservice.Receipt, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

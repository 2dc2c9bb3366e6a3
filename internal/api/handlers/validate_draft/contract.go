package validate_draft

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	validateDraft "github.com/m04kA/SMC-AgendaService/internal/usecase/validate_draft"
)

type ValidateDraftUseCase interface {
	Execute(ctx context.Context, req *validateDraft.Request) (*domain.BookingDraft, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

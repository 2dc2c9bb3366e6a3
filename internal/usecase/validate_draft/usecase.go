package validate_draft

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// UseCase use case для проверки контактных данных черновика бронирования
type UseCase struct {
	validate *validator.Validate
	metrics  Metrics
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		validate: newValidator(),
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute проверяет все поля сразу и возвращает нормализованный черновик
// или *ValidationError со всеми ошибками по полям
func (uc *UseCase) Execute(_ context.Context, req *Request) (*domain.BookingDraft, error) {
	input := normalize(req)

	if err := uc.validate.Struct(input); err != nil {
		fields := fieldErrors(err)
		if fields == nil {
			uc.logger.Error("ValidateDraft: validator failure: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidDraft, err)
		}
		uc.observe(false)
		uc.logger.Info("ValidateDraft: rejected, fields=%d", len(fields))
		return nil, &ValidationError{Fields: fields}
	}

	uc.observe(true)
	return &domain.BookingDraft{
		FullName: input.FullName,
		Phone:    input.Phone,
		Email:    input.Email,
		Consent:  input.Consent,
	}, nil
}

func (uc *UseCase) observe(valid bool) {
	if uc.metrics != nil {
		uc.metrics.ObserveDraftValidation(valid)
	}
}

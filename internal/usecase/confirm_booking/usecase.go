package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/integrations/confirmationservice"
)

// UseCase use case подтверждения выбранного слота.
// Ничего не сохраняет: проверяет выбор и контактные данные и передает
// подтверждение во внешний сервис
type UseCase struct {
	repo      ProfessionalRepository
	resolver  DurationResolver
	validator DraftValidator
	client    ConfirmationServiceClient
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	repo ProfessionalRepository,
	resolver DurationResolver,
	validator DraftValidator,
	client ConfirmationServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		repo:      repo,
		resolver:  resolver,
		validator: validator,
		client:    client,
		logger:    logger,
	}
}

// Execute выполняет use case подтверждения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: professional=%s, duration=%q, date=%s, time=%s",
		req.ProfessionalID, req.Duration, req.Date, req.StartTime)

	// 1. Валидация формата
	date, start, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("ConfirmBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем специалиста
	p, err := uc.repo.GetByID(req.ProfessionalID)
	if err != nil {
		uc.logger.Warn("ConfirmBooking: professional id=%s not found", req.ProfessionalID)
		return nil, ErrProfessionalNotFound
	}

	// 3. Проверяем слот под эффективной длительностью
	duration := uc.resolver.Resolve(ctx, p, req.Duration)
	if err := validateSelection(p, duration, date, start); err != nil {
		uc.logger.Warn("ConfirmBooking: selection rejected: %v", err)
		return nil, err
	}

	end, err := start.AddMinutes(duration.Minutes())
	if err != nil {
		uc.logger.Error("ConfirmBooking: failed to compute end time: %v", err)
		return nil, fmt.Errorf("%w: compute end time: %v", ErrInternal, err)
	}

	// 4. Проверяем контактные данные, ошибки по полям возвращаются как есть
	draft, err := uc.validator.Execute(ctx, &req.Contact)
	if err != nil {
		return nil, err
	}

	confirmation := domain.BookingConfirmation{
		ProfessionalID:      p.ID,
		ProfessionalName:    p.Name,
		ProfessionalAddress: p.Address,
		Date:                date,
		StartTime:           start,
		EndTime:             end,
		Duration:            duration,
		Client:              *draft,
	}

	// 5. Передаем подтверждение. Недоступность внешнего сервиса не отменяет проверенный выбор
	resp := &Response{Confirmation: confirmation}
	receipt, err := uc.client.SendWithGracefulDegradation(ctx, &confirmation)
	switch {
	case err == nil:
		resp.Delivered = !receipt.Local
		resp.ReceiptID = receipt.ID
	case errors.Is(err, confirmationservice.ErrServiceDegraded):
		uc.logger.Warn("ConfirmBooking: confirmation not delivered: %v", err)
	case errors.Is(err, confirmationservice.ErrRejected):
		return nil, fmt.Errorf("%w: %v", ErrConfirmationRejected, err)
	default:
		uc.logger.Error("ConfirmBooking: failed to send confirmation: %v", err)
		return nil, fmt.Errorf("%w: send confirmation: %v", ErrInternal, err)
	}

	uc.logger.Info("ConfirmBooking: confirmed professional=%s, date=%s, %s - %s (delivered=%t)",
		p.ID, date, start, end, resp.Delivered)

	return resp, nil
}

package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	confirmBooking "github.com/m04kA/SMC-AgendaService/internal/usecase/confirm_booking"
	validateDraft "github.com/m04kA/SMC-AgendaService/internal/usecase/validate_draft"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidParams        = "некорректные дата или время"
	msgProfessionalNotFound = "специалист не найден"
	msgDateNotAvailable     = "на выбранную дату нет записи"
	msgSlotNotOffered       = "выбранное время не предлагается"
	msgSlotNotAvailable     = "выбранное время уже занято"
	msgInvalidDraft         = "проверьте контактные данные"
	msgRejected             = "запись отклонена сервисом подтверждения"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConfirmRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var validationErr *validateDraft.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Info("POST /bookings/confirm - Draft rejected: fields=%d", len(validationErr.Fields))
			handlers.RespondValidationError(w, msgInvalidDraft, validationErr.Fields)

		case errors.Is(err, confirmBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/confirm - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, confirmBooking.ErrProfessionalNotFound):
			h.logger.Warn("POST /bookings/confirm - Professional not found: professional_id=%s", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, confirmBooking.ErrDateNotAvailable):
			handlers.RespondError(w, http.StatusConflict, msgDateNotAvailable)

		case errors.Is(err, confirmBooking.ErrSlotNotOffered):
			handlers.RespondError(w, http.StatusConflict, msgSlotNotOffered)

		case errors.Is(err, confirmBooking.ErrSlotNotAvailable):
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, confirmBooking.ErrConfirmationRejected):
			h.logger.Warn("POST /bookings/confirm - Confirmation rejected: %v", err)
			handlers.RespondError(w, http.StatusConflict, msgRejected)

		default:
			h.logger.Error("POST /bookings/confirm - Failed to confirm: professional_id=%s, error=%v", req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/confirm - Booking confirmed: professional_id=%s, date=%s, time=%s",
		result.Confirmation.ProfessionalID, result.Confirmation.Date, result.Confirmation.StartTime)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

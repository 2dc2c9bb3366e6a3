package validate_draft

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	validateDraft "github.com/m04kA/SMC-AgendaService/internal/usecase/validate_draft"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDraft       = "проверьте контактные данные"
)

type Handler struct {
	useCase ValidateDraftUseCase
	logger  Logger
}

func NewHandler(useCase ValidateDraftUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	draft, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var validationErr *validateDraft.ValidationError
		if errors.As(err, &validationErr) {
			h.logger.Info("POST /bookings/validate - Draft rejected: fields=%d", len(validationErr.Fields))
			handlers.RespondValidationError(w, msgInvalidDraft, validationErr.Fields)
			return
		}
		h.logger.Error("POST /bookings/validate - Failed to validate draft: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(draft))
}

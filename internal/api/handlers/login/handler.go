package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/usecase/authenticate"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingCredentials = "укажите email и пароль"
	msgInvalidCredentials = "неверный email или пароль"
)

type Handler struct {
	useCase AuthenticateUseCase
	logger  Logger
}

func NewHandler(useCase AuthenticateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &authenticate.Request{
		Email:  req.Email,
		Secret: req.Secret,
	})
	if err != nil {
		switch {
		case errors.Is(err, authenticate.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingCredentials)
		case errors.Is(err, authenticate.ErrInvalidCredentials):
			// email в лог не пишем
			h.logger.Warn("POST /auth/login - Invalid credentials")
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
		default:
			h.logger.Error("POST /auth/login - Failed to authenticate: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - Professional signed in: professional_id=%s", resp.Professional.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}

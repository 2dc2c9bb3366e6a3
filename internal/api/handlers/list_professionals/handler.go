package list_professionals

import (
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
)

type Handler struct {
	service ProfessionalsService
	logger  Logger
}

func NewHandler(service ProfessionalsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	profiles := h.service.ListPublic(r.Context())

	h.logger.Info("GET /professionals - Professionals listed: count=%d", len(profiles))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(profiles))
}

package get_professional

import (
	"net/http"

	"github.com/gorilla/mux"

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

// Handle GET /api/v1/professionals/{professionalId}
// Query params: duration (optional)
// Неизвестный id отдает специалиста по умолчанию с isFallback=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professionalID := mux.Vars(r)["professionalId"]
	requested := r.URL.Query().Get("duration")

	profile := h.service.GetForBooking(r.Context(), professionalID, requested)

	h.logger.Info("GET /professionals/{id} - Profile retrieved: requested_id=%s, id=%s, duration=%s, fallback=%t",
		professionalID, profile.Professional.ID, profile.EffectiveDuration, profile.IsFallback)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(profile))
}

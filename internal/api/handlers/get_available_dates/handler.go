package get_available_dates

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/available-dates
// Query params: duration (optional). Код проходит разрешение эффективной длительности
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professionalID := mux.Vars(r)["professionalId"]
	requested := r.URL.Query().Get("duration")

	duration, dates := h.service.ListAvailableDates(r.Context(), professionalID, requested)

	h.logger.Info("GET /professionals/{id}/available-dates - Dates retrieved: professional_id=%s, duration=%s, dates_count=%d",
		professionalID, duration, len(dates))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(professionalID, duration, dates))
}

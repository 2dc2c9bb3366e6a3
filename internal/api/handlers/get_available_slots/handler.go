package get_available_slots

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

const (
	msgMissingDate = "дата обязательна"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/professionals/{professionalId}/available-slots
// Query params: date (required, YYYY-MM-DD), duration (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professionalID := mux.Vars(r)["professionalId"]

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /professionals/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := types.ParseDateKey(dateStr)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	requested := r.URL.Query().Get("duration")
	duration, slots := h.service.ListSlots(r.Context(), professionalID, requested, date)

	h.logger.Info("GET /professionals/{id}/available-slots - Slots retrieved: professional_id=%s, date=%s, duration=%s, slots_count=%d",
		professionalID, date, duration, len(slots))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(professionalID, date, duration, slots))
}

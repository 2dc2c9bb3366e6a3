package get_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/service/schedule"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

const (
	msgUnauthorized         = "требуется авторизация"
	msgInvalidDate          = "некорректная дата, ожидается формат YYYY-MM-DD"
	msgProfessionalNotFound = "специалист не найден"
)

type Handler struct {
	service ScheduleService
	logger  Logger
	now     func() time.Time
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		now:     time.Now,
	}
}

// Handle GET /api/v1/me/schedule?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professionalID, ok := middleware.GetProfessionalID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	date := types.NewDateKey(h.now())
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := types.ParseDateKey(raw)
		if err != nil {
			h.logger.Warn("GET /me/schedule - Invalid date: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	p, events, err := h.service.DayAgenda(r.Context(), professionalID, date)
	if err != nil {
		if errors.Is(err, schedule.ErrProfessionalNotFound) {
			// токен выпущен для специалиста, которого нет в текущем каталоге
			h.logger.Warn("GET /me/schedule - Professional not found: professional_id=%s", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)
			return
		}
		h.logger.Error("GET /me/schedule - Failed to load schedule: professional_id=%s, error=%v", professionalID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(p, date.String(), events))
}

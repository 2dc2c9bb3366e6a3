package get_schedule

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/infra/seed"
	"github.com/m04kA/SMC-AgendaService/internal/infra/storage/directory"
	scheduleStorage "github.com/m04kA/SMC-AgendaService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-AgendaService/internal/service/schedule"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
)

var base = time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)

func newHandler(t *testing.T) *Handler {
	t.Helper()

	catalog := seed.Demo(base)
	professionals, err := directory.NewRepository(catalog.Professionals)
	require.NoError(t, err)

	log := logger.NewNop()
	h := NewHandler(schedule.NewService(scheduleStorage.NewRepository(catalog.Events), professionals, log), log)
	h.now = func() time.Time { return base }
	return h
}

func get(h *Handler, target, professionalID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if professionalID != "" {
		req = req.WithContext(middleware.WithProfessionalID(context.Background(), professionalID))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Handle_DefaultsToToday(t *testing.T) {
	rec := get(newHandler(t), "/api/v1/me/schedule", seed.DemoCamilaID)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ScheduleResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Equal(t, "2025-03-09", resp.Date)
	assert.Equal(t, seed.DemoCamilaID, resp.Professional.ID)
	require.Len(t, resp.Events, 3)
	for i := 1; i < len(resp.Events); i++ {
		assert.True(t, resp.Events[i-1].StartTime <= resp.Events[i].StartTime)
	}
	assert.NotEmpty(t, resp.Events[0].EndTime)
}

func TestHandler_Handle_ExplicitDateWithoutEvents(t *testing.T) {
	rec := get(newHandler(t), "/api/v1/me/schedule?date=2030-01-01", seed.DemoCamilaID)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, mustEvents(t, rec))
}

func TestHandler_Handle_Errors(t *testing.T) {
	h := newHandler(t)

	assert.Equal(t, http.StatusUnauthorized, get(h, "/api/v1/me/schedule", "").Code)
	assert.Equal(t, http.StatusBadRequest, get(h, "/api/v1/me/schedule?date=09-03-2025", seed.DemoCamilaID).Code)
	assert.Equal(t, http.StatusNotFound, get(h, "/api/v1/me/schedule", "9b7d6a3e-0000-4000-8000-000000000000").Code)
}

func TestFromDomain_EndTime(t *testing.T) {
	p := &domain.Professional{ID: "p", Name: "n"}
	events := []domain.ScheduledEvent{{ID: "e", StartTime: "09:00", Duration: domain.Duration30}}

	resp := FromDomain(p, "2025-03-09", events)

	require.Len(t, resp.Events, 1)
	assert.Equal(t, "09:30", resp.Events[0].EndTime)
	assert.Equal(t, "30", resp.Events[0].Duration)
}

func mustEvents(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	return string(raw["events"])
}

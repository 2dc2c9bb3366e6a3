package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/infra/seed"
	"github.com/m04kA/SMC-AgendaService/internal/infra/storage/directory"
	scheduleRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	professionals, err := directory.NewRepository([]*domain.Professional{
		{ID: "p-1", Name: "Dra. Camila Nogueira", Email: "camila.nogueira@gmail.com", DefaultDuration: domain.Duration60},
	})
	require.NoError(t, err)

	events := scheduleRepo.NewRepository(map[string]seed.EventsByDate{
		"p-1": {
			"2025-03-09": {
				{ID: "e-2", Title: "Процедура", StartTime: "11:00", Duration: domain.Duration60},
				{ID: "e-1", Title: "Консультация", StartTime: "09:00", Duration: domain.Duration60},
			},
		},
	})

	return NewService(events, professionals, logger.NewNop())
}

func TestService_EventsFor(t *testing.T) {
	svc := newTestService(t)

	events := svc.EventsFor(context.Background(), "p-1", "2025-03-09")
	require.Len(t, events, 2)
	assert.Equal(t, types.TimeString("09:00"), events[0].StartTime)
	assert.Equal(t, types.TimeString("11:00"), events[1].StartTime)

	assert.Empty(t, svc.EventsFor(context.Background(), "p-1", "2025-03-10"))
	assert.Empty(t, svc.EventsFor(context.Background(), "unknown", "2025-03-09"))
}

func TestService_DayAgenda(t *testing.T) {
	svc := newTestService(t)

	p, events, err := svc.DayAgenda(context.Background(), "p-1", "2025-03-09")
	require.NoError(t, err)
	assert.Equal(t, "Dra. Camila Nogueira", p.Name)
	assert.Len(t, events, 2)

	_, _, err = svc.DayAgenda(context.Background(), "unknown", "2025-03-09")
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

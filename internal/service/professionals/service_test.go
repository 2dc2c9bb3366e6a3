package professionals

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/infra/storage/directory"
	"github.com/m04kA/SMC-AgendaService/internal/service/availability"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	repo, err := directory.NewRepository([]*domain.Professional{
		{
			ID:              "p-1",
			Name:            "Dra. Camila Nogueira",
			Email:           "camila.nogueira@gmail.com",
			DefaultDuration: domain.Duration60,
			Availability: domain.AvailabilityCalendar{
				domain.Duration60: {"2025-03-10": {Slots: []types.TimeString{"09:00"}}},
			},
		},
		{
			ID:              "p-2",
			Name:            "Coach Pedro Azevedo",
			Email:           "pedro.azevedo@gmail.com",
			DefaultDuration: domain.Duration30,
			Availability: domain.AvailabilityCalendar{
				domain.Duration30: {"2025-03-11": {Slots: []types.TimeString{"07:30"}}},
				domain.Duration60: {"2025-03-11": {Slots: []types.TimeString{"08:00"}}},
			},
		},
	})
	require.NoError(t, err)

	log := logger.NewNop()
	return NewService(repo, availability.NewService(repo, nil, log), log)
}

func TestService_ListPublic(t *testing.T) {
	svc := newTestService(t)

	list := svc.ListPublic(context.Background())
	require.Len(t, list, 2)
	assert.Equal(t, "p-1", list[0].ID)
	assert.Equal(t, domain.Duration30, list[1].DefaultDuration)
}

func TestService_GetForBooking(t *testing.T) {
	svc := newTestService(t)

	profile := svc.GetForBooking(context.Background(), "p-2", "60")
	assert.False(t, profile.IsFallback)
	assert.Equal(t, "p-2", profile.Professional.ID)
	assert.Equal(t, domain.Duration60, profile.EffectiveDuration)

	profile = svc.GetForBooking(context.Background(), "p-2", "")
	assert.Equal(t, domain.Duration30, profile.EffectiveDuration)
}

func TestService_GetForBooking_FallsBackToDefault(t *testing.T) {
	svc := newTestService(t)

	for _, id := range []string{"", "unknown"} {
		profile := svc.GetForBooking(context.Background(), id, "30")
		assert.True(t, profile.IsFallback, id)
		assert.Equal(t, "p-1", profile.Professional.ID, id)
		assert.Equal(t, domain.Duration60, profile.EffectiveDuration, id)
	}
}

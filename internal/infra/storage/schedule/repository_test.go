package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/infra/seed"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

func TestRepository_EventsFor_SortedByStart(t *testing.T) {
	source := map[string]seed.EventsByDate{
		"p-1": {
			"2025-03-09": {
				{ID: "e-3", StartTime: "16:00", Duration: domain.Duration30},
				{ID: "e-1", StartTime: "09:00", Duration: domain.Duration60},
				{ID: "e-2", StartTime: "11:00", Duration: domain.Duration60},
			},
		},
	}
	repo := NewRepository(source)

	events := repo.EventsFor("p-1", "2025-03-09")
	require.Len(t, events, 3)
	assert.Equal(t, []types.TimeString{"09:00", "11:00", "16:00"},
		[]types.TimeString{events[0].StartTime, events[1].StartTime, events[2].StartTime})

	// исходные данные не пересортированы
	assert.Equal(t, "e-3", source["p-1"]["2025-03-09"][0].ID)
}

func TestRepository_EventsFor_Misses(t *testing.T) {
	repo := NewRepository(map[string]seed.EventsByDate{
		"p-1": {"2025-03-09": {{ID: "e-1", StartTime: "09:00"}}},
	})

	assert.Empty(t, repo.EventsFor("p-1", "2025-03-10"))
	assert.Empty(t, repo.EventsFor("unknown", "2025-03-09"))
	assert.NotNil(t, repo.EventsFor("unknown", "2025-03-09"))
}

func TestRepository_EventsFor_ReturnsCopy(t *testing.T) {
	repo := NewRepository(map[string]seed.EventsByDate{
		"p-1": {"2025-03-09": {{ID: "e-1", StartTime: "09:00"}}},
	})

	events := repo.EventsFor("p-1", "2025-03-09")
	events[0].ID = "changed"

	assert.Equal(t, "e-1", repo.EventsFor("p-1", "2025-03-09")[0].ID)
}

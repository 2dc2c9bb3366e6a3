package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/infra/storage/directory"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

type metricsMock struct {
	mock.Mock
}

func (m *metricsMock) ObserveDurationResolution(step string) {
	m.Called(step)
}

const (
	camilaID = "f4b3ad70-3d4a-4f1e-b613-35283b8b67f1"
	pedroID  = "0fbb9e8d-cc12-4b3c-8d80-8a93bd2c3ab4"
	emptyID  = "1d0339a9-95d0-4b6a-bf37-928b05c4c092"
)

func testProfessionals() []*domain.Professional {
	return []*domain.Professional{
		{
			ID:              camilaID,
			Name:            "Dra. Camila Nogueira",
			Email:           "camila.nogueira@gmail.com",
			DefaultDuration: domain.Duration60,
			Availability: domain.AvailabilityCalendar{
				domain.Duration60: {
					"2025-03-13": {Slots: []types.TimeString{"09:00"}},
					"2025-03-10": {Slots: []types.TimeString{"09:00", "10:30", "14:30"}, Blocked: []types.TimeString{"10:30"}},
				},
				domain.Duration30: {
					"2025-03-11": {Slots: []types.TimeString{"15:00", "09:00"}},
				},
			},
		},
		{
			// длительность по умолчанию без дат
			ID:              pedroID,
			Name:            "Coach Pedro Azevedo",
			Email:           "pedro.azevedo@gmail.com",
			DefaultDuration: domain.Duration30,
			Availability: domain.AvailabilityCalendar{
				domain.Duration60: {
					"2025-03-12": {Slots: []types.TimeString{"08:00"}},
				},
			},
		},
		{
			ID:              emptyID,
			Name:            "Arq. Sofia Martins",
			Email:           "sofia.martins@gmail.com",
			DefaultDuration: domain.Duration30,
			Availability:    domain.AvailabilityCalendar{},
		},
	}
}

func newTestService(t *testing.T, metrics Metrics) *Service {
	t.Helper()
	repo, err := directory.NewRepository(testProfessionals())
	require.NoError(t, err)
	return NewService(repo, metrics, logger.NewNop())
}

func TestResolutionOrder(t *testing.T) {
	assert.Equal(t, []ResolutionStep{StepRequested, StepDefault, StepPriority, StepEmptyDefault}, ResolutionOrder)
}

func TestResolveDuration(t *testing.T) {
	professionals := testProfessionals()
	camila, pedro, empty := professionals[0], professionals[1], professionals[2]

	tests := []struct {
		name      string
		p         *domain.Professional
		requested string
		want      domain.Duration
		wantStep  ResolutionStep
	}{
		{name: "valid request with entries", p: camila, requested: "30", want: domain.Duration30, wantStep: StepRequested},
		{name: "no request uses default", p: camila, requested: "", want: domain.Duration60, wantStep: StepDefault},
		{name: "invalid request ignored", p: camila, requested: "45", want: domain.Duration60, wantStep: StepDefault},
		{name: "request and default without entries fall to priority", p: pedro, requested: "30", want: domain.Duration60, wantStep: StepPriority},
		{name: "empty default falls to priority", p: pedro, requested: "", want: domain.Duration60, wantStep: StepPriority},
		{name: "nothing configured returns default", p: empty, requested: "60", want: domain.Duration30, wantStep: StepEmptyDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, step := ResolveDuration(tt.p, tt.requested)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantStep, step)

			// повторный вызов дает тот же результат
			again, againStep := ResolveDuration(tt.p, tt.requested)
			assert.Equal(t, got, again)
			assert.Equal(t, step, againStep)
		})
	}
}

func TestResolveDuration_PriorityPrefersLonger(t *testing.T) {
	p := &domain.Professional{
		ID:              "p",
		DefaultDuration: "",
		Availability: domain.AvailabilityCalendar{
			domain.Duration30: {"2025-03-10": {Slots: []types.TimeString{"09:00"}}},
			domain.Duration60: {"2025-03-10": {Slots: []types.TimeString{"09:00"}}},
		},
	}

	got, step := ResolveDuration(p, "")
	assert.Equal(t, domain.Duration60, got)
	assert.Equal(t, StepPriority, step)
}

func TestService_Resolve_NilMetrics(t *testing.T) {
	svc := newTestService(t, nil)
	p := testProfessionals()[0]

	assert.Equal(t, domain.Duration60, svc.Resolve(context.Background(), p, ""))
}

func TestService_ListAvailableDates(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	tests := []struct {
		name         string
		id           string
		requested    string
		wantDuration domain.Duration
		wantDates    []types.DateKey
	}{
		{name: "requested with entries", id: camilaID, requested: "60", wantDuration: domain.Duration60, wantDates: []types.DateKey{"2025-03-10", "2025-03-13"}},
		{name: "requested other duration", id: camilaID, requested: "30", wantDuration: domain.Duration30, wantDates: []types.DateKey{"2025-03-11"}},
		{name: "omitted uses default", id: camilaID, requested: "", wantDuration: domain.Duration60, wantDates: []types.DateKey{"2025-03-10", "2025-03-13"}},
		{name: "unknown code degrades to default", id: camilaID, requested: "45", wantDuration: domain.Duration60, wantDates: []types.DateKey{"2025-03-10", "2025-03-13"}},
		{name: "requested without entries falls through", id: pedroID, requested: "30", wantDuration: domain.Duration60, wantDates: []types.DateKey{"2025-03-12"}},
		{name: "nothing configured", id: emptyID, requested: "60", wantDuration: domain.Duration30, wantDates: []types.DateKey{}},
		{name: "unknown professional", id: "unknown", requested: "60", wantDuration: "", wantDates: []types.DateKey{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			duration, dates := svc.ListAvailableDates(ctx, tt.id, tt.requested)
			assert.Equal(t, tt.wantDuration, duration)
			assert.Equal(t, tt.wantDates, dates)
		})
	}
}

func TestService_ListAvailableDates_RecordsResolution(t *testing.T) {
	metrics := &metricsMock{}
	metrics.On("ObserveDurationResolution", string(StepPriority)).Once()
	svc := newTestService(t, metrics)

	_, _ = svc.ListAvailableDates(context.Background(), pedroID, "30")

	metrics.AssertExpectations(t)
}

func TestService_ListSlots(t *testing.T) {
	svc := newTestService(t, nil)

	duration, slots := svc.ListSlots(context.Background(), camilaID, "60", "2025-03-10")

	assert.Equal(t, domain.Duration60, duration)
	assert.Equal(t, []domain.AvailableSlot{
		{StartTime: "09:00", EndTime: "10:00", Duration: domain.Duration60, Disabled: false},
		{StartTime: "10:30", EndTime: "11:30", Duration: domain.Duration60, Disabled: true},
		{StartTime: "14:30", EndTime: "15:30", Duration: domain.Duration60, Disabled: false},
	}, slots)
}

func TestService_ListSlots_PreservesConfiguredOrder(t *testing.T) {
	svc := newTestService(t, nil)

	_, slots := svc.ListSlots(context.Background(), camilaID, "30", "2025-03-11")

	require.Len(t, slots, 2)
	assert.Equal(t, types.TimeString("15:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("15:30"), slots[0].EndTime)
	assert.Equal(t, types.TimeString("09:00"), slots[1].StartTime)
}

func TestService_ListSlots_EffectiveDuration(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	// у Педро нет дат для "30", запрос проваливается в "60"
	duration, slots := svc.ListSlots(ctx, pedroID, "30", "2025-03-12")
	assert.Equal(t, domain.Duration60, duration)
	assert.Equal(t, []domain.AvailableSlot{
		{StartTime: "08:00", EndTime: "09:00", Duration: domain.Duration60},
	}, slots)

	duration, slots = svc.ListSlots(ctx, camilaID, "45", "2025-03-10")
	assert.Equal(t, domain.Duration60, duration)
	assert.Len(t, slots, 3)
}

func TestService_ListSlots_Misses(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	duration, slots := svc.ListSlots(ctx, camilaID, "60", "2025-03-11")
	assert.Equal(t, domain.Duration60, duration)
	assert.Empty(t, slots)

	duration, slots = svc.ListSlots(ctx, "unknown", "60", "2025-03-10")
	assert.Empty(t, duration)
	assert.Empty(t, slots)
}

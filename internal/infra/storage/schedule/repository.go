package schedule

import (
	"sort"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/infra/seed"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Repository подтвержденные события специалистов в памяти, только чтение
type Repository struct {
	events map[string]seed.EventsByDate
}

// NewRepository создает хранилище. События каждого дня копируются и
// сортируются по времени начала, исходный каталог не меняется
func NewRepository(events map[string]seed.EventsByDate) *Repository {
	sorted := make(map[string]seed.EventsByDate, len(events))
	for professionalID, byDate := range events {
		days := make(seed.EventsByDate, len(byDate))
		for date, list := range byDate {
			day := append([]domain.ScheduledEvent(nil), list...)
			// HH:MM сравниваются как строки
			sort.SliceStable(day, func(i, j int) bool {
				return day[i].StartTime.IsBefore(day[j].StartTime)
			})
			days[date] = day
		}
		sorted[professionalID] = days
	}
	return &Repository{events: sorted}
}

// EventsFor возвращает события специалиста за день по возрастанию времени начала.
// Неизвестный специалист или день без событий дают пустой список
func (r *Repository) EventsFor(professionalID string, date types.DateKey) []domain.ScheduledEvent {
	day := r.events[professionalID][date]
	return append([]domain.ScheduledEvent{}, day...)
}

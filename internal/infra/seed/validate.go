package seed

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Validate проверяет инварианты каталога.
// Нарушение означает ошибку в самих данных, поэтому сервис не должен стартовать.
// Возвращает все найденные проблемы сразу (errors.Join), каждая обернута в ErrInvalidSeed.
func (c *Catalog) Validate() error {
	var errs []error
	fail := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidSeed, fmt.Sprintf(format, args...)))
	}

	if len(c.Professionals) == 0 {
		fail("catalog has no professionals")
	}

	ids := make(map[string]struct{}, len(c.Professionals))
	emails := make(map[string]struct{}, len(c.Professionals))

	for i, p := range c.Professionals {
		if p == nil {
			fail("professional #%d is nil", i)
			continue
		}

		if _, err := uuid.Parse(p.ID); err != nil {
			fail("professional #%d: id %q is not a UUID", i, p.ID)
		}
		if _, dup := ids[p.ID]; dup {
			fail("professional %s: duplicate id", p.ID)
		}
		ids[p.ID] = struct{}{}

		if strings.TrimSpace(p.Name) == "" {
			fail("professional %s: empty name", p.ID)
		}

		email := strings.ToLower(strings.TrimSpace(p.Email))
		if email == "" {
			fail("professional %s: empty email", p.ID)
		} else if _, dup := emails[email]; dup {
			fail("professional %s: duplicate email %q", p.ID, p.Email)
		}
		emails[email] = struct{}{}

		if !p.DefaultDuration.IsValid() {
			fail("professional %s: unknown default duration %q", p.ID, p.DefaultDuration)
		}

		for duration, schedule := range p.Availability {
			if !duration.IsValid() {
				fail("professional %s: unknown duration %q in calendar", p.ID, duration)
				continue
			}
			if len(schedule) == 0 {
				fail("professional %s: duration %s has no dates", p.ID, duration)
				continue
			}
			for date, day := range schedule {
				for _, msg := range validateDay(duration, date, day) {
					fail("professional %s, duration %s: %s", p.ID, duration, msg)
				}
			}
		}
	}

	eventIDs := make(map[string]struct{})
	for professionalID, byDate := range c.Events {
		if _, ok := ids[professionalID]; !ok {
			fail("events reference unknown professional %q", professionalID)
		}
		for date, events := range byDate {
			if _, err := types.ParseDateKey(string(date)); err != nil {
				fail("professional %s: event date: %v", professionalID, err)
			}
			for _, event := range events {
				if event.ID == "" {
					fail("professional %s, date %s: event without id", professionalID, date)
				} else if _, dup := eventIDs[event.ID]; dup {
					fail("event %s: duplicate id", event.ID)
				}
				eventIDs[event.ID] = struct{}{}

				if !event.Duration.IsValid() {
					fail("event %s: unknown duration %q", event.ID, event.Duration)
					continue
				}
				if err := event.StartTime.Validate(); err != nil {
					fail("event %s: start time: %v", event.ID, err)
					continue
				}
				if _, err := event.EndTime(); err != nil {
					fail("event %s: %v", event.ID, err)
				}
			}
		}
	}

	return errors.Join(errs...)
}

// validateDay проверяет один день календаря: формат даты, уникальность слотов,
// вложенность заблокированных слотов в предложенные и окончание сеанса в пределах дня
func validateDay(duration domain.Duration, date types.DateKey, day domain.DayAvailability) []string {
	var problems []string

	if _, err := types.ParseDateKey(string(date)); err != nil {
		problems = append(problems, err.Error())
	}

	seen := make(map[types.TimeString]struct{}, len(day.Slots))
	for _, slot := range day.Slots {
		if err := slot.Validate(); err != nil {
			problems = append(problems, fmt.Sprintf("date %s: %v", date, err))
			continue
		}
		if _, dup := seen[slot]; dup {
			problems = append(problems, fmt.Sprintf("date %s: duplicate slot %s", date, slot))
		}
		seen[slot] = struct{}{}

		if _, err := slot.AddMinutes(duration.Minutes()); err != nil {
			problems = append(problems, fmt.Sprintf("date %s: slot %s: %v", date, slot, err))
		}
	}

	for _, blocked := range day.Blocked {
		if _, ok := seen[blocked]; !ok {
			problems = append(problems, fmt.Sprintf("date %s: blocked slot %s is not offered", date, blocked))
		}
	}

	return problems
}

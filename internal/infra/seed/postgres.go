package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// DBQuerier интерфейс чтения из БД. Поддерживает *sql.DB и *sql.Tx
type DBQuerier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// PostgresLoader читает каталог из PostgreSQL.
// Таблицы используются только на чтение при старте сервиса.
type PostgresLoader struct {
	db DBQuerier
}

// NewPostgresLoader создает загрузчик из PostgreSQL
func NewPostgresLoader(db DBQuerier) *PostgresLoader {
	return &PostgresLoader{db: db}
}

// Load читает специалистов, их календари и подтвержденные события
func (l *PostgresLoader) Load(ctx context.Context) (*Catalog, error) {
	professionals, err := l.loadProfessionals(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Professional, len(professionals))
	for _, p := range professionals {
		byID[p.ID] = p
	}

	if err := l.loadAvailability(ctx, byID); err != nil {
		return nil, err
	}

	events, err := l.loadEvents(ctx)
	if err != nil {
		return nil, err
	}

	return &Catalog{Professionals: professionals, Events: events}, nil
}

func (l *PostgresLoader) loadProfessionals(ctx context.Context) ([]*domain.Professional, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"email",
		"bio",
		"address",
		"avatar_url",
		"default_duration",
	).
		From("professionals").
		OrderBy("position", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: loadProfessionals - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadProfessionals - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var professionals []*domain.Professional
	for rows.Next() {
		p := &domain.Professional{Availability: make(domain.AvailabilityCalendar)}
		var bio, address, avatarURL sql.NullString
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Email,
			&bio,
			&address,
			&avatarURL,
			&p.DefaultDuration,
		); err != nil {
			return nil, fmt.Errorf("%w: loadProfessionals - scan: %v", ErrScanRow, err)
		}
		p.Bio = bio.String
		p.Address = address.String
		p.AvatarURL = avatarURL.String
		professionals = append(professionals, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadProfessionals - rows iteration: %v", ErrScanRow, err)
	}

	return professionals, nil
}

// loadAvailability читает по строке на слот; порядок position сохраняет порядок слотов в дне
func (l *PostgresLoader) loadAvailability(ctx context.Context, byID map[string]*domain.Professional) error {
	query, args, err := psqlbuilder.Select(
		"professional_id",
		"duration",
		"slot_date",
		"slot_time",
		"is_blocked",
	).
		From("availability_slots").
		OrderBy("professional_id", "duration", "slot_date", "position").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadAvailability - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadAvailability - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			professionalID string
			duration       domain.Duration
			date           types.DateKey
			slot           types.TimeString
			blocked        bool
		)
		if err := rows.Scan(&professionalID, &duration, &date, &slot, &blocked); err != nil {
			return fmt.Errorf("%w: loadAvailability - scan: %v", ErrScanRow, err)
		}

		p, ok := byID[professionalID]
		if !ok {
			return fmt.Errorf("%w: availability references unknown professional %q", ErrInvalidSeed, professionalID)
		}

		schedule := p.Availability[duration]
		if schedule == nil {
			schedule = make(domain.DaySchedule)
			p.Availability[duration] = schedule
		}
		d := schedule[date]
		d.Slots = append(d.Slots, slot)
		if blocked {
			d.Blocked = append(d.Blocked, slot)
		}
		schedule[date] = d
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadAvailability - rows iteration: %v", ErrScanRow, err)
	}

	return nil
}

func (l *PostgresLoader) loadEvents(ctx context.Context) (map[string]EventsByDate, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"professional_id",
		"event_date",
		"title",
		"start_time",
		"duration",
		"client_name",
		"location",
	).
		From("scheduled_events").
		OrderBy("professional_id", "event_date", "start_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: loadEvents - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadEvents - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	events := make(map[string]EventsByDate)
	for rows.Next() {
		var (
			e              domain.ScheduledEvent
			professionalID string
			date           types.DateKey
			location       sql.NullString
		)
		if err := rows.Scan(
			&e.ID,
			&professionalID,
			&date,
			&e.Title,
			&e.StartTime,
			&e.Duration,
			&e.ClientName,
			&location,
		); err != nil {
			return nil, fmt.Errorf("%w: loadEvents - scan: %v", ErrScanRow, err)
		}
		if location.Valid {
			loc := location.String
			e.Location = &loc
		}

		byDate, ok := events[professionalID]
		if !ok {
			byDate = make(EventsByDate)
			events[professionalID] = byDate
		}
		byDate[date] = append(byDate[date], e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadEvents - rows iteration: %v", ErrScanRow, err)
	}

	return events, nil
}

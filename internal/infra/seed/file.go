package seed

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// fileSeed структура TOML файла с начальными данными
type fileSeed struct {
	Professionals []fileProfessional `toml:"professionals"`
	Events        []fileEvent        `toml:"events"`
}

type fileProfessional struct {
	ID              string    `toml:"id"`
	Name            string    `toml:"name"`
	Email           string    `toml:"email"`
	Bio             string    `toml:"bio"`
	Address         string    `toml:"address"`
	AvatarURL       string    `toml:"avatar_url"`
	DefaultDuration string    `toml:"default_duration"`
	Days            []fileDay `toml:"days"`
}

type fileDay struct {
	Duration string   `toml:"duration"`
	Date     string   `toml:"date"`
	Slots    []string `toml:"slots"`
	Blocked  []string `toml:"blocked"`
}

type fileEvent struct {
	ID             string  `toml:"id"`
	ProfessionalID string  `toml:"professional_id"`
	Date           string  `toml:"date"`
	Title          string  `toml:"title"`
	StartTime      string  `toml:"start_time"`
	Duration       string  `toml:"duration"`
	ClientName     string  `toml:"client_name"`
	Location       *string `toml:"location"`
}

// FileLoader читает каталог из TOML файла
type FileLoader struct {
	path string
}

// NewFileLoader создает загрузчик из файла
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Load читает и декодирует файл
func (l *FileLoader) Load(_ context.Context) (*Catalog, error) {
	var raw fileSeed
	if _, err := toml.DecodeFile(l.path, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrLoad, l.path, err)
	}
	return raw.catalog(), nil
}

// Parse декодирует каталог из TOML текста
func Parse(data string) (*Catalog, error) {
	var raw fileSeed
	if _, err := toml.Decode(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrLoad, err)
	}
	return raw.catalog(), nil
}

// catalog переводит файловое представление в доменное.
// Значения не проверяются: этим занимается Validate
func (s *fileSeed) catalog() *Catalog {
	catalog := &Catalog{
		Professionals: make([]*domain.Professional, 0, len(s.Professionals)),
		Events:        make(map[string]EventsByDate),
	}

	for _, fp := range s.Professionals {
		p := &domain.Professional{
			ID:              fp.ID,
			Name:            fp.Name,
			Email:           fp.Email,
			Bio:             fp.Bio,
			Address:         fp.Address,
			AvatarURL:       fp.AvatarURL,
			DefaultDuration: domain.Duration(fp.DefaultDuration),
			Availability:    make(domain.AvailabilityCalendar),
		}

		for _, fd := range fp.Days {
			duration := domain.Duration(fd.Duration)
			if p.Availability[duration] == nil {
				p.Availability[duration] = make(domain.DaySchedule)
			}
			p.Availability[duration][types.DateKey(fd.Date)] = day(fd.Slots, fd.Blocked...)
		}

		catalog.Professionals = append(catalog.Professionals, p)
	}

	for _, fe := range s.Events {
		byDate, ok := catalog.Events[fe.ProfessionalID]
		if !ok {
			byDate = make(EventsByDate)
			catalog.Events[fe.ProfessionalID] = byDate
		}
		date := types.DateKey(fe.Date)
		byDate[date] = append(byDate[date], domain.ScheduledEvent{
			ID:         fe.ID,
			Title:      fe.Title,
			StartTime:  types.TimeString(fe.StartTime),
			Duration:   domain.Duration(fe.Duration),
			ClientName: fe.ClientName,
			Location:   fe.Location,
		})
	}

	return catalog
}

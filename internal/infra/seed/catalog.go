package seed

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Источники начальных данных
const (
	SourceDemo     = "demo"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// EventsByDate подтвержденные события специалиста по датам
type EventsByDate map[types.DateKey][]domain.ScheduledEvent

// Catalog начальные данные сервиса: специалисты с календарями и подтвержденные события.
// Загружается один раз при старте и далее только читается.
type Catalog struct {
	Professionals []*domain.Professional // порядок важен: первый специалист - специалист по умолчанию
	Events        map[string]EventsByDate // professionalID -> date -> events
}

// Loader источник начальных данных
type Loader interface {
	Load(ctx context.Context) (*Catalog, error)
}

// LoadValidated загружает каталог и проверяет его целостность
func LoadValidated(ctx context.Context, loader Loader) (*Catalog, error) {
	catalog, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	return catalog, nil
}

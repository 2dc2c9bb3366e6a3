package list_professionals

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

type ProfessionalsService interface {
	ListPublic(ctx context.Context) []domain.PublicProfile
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

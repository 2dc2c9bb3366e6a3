package login

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/usecase/authenticate"
)

type AuthenticateUseCase interface {
	Execute(ctx context.Context, req *authenticate.Request) (*authenticate.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

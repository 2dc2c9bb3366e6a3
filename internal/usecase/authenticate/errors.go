package authenticate

import "errors"

var (
	// ErrInvalidCredentials возвращается при неизвестном email или неверном пароле.
	// Причина отказа наружу не раскрывается
	ErrInvalidCredentials = errors.New("authenticate: invalid credentials")

	// ErrInvalidInput возвращается при пустых входных данных
	ErrInvalidInput = errors.New("authenticate: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("authenticate: internal error")
)

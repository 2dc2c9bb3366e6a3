package confirmationservice

import "errors"

var (
	// ErrRejected возвращается, когда сервис подтверждения отклонил запись
	ErrRejected = errors.New("confirmationservice client: confirmation rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("confirmationservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("confirmationservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation.
	// Запись проверена, но не доставлена во внешний сервис
	ErrServiceDegraded = errors.New("confirmationservice unavailable: graceful degradation applied")
)

package confirm_booking

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда специалист не найден
	ErrProfessionalNotFound = errors.New("confirm_booking: professional not found")

	// ErrInvalidInput возвращается при некорректном формате даты или времени
	ErrInvalidInput = errors.New("confirm_booking: invalid input data")

	// ErrDateNotAvailable возвращается, когда на выбранную дату нет слотов
	ErrDateNotAvailable = errors.New("confirm_booking: date is not available")

	// ErrSlotNotOffered возвращается, когда выбранное время не входит в слоты дня
	ErrSlotNotOffered = errors.New("confirm_booking: slot is not offered")

	// ErrSlotNotAvailable возвращается, когда выбранный слот заблокирован
	ErrSlotNotAvailable = errors.New("confirm_booking: slot is not available")

	// ErrConfirmationRejected возвращается, когда внешний сервис отклонил подтверждение
	ErrConfirmationRejected = errors.New("confirm_booking: confirmation rejected")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)

package directory

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда специалист не найден
	ErrProfessionalNotFound = errors.New("directory.repository: professional not found")

	// ErrDuplicateProfessional возвращается при повторяющемся id или email в начальных данных
	ErrDuplicateProfessional = errors.New("directory.repository: duplicate professional")

	// ErrEmptyDirectory возвращается, когда в справочнике нет ни одного специалиста
	ErrEmptyDirectory = errors.New("directory.repository: no professionals")
)

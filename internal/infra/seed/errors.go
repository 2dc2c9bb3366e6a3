package seed

import "errors"

var (
	// ErrInvalidSeed возвращается, когда начальные данные нарушают инварианты каталога
	ErrInvalidSeed = errors.New("seed: invalid seed data")

	// ErrLoad возвращается при ошибке чтения источника начальных данных
	ErrLoad = errors.New("seed: failed to load seed data")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("seed.postgres: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("seed.postgres: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("seed.postgres: failed to scan row")
)

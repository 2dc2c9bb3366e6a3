package validate_draft

// Metrics интерфейс метрик валидации черновика
type Metrics interface {
	ObserveDraftValidation(valid bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

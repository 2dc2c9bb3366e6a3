package validate_draft

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidDraft возвращается, когда контактные данные не прошли проверку
	ErrInvalidDraft = errors.New("validate_draft: invalid booking draft")
)

// ValidationError ошибки по полям черновика: поле -> сообщение для клиента.
// errors.Is(err, ErrInvalidDraft) выполняется для любой ValidationError
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("%s: %s", ErrInvalidDraft, strings.Join(fields, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidDraft
}

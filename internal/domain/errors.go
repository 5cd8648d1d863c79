package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	// ErrNoLinkedSuppliers транзакция существует, но к ней не привязан ни один поставщик.
	// Расчет распределения в этом случае не имеет смысла и ошибка не должна глотаться.
	ErrNoLinkedSuppliers = errors.New("no suppliers linked to this transaction")
)

// ValidationError ошибка валидации входных данных. Возвращается до каких-либо изменений состояния.
type ValidationError struct {
	Msg string
}

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Msg
}

package availability

import "errors"

var (
	// ErrSlotNotAvailable возвращается, когда слот нельзя забронировать
	ErrSlotNotAvailable = errors.New("availability: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)

// ConflictError причина, по которой слот недоступен
// errors.Is(err, ErrSlotNotAvailable) возвращает true
type ConflictError struct {
	Kind   ConflictKind
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrSlotNotAvailable
}

package rules

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных значениях правил
	ErrInvalidInput = errors.New("rules: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("rules: internal error")
)

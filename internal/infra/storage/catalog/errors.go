package catalog

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("catalog.repository: court not found")

	// ErrCoachNotFound возвращается, когда тренер не найден
	ErrCoachNotFound = errors.New("catalog.repository: coach not found")

	// ErrAlreadyExists возвращается при повторной регистрации ID
	ErrAlreadyExists = errors.New("catalog.repository: already exists")
)

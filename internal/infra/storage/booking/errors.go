package booking

import "errors"

// Ошибки общие для PostgreSQL и in-memory хранилищ
var (
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotNotAvailable корт или тренер уже заняты активным бронированием на этот час
	// (в PostgreSQL срабатывает частичный уникальный индекс)
	ErrSlotNotAvailable = errors.New("booking.repository: slot not available")

	ErrAlreadyExists = errors.New("booking.repository: booking already exists")

	// ErrInvalidStatus статус вне перечня domain.BookingStatus
	ErrInvalidStatus = errors.New("booking.repository: invalid booking status")
)

// Ошибки работы с SQL
var (
	ErrBuildQuery = errors.New("booking.repository: failed to build query")
	ErrExecQuery  = errors.New("booking.repository: failed to execute query")
	ErrScanRow    = errors.New("booking.repository: failed to scan row")
)

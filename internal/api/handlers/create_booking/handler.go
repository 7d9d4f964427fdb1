package create_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/availability"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC3339"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSlotNotAvailable   = "выбранный слот недоступен"
	msgCourtNotFound      = "корт не найден"
	msgCoachNotFound      = "тренер не найден"
	msgInvalidTimeSlot    = "некорректный временной слот"
	msgSlotInPast         = "нельзя забронировать прошедший слот"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%s, court_id=%s, error=%v", userID, req.CourtID, err)
			handlers.RespondConflict(w, conflictMessage(err))

		case errors.Is(err, createBooking.ErrCourtNotFound):
			h.logger.Warn("POST /bookings - Court not found: court_id=%s", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createBooking.ErrCoachNotFound):
			h.logger.Warn("POST /bookings - Coach not found: user_id=%s, court_id=%s", userID, req.CourtID)
			handlers.RespondNotFound(w, msgCoachNotFound)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, reasonMessage(err, createBooking.ErrInvalidTimeSlot, msgInvalidTimeSlot))

		case errors.Is(err, createBooking.ErrSlotInPast):
			h.logger.Warn("POST /bookings - Slot in the past: user_id=%s, start=%s", userID, req.StartTime)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, reasonMessage(err, createBooking.ErrInvalidInput, msgInvalidInput))

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, court_id=%s, error=%v",
				userID, req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, user_id=%s, status=%s",
		result.Booking.ID, userID, result.Booking.Status)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainBooking(result.Booking))
}

// conflictMessage причина конфликта для пользователя
func conflictMessage(err error) string {
	var conflict *availability.ConflictError
	if errors.As(err, &conflict) {
		return conflict.Reason
	}
	return msgSlotNotAvailable
}

// reasonMessage дополняет сообщение причиной, которой use case обернул sentinel
// ("<sentinel>: <причина>"); без причины возвращает msg как есть
func reasonMessage(err, sentinel error, msg string) string {
	_, reason, found := strings.Cut(err.Error(), sentinel.Error()+": ")
	if !found || reason == "" {
		return msg
	}
	return msg + ": " + reason
}

package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/availability"
	"github.com/m04kA/SMC-CourtBookingService/internal/testutil"
	createBooking "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

func doRequest(h *Handler, user *domain.User, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if user != nil {
		req = req.WithContext(middleware.WithUser(req.Context(), *user))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	start := time.Date(2025, 6, 14, 19, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &createBooking.Response{Booking: &domain.Booking{
		ID:      "0b6f8e3c-9a59-4c1c-9d0e-6f4c1f0c2a11",
		CourtID: "c1",
		UserID:  "u1",
		Start:   start,
		End:     start.Add(time.Hour),
		Price:   domain.PricingBreakdown{BasePrice: 20, WeekendSurcharge: 5, TimeMultiplier: 1.5, Total: 37.5},
		Status:  domain.StatusConfirmed,
	}}}
	h := NewHandler(uc, testutil.NopLogger{})

	rec := doRequest(h, &domain.User{ID: "u1", Role: domain.RoleMember},
		`{"courtId":"c1","startTime":"2025-06-14T19:00:00Z","endTime":"2025-06-14T20:00:00Z","rackets":0,"shoes":0}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "u1", uc.got.UserID)
	assert.True(t, uc.got.SlotStart.Equal(start))
	require.NotNil(t, uc.got.SlotEnd)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "confirmed", body["status"])
	assert.Equal(t, 37.5, body["pricing"].(map[string]interface{})["total"])
}

func TestHandle_Errors(t *testing.T) {
	validBody := `{"courtId":"c1","startTime":"2025-06-14T19:00:00Z"}`
	member := &domain.User{ID: "u1", Role: domain.RoleMember}

	tests := []struct {
		name     string
		user     *domain.User
		body     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "no identity", body: validBody, wantCode: http.StatusUnauthorized},
		{name: "bad json", user: member, body: `{"courtId":`, wantCode: http.StatusBadRequest},
		{name: "unknown field", user: member, body: `{"courtId":"c1","startTime":"2025-06-14T19:00:00Z","x":1}`, wantCode: http.StatusBadRequest},
		{name: "bad time", user: member, body: `{"courtId":"c1","startTime":"tomorrow"}`, wantCode: http.StatusBadRequest},
		{
			name:     "court conflict",
			user:     member,
			body:     validBody,
			err:      fmt.Errorf("%w: %w", createBooking.ErrSlotNotAvailable, &availability.ConflictError{Kind: availability.KindCourtBooked, Reason: availability.ReasonCourtBooked}),
			wantCode: http.StatusConflict,
			wantMsg:  availability.ReasonCourtBooked,
		},
		{
			name:     "coach blackout",
			user:     member,
			body:     validBody,
			err:      fmt.Errorf("%w: %w", createBooking.ErrSlotNotAvailable, &availability.ConflictError{Kind: availability.KindCoachBlackout, Reason: availability.ReasonCoachBlocked}),
			wantCode: http.StatusConflict,
			wantMsg:  availability.ReasonCoachBlocked,
		},
		{name: "unique index conflict", user: member, body: validBody, err: createBooking.ErrSlotNotAvailable, wantCode: http.StatusConflict, wantMsg: msgSlotNotAvailable},
		{name: "unknown court", user: member, body: validBody, err: createBooking.ErrCourtNotFound, wantCode: http.StatusNotFound},
		{name: "unknown coach", user: member, body: validBody, err: createBooking.ErrCoachNotFound, wantCode: http.StatusNotFound},
		{
			name:     "outside hours",
			user:     member,
			body:     validBody,
			err:      fmt.Errorf("%w: courts are open from 08:00 to 22:00", createBooking.ErrInvalidTimeSlot),
			wantCode: http.StatusBadRequest,
			wantMsg:  msgInvalidTimeSlot + ": courts are open from 08:00 to 22:00",
		},
		{
			name:     "not aligned",
			user:     member,
			body:     validBody,
			err:      fmt.Errorf("%w: startTime must be aligned to the hour", createBooking.ErrInvalidTimeSlot),
			wantCode: http.StatusBadRequest,
			wantMsg:  msgInvalidTimeSlot + ": startTime must be aligned to the hour",
		},
		{name: "bare invalid slot", user: member, body: validBody, err: createBooking.ErrInvalidTimeSlot, wantCode: http.StatusBadRequest, wantMsg: msgInvalidTimeSlot},
		{name: "past", user: member, body: validBody, err: createBooking.ErrSlotInPast, wantCode: http.StatusBadRequest},
		{name: "invalid input", user: member, body: validBody, err: createBooking.ErrInvalidInput, wantCode: http.StatusBadRequest, wantMsg: msgInvalidInput},
		{
			name:     "too many rackets",
			user:     member,
			body:     validBody,
			err:      fmt.Errorf("%w: rackets must be in [0, 4]", createBooking.ErrInvalidInput),
			wantCode: http.StatusBadRequest,
			wantMsg:  msgInvalidInput + ": rackets must be in [0, 4]",
		},
		{name: "internal", user: member, body: validBody, err: createBooking.ErrInternal, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, testutil.NopLogger{})

			rec := doRequest(h, tt.user, tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, resp.Message)
			}
		})
	}
}

package respond_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CourtBookingService/internal/testutil"
)

const bookingID = "0b6f8e3c-9a59-4c1c-9d0e-6f4c1f0c2a11"

type fakeService struct {
	decision string
	err      error
}

func (f *fakeService) Respond(ctx context.Context, id string, decision string, actor domain.User) (*models.BookingResponse, error) {
	f.decision = decision
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingResponse{ID: id, Status: decision}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		body     string
		err      error
		wantCode int
	}{
		{name: "confirmed", id: bookingID, body: `{"decision":"confirmed"}`, wantCode: http.StatusOK},
		{name: "bad id", id: "42", body: `{"decision":"confirmed"}`, wantCode: http.StatusBadRequest},
		{name: "empty body", id: bookingID, body: ``, wantCode: http.StatusBadRequest},
		{name: "bad decision", id: bookingID, body: `{"decision":"maybe"}`, err: bookings.ErrInvalidInput, wantCode: http.StatusBadRequest},
		{name: "not found", id: bookingID, body: `{"decision":"rejected"}`, err: bookings.ErrBookingNotFound, wantCode: http.StatusNotFound},
		{name: "not assigned coach", id: bookingID, body: `{"decision":"rejected"}`, err: bookings.ErrAccessDenied, wantCode: http.StatusForbidden},
		{name: "not pending", id: bookingID, body: `{"decision":"rejected"}`, err: bookings.ErrInvalidTransition, wantCode: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, testutil.NopLogger{})

			req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+tt.id+"/respond", strings.NewReader(tt.body))
			req = mux.SetURLVars(req, map[string]string{"bookingId": tt.id})
			req = req.WithContext(middleware.WithUser(req.Context(), domain.User{ID: "coach1", Role: domain.RoleCoach}))
			rec := httptest.NewRecorder()

			h.Handle(rec, req)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
		})
	}
}

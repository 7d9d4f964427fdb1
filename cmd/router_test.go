package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/suite"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
	rulesModels "github.com/m04kA/SMC-CourtBookingService/internal/service/rules/models"
	"github.com/m04kA/SMC-CourtBookingService/internal/testutil"
	"github.com/m04kA/SMC-CourtBookingService/pkg/metrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/txmanager"
)

type RouterSuite struct {
	suite.Suite

	router *mux.Router
	slot   time.Time
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	cfg := config.Default()
	cfg.Catalog = config.CatalogConfig{
		Courts: []config.CourtConfig{
			{ID: "c1", Name: "Center Court", Category: "Indoor", BasePrice: 20},
			{ID: "c2", Name: "Garden Court", Category: "Outdoor", BasePrice: 15},
		},
		Coaches: []config.CoachConfig{
			{ID: "coach1", Name: "Alex", Specialty: "Technique", HourlyRate: 25, Rating: 4.9},
			{ID: "coach2", Name: "Sam", Specialty: "Fitness", HourlyRate: 30, Rating: 4.7},
		},
	}

	h, err := buildHandlers(cfg, bookingRepo.NewMemoryRepository(), txmanager.NewTransactionManager(nil), metrics.Discard(), testutil.NopLogger{})
	s.Require().NoError(err)

	s.router = newRouter(h, routerOptions{})

	// Слот через два дня в 10:00 UTC всегда в будущем и в часы работы
	day := time.Now().UTC().AddDate(0, 0, 2)
	s.slot = time.Date(day.Year(), day.Month(), day.Day(), 10, 0, 0, 0, time.UTC)
}

func (s *RouterSuite) do(method, path, userID, role string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	if role != "" {
		req.Header.Set(middleware.HeaderUserRole, role)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterSuite) createBooking(userID string, courtID string, coachID *string) *httptest.ResponseRecorder {
	body := map[string]interface{}{
		"courtId":   courtID,
		"startTime": s.slot.Format(time.RFC3339),
	}
	if coachID != nil {
		body["coachId"] = *coachID
	}
	return s.do(http.MethodPost, "/api/v1/bookings", userID, "member", body)
}

func (s *RouterSuite) decodeBooking(rec *httptest.ResponseRecorder) models.BookingResponse {
	var b models.BookingResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &b))
	return b
}

func (s *RouterSuite) TestCoachBookingLifecycle() {
	coach := "coach1"

	// 1. Бронирование с тренером ждёт подтверждения
	rec := s.createBooking("u1", "c1", &coach)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	created := s.decodeBooking(rec)
	s.Equal("pending_approval", created.Status)
	s.Equal(25.0, created.Pricing.CoachFee)

	// 2. Тот же тренер на другом корте в тот же час занят
	rec = s.createBooking("u2", "c2", &coach)
	s.Require().Equal(http.StatusConflict, rec.Code)
	var errResp handlers.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errResp))
	s.Equal("Selected coach is unavailable.", errResp.Message)

	// 3. Чужой тренер не может ответить
	respondPath := fmt.Sprintf("/api/v1/bookings/%s/respond", created.ID)
	rec = s.do(http.MethodPatch, respondPath, "coach2", "coach", map[string]string{"decision": "confirmed"})
	s.Equal(http.StatusForbidden, rec.Code)

	// 4. Назначенный тренер подтверждает
	rec = s.do(http.MethodPatch, respondPath, "coach1", "coach", map[string]string{"decision": "confirmed"})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal("confirmed", s.decodeBooking(rec).Status)

	// 5. Повторный ответ невозможен
	rec = s.do(http.MethodPatch, respondPath, "coach1", "coach", map[string]string{"decision": "rejected"})
	s.Equal(http.StatusConflict, rec.Code)

	// 6. Расписание тренера содержит бронирование
	rec = s.do(http.MethodGet, "/api/v1/coaches/coach1/bookings", "coach1", "coach", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var list []models.BookingResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &list))
	s.Require().Len(list, 1)
	s.Equal(created.ID, list[0].ID)

	// 7. Выручка учитывает подтверждённое бронирование
	rec = s.do(http.MethodGet, "/api/v1/admin/stats", "root", "admin", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var stats models.StatsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &stats))
	s.Equal(1, stats.ConfirmedCount)
	s.Equal(created.Pricing.Total, stats.ConfirmedRevenue)
}

func (s *RouterSuite) TestCancelFreesSlot() {
	rec := s.createBooking("u1", "c1", nil)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	created := s.decodeBooking(rec)
	s.Equal("confirmed", created.Status)

	rec = s.createBooking("u2", "c1", nil)
	s.Require().Equal(http.StatusConflict, rec.Code)

	cancelPath := fmt.Sprintf("/api/v1/bookings/%s/cancel", created.ID)

	// Отменить может только владелец или администратор
	rec = s.do(http.MethodPatch, cancelPath, "u2", "member", nil)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPatch, cancelPath, "u1", "member", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal("cancelled", s.decodeBooking(rec).Status)

	rec = s.createBooking("u2", "c1", nil)
	s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
}

func (s *RouterSuite) TestPublicRoutes() {
	date := s.slot.Format("2006-01-02")

	tests := []struct {
		name     string
		path     string
		wantCode int
	}{
		{name: "courts", path: "/api/v1/courts", wantCode: http.StatusOK},
		{name: "coaches", path: "/api/v1/coaches", wantCode: http.StatusOK},
		{name: "coach", path: "/api/v1/coaches/coach2", wantCode: http.StatusOK},
		{name: "unknown coach", path: "/api/v1/coaches/nobody", wantCode: http.StatusNotFound},
		{name: "price", path: "/api/v1/courts/c1/price?date=" + date + "&hour=19&rackets=2", wantCode: http.StatusOK},
		{name: "availability", path: "/api/v1/courts/c1/availability?date=" + date + "&hour=10", wantCode: http.StatusOK},
		{name: "slots", path: "/api/v1/slots?date=" + date, wantCode: http.StatusOK},
		{name: "pricing rules", path: "/api/v1/pricing-rules", wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec := s.do(http.MethodGet, tt.path, "", "", nil)
			s.Equal(tt.wantCode, rec.Code, rec.Body.String())
		})
	}
}

func (s *RouterSuite) TestAccessControl() {
	tests := []struct {
		name     string
		method   string
		path     string
		userID   string
		role     string
		body     interface{}
		wantCode int
	}{
		{name: "create without identity", method: http.MethodPost, path: "/api/v1/bookings", body: map[string]string{"courtId": "c1"}, wantCode: http.StatusUnauthorized},
		{name: "unknown role", method: http.MethodGet, path: "/api/v1/users/u1/bookings", userID: "u1", role: "owner", wantCode: http.StatusUnauthorized},
		{name: "stats as member", method: http.MethodGet, path: "/api/v1/admin/stats", userID: "u1", role: "member", wantCode: http.StatusForbidden},
		{name: "all bookings as coach", method: http.MethodGet, path: "/api/v1/admin/bookings", userID: "coach1", role: "coach", wantCode: http.StatusForbidden},
		{name: "all bookings as admin", method: http.MethodGet, path: "/api/v1/admin/bookings", userID: "root", role: "admin", wantCode: http.StatusOK},
		{name: "rules update as member", method: http.MethodPut, path: "/api/v1/pricing-rules", userID: "u1", role: "member", body: map[string]float64{"racketPrice": 7}, wantCode: http.StatusForbidden},
		{name: "register coach as member", method: http.MethodPost, path: "/api/v1/coaches", userID: "u1", role: "member", body: map[string]string{"id": "u1", "name": "Kim"}, wantCode: http.StatusForbidden},
		{name: "foreign history", method: http.MethodGet, path: "/api/v1/users/u1/bookings", userID: "u2", role: "member", wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec := s.do(tt.method, tt.path, tt.userID, tt.role, tt.body)
			s.Equal(tt.wantCode, rec.Code, rec.Body.String())
		})
	}
}

func (s *RouterSuite) TestRulesUpdateChangesNewQuotes() {
	date := s.slot.Format("2006-01-02")
	pricePath := "/api/v1/courts/c1/price?date=" + date + "&hour=10&rackets=1"

	rec := s.do(http.MethodGet, pricePath, "", "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var before models.PricingResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &before))
	s.Equal(5.0, before.EquipmentFee)

	rec = s.do(http.MethodPut, "/api/v1/pricing-rules", "root", "admin", map[string]float64{"racketPrice": 7})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var rules rulesModels.RulesResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &rules))
	s.Equal(7.0, rules.RacketPrice)
	s.Equal(3.0, rules.ShoePrice)

	rec = s.do(http.MethodGet, pricePath, "", "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var after models.PricingResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &after))
	s.Equal(7.0, after.EquipmentFee)
}

package get_available_slots

import (
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/availability"
	"github.com/m04kA/SMC-CourtBookingService/internal/testutil"
	"github.com/m04kA/SMC-CourtBookingService/pkg/ptr"
)

type fixture struct {
	bookings *bookingRepo.MemoryRepository
	catalog  *catalogRepo.Repository
	uc       *UseCase
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()
	f := &fixture{
		bookings: bookingRepo.NewMemoryRepository(),
		catalog:  catalogRepo.NewRepository(testutil.Courts(), testutil.Coaches()),
	}
	f.uc = NewUseCase(f.bookings, f.catalog, Window{OpeningHour: 8, ClosingHour: 22}, testutil.NopLogger{})
	f.uc.timeProvider = testutil.FixedTime{T: now}
	return f
}

func (f *fixture) book(t *testing.T, id, court string, coach *string, hour int, status domain.BookingStatus) {
	t.Helper()
	start := testutil.Tuesday.Add(time.Duration(hour) * time.Hour)
	_, err := f.bookings.Create(context.Background(), &domain.Booking{
		ID:      id,
		CourtID: court,
		UserID:  "u1",
		CoachID: coach,
		Start:   start,
		End:     start.Add(domain.SlotDuration),
		Status:  status,
	})
	require.NoError(t, err)
}

func stateAt(t *testing.T, resp *Response, courtID string, hour int) domain.DaySlot {
	t.Helper()
	for _, c := range resp.Courts {
		if c.Court.ID != courtID {
			continue
		}
		for _, s := range c.Slots {
			if s.Hour == hour {
				return s
			}
		}
	}
	t.Fatalf("slot %s/%d not found", courtID, hour)
	return domain.DaySlot{}
}

func TestExecute_GridShape(t *testing.T) {
	f := newFixture(t, testutil.Tuesday.AddDate(0, 0, -1))

	resp, err := f.uc.Execute(context.Background(), &Request{Date: testutil.Tuesday.Add(15 * time.Hour)})
	require.NoError(t, err)

	assert.Equal(t, testutil.Tuesday, resp.Date)
	require.Len(t, resp.Courts, 3)
	for _, c := range resp.Courts {
		require.Len(t, c.Slots, 14)
		assert.Equal(t, 8, c.Slots[0].Hour)
		assert.Equal(t, 21, c.Slots[13].Hour)
		for _, s := range c.Slots {
			assert.True(t, s.IsFree())
		}
	}
}

func TestExecute_States(t *testing.T) {
	f := newFixture(t, testutil.Tuesday.Add(10*time.Hour+30*time.Minute))
	ctx := context.Background()

	f.book(t, "b1", "c1", nil, 9, domain.StatusConfirmed)
	f.book(t, "b2", "c1", nil, 12, domain.StatusConfirmed)
	f.book(t, "b3", "c1", nil, 13, domain.StatusCancelled)
	f.book(t, "b4", "c2", ptr.Ptr("coach1"), 15, domain.StatusPendingApproval)

	_, err := f.catalog.ToggleBlackout(ctx, "coach1", testutil.Tuesday.Add(17*time.Hour))
	require.NoError(t, err)

	resp, err := f.uc.Execute(ctx, &Request{Date: testutil.Tuesday, CoachID: ptr.Ptr("coach1")})
	require.NoError(t, err)

	tests := []struct {
		name   string
		court  string
		hour   int
		state  domain.SlotState
		reason string
	}{
		{name: "booked in the past stays booked", court: "c1", hour: 9, state: domain.SlotBooked, reason: availability.ReasonCourtBooked},
		{name: "past", court: "c2", hour: 9, state: domain.SlotPast},
		{name: "current hour is free", court: "c2", hour: 10, state: domain.SlotFree},
		{name: "booked", court: "c1", hour: 12, state: domain.SlotBooked, reason: availability.ReasonCourtBooked},
		{name: "cancelled frees slot", court: "c1", hour: 13, state: domain.SlotFree},
		{name: "coach busy elsewhere", court: "c3", hour: 15, state: domain.SlotBlocked, reason: availability.ReasonCoachUnavailable},
		{name: "court booked wins over coach", court: "c2", hour: 15, state: domain.SlotBooked, reason: availability.ReasonCourtBooked},
		{name: "coach blackout", court: "c1", hour: 17, state: domain.SlotBlocked, reason: availability.ReasonCoachBlocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stateAt(t, resp, tt.court, tt.hour)
			assert.Equal(t, tt.state, got.State)
			assert.Equal(t, tt.reason, got.Reason)
		})
	}
}

func TestExecute_WithoutCoachIgnoresBlackouts(t *testing.T) {
	f := newFixture(t, testutil.Tuesday)
	ctx := context.Background()

	_, err := f.catalog.ToggleBlackout(ctx, "coach1", testutil.Tuesday.Add(17*time.Hour))
	require.NoError(t, err)

	resp, err := f.uc.Execute(ctx, &Request{Date: testutil.Tuesday, CourtID: ptr.Ptr("c3")})
	require.NoError(t, err)
	require.Len(t, resp.Courts, 1)
	assert.Equal(t, domain.SlotFree, stateAt(t, resp, "c3", 17).State)
}

func TestExecute_Errors(t *testing.T) {
	f := newFixture(t, testutil.Tuesday)
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(ctx, &Request{Date: testutil.Tuesday, CourtID: ptr.Ptr("c9")})
	assert.ErrorIs(t, err, ErrCourtNotFound)

	_, err = f.uc.Execute(ctx, &Request{Date: testutil.Tuesday, CoachID: ptr.Ptr("ghost")})
	assert.ErrorIs(t, err, ErrCoachNotFound)
}

func TestExecute_SkipsHourMissingOnDSTDay(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	uc := NewUseCase(
		bookingRepo.NewMemoryRepository(),
		catalogRepo.NewRepository(testutil.Courts(), nil),
		Window{OpeningHour: 0, ClosingHour: 5, Location: loc},
		testutil.NopLogger{},
	)
	uc.timeProvider = testutil.FixedTime{T: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{
		Date:    time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
		CourtID: ptr.Ptr("c1"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Courts, 1)

	hours := make([]int, 0, len(resp.Courts[0].Slots))
	for _, s := range resp.Courts[0].Slots {
		hours = append(hours, s.Hour)
		assert.Equal(t, s.Hour, s.Start.In(loc).Hour())
	}
	assert.Equal(t, []int{0, 1, 3, 4}, hours)
}

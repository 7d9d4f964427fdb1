package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CourtBookingService/internal/testutil"
	"github.com/m04kA/SMC-CourtBookingService/pkg/ptr"
	"github.com/m04kA/SMC-CourtBookingService/pkg/txmanager"
)

var (
	member = domain.User{ID: "u1", Role: domain.RoleMember}
	other  = domain.User{ID: "u2", Role: domain.RoleMember}
	coach1 = domain.User{ID: "coach1", Role: domain.RoleCoach}
	coach2 = domain.User{ID: "coach2", Role: domain.RoleCoach}
	admin  = domain.User{ID: "root", Role: domain.RoleAdmin}
)

type fixture struct {
	repo    *bookingRepo.MemoryRepository
	metrics *testutil.Metrics
	svc     *Service
}

func newFixture() *fixture {
	repo := bookingRepo.NewMemoryRepository()
	m := testutil.NewMetrics()
	return &fixture{
		repo:    repo,
		metrics: m,
		svc:     NewService(repo, txmanager.NewTransactionManager(nil), time.UTC, m, testutil.NopLogger{}),
	}
}

func (f *fixture) seed(t *testing.T, id, court, user string, coachID *string, start time.Time, status domain.BookingStatus, total float64) {
	t.Helper()
	_, err := f.repo.Create(context.Background(), &domain.Booking{
		ID:      id,
		CourtID: court,
		UserID:  user,
		CoachID: coachID,
		Start:   start,
		End:     start.Add(domain.SlotDuration),
		Price:   domain.PricingBreakdown{BasePrice: total, TimeMultiplier: 1, Total: total},
		Status:  status,
	})
	require.NoError(t, err)
}

func at(day time.Time, hour int) time.Time {
	return day.Add(time.Duration(hour) * time.Hour)
}

func TestGetByID_Access(t *testing.T) {
	f := newFixture()
	f.seed(t, "b1", "c1", "u1", ptr.Ptr("coach1"), at(testutil.Tuesday, 10), domain.StatusPendingApproval, 45)

	tests := []struct {
		name    string
		actor   domain.User
		wantErr error
	}{
		{name: "owner", actor: member},
		{name: "assigned coach", actor: coach1},
		{name: "admin", actor: admin},
		{name: "other member", actor: other, wantErr: ErrAccessDenied},
		{name: "other coach", actor: coach2, wantErr: ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.svc.GetByID(context.Background(), "b1", tt.actor)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "b1", got.ID)
			assert.Equal(t, "pending_approval", got.Status)
		})
	}

	_, err := f.svc.GetByID(context.Background(), "missing", admin)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.seed(t, "b1", "c1", "u1", nil, at(testutil.Tuesday, 10), domain.StatusConfirmed, 20)

	_, err := f.svc.Cancel(ctx, "b1", other)
	assert.ErrorIs(t, err, ErrAccessDenied)

	got, err := f.svc.Cancel(ctx, "b1", member)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", got.Status)
	assert.Equal(t, 1, f.metrics.Transitions["cancelled"])

	// Повторная отмена ничего не меняет
	again, err := f.svc.Cancel(ctx, "b1", member)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", again.Status)
	assert.Equal(t, 1, f.metrics.Transitions["cancelled"])

	_, err = f.svc.Cancel(ctx, "missing", admin)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_RejectedStaysRejected(t *testing.T) {
	f := newFixture()
	f.seed(t, "b1", "c1", "u1", ptr.Ptr("coach1"), at(testutil.Tuesday, 10), domain.StatusRejected, 45)

	got, err := f.svc.Cancel(context.Background(), "b1", admin)
	require.NoError(t, err)
	assert.Equal(t, "rejected", got.Status)
	assert.Empty(t, f.metrics.Transitions)
}

func TestRespond(t *testing.T) {
	tests := []struct {
		name       string
		status     domain.BookingStatus
		coachID    *string
		decision   string
		actor      domain.User
		wantStatus string
		wantErr    error
	}{
		{
			name:       "coach confirms",
			status:     domain.StatusPendingApproval,
			coachID:    ptr.Ptr("coach1"),
			decision:   "confirmed",
			actor:      coach1,
			wantStatus: "confirmed",
		},
		{
			name:       "admin rejects",
			status:     domain.StatusPendingApproval,
			coachID:    ptr.Ptr("coach1"),
			decision:   "rejected",
			actor:      admin,
			wantStatus: "rejected",
		},
		{
			name:     "bad decision",
			status:   domain.StatusPendingApproval,
			coachID:  ptr.Ptr("coach1"),
			decision: "cancelled",
			actor:    coach1,
			wantErr:  ErrInvalidInput,
		},
		{
			name:     "other coach",
			status:   domain.StatusPendingApproval,
			coachID:  ptr.Ptr("coach1"),
			decision: "confirmed",
			actor:    coach2,
			wantErr:  ErrAccessDenied,
		},
		{
			name:     "owner cannot respond",
			status:   domain.StatusPendingApproval,
			coachID:  ptr.Ptr("coach1"),
			decision: "confirmed",
			actor:    member,
			wantErr:  ErrAccessDenied,
		},
		{
			name:     "already confirmed",
			status:   domain.StatusConfirmed,
			coachID:  ptr.Ptr("coach1"),
			decision: "rejected",
			actor:    coach1,
			wantErr:  ErrInvalidTransition,
		},
		{
			name:     "cancelled is terminal",
			status:   domain.StatusCancelled,
			coachID:  ptr.Ptr("coach1"),
			decision: "confirmed",
			actor:    admin,
			wantErr:  ErrInvalidTransition,
		},
		{
			name:     "booking without coach",
			status:   domain.StatusConfirmed,
			decision: "confirmed",
			actor:    admin,
			wantErr:  ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.seed(t, "b1", "c1", "u1", tt.coachID, at(testutil.Tuesday, 10), tt.status, 45)

			got, err := f.svc.Respond(context.Background(), "b1", tt.decision, tt.actor)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				stored, getErr := f.repo.GetByID(context.Background(), "b1")
				require.NoError(t, getErr)
				assert.Equal(t, tt.status, stored.Status)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, 1, f.metrics.Transitions[tt.wantStatus])
		})
	}
}

func TestListViews(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.seed(t, "b1", "c1", "u1", nil, at(testutil.Tuesday, 10), domain.StatusConfirmed, 20)
	f.seed(t, "b2", "c2", "u1", ptr.Ptr("coach1"), at(testutil.Tuesday, 9), domain.StatusPendingApproval, 45)
	f.seed(t, "b3", "c1", "u2", ptr.Ptr("coach1"), at(testutil.Tuesday, 12), domain.StatusCancelled, 45)
	f.seed(t, "b4", "c1", "u2", ptr.Ptr("coach1"), at(testutil.Tuesday.AddDate(0, 0, 1), 8), domain.StatusConfirmed, 45)

	ids := func(resp *models.BookingListResponse) []string {
		out := make([]string, 0, len(resp.Bookings))
		for _, b := range resp.Bookings {
			out = append(out, b.ID)
		}
		return out
	}

	user, err := f.svc.ListForUser(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([]string{"b4", "b3"}, ids(user)))

	coach, err := f.svc.ListForCoach(ctx, "coach1")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([]string{"b2", "b4"}, ids(coach)))

	day, err := f.svc.ListForDate(ctx, &models.DateViewRequest{Date: testutil.Tuesday})
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([]string{"b2", "b1"}, ids(day)))

	court, err := f.svc.ListForDate(ctx, &models.DateViewRequest{Date: testutil.Tuesday, CourtID: ptr.Ptr("c1")})
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([]string{"b1"}, ids(court)))

	all, err := f.svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([]string{"b4", "b3", "b1", "b2"}, ids(all)))

	_, err = f.svc.ListForDate(ctx, &models.DateViewRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStats(t *testing.T) {
	f := newFixture()

	empty, err := f.svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &models.StatsResponse{RevenueByDay: []models.DailyRevenue{}}, empty)

	for i := 0; i < 8; i++ {
		day := testutil.Tuesday.AddDate(0, 0, i)
		f.seed(t, "confirmed-"+day.Format(domain.DateFormat), "c1", "u1", nil, at(day, 10), domain.StatusConfirmed, 20)
	}
	f.seed(t, "extra", "c2", "u1", nil, at(testutil.Tuesday.AddDate(0, 0, 7), 19), domain.StatusConfirmed, 37.5)
	f.seed(t, "pending", "c3", "u1", ptr.Ptr("coach1"), at(testutil.Tuesday, 11), domain.StatusPendingApproval, 40)
	f.seed(t, "cancelled", "c3", "u1", nil, at(testutil.Tuesday, 12), domain.StatusCancelled, 15)

	stats, err := f.svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 9, stats.ConfirmedCount)
	assert.Equal(t, 197.5, stats.ConfirmedRevenue)
	assert.Equal(t, 21.94, stats.AverageValue)

	require.Len(t, stats.RevenueByDay, 7)
	assert.Equal(t, "2025-06-11", stats.RevenueByDay[0].Date)
	assert.Equal(t, models.DailyRevenue{Date: "2025-06-17", Revenue: 57.5}, stats.RevenueByDay[6])
}

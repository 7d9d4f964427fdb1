package pricing

import (
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/rules"
	"github.com/m04kA/SMC-CourtBookingService/internal/testutil"
	"github.com/m04kA/SMC-CourtBookingService/pkg/ptr"
)

func newTestService(t *testing.T) (*Service, *rules.Repository, *testutil.Metrics) {
	t.Helper()
	rulesRepo := rules.NewRepository(testutil.DefaultRules())
	m := testutil.NewMetrics()
	svc := NewService(
		catalog.NewRepository(testutil.Courts(), testutil.Coaches()),
		rulesRepo,
		time.UTC,
		m,
		testutil.NopLogger{},
	)
	return svc, rulesRepo, m
}

func TestCalculate_PeakWeekendComposition(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		date time.Time
		hour int
		want domain.PricingBreakdown
	}{
		{
			name: "saturday peak: surcharge then multiplier",
			date: testutil.Saturday,
			hour: 19,
			want: domain.PricingBreakdown{
				BasePrice: 20, WeekendSurcharge: 5, TimeMultiplier: 1.5,
				Total: 37.5, IsPeak: true, IsWeekend: true,
			},
		},
		{
			name: "saturday off-peak: surcharge only",
			date: testutil.Saturday,
			hour: 10,
			want: domain.PricingBreakdown{
				BasePrice: 20, WeekendSurcharge: 5, TimeMultiplier: 1,
				Total: 25, IsWeekend: true,
			},
		},
		{
			name: "tuesday peak: multiplier only",
			date: testutil.Tuesday,
			hour: 19,
			want: domain.PricingBreakdown{
				BasePrice: 20, TimeMultiplier: 1.5,
				Total: 30, IsPeak: true,
			},
		},
		{
			name: "peak window end is exclusive",
			date: testutil.Tuesday,
			hour: 21,
			want: domain.PricingBreakdown{
				BasePrice: 20, TimeMultiplier: 1, Total: 20,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Calculate(ctx, Request{CourtID: "c1", Date: tt.date, Hour: tt.hour})
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("breakdown mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculate_AddOnsAndCoachNotMultiplied(t *testing.T) {
	svc, _, _ := newTestService(t)

	got, err := svc.Calculate(context.Background(), Request{
		CourtID: "c3",
		Date:    testutil.Saturday,
		Hour:    19,
		Rackets: 2,
		Shoes:   1,
		CoachID: ptr.Ptr("coach1"),
	})
	require.NoError(t, err)

	// (15 + 5) * 1.5 + 2*5 + 1*3 + 25
	assert.Equal(t, 13.0, got.EquipmentFee)
	assert.Equal(t, 25.0, got.CoachFee)
	assert.Equal(t, 68.0, got.Total)
}

func TestCalculate_UnknownIDsDegradeToZero(t *testing.T) {
	svc, _, _ := newTestService(t)

	got, err := svc.Calculate(context.Background(), Request{
		CourtID: "nope",
		Date:    testutil.Tuesday,
		Hour:    10,
		Rackets: 1,
		CoachID: ptr.Ptr("ghost"),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.BasePrice)
	assert.Equal(t, 0.0, got.CoachFee)
	assert.Equal(t, 5.0, got.Total)
}

func TestCalculate_Deterministic(t *testing.T) {
	svc, _, _ := newTestService(t)
	req := Request{CourtID: "c2", Date: testutil.Saturday, Hour: 18, Rackets: 4, Shoes: 4, CoachID: ptr.Ptr("coach2")}

	first, err := svc.Calculate(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Calculate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCalculate_RulesChangeAffectsLaterQuotes(t *testing.T) {
	svc, rulesRepo, _ := newTestService(t)
	ctx := context.Background()
	req := Request{CourtID: "c1", Date: testutil.Tuesday, Hour: 19}

	before, err := svc.Calculate(ctx, req)
	require.NoError(t, err)

	r := testutil.DefaultRules()
	r.PeakHourMultiplier = 2
	require.NoError(t, rulesRepo.Save(ctx, r))

	after, err := svc.Calculate(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, 30.0, before.Total)
	assert.Equal(t, 40.0, after.Total)
}

func TestCalculate_InvalidInput(t *testing.T) {
	svc, _, _ := newTestService(t)

	tests := []struct {
		name string
		req  Request
	}{
		{"missing date", Request{CourtID: "c1", Hour: 10}},
		{"negative hour", Request{CourtID: "c1", Date: testutil.Tuesday, Hour: -1}},
		{"hour 24", Request{CourtID: "c1", Date: testutil.Tuesday, Hour: 24}},
		{"too many rackets", Request{CourtID: "c1", Date: testutil.Tuesday, Hour: 10, Rackets: 5}},
		{"negative shoes", Request{CourtID: "c1", Date: testutil.Tuesday, Hour: 10, Shoes: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Calculate(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCalculate_TimezoneDecidesWeekday(t *testing.T) {
	// Суббота 00:00 в UTC+3 - это пятница 21:00 в UTC
	loc := time.FixedZone("UTC+3", 3*3600)
	svc := NewService(
		catalog.NewRepository(testutil.Courts(), nil),
		rules.NewRepository(testutil.DefaultRules()),
		loc,
		testutil.NewMetrics(),
		testutil.NopLogger{},
	)

	got, err := svc.Calculate(context.Background(), Request{CourtID: "c1", Date: testutil.Saturday, Hour: 0})
	require.NoError(t, err)
	assert.True(t, got.IsWeekend)
}

func TestQuote_RecordsMetric(t *testing.T) {
	svc, _, m := newTestService(t)

	_, err := svc.Quote(context.Background(), Request{CourtID: "c1", Date: testutil.Tuesday, Hour: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, m.Quotes)

	_, err = svc.Quote(context.Background(), Request{CourtID: "c1", Hour: 10})
	require.Error(t, err)
	assert.Equal(t, 1, m.Quotes)
}

func TestCompute_RoundsHalfAwayFromZero(t *testing.T) {
	r := testutil.DefaultRules()
	r.PeakHourMultiplier = 1.25
	got := Compute(r, Input{
		BasePrice: 10.5,
		SlotStart: time.Date(2025, 6, 10, 19, 0, 0, 0, time.UTC),
	})
	// 10.5 * 1.25 = 13.125 -> 13.13
	assert.Equal(t, 13.13, got.Total)
}

func TestCalculate_RejectsHourSkippedByDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	r := testutil.DefaultRules()
	r.PeakStartHour, r.PeakEndHour = 2, 3
	svc := NewService(
		catalog.NewRepository(testutil.Courts(), nil),
		rules.NewRepository(r),
		loc,
		testutil.NewMetrics(),
		testutil.NopLogger{},
	)
	springForward := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	_, err = svc.Calculate(context.Background(), Request{CourtID: "c1", Date: springForward, Hour: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// На следующий день час 2 существует и попадает в час пик
	got, err := svc.Calculate(context.Background(), Request{CourtID: "c1", Date: springForward.AddDate(0, 0, 1), Hour: 2})
	require.NoError(t, err)
	assert.True(t, got.IsPeak)
}

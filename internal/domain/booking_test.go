package domain

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
)

func TestBooking_StatusPredicates(t *testing.T) {
	tests := []struct {
		name         string
		status       BookingStatus
		wantActive   bool
		wantTerminal bool
		wantRespond  bool
	}{
		{"pending approval", StatusPendingApproval, true, false, true},
		{"confirmed", StatusConfirmed, true, false, false},
		{"rejected", StatusRejected, false, true, false},
		{"cancelled", StatusCancelled, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.wantActive, b.IsActive())
			assert.Equal(t, tt.wantActive, b.CanBeCancelled())
			assert.Equal(t, tt.wantTerminal, b.IsTerminal())
			assert.Equal(t, tt.wantRespond, b.CanBeResponded())
		})
	}
}

func TestBooking_CloneDoesNotShareCoach(t *testing.T) {
	coach := "coach1"
	b := &Booking{ID: "b1", CoachID: &coach, Price: PricingBreakdown{Total: 42}}

	c := b.Clone()
	*c.CoachID = "coach2"
	c.Price.Total = 1

	assert.Equal(t, "coach1", *b.CoachID)
	assert.Equal(t, 42.0, b.Price.Total)
}

func TestOverlaps(t *testing.T) {
	base := time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		start  time.Time
		end    time.Time
		expect bool
	}{
		{"same slot", base, base.Add(time.Hour), true},
		{"adjacent before", base.Add(-time.Hour), base, false},
		{"adjacent after", base.Add(time.Hour), base.Add(2 * time.Hour), false},
		{"partial", base.Add(30 * time.Minute), base.Add(90 * time.Minute), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Overlaps(base, base.Add(time.Hour), tt.start, tt.end))
		})
	}
}

func TestSlotStartAndAlignment(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	date := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	start := SlotStart(date, 18, loc)
	assert.Equal(t, 18, start.Hour())
	assert.Equal(t, loc, start.Location())
	assert.True(t, IsHourAligned(start))
	assert.False(t, IsHourAligned(start.Add(time.Minute)))

	dayStart, dayEnd := DayBounds(date, time.UTC)
	assert.Equal(t, 24*time.Hour, dayEnd.Sub(dayStart))
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 37.5, RoundMoney(37.5))
	assert.Equal(t, 10.13, RoundMoney(10.125))
	assert.Equal(t, 0.0, RoundMoney(0))
}

func TestCoach_IsBlocked(t *testing.T) {
	slot := time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC)
	c := &Coach{ID: "coach1", BlockedSlots: []time.Time{slot}}

	assert.True(t, c.IsBlocked(slot))
	assert.False(t, c.IsBlocked(slot.Add(time.Hour)))

	cp := c.Clone()
	cp.BlockedSlots[0] = slot.Add(time.Hour)
	assert.True(t, c.IsBlocked(slot))
}

func TestLocalSlotStart_SpringForwardGap(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	date := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		hour   int
		wantOK bool
	}{
		{hour: 1, wantOK: true},
		{hour: 2, wantOK: false},
		{hour: 3, wantOK: true},
	}

	for _, tt := range tests {
		start, ok := LocalSlotStart(date, tt.hour, loc)
		assert.Equal(t, tt.wantOK, ok, "hour %d", tt.hour)
		if ok {
			assert.Equal(t, tt.hour, start.Hour())
		}
	}
}

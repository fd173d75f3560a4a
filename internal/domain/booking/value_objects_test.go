//go:build unit

package booking_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPeriod(t *testing.T) {
	now := builder.BaseTime

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{name: "開始が終了より前OK", start: now, end: now.Add(time.Second)},
		{name: "開始が未設定NG", end: now, errIs: booking.ErrPeriodMissing},
		{name: "終了が未設定NG", start: now, errIs: booking.ErrPeriodMissing},
		{name: "開始が終了より後NG", start: now.Add(time.Hour), end: now, errIs: booking.ErrStartAfterEnd},
		{name: "開始と終了が同じNG", start: now, end: now, errIs: booking.ErrStartEqualsEnd},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := booking.NewPeriod(c.start, c.end)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.True(t, p.Start().Equal(c.start))
			assert.True(t, p.End().Equal(c.end))
		})
	}
}

func TestValidateFutureAt(t *testing.T) {
	now := builder.BaseTime

	cases := []struct {
		name  string
		start time.Duration
		end   time.Duration
		errIs error
	}{
		{name: "両方未来OK", start: time.Hour, end: 2 * time.Hour},
		{name: "終了が過去NG", start: -2 * time.Hour, end: -time.Hour, errIs: booking.ErrEndInPast},
		{name: "終了が現在ちょうどNG", start: -time.Hour, end: 0, errIs: booking.ErrEndInPast},
		{name: "開始が過去NG", start: -time.Hour, end: time.Hour, errIs: booking.ErrStartInPast},
		{name: "開始が現在ちょうどNG", start: 0, end: time.Hour, errIs: booking.ErrStartInPast},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := booking.RestorePeriod(now.Add(c.start), now.Add(c.end))
			err := p.ValidateFutureAt(now)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestPeriodClassification(t *testing.T) {
	now := builder.BaseTime

	past := booking.RestorePeriod(now.Add(-2*time.Hour), now.Add(-time.Hour))
	current := booking.RestorePeriod(now.Add(-time.Hour), now.Add(time.Hour))
	endsNow := booking.RestorePeriod(now.Add(-time.Hour), now)
	future := booking.RestorePeriod(now.Add(time.Hour), now.Add(2*time.Hour))

	assert.True(t, past.EndedBefore(now))
	assert.False(t, past.StartsAfter(now))

	assert.False(t, current.EndedBefore(now))
	assert.False(t, current.StartsAfter(now))

	assert.False(t, endsNow.EndedBefore(now), "a booking ending exactly now has not ended")

	assert.True(t, future.StartsAfter(now))
	assert.False(t, future.EndedBefore(now))

	startsNow := booking.RestorePeriod(now, now.Add(time.Hour))
	assert.False(t, startsNow.StartsAfter(now), "a booking starting exactly now is not upcoming")
}

func TestParseState(t *testing.T) {
	for _, raw := range []string{"ALL", "current", "Past", "FUTURE", "waiting", "REJECTED"} {
		t.Run(raw, func(t *testing.T) {
			_, err := booking.ParseState(raw)
			require.NoError(t, err)
		})
	}

	t.Run("未知の状態NG", func(t *testing.T) {
		_, err := booking.ParseState("UNSUPPORTED_STATUS")
		require.Error(t, err)
		assert.Equal(t, "Unknown state: UNSUPPORTED_STATUS", err.Error())
	})
}

func TestParseWindow(t *testing.T) {
	assert.Equal(t, booking.WindowLast, booking.ParseWindow("last"))
	assert.Equal(t, booking.WindowNext, booking.ParseWindow("NEXT"))
	assert.Equal(t, booking.WindowUnknown, booking.ParseWindow("previous"))
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, booking.StatusWaiting.IsValid())
	assert.True(t, booking.StatusApproved.IsValid())
	assert.True(t, booking.StatusRejected.IsValid())
	assert.False(t, booking.Status("CANCELED").IsValid())
}

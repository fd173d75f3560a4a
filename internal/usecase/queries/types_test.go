//go:build unit

package queries_test

import (
	"math"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/ptr"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name       string
		from       *int
		size       *int
		wantErr    error
		wantPaged  bool
		wantLimit  int
		wantOffset int
	}{
		{name: "unpaged", wantPaged: false},
		{name: "from only is unpaged", from: ptr.Of(3), wantPaged: false},
		{name: "size only is unpaged", size: ptr.Of(3), wantPaged: false},
		{name: "first page", from: ptr.Of(0), size: ptr.Of(2), wantPaged: true, wantLimit: 2, wantOffset: 0},
		{name: "offset is rounded down to page start", from: ptr.Of(5), size: ptr.Of(2), wantPaged: true, wantLimit: 2, wantOffset: 4},
		{name: "from smaller than size stays on first page", from: ptr.Of(1), size: ptr.Of(10), wantPaged: true, wantLimit: 10, wantOffset: 0},
		{name: "negative from", from: ptr.Of(-1), size: ptr.Of(2), wantErr: queries.ErrNegativeFrom},
		{name: "zero size", from: ptr.Of(0), size: ptr.Of(0), wantErr: queries.ErrNonPositiveSize},
		{name: "negative size", size: ptr.Of(-5), wantErr: queries.ErrNonPositiveSize},
		{name: "largest int4 values are accepted", from: ptr.Of(math.MaxInt32), size: ptr.Of(math.MaxInt32), wantPaged: true, wantLimit: math.MaxInt32, wantOffset: math.MaxInt32},
		{name: "size beyond int4", from: ptr.Of(0), size: ptr.Of(4294967297), wantErr: queries.ErrSizeTooLarge},
		{name: "from beyond int4", from: ptr.Of(3000000000), size: ptr.Of(1), wantErr: queries.ErrFromTooLarge},
		{name: "size beyond int4 without from", size: ptr.Of(math.MaxInt32 + 1), wantErr: queries.ErrSizeTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := queries.NewPage(tt.from, tt.size)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPaged, page.IsPaged())
			if !tt.wantPaged {
				assert.Nil(t, page.Limit())
				assert.Zero(t, page.Offset())
				return
			}
			require.NotNil(t, page.Limit())
			assert.Equal(t, tt.wantLimit, *page.Limit())
			assert.Equal(t, tt.wantOffset, page.Offset())
		})
	}

	assert.False(t, queries.Unpaged().IsPaged())
}

func TestSelectWindow(t *testing.T) {
	now := builder.BaseTime
	h := time.Hour

	oldPast := builder.NewBookingBuilder().WithID(1).Between(-10*h, -9*h).BuildView()
	recentPast := builder.NewBookingBuilder().WithID(2).Between(-3*h, -2*h).BuildView()
	current := builder.NewBookingBuilder().WithID(3).Between(-h, h).BuildView()
	soon := builder.NewBookingBuilder().WithID(4).Between(2*h, 3*h).BuildView()
	later := builder.NewBookingBuilder().WithID(5).Between(20*h, 30*h).BuildView()

	all := []*queries.BookingView{later, oldPast, current, soon, recentPast}

	t.Run("LAST picks the latest ended booking", func(t *testing.T) {
		got := queries.SelectWindow(all, booking.WindowLast, now)
		require.NotNil(t, got)
		assert.Equal(t, int64(2), got.ID)
	})

	t.Run("NEXT picks the earliest upcoming booking", func(t *testing.T) {
		got := queries.SelectWindow(all, booking.WindowNext, now)
		require.NotNil(t, got)
		assert.Equal(t, int64(4), got.ID)
	})

	t.Run("current booking is neither", func(t *testing.T) {
		only := []*queries.BookingView{current}
		assert.Nil(t, queries.SelectWindow(only, booking.WindowLast, now))
		assert.Nil(t, queries.SelectWindow(only, booking.WindowNext, now))
	})

	t.Run("booking touching now is neither", func(t *testing.T) {
		endsNow := builder.NewBookingBuilder().WithID(6).Between(-h, 0).BuildView()
		startsNow := builder.NewBookingBuilder().WithID(7).Between(0, h).BuildView()
		only := []*queries.BookingView{endsNow, startsNow}
		assert.Nil(t, queries.SelectWindow(only, booking.WindowLast, now))
		assert.Nil(t, queries.SelectWindow(only, booking.WindowNext, now))
	})

	t.Run("unknown window", func(t *testing.T) {
		assert.Nil(t, queries.SelectWindow(all, booking.WindowUnknown, now))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, queries.SelectWindow(nil, booking.WindowLast, now))
	})
}

//go:build unit

package booking_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(booking.Booking{}, booking.Period{}),
	cmpopts.EquateApproxTime(0),
}

func TestNewBooking(t *testing.T) {
	period, err := booking.NewPeriod(builder.BaseTime.Add(time.Hour), builder.BaseTime.Add(2*time.Hour))
	require.NoError(t, err)

	cases := []struct {
		name     string
		bookerID int64
		item     booking.ItemSpec
		errIs    error
	}{
		{
			name:     "利用可能なアイテムは予約できる",
			bookerID: 2,
			item:     booking.ItemSpec{ID: 10, OwnerID: 1, Available: true},
		},
		{
			name:     "利用不可のアイテムはNG",
			bookerID: 2,
			item:     booking.ItemSpec{ID: 10, OwnerID: 1, Available: false},
			errIs:    booking.ErrItemUnavailable,
		},
		{
			name:     "自分のアイテムはNG",
			bookerID: 1,
			item:     booking.ItemSpec{ID: 10, OwnerID: 1, Available: true},
			errIs:    booking.ErrSelfBooking,
		},
		{
			name:     "利用不可かつ自分のアイテムは利用不可が優先",
			bookerID: 1,
			item:     booking.ItemSpec{ID: 10, OwnerID: 1, Available: false},
			errIs:    booking.ErrItemUnavailable,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b, err := booking.NewBooking(c.bookerID, c.item, period)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				require.Nil(t, b)
				return
			}
			require.NoError(t, err)

			expected := booking.ReconstructBooking(0, c.item.ID, c.bookerID, period, booking.StatusWaiting)
			if diff := cmp.Diff(expected, b, cmpOpts...); diff != "" {
				t.Errorf("Booking mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecide(t *testing.T) {
	cases := []struct {
		name     string
		status   booking.Status
		actorID  int64
		approved bool
		want     booking.Status
		errIs    error
	}{
		{name: "WAITINGを承認", status: booking.StatusWaiting, actorID: 1, approved: true, want: booking.StatusApproved},
		{name: "WAITINGを却下", status: booking.StatusWaiting, actorID: 1, approved: false, want: booking.StatusRejected},
		{name: "REJECTEDは再度承認できる", status: booking.StatusRejected, actorID: 1, approved: true, want: booking.StatusApproved},
		{name: "REJECTEDを再度却下", status: booking.StatusRejected, actorID: 1, approved: false, want: booking.StatusRejected},
		{name: "APPROVEDの承認はNG", status: booking.StatusApproved, actorID: 1, approved: true, errIs: booking.ErrAlreadyApproved},
		{name: "APPROVEDの却下もNG", status: booking.StatusApproved, actorID: 1, approved: false, errIs: booking.ErrAlreadyApproved},
		{name: "オーナー以外はNG", status: booking.StatusWaiting, actorID: 2, approved: true, errIs: booking.ErrNotItemOwner},
		{name: "オーナー判定が状態判定より先", status: booking.StatusApproved, actorID: 3, approved: true, errIs: booking.ErrNotItemOwner},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := builder.NewBookingBuilder().WithItem(10, 1).WithStatus(c.status).BuildDomain()

			err := b.Decide(c.actorID, 1, c.approved)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.Equal(t, c.status, b.Status(), "status must not change on error")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, b.Status())
		})
	}
}

func TestWithID(t *testing.T) {
	b := builder.NewBookingBuilder().WithID(0).BuildDomain()
	withID := b.WithID(42)

	assert.Equal(t, int64(42), withID.ID())
	assert.Zero(t, b.ID())
}

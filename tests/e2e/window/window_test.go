//go:build e2e

package window_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/pkg/clock"
	"shareit/tests/common/dbtest"
	"shareit/tests/common/httptest"
	"shareit/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// The booking queries compare against now inside SQL, so these cases pin the
// clock to the exact start or end of a stored booking.
type windowSuite struct {
	e2e.SharedSuite
}

func TestWindowSuite(t *testing.T) {
	suite.Run(t, new(windowSuite))
}

func (s *windowSuite) SetupSuite() {
	s.Clock = clock.NewMockClock(time.Now().UTC().Truncate(time.Second))
	s.SharedSuite.SetupSuite()
}

type seeded struct {
	owner   int64
	booker  int64
	item    int64
	booking int64
	start   time.Time
	end     time.Time
}

func (s *windowSuite) seed() seeded {
	t := s.T()
	owner := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
	booker := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
	item := dbtest.CreateTestItem(t, s.DB, owner, "Drill", true)

	start := s.Clock.Now().Add(time.Hour)
	end := start.Add(2 * time.Hour)
	return seeded{
		owner:   owner,
		booker:  booker,
		item:    item,
		booking: dbtest.CreateTestBooking(t, s.DB, item, booker, start, end, "APPROVED"),
		start:   start,
		end:     end,
	}
}

func (s *windowSuite) listIDs(actor int64, state string) []int64 {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/bookings?state="+state, nil, actor)
	var body []resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
	out := make([]int64, 0, len(body))
	for _, b := range body {
		out = append(out, b.ID)
	}
	return out
}

func (s *windowSuite) itemDetail(actor, itemID int64) resdto.ItemDetailResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf("/items/%d", itemID), nil, actor)
	var body resdto.ItemDetailResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
	return body
}

func (s *windowSuite) assertStates(booker int64, want map[string][]int64) {
	for state, ids := range want {
		if diff := cmp.Diff(ids, s.listIDs(booker, state)); diff != "" {
			s.T().Errorf("%s mismatch (-want +got):\n%s", state, diff)
		}
	}
}

func (s *windowSuite) TestBoundaries() {
	s.Run("開始ちょうどはCURRENTでもFUTUREでもない", func() {
		d := s.seed()
		s.Clock.Set(d.start)

		s.assertStates(d.booker, map[string][]int64{
			"CURRENT": {},
			"FUTURE":  {},
			"PAST":    {},
		})
		detail := s.itemDetail(d.owner, d.item)
		require.Nil(s.T(), detail.NextBooking)
		require.Nil(s.T(), detail.LastBooking)
	})

	s.Run("終了ちょうどはまだCURRENT", func() {
		d := s.seed()
		s.Clock.Set(d.end)

		s.assertStates(d.booker, map[string][]int64{
			"CURRENT": {d.booking},
			"PAST":    {},
		})
		require.Nil(s.T(), s.itemDetail(d.owner, d.item).LastBooking)
	})

	s.Run("終了直後はPASTになりLASTに出る", func() {
		d := s.seed()
		s.Clock.Set(d.end.Add(time.Second))

		s.assertStates(d.booker, map[string][]int64{
			"CURRENT": {},
			"PAST":    {d.booking},
		})
		last := s.itemDetail(d.owner, d.item).LastBooking
		require.NotNil(s.T(), last)
		require.Equal(s.T(), d.booking, last.ID)
	})

	s.Run("開始が現在ちょうどの予約は作成できない", func() {
		d := s.seed()
		now := s.Clock.Now()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/bookings", map[string]any{
			"itemId": d.item,
			"start":  now,
			"end":    now.Add(time.Hour),
		}, d.booker)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Start date cannot be in the past")
	})
}

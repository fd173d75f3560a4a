//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/handler/api"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"
	"shareit/tests/common/httptest"
	"shareit/tests/common/testutil"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.router = newTestRouter(s.T())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	h := api.NewBookingHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("/bookings", newTestActor())
	g.POST("", h.Create)
	g.GET("", h.ListForBooker)
	g.GET("/owner", h.ListForOwner)
	g.GET("/:bookingId", h.Get)
	g.PATCH("/:bookingId", h.SetApproval)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateDTO()
	created := b.BuildDomain()
	view := b.BuildView()

	s.Run("success: returns 201 with the booking as seen by the booker", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), b.BookerID, b.ItemID, b.Start, b.End).
			Return(created, nil)
		s.mockQueries.EXPECT().GetVisible(gomock.Any(), b.BookerID, created.ID()).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, b.BookerID)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("WAITING", body.Status)
		s.Equal(view.BookerName, body.Booker.Name)
		s.Equal(view.ItemName, body.Item.Name)
	})

	now := builder.BaseTime
	cases := []testCaseBooking{
		{name: "missing itemId", mutate: testutil.Field("itemId", nil), expectCode: http.StatusBadRequest, expectInBody: "itemId is required"},
		{name: "missing start", mutate: testutil.Field("start", nil), expectCode: http.StatusBadRequest, expectInBody: "Start and end dates cannot be null"},
		{name: "missing end", mutate: testutil.Field("end", nil), expectCode: http.StatusBadRequest, expectInBody: "Start and end dates cannot be null"},
		{
			name:         "end in the past",
			mutate:       func(m map[string]any) { m["end"] = now.Add(-time.Hour); m["start"] = now.Add(-2 * time.Hour) },
			expectCode:   http.StatusBadRequest,
			expectInBody: "End date cannot be in the past",
		},
		{
			name:         "start in the past",
			mutate:       testutil.Field("start", now.Add(-time.Hour)),
			expectCode:   http.StatusBadRequest,
			expectInBody: "Start date cannot be in the past",
		},
		{
			name:         "start exactly now",
			mutate:       testutil.Field("start", now),
			expectCode:   http.StatusBadRequest,
			expectInBody: "Start date cannot be in the past",
		},
		{
			name:         "end exactly now",
			mutate:       func(m map[string]any) { m["end"] = now; m["start"] = now.Add(-time.Hour) },
			expectCode:   http.StatusBadRequest,
			expectInBody: "End date cannot be in the past",
		},
		{
			name:         "start after end",
			mutate:       testutil.Field("start", b.End.Add(time.Hour)),
			expectCode:   http.StatusBadRequest,
			expectInBody: "Start date cannot be after the end date",
		},
		{
			name:         "start equals end",
			mutate:       testutil.Field("start", b.End),
			expectCode:   http.StatusBadRequest,
			expectInBody: "Start date cannot be the same as the end date",
		},
		{
			name:         "malformed timestamp",
			mutate:       testutil.Field("start", "tomorrow"),
			expectCode:   http.StatusBadRequest,
			expectInBody: "Invalid request body",
		},
	}

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, b.BookerID)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
			})
		}
	})

	s.Run("error: 400 without an actor header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, 0)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Missing X-Sharer-User-Id header")
	})

	s.Run("error: command errors map to their status", func() {
		errCases := []struct {
			name string
			err  error
			code int
		}{
			{name: "unavailable item", err: booking.ErrItemUnavailable, code: http.StatusBadRequest},
			{name: "owner books own item", err: booking.ErrSelfBooking, code: http.StatusNotFound},
			{name: "unexpected failure", err: errs.New("boom"), code: http.StatusInternalServerError},
		}
		for _, tc := range errCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, b.BookerID)
				httptest.AssertErrorResponse(s.T(), rec, tc.code, "")
			})
		}
	})
}

// ================================================================================
// TestSetApproval
// ================================================================================

func (s *BookingHandlerTestSuite) TestSetApproval() {
	b := builder.NewBookingBuilder().WithStatus(booking.StatusApproved)
	view := b.BuildView()

	s.Run("success: owner approves", func() {
		s.mockCommands.EXPECT().SetApproval(gomock.Any(), b.ItemOwnerID, b.ID, true).Return(b.BuildDomain(), nil)
		s.mockQueries.EXPECT().GetVisible(gomock.Any(), b.ItemOwnerID, b.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/1000?approved=true", nil, b.ItemOwnerID)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("APPROVED", body.Status)
	})

	s.Run("error: approved must be a boolean", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/1000?approved=maybe", nil, b.ItemOwnerID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Parameter approved")
	})

	s.Run("error: non-owner is forbidden", func() {
		s.mockCommands.EXPECT().SetApproval(gomock.Any(), b.BookerID, b.ID, true).Return(nil, booking.ErrNotItemOwner)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/1000?approved=true", nil, b.BookerID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "You are not allowed to approve this booking")
	})

	s.Run("error: already approved", func() {
		s.mockCommands.EXPECT().SetApproval(gomock.Any(), b.ItemOwnerID, b.ID, false).Return(nil, booking.ErrAlreadyApproved)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/1000?approved=false", nil, b.ItemOwnerID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already been approved")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	b := builder.NewBookingBuilder()

	s.Run("success: visible booking", func() {
		s.mockQueries.EXPECT().GetVisible(gomock.Any(), b.BookerID, b.ID).Return(b.BuildView(), nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/1000", nil, b.BookerID)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Start.Equal(b.Start))
		s.True(body.End.Equal(b.End))
	})

	s.Run("error: outsiders get 404", func() {
		s.mockQueries.EXPECT().GetVisible(gomock.Any(), int64(99), b.ID).Return(nil, booking.ErrBookingNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/1000", nil, 99)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/abc", nil, b.BookerID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid bookingId")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	views := []*queries.BookingView{builder.NewBookingBuilder().BuildView()}

	s.Run("success: default state is ALL and unpaged", func() {
		s.mockQueries.EXPECT().ListForBooker(gomock.Any(), int64(2), booking.StateAll, queries.Unpaged()).Return(views, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, 2)

		var body []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("success: state is case-insensitive and paging is passed through", func() {
		s.mockQueries.EXPECT().
			ListForOwner(gomock.Any(), int64(1), booking.StateFuture, gomock.Any()).
			DoAndReturn(func(_ any, _ int64, _ booking.State, page queries.Page) ([]*queries.BookingView, error) {
				s.Equal(2, *page.Limit())
				s.Equal(4, page.Offset())
				return []*queries.BookingView{}, nil
			})
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/owner?state=future&from=4&size=2", nil, 1)

		var body []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	errCases := []struct {
		name         string
		url          string
		expectInBody string
	}{
		{name: "unknown state", url: "/bookings?state=SOMETIMES", expectInBody: "Unknown state: SOMETIMES"},
		{name: "negative from", url: "/bookings?from=-1&size=2", expectInBody: "Parameter from must not be negative"},
		{name: "zero size", url: "/bookings/owner?from=0&size=0", expectInBody: "Parameter size must be positive"},
		{name: "non-numeric size", url: "/bookings?size=ten", expectInBody: "Invalid parameter size"},
		{name: "size beyond int4", url: "/bookings?from=0&size=4294967297", expectInBody: "Parameter size is too large"},
		{name: "from beyond int4", url: "/bookings/owner?from=3000000000&size=1", expectInBody: "Parameter from is too large"},
	}
	for _, tc := range errCases {
		s.Run("error: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.url, nil, 1)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectInBody)
		})
	}

	s.Run("error: unknown actor", func() {
		s.mockQueries.EXPECT().ListForBooker(gomock.Any(), int64(404), booking.StateAll, gomock.Any()).
			Return(nil, errs.NotFound("User not found"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, 404)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}

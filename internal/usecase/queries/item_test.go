//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/domain/user"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"
	queriesmock "shareit/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ItemQueriesTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	items    *queriesmock.MockItemReadStore
	comments *queriesmock.MockCommentReadStore
	users    *queriesmock.MockUserReadStore
	bookings *queriesmock.MockBookingQueries
	sut      queries.ItemQueries
}

func (s *ItemQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.items = queriesmock.NewMockItemReadStore(s.ctrl)
	s.comments = queriesmock.NewMockCommentReadStore(s.ctrl)
	s.users = queriesmock.NewMockUserReadStore(s.ctrl)
	s.bookings = queriesmock.NewMockBookingQueries(s.ctrl)
	s.sut = queries.NewItemQueries(s.items, s.comments, s.users, s.bookings, clock.NewMockClock(builder.BaseTime))
}

func TestItemQueriesSuite(t *testing.T) {
	suite.Run(t, new(ItemQueriesTestSuite))
}

func (s *ItemQueriesTestSuite) TestGetItem() {
	ctx := context.Background()
	view := builder.NewItemBuilder().WithOwner(1).BuildView()
	comment := builder.NewCommentBuilder().BuildView()

	s.Run("owner sees booking windows", func() {
		last := builder.NewBookingBuilder().WithID(1).Between(-2*time.Hour, -time.Hour).BuildView()
		next := builder.NewBookingBuilder().WithID(2).Between(time.Hour, 2*time.Hour).BuildView()

		s.items.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
		s.bookings.EXPECT().WindowForItem(ctx, view.ID, booking.WindowLast).Return(last, nil)
		s.bookings.EXPECT().WindowForItem(ctx, view.ID, booking.WindowNext).Return(next, nil)
		s.comments.EXPECT().ListByItemIDs(ctx, []int64{view.ID}).Return([]*queries.CommentView{comment}, nil)

		got, err := s.sut.GetItem(ctx, 1, view.ID)
		s.Require().NoError(err)
		s.Equal(last, got.LastBooking)
		s.Equal(next, got.NextBooking)
		s.Len(got.Comments, 1)
	})

	s.Run("other users see no windows", func() {
		s.items.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
		s.comments.EXPECT().ListByItemIDs(ctx, []int64{view.ID}).Return(nil, nil)

		got, err := s.sut.GetItem(ctx, 2, view.ID)
		s.Require().NoError(err)
		s.Nil(got.LastBooking)
		s.Nil(got.NextBooking)
		s.NotNil(got.Comments)
		s.Empty(got.Comments)
	})

	s.Run("missing item", func() {
		s.items.EXPECT().FindByID(ctx, int64(404)).Return(nil, notFound())

		_, err := s.sut.GetItem(ctx, 1, 404)
		s.ErrorIs(err, item.ErrItemNotFound)
	})
}

func (s *ItemQueriesTestSuite) TestListOwnerItems() {
	ctx := context.Background()

	s.Run("windows are computed per item from one bookings load", func() {
		drill := builder.NewItemBuilder().WithID(10).BuildView()
		saw := builder.NewItemBuilder().WithID(11).WithName("Saw").BuildView()

		past := builder.NewBookingBuilder().WithID(1).WithItem(10, 1).Between(-3*time.Hour, -2*time.Hour).BuildView()
		future := builder.NewBookingBuilder().WithID(2).WithItem(11, 1).Between(time.Hour, 2*time.Hour).BuildView()
		comment := builder.NewCommentBuilder().WithItem(11).BuildView()

		s.items.EXPECT().ListByOwner(ctx, int64(1)).Return([]*queries.ItemView{drill, saw}, nil)
		s.bookings.EXPECT().BookingsForItems(ctx, []int64{10, 11}).
			Return(map[int64][]*queries.BookingView{10: {past}, 11: {future}}, nil)
		s.comments.EXPECT().ListByItemIDs(ctx, []int64{10, 11}).Return([]*queries.CommentView{comment}, nil)

		got, err := s.sut.ListOwnerItems(ctx, 1)
		s.Require().NoError(err)
		s.Require().Len(got, 2)

		s.Equal(past, got[0].LastBooking)
		s.Nil(got[0].NextBooking)
		s.Empty(got[0].Comments)

		s.Nil(got[1].LastBooking)
		s.Equal(future, got[1].NextBooking)
		s.Len(got[1].Comments, 1)
	})

	s.Run("no items", func() {
		s.items.EXPECT().ListByOwner(ctx, int64(5)).Return(nil, nil)

		got, err := s.sut.ListOwnerItems(ctx, 5)
		s.Require().NoError(err)
		s.NotNil(got)
		s.Empty(got)
	})
}

func (s *ItemQueriesTestSuite) TestSearch() {
	ctx := context.Background()

	s.Run("blank text returns nothing without searching", func() {
		s.users.EXPECT().FindByID(ctx, int64(1)).Return(builder.NewUserBuilder().BuildView(), nil)

		got, err := s.sut.Search(ctx, 1, "   ")
		s.Require().NoError(err)
		s.Empty(got)
	})

	s.Run("text is passed through", func() {
		s.users.EXPECT().FindByID(ctx, int64(1)).Return(builder.NewUserBuilder().BuildView(), nil)
		s.items.EXPECT().SearchAvailable(ctx, "dRiLl").Return([]*queries.ItemView{builder.NewItemBuilder().BuildView()}, nil)

		got, err := s.sut.Search(ctx, 1, "dRiLl")
		s.Require().NoError(err)
		s.Len(got, 1)
	})

	s.Run("unknown user", func() {
		s.users.EXPECT().FindByID(ctx, int64(99)).Return(nil, notFound())

		_, err := s.sut.Search(ctx, 99, "drill")
		s.ErrorIs(err, user.ErrUserNotFound)
	})
}

func (s *ItemQueriesTestSuite) TestGetComment() {
	ctx := context.Background()

	s.comments.EXPECT().FindByID(ctx, int64(7)).Return(nil, notFound())
	_, err := s.sut.GetComment(ctx, 7)
	s.ErrorIs(err, queries.ErrCommentNotFound)
}

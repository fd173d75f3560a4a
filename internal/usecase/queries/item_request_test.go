//go:build unit

package queries_test

import (
	"context"
	"testing"

	"shareit/internal/domain/itemrequest"
	"shareit/internal/domain/user"
	"shareit/internal/pkg/ptr"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"
	queriesmock "shareit/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ItemRequestQueriesTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	requests *queriesmock.MockItemRequestReadStore
	items    *queriesmock.MockItemReadStore
	users    *queriesmock.MockUserReadStore
	sut      queries.ItemRequestQueries
}

func (s *ItemRequestQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.requests = queriesmock.NewMockItemRequestReadStore(s.ctrl)
	s.items = queriesmock.NewMockItemReadStore(s.ctrl)
	s.users = queriesmock.NewMockUserReadStore(s.ctrl)
	s.sut = queries.NewItemRequestQueries(s.requests, s.items, s.users)
}

func TestItemRequestQueriesSuite(t *testing.T) {
	suite.Run(t, new(ItemRequestQueriesTestSuite))
}

func (s *ItemRequestQueriesTestSuite) expectUser(id int64) {
	s.users.EXPECT().FindByID(gomock.Any(), id).Return(builder.NewUserBuilder().WithID(id).BuildView(), nil)
}

func (s *ItemRequestQueriesTestSuite) TestListOwn() {
	ctx := context.Background()

	s.Run("attaches answering items to each request", func() {
		r1 := builder.NewItemRequestBuilder().WithID(50).BuildView()
		r2 := builder.NewItemRequestBuilder().WithID(51).BuildView()
		answer := builder.NewItemBuilder().WithID(10).WithOwner(3).WithRequest(50).BuildView()

		s.expectUser(2)
		s.requests.EXPECT().ListByRequestor(ctx, int64(2), gomock.Nil(), 0).Return([]*queries.ItemRequestView{r1, r2}, nil)
		s.items.EXPECT().ListByRequestIDs(ctx, []int64{50, 51}).Return([]*queries.ItemView{answer}, nil)

		got, err := s.sut.ListOwn(ctx, 2, queries.Unpaged())
		s.Require().NoError(err)
		s.Require().Len(got, 2)
		s.Len(got[0].Items, 1)
		s.NotNil(got[1].Items)
		s.Empty(got[1].Items)
	})

	s.Run("empty listing skips item lookup", func() {
		s.expectUser(2)
		s.requests.EXPECT().ListByRequestor(ctx, int64(2), gomock.Nil(), 0).Return([]*queries.ItemRequestView{}, nil)

		got, err := s.sut.ListOwn(ctx, 2, queries.Unpaged())
		s.Require().NoError(err)
		s.Empty(got)
	})

	s.Run("unknown user", func() {
		s.users.EXPECT().FindByID(ctx, int64(99)).Return(nil, notFound())

		_, err := s.sut.ListOwn(ctx, 99, queries.Unpaged())
		s.ErrorIs(err, user.ErrUserNotFound)
	})
}

func (s *ItemRequestQueriesTestSuite) TestListOthers() {
	ctx := context.Background()
	page, err := queries.NewPage(ptr.Of(0), ptr.Of(10))
	s.Require().NoError(err)

	s.expectUser(2)
	s.requests.EXPECT().ListExcludingRequestor(ctx, int64(2), gomock.Eq(ptr.Of(10)), 0).
		Return([]*queries.ItemRequestView{builder.NewItemRequestBuilder().WithRequestor(3).BuildView()}, nil)
	s.items.EXPECT().ListByRequestIDs(ctx, []int64{50}).Return(nil, nil)

	got, err := s.sut.ListOthers(ctx, 2, page)
	s.Require().NoError(err)
	s.Len(got, 1)
}

func (s *ItemRequestQueriesTestSuite) TestGetByID() {
	ctx := context.Background()

	s.Run("found", func() {
		s.expectUser(3)
		s.requests.EXPECT().FindByID(ctx, int64(50)).Return(builder.NewItemRequestBuilder().BuildView(), nil)
		s.items.EXPECT().ListByRequestIDs(ctx, []int64{50}).Return(nil, nil)

		got, err := s.sut.GetByID(ctx, 3, 50)
		s.Require().NoError(err)
		s.Equal(int64(50), got.ID)
	})

	s.Run("missing request", func() {
		s.expectUser(3)
		s.requests.EXPECT().FindByID(ctx, int64(404)).Return(nil, notFound())

		_, err := s.sut.GetByID(ctx, 3, 404)
		s.ErrorIs(err, itemrequest.ErrRequestNotFound)
	})
}

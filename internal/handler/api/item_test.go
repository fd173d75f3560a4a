//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/handler/api"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/usecase/commands"
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

type ItemHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockItemCommands
	mockQueries  *queriesmock.MockItemQueries
}

func (s *ItemHandlerTestSuite) SetupTest() {
	s.router = newTestRouter(s.T())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockItemCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockItemQueries(s.mockCtrl)
	h := api.NewItemHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("/items", newTestActor())
	g.POST("", h.Create)
	g.GET("", h.ListOwn)
	g.GET("/search", h.Search)
	g.GET("/:itemId", h.Get)
	g.PATCH("/:itemId", h.Update)
	g.POST("/:itemId/comment", h.AddComment)
}

func (s *ItemHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestItemHandlerSuite(t *testing.T) {
	suite.Run(t, new(ItemHandlerTestSuite))
}

func (s *ItemHandlerTestSuite) TestCreate() {
	b := builder.NewItemBuilder()
	reqBody := b.BuildCreateDTO()

	s.Run("success: 201 with the stored item", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), b.OwnerID, commands.CreateItemInput{
				Name: b.Name, Description: b.Description, Available: b.Available,
			}).
			Return(b.BuildStored(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/items", reqBody, b.OwnerID)

		var body resdto.ItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(resdto.ItemResponse{ID: b.ID, Name: b.Name, Description: b.Description, Available: true}, body)
	})

	cases := []struct {
		name         string
		mutate       func(m map[string]any)
		expectInBody string
	}{
		{name: "missing name", mutate: testutil.Field("name", nil), expectInBody: "name is required"},
		{name: "empty description", mutate: testutil.Field("description", ""), expectInBody: "description is required"},
		{name: "missing available", mutate: testutil.Field("available", nil), expectInBody: "available is required"},
	}
	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/items",
				testutil.DtoMap(s.T(), reqBody, tc.mutate), b.OwnerID)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectInBody)
		})
	}

	s.Run("success: availability false is kept", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), b.OwnerID, gomock.Any()).
			DoAndReturn(func(_ any, _ int64, in commands.CreateItemInput) (*item.Item, error) {
				s.Require().NotNil(in.Available)
				s.False(*in.Available)
				return builder.NewItemBuilder().Unavailable().BuildStored(), nil
			})
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/items",
			testutil.DtoMap(s.T(), reqBody, testutil.Field("available", false)), b.OwnerID)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})
}

func (s *ItemHandlerTestSuite) TestUpdate() {
	b := builder.NewItemBuilder().WithName("Hammer drill")

	s.Run("success: partial update", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), b.OwnerID, b.ID, gomock.Any()).
			DoAndReturn(func(_ any, _, _ int64, in commands.UpdateItemInput) (*item.Item, error) {
				s.Equal("Hammer drill", *in.Name)
				s.Nil(in.Description)
				s.Nil(in.Available)
				return b.BuildStored(), nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/items/10",
			map[string]any{"name": "Hammer drill"}, b.OwnerID)

		var body resdto.ItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Hammer drill", body.Name)
	})

	s.Run("error: only the owner can edit", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(2), b.ID, gomock.Any()).Return(nil, item.ErrNotOwner)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/items/10", map[string]any{"name": "x"}, 2)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Only the owner can edit this item")
	})

	s.Run("error: unknown item", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), b.OwnerID, int64(77), gomock.Any()).Return(nil, item.ErrItemNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/items/77", map[string]any{}, b.OwnerID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Item not found")
	})
}

func (s *ItemHandlerTestSuite) TestGet() {
	detail := builder.NewItemBuilder().BuildDetailView()
	detail.LastBooking = builder.NewBookingBuilder().WithID(7).BuildView()
	detail.Comments = []*queries.CommentView{builder.NewCommentBuilder().BuildView()}

	s.Run("success: windows and comments are rendered", func() {
		s.mockQueries.EXPECT().GetItem(gomock.Any(), int64(1), int64(10)).Return(detail, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/10", nil, 1)

		var body resdto.ItemDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.LastBooking)
		s.Equal(int64(7), body.LastBooking.ID)
		s.Equal(int64(2), body.LastBooking.BookerID)
		s.Nil(body.NextBooking)
		s.Require().Len(body.Comments, 1)
		s.Equal("Booker", body.Comments[0].AuthorName)
	})

	s.Run("error: unknown item", func() {
		s.mockQueries.EXPECT().GetItem(gomock.Any(), int64(1), int64(11)).Return(nil, item.ErrItemNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/11", nil, 1)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Item not found")
	})
}

func (s *ItemHandlerTestSuite) TestListAndSearch() {
	s.Run("success: owner listing", func() {
		s.mockQueries.EXPECT().ListOwnerItems(gomock.Any(), int64(1)).
			Return([]*queries.ItemDetailView{builder.NewItemBuilder().BuildDetailView()}, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items", nil, 1)

		var body []resdto.ItemDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("success: search passes text through", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), int64(3), "DriLL").
			Return([]*queries.ItemView{builder.NewItemBuilder().BuildView()}, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/search?text=DriLL", nil, 3)

		var body []resdto.ItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("success: blank search yields an empty array", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), int64(3), "").Return([]*queries.ItemView{}, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/search", nil, 3)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})
}

func (s *ItemHandlerTestSuite) TestAddComment() {
	cb := builder.NewCommentBuilder()
	created, err := comment.NewComment(cb.AuthorID, cb.ItemID, cb.Text, 1, cb.Created)
	s.Require().NoError(err)

	s.Run("success: 201 with author name", func() {
		s.mockCommands.EXPECT().AddComment(gomock.Any(), cb.AuthorID, cb.ItemID, cb.Text).Return(created.WithID(cb.ID), nil)
		s.mockQueries.EXPECT().GetComment(gomock.Any(), cb.ID).Return(cb.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/items/10/comment",
			map[string]any{"text": cb.Text}, cb.AuthorID)

		var body resdto.CommentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(cb.Text, body.Text)
		s.Equal(cb.AuthorName, body.AuthorName)
		s.Equal(cb.ItemID, body.ItemID)
	})

	s.Run("error: no completed booking", func() {
		s.mockCommands.EXPECT().AddComment(gomock.Any(), cb.AuthorID, cb.ItemID, cb.Text).Return(nil, comment.ErrNoCompletedBookings)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/items/10/comment",
			map[string]any{"text": cb.Text}, cb.AuthorID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "No completed bookings found")
	})

	s.Run("error: empty text", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/items/10/comment",
			map[string]any{"text": ""}, cb.AuthorID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "text is required")
	})
}

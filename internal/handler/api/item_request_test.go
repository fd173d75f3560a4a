//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"shareit/internal/domain/itemrequest"
	"shareit/internal/handler/api"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"
	"shareit/tests/common/httptest"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ItemRequestHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockItemRequestCommands
	mockQueries  *queriesmock.MockItemRequestQueries
}

func (s *ItemRequestHandlerTestSuite) SetupTest() {
	s.router = newTestRouter(s.T())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockItemRequestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockItemRequestQueries(s.mockCtrl)
	h := api.NewItemRequestHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("/requests", newTestActor())
	g.POST("", h.Create)
	g.GET("", h.ListOwn)
	g.GET("/all", h.ListOthers)
	g.GET("/:requestId", h.Get)
}

func (s *ItemRequestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestItemRequestHandlerSuite(t *testing.T) {
	suite.Run(t, new(ItemRequestHandlerTestSuite))
}

func (s *ItemRequestHandlerTestSuite) TestCreate() {
	b := builder.NewItemRequestBuilder()

	s.Run("success: 201 with an empty item list", func() {
		r, err := itemrequest.NewItemRequest(b.RequestorID, b.Description, b.Created)
		s.Require().NoError(err)
		s.mockCommands.EXPECT().Create(gomock.Any(), b.RequestorID, b.Description).Return(r.WithID(b.ID), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/requests",
			map[string]any{"description": b.Description}, b.RequestorID)

		var body resdto.ItemRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.ID, body.ID)
		s.True(body.Created.Equal(b.Created))
		s.NotNil(body.Items)
		s.Empty(body.Items)
	})

	s.Run("error: missing description", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/requests", map[string]any{}, b.RequestorID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "description is required")
	})

	s.Run("error: unknown requestor", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), int64(404), b.Description).Return(nil, errs.NotFound("User not found"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/requests",
			map[string]any{"description": b.Description}, 404)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}

func (s *ItemRequestHandlerTestSuite) TestList() {
	view := builder.NewItemRequestBuilder().BuildView()
	view.Items = []*queries.ItemView{builder.NewItemBuilder().WithRequest(view.ID).BuildView()}

	s.Run("success: own requests with answers", func() {
		s.mockQueries.EXPECT().ListOwn(gomock.Any(), int64(2), queries.Unpaged()).Return([]*queries.ItemRequestView{view}, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests", nil, 2)

		var body []resdto.ItemRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Require().Len(body[0].Items, 1)
		s.Equal(view.ID, *body[0].Items[0].RequestID)
	})

	s.Run("success: others' requests are paged", func() {
		s.mockQueries.EXPECT().ListOthers(gomock.Any(), int64(1), gomock.Any()).
			DoAndReturn(func(_ any, _ int64, page queries.Page) ([]*queries.ItemRequestView, error) {
				s.True(page.IsPaged())
				s.Equal(10, page.Offset())
				return []*queries.ItemRequestView{}, nil
			})
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests/all?from=10&size=5", nil, 1)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: negative from", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests/all?from=-5&size=5", nil, 1)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Parameter from must not be negative")
	})
}

func (s *ItemRequestHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(3), int64(50)).Return(builder.NewItemRequestBuilder().BuildView(), nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests/50", nil, 3)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: unknown request", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(3), int64(51)).Return(nil, errs.NotFound("Request not found"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests/51", nil, 3)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Request not found")
	})
}

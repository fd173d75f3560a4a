package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
)

type ItemRequestHandler struct {
	cmds commands.ItemRequestCommands
	q    queries.ItemRequestQueries
}

func NewItemRequestHandler(cmds commands.ItemRequestCommands, q queries.ItemRequestQueries) *ItemRequestHandler {
	return &ItemRequestHandler{cmds: cmds, q: q}
}

// @Summary Create item request
// @Tags requests
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param request body reqdto.CreateItemRequestBody true "Request description"
// @Success 201 {object} resdto.ItemRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests [post]
func (h *ItemRequestHandler) Create(c *gin.Context) {
	requestorID, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.CreateItemRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, reqdto.BindError(err))
		return
	}

	r, err := h.cmds.Create(c.Request.Context(), requestorID, req.Description)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromItemRequest(r)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary List own item requests
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param from query int false "First row"
// @Param size query int false "Page size"
// @Success 200 {array} resdto.ItemRequestResponse
// @Failure 404 {object} httperr.Response
// @Router /requests [get]
func (h *ItemRequestHandler) ListOwn(c *gin.Context) {
	h.list(c, h.q.ListOwn)
}

// @Summary List other users' item requests
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param from query int false "First row"
// @Param size query int false "Page size"
// @Success 200 {array} resdto.ItemRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests/all [get]
func (h *ItemRequestHandler) ListOthers(c *gin.Context) {
	h.list(c, h.q.ListOthers)
}

// @Summary Get item request
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param requestId path int true "Request ID"
// @Success 200 {object} resdto.ItemRequestResponse
// @Failure 404 {object} httperr.Response
// @Router /requests/{requestId} [get]
func (h *ItemRequestHandler) Get(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	requestID, ok := pathID(c, "requestId")
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), userID, requestID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromItemRequestView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ItemRequestHandler) list(c *gin.Context, lister func(ctx context.Context, userID int64, page queries.Page) ([]*queries.ItemRequestView, error)) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	page, ok := pageQuery(c)
	if !ok {
		return
	}

	views, err := lister(c.Request.Context(), userID, page)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromItemRequestViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

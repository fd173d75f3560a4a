package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
)

type ItemHandler struct {
	cmds commands.ItemCommands
	q    queries.ItemQueries
}

func NewItemHandler(cmds commands.ItemCommands, q queries.ItemQueries) *ItemHandler {
	return &ItemHandler{cmds: cmds, q: q}
}

// @Summary Create item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param request body reqdto.CreateItemRequest true "Create item request"
// @Success 201 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	ownerID, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, reqdto.BindError(err))
		return
	}

	it, err := h.cmds.Create(c.Request.Context(), ownerID, commands.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
		RequestID:   req.RequestID,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromItem(it)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Update item
// @Description Owner only. Only the given fields change.
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param itemId path int true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Update item request"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId} [patch]
func (h *ItemHandler) Update(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	var req reqdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, reqdto.BindError(err))
		return
	}

	it, err := h.cmds.Update(c.Request.Context(), userID, itemID, commands.UpdateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromItem(it)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get item
// @Description Comments for everyone; the owner also sees the last and next bookings.
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param itemId path int true "Item ID"
// @Success 200 {object} resdto.ItemDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	view, err := h.q.GetItem(c.Request.Context(), userID, itemID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromItemDetailView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List own items
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Success 200 {array} resdto.ItemDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /items [get]
func (h *ItemHandler) ListOwn(c *gin.Context) {
	ownerID, ok := actorID(c)
	if !ok {
		return
	}

	views, err := h.q.ListOwnerItems(c.Request.Context(), ownerID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromItemDetailViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Search available items
// @Description Case-insensitive match on name or description. Blank text returns nothing.
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param text query string false "Search text"
// @Success 200 {array} resdto.ItemResponse
// @Failure 404 {object} httperr.Response
// @Router /items/search [get]
func (h *ItemHandler) Search(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	views, err := h.q.Search(c.Request.Context(), userID, c.Query("text"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromItemViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Comment on item
// @Description Allowed after one of the author's bookings of the item has ended.
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param itemId path int true "Item ID"
// @Param request body reqdto.CreateCommentRequest true "Comment"
// @Success 201 {object} resdto.CommentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId}/comment [post]
func (h *ItemHandler) AddComment(c *gin.Context) {
	authorID, ok := actorID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	var req reqdto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, reqdto.BindError(err))
		return
	}

	cm, err := h.cmds.AddComment(c.Request.Context(), authorID, itemID, req.Text)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetComment(c.Request.Context(), cm.ID())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromCommentView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

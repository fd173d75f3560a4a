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

type UserHandler struct {
	cmds commands.UserCommands
	q    queries.UserQueries
}

func NewUserHandler(cmds commands.UserCommands, q queries.UserQueries) *UserHandler {
	return &UserHandler{cmds: cmds, q: q}
}

// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.CreateUserRequest true "Create user request"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, reqdto.BindError(err))
		return
	}

	u, err := h.cmds.Create(c.Request.Context(), commands.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusCreated, u.ID())
}

// @Summary Update user
// @Description Only the given fields change.
// @Tags users
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param request body reqdto.UpdateUserRequest true "Update user request"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /users/{userId} [patch]
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}
	var req reqdto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, reqdto.BindError(err))
		return
	}

	if _, err := h.cmds.Update(c.Request.Context(), id, commands.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
	}); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, id)
}

// @Summary Get user
// @Tags users
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} resdto.UserResponse
// @Failure 404 {object} httperr.Response
// @Router /users/{userId} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}
	h.respond(c, http.StatusOK, id)
}

// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} resdto.UserResponse
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromUserViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Delete user
// @Tags users
// @Param userId path int true "User ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /users/{userId} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) respond(c *gin.Context, status int, id int64) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromUserView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, res)
}

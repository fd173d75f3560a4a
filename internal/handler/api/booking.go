package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book an item for a future period. The booking starts WAITING.
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	bookerID, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, reqdto.BindError(err))
		return
	}

	b, err := h.cmds.Create(c.Request.Context(), bookerID, *req.ItemID, *req.Start, *req.End)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetVisible(c.Request.Context(), bookerID, b.ID())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Approve or reject booking
// @Description The item owner decides a WAITING booking.
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param bookingId path int true "Booking ID"
// @Param approved query bool true "Approve when true"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{bookingId} [patch]
func (h *BookingHandler) SetApproval(c *gin.Context) {
	ownerID, ok := actorID(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httperr.Abort(c, errs.Validation("Parameter approved must be true or false"))
		return
	}

	if _, err = h.cmds.SetApproval(c.Request.Context(), ownerID, bookingID, approved); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetVisible(c.Request.Context(), ownerID, bookingID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Visible to the booker and to the item owner only.
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param bookingId path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{bookingId} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}

	view, err := h.q.GetVisible(c.Request.Context(), userID, bookingID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List own bookings
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "First row"
// @Param size query int false "Page size"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListForBooker(c *gin.Context) {
	h.list(c, h.q.ListForBooker)
}

// @Summary List bookings of own items
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "First row"
// @Param size query int false "Page size"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/owner [get]
func (h *BookingHandler) ListForOwner(c *gin.Context) {
	h.list(c, h.q.ListForOwner)
}

type bookingLister func(ctx context.Context, userID int64, state booking.State, page queries.Page) ([]*queries.BookingView, error)

func (h *BookingHandler) list(c *gin.Context, lister bookingLister) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	state, err := booking.ParseState(c.DefaultQuery("state", string(booking.StateAll)))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	page, ok := pageQuery(c)
	if !ok {
		return
	}

	views, err := lister(c.Request.Context(), userID, state, page)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

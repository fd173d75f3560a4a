package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
)

var errNoActor = errs.New("actor not resolved")

// actorID reads the id set by RequireActor; it aborts the request when absent.
func actorID(c *gin.Context) (int64, bool) {
	id, ok := middleware.GetActorID(c)
	if !ok {
		httperr.Abort(c, errs.Mark(errs.Validation("Missing "+middleware.SharerUserIDHeader+" header"), errNoActor))
		return 0, false
	}
	return id, true
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		httperr.Abort(c, errs.Validation("Invalid "+name))
		return 0, false
	}
	return id, true
}

func optionalIntQuery(c *gin.Context, name string) (*int, bool) {
	raw, present := c.GetQuery(name)
	if !present || raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		httperr.Abort(c, errs.Validation("Invalid parameter "+name))
		return nil, false
	}
	return &v, true
}

// pageQuery reads from/size. Both must be given for the listing to be paged.
func pageQuery(c *gin.Context) (queries.Page, bool) {
	from, ok := optionalIntQuery(c, "from")
	if !ok {
		return queries.Page{}, false
	}
	size, ok := optionalIntQuery(c, "size")
	if !ok {
		return queries.Page{}, false
	}
	page, err := queries.NewPage(from, size)
	if err != nil {
		httperr.Abort(c, err)
		return queries.Page{}, false
	}
	return page, true
}

package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shareit/internal/pkg/errs"
)

const internalMessage = "Internal server error"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort answers with the status of err's kind. Kinded errors carry their own
// message to the client; anything else becomes a generic 500.
func Abort(c *gin.Context, err error) {
	status := StatusOf(err)
	msg := internalMessage
	if status != http.StatusInternalServerError {
		msg = errs.Cause(err).Error()
	}
	AbortWithError(c, status, err, msg, nil)
}

func StatusOf(err error) int {
	switch {
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errs.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

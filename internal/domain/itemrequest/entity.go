package itemrequest

import (
	"strings"
	"time"

	"shareit/internal/pkg/errs"
)

var (
	ErrRequestNotFound  = errs.NotFound("Request not found")
	ErrBlankDescription = errs.Validation("Description must not be blank")
)

// ItemRequest is an open need posted by a user that owners answer by listing items.
type ItemRequest struct {
	id          int64
	description string
	requestorID int64
	created     time.Time
}

func NewItemRequest(requestorID int64, description string, now time.Time) (*ItemRequest, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrBlankDescription
	}
	return &ItemRequest{
		description: description,
		requestorID: requestorID,
		created:     now,
	}, nil
}

func (r *ItemRequest) WithID(id int64) *ItemRequest {
	cp := *r
	cp.id = id
	return &cp
}

func (r *ItemRequest) ID() int64           { return r.id }
func (r *ItemRequest) Description() string { return r.description }
func (r *ItemRequest) RequestorID() int64  { return r.requestorID }
func (r *ItemRequest) Created() time.Time  { return r.created }

package comment

import (
	"strings"
	"time"

	"shareit/internal/pkg/errs"
)

var (
	ErrBlankText           = errs.Validation("Comment text must not be blank")
	ErrNoCompletedBookings = errs.Validation("No completed bookings found")
)

type Comment struct {
	id       int64
	text     string
	itemID   int64
	authorID int64
	created  time.Time
}

// NewComment accepts a comment only from an author with at least one finished
// booking of the item.
func NewComment(authorID, itemID int64, text string, completedBookings int, now time.Time) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrBlankText
	}
	if completedBookings == 0 {
		return nil, ErrNoCompletedBookings
	}

	return &Comment{
		text:     text,
		itemID:   itemID,
		authorID: authorID,
		created:  now,
	}, nil
}

func (c *Comment) WithID(id int64) *Comment {
	cp := *c
	cp.id = id
	return &cp
}

func (c *Comment) ID() int64          { return c.id }
func (c *Comment) Text() string       { return c.text }
func (c *Comment) ItemID() int64      { return c.itemID }
func (c *Comment) AuthorID() int64    { return c.authorID }
func (c *Comment) Created() time.Time { return c.created }

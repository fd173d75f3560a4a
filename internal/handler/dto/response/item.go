package response

import (
	"time"

	"github.com/jinzhu/copier"

	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/usecase/queries"
)

type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

// FromItem copies through the entity's getters.
func FromItem(it *item.Item) (*ItemResponse, error) {
	res := &ItemResponse{}
	if err := copier.Copy(res, it); err != nil {
		return nil, err
	}
	return res, nil
}

func FromItemView(v *queries.ItemView) (*ItemResponse, error) {
	res := &ItemResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	return res, nil
}

func FromItemViews(views []*queries.ItemView) ([]*ItemResponse, error) {
	res := make([]*ItemResponse, len(views))
	for i, v := range views {
		r, err := FromItemView(v)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}

type CommentResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	ItemID     int64     `json:"itemId"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

func FromCommentView(v *queries.CommentView) (*CommentResponse, error) {
	res := &CommentResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	return res, nil
}

// FromComment is used when the author's name is already known to the caller.
func FromComment(c *comment.Comment, authorName string) *CommentResponse {
	return &CommentResponse{
		ID:         c.ID(),
		Text:       c.Text(),
		ItemID:     c.ItemID(),
		AuthorName: authorName,
		Created:    c.Created(),
	}
}

type ItemDetailResponse struct {
	ItemResponse
	LastBooking *BookingShortResponse `json:"lastBooking"`
	NextBooking *BookingShortResponse `json:"nextBooking"`
	Comments    []*CommentResponse    `json:"comments"`
}

func FromItemDetailView(v *queries.ItemDetailView) (*ItemDetailResponse, error) {
	base, err := FromItemView(&v.ItemView)
	if err != nil {
		return nil, err
	}

	comments := make([]*CommentResponse, len(v.Comments))
	for i, c := range v.Comments {
		if comments[i], err = FromCommentView(c); err != nil {
			return nil, err
		}
	}

	return &ItemDetailResponse{
		ItemResponse: *base,
		LastBooking:  fromBookingShort(v.LastBooking),
		NextBooking:  fromBookingShort(v.NextBooking),
		Comments:     comments,
	}, nil
}

func FromItemDetailViews(views []*queries.ItemDetailView) ([]*ItemDetailResponse, error) {
	res := make([]*ItemDetailResponse, len(views))
	for i, v := range views {
		r, err := FromItemDetailView(v)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}

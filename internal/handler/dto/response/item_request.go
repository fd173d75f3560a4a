package response

import (
	"time"

	"github.com/jinzhu/copier"

	"shareit/internal/domain/itemrequest"
	"shareit/internal/usecase/queries"
)

type ItemRequestResponse struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Created     time.Time       `json:"created"`
	Items       []*ItemResponse `json:"items" copier:"-"`
}

func FromItemRequest(r *itemrequest.ItemRequest) (*ItemRequestResponse, error) {
	res := &ItemRequestResponse{Items: []*ItemResponse{}}
	if err := copier.Copy(res, r); err != nil {
		return nil, err
	}
	return res, nil
}

func FromItemRequestView(v *queries.ItemRequestView) (*ItemRequestResponse, error) {
	res := &ItemRequestResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	items, err := FromItemViews(v.Items)
	if err != nil {
		return nil, err
	}
	res.Items = items
	return res, nil
}

func FromItemRequestViews(views []*queries.ItemRequestView) ([]*ItemRequestResponse, error) {
	res := make([]*ItemRequestResponse, len(views))
	for i, v := range views {
		r, err := FromItemRequestView(v)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}

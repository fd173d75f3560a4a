package queries

import (
	"context"

	"shareit/internal/domain/itemrequest"
	"shareit/internal/infra"
)

type ItemRequestReadStore interface {
	FindByID(ctx context.Context, id int64) (*ItemRequestView, error)
	ListByRequestor(ctx context.Context, requestorID int64, limit *int, offset int) ([]*ItemRequestView, error)
	ListExcludingRequestor(ctx context.Context, requestorID int64, limit *int, offset int) ([]*ItemRequestView, error)
}

type ItemRequestQueries interface {
	GetByID(ctx context.Context, actorID, requestID int64) (*ItemRequestView, error)
	ListOwn(ctx context.Context, actorID int64, page Page) ([]*ItemRequestView, error)
	ListOthers(ctx context.Context, actorID int64, page Page) ([]*ItemRequestView, error)
}

type itemRequestQueriesImpl struct {
	requests ItemRequestReadStore
	items    ItemReadStore
	users    UserReadStore
}

func NewItemRequestQueries(requests ItemRequestReadStore, items ItemReadStore, users UserReadStore) ItemRequestQueries {
	return &itemRequestQueriesImpl{
		requests: requests,
		items:    items,
		users:    users,
	}
}

func (q *itemRequestQueriesImpl) GetByID(ctx context.Context, actorID, requestID int64) (*ItemRequestView, error) {
	if err := requireUser(ctx, q.users, actorID); err != nil {
		return nil, err
	}
	req, err := q.requests.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, itemrequest.ErrRequestNotFound
		}
		return nil, err
	}
	if err := q.attachItems(ctx, []*ItemRequestView{req}); err != nil {
		return nil, err
	}
	return req, nil
}

func (q *itemRequestQueriesImpl) ListOwn(ctx context.Context, actorID int64, page Page) ([]*ItemRequestView, error) {
	if err := requireUser(ctx, q.users, actorID); err != nil {
		return nil, err
	}
	reqs, err := q.requests.ListByRequestor(ctx, actorID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	if err := q.attachItems(ctx, reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (q *itemRequestQueriesImpl) ListOthers(ctx context.Context, actorID int64, page Page) ([]*ItemRequestView, error) {
	if err := requireUser(ctx, q.users, actorID); err != nil {
		return nil, err
	}
	reqs, err := q.requests.ListExcludingRequestor(ctx, actorID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	if err := q.attachItems(ctx, reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

// attachItems fills every request with the items listed against it using a single lookup.
func (q *itemRequestQueriesImpl) attachItems(ctx context.Context, reqs []*ItemRequestView) error {
	if len(reqs) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(reqs))
	for _, r := range reqs {
		ids = append(ids, r.ID)
		r.Items = []*ItemView{}
	}

	items, err := q.items.ListByRequestIDs(ctx, ids)
	if err != nil {
		return err
	}
	byRequest := make(map[int64][]*ItemView, len(reqs))
	for _, it := range items {
		if it.RequestID != nil {
			byRequest[*it.RequestID] = append(byRequest[*it.RequestID], it)
		}
	}
	for _, r := range reqs {
		if its, ok := byRequest[r.ID]; ok {
			r.Items = its
		}
	}
	return nil
}

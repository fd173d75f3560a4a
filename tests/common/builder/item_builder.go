//go:build unit || e2e

package builder

import (
	"time"

	"shareit/internal/domain/item"
	reqdto "shareit/internal/handler/dto/request"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type ItemBuilder struct {
	ID          int64
	Name        string
	Description string
	Available   *bool
	OwnerID     int64
	RequestID   *int64
}

func NewItemBuilder() *ItemBuilder {
	available := true
	return &ItemBuilder{
		ID:          10,
		Name:        "Drill",
		Description: "Cordless drill with two batteries",
		Available:   &available,
		OwnerID:     1,
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

func (b *ItemBuilder) BuildDomain() (*item.Item, error) {
	return item.NewItem(b.OwnerID, b.Name, b.Description, b.Available, b.RequestID)
}

// BuildStored returns the item as it looks after being loaded from the store.
func (b *ItemBuilder) BuildStored() *item.Item {
	return item.ReconstructItem(b.ID, b.Name, b.Description, b.available(), b.OwnerID, b.RequestID)
}

func (b *ItemBuilder) BuildCreateDTO() reqdto.CreateItemRequest {
	return reqdto.CreateItemRequest{
		Name:        b.Name,
		Description: b.Description,
		Available:   b.Available,
		RequestID:   b.RequestID,
	}
}

func (b *ItemBuilder) BuildInfra() sqlc.Items {
	reqID := pgtype.Int8{}
	if b.RequestID != nil {
		reqID = pgtype.Int8{Int64: *b.RequestID, Valid: true}
	}
	return sqlc.Items{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Available:   b.available(),
		OwnerID:     b.OwnerID,
		RequestID:   reqID,
	}
}

func (b *ItemBuilder) BuildView() *queries.ItemView {
	return &queries.ItemView{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Available:   b.available(),
		OwnerID:     b.OwnerID,
		RequestID:   b.RequestID,
	}
}

func (b *ItemBuilder) BuildDetailView() *queries.ItemDetailView {
	return &queries.ItemDetailView{
		ItemView: *b.BuildView(),
		Comments: []*queries.CommentView{},
	}
}

func (b *ItemBuilder) BuildSnapshot() *shared.ItemSnapshot {
	return &shared.ItemSnapshot{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Available:   b.available(),
		OwnerID:     b.OwnerID,
		RequestID:   b.RequestID,
	}
}

func (b *ItemBuilder) WithID(id int64) *ItemBuilder {
	b.ID = id
	return b
}

func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.Name = name
	return b
}

func (b *ItemBuilder) WithDescription(desc string) *ItemBuilder {
	b.Description = desc
	return b
}

func (b *ItemBuilder) WithOwner(ownerID int64) *ItemBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *ItemBuilder) WithRequest(requestID int64) *ItemBuilder {
	b.RequestID = &requestID
	return b
}

func (b *ItemBuilder) Unavailable() *ItemBuilder {
	available := false
	b.Available = &available
	return b
}

func (b *ItemBuilder) WithoutAvailability() *ItemBuilder {
	b.Available = nil
	return b
}

func (b *ItemBuilder) available() bool {
	return b.Available != nil && *b.Available
}

type CommentBuilder struct {
	ID         int64
	Text       string
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Created    time.Time
}

func NewCommentBuilder() *CommentBuilder {
	return &CommentBuilder{
		ID:         100,
		Text:       "Worked great",
		ItemID:     10,
		AuthorID:   2,
		AuthorName: "Booker",
		Created:    time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *CommentBuilder) BuildView() *queries.CommentView {
	return &queries.CommentView{
		ID:         b.ID,
		Text:       b.Text,
		ItemID:     b.ItemID,
		AuthorID:   b.AuthorID,
		AuthorName: b.AuthorName,
		Created:    b.Created,
	}
}

func (b *CommentBuilder) BuildInfra() sqlc.CommentDetails {
	return sqlc.CommentDetails{
		ID:         b.ID,
		Text:       b.Text,
		ItemID:     b.ItemID,
		AuthorID:   b.AuthorID,
		AuthorName: b.AuthorName,
		Created:    pgtype.Timestamptz{Time: b.Created, Valid: true},
	}
}

func (b *CommentBuilder) WithItem(itemID int64) *CommentBuilder {
	b.ItemID = itemID
	return b
}

func (b *CommentBuilder) WithText(text string) *CommentBuilder {
	b.Text = text
	return b
}

package item

import (
	"strings"

	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/patch"
)

var (
	ErrItemNotFound       = errs.NotFound("Item not found")
	ErrNotOwner           = errs.Forbidden("Only the owner can edit this item")
	ErrBlankName          = errs.Validation("Name must not be blank")
	ErrBlankDescription   = errs.Validation("Description must not be blank")
	ErrAvailabilityNotSet = errs.Validation("Available must be set")
)

type Item struct {
	id          int64
	name        string
	description string
	available   bool
	ownerID     int64
	requestID   *int64
}

func NewItem(ownerID int64, name, description string, available *bool, requestID *int64) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBlankName
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrBlankDescription
	}
	if available == nil {
		return nil, ErrAvailabilityNotSet
	}

	return &Item{
		name:        name,
		description: description,
		available:   *available,
		ownerID:     ownerID,
		requestID:   requestID,
	}, nil
}

func ReconstructItem(id int64, name, description string, available bool, ownerID int64, requestID *int64) *Item {
	return &Item{
		id:          id,
		name:        name,
		description: description,
		available:   available,
		ownerID:     ownerID,
		requestID:   requestID,
	}
}

// Patch applies the non-nil fields on behalf of actorID, who must own the item.
func (i *Item) Patch(actorID int64, name, description *string, available *bool) error {
	if actorID != i.ownerID {
		return ErrNotOwner
	}
	if name != nil && strings.TrimSpace(*name) == "" {
		return ErrBlankName
	}
	if description != nil && strings.TrimSpace(*description) == "" {
		return ErrBlankDescription
	}

	i.name = strings.TrimSpace(patch.Coalesce(name, i.name))
	i.description = patch.Coalesce(description, i.description)
	i.available = patch.Coalesce(available, i.available)
	return nil
}

func (i *Item) WithID(id int64) *Item {
	cp := *i
	cp.id = id
	return &cp
}

func (i *Item) IsOwnedBy(userID int64) bool { return i.ownerID == userID }

func (i *Item) ID() int64           { return i.id }
func (i *Item) Name() string        { return i.name }
func (i *Item) Description() string { return i.description }
func (i *Item) Available() bool     { return i.available }
func (i *Item) OwnerID() int64      { return i.ownerID }
func (i *Item) RequestID() *int64   { return i.requestID }

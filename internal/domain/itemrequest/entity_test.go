//go:build unit

package itemrequest_test

import (
	"testing"
	"time"

	"shareit/internal/domain/itemrequest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItemRequest(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("基本成功ケース", func(t *testing.T) {
		r, err := itemrequest.NewItemRequest(3, "Need a tent", now)
		require.NoError(t, err)
		assert.Equal(t, int64(3), r.RequestorID())
		assert.Equal(t, "Need a tent", r.Description())
		assert.True(t, r.Created().Equal(now))
		assert.Equal(t, int64(4), r.WithID(4).ID())
	})

	t.Run("説明が空白のみNG", func(t *testing.T) {
		_, err := itemrequest.NewItemRequest(3, "  ", now)
		require.ErrorIs(t, err, itemrequest.ErrBlankDescription)
	})
}

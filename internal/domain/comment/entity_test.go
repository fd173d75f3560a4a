//go:build unit

package comment_test

import (
	"testing"
	"time"

	"shareit/internal/domain/comment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComment(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		text      string
		completed int
		errIs     error
	}{
		{name: "完了済み予約ありOK", text: "Great", completed: 1},
		{name: "複数の完了済み予約OK", text: "Great", completed: 3},
		{name: "完了済み予約なしNG", text: "Great", completed: 0, errIs: comment.ErrNoCompletedBookings},
		{name: "本文が空NG", text: "", completed: 1, errIs: comment.ErrBlankText},
		{name: "本文が空白のみNG", text: "   ", completed: 1, errIs: comment.ErrBlankText},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cm, err := comment.NewComment(2, 10, c.text, c.completed, now)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				require.Nil(t, cm)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(2), cm.AuthorID())
			assert.Equal(t, int64(10), cm.ItemID())
			assert.Equal(t, c.text, cm.Text())
			assert.True(t, cm.Created().Equal(now))
		})
	}

	t.Run("WithIDは元の値を変更しない", func(t *testing.T) {
		cm, err := comment.NewComment(2, 10, "ok", 1, now)
		require.NoError(t, err)
		stored := cm.WithID(9)
		assert.Equal(t, int64(9), stored.ID())
		assert.Zero(t, cm.ID())
	})
}

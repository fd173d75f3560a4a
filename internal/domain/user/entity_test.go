//go:build unit

package user_test

import (
	"strings"
	"testing"

	"shareit/internal/domain/user"
	"shareit/internal/pkg/ptr"
	"shareit/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Zero(t, actual.ID())
		assert.Equal(t, "Test User", actual.Name())
		assert.Equal(t, "test@example.com", actual.Email().Value())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "前後の空白は除去してOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("  spaced@example.com ") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "無効な形式NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "@なしNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "TLDなしNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("user@localhost") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "表示名付きNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("Bob <bob@example.com>") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "長すぎるNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail(strings.Repeat("a", 510) + "@example.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("名前検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "通常の名前OK",
				mutate: func(b *builder.UserBuilder) { b.WithName("Alice") },
			},
			{
				name:   "空の名前NG",
				mutate: func(b *builder.UserBuilder) { b.WithName("") },
				errIs:  user.ErrBlankName,
			},
			{
				name:   "空白のみの名前NG",
				mutate: func(b *builder.UserBuilder) { b.WithName("   ") },
				errIs:  user.ErrBlankName,
			},
		})
	})
}

func TestUserPatch(t *testing.T) {
	email, err := user.NewEmail("old@example.com")
	require.NoError(t, err)
	stored := func() *user.User { return user.ReconstructUser(7, "Old", email) }

	t.Run("名前のみ更新", func(t *testing.T) {
		u := stored()
		changed, err := u.Patch(ptr.Of("New"), nil)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, "New", u.Name())
		assert.Equal(t, "old@example.com", u.Email().Value())
	})

	t.Run("メールアドレス更新は変更ありを返す", func(t *testing.T) {
		u := stored()
		changed, err := u.Patch(nil, ptr.Of("new@example.com"))
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "new@example.com", u.Email().Value())
	})

	t.Run("同じメールアドレスは変更なし", func(t *testing.T) {
		u := stored()
		changed, err := u.Patch(nil, ptr.Of("old@example.com"))
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("nilのみなら何も変わらない", func(t *testing.T) {
		u := stored()
		before := *u
		changed, err := u.Patch(nil, nil)
		require.NoError(t, err)
		assert.False(t, changed)
		if diff := cmp.Diff(before.Name(), u.Name()); diff != "" {
			t.Errorf("name mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("空白の名前NG", func(t *testing.T) {
		_, err := stored().Patch(ptr.Of(" "), nil)
		require.ErrorIs(t, err, user.ErrBlankName)
	})

	t.Run("不正なメールアドレスNG", func(t *testing.T) {
		_, err := stored().Patch(nil, ptr.Of("broken"))
		require.ErrorIs(t, err, user.ErrInvalidEmail)
	})
}

func TestPassword(t *testing.T) {
	_, err := user.NewPassword("1234567")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)

	pw, err := user.NewPassword("12345678")
	require.NoError(t, err)
	assert.Equal(t, "12345678", pw.Value())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()
			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/readafter/internal/dict"
)

func TestStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, found, err := s.Get(ctx, dict.Number)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Put(ctx, dict.Number, []string{"一", "二"}))
	words, found, err := s.Get(ctx, dict.Number)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"一", "二"}, words)

	words[0] = "changed"
	again, _, _ := s.Get(ctx, dict.Number)
	assert.Equal(t, "一", again[0], "callers must not alias stored slices")

	require.NoError(t, s.Delete(ctx, dict.Number))
	_, found, _ = s.Get(ctx, dict.Number)
	assert.False(t, found)
}

func TestStore_EmptyOverrideIsFound(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.Put(ctx, dict.Proper, nil))
	words, found, err := s.Get(ctx, dict.Proper)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, words)
}

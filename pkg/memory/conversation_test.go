package memory

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationMerge(t *testing.T) {
	ctx := context.Background()

	t.Run("related follow-up merges into the active record", func(t *testing.T) {
		store := newTestStore(t, newFakeBlob(), 0)

		first := store.Save(ctx, "I am a vegetarian and I work as a teacher", nil)
		require.NotNil(t, first)

		second := store.Save(ctx, "My favorite food is pasta", nil)
		require.NotNil(t, second)

		// Same conversation, same topic bucket: one record, both sentences.
		assert.Equal(t, 1, store.Len(ctx))
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "I am a vegetarian and I work as a teacher\n\nMy favorite food is pasta", second.Content)
		assert.GreaterOrEqual(t, second.Timestamp, first.Timestamp)
		assert.NotZero(t, second.LastUpdated)
		assert.NotEmpty(t, second.Category)
	})

	t.Run("different conversation stays separate", func(t *testing.T) {
		store := newTestStore(t, newFakeBlob(), 0)
		require.NotNil(t, store.Save(ctx, "I am a vegetarian and I work as a teacher", nil))

		rec := store.Save(ctx, "My favorite food is pasta", map[string]any{
			"conversationId": "other-conversation",
		})
		require.NotNil(t, rec)
		assert.Equal(t, 2, store.Len(ctx))
	})

	t.Run("different source stays separate", func(t *testing.T) {
		store := newTestStore(t, newFakeBlob(), 0)
		require.NotNil(t, store.Save(ctx, "I am a vegetarian and I work as a teacher", nil))

		rec := store.Save(ctx, "My favorite food is pasta", map[string]any{
			"source": "other.example.com",
		})
		require.NotNil(t, rec)
		assert.Equal(t, 2, store.Len(ctx))
	})

	t.Run("stale record is outside the window", func(t *testing.T) {
		store := newTestStore(t, newFakeBlob(), 0)
		first := store.Save(ctx, "I am a vegetarian and I work as a teacher", nil)
		require.NotNil(t, first)

		// Age the record past the two-hour window.
		store.mu.Lock()
		store.records[0].Timestamp -= int64(conversationWindow.Milliseconds()) + 1
		store.mu.Unlock()

		rec := store.Save(ctx, "My favorite food is pasta", nil)
		require.NotNil(t, rec)
		assert.Equal(t, 2, store.Len(ctx))
	})

	t.Run("merged record keeps growing", func(t *testing.T) {
		store := newTestStore(t, newFakeBlob(), 0)
		require.NotNil(t, store.Save(ctx, "I am a vegetarian and I work as a teacher", nil))
		require.NotNil(t, store.Save(ctx, "My favorite food is pasta", nil))
		third := store.Save(ctx, "My favorite pasta dish is carbonara with mushrooms", nil)
		require.NotNil(t, third)

		assert.Equal(t, 1, store.Len(ctx))
		assert.Equal(t, 3, len(strings.Split(third.Content, "\n\n")))
	})
}

func TestShouldGroupInSameConversation(t *testing.T) {
	t.Run("same category groups regardless of wording", func(t *testing.T) {
		assert.True(t, shouldGroupInSameConversation(
			"my wife went hiking yesterday",
			"the kids enjoy cooking",
		))
	})

	t.Run("no keywords on one side groups by default", func(t *testing.T) {
		assert.True(t, shouldGroupInSameConversation("My favorite food is pasta", "the and for"))
	})

	t.Run("shared keyword groups across categories", func(t *testing.T) {
		assert.True(t, shouldGroupInSameConversation(
			"my wife loves the kubernetes dashboard",
			"debugging the kubernetes deployment pipeline today",
		))
	})

	t.Run("disjoint topics do not group", func(t *testing.T) {
		assert.False(t, shouldGroupInSameConversation(
			"my wife and my kids went hiking yesterday",
			"asdf qwerty zxcv uiop",
		))
	})
}

package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"briefly-backend/internal/models"
)

func TestConversationStore_AppendAndSnapshot(t *testing.T) {
	store := NewConversationStore()

	store.Append(models.ChatMessage{Role: "user", Content: "hello"})
	store.Append(models.ChatMessage{Role: "assistant", Content: "hi there"})
	store.Append(models.ChatMessage{Role: "user", Content: "how are you?"})

	turns, counts := store.Snapshot()

	require.Len(t, turns, 3)
	assert.Equal(t, "hello", turns[0].Content)
	assert.Equal(t, "hi there", turns[1].Content)
	assert.Equal(t, "how are you?", turns[2].Content)

	assert.Equal(t, 3, counts.Total)
	assert.Equal(t, 2, counts.User)
	assert.Equal(t, 1, counts.Assistant)
	assert.Equal(t, counts.Total, counts.User+counts.Assistant)
}

func TestConversationStore_SnapshotIsACopy(t *testing.T) {
	store := NewConversationStore()
	store.Append(models.ChatMessage{Role: "user", Content: "original"})

	turns, _ := store.Snapshot()
	turns[0].Content = "mutated"

	fresh, _ := store.Snapshot()
	assert.Equal(t, "original", fresh[0].Content)
}

func TestConversationStore_Clear(t *testing.T) {
	store := NewConversationStore()
	store.Append(models.ChatMessage{Role: "user", Content: "hello"})
	store.Append(models.ChatMessage{Role: "assistant", Content: "hi"})

	store.Clear()

	turns, counts := store.Snapshot()
	assert.Empty(t, turns)
	assert.Equal(t, 0, counts.Total)
	assert.Equal(t, 0, counts.User)
	assert.Equal(t, 0, counts.Assistant)
	assert.Equal(t, 0, store.Len())
}

func TestConversationStore_ConcurrentAppends(t *testing.T) {
	store := NewConversationStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Append(models.ChatMessage{Role: "user", Content: "msg"})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, store.Len())
}

package conversation

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func turn(role, content string) ChatTurn {
	return ChatTurn{Role: role, Content: content, Timestamp: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
}

func testHistoryStore(t *testing.T, store HistoryStore) {
	ctx := context.Background()

	// Unknown session is empty, not an error.
	turns, err := store.Tail(ctx, "nobody", 5)
	require.NoError(t, err)
	assert.Empty(t, turns)

	require.NoError(t, store.Append(ctx, "s1",
		turn(ChatRoleUser, "first question"),
		turn(ChatRoleAssistant, "first answer"),
	))
	require.NoError(t, store.Append(ctx, "s1",
		turn(ChatRoleUser, "second question"),
		turn(ChatRoleAssistant, "second answer"),
	))
	require.NoError(t, store.Append(ctx, "s2", turn(ChatRoleUser, "other session")))

	// Tail returns the most recent n in chronological order.
	turns, err = store.Tail(ctx, "s1", 2)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, "second question", turns[0].Content)
	assert.Equal(t, "second answer", turns[1].Content)

	// Fewer stored turns than requested returns all of them.
	turns, err = store.Tail(ctx, "s1", 50)
	require.NoError(t, err)
	assert.Len(t, turns, 4)
	assert.Equal(t, "first question", turns[0].Content)

	// n <= 0 returns the full transcript.
	turns, err = store.Tail(ctx, "s1", 0)
	require.NoError(t, err)
	assert.Len(t, turns, 4)

	// Sessions are isolated.
	turns, err = store.Tail(ctx, "s2", 10)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "other session", turns[0].Content)

	// Clear wipes one session only.
	require.NoError(t, store.Clear(ctx, "s1"))
	turns, err = store.Tail(ctx, "s1", 5)
	require.NoError(t, err)
	assert.Empty(t, turns)

	turns, err = store.Tail(ctx, "s2", 5)
	require.NoError(t, err)
	assert.Len(t, turns, 1)
}

func TestMemoryHistoryStore(t *testing.T) {
	testHistoryStore(t, NewMemoryHistoryStore())
}

func TestRedisHistoryStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	testHistoryStore(t, NewRedisHistoryStore(client, time.Hour, nil))
}

func TestRedisHistoryStore_TTLRefreshOnAppend(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisHistoryStore(client, time.Hour, nil)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "s1", turn(ChatRoleUser, "hello")))
	assert.Equal(t, time.Hour, mr.TTL("session:s1"))

	mr.FastForward(30 * time.Minute)
	require.NoError(t, store.Append(ctx, "s1", turn(ChatRoleAssistant, "hi there")))
	assert.Equal(t, time.Hour, mr.TTL("session:s1"))

	// Expired sessions read back empty.
	mr.FastForward(2 * time.Hour)
	turns, err := store.Tail(ctx, "s1", 10)
	require.NoError(t, err)
	assert.Empty(t, turns)
}

func TestChatTurn_PreservesIntent(t *testing.T) {
	store := NewMemoryHistoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "s1", ChatTurn{
		Role:      ChatRoleAssistant,
		Content:   "Checked baggage allowance is 23kg.",
		Intent:    IntentCheckBaggageAllowance,
		Timestamp: time.Now().UTC(),
	}))

	turns, err := store.Tail(ctx, "s1", 1)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, IntentCheckBaggageAllowance, turns[0].Intent)
}

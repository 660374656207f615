package livequery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttakeda/daybook/internal/domain"
)

func staticList(todos []*domain.Todo) ListFunc {
	return func(ctx context.Context) ([]*domain.Todo, error) {
		return todos, nil
	}
}

func recvSnapshot(t *testing.T, sub *Subscription) []*domain.Todo {
	t.Helper()
	select {
	case snap := <-sub.Ch():
		return snap
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for snapshot")
		return nil
	}
}

func TestFeed_DeliversFullSnapshot(t *testing.T) {
	todos := []*domain.Todo{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}
	feed := NewFeed(staticList(todos))

	sub := feed.Subscribe()
	defer feed.Unsubscribe(sub)

	require.NoError(t, feed.TodosChanged(context.Background()))
	snap := recvSnapshot(t, sub)
	assert.Len(t, snap, 2)
}

func TestFeed_AllSubscribersNotified(t *testing.T) {
	feed := NewFeed(staticList([]*domain.Todo{{ID: 1}}))

	first := feed.Subscribe()
	second := feed.Subscribe()
	defer feed.Unsubscribe(first)
	defer feed.Unsubscribe(second)

	require.NoError(t, feed.TodosChanged(context.Background()))
	assert.Len(t, recvSnapshot(t, first), 1)
	assert.Len(t, recvSnapshot(t, second), 1)
}

func TestFeed_SlowConsumerSkipsSnapshots(t *testing.T) {
	feed := NewFeed(staticList(nil))
	sub := feed.Subscribe()
	defer feed.Unsubscribe(sub)

	// Overflow the buffer; the feed must never block.
	for i := 0; i < defaultBufferSize*2; i++ {
		require.NoError(t, feed.TodosChanged(context.Background()))
	}
}

func TestFeed_UnsubscribeClosesChannel(t *testing.T) {
	feed := NewFeed(staticList(nil))
	sub := feed.Subscribe()
	feed.Unsubscribe(sub)

	_, open := <-sub.Ch()
	assert.False(t, open)

	// Double unsubscribe is harmless.
	feed.Unsubscribe(sub)
}

func TestFeed_QueryErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	feed := NewFeed(func(ctx context.Context) ([]*domain.Todo, error) {
		return nil, boom
	})

	err := feed.TodosChanged(context.Background())
	assert.ErrorIs(t, err, boom)
}

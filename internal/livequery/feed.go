// Package livequery implements the store's observe contract: a single-writer
// store broadcasting full-snapshot change events to registered listeners.
package livequery

import (
	"context"
	"fmt"
	"sync"

	"github.com/ttakeda/daybook/internal/domain"
)

// Snapshots are re-read in full after every write; a personal todo list is
// small enough that incremental diffing would be wasted complexity.
const defaultBufferSize = 8

// ListFunc runs the underlying query and returns the current result set.
type ListFunc func(ctx context.Context) ([]*domain.Todo, error)

// Subscription is an active listener on the feed.
type Subscription struct {
	id int
	ch chan []*domain.Todo
}

// Ch returns the channel new snapshots are delivered on.
func (s *Subscription) Ch() <-chan []*domain.Todo {
	return s.ch
}

// Feed re-runs a list query after each write and fans the fresh snapshot out
// to all subscribers.
type Feed struct {
	mu     sync.RWMutex
	list   ListFunc
	subs   map[int]*Subscription
	nextID int
}

// NewFeed creates a Feed over the given list query.
func NewFeed(list ListFunc) *Feed {
	return &Feed{
		list: list,
		subs: make(map[int]*Subscription),
	}
}

// Subscribe registers a listener. The returned channel is buffered; delivery
// is non-blocking, so a slow consumer skips intermediate snapshots and picks
// up a newer one on the next write.
func (f *Feed) Subscribe() *Subscription {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	sub := &Subscription{
		id: f.nextID,
		ch: make(chan []*domain.Todo, defaultBufferSize),
	}
	f.subs[sub.id] = sub
	return sub
}

// Unsubscribe removes a subscription and closes its channel.
func (f *Feed) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.subs[sub.id]; ok {
		delete(f.subs, sub.id)
		close(sub.ch)
	}
}

// TodosChanged re-runs the query and broadcasts the current result set.
// Called by the write path after every successful create, update, or delete.
func (f *Feed) TodosChanged(ctx context.Context) error {
	snapshot, err := f.list(ctx)
	if err != nil {
		return fmt.Errorf("refreshing live query: %w", err)
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, sub := range f.subs {
		select {
		case sub.ch <- snapshot:
		default:
			// Buffer full: drop. The subscriber gets the next snapshot.
		}
	}
	return nil
}

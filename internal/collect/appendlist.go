// Package collect provides an append-only list that many goroutines can
// write to at once.
package collect

import (
	"iter"
	"sync"
)

// AppendList is a growable ordered sequence that supports concurrent Append
// and AppendAll calls without external locking. Items are never removed.
//
// Reads observe every append that returned before the read started. The order
// of items appended by different goroutines is unspecified.
//
// The zero value is an empty list ready to use.
type AppendList[T any] struct {
	mu    sync.RWMutex
	items []T
}

// NewAppendList creates a list, optionally seeded with items.
func NewAppendList[T any](items ...T) *AppendList[T] {
	l := &AppendList[T]{}
	if len(items) > 0 {
		l.items = append(make([]T, 0, len(items)), items...)
	}
	return l
}

// Append adds item to the list.
func (l *AppendList[T]) Append(item T) {
	l.mu.Lock()
	l.items = append(l.items, item)
	l.mu.Unlock()
}

// AppendAll adds every item to the list. The batch is written under a single
// lock, so it is never interleaved with other writers.
func (l *AppendList[T]) AppendAll(items ...T) {
	if len(items) == 0 {
		return
	}
	l.mu.Lock()
	l.items = append(l.items, items...)
	l.mu.Unlock()
}

// Merge appends a snapshot of other. Merging a list into itself doubles it.
func (l *AppendList[T]) Merge(other *AppendList[T]) {
	if other == nil {
		return
	}
	l.AppendAll(other.Items()...)
}

// Len returns the number of items.
func (l *AppendList[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// At returns the item at index i. It panics if i is out of range, like a
// slice index.
func (l *AppendList[T]) At(i int) T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.items[i]
}

// Items returns a copy of the current contents.
func (l *AppendList[T]) Items() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// All iterates over a snapshot taken when iteration starts. Appends made
// while iterating are not observed.
func (l *AppendList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range l.Items() {
			if !yield(i, item) {
				return
			}
		}
	}
}

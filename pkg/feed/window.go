// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package feed

import "sync"

const DefaultMaxDataPoints = 60

// Window is a bounded FIFO of the most recent values.
type Window[T any] struct {
	mu       sync.RWMutex
	items    []T
	capacity int
	onPush   func([]T)
}

func NewWindow[T any](capacity int) *Window[T] {
	if capacity <= 0 {
		capacity = DefaultMaxDataPoints
	}
	return &Window[T]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}
}

// Push appends v and drops the oldest values beyond capacity.
func (w *Window[T]) Push(v T) {
	w.mu.Lock()
	w.items = append(w.items, v)
	if over := len(w.items) - w.capacity; over > 0 {
		n := copy(w.items, w.items[over:])
		var zero T
		for i := n; i < len(w.items); i++ {
			w.items[i] = zero
		}
		w.items = w.items[:n]
	}
	cb := w.onPush
	var snapshot []T
	if cb != nil {
		snapshot = w.copyLocked()
	}
	w.mu.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Current returns the values oldest first.
func (w *Window[T]) Current() []T {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.copyLocked()
}

func (w *Window[T]) copyLocked() []T {
	out := make([]T, len(w.items))
	copy(out, w.items)
	return out
}

func (w *Window[T]) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.items)
}

func (w *Window[T]) Cap() int {
	return w.capacity
}

func (w *Window[T]) Last() (T, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if len(w.items) == 0 {
		var zero T
		return zero, false
	}
	return w.items[len(w.items)-1], true
}

// OnPush registers fn to receive a snapshot after every push. fn runs outside the lock.
func (w *Window[T]) OnPush(fn func([]T)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onPush = fn
}

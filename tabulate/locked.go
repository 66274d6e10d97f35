// SPDX-License-Identifier: MIT

package tabulate

import "sync"

// Locked serializes pulls on a shared Tabulator. Each pull (table fold
// plus input increment) runs under one mutex, so concurrent callers
// receive distinct consecutive grid points and never a torn pair.
// Build it with NewLocked; the zero Locked has no tabulator.
type Locked[T any] struct {
	mu  sync.Mutex
	tab *Tabulator[T]
}

// NewLocked wraps tab, which must come from New, NewRing or NewWith;
// a nil or zero Tabulator panics on the first pull. The caller must stop
// using tab directly.
func NewLocked[T any](tab *Tabulator[T]) *Locked[T] {
	return &Locked[T]{tab: tab}
}

// Next pulls the next pair under the lock.
func (l *Locked[T]) Next() (x, y T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.tab.Next()
}

// Take pulls n consecutive pairs as one critical section.
func (l *Locked[T]) Take(n int) []Point[T] {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.tab.Take(n)
}

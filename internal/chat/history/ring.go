// Package history accumulates a bounded number of recent chat lines.
package history

import (
	"fmt"
	"sync"
)

// Ring - fixed-capacity buffer of most recent lines. When full, every
// push overwrites the oldest line. Safe for concurrent use.
type Ring struct {
	mu   sync.RWMutex
	data []string
	next int
	full bool
}

// NewRing - builds history ring of the given capacity.
func NewRing(max int) (*Ring, error) {
	if max <= 0 {
		return nil, fmt.Errorf("history.NewRing: max (%d) must be greater than 0", max)
	}
	return &Ring{data: make([]string, max)}, nil
}

// Len - number of currently kept lines.
func (r *Ring) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.len()
}

func (r *Ring) len() int {
	if r.full {
		return len(r.data)
	}
	return r.next
}

// Push - adds a line, dropping the oldest one when the ring is full.
func (r *Ring) Push(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[r.next] = line
	r.next++
	if r.next == len(r.data) {
		r.next = 0
		r.full = true
	}
}

// Tail - copies out the last n lines in chronological order, oldest
// first. Negative n is treated as absolute value.
func (r *Ring) Tail(n int) []string {
	if n < 0 {
		n = -n
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	l := r.len()
	if n > l {
		n = l
	}
	tail := make([]string, 0, n)
	for i := l - n; i < l; i++ {
		idx := i
		if r.full {
			idx = (r.next + i) % len(r.data)
		}
		tail = append(tail, r.data[idx])
	}
	return tail
}

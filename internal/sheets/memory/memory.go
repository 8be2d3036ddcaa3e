// Package memory is an in-memory sheets.Mirror for tests and local runs
// without Google credentials.
package memory

import (
	"context"
	"sync"

	"fintrack/internal/sheets"
)

type Mirror struct {
	mu      sync.Mutex
	entries []sheets.Entry
}

func New() *Mirror {
	return &Mirror{}
}

func (m *Mirror) Append(_ context.Context, e sheets.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
	return nil
}

// Entries returns a copy of everything appended so far.
func (m *Mirror) Entries() []sheets.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]sheets.Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

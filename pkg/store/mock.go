// Package store holds the in-memory mock datastore used for local development.
// Every call sleeps for the configured delay before touching the data, so the
// dashboard behaves like it is talking to a remote backend.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"farmdash/pkg/apperr"
)

// Record is implemented by pointers to the entity types.
type Record interface {
	GetID() int
	SetID(id int)
}

type Mock[T any, PT interface {
	*T
	Record
}] struct {
	name  string
	delay time.Duration

	mu    sync.RWMutex
	items []T
}

func NewMock[T any, PT interface {
	*T
	Record
}](name string, seed []T, delay time.Duration) *Mock[T, PT] {
	items := make([]T, len(seed))
	copy(items, seed)
	return &Mock[T, PT]{name: name, delay: delay, items: items}
}

func (m *Mock[T, PT]) wait(ctx context.Context) error {
	if m.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(m.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (m *Mock[T, PT]) notFound(id int) error {
	return apperr.NotFound(fmt.Sprintf("%s %d not found", m.name, id))
}

// All returns a copy of every record in insertion order.
func (m *Mock[T, PT]) All(ctx context.Context) ([]T, error) {
	return m.Filter(ctx, nil)
}

// Filter returns copies of the records matching keep; nil keeps everything.
func (m *Mock[T, PT]) Filter(ctx context.Context, keep func(*T) bool) ([]T, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]T, 0, len(m.items))
	for i := range m.items {
		if keep == nil || keep(&m.items[i]) {
			out = append(out, m.items[i])
		}
	}
	return out, nil
}

func (m *Mock[T, PT]) Get(ctx context.Context, id int) (*T, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	i := m.indexOf(id)
	if i < 0 {
		return nil, m.notFound(id)
	}
	v := m.items[i]
	return &v, nil
}

// Create stores item under the next id (max existing + 1) and returns the
// stored copy.
func (m *Mock[T, PT]) Create(ctx context.Context, item T) (*T, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	next := 0
	for i := range m.items {
		if id := PT(&m.items[i]).GetID(); id > next {
			next = id
		}
	}
	PT(&item).SetID(next + 1)
	m.items = append(m.items, item)
	return &item, nil
}

// Update applies patch to the stored record and returns the result. The id is
// restored after patching so a patch can never move a record.
func (m *Mock[T, PT]) Update(ctx context.Context, id int, patch func(*T)) (*T, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(id)
	if i < 0 {
		return nil, m.notFound(id)
	}
	cur := m.items[i]
	patch(&cur)
	PT(&cur).SetID(id)
	m.items[i] = cur
	return &cur, nil
}

// Delete removes the record and returns it.
func (m *Mock[T, PT]) Delete(ctx context.Context, id int) (*T, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(id)
	if i < 0 {
		return nil, m.notFound(id)
	}
	removed := m.items[i]
	m.items = append(m.items[:i], m.items[i+1:]...)
	return &removed, nil
}

func (m *Mock[T, PT]) indexOf(id int) int {
	for i := range m.items {
		if PT(&m.items[i]).GetID() == id {
			return i
		}
	}
	return -1
}

// LoadJSON decodes a seed file holding a JSON array of records.
func LoadJSON[T any](fsys fs.FS, name string) ([]T, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", name, err)
	}
	var out []T
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode seed %s: %w", name, err)
	}
	return out, nil
}

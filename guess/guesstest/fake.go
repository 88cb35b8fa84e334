// Package guesstest provides an in-memory guess.Store and the behavioral contract every
// guess.Store must satisfy.
package guesstest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sghaida/bddkit/guess"
)

// Fake is an in-memory guess.Store.
//
// The zero value is ready to use, and it is safe for concurrent use. Ids start at 1 and are never reused, matching the
// SQLite implementation.
type Fake struct {
	mu     sync.RWMutex
	lastID int64
	rows   map[int64]guess.Guess

	// Now stamps CreatedAt; nil means time.Now.
	Now func() time.Time
}

var _ guess.Store = (*Fake)(nil)

// NewFake returns an empty fake store.
func NewFake() *Fake {
	return &Fake{rows: make(map[int64]guess.Guess)}
}

// Create implements guess.Store.
func (f *Fake) Create(ctx context.Context, g guess.Guess) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = f.now()
	}
	if err := guess.CheckTime(g.CreatedAt); err != nil {
		return 0, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.rows == nil {
		f.rows = make(map[int64]guess.Guess)
	}
	f.lastID++
	g.ID = f.lastID
	f.rows[g.ID] = g
	return g.ID, nil
}

// Read implements guess.Store.
func (f *Fake) Read(ctx context.Context, id int64) (guess.Guess, error) {
	if err := ctx.Err(); err != nil {
		return guess.Guess{}, err
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	g, ok := f.rows[id]
	if !ok {
		return guess.Guess{}, guess.ErrNotFound
	}
	return g, nil
}

// Update implements guess.Store.
func (f *Fake) Update(ctx context.Context, id int64, g guess.Guess) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	cur, ok := f.rows[id]
	if !ok {
		return guess.ErrNotFound
	}
	cur.Session = g.Session
	cur.N = g.N
	cur.Verdict = g.Verdict
	f.rows[id] = cur
	return nil
}

// Delete implements guess.Store.
func (f *Fake) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.rows[id]; !ok {
		return guess.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

// List implements guess.Store.
func (f *Fake) List(ctx context.Context) ([]guess.Guess, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]guess.Guess, 0, len(f.rows))
	for _, g := range f.rows {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Len returns the number of stored guesses.
func (f *Fake) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.rows)
}

func (f *Fake) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

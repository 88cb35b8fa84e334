// Package guess stores the guesses made against life.Service.
//
// Store is the capability; SQLiteStore is the production implementation and
// guesstest.Fake the in-memory one. Both pass the same contract suite
// (guesstest.RunStoreContract).
package guess

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when an id does not name a stored guess.
var ErrNotFound = errors.New("guess: not found")

// ErrTimeRange is returned by Create when CreatedAt is outside years 0 to 9999.
var ErrTimeRange = errors.New("guess: created_at out of range")

// CheckTime reports ErrTimeRange for instants a Store cannot keep exactly.
func CheckTime(t time.Time) error {
	if y := t.Year(); y < 0 || y > 9999 {
		return ErrTimeRange
	}
	return nil
}

// Guess is one recorded attempt.
type Guess struct {
	ID        int64     `json:"id"`
	Session   string    `json:"session"`
	N         int       `json:"n"`
	Verdict   string    `json:"verdict"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is create/read/update/delete over guesses keyed by an incrementing id.
//
// Create ignores g.ID, stamps a zero CreatedAt with the current time and returns the
// assigned id. A CreatedAt outside years 0 to 9999 is rejected with ErrTimeRange;
// anything inside reads back as the same instant with the same UTC offset. Ids are never reused. Update replaces Session, N and Verdict; ID and
// CreatedAt never change after Create.
// Read, Update and Delete of an unknown id return ErrNotFound; Update of an unknown
// id changes nothing.
type Store interface {
	Create(ctx context.Context, g Guess) (int64, error)
	Read(ctx context.Context, id int64) (Guess, error)
	Update(ctx context.Context, id int64, g Guess) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Guess, error)
}

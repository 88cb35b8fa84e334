package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sghaida/bddkit/guess"
	"github.com/sghaida/bddkit/life"
)

// Game plays guesses against life.Service and records them.
//
// Game has no dependency fields. Each method asks for exactly the capability it uses,
// so tests of Ask never need a store and tests of Record never need a checker.
type Game struct {
	// Now stamps recorded guesses; nil means time.Now.
	Now func() time.Time
}

// Ask returns the verdict for n.
func (g Game) Ask(checker life.Service, n int) string {
	return life.Run(checker, n)
}

// Record stores one guess and returns its id.
func (g Game) Record(ctx context.Context, store guess.Store, session string, n int, verdict string) (int64, error) {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	id, err := store.Create(ctx, guess.Guess{
		Session:   session,
		N:         n,
		Verdict:   verdict,
		CreatedAt: now(),
	})
	if err != nil {
		return 0, fmt.Errorf("app: record guess %d: %w", n, err)
	}
	return id, nil
}

// PlayWithDeps asks about n and records the answer.
//
// It receives the whole container but passes each Game method only the accessor it
// needs.
func PlayWithDeps(ctx context.Context, g Game, deps Deps, session string, n int) (guess.Guess, error) {
	log := deps.Logger().With(zap.String("session", session), zap.Int("n", n))

	verdict := AskWithLife(g, deps.Life(), n)
	log.Debug("guess checked", zap.String("verdict", verdict))

	store := deps.Guesses()
	id, err := g.Record(ctx, store, session, n, verdict)
	if err != nil {
		log.Error("recording guess failed", zap.Error(err))
		return guess.Guess{}, err
	}

	out, err := store.Read(ctx, id)
	if err != nil {
		return guess.Guess{}, fmt.Errorf("app: read guess %d: %w", id, err)
	}
	log.Info("guess recorded", zap.Int64("id", id), zap.String("verdict", verdict))
	return out, nil
}

// AskWithLife is the end of a call chain: it only has the checker and cannot get back
// to the container, so it should not call anything that needs more.
func AskWithLife(g Game, checker life.Service, n int) string {
	return g.Ask(checker, n)
}

package guesstest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sghaida/bddkit/guess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// NewStoreFunc returns an empty store. It may register cleanup on t.
type NewStoreFunc func(t *testing.T) guess.Store

// RunStoreContract runs the behavior every guess.Store must share.
//
// Call it from the tests of each implementation so the fake and the production store
// cannot drift apart.
func RunStoreContract(t *testing.T, newStore NewStoreFunc) {
	t.Helper()

	ctx := context.Background()
	stamp := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("created guess reads back unchanged", func(t *testing.T) {
		// Given an empty store
		s := newStore(t)

		// When a guess is created
		in := guess.Guess{Session: "s1", N: 42, Verdict: "yay!", CreatedAt: stamp}
		id, err := s.Create(ctx, in)
		require.NoError(t, err)

		// Then reading its id returns the same guess with that id
		got, err := s.Read(ctx, id)
		require.NoError(t, err)

		want := in
		want.ID = id
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("Read mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("created at keeps its instant and offset", func(t *testing.T) {
		cases := []struct {
			name string
			at   time.Time
		}{
			{name: "far future", at: time.Date(2300, 1, 1, 0, 0, 0, 0, time.UTC)},
			{name: "far past", at: time.Date(1600, 7, 4, 9, 30, 0, 0, time.UTC)},
			{name: "year zero", at: time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC)},
			{name: "last representable", at: time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC)},
			{name: "half hour offset", at: time.Date(2024, 2, 29, 18, 45, 1, 123456789, time.FixedZone("IST", 5*3600+1800))},
			{name: "seconds offset", at: time.Date(1850, 3, 1, 12, 0, 0, 0, time.FixedZone("LMT", -(17*60+30)))},
		}

		for _, tc := range cases {
			tc := tc
			t.Run(tc.name, func(t *testing.T) {
				// Given an empty store
				s := newStore(t)

				// When a guess is created at that time
				id, err := s.Create(ctx, guess.Guess{Session: "s", N: 1, Verdict: ":frown:", CreatedAt: tc.at})
				require.NoError(t, err)

				// Then it reads back as the same instant in the same offset
				got, err := s.Read(ctx, id)
				require.NoError(t, err)
				assertSameTime(t, tc.at, got.CreatedAt)
			})
		}
	})

	t.Run("created at outside years 0 to 9999 is rejected", func(t *testing.T) {
		s := newStore(t)

		for _, at := range []time.Time{
			time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(-1, 12, 31, 0, 0, 0, 0, time.UTC),
			time.Date(9999, 12, 31, 23, 0, 0, 0, time.UTC).In(time.FixedZone("far east", 14*3600)),
		} {
			_, err := s.Create(ctx, guess.Guess{Session: "s", N: 1, Verdict: ":frown:", CreatedAt: at})
			require.ErrorIs(t, err, guess.ErrTimeRange, "created at %v", at)
		}

		all, err := s.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("random created at values round trip", func(t *testing.T) {
		lo := time.Date(1, 1, 2, 0, 0, 0, 0, time.UTC).Unix()
		hi := time.Date(9998, 12, 30, 0, 0, 0, 0, time.UTC).Unix()

		rapid.Check(t, func(rt *rapid.T) {
			s := newStore(t)

			sec := rapid.Int64Range(lo, hi).Draw(rt, "unix")
			nsec := rapid.Int64Range(0, 999999999).Draw(rt, "nanos")
			off := rapid.IntRange(-14*3600, 14*3600).Draw(rt, "offset")
			at := time.Unix(sec, nsec).In(time.FixedZone("", off))

			id, err := s.Create(ctx, guess.Guess{Session: "prop", N: 1, Verdict: ":frown:", CreatedAt: at})
			if err != nil {
				rt.Fatalf("Create %v: %v", at, err)
			}
			got, err := s.Read(ctx, id)
			if err != nil {
				rt.Fatalf("Read: %v", err)
			}
			_, wantOff := at.Zone()
			_, gotOff := got.CreatedAt.Zone()
			if !got.CreatedAt.Equal(at) || gotOff != wantOff {
				rt.Fatalf("wrote %v read %v", at, got.CreatedAt)
			}
		})
	})

	t.Run("ids increase and ignore the caller's id", func(t *testing.T) {
		s := newStore(t)

		first, err := s.Create(ctx, guess.Guess{ID: 99, Session: "s", N: 1, Verdict: ":frown:", CreatedAt: stamp})
		require.NoError(t, err)
		second, err := s.Create(ctx, guess.Guess{ID: 99, Session: "s", N: 2, Verdict: ":frown:", CreatedAt: stamp})
		require.NoError(t, err)

		assert.Greater(t, second, first)
		assert.NotEqual(t, int64(99), first)
	})

	t.Run("ids are not reused after delete", func(t *testing.T) {
		s := newStore(t)

		id, err := s.Create(ctx, guess.Guess{Session: "s", N: 1, Verdict: ":frown:", CreatedAt: stamp})
		require.NoError(t, err)
		require.NoError(t, s.Delete(ctx, id))

		next, err := s.Create(ctx, guess.Guess{Session: "s", N: 2, Verdict: ":frown:", CreatedAt: stamp})
		require.NoError(t, err)
		assert.Greater(t, next, id)
	})

	t.Run("zero created at is stamped", func(t *testing.T) {
		s := newStore(t)

		before := time.Now().Add(-time.Second)
		id, err := s.Create(ctx, guess.Guess{Session: "s", N: 1, Verdict: ":frown:"})
		require.NoError(t, err)

		got, err := s.Read(ctx, id)
		require.NoError(t, err)
		assert.True(t, got.CreatedAt.After(before), "CreatedAt %v not stamped", got.CreatedAt)
	})

	t.Run("deleted guess is not found", func(t *testing.T) {
		// Given a stored guess
		s := newStore(t)
		id, err := s.Create(ctx, guess.Guess{Session: "s", N: 7, Verdict: ":frown:", CreatedAt: stamp})
		require.NoError(t, err)

		// When it is deleted
		require.NoError(t, s.Delete(ctx, id))

		// Then reads, updates and deletes report not found
		_, err = s.Read(ctx, id)
		require.ErrorIs(t, err, guess.ErrNotFound)
		require.ErrorIs(t, s.Update(ctx, id, guess.Guess{N: 8}), guess.ErrNotFound)
		require.ErrorIs(t, s.Delete(ctx, id), guess.ErrNotFound)
	})

	t.Run("update replaces fields but keeps id and created at", func(t *testing.T) {
		s := newStore(t)
		id, err := s.Create(ctx, guess.Guess{Session: "s", N: 7, Verdict: ":frown:", CreatedAt: stamp})
		require.NoError(t, err)

		require.NoError(t, s.Update(ctx, id, guess.Guess{
			ID: 1234, Session: "s2", N: 42, Verdict: "yay!", CreatedAt: stamp.Add(time.Hour),
		}))

		got, err := s.Read(ctx, id)
		require.NoError(t, err)
		want := guess.Guess{ID: id, Session: "s2", N: 42, Verdict: "yay!", CreatedAt: stamp}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("Read after Update mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("update of a missing id is a no-op failure", func(t *testing.T) {
		// Given a store with one guess
		s := newStore(t)
		id, err := s.Create(ctx, guess.Guess{Session: "s", N: 1, Verdict: ":frown:", CreatedAt: stamp})
		require.NoError(t, err)

		// When an unknown id is updated
		err = s.Update(ctx, id+100, guess.Guess{Session: "x", N: 2, Verdict: "yay!"})

		// Then it fails and nothing changes
		require.ErrorIs(t, err, guess.ErrNotFound)
		all, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, 1, all[0].N)
	})

	t.Run("list is ordered by id", func(t *testing.T) {
		s := newStore(t)

		empty, err := s.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, empty)

		for _, n := range []int{5, 3, 9} {
			_, err := s.Create(ctx, guess.Guess{Session: "s", N: n, Verdict: ":frown:", CreatedAt: stamp})
			require.NoError(t, err)
		}

		all, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		for i := 1; i < len(all); i++ {
			assert.Less(t, all[i-1].ID, all[i].ID)
		}
		assert.Equal(t, []int{5, 3, 9}, []int{all[0].N, all[1].N, all[2].N})
	})

	t.Run("random operation sequences match a map model", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			s := newStore(t)
			model := map[int64]guess.Guess{}
			var ids []int64

			pickID := func() int64 {
				if len(ids) == 0 || rapid.Bool().Draw(rt, "unknown") {
					return rapid.Int64Range(1000, 2000).Draw(rt, "missing id")
				}
				return rapid.SampledFrom(ids).Draw(rt, "id")
			}

			steps := rapid.IntRange(1, 30).Draw(rt, "steps")
			for i := 0; i < steps; i++ {
				n := rapid.IntRange(-100, 100).Draw(rt, "n")
				switch rapid.IntRange(0, 3).Draw(rt, "op") {
				case 0:
					g := guess.Guess{Session: "prop", N: n, Verdict: ":frown:", CreatedAt: stamp}
					id, err := s.Create(ctx, g)
					if err != nil {
						rt.Fatalf("Create: %v", err)
					}
					if _, dup := model[id]; dup {
						rt.Fatalf("Create reused id %d", id)
					}
					g.ID = id
					model[id] = g
					ids = append(ids, id)
				case 1:
					id := pickID()
					got, err := s.Read(ctx, id)
					want, ok := model[id]
					checkFound(rt, "Read", id, ok, err)
					if ok && !cmp.Equal(want, got) {
						rt.Fatalf("Read %d: %s", id, cmp.Diff(want, got))
					}
				case 2:
					id := pickID()
					err := s.Update(ctx, id, guess.Guess{Session: "prop", N: n, Verdict: "yay!"})
					want, ok := model[id]
					checkFound(rt, "Update", id, ok, err)
					if ok {
						want.N, want.Verdict = n, "yay!"
						model[id] = want
					}
				case 3:
					id := pickID()
					err := s.Delete(ctx, id)
					_, ok := model[id]
					checkFound(rt, "Delete", id, ok, err)
					delete(model, id)
				}
			}

			all, err := s.List(ctx)
			if err != nil {
				rt.Fatalf("List: %v", err)
			}
			if len(all) != len(model) {
				rt.Fatalf("List has %d guesses, model has %d", len(all), len(model))
			}
			for _, g := range all {
				if !cmp.Equal(model[g.ID], g) {
					rt.Fatalf("List entry %d: %s", g.ID, cmp.Diff(model[g.ID], g))
				}
			}
		})
	})
}

func assertSameTime(t *testing.T, want, got time.Time) {
	t.Helper()

	assert.True(t, want.Equal(got), "wrote %v read %v", want, got)
	_, wantOff := want.Zone()
	_, gotOff := got.Zone()
	assert.Equal(t, wantOff, gotOff, "offset of %v", got)
}

func checkFound(rt *rapid.T, op string, id int64, exists bool, err error) {
	switch {
	case exists && err != nil:
		rt.Fatalf("%s %d: unexpected error %v", op, id, err)
	case !exists && !errors.Is(err, guess.ErrNotFound):
		rt.Fatalf("%s %d: want ErrNotFound, got %v", op, id, err)
	}
}

package oracle_test

import (
	"testing"

	"github.com/sghaida/bddkit/life"
	"github.com/sghaida/bddkit/life/lifetest"
	"github.com/sghaida/bddkit/oracle"
	"github.com/stretchr/testify/assert"
)

// recorder is a third capability a bigger oracle might grow.
type recorder interface{ Record(n int) }

type sliceRecorder struct{ seen []int }

func (r *sliceRecorder) Record(n int) { r.seen = append(r.seen, n) }

// auditedOracle has three bounds instead of two. Only its Handle methods know that.
type auditedOracle[C life.Service, A oracle.Announcer, R recorder] struct {
	checker   C
	announcer A
	recorder  R
}

func (o *auditedOracle[C, A, R]) Checker() life.Service { return recordingChecker{o.checker, o.recorder} }

func (o *auditedOracle[C, A, R]) Announcer() oracle.Announcer { return o.announcer }

type recordingChecker struct {
	inner life.Service
	rec   recorder
}

func (c recordingChecker) Check(n int) bool {
	c.rec.Record(n)
	return c.inner.Check(n)
}

func TestNewUsesTheDefaultAnnouncer(t *testing.T) {
	t.Parallel()

	// Given an oracle built with only a checker
	o := oracle.New(lifetest.NewStub().AlwaysCorrect())

	// When it is consulted
	got := oracle.Consult(o, 0)

	// Then the default cheer is used
	assert.Equal(t, life.Happy, got)
	_, announcer := o.Concrete()
	assert.Equal(t, oracle.Cheer{}, announcer)
}

func TestWithAnnouncerUsesTheGivenAnnouncer(t *testing.T) {
	t.Parallel()

	o := oracle.WithAnnouncer(lifetest.Fake{}, oracle.Plain{})

	assert.Equal(t, []string{"correct", "wrong"}, oracle.ConsultAll(o, 42, 1))
}

func TestHandleHidesTheTypeArguments(t *testing.T) {
	t.Parallel()

	// Given oracles with different type arguments
	handles := []oracle.Handle{
		oracle.New(lifetest.NewStub().Answer(3)),
		oracle.WithAnnouncer(lifetest.NewStub().Answer(3), oracle.Plain{}),
		oracle.WithAnnouncer[life.Service, oracle.Announcer](lifetest.Fake{Answer: 3}, oracle.Cheer{}),
	}

	// When each is consulted through the facade
	var got []string
	for _, h := range handles {
		got = append(got, oracle.Consult(h, 3))
	}

	// Then one downstream function served them all
	assert.Equal(t, []string{life.Happy, "correct", life.Happy}, got)
}

func TestConsultIsUnchangedWhenTheBoundSetGrows(t *testing.T) {
	t.Parallel()

	// Given an oracle with an extra capability
	rec := &sliceRecorder{}
	o := &auditedOracle[lifetest.Fake, oracle.Plain, *sliceRecorder]{
		checker:  lifetest.Fake{},
		recorder: rec,
	}

	// When it goes through the same Consult used for two-bound oracles
	got := oracle.ConsultAll(o, 1, 42)

	// Then it answers and the extra capability did its job
	assert.Equal(t, []string{"wrong", "correct"}, got)
	assert.Equal(t, []int{1, 42}, rec.seen)
}

func TestUseOracleMatchesConsult(t *testing.T) {
	t.Parallel()

	o := oracle.WithAnnouncer(lifetest.NewSpy(true), oracle.Plain{})

	assert.Equal(t, oracle.Consult(o, 5), oracle.UseOracle(o, 5))

	checker, _ := o.Concrete()
	assert.Equal(t, []int{5, 5}, checker.Args())
}

func TestAnnouncers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		a       oracle.Announcer
		correct bool
		want    string
	}{
		{name: "cheer correct", a: oracle.Cheer{}, correct: true, want: life.Happy},
		{name: "cheer wrong", a: oracle.Cheer{}, correct: false, want: life.Sad},
		{name: "plain correct", a: oracle.Plain{}, correct: true, want: "correct"},
		{name: "plain wrong", a: oracle.Plain{}, correct: false, want: "wrong"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.a.Announce(tc.correct))
		})
	}
}

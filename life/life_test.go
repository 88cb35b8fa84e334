package life_test

import (
	"testing"
	"time"

	"github.com/sghaida/bddkit/life"
	"github.com/sghaida/bddkit/life/lifetest"
	"github.com/stretchr/testify/assert"
)

// The slow function is still tested, but only in the full suite (go test without -short).

func TestMeaningOfLifeIs42(t *testing.T) {
	if testing.Short() {
		t.Skip("slow test only needs to run during full suite")
	}
	t.Parallel()

	assert.True(t, life.IsMeaningOfLife(42, life.DefaultDelay))
}

func TestGetWrongAnswerIfWeDontProvide42(t *testing.T) {
	if testing.Short() {
		t.Skip("slow test only needs to run during full suite")
	}
	t.Parallel()

	assert.False(t, life.IsMeaningOfLife(0, life.DefaultDelay))
}

func TestLifeCheck_UsesConfiguredDelay(t *testing.T) {
	t.Parallel()

	// Given a Life with a tiny delay
	svc := life.Life{Delay: time.Millisecond}

	// When we check both the answer and a wrong guess
	start := time.Now()
	right := svc.Check(life.Answer)
	wrong := svc.Check(7)

	// Then both answers are correct and we did not wait for the default delay
	assert.True(t, right)
	assert.False(t, wrong)
	assert.Less(t, time.Since(start), life.DefaultDelay)
}

// The number handed to Run does not matter in these tests: the stub controls the
// result. A fake that compares against 42 would silently go stale if the answer changed.

func TestWeGetAHappyResultIfWeGuessTheCorrectMeaningOfLife(t *testing.T) {
	t.Parallel()

	// Given that the correct meaning of life is provided
	service := lifetest.NewStub().AlwaysCorrect()

	// When we check the meaning
	result := life.Run(service, 0)

	// Then we get a happy result
	assert.Equal(t, life.Happy, result)
}

func TestWeGetASadResultIfWeGuessTheWrongMeaningOfLife(t *testing.T) {
	t.Parallel()

	// Given that the wrong meaning of life is provided
	service := lifetest.NewStub().AlwaysWrong()

	// When we check the meaning
	result := life.Run(service, 0)

	// Then we have a sad result
	assert.Equal(t, life.Sad, result)
}

func TestRunAsksTheServiceExactlyOnceWithTheGuess(t *testing.T) {
	t.Parallel()

	// Given a spy that answers correctly
	spy := lifetest.NewSpy(true)

	// When we run with a guess
	_ = life.Run(spy, 13)

	// Then the service saw that guess and nothing else
	assert.Equal(t, 1, spy.Calls())
	assert.Equal(t, []int{13}, spy.Args())
}

// Package app wires the bddkit capabilities into one container and shows how call
// sites should consume it.
//
// Deps gives every capability its own accessor. Functions that have the container
// extract what they need and hand the narrow interface on; functions further down
// take only that interface, so a test for them never builds a full container.
package app

import (
	"go.uber.org/zap"

	"github.com/sghaida/bddkit/di"
	"github.com/sghaida/bddkit/guess"
	"github.com/sghaida/bddkit/life"
)

// Keys under which the capabilities are stored.
const (
	KeyLife    di.DependencyKey = "life"
	KeyGuesses di.DependencyKey = "guesses"
	KeyLogger  di.DependencyKey = "logger"
)

// Deps is the accessor view of every capability. The name is short because it shows
// up in many signatures.
type Deps interface {
	Life() life.Service
	Guesses() guess.Store
	Logger() *zap.Logger
}

// Container implements Deps with one typed field per capability.
//
// It is built once and only read afterwards, so copies and concurrent readers are fine.
// Mutable state belongs inside the capability implementations. The zero Container
// returns nil from every accessor.
type Container struct {
	life    life.Service
	guesses guess.Store
	logger  *zap.Logger
}

var _ Deps = Container{}

// NewContainer binds one implementation per capability. A nil logger is replaced by
// zap.NewNop; nil capabilities are rejected with di.NilDependencyError.
func NewContainer(svc life.Service, store guess.Store, logger *zap.Logger) (Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s, err := di.Init(func() *Container { return &Container{} }).WithAll(
		di.Injecting(KeyLife, svc, func(c *Container, d life.Service) { c.life = d }),
		di.Injecting(KeyGuesses, store, func(c *Container, d guess.Store) { c.guesses = d }),
		di.Injecting(KeyLogger, logger, func(c *Container, d *zap.Logger) { c.logger = d }),
	)
	if err != nil {
		return Container{}, err
	}
	return *s.Value(), nil
}

// FromRegistry builds a Container from any di.Registry after checking every key
// resolves to the right type.
func FromRegistry(reg di.Registry) (Container, error) {
	svc, err := di.ResolveAs[life.Service](reg, KeyLife)
	if err != nil {
		return Container{}, err
	}
	store, err := di.ResolveAs[guess.Store](reg, KeyGuesses)
	if err != nil {
		return Container{}, err
	}
	logger, err := di.ResolveAs[*zap.Logger](reg, KeyLogger)
	if err != nil {
		return Container{}, err
	}
	return NewContainer(svc, store, logger)
}

// Life implements Deps.
func (c Container) Life() life.Service { return c.life }

// Guesses implements Deps.
func (c Container) Guesses() guess.Store { return c.guesses }

// Logger implements Deps.
func (c Container) Logger() *zap.Logger { return c.logger }

// Registry returns the capabilities as a di.Container keyed by KeyLife, KeyGuesses and
// KeyLogger.
func (c Container) Registry() (*di.Container, error) {
	return di.NewBuilder().
		Provide(KeyLife, c.life).
		Provide(KeyGuesses, c.guesses).
		Provide(KeyLogger, c.logger).
		Build()
}

// With returns a copy of c with one capability replaced, for tests that need a single
// substitute on top of an otherwise real container.
func (c Container) With(key di.DependencyKey, val any) (Container, error) {
	reg, err := c.Registry()
	if err != nil {
		return Container{}, err
	}
	reg, err = reg.Override(key, val)
	if err != nil {
		return Container{}, err
	}
	return FromRegistry(reg)
}

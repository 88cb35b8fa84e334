package di_test

import (
	"testing"

	"github.com/sghaida/bddkit/di"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolve_Present verifies Resolve returns the stored value and ok=true.
func TestResolve_Present(t *testing.T) {
	t.Parallel()

	var reg di.Registry = di.NewBuilder().Provide(counterKey, fixedCounter(4)).MustBuild()

	val, ok, err := reg.Resolve(counterKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, fixedCounter(4), val)
}

// TestResolve_Missing verifies Resolve returns (nil,false,nil) for missing keys.
func TestResolve_Missing(t *testing.T) {
	t.Parallel()

	reg := di.NewBuilder().MustBuild()

	val, ok, err := reg.Resolve("missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, val)
}

// TestResolve_NilContainer verifies a nil container reports ErrNilContainer instead of panicking.
func TestResolve_NilContainer(t *testing.T) {
	t.Parallel()

	var c *di.Container

	val, ok, err := c.Resolve(greeterKey)
	require.ErrorIs(t, err, di.ErrNilContainer)
	assert.False(t, ok)
	assert.Nil(t, val)
}

// panicRegistry is a Registry whose lookups blow up.
type panicRegistry struct{}

func (panicRegistry) Resolve(di.DependencyKey) (any, bool, error) { panic("boom") }

// TestResolveAs_Table verifies typed resolution over any Registry.
func TestResolveAs_Table(t *testing.T) {
	t.Parallel()

	c := di.NewBuilder().
		Provide(greeterKey, spanishGreeter{}).
		Provide(counterKey, fixedCounter(1)).
		MustBuild()

	cases := []struct {
		name   string
		reg    di.Registry
		key    di.DependencyKey
		want   string
		wantIs error
		wantAs any
	}{
		{name: "present", reg: c, key: greeterKey, want: "hola"},
		{name: "missing", reg: c, key: "nope", wantAs: &di.MissingDependencyError{}},
		{name: "wrong type", reg: c, key: counterKey, wantAs: &di.WrongTypeDependencyError{}},
		{name: "nil registry", reg: nil, key: greeterKey, wantIs: di.ErrNilContainer},
		{name: "nil container", reg: (*di.Container)(nil), key: greeterKey, wantIs: di.ErrNilContainer},
		{name: "panicking registry", reg: panicRegistry{}, key: greeterKey, wantIs: di.ErrRegistryPanic},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := di.ResolveAs[greeter](tc.reg, tc.key)
			switch {
			case tc.wantIs != nil:
				require.ErrorIs(t, err, tc.wantIs)
				assert.Nil(t, got)
			case tc.wantAs != nil:
				require.ErrorAs(t, err, tc.wantAs)
				assert.Nil(t, got)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.want, got.Greet())
			}
		})
	}
}

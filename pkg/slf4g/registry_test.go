package slf4g_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/slf4g/config"
	"github.com/Gunvolt24/slf4g/pkg/slf4g"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	t.Parallel()

	reg := slf4g.NewRegistry()
	var gotOpts config.Logger
	reg.Register("rec", func(opts config.Logger) (slf4g.LoggerFactory, error) {
		gotOpts = opts
		return slf4g.Nop(), nil
	})

	ctor, ok := reg.Lookup("rec")
	require.True(t, ok)

	f, err := ctor(config.Logger{Level: "debug"})
	require.NoError(t, err)
	require.NotNil(t, f)
	require.Equal(t, "debug", gotOpts.Level)

	_, ok = reg.Lookup("missing")
	require.False(t, ok)
}

func TestRegistry_RegisterPanics(t *testing.T) {
	t.Parallel()

	noop := func(config.Logger) (slf4g.LoggerFactory, error) { return slf4g.Nop(), nil }

	reg := slf4g.NewRegistry()
	require.Panics(t, func() { reg.Register("", noop) }, "empty name")
	require.Panics(t, func() { reg.Register("x", nil) }, "nil constructor")

	reg.Register("x", noop)
	require.Panics(t, func() { reg.Register("x", noop) }, "duplicate")
}

func TestRegistry_NamesSorted(t *testing.T) {
	t.Parallel()

	noop := func(config.Logger) (slf4g.LoggerFactory, error) { return nil, errors.New("unused") }

	reg := slf4g.NewRegistry()
	for _, name := range []string{"zap", "console", "logrus"} {
		reg.Register(name, noop)
	}
	require.Equal(t, []string{"console", "logrus", "zap"}, reg.Names())
}

func TestDefaultRegistry_HasNop(t *testing.T) {
	t.Parallel()

	require.Contains(t, slf4g.Bindings(), "nop")

	ctor, ok := slf4g.DefaultRegistry.Lookup("nop")
	require.True(t, ok)
	f, err := ctor(config.Logger{})
	require.NoError(t, err)
	require.True(t, slf4g.IsNop(f.Get("any")))
}

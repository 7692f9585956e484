package expansion_test

import (
	"testing"

	"github.com/AG-Philipsen/hopping-large-nt/expansion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *expansion.Configuration {
	t.Helper()
	cfg, err := expansion.ParseConfiguration(s)
	require.NoError(t, err)

	return cfg
}

func TestParseConfiguration(t *testing.T) {
	cfg := mustParse(t, "ppmm.pm")
	assert.Equal(t, 6, cfg.Len())
	assert.Equal(t, []int{4, 6}, cfg.TraceBounds)
	assert.Equal(t, 2, cfg.NumTraces())
	assert.False(t, cfg.IsSingleTrace())
	assert.Equal(t, "ppmm.pm", cfg.String())
	assert.Equal(t, "1", cfg.Prefactor.RatString())

	for _, bad := range []string{"", "ppm", "pm.p", "pxm", "pm..pm"} {
		_, err := expansion.ParseConfiguration(bad)
		assert.ErrorIs(t, err, expansion.ErrInvalidConfiguration, bad)
	}
}

func TestNewConfiguration_RejectsBadBounds(t *testing.T) {
	sym := []expansion.Symbol{expansion.Forward, expansion.Backward}
	_, err := expansion.NewConfiguration(sym, []int{1})
	assert.ErrorIs(t, err, expansion.ErrInvalidConfiguration)
	_, err = expansion.NewConfiguration(sym, []int{2, 2})
	assert.ErrorIs(t, err, expansion.ErrInvalidConfiguration)

	cfg, err := expansion.NewConfiguration(sym, []int{2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, -1}, cfg.Steps())
}

func TestTraceBounds(t *testing.T) {
	cfg := mustParse(t, "ppmm.pm")

	assert.Equal(t, 4, cfg.UpperTraceBound(0))
	assert.Equal(t, 4, cfg.UpperTraceBound(3))
	assert.Equal(t, 6, cfg.UpperTraceBound(4))
	assert.Equal(t, 6, cfg.UpperTraceBound(9), "past the end")
	assert.Equal(t, 0, cfg.LowerTraceBound(3))
	assert.Equal(t, 4, cfg.LowerTraceBound(5))

	tr, err := cfg.TraceIndex(5)
	require.NoError(t, err)
	assert.Equal(t, 1, tr)
	_, err = cfg.TraceIndex(6)
	assert.ErrorIs(t, err, expansion.ErrTraceIndex)
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"mmpp":   "ppmm",
		"pmmp":   "ppmm",
		"mpmp":   "pmpm",
		"ppmm":   "ppmm",
		"mpppmm": "pppmmm",
	}
	for in, want := range cases {
		cfg := mustParse(t, in)
		cfg.Normalize()
		assert.Equal(t, want, cfg.String(), in)
	}
}

func TestRotationEqual(t *testing.T) {
	assert.True(t, mustParse(t, "pmmp").RotationEqual(mustParse(t, "ppmm")))
	assert.True(t, mustParse(t, "pmppmm").RotationEqual(mustParse(t, "ppmmpm")))
	assert.False(t, mustParse(t, "pmpm").RotationEqual(mustParse(t, "ppmm")))
	assert.False(t, mustParse(t, "pm").RotationEqual(mustParse(t, "ppmm")))
}

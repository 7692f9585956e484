package expansion_test

import (
	"testing"

	"github.com/AG-Philipsen/hopping-large-nt/expansion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func links(cfg *expansion.Configuration) [][]int {
	out := make([][]int, len(cfg.Paths))
	for i, p := range cfg.Paths {
		out[i] = p.Links
	}

	return out
}

func TestEnumeratePaths_Small(t *testing.T) {
	cases := []struct {
		config string
		want   [][]int
	}{
		{"pm", [][]int{{1, -1}}},
		{"ppmm", [][]int{{1, 2, -2, -1}}},
		{"pmpm", [][]int{{1, -1, 2, -2}, {1, -2, 2, -1}}},
		// the disconnected pairing cannot place the second trace
		{"pm.pm", [][]int{{1, -2, 2, -1}}},
	}
	for _, tc := range cases {
		cfg := mustParse(t, tc.config)
		require.NoError(t, cfg.EnumeratePaths(), tc.config)
		assert.Equal(t, tc.want, links(cfg), tc.config)
		for _, p := range cfg.Paths {
			assert.Equal(t, [][]int{p.Links}, p.Spatials, "initial spatial assignment mirrors links")
		}
	}
}

// TestEnumeratePaths_Pairing checks on every order-6 configuration that
// each link id joins exactly one Forward and one Backward step, with the
// sign following the symbol.
func TestEnumeratePaths_Pairing(t *testing.T) {
	cat, err := expansion.Generate(6)
	require.NoError(t, err)

	for _, cfg := range cat.Top() {
		require.NoError(t, cfg.EnumeratePaths())
		if cfg.IsSingleTrace() {
			require.NotEmpty(t, cfg.Paths, cfg.String())
		}
		for _, p := range cfg.Paths {
			require.Equal(t, cfg.Len(), p.Len())
			seen := make(map[int]int)
			for i, l := range p.Links {
				require.NotZero(t, l)
				assert.Equal(t, int(cfg.Symbols[i]), sign(l), "%s %v", cfg, p.Links)
				seen[l]++

				j, err := p.Partner(i)
				require.NoError(t, err)
				assert.Equal(t, -l, p.Links[j])
			}
			for l, n := range seen {
				assert.Equal(t, 1, n, "link %d in %v", l, p.Links)
			}
		}
	}
}

// TestEnumeratePaths_Repeatable enumerates every order-8 multi-trace
// configuration twice and expects the same links, which fails if a link
// mark survives the backtracking.
func TestEnumeratePaths_Repeatable(t *testing.T) {
	cat, err := expansion.Generate(8)
	require.NoError(t, err)

	want := map[string]int{
		"pm.pm.pm.pm": 6,
		"pm.pm.ppmm":  6,
		"pm.pm.pmpm":  12,
		"pm.pppmmm":   3,
		"pm.ppmpmm":   6,
		"pm.ppmmpm":   6,
		"pm.pmpmpm":   18,
		"ppmm.ppmm":   5,
		"ppmm.pmpm":   8,
		"pmpm.pmpm":   20,
	}
	for _, cfg := range cat.MultiTrace() {
		require.NoError(t, cfg.EnumeratePaths())
		first := links(cfg)
		assert.Len(t, first, want[cfg.String()], cfg.String())

		require.NoError(t, cfg.EnumeratePaths())
		assert.Equal(t, first, links(cfg), cfg.String())
	}
}

func TestPartner_Missing(t *testing.T) {
	p := &expansion.Path{Links: []int{1, 2}}
	_, err := p.Partner(0)
	assert.ErrorIs(t, err, expansion.ErrLinkNotFound)
	_, err = p.Partner(5)
	assert.ErrorIs(t, err, expansion.ErrLinkNotFound)
}

func TestRemoveSpecialSpatials(t *testing.T) {
	p := &expansion.Path{
		Links: []int{1, 2, 3, -3, -2, -1},
		Spatials: [][]int{
			{1, 1, 1, -1, -1, -1},
			{1, 2, 1, -1, -2, -1},
			{1, 2, 3, -3, -2, -1},
		},
	}
	assert.Equal(t, 1, p.RemoveSpecialSpatials([]int{6}))
	assert.Equal(t, [][]int{{1, 2, 1, -1, -2, -1}, {1, 2, 3, -3, -2, -1}}, p.Spatials)
}

func sign(x int) int {
	if x < 0 {
		return -1
	}

	return 1
}

package config_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frfinder/config"
	"github.com/katalvlaran/frfinder/finder"
)

const full = `
search:
  alpha: 0.8
  kappa: 10
  minSup: 2
  maxSup: 50
  minSize: 3
  minLen: 20
  caseCtrl: true
  workers: 4
  maxRounds: 100
graph:
  path: graphs/hla.yaml
  labels: graphs/hla.labels.tsv
  strictPaths: true
output:
  prefix: out/hla
  metrics: out/hla.prom
  checkpoint: out/hla.db
logging:
  level: debug
  format: json
`

func TestParse_Full(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(full))
	require.NoError(t, err)

	assert.Equal(t, "graphs/hla.yaml", cfg.Graph.Path)
	assert.True(t, cfg.Graph.StrictPaths)
	assert.Equal(t, "out/hla.db", cfg.Output.Checkpoint)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Len(t, cfg.Options(), 2)

	p, err := cfg.Params()
	require.NoError(t, err)
	want := finder.DefaultParams(0.8, 10)
	want.MinSup, want.MaxSup, want.MinSize, want.MinLen, want.CaseCtrl = 2, 50, 3, 20, true
	assert.Equal(t, want, p)
}

func TestParse_EmptyIsDefault(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Empty(t, cfg.Options())

	_, err = cfg.Params()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader("search:\n  alpha: 0.5\n  kappa: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, cfg.Search.MaxSup)
	assert.Equal(t, "info", cfg.Logging.Level)

	p, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, finder.DefaultParams(0.5, 0), p)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown key":    "search:\n  beta: 1\n",
		"alpha too big":  "search:\n  alpha: 1.5\n",
		"negative kappa": "search:\n  kappa: -1\n",
		"bad level":      "logging:\n  level: loud\n",
		"bad format":     "logging:\n  format: xml\n",
		"not yaml":       "search: [1, 2\n",
		"NaN alpha":      "search:\n  alpha: .nan\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse(strings.NewReader(in))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestParams_FinderValidation(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader("search:\n  alpha: 0.5\n  kappa: 1\n  minSup: 5\n  maxSup: 2\n"))
	require.NoError(t, err)
	_, err = cfg.Params()
	require.ErrorIs(t, err, finder.ErrInvalidParams)
}

func TestParams_ZeroMaxSupIsUnbounded(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader("search:\n  alpha: 0.5\n  kappa: 1\n  maxSup: 0\n"))
	require.NoError(t, err)
	p, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, p.MaxSup)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frfinder.yaml")
	require.NoError(t, os.WriteFile(path, []byte(full), 0o600))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Search.Workers)

	_, err = config.Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seamcut/flow"
	"github.com/katalvlaran/seamcut/gridgraph"
	"github.com/katalvlaran/seamcut/internal/config"
)

const tomlConfig = `
source = "a.png"
target = "b.png"
output = "out.png"

[source_seed]
x0 = 0
y0 = 0
x1 = 3
y1 = 9

[sink_seed]
x0 = 6
y0 = 0
x1 = 9
y1 = 9

[search]
strategy = "concurrent"
workers = 3
max_depth = 12

[grid]
connectivity = 8
labeling = "reachability"

[log]
level = "debug"
`

const yamlConfig = `
source: a.png
target: b.png
output: out.jpg
source_seed: {x0: 0, y0: 0, x1: 0, y1: 4}
sink_seed: {x0: 4, y0: 0, x1: 4, y1: 4}
search:
  strategy: sequential
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, config.StrategySequential, cfg.Search.Strategy)
	require.GreaterOrEqual(t, cfg.Search.Workers, 1)
	require.Nil(t, cfg.Search.MaxDepth)
	require.Equal(t, 4, cfg.Grid.Connectivity)
	require.Equal(t, config.LabelAdjacency, cfg.Grid.Labeling)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, flow.UnlimitedDepth, cfg.SearchConfig().MaxDepth)
	require.GreaterOrEqual(t, config.DefaultWorkers(), 1)
}

func TestLoad_TOML(t *testing.T) {
	cfg, err := config.Load(writeFile(t, "seamcut.toml", tomlConfig))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Equal(t, "a.png", cfg.Source)
	require.Equal(t, gridgraph.Rect{X0: 6, Y0: 0, X1: 9, Y1: 9}, cfg.SinkSeed.Rect())
	require.Equal(t, flow.SearchConfig{Workers: 3, MaxDepth: 12}, cfg.SearchConfig())
	require.Equal(t, gridgraph.Conn8, cfg.GridOptions().Conn)
	require.Equal(t, gridgraph.LabelReachability, cfg.Labeling())
	// Keys absent from the file keep their defaults.
	require.Equal(t, 100, cfg.Log.MaxSizeMB)
}

func TestLoad_YAML(t *testing.T) {
	cfg, err := config.Load(writeFile(t, "seamcut.yml", yamlConfig))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Equal(t, "out.jpg", cfg.Output)
	require.Equal(t, gridgraph.Rect{X0: 0, Y0: 0, X1: 0, Y1: 4}, cfg.SourceSeed.Rect())
	require.Equal(t, gridgraph.Conn4, cfg.GridOptions().Conn)
	require.Equal(t, gridgraph.LabelAdjacency, cfg.Labeling())
	require.Equal(t, config.DefaultWorkers(), cfg.Search.Workers)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(writeFile(t, "seamcut.json", "{}"))
	require.ErrorIs(t, err, config.ErrUnknownFormat)

	_, err = config.Load(writeFile(t, "bad.toml", "source = ["))
	require.Error(t, err)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_FlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "seamcut.toml", tomlConfig)
	cfg, err := config.Parse([]string{
		"-config", path,
		"-out", "flag.png",
		"-depth", "-1",
		"-workers", "2",
		"-sink-seed", "7, 0, 9, 9",
	})
	require.NoError(t, err)

	require.Equal(t, "a.png", cfg.Source)
	require.Equal(t, "flag.png", cfg.Output)
	require.Nil(t, cfg.Search.MaxDepth)
	require.Equal(t, 2, cfg.Search.Workers)
	require.Equal(t, config.Seed{X0: 7, Y0: 0, X1: 9, Y1: 9}, *cfg.SinkSeed)
	require.Equal(t, config.StrategyConcurrent, cfg.Search.Strategy)
}

func TestParse_FlagsOnly(t *testing.T) {
	cfg, err := config.Parse([]string{
		"-source", "s.png", "-target", "t.png", "-out", "o.png",
		"-source-seed", "0,0,0,0", "-sink-seed", "1,1,1,1",
		"-strategy", "concurrent", "-depth", "5", "-label", "reachability",
	})
	require.NoError(t, err)
	require.Equal(t, 5, cfg.SearchConfig().MaxDepth)
	require.Equal(t, gridgraph.LabelReachability, cfg.Labeling())
}

// TestValidate_MissingSeed names the absent seed instead of reporting an
// overlap of two zero rectangles.
func TestValidate_MissingSeed(t *testing.T) {
	_, err := config.Parse([]string{"-source", "s.png", "-target", "t.png", "-out", "o.png"})
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	require.ErrorContains(t, err, "source_seed is required")

	_, err = config.Parse([]string{
		"-source", "s.png", "-target", "t.png", "-out", "o.png",
		"-source-seed", "0,0,0,0",
	})
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	require.ErrorContains(t, err, "sink_seed is required")

	cfg, err := config.Load(writeFile(t, "noseed.yaml", "source: a.png\ntarget: b.png\noutput: c.png\n"))
	require.NoError(t, err)
	require.ErrorContains(t, cfg.Validate(), "source_seed is required")
}

func TestParse_BadSeedFlag(t *testing.T) {
	_, err := config.Parse([]string{"-source-seed", "1,2,3"})
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() config.Config {
		cfg := config.Default()
		cfg.Source, cfg.Target, cfg.Output = "a.png", "b.png", "c.png"
		cfg.SourceSeed = &config.Seed{}
		cfg.SinkSeed = &config.Seed{X0: 2, Y0: 2, X1: 2, Y1: 2}
		return cfg
	}
	require.NoError(t, valid().Validate())

	neg := -1
	cases := map[string]func(*config.Config){
		"NoSource":     func(c *config.Config) { c.Source = "" },
		"NoOutput":     func(c *config.Config) { c.Output = "" },
		"Strategy":     func(c *config.Config) { c.Search.Strategy = "greedy" },
		"Workers":      func(c *config.Config) { c.Search.Workers = 0 },
		"Depth":        func(c *config.Config) { c.Search.MaxDepth = &neg },
		"Connectivity": func(c *config.Config) { c.Grid.Connectivity = 6 },
		"Labeling":     func(c *config.Config) { c.Grid.Labeling = "flood" },
		"Overlap":      func(c *config.Config) { c.SinkSeed = c.SourceSeed },
		"Inverted":     func(c *config.Config) { c.SourceSeed = &config.Seed{X0: 1, X1: 0} },
		"LogLevel":     func(c *config.Config) { c.Log.Level = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}

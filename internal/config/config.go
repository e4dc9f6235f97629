// Package config loads the seamcut driver configuration from a TOML or YAML
// file and command-line flags. Flags override file values; unset keys keep
// the defaults returned by Default.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seamcut/flow"
	"github.com/katalvlaran/seamcut/gridgraph"
	"github.com/katalvlaran/seamcut/internal/logging"
)

var (
	// ErrUnknownFormat indicates a config file extension other than .toml, .yaml or .yml.
	ErrUnknownFormat = errors.New("config: unknown file format")
	// ErrInvalidConfig indicates a value outside its allowed range.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Path-search strategies.
const (
	StrategySequential = "sequential"
	StrategyConcurrent = "concurrent"
)

// Cut labelings.
const (
	LabelAdjacency    = "adjacency"
	LabelReachability = "reachability"
)

// Seed is an inclusive pixel rectangle. As a flag it reads "x0,y0,x1,y1".
type Seed struct {
	X0 int `toml:"x0" yaml:"x0"`
	Y0 int `toml:"y0" yaml:"y0"`
	X1 int `toml:"x1" yaml:"x1"`
	Y1 int `toml:"y1" yaml:"y1"`
}

// Rect converts s to a gridgraph rectangle.
func (s Seed) Rect() gridgraph.Rect {
	return gridgraph.Rect{X0: s.X0, Y0: s.Y0, X1: s.X1, Y1: s.Y1}
}

func (s *Seed) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", s.X0, s.Y0, s.X1, s.Y1)
}

// Set parses "x0,y0,x1,y1".
func (s *Seed) Set(v string) error {
	parts := strings.Split(v, ",")
	if len(parts) != 4 {
		return fmt.Errorf("seed %q: want x0,y0,x1,y1", v)
	}
	var n [4]int
	for i, p := range parts {
		x, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return fmt.Errorf("seed %q: %w", v, err)
		}
		n[i] = x
	}
	*s = Seed{X0: n[0], Y0: n[1], X1: n[2], Y1: n[3]}

	return nil
}

// Search configures the augmenting-path search.
type Search struct {
	Strategy string `toml:"strategy" yaml:"strategy"`
	Workers  int    `toml:"workers" yaml:"workers"`
	// MaxDepth bounds the concurrent search; nil means unlimited.
	MaxDepth *int `toml:"max_depth" yaml:"max_depth"`
	Verbose  bool `toml:"verbose" yaml:"verbose"`
}

// Grid configures graph construction and compositing.
type Grid struct {
	Connectivity int    `toml:"connectivity" yaml:"connectivity"`
	Labeling     string `toml:"labeling" yaml:"labeling"`
}

// Config is the complete driver configuration.
type Config struct {
	Source     string          `toml:"source" yaml:"source"`
	Target     string          `toml:"target" yaml:"target"`
	Output     string          `toml:"output" yaml:"output"`
	SourceSeed *Seed           `toml:"source_seed" yaml:"source_seed"`
	SinkSeed   *Seed           `toml:"sink_seed" yaml:"sink_seed"`
	Search     Search          `toml:"search" yaml:"search"`
	Grid       Grid            `toml:"grid" yaml:"grid"`
	Log        logging.Options `toml:"log" yaml:"log"`
}

// DefaultWorkers returns the logical CPU count, or flow.DefaultWorkers when
// it cannot be read.
func DefaultWorkers() int {
	n, err := cpu.Counts(true)
	if err != nil || n < 1 {
		return flow.DefaultWorkers
	}

	return n
}

// Default returns the configuration used for keys absent from file and flags.
func Default() Config {
	return Config{
		Search: Search{Strategy: StrategySequential, Workers: DefaultWorkers()},
		Grid:   Grid{Connectivity: 4, Labeling: LabelAdjacency},
		Log:    logging.DefaultOptions(),
	}
}

// Load decodes the file at path over Default. The format follows the
// extension: .toml, or .yaml / .yml.
func Load(path string) (Config, error) {
	cfg := Default()
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("error decoding TOML file %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("error decoding YAML file %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	return cfg, nil
}

// Parse reads flags from args, loads the file named by -config if any, then
// applies every flag that was set explicitly. The result is validated.
func Parse(args []string) (Config, error) {
	fs := flag.NewFlagSet("seamcut", flag.ContinueOnError)
	var f Config
	var srcSeed, snkSeed Seed
	path := fs.String("config", "", "TOML or YAML configuration file")
	fs.StringVar(&f.Source, "source", "", "source image (png or jpeg)")
	fs.StringVar(&f.Target, "target", "", "target image (png or jpeg)")
	fs.StringVar(&f.Output, "out", "", "output image (png or jpeg)")
	fs.Var(&srcSeed, "source-seed", "source seed rectangle x0,y0,x1,y1")
	fs.Var(&snkSeed, "sink-seed", "sink seed rectangle x0,y0,x1,y1")
	fs.StringVar(&f.Search.Strategy, "strategy", "", "path search: sequential or concurrent")
	fs.IntVar(&f.Search.Workers, "workers", 0, "concurrent search worker count")
	depth := fs.Int("depth", -1, "concurrent search depth bound, negative for unlimited")
	fs.BoolVar(&f.Search.Verbose, "verbose", false, "log every augmentation")
	fs.IntVar(&f.Grid.Connectivity, "conn", 0, "pixel connectivity: 4 or 8")
	fs.StringVar(&f.Grid.Labeling, "label", "", "cut labeling: adjacency or reachability")
	fs.StringVar(&f.Log.Level, "log-level", "", "log level")
	fs.StringVar(&f.Log.File, "log-file", "", "rotating log file, empty for stdout only")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if *path != "" {
		var err error
		if cfg, err = Load(*path); err != nil {
			return Config{}, err
		}
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "source":
			cfg.Source = f.Source
		case "target":
			cfg.Target = f.Target
		case "out":
			cfg.Output = f.Output
		case "source-seed":
			cfg.SourceSeed = &srcSeed
		case "sink-seed":
			cfg.SinkSeed = &snkSeed
		case "strategy":
			cfg.Search.Strategy = f.Search.Strategy
		case "workers":
			cfg.Search.Workers = f.Search.Workers
		case "depth":
			cfg.Search.MaxDepth = nil
			if *depth >= 0 {
				d := *depth
				cfg.Search.MaxDepth = &d
			}
		case "verbose":
			cfg.Search.Verbose = f.Search.Verbose
		case "conn":
			cfg.Grid.Connectivity = f.Grid.Connectivity
		case "label":
			cfg.Grid.Labeling = f.Grid.Labeling
		case "log-level":
			cfg.Log.Level = f.Log.Level
		case "log-file":
			cfg.Log.File = f.Log.File
		}
	})

	return cfg, cfg.Validate()
}

// Validate reports the first invalid value wrapped in ErrInvalidConfig.
// Seed bounds against the image size are checked later by gridgraph.Build.
func (c Config) Validate() error {
	switch {
	case c.Source == "" || c.Target == "":
		return fmt.Errorf("%w: source and target images are required", ErrInvalidConfig)
	case c.Output == "":
		return fmt.Errorf("%w: output image is required", ErrInvalidConfig)
	case c.SourceSeed == nil:
		return fmt.Errorf("%w: source_seed is required", ErrInvalidConfig)
	case c.SinkSeed == nil:
		return fmt.Errorf("%w: sink_seed is required", ErrInvalidConfig)
	case c.Search.Strategy != StrategySequential && c.Search.Strategy != StrategyConcurrent:
		return fmt.Errorf("%w: strategy %q", ErrInvalidConfig, c.Search.Strategy)
	case c.Search.Workers < 1:
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Search.Workers)
	case c.Search.MaxDepth != nil && *c.Search.MaxDepth < 0:
		return fmt.Errorf("%w: max_depth must be non-negative, got %d", ErrInvalidConfig, *c.Search.MaxDepth)
	case c.Grid.Connectivity != 4 && c.Grid.Connectivity != 8:
		return fmt.Errorf("%w: connectivity must be 4 or 8, got %d", ErrInvalidConfig, c.Grid.Connectivity)
	case c.Grid.Labeling != LabelAdjacency && c.Grid.Labeling != LabelReachability:
		return fmt.Errorf("%w: labeling %q", ErrInvalidConfig, c.Grid.Labeling)
	}

	src, snk := c.SourceSeed.Rect(), c.SinkSeed.Rect()
	if src.X0 > src.X1 || src.Y0 > src.Y1 || snk.X0 > snk.X1 || snk.Y0 > snk.Y1 {
		return fmt.Errorf("%w: inverted seed %v / %v", ErrInvalidConfig, src, snk)
	}
	if src.Overlaps(snk) {
		return fmt.Errorf("%w: seeds %v and %v overlap", ErrInvalidConfig, src, snk)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// SearchConfig returns the concurrent search settings.
func (c Config) SearchConfig() flow.SearchConfig {
	depth := flow.UnlimitedDepth
	if c.Search.MaxDepth != nil {
		depth = *c.Search.MaxDepth
	}

	return flow.SearchConfig{Workers: c.Search.Workers, MaxDepth: depth}
}

// GridOptions returns the graph construction settings.
func (c Config) GridOptions() gridgraph.GridOptions {
	opts := gridgraph.DefaultGridOptions()
	if c.Grid.Connectivity == 8 {
		opts.Conn = gridgraph.Conn8
	}

	return opts
}

// Labeling returns the compositor labeling.
func (c Config) Labeling() gridgraph.Labeling {
	if c.Grid.Labeling == LabelReachability {
		return gridgraph.LabelReachability
	}

	return gridgraph.LabelAdjacency
}

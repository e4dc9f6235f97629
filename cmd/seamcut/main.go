// Command seamcut blends a source image into a target image along the
// minimum-cost graph-cut seam between two seed rectangles.
//
// Usage:
//
//	seamcut -source a.png -target b.png -out c.png \
//	    -source-seed 0,0,9,99 -sink-seed 90,0,99,99 [-strategy concurrent]
//
// Every flag may also be given in a TOML or YAML file passed with -config.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/seamcut/flow"
	"github.com/katalvlaran/seamcut/gridgraph"
	"github.com/katalvlaran/seamcut/internal/config"
	"github.com/katalvlaran/seamcut/internal/imagefile"
	"github.com/katalvlaran/seamcut/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		stop()
		logrus.Fatalf("seamcut: %v", err)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := config.Parse(args)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.Log, stdout)
	if err != nil {
		return err
	}
	defer closer.Close()
	log := logger.WithField("run_id", uuid.NewString())

	start := time.Now()
	imgs, err := imagefile.LoadAll(ctx, cfg.Source, cfg.Target)
	if err != nil {
		return fmt.Errorf("load images: %w", err)
	}
	src, err := gridgraph.FromImage(imgs[0])
	if err != nil {
		return fmt.Errorf("source image: %w", err)
	}
	dst, err := gridgraph.FromImage(imgs[1])
	if err != nil {
		return fmt.Errorf("target image: %w", err)
	}
	log.Infof("Loaded %dx%d source and %dx%d target", src.Width(), src.Height(), dst.Width(), dst.Height())

	sg, err := gridgraph.Build(src, dst, cfg.SourceSeed.Rect(), cfg.SinkSeed.Rect(), cfg.GridOptions())
	if err != nil {
		return fmt.Errorf("build graph: %w", err)
	}
	log.WithFields(logrus.Fields{
		"nodes": sg.Graph.Order(),
		"edges": sg.Graph.EdgeCount(),
	}).Info("Seam graph built")

	opts := []flow.Option{flow.WithLogger(log)}
	if cfg.Search.Verbose {
		opts = append(opts, flow.WithVerbose())
	}
	if cfg.Search.Strategy == config.StrategyConcurrent {
		cs, err := flow.NewConcurrentSearch(cfg.SearchConfig())
		if err != nil {
			return err
		}
		defer cs.Close()
		opts = append(opts, flow.WithPathFinder(cs))
	}

	res, err := flow.EdmondsKarp(ctx, sg.Graph, sg.Source, sg.Sink, opts...)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	if res.Heuristic {
		log.Warnf("Depth-bounded search: max flow %d may be below the optimum", res.MaxFlow)
	}

	canvas, err := gridgraph.NewCanvas(sg.Width, sg.Height)
	if err != nil {
		return err
	}
	sides, err := gridgraph.Composite(sg, src, dst, canvas, cfg.Labeling())
	if err != nil {
		return fmt.Errorf("composite: %w", err)
	}
	logRegions(log, sg, sides)

	if err = imagefile.Save(cfg.Output, canvas.Image()); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"output":   cfg.Output,
		"max_flow": res.MaxFlow,
		"rounds":   res.Rounds,
		"elapsed":  time.Since(start).Round(time.Millisecond),
	}).Info("Composite written")

	return nil
}

// logRegions reports pixel and island counts for each side of the cut.
func logRegions(log logrus.FieldLogger, sg *gridgraph.SeamGraph, sides []gridgraph.Side) {
	counts := gridgraph.CountSides(sides)
	for _, side := range []gridgraph.Side{gridgraph.SideSource, gridgraph.SideSink, gridgraph.SideNone} {
		regions, err := sg.Regions(sides, side)
		if err != nil {
			log.Errorf("Regions for %s side: %v", side, err)
			continue
		}
		log.WithFields(logrus.Fields{
			"side":    side.String(),
			"pixels":  counts[side],
			"regions": len(regions),
		}).Info("Cut side")
	}
}

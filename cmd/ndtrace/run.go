package main

import (
	"context"
	"fmt"
	"log"

	"github.com/katalvlaran/ndtrace/config"
	"github.com/katalvlaran/ndtrace/lattice"
	"github.com/katalvlaran/ndtrace/render"
	"github.com/katalvlaran/ndtrace/runstore"
	"github.com/katalvlaran/ndtrace/scenario"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot/vg"
)

// outcome is the summary of one traced scenario.
type outcome struct {
	Label       string
	Steps       int
	ObstacleHit bool
	GoalReached bool
	State       lattice.State
	RunID       string
	Plots       []string
}

// loadScenarios reads the configured scenario file or falls back to the
// built-in table.
func loadScenarios(cfg *config.RunConfig) ([]scenario.Scenario, error) {
	if path := cfg.GetScenarios(); path != "" {
		return scenario.Load(path)
	}
	return scenario.Builtin(), nil
}

// run traces every scenario, each on its own Tracer, with at most
// cfg.GetWorkers() traversals in flight. Outcomes keep scenario order.
func run(ctx context.Context, cfg *config.RunConfig) ([]outcome, error) {
	list, err := loadScenarios(cfg)
	if err != nil {
		return nil, err
	}

	if d := cfg.GetTimeout(); d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	var store *runstore.Store
	if path := cfg.GetDatabase(); path != "" {
		store, err = runstore.Open(path)
		if err != nil {
			return nil, err
		}
		defer store.Close()
	}

	outcomes := make([]outcome, len(list))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.GetWorkers())
	for i, sc := range list {
		g.Go(func() error {
			o, err := traceOne(gctx, cfg, store, i, sc)
			if err != nil {
				return fmt.Errorf("scenario %q: %w", sc.Label, err)
			}
			outcomes[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return outcomes, nil
}

// traceOne runs scenario i of the list. Its plots are prefixed with the
// 1-based index, since distinct labels can share a slug.
func traceOne(ctx context.Context, cfg *config.RunConfig, store *runstore.Store, i int, sc scenario.Scenario) (outcome, error) {
	obstacles, err := sc.ObstacleSet()
	if err != nil {
		return outcome{}, err
	}

	res, err := lattice.Traverse(sc.Start, sc.Goal, obstacles,
		lattice.WithContext(ctx),
		lattice.WithMaxSteps(cfg.GetMaxSteps()),
	)
	if err != nil {
		return outcome{}, err
	}

	o := outcome{
		Label:       sc.Label,
		Steps:       res.Steps,
		ObstacleHit: res.ObstacleHit,
		GoalReached: res.GoalReached,
		State:       res.State,
	}
	log.Printf("%-42s dim=%d steps=%-3d obstacle_hit=%-5t goal_reached=%-5t state=%s",
		sc.Label, sc.Dim(), res.Steps, res.ObstacleHit, res.GoalReached, res.State)

	if cfg.GetRender() {
		frame := render.FromResult(sc.Start, sc.Goal, sc.Obstacles, res)
		name := fmt.Sprintf("%03d_%s", i+1, render.Slug(sc.Label))
		o.Plots, err = render.Save(frame, cfg.GetOutputDir(), name, sc.Label, vg.Points(cfg.GetImageSize()))
		if err != nil {
			return outcome{}, err
		}
	}

	if store != nil {
		r := runstore.RunFromResult(sc.Label, sc.Start, sc.Goal, sc.Obstacles, res)
		if err := store.Insert(r); err != nil {
			return outcome{}, err
		}
		o.RunID = r.RunID
	}

	return o, nil
}

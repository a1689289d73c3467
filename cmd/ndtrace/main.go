// Command ndtrace walks line segments through an N-dimensional unit lattice
// and reports, plots and archives the cells each segment crosses.
//
// Usage:
//
//	ndtrace [-config run.json] [-scenarios cases.yaml] [-out dir] [-db runs.db]
//	        [-workers n] [-render] [-max-steps n]
//
// Without -scenarios the built-in scenario table is traced. Flags override
// values from the -config file.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/ndtrace/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "JSON run configuration file")
		scenarios  = flag.String("scenarios", "", "YAML scenario file (default: built-in table)")
		outDir     = flag.String("out", "", "directory for rendered plots (default: plots)")
		database   = flag.String("db", "", "SQLite file to archive runs in")
		workers    = flag.Int("workers", 0, "parallel traversals (0: GOMAXPROCS)")
		doRender   = flag.Bool("render", false, "render PNG plots of every run")
		maxSteps   = flag.Int("max-steps", 0, "cap on boundary crossings per run (0: unlimited)")
	)
	flag.Parse()

	cfg := config.Empty()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	// Explicit flags win over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scenarios":
			cfg.Scenarios = scenarios
		case "out":
			cfg.OutputDir = outDir
		case "db":
			cfg.Database = database
		case "workers":
			cfg.Workers = workers
		case "render":
			cfg.Render = doRender
		case "max-steps":
			cfg.MaxSteps = maxSteps
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	outcomes, err := run(ctx, cfg)
	if err != nil {
		log.Fatalf("ndtrace: %v", err)
	}

	var hits, reached int
	for _, o := range outcomes {
		if o.ObstacleHit {
			hits++
		}
		if o.GoalReached {
			reached++
		}
	}
	log.Printf("traced %d scenarios: %d reached the goal, %d hit an obstacle", len(outcomes), reached, hits)
}

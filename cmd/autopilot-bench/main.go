// autopilot-bench plays headless autopilot games in parallel and reports results
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/scheduler"
	"github.com/lixenwraith/vi-snake/status"
)

type gameResult struct {
	seed    uint64
	outcome scheduler.Outcome
	timeout bool
}

func main() {
	games := flag.Int("games", 100, "number of games")
	workers := flag.Int("workers", 4, "games played in parallel")
	width := flag.Int("width", 20, "grid width")
	height := flag.Int("height", 20, "grid height")
	victory := flag.Int("victory", 50, "victory score")
	maxTicks := flag.Int("max-ticks", 20000, "tick limit per game")
	seed := flag.Uint64("seed", 1, "first seed, game i uses seed+i")
	verbose := flag.Bool("v", false, "log runs to stderr")
	flag.Parse()

	cfg := config.Default()
	cfg.Width, cfg.Height, cfg.VictoryScore = *width, *height, *victory
	cfg.Mode = config.ModeAuto
	cfg.OnEnd = config.EndExit
	cfg.Sound = false
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "autopilot-bench: %v\n", err)
		os.Exit(1)
	}

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "autopilot-bench: logger: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer logger.Sync()

	metrics := status.NewRegistry()
	start := time.Now()
	results := runAll(cfg, *games, *workers, *seed, *maxTicks, metrics, logger)
	report(results, metrics, time.Since(start))
}

// runAll plays games on a fixed pool of workers
func runAll(cfg *config.Config, games, workers int, seed uint64, maxTicks int, metrics *status.Registry, logger *zap.Logger) []gameResult {
	jobs := make(chan uint64)
	results := make([]gameResult, 0, games)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for w := 0; w < max(workers, 1); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range jobs {
				r := playGame(cfg, s, maxTicks, metrics, logger)
				mu.Lock()
				results = append(results, r)
				mu.Unlock()
			}
		}()
	}

	for i := 0; i < games; i++ {
		jobs <- seed + uint64(i)
	}
	close(jobs)
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].seed < results[j].seed })
	return results
}

// playGame runs one game to its end on a mock clock advanced by the tick interval
func playGame(cfg *config.Config, seed uint64, maxTicks int, metrics *status.Registry, logger *zap.Logger) gameResult {
	clock := engine.NewMockClock(time.Unix(0, 0))
	loop := scheduler.New(scheduler.Options{
		Config:  cfg,
		Clock:   engine.NewPausableClock(clock),
		Rand:    rand.New(rand.NewPCG(seed, seed^0xda3e39cb94b95bdb)),
		Metrics: metrics,
		Logger:  logger.With(zap.Uint64("seed", seed)),
	})

	for i := 0; i < maxTicks && !loop.Done(); i++ {
		loop.Step()
		clock.Advance(config.TickInterval(loop.TickRate()))
	}
	return gameResult{seed: seed, outcome: loop.Outcome(), timeout: !loop.Done()}
}

func report(results []gameResult, metrics *status.Registry, elapsed time.Duration) {
	var wins, deaths, timeouts, totalScore, totalTicks int
	best := 0
	for _, r := range results {
		switch {
		case r.timeout:
			timeouts++
		case r.outcome.Result == engine.Victory:
			wins++
		default:
			deaths++
		}
		totalScore += r.outcome.Score
		totalTicks += r.outcome.Ticks
		best = max(best, r.outcome.Score)
	}

	n := max(len(results), 1)
	fmt.Printf("games      %d (%s)\n", len(results), elapsed.Round(time.Millisecond))
	fmt.Printf("victories  %d\n", wins)
	fmt.Printf("deaths     %d\n", deaths)
	fmt.Printf("timeouts   %d\n", timeouts)
	fmt.Printf("avg score  %.2f (best %d)\n", float64(totalScore)/float64(n), best)
	fmt.Printf("avg ticks  %.1f\n", float64(totalTicks)/float64(n))

	snap := metrics.Snapshot()
	if planned := snap[status.AutopilotPlanned]; planned > 0 {
		fallbacks := snap[status.AutopilotFallbacks]
		fmt.Printf("fallbacks  %.2f%%\n", 100*fallbacks/(planned+fallbacks))
	}
}

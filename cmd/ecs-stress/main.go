//go:generate go run ./gen -components 16 -systems 8 -out generated.go

package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/craftecs/ecs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	settings, err := ParseSettings(cfg, flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid settings")
	}
	zerolog.SetGlobalLevel(settings.LogLevel)

	log.Info().Msg("Starting ECS stress test...")

	// 1. Setup manager and scheduler
	manager := ecs.NewEntityManager(
		ecs.WithLogger(log.Logger),
		ecs.WithInitialCapacity(settings.Entities),
	)
	scheduler := ecs.NewScheduler(manager)
	RegisterAllGeneratedSystems(scheduler)

	rng := rand.New(rand.NewSource(settings.Seed))
	mutator := NewMutator(manager, rng, settings.DirectRatio)

	// 2. Populate the manager with initial entities
	log.Info().Int("entities", settings.Entities).Msg("Populating manager...")
	for i := 0; i < settings.Entities; i++ {
		// Spawn an entity with 1 to 5 random components
		mutator.Spawn(rng.Intn(5) + 1)
	}
	log.Info().Msg("Population complete.")

	// 3. Run the simulation loop
	report := &Report{
		Duration:    settings.Duration,
		Entities:    settings.Entities,
		Components:  componentCount,
		Systems:     systemCount,
		Mutations:   settings.Mutations,
		DirectRatio: settings.DirectRatio,
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	report.HeapStart = mem.HeapAlloc

	log.Info().Dur("duration", settings.Duration).Msg("Running simulation...")
	ctx, cancel := context.WithTimeout(context.Background(), settings.Duration)
	defer cancel()

	startTime := time.Now()
	rebuilds := manager.CollectStats().Rebuilds
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			mutator.Step(settings.Mutations)

			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			scheduler.Once(float64(deltaTime) / float64(time.Second))
			updateDuration := time.Since(updateStart)

			after := manager.CollectStats().Rebuilds
			report.Frames.Record(updateDuration, after != rebuilds)
			rebuilds = after
		}
	}

	report.TotalTime = time.Since(startTime)
	report.FinalEntities = manager.GetEntityCount()
	report.DirectMutations = mutator.Direct
	report.ManagedMutations = mutator.Managed
	report.IndexMismatches = CheckIndex(manager)
	report.Index = manager.CollectStats()
	report.Scheduler = scheduler.GetStats()
	runtime.ReadMemStats(&mem)
	report.HeapEnd = mem.HeapAlloc

	log.Info().Msg("Simulation finished.")

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("Failed to generate report")
	}
	fmt.Println("--- End of Report ---")

	if report.IndexMismatches > 0 {
		ecsLogger := ecs.NewLogger(log.Logger)
		ecsLogger.LogIndex(manager, zerolog.ErrorLevel)
		log.Fatal().Int("mismatches", report.IndexMismatches).Msg("component index disagrees with entity scan")
	}

	log.Info().Msg("Stress test complete.")
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/ttn-nguyen42/linkedlist/config"
	"github.com/ttn-nguyen42/linkedlist/logger"
	"github.com/ttn-nguyen42/linkedlist/scenario"
	"github.com/ttn-nguyen42/linkedlist/util"
)

func main() {
	envErr := godotenv.Load()
	cfg := config.Load()

	var path string
	flag.StringVar(&path, "scenario", cfg.ScenarioPath, "Scenario file to replay, built-in scenarios when empty")

	var kind string
	flag.StringVar(&kind, "kind", cfg.Kind, "Force every scenario onto 'singly', 'doubly' or 'both'")

	var level string
	flag.StringVar(&level, "log-level", cfg.LogLevel, "Log level")

	var stopOnFailure bool
	flag.BoolVar(&stopOnFailure, "stop-on-failure", cfg.StopOnFailure, "Stop a scenario at its first failing step")

	flag.Parse()

	log := logger.NewConsole(level)
	if envErr != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	ctx := util.CancelOnSignal(context.Background(), &log)

	passed, err := run(ctx, &log, path, kind, stopOnFailure)
	if err != nil {
		log.Error().Err(err).Msg("Run aborted")
		os.Exit(1)
	}
	if !passed {
		os.Exit(1)
	}
}

func run(ctx context.Context, log *zerolog.Logger, path, kind string, stopOnFailure bool) (bool, error) {
	file, err := loadScenarios(path)
	if err != nil {
		return false, err
	}
	if len(kind) > 0 {
		for i := range file.Scenarios {
			file.Scenarios[i].Kind = kind
		}
		if err := file.Validate(); err != nil {
			return false, err
		}
	}

	opts := []scenario.Option{scenario.WithLogger(log)}
	if stopOnFailure {
		opts = append(opts, scenario.WithStopOnFailure())
	}
	runner := scenario.NewRunner(opts...)
	log.Info().Str("run_id", runner.RunID()).Int("scenarios", len(file.Scenarios)).Msg("Starting run")

	reports, err := runner.RunFile(ctx, file)
	if err != nil {
		return false, err
	}

	passed := true
	for i := range reports {
		rep := &reports[i]
		status := "PASS"
		if !rep.Passed() {
			status = "FAIL"
			passed = false
		}
		fmt.Printf("%s %s/%s %v\n", status, rep.Scenario, rep.Kind, rep.Final)
		for _, f := range rep.Failures {
			fmt.Printf("    step %d (%s): %s\n", f.Step, f.Op, f.Reason)
		}
	}
	return passed, nil
}

func loadScenarios(path string) (*scenario.File, error) {
	if len(path) == 0 {
		return scenario.Default()
	}
	return scenario.LoadFile(path)
}

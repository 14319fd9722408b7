package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/zeusync/duckpond/internal/config"
	"github.com/zeusync/duckpond/internal/core/behavior"
	"github.com/zeusync/duckpond/internal/core/duck"
	"github.com/zeusync/duckpond/internal/core/flock"
	"github.com/zeusync/duckpond/internal/core/observability/log"
	"github.com/zeusync/duckpond/internal/injector"
)

// set via ldflags
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("pond", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "YAML config file")
	rosterPath := fs.String("roster", "", "roster file (YAML or JSON); overrides roster.path")
	output := fs.String("output", "", "effect output: stdout or bus; overrides output.mode")
	skipDemo := fs.Bool("no-demo", false, "skip the built-in walkthrough")
	showVersion := fs.Bool("version", false, "show version")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stderr, "pond %s\n", version)
		return 0
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if *rosterPath != "" {
		cfg.Roster.Path = *rosterPath
	}
	if *output != "" {
		cfg.Output.Mode = *output
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid config: %v\n", err)
		return 1
	}

	pond, err := injector.InitializePond(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to initialize: %v\n", err)
		return 1
	}
	logger := pond.Logger
	defer func() { _ = logger.Sync() }()

	if !*skipDemo {
		if err := walkthrough(pond.Sink, logger); err != nil {
			logger.Error("walkthrough failed", log.Error(err))
			return 1
		}
	}

	if cfg.Roster.Path == "" {
		return 0
	}
	if err := performRoster(cfg.Roster.Path, pond, logger); err != nil {
		logger.Error("roster failed", log.String("path", cfg.Roster.Path), log.Error(err))
		return 1
	}
	return 0
}

// walkthrough replays the rubber duck rebind and the function-valued duck.
func walkthrough(out behavior.Sink, logger log.Log) error {
	rubber := duck.NewRubber(out, duck.WithLogger(logger))
	rubber.PerformQuack()
	rubber.PerformFly()

	if err := rubber.SetQuackBehavior(behavior.NewQuack(out)); err != nil {
		return err
	}
	if err := rubber.SetFlyBehavior(behavior.NewFlyWithWings(out)); err != nil {
		return err
	}
	rubber.PerformQuack()
	rubber.PerformFly()

	quacks, flies := duck.QuackFuncs(out), duck.FlyFuncs(out)
	pretty, err := duck.Create("예쁜", quacks[behavior.QuackName], flies[behavior.WithWingsName], out)
	if err != nil {
		return err
	}
	pretty.Display()
	pretty.Quack()
	pretty.Fly()
	return nil
}

func performRoster(path string, pond *injector.Pond, logger log.Log) error {
	ro, err := flock.LoadFile(path)
	if err != nil {
		return err
	}
	ducks, err := ro.Build(pond.Registry, pond.Sink, logger)
	if err != nil {
		return err
	}

	flock.PerformAll(ducks)

	for _, g := range flock.Census(ducks) {
		logger.Info("composition",
			log.String("quack", g.Quack),
			log.String("fly", g.Fly),
			log.Strings("ducks", g.Ducks),
		)
	}
	return nil
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/turing/internal/config"
	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/pkg/adapters/file"
	"github.com/aretw0/turing/pkg/adapters/memory"
	"github.com/aretw0/turing/pkg/adapters/redis"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/problems"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// app is what every command needs, resolved from env and flags.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	reg    *problems.Registry
	// suite holds the problems loaded from --suite, in file order.
	suite []problems.Problem
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
	if flags.Changed("max-steps") {
		cfg.MaxSteps, _ = flags.GetInt("max-steps")
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:    cfg,
		logger: logging.NewWithWriter(os.Stderr, format, level),
		reg:    problems.Builtin(),
	}

	if path, _ := flags.GetString("suite"); path != "" {
		suite, err := file.LoadSuite(path)
		if err != nil {
			return nil, err
		}
		for _, p := range suite {
			if err := a.reg.Register(p); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
		a.suite = suite
		a.logger.Debug("suite loaded", "path", path, "problems", len(suite))
	}

	return a, nil
}

// store returns the Redis report store when TM_REDIS_ADDR is set and an
// in-memory one otherwise. The closer must be called on exit.
func (a *app) store() (ports.ReportStore, func() error) {
	rc := a.cfg.Redis
	if rc.Addr == "" {
		return memory.NewStore(), func() error { return nil }
	}
	s := redis.New(rc.Addr, rc.Password, rc.DB, redis.WithTTL(rc.TTL))
	a.logger.Info("using redis report store", "addr", rc.Addr, "db", rc.DB)
	return s, s.Close
}

// selectProblems resolves names, defaulting to the suite when one is loaded
// and to every registered problem otherwise.
func (a *app) selectProblems(names []string) ([]problems.Problem, error) {
	if len(names) == 0 {
		if a.suite != nil {
			return a.suite, nil
		}
		return a.reg.List(), nil
	}

	out := make([]problems.Problem, 0, len(names))
	for _, name := range names {
		p, err := a.reg.Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

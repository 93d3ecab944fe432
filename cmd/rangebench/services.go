package main

import (
	"fmt"

	"github.com/samber/do/v2"
	"github.com/zoobzio/clockz"
	"go.uber.org/zap"

	"rangekit/bench"
	"rangekit/internal/config"
	"rangekit/internal/logger"
)

// newInjector wires the services a command needs. override, if set, adjusts
// the loaded configuration before anything else sees it.
func newInjector(dir string, override func(*config.Config)) do.Injector {
	i := do.New()

	do.Provide(i, func(do.Injector) (*config.Config, error) {
		cfg, err := config.LoadConfig(dir)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		if override != nil {
			override(cfg)
		}
		return cfg, nil
	})

	do.Provide(i, func(i do.Injector) (*zap.Logger, error) {
		cfg, err := do.Invoke[*config.Config](i)
		if err != nil {
			return nil, err
		}
		l, err := logger.New(&cfg.Log)
		if err != nil {
			return nil, fmt.Errorf("init logger: %w", err)
		}
		return l, nil
	})

	do.Provide(i, func(i do.Injector) (*bench.Runner, error) {
		cfg, err := do.Invoke[*config.Config](i)
		if err != nil {
			return nil, err
		}
		return bench.NewRunner(clockz.RealClock, cfg.Bench.Runs), nil
	})

	return i
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/km-arc/go-beans/demo"
	"github.com/km-arc/go-beans/framework/app"
	"github.com/km-arc/go-beans/framework/config"
	"github.com/km-arc/go-beans/framework/container"
	"github.com/km-arc/go-beans/framework/logging"
)

func main() {
	configPath := flag.String("config", os.Getenv("BEANS_CONFIG"), "path to a TOML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	logCfg := logging.DefaultConfig(logging.ProfileRuntime)
	if lvl, ok := logging.ParseLevel(cfg.Log.Level); ok {
		logCfg.Level = lvl
	}
	logCfg.NoColor = logCfg.NoColor || cfg.Log.NoColor
	log := logging.New(cfg.App.Name, logCfg)

	application := app.New(cfg, log)

	c, err := application.Boot()
	if err != nil {
		log.Error().Err(err).Msg("boot failed")
		return err
	}

	if consumer, ok := container.Resolve[*demo.Consumer](c); ok {
		log.Info().Str("result", consumer.Run("world")).Msg("demo consumer")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return application.Run(ctx)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load(), nil
	}
	return config.LoadFile(path)
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/2beens/liftstats/internal"
	"github.com/2beens/liftstats/internal/config"
	"github.com/2beens/liftstats/internal/logging"
	"github.com/2beens/liftstats/pkg"

	log "github.com/sirupsen/logrus"
)

const (
	configPath = "./config.toml"
	envVarName = "LIFTSTATS_ENV"
)

func main() {
	log.SetOutput(os.Stderr)

	cfg, err := loadConfig()
	if err != nil {
		log.Errorf("load config: %s", err)
		os.Exit(1)
	}

	closeLogs := logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.LogsPath,
		LogToStdout:   cfg.LogToStdout,
		Console:       os.Stderr, // stdout carries the answers
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogFormatJSON,
		Environment:   cfg.Environment,
	})

	if err := run(context.Background(), cfg); err != nil {
		log.Errorf("liftstats: %s", err)
		closeLogs()
		os.Exit(1)
	}
	closeLogs()
}

func run(ctx context.Context, cfg *config.Config) error {
	st, err := internal.SetupStats(ctx, cfg, nil)
	if err != nil {
		return err
	}

	result, err := st.Answerer.Answer(ctx)
	if err != nil {
		return fmt.Errorf("answer questions: %w", err)
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	_, err = fmt.Fprintln(os.Stdout, string(resultJson))
	return err
}

// loadConfig reads ./config.toml when present, falling back to defaults.
func loadConfig() (*config.Config, error) {
	exists, err := pkg.PathExists(configPath, false)
	if err != nil {
		return nil, err
	}
	if !exists {
		return config.Default(), nil
	}

	env := os.Getenv(envVarName)
	if env == "" {
		env = "development"
	}
	return config.Load(env, configPath)
}

package main

import (
	"github.com/fgeck/awdl-guard/internal/config"
	"github.com/fgeck/awdl-guard/internal/models"
	"github.com/rs/zerolog/log"
)

// loadConfig loads the optional config file, falling back to compiled-in
// defaults when --config is not given.
func loadConfig() (*models.GuardConfig, error) {
	if configFile == "" {
		cfg := config.Defaults()
		log.Debug().
			Str("interface", cfg.Interface).
			Dur("poll_interval", cfg.PollInterval).
			Msg("no config file given, using defaults")
		return cfg, nil
	}

	parser := config.NewParser()
	cfg, err := parser.LoadFile(configFile)
	if err != nil {
		log.Error().Err(err).Str("file", configFile).Msg("failed to load config")
		return nil, err
	}

	log.Debug().
		Str("config", configFile).
		Str("interface", cfg.Interface).
		Dur("poll_interval", cfg.PollInterval).
		Msg("configuration loaded")

	return cfg, nil
}

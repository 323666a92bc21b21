package main

import (
	"fmt"
	"os"

	"github.com/fgeck/awdl-guard/internal/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration file",
	Long:  `Validate the configuration file without touching any interface.`,
	RunE:  validateConfig,
}

func validateConfig(cmd *cobra.Command, args []string) error {
	if configFile == "" {
		log.Error().Msg("config file is required")
		return cmd.Help()
	}

	// Check if file exists
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		log.Error().Str("file", configFile).Msg("config file not found")
		return fmt.Errorf("config file not found: %s", configFile)
	}

	parser := config.NewParser()
	cfg, err := parser.LoadFile(configFile)
	if err != nil {
		log.Error().Err(err).Str("file", configFile).Msg("failed to parse config")
		return err
	}

	if err := config.Validate(cfg); err != nil {
		log.Error().Err(err).Msg("configuration validation failed")
		return err
	}

	fmt.Println("Configuration is valid!")
	fmt.Println()
	fmt.Println("Summary:")
	fmt.Printf("  Interface: %s\n", cfg.Interface)
	fmt.Printf("  Poll interval: %s\n", cfg.PollInterval)
	if cfg.CommandTimeout > 0 {
		fmt.Printf("  Command timeout: %s\n", cfg.CommandTimeout)
	} else {
		fmt.Printf("  Command timeout: disabled\n")
	}
	fmt.Printf("  Ifconfig path: %s\n", cfg.IfconfigPath)

	return nil
}

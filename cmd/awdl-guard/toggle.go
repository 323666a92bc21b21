package main

import (
	"context"

	"github.com/fgeck/awdl-guard/internal/services/ifconfig"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Bring the interface administratively down once",
	Long:  `Bring the interface down once and exit. Requires root privileges.`,
	RunE:  bringDown,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Bring the interface back up",
	Long: `Bring the interface back up and exit, undoing the guard's work.
Requires root privileges.`,
	RunE: bringUp,
}

func bringDown(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	svc := ifconfig.New(log.Logger)
	if err := svc.Down(context.Background(), *cfg); err != nil {
		log.Error().Err(err).Str("interface", cfg.Interface).Msg("failed to bring interface down")
		return err
	}

	log.Info().Str("interface", cfg.Interface).Msg("interface disabled")
	return nil
}

func bringUp(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	svc := ifconfig.New(log.Logger)
	if err := svc.Up(context.Background(), *cfg); err != nil {
		log.Error().Err(err).Str("interface", cfg.Interface).Msg("failed to bring interface up")
		return err
	}

	log.Info().Str("interface", cfg.Interface).Msg("interface enabled")
	return nil
}

package main

import (
	"context"
	"fmt"

	"github.com/fgeck/awdl-guard/internal/services/ifconfig"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the current interface state",
	Long:  `Query the interface once and print its state without changing anything.`,
	RunE:  printStatus,
}

func printStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	svc := ifconfig.New(log.Logger)
	state, err := svc.Status(context.Background(), *cfg)
	if err != nil {
		log.Error().Err(err).Str("interface", cfg.Interface).Msg("status query failed")
		return err
	}

	fmt.Printf("%s: %s\n", cfg.Interface, state)
	return nil
}

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/fgeck/awdl-guard/internal/services/guard"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interface guard loop",
	Long: `Run the guard loop: poll the interface at a fixed interval and
bring it administratively down whenever it is observed active. Runs
until interrupted (Ctrl+C or SIGTERM).`,
	RunE: runGuard,
}

func runGuard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Set up context with signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Warn().Str("signal", sig.String()).Msg("received signal, shutting down")
		cancel()
	}()

	guardSvc := guard.New(log.Logger)
	if err := guardSvc.Run(ctx, *cfg); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info().Msg("guard stopped")
			return nil
		}
		log.Error().Err(err).Msg("guard failed")
		return err
	}

	return nil
}

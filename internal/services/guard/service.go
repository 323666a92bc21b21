// Package guard implements the reactivation guard: a polling loop that keeps
// a network interface administratively down whenever the OS brings it back up.
package guard

import (
	"context"
	"time"

	"github.com/fgeck/awdl-guard/internal/models"
	"github.com/fgeck/awdl-guard/internal/services/ifconfig"
	"github.com/rs/zerolog"
)

// Service defines the interface for the guard loop.
type Service interface {
	Run(ctx context.Context, cfg models.GuardConfig) error
	PollOnce(ctx context.Context, cfg models.GuardConfig) models.Observation
}

// Impl implements the guard Service interface.
type Impl struct {
	ifconfigSvc ifconfig.Service
	logger      zerolog.Logger
}

// New creates a new guard service.
func New(logger zerolog.Logger) *Impl {
	return &Impl{
		ifconfigSvc: ifconfig.New(logger),
		logger:      logger,
	}
}

// NewWithService creates a new guard service with a custom ifconfig service (for testing).
func NewWithService(logger zerolog.Logger, ifconfigSvc ifconfig.Service) *Impl {
	return &Impl{
		ifconfigSvc: ifconfigSvc,
		logger:      logger,
	}
}

// PollOnce performs exactly one sample-and-react cycle. A failed status query
// counts as inactive and never aborts the caller's loop; a failed deactivation
// is logged and otherwise ignored. Every active sample triggers a deactivation,
// with no suppression of repeats.
func (s *Impl) PollOnce(ctx context.Context, cfg models.GuardConfig) models.Observation {
	obs := models.Observation{
		Interface: cfg.Interface,
		SampledAt: time.Now(),
	}

	state, err := s.ifconfigSvc.Status(ctx, cfg)
	if err != nil {
		// Interface missing, binary unavailable, permission issue: all
		// expected, all treated as "not active".
		s.logger.Debug().Err(err).Str("interface", cfg.Interface).Msg("status query failed, treating as inactive")
		obs.State = models.StateInactive
		return obs
	}
	obs.State = state

	if state != models.StateActive {
		return obs
	}

	s.logger.Info().Str("interface", cfg.Interface).Msg("interface active, disabling")

	if err := s.ifconfigSvc.Down(ctx, cfg); err != nil {
		s.logger.Warn().Err(err).Str("interface", cfg.Interface).Msg("failed to disable interface")
	} else {
		s.logger.Info().Str("interface", cfg.Interface).Msg("interface disabled")
	}
	obs.Deactivated = true

	return obs
}

// Run polls the interface until the context is cancelled. There is no other
// exit condition; the returned error is always the context's.
func (s *Impl) Run(ctx context.Context, cfg models.GuardConfig) error {
	s.logger.Info().
		Str("interface", cfg.Interface).
		Dur("poll_interval", cfg.PollInterval).
		Msg("guarding interface, press Ctrl+C to stop")

	for {
		s.PollOnce(ctx, cfg)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(cfg.PollInterval):
		}
	}
}

// Package ifconfig wraps the OS ifconfig binary for querying and toggling
// network interfaces.
package ifconfig

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/fgeck/awdl-guard/internal/models"
	"github.com/rs/zerolog"
)

// Service defines the interface for interface-state operations.
type Service interface {
	Status(ctx context.Context, cfg models.GuardConfig) (models.InterfaceState, error)
	Down(ctx context.Context, cfg models.GuardConfig) error
	Up(ctx context.Context, cfg models.GuardConfig) error
}

// CommandExecutor allows mocking exec.Command in tests.
type CommandExecutor interface {
	Execute(ctx context.Context, name string, args ...string) ([]byte, error)
}

// DefaultExecutor is the default command executor using os/exec.
type DefaultExecutor struct{}

// Execute runs a command and returns its combined output.
func (e *DefaultExecutor) Execute(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.CombinedOutput()
}

// Impl implements the Service interface.
type Impl struct {
	executor CommandExecutor
	logger   zerolog.Logger
}

// New creates a new ifconfig service.
func New(logger zerolog.Logger) *Impl {
	return &Impl{
		executor: &DefaultExecutor{},
		logger:   logger,
	}
}

// NewWithExecutor creates a new ifconfig service with a custom executor (for testing).
func NewWithExecutor(logger zerolog.Logger, executor CommandExecutor) *Impl {
	return &Impl{
		executor: executor,
		logger:   logger,
	}
}

// Status queries the current state of the configured interface. A failed
// query (interface absent, binary missing, insufficient privilege) returns
// StateInactive alongside the error; callers decide whether to surface it.
func (s *Impl) Status(ctx context.Context, cfg models.GuardConfig) (models.InterfaceState, error) {
	output, err := s.run(ctx, cfg, cfg.Interface)
	if err != nil {
		return models.StateInactive, fmt.Errorf("querying %s: %w", cfg.Interface, err)
	}

	return ParseStatus(output), nil
}

// Down brings the configured interface administratively down.
func (s *Impl) Down(ctx context.Context, cfg models.GuardConfig) error {
	output, err := s.run(ctx, cfg, cfg.Interface, "down")
	if err != nil {
		return fmt.Errorf("bringing %s down: %w, output: %s", cfg.Interface, err, strings.TrimSpace(string(output)))
	}

	s.logger.Debug().Str("interface", cfg.Interface).Msg("interface brought down")
	return nil
}

// Up brings the configured interface back up.
func (s *Impl) Up(ctx context.Context, cfg models.GuardConfig) error {
	output, err := s.run(ctx, cfg, cfg.Interface, "up")
	if err != nil {
		return fmt.Errorf("bringing %s up: %w, output: %s", cfg.Interface, err, strings.TrimSpace(string(output)))
	}

	s.logger.Debug().Str("interface", cfg.Interface).Msg("interface brought up")
	return nil
}

func (s *Impl) run(ctx context.Context, cfg models.GuardConfig, args ...string) ([]byte, error) {
	if cfg.CommandTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.CommandTimeout)
		defer cancel()
	}

	start := time.Now()
	output, err := s.executor.Execute(ctx, cfg.IfconfigPath, args...)
	s.logger.Trace().
		Strs("args", args).
		Dur("duration", time.Since(start)).
		Err(err).
		Msg("ifconfig executed")

	return output, err
}

// ParseStatus maps ifconfig output to an interface state. Only an explicit
// "status: active" line counts as active; everything else, including output
// with no status line at all, is inactive.
func ParseStatus(output []byte) models.InterfaceState {
	if strings.Contains(strings.ToLower(string(output)), "status: active") {
		return models.StateActive
	}
	return models.StateInactive
}

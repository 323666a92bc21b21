// Package config provides configuration file parsing.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fgeck/awdl-guard/internal/models"
	"github.com/spf13/viper"
)

// Defaults applied when a key is absent from the config file (or when no
// config file is given at all).
const (
	DefaultInterface      = "awdl0"
	DefaultPollInterval   = 5 * time.Second
	DefaultCommandTimeout = 10 * time.Second
	DefaultIfconfigPath   = "ifconfig"
)

// Parser handles configuration file parsing.
type Parser struct {
	v *viper.Viper
}

// NewParser creates a new configuration parser.
func NewParser() *Parser {
	v := viper.New()
	v.SetConfigType("yaml")
	return &Parser{v: v}
}

// Defaults returns the compiled-in configuration used when no config file
// is provided.
func Defaults() *models.GuardConfig {
	return &models.GuardConfig{
		Interface:      DefaultInterface,
		PollInterval:   DefaultPollInterval,
		CommandTimeout: DefaultCommandTimeout,
		IfconfigPath:   DefaultIfconfigPath,
	}
}

// LoadFile loads configuration from a file path.
func (p *Parser) LoadFile(path string) (*models.GuardConfig, error) {
	p.v.SetConfigFile(path)

	if err := p.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return p.parse()
}

// LoadReader loads configuration from a reader (useful for testing).
func (p *Parser) LoadReader(content string) (*models.GuardConfig, error) {
	if err := p.v.ReadConfig(strings.NewReader(content)); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	return p.parse()
}

func (p *Parser) parse() (*models.GuardConfig, error) {
	cfg := &models.GuardConfig{
		Interface:    p.v.GetString("guard.interface"),
		PollInterval: p.v.GetDuration("guard.poll_interval"),
		IfconfigPath: p.v.GetString("guard.ifconfig_path"),
	}

	// Set defaults.
	if cfg.Interface == "" {
		cfg.Interface = DefaultInterface
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.IfconfigPath == "" {
		cfg.IfconfigPath = DefaultIfconfigPath
	}

	// command_timeout: 0 is meaningful (no timeout), so only default the
	// key when it is absent.
	if p.v.IsSet("guard.command_timeout") {
		cfg.CommandTimeout = p.v.GetDuration("guard.command_timeout")
	} else {
		cfg.CommandTimeout = DefaultCommandTimeout
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate performs validation on the loaded configuration.
func Validate(cfg *models.GuardConfig) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	if cfg.Interface == "" {
		return fmt.Errorf("guard.interface is required")
	}
	if strings.ContainsAny(cfg.Interface, " \t") {
		return fmt.Errorf("guard.interface must not contain whitespace")
	}

	if cfg.PollInterval <= 0 {
		return fmt.Errorf("guard.poll_interval must be greater than zero")
	}

	if cfg.CommandTimeout < 0 {
		return fmt.Errorf("guard.command_timeout must not be negative")
	}

	if cfg.IfconfigPath == "" {
		return fmt.Errorf("guard.ifconfig_path is required")
	}

	return nil
}

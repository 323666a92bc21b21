package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fgeck/awdl-guard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_LoadReader_EmptyConfig(t *testing.T) {
	parser := NewParser()
	cfg, err := parser.LoadReader("")

	require.NoError(t, err)
	// Check defaults
	assert.Equal(t, "awdl0", cfg.Interface)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
	assert.Equal(t, 10*time.Second, cfg.CommandTimeout)
	assert.Equal(t, "ifconfig", cfg.IfconfigPath)
}

func TestParser_LoadReader_FullConfig(t *testing.T) {
	yaml := `
guard:
  interface: "awdl1"
  poll_interval: 2s
  command_timeout: 30s
  ifconfig_path: "/sbin/ifconfig"
`
	parser := NewParser()
	cfg, err := parser.LoadReader(yaml)

	require.NoError(t, err)
	assert.Equal(t, "awdl1", cfg.Interface)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
	assert.Equal(t, 30*time.Second, cfg.CommandTimeout)
	assert.Equal(t, "/sbin/ifconfig", cfg.IfconfigPath)
}

func TestParser_LoadReader_ZeroTimeoutDisablesIt(t *testing.T) {
	yaml := `
guard:
  command_timeout: 0s
`
	parser := NewParser()
	cfg, err := parser.LoadReader(yaml)

	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.CommandTimeout)
}

func TestParser_LoadReader_InvalidInterval(t *testing.T) {
	yaml := `
guard:
  poll_interval: -3s
`
	parser := NewParser()
	_, err := parser.LoadReader(yaml)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "poll_interval")
}

func TestParser_LoadFile(t *testing.T) {
	yaml := `
guard:
  interface: "awdl0"
  poll_interval: 1s
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	parser := NewParser()
	cfg, err := parser.LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, "awdl0", cfg.Interface)
	assert.Equal(t, time.Second, cfg.PollInterval)
}

func TestParser_LoadFile_NotFound(t *testing.T) {
	parser := NewParser()
	_, err := parser.LoadFile("/nonexistent/config.yaml")

	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *models.GuardConfig
		wantErr string
	}{
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: "configuration is nil",
		},
		{
			name: "valid",
			cfg: &models.GuardConfig{
				Interface:    "awdl0",
				PollInterval: 5 * time.Second,
				IfconfigPath: "ifconfig",
			},
		},
		{
			name: "missing interface",
			cfg: &models.GuardConfig{
				PollInterval: 5 * time.Second,
				IfconfigPath: "ifconfig",
			},
			wantErr: "guard.interface is required",
		},
		{
			name: "interface with whitespace",
			cfg: &models.GuardConfig{
				Interface:    "awdl0 down",
				PollInterval: 5 * time.Second,
				IfconfigPath: "ifconfig",
			},
			wantErr: "whitespace",
		},
		{
			name: "zero poll interval",
			cfg: &models.GuardConfig{
				Interface:    "awdl0",
				IfconfigPath: "ifconfig",
			},
			wantErr: "guard.poll_interval",
		},
		{
			name: "negative command timeout",
			cfg: &models.GuardConfig{
				Interface:      "awdl0",
				PollInterval:   5 * time.Second,
				CommandTimeout: -time.Second,
				IfconfigPath:   "ifconfig",
			},
			wantErr: "guard.command_timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	require.NoError(t, Validate(cfg))
	assert.Equal(t, "awdl0", cfg.Interface)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
}

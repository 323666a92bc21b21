// Package models contains the data structures used throughout awdl-guard.
package models

import "time"

// GuardConfig holds the complete configuration for the interface guard.
type GuardConfig struct {
	// Interface is the name of the interface to keep down, e.g. "awdl0".
	Interface string

	// PollInterval is the time between status samples.
	PollInterval time.Duration

	// CommandTimeout bounds each ifconfig invocation. Zero disables the
	// timeout; the underlying call then runs unbounded.
	CommandTimeout time.Duration

	// IfconfigPath is the ifconfig binary to invoke. Resolved via $PATH
	// when not absolute.
	IfconfigPath string
}

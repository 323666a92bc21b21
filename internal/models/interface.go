package models

import "time"

// InterfaceState is the observed state of a network interface.
type InterfaceState string

const (
	// StateActive means ifconfig reported "status: active".
	StateActive InterfaceState = "active"

	// StateInactive covers every other outcome, including a missing
	// interface or a failed query.
	StateInactive InterfaceState = "inactive"
)

// Observation is a single poll sample. One is created per cycle and
// discarded; no history is kept.
type Observation struct {
	Interface   string
	State       InterfaceState
	SampledAt   time.Time
	Deactivated bool // true if this cycle issued the down command
}

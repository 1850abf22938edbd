package daqmx

import "fmt"

// TaskState mirrors the driver's task state machine as far as this client
// has driven it. The driver stays authoritative.
type TaskState int

const (
	StateUnverified TaskState = iota
	StateVerified
	StateReserved
	StateCommitted
	StateRunning
	StateDone
)

func (s TaskState) String() string {
	switch s {
	case StateUnverified:
		return "UNVERIFIED"
	case StateVerified:
		return "VERIFIED"
	case StateReserved:
		return "RESERVED"
	case StateCommitted:
		return "COMMITTED"
	case StateRunning:
		return "RUNNING"
	case StateDone:
		return "DONE"
	default:
		return "UNKNOWN"
	}
}

// ValidateTransition reports whether the driver can move a task from one
// state to another. Configuration changes return any idle state to
// unverified; stopping returns a running or done task to the state it was
// started from.
func ValidateTransition(from, to TaskState) error {
	validTransitions := map[TaskState][]TaskState{
		StateUnverified: {StateVerified, StateReserved, StateCommitted, StateRunning},
		StateVerified:   {StateUnverified, StateReserved, StateCommitted, StateRunning},
		StateReserved:   {StateUnverified, StateVerified, StateCommitted, StateRunning},
		StateCommitted:  {StateUnverified, StateVerified, StateReserved, StateRunning},
		StateRunning:    {StateDone, StateVerified, StateReserved, StateCommitted},
		StateDone:       {StateVerified, StateReserved, StateCommitted, StateRunning},
	}

	allowed, exists := validTransitions[from]
	if !exists {
		return fmt.Errorf("invalid current state: %s", from)
	}

	for _, validTo := range allowed {
		if validTo == to {
			return nil
		}
	}

	return fmt.Errorf("invalid state transition: %s -> %s", from, to)
}

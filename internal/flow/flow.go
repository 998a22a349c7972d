// Package flow models the lifecycle of a single async user action (login,
// booking, door unlock, page load) as a small explicit state machine.
package flow

import "fmt"

type State int

const (
	Idle State = iota
	Pending
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Action tracks one async operation. The zero value is ready to use (Idle).
// Action is not goroutine-safe; callers coordinating across goroutines hold
// their own lock, the way the explorer does.
type Action struct {
	state State
	err   error
}

func (a *Action) State() State { return a.state }
func (a *Action) Err() error   { return a.err }

// InFlight reports whether the action is currently pending.
func (a *Action) InFlight() bool { return a.state == Pending }

// Start moves the action into Pending. Starting an already-pending action is
// rejected so double-submits surface as errors instead of duplicated work.
func (a *Action) Start() error {
	if a.state == Pending {
		return fmt.Errorf("flow: action already pending")
	}
	a.state = Pending
	a.err = nil
	return nil
}

// Succeed settles a pending action.
func (a *Action) Succeed() error {
	if a.state != Pending {
		return fmt.Errorf("flow: cannot succeed from %s", a.state)
	}
	a.state = Succeeded
	return nil
}

// Fail settles a pending action with its cause.
func (a *Action) Fail(cause error) error {
	if a.state != Pending {
		return fmt.Errorf("flow: cannot fail from %s", a.state)
	}
	a.state = Failed
	a.err = cause
	return nil
}

// Reset returns the action to Idle from any state.
func (a *Action) Reset() {
	a.state = Idle
	a.err = nil
}

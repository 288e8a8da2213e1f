package flight

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// InvalidState converts a rejected guard into an InvalidStateError for operation.
func (r GuardResult) InvalidState(operation string) error {
	if r.Allowed {
		return nil
	}
	return NewInvalidStateError(operation, r.Reason)
}

// CanStartChecks evaluates whether pre-launch checks may begin.
// Rule: checks run once, from PRE_LAUNCH.
func CanStartChecks(status MissionStatus) GuardResult {
	if status != StatusPreLaunch {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("pre-launch checks require status %s (current: %s)", StatusPreLaunch, status),
		}
	}
	return GuardResult{Allowed: true}
}

// CanLaunch evaluates whether the rocket may lift off.
// Rule: only a rocket that passed its checks can launch.
func CanLaunch(status MissionStatus) GuardResult {
	if status != StatusReadyToLaunch {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("launch requires status %s (current: %s)", StatusReadyToLaunch, status),
		}
	}
	return GuardResult{Allowed: true}
}

// CanAdvanceTime evaluates whether simulated time may advance.
// Rule: time only advances in flight; terminal states are frozen.
func CanAdvanceTime(status MissionStatus) GuardResult {
	if status != StatusInFlight {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("advancing time requires status %s (current: %s)", StatusInFlight, status),
		}
	}
	return GuardResult{Allowed: true}
}

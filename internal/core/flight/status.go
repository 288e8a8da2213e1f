// Package flight contains the pure business logic for the launch simulator.
// This is part of the Functional Core - no I/O, only pure functions.
package flight

// MissionStatus represents the possible states of a mission.
type MissionStatus string

const (
	StatusPreLaunch        MissionStatus = "PRE_LAUNCH"
	StatusChecksInProgress MissionStatus = "CHECKS_IN_PROGRESS"
	StatusReadyToLaunch    MissionStatus = "READY_TO_LAUNCH"
	StatusInFlight         MissionStatus = "IN_FLIGHT"
	StatusOrbitAchieved    MissionStatus = "ORBIT_ACHIEVED"
	StatusMissionFailed    MissionStatus = "MISSION_FAILED"
)

// IsTerminal reports whether no operation can move the mission out of this status.
func (s MissionStatus) IsTerminal() bool {
	return s == StatusOrbitAchieved || s == StatusMissionFailed
}

// Ordinal returns a stable numeric code for the status, used by gauges.
func (s MissionStatus) Ordinal() int {
	switch s {
	case StatusPreLaunch:
		return 0
	case StatusChecksInProgress:
		return 1
	case StatusReadyToLaunch:
		return 2
	case StatusInFlight:
		return 3
	case StatusOrbitAchieved:
		return 4
	case StatusMissionFailed:
		return 5
	default:
		return -1
	}
}

// InitialStatus returns the status of a freshly assembled rocket.
func InitialStatus() MissionStatus {
	return StatusPreLaunch
}

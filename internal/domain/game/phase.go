package game

// Phase represents the current stage of a game session
type Phase string

const (
	PhaseSetup       Phase = "setup"       // Players and deck are being assembled
	PhaseSpinning    Phase = "spinning"    // Wheel is choosing the next player
	PhaseQuestioning Phase = "questioning" // Selected player is answering
	PhasePaused      Phase = "paused"      // Session is temporarily paused
	PhaseEnded       Phase = "ended"       // Session has concluded
)

// IsActive reports whether the phase is a live, playable stage.
// Paused and ended sessions are not active.
func (p Phase) IsActive() bool {
	switch p {
	case PhasePaused, PhaseEnded:
		return false
	default:
		return true
	}
}

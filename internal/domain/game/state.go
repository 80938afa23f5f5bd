package game

import (
	"time"
)

// DefaultStaleThreshold is how long a session can sit idle before it is
// considered abandoned
const DefaultStaleThreshold = 30 * time.Minute

// GameState is an immutable snapshot of one party game session. Transitions
// are value receivers returning a new snapshot; a transition whose guard is
// not met returns the receiver unchanged, so callers can invoke them straight
// from event handlers and compare phases to detect a rejected input.
//
// The snapshot itself is not safe for concurrent transition application.
// Whoever owns the current snapshot must apply transitions one at a time
// against a single authoritative copy.
type GameState struct {
	SessionID     string          `json:"session_id"`
	Players       []Player        `json:"players"`
	Deck          QuestionDeck    `json:"deck"`
	CurrentPlayer *Player         `json:"current_player,omitempty"`
	UsedQuestions map[string]bool `json:"used_questions"`
	Phase         Phase           `json:"phase"`
	StartedAt     *time.Time      `json:"started_at,omitempty"`
	LastActivity  time.Time       `json:"last_activity"`
}

// NewGameState creates a fresh session in the setup phase
func NewGameState(sessionID string, players []Player, deck QuestionDeck) GameState {
	return GameState{
		SessionID:     sessionID,
		Players:       clonePlayers(players),
		Deck:          deck,
		UsedQuestions: make(map[string]bool),
		Phase:         PhaseSetup,
		LastActivity:  time.Now(),
	}
}

// IsValid reports whether the snapshot satisfies the structural invariants:
// at least 2 valid players, a valid deck, and a current player (when set)
// that is a member of the player list
func (s GameState) IsValid() bool {
	if len(s.Players) < 2 {
		return false
	}
	for _, p := range s.Players {
		if !p.IsValid() {
			return false
		}
	}
	if !s.Deck.IsValid() {
		return false
	}
	if s.CurrentPlayer != nil && !s.hasPlayer(s.CurrentPlayer.ID) {
		return false
	}
	return true
}

// CanStart reports whether the session is ready to leave setup
func (s GameState) CanStart() bool {
	return s.Phase == PhaseSetup && len(s.Players) >= 2 && s.Deck.QuestionCount() > 0
}

// Start moves the session from setup to spinning and records the start time.
// No-op unless CanStart.
func (s GameState) Start() GameState {
	if !s.CanStart() {
		return s
	}

	now := time.Now()
	next := s
	next.Phase = PhaseSpinning
	next.StartedAt = &now
	next.LastActivity = now
	return next
}

// Pause suspends an active session. No-op when already paused or ended.
func (s GameState) Pause() GameState {
	if !s.Phase.IsActive() {
		return s
	}

	next := s
	next.Phase = PhasePaused
	next.LastActivity = time.Now()
	return next
}

// Resume returns a paused session to where it left off: questioning if a
// player was mid-answer, spinning otherwise. No-op unless paused.
func (s GameState) Resume() GameState {
	if s.Phase != PhasePaused {
		return s
	}

	next := s
	if s.CurrentPlayer != nil {
		next.Phase = PhaseQuestioning
	} else {
		next.Phase = PhaseSpinning
	}
	next.LastActivity = time.Now()
	return next
}

// End concludes the session from any phase and clears the current player
func (s GameState) End() GameState {
	next := s
	next.Phase = PhaseEnded
	next.CurrentPlayer = nil
	next.LastActivity = time.Now()
	return next
}

// SelectPlayer records the wheel's pick and moves to questioning. No-op
// unless spinning and p is a current member.
func (s GameState) SelectPlayer(p Player) GameState {
	if s.Phase != PhaseSpinning || !s.hasPlayer(p.ID) {
		return s
	}

	selected := p
	next := s
	next.CurrentPlayer = &selected
	next.Phase = PhaseQuestioning
	next.LastActivity = time.Now()
	return next
}

// MarkQuestionUsed adds the question id to the used set. Idempotent.
func (s GameState) MarkQuestionUsed(questionID string) GameState {
	next := s
	next.UsedQuestions = cloneUsed(s.UsedQuestions)
	next.UsedQuestions[questionID] = true
	next.LastActivity = time.Now()
	return next
}

// AdvanceTurn finishes the current player's turn and spins again. No-op
// unless questioning.
func (s GameState) AdvanceTurn() GameState {
	if s.Phase != PhaseQuestioning {
		return s
	}

	next := s
	next.CurrentPlayer = nil
	next.Phase = PhaseSpinning
	next.LastActivity = time.Now()
	return next
}

// ResetQuestions empties the used-question set so the deck cycles again
func (s GameState) ResetQuestions() GameState {
	next := s
	next.UsedQuestions = make(map[string]bool)
	next.LastActivity = time.Now()
	return next
}

// AddPlayer appends a player to the session. No-op when a player with the
// same id is already present.
func (s GameState) AddPlayer(p Player) GameState {
	if s.hasPlayer(p.ID) {
		return s
	}

	next := s
	next.Players = append(clonePlayers(s.Players), p)
	next.LastActivity = time.Now()
	return next
}

// RemovePlayer drops the player with the given id. If that player was
// answering, the session falls back to spinning with no current player.
// Removal can leave fewer than 2 players; IsValid reports that and the
// caller decides what to do about it.
func (s GameState) RemovePlayer(id string) GameState {
	if !s.hasPlayer(id) {
		return s
	}

	next := s
	next.Players = make([]Player, 0, len(s.Players)-1)
	for _, p := range s.Players {
		if p.ID != id {
			next.Players = append(next.Players, p)
		}
	}

	if s.CurrentPlayer != nil && s.CurrentPlayer.ID == id {
		next.CurrentPlayer = nil
		if s.Phase == PhaseQuestioning {
			next.Phase = PhaseSpinning
		}
	}

	next.LastActivity = time.Now()
	return next
}

// GameDuration returns the elapsed time since the session started,
// ok=false if it has not started
func (s GameState) GameDuration() (time.Duration, bool) {
	if s.StartedAt == nil {
		return 0, false
	}
	return time.Since(*s.StartedAt), true
}

// TimeSinceLastActivity returns the elapsed time since the last transition
func (s GameState) TimeSinceLastActivity() time.Duration {
	return time.Since(s.LastActivity)
}

// IsStale reports whether the session has been idle longer than threshold.
// A zero threshold uses DefaultStaleThreshold.
func (s GameState) IsStale(threshold time.Duration) bool {
	if threshold == 0 {
		threshold = DefaultStaleThreshold
	}
	return s.TimeSinceLastActivity() > threshold
}

func (s GameState) hasPlayer(id string) bool {
	for _, p := range s.Players {
		if p.ID == id {
			return true
		}
	}
	return false
}

func clonePlayers(players []Player) []Player {
	if players == nil {
		return nil
	}
	cloned := make([]Player, len(players))
	copy(cloned, players)
	return cloned
}

func cloneUsed(used map[string]bool) map[string]bool {
	cloned := make(map[string]bool, len(used)+1)
	for id := range used {
		cloned[id] = true
	}
	return cloned
}

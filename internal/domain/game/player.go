package game

// Player represents a participant in a game session
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// NewPlayer creates an active player with the given id and display name
func NewPlayer(id, name string) Player {
	return Player{
		ID:       id,
		Name:     name,
		IsActive: true,
	}
}

// SanitizedName returns the display name with surrounding whitespace and
// control characters removed
func (p Player) SanitizedName() string {
	return sanitizeText(p.Name)
}

// IsValid reports whether the player has an id and a non-empty name
func (p Player) IsValid() bool {
	return p.ID != "" && p.SanitizedName() != ""
}

// Equal compares players by identity only. Two players with the same id are
// the same player even if their names differ.
func (p Player) Equal(other Player) bool {
	return p.ID == other.ID
}

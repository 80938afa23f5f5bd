package game

// Category classifies a question by game mode
type Category string

const (
	CategoryTruthOrDare    Category = "truth_or_dare"
	CategoryWouldYouRather Category = "would_you_rather"
	CategoryCustom         Category = "custom"
)

// IsKnown reports whether the category is one of the defined game modes
func (c Category) IsKnown() bool {
	switch c {
	case CategoryTruthOrDare, CategoryWouldYouRather, CategoryCustom:
		return true
	default:
		return false
	}
}

// Difficulty rates how challenging a question is
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// SortRank returns the fixed ordering rank for the difficulty (easy first).
// Unknown difficulties sort last.
func (d Difficulty) SortRank() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	default:
		return 4
	}
}

// Question represents a single prompt shown to a player
type Question struct {
	ID         string     `json:"id"`
	Text       string     `json:"text"`
	Category   Category   `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
}

// NewQuestion creates a question with the given id, prompt, and classification
func NewQuestion(id, text string, category Category, difficulty Difficulty) Question {
	return Question{
		ID:         id,
		Text:       text,
		Category:   category,
		Difficulty: difficulty,
	}
}

// SanitizedText returns the prompt with surrounding whitespace and control
// characters removed
func (q Question) SanitizedText() string {
	return sanitizeText(q.Text)
}

// IsValid reports whether the question has an id and a non-empty prompt
func (q Question) IsValid() bool {
	return q.ID != "" && q.SanitizedText() != ""
}

// IsAppropriate reports whether the prompt is free of denylisted terms.
// Matching is case-insensitive on substrings.
func (q Question) IsAppropriate(denylist []string) bool {
	return !containsDisallowed(q.Text, denylist)
}

// Equal compares questions by identity only
func (q Question) Equal(other Question) bool {
	return q.ID == other.ID
}

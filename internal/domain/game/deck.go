package game

import (
	"time"

	"github.com/NolanKnievel/party-app/internal/random"
)

// QuestionDeck is a named, ordered collection of questions. Decks are plain
// values: every editing operation returns a new deck and leaves the receiver
// untouched, so snapshots holding an earlier copy stay consistent.
type QuestionDeck struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Questions     []Question `json:"questions"`
	IsDefault     bool       `json:"is_default"`
	IsPublic      bool       `json:"is_public"`
	CreatorName   string     `json:"creator_name,omitempty"`
	DownloadCount int        `json:"download_count"`
	Rating        float64    `json:"rating"`
	CreatedAt     time.Time  `json:"created_at"`
	LastModified  time.Time  `json:"last_modified"`
}

// NewDeck creates a user deck with fresh timestamps. Reconstructing a stored
// deck uses a struct literal with its persisted id and timestamps instead.
func NewDeck(id, name, description string, questions []Question) QuestionDeck {
	now := time.Now()
	return QuestionDeck{
		ID:           id,
		Name:         name,
		Description:  description,
		Questions:    cloneQuestions(questions),
		CreatedAt:    now,
		LastModified: now,
	}
}

// SanitizedName returns the deck name stripped of surrounding whitespace and
// control characters
func (d QuestionDeck) SanitizedName() string {
	return sanitizeText(d.Name)
}

// SanitizedDescription returns the description stripped of surrounding
// whitespace and control characters
func (d QuestionDeck) SanitizedDescription() string {
	return sanitizeText(d.Description)
}

// QuestionCount returns the number of questions in the deck
func (d QuestionDeck) QuestionCount() int {
	return len(d.Questions)
}

// IsValid reports whether the deck has an id, non-empty name and description,
// at least one question, and only valid questions
func (d QuestionDeck) IsValid() bool {
	if d.ID == "" || d.SanitizedName() == "" || d.SanitizedDescription() == "" {
		return false
	}
	if len(d.Questions) == 0 {
		return false
	}
	for _, q := range d.Questions {
		if !q.IsValid() {
			return false
		}
	}
	return true
}

// IsAppropriate reports whether the deck name, description, and every
// question are free of denylisted terms
func (d QuestionDeck) IsAppropriate(denylist []string) bool {
	if containsDisallowed(d.Name, denylist) || containsDisallowed(d.Description, denylist) {
		return false
	}
	for _, q := range d.Questions {
		if !q.IsAppropriate(denylist) {
			return false
		}
	}
	return true
}

// QuestionByID returns the question with the given id, ok=false if absent
func (d QuestionDeck) QuestionByID(id string) (Question, bool) {
	for _, q := range d.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// ContainsQuestion reports whether the deck holds a question with the given id
func (d QuestionDeck) ContainsQuestion(id string) bool {
	_, ok := d.QuestionByID(id)
	return ok
}

// WithQuestionAdded returns a new deck with the question appended.
// Adding a question whose id is already present is a no-op.
func (d QuestionDeck) WithQuestionAdded(q Question) QuestionDeck {
	if d.ContainsQuestion(q.ID) {
		return d
	}

	next := d
	next.Questions = append(cloneQuestions(d.Questions), q)
	next.LastModified = time.Now()
	return next
}

// WithQuestionRemoved returns a new deck without the question with the given
// id. Removing an absent question is a no-op.
func (d QuestionDeck) WithQuestionRemoved(id string) QuestionDeck {
	if !d.ContainsQuestion(id) {
		return d
	}

	next := d
	next.Questions = make([]Question, 0, len(d.Questions)-1)
	for _, q := range d.Questions {
		if q.ID != id {
			next.Questions = append(next.Questions, q)
		}
	}
	next.LastModified = time.Now()
	return next
}

// WithQuestionUpdated returns a new deck with the question matching q.ID
// replaced in place, preserving deck order. Updating an absent question is a
// no-op.
func (d QuestionDeck) WithQuestionUpdated(q Question) QuestionDeck {
	if !d.ContainsQuestion(q.ID) {
		return d
	}

	next := d
	next.Questions = cloneQuestions(d.Questions)
	for i := range next.Questions {
		if next.Questions[i].ID == q.ID {
			next.Questions[i] = q
			break
		}
	}
	next.LastModified = time.Now()
	return next
}

// Shuffled returns a new deck with its questions randomly reordered
func (d QuestionDeck) Shuffled(src random.Source) QuestionDeck {
	next := d
	next.Questions = cloneQuestions(d.Questions)
	src.Shuffle(len(next.Questions), func(i, j int) {
		next.Questions[i], next.Questions[j] = next.Questions[j], next.Questions[i]
	})
	next.LastModified = time.Now()
	return next
}

func cloneQuestions(questions []Question) []Question {
	if questions == nil {
		return nil
	}
	cloned := make([]Question, len(questions))
	copy(cloned, questions)
	return cloned
}

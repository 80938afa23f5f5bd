package game

import (
	"github.com/NolanKnievel/party-app/internal/random"
)

// HasUnusedQuestions reports whether the deck still has questions that were
// not shown this cycle
func (s GameState) HasUnusedQuestions() bool {
	return len(s.UsedQuestions) < s.Deck.QuestionCount()
}

// UnusedQuestions returns the deck's questions that are not yet used,
// preserving deck order
func (s GameState) UnusedQuestions() []Question {
	unused := make([]Question, 0, s.Deck.QuestionCount())
	for _, q := range s.Deck.Questions {
		if !s.UsedQuestions[q.ID] {
			unused = append(unused, q)
		}
	}
	return unused
}

// NextAvailableQuestion picks one unused question uniformly at random,
// ok=false when the deck is exhausted. Callers pair this with
// MarkQuestionUsed once the question is shown, and with ResetQuestions when
// HasUnusedQuestions turns false, to cycle the deck without repeats.
func (s GameState) NextAvailableQuestion(src random.Source) (Question, bool) {
	unused := s.UnusedQuestions()
	if len(unused) == 0 {
		return Question{}, false
	}
	return unused[src.Intn(len(unused))], true
}

// QuestionsUsedPercentage returns the used fraction of the deck in [0, 1],
// 0.0 for an empty deck
func (s GameState) QuestionsUsedPercentage() float64 {
	total := s.Deck.QuestionCount()
	if total == 0 {
		return 0.0
	}
	return float64(len(s.UsedQuestions)) / float64(total)
}

package testutils

import (
	"fmt"

	"github.com/NolanKnievel/party-app/internal/domain/game"
)

// CreateTestQuestion builds a valid question with a predictable ID
func CreateTestQuestion(index int) game.Question {
	return game.NewQuestion(
		fmt.Sprintf("q-%d", index),
		fmt.Sprintf("Test question %d?", index),
		game.CategoryTruthOrDare,
		game.DifficultyEasy,
	)
}

// CreateTestDeck builds a valid deck holding count generated questions
func CreateTestDeck(id string, count int) game.QuestionDeck {
	questions := make([]game.Question, 0, count)
	for i := 0; i < count; i++ {
		questions = append(questions, CreateTestQuestion(i))
	}
	return game.NewDeck(id, "Test Deck", "A deck for tests", questions)
}

// CreateTestPlayers builds count valid players with predictable IDs
func CreateTestPlayers(count int) []game.Player {
	players := make([]game.Player, 0, count)
	for i := 0; i < count; i++ {
		players = append(players, game.NewPlayer(
			fmt.Sprintf("player-%d", i),
			fmt.Sprintf("Player %d", i),
		))
	}
	return players
}

// CreateTestGameState builds a startable game session in the setup phase
func CreateTestGameState(sessionID string, playerCount, questionCount int) game.GameState {
	return game.NewGameState(
		sessionID,
		CreateTestPlayers(playerCount),
		CreateTestDeck("deck-"+sessionID, questionCount),
	)
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/NolanKnievel/party-app/internal/domain/game"
)

func main() {
	ctx := context.Background()

	_ = godotenv.Load()

	// Set up Redis
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	// Test connection
	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	// Find all game session keys
	gameKeys, err := client.Keys(ctx, "game:*").Result()
	if err != nil {
		log.Fatalf("Failed to get game keys: %v", err)
	}

	fmt.Printf("Found %d game sessions:\n", len(gameKeys))
	for _, key := range gameKeys {
		data, getErr := client.Get(ctx, key).Result()
		if getErr != nil {
			fmt.Printf("  %s: ERROR - %v\n", key, getErr)
			continue
		}

		var state game.GameState
		if unmarshalErr := json.Unmarshal([]byte(data), &state); unmarshalErr != nil {
			fmt.Printf("  %s: %d bytes (unreadable: %v)\n", key, len(data), unmarshalErr)
			continue
		}

		fmt.Printf("  %s: phase=%s players=%d questions_used=%d/%d idle=%s\n",
			key, state.Phase, len(state.Players),
			len(state.UsedQuestions), state.Deck.QuestionCount(),
			state.TimeSinceLastActivity().Round(time.Second))
	}

	// Also find deck keys
	deckKeys, err := client.Keys(ctx, "deck:*").Result()
	if err != nil {
		log.Fatalf("Failed to get deck keys: %v", err)
	}

	fmt.Printf("\nFound %d decks:\n", len(deckKeys))
	for _, key := range deckKeys {
		fmt.Printf("  %s\n", key)
	}
}

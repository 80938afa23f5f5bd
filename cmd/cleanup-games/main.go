package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/NolanKnievel/party-app/internal/config"
	"github.com/NolanKnievel/party-app/internal/repositories/decks"
	"github.com/NolanKnievel/party-app/internal/repositories/games"
	"github.com/NolanKnievel/party-app/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer client.Close()

	// Test connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if pingErr := client.Ping(pingCtx).Err(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis at %s: %v", cfg.Redis.Addr, pingErr)
	}

	provider := services.NewProvider(&services.ProviderConfig{
		DeckRepository: decks.NewRedis(client),
		GameRepository: games.NewRedisRepository(&games.RedisRepoConfig{
			Client:  client,
			GameTTL: cfg.Game.SessionTTL,
		}),
		Denylist:       cfg.Moderation.Denylist,
		StaleThreshold: cfg.Game.StaleThreshold,
	})

	log.Printf("Cleaning up sessions idle longer than %s", cfg.Game.StaleThreshold)

	removed, err := provider.GameService.CleanupStale(context.Background())
	if err != nil {
		log.Printf("Cleanup failed: %v", err)
		os.Exit(1)
	}

	fmt.Printf("Removed %d stale game session(s)\n", removed)
}

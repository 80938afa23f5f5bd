package services

import (
	"time"

	"github.com/NolanKnievel/party-app/internal/repositories/decks"
	"github.com/NolanKnievel/party-app/internal/repositories/games"
	deckService "github.com/NolanKnievel/party-app/internal/services/deck"
	gameService "github.com/NolanKnievel/party-app/internal/services/game"
)

// Provider holds all service instances
type Provider struct {
	DeckService deckService.Service
	GameService gameService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	DeckRepository decks.Repository
	GameRepository games.Repository
	Denylist       []string
	StaleThreshold time.Duration
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repositories if none provided
	deckRepo := cfg.DeckRepository
	if deckRepo == nil {
		deckRepo = decks.NewInMemoryRepository()
	}

	gameRepo := cfg.GameRepository
	if gameRepo == nil {
		gameRepo = games.NewInMemoryRepository()
	}

	deckSvc := deckService.NewService(&deckService.ServiceConfig{
		Repository: deckRepo,
		Denylist:   cfg.Denylist,
	})

	gameSvc := gameService.NewService(&gameService.ServiceConfig{
		Repository:     gameRepo,
		DeckService:    deckSvc,
		StaleThreshold: cfg.StaleThreshold,
	})

	return &Provider{
		DeckService: deckSvc,
		GameService: gameSvc,
	}
}

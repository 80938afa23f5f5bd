package decks

import "time"

//go:generate mockgen -destination=mock/mock_time_provider.go -package=mockdecks github.com/NolanKnievel/party-app/internal/repositories/decks TimeProvider

// TimeProvider supplies the clock used for deck timestamps so tests can pin it
type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}

// NewRealTimeProvider returns a TimeProvider backed by the system clock
func NewRealTimeProvider() TimeProvider {
	return realTimeProvider{}
}

package decks

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/NolanKnievel/party-app/internal/domain/game"
	apperrors "github.com/NolanKnievel/party-app/internal/errors"
	mockdecks "github.com/NolanKnievel/party-app/internal/repositories/decks/mock"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient   *redis.Client
	mock         redismock.ClientMock
	mockCtrl     *gomock.Controller
	timeProvider *mockdecks.MockTimeProvider
	repo         Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.mockCtrl = gomock.NewController(s.T())
	s.timeProvider = mockdecks.NewMockTimeProvider(s.mockCtrl)
	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client:       s.mockClient,
		TimeProvider: s.timeProvider,
	})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) testDeck() *game.QuestionDeck {
	return &game.QuestionDeck{
		ID:          "deck-1",
		Name:        "Road Trip",
		Description: "Questions for long drives",
		Questions: []game.Question{
			{ID: "q1", Text: "Truth or dare?", Category: game.CategoryTruthOrDare, Difficulty: game.DifficultyEasy},
			{ID: "q2", Text: "Would you rather fly or teleport?", Category: game.CategoryWouldYouRather, Difficulty: game.DifficultyMedium},
		},
	}
}

func (s *RedisRepoTestSuite) TestCreate() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	s.timeProvider.EXPECT().Now().Return(now)

	deck := s.testDeck()

	stamped := *deck
	stamped.CreatedAt = now
	stamped.LastModified = now
	expectedData, err := json.Marshal(&stamped)
	s.Require().NoError(err)

	s.mock.ExpectExists("deck:deck-1").SetVal(0)
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("deck:deck-1", expectedData, 0).SetVal("OK")
	s.mock.ExpectSAdd("decks:all", "deck-1").SetVal(1)
	s.mock.ExpectSRem("decks:default", "deck-1").SetVal(0)
	s.mock.ExpectSRem("decks:public", "deck-1").SetVal(0)
	s.mock.ExpectSAdd("decks:category:truth_or_dare", "deck-1").SetVal(1)
	s.mock.ExpectSAdd("decks:category:would_you_rather", "deck-1").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.Create(ctx, deck))
	s.Equal(now, deck.CreatedAt)
	s.Equal(now, deck.LastModified)
}

func (s *RedisRepoTestSuite) TestCreate_AlreadyExists() {
	s.mock.ExpectExists("deck:deck-1").SetVal(1)

	err := s.repo.Create(context.Background(), s.testDeck())
	s.Error(err)
	s.True(apperrors.IsAlreadyExists(err))
}

func (s *RedisRepoTestSuite) TestCreate_NilDeck() {
	err := s.repo.Create(context.Background(), nil)
	s.Error(err)
	s.True(apperrors.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestGet() {
	deck := s.testDeck()
	data, err := json.Marshal(deck)
	s.Require().NoError(err)

	s.mock.ExpectGet("deck:deck-1").SetVal(string(data))

	got, err := s.repo.Get(context.Background(), "deck-1")
	s.Require().NoError(err)
	s.Equal(deck.ID, got.ID)
	s.Equal(deck.Questions, got.Questions)
}

func (s *RedisRepoTestSuite) TestGet_NotFound() {
	s.mock.ExpectGet("deck:missing").RedisNil()

	_, err := s.repo.Get(context.Background(), "missing")
	s.Error(err)
	s.True(apperrors.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestDelete() {
	deck := s.testDeck()
	data, err := json.Marshal(deck)
	s.Require().NoError(err)

	s.mock.ExpectGet("deck:deck-1").SetVal(string(data))
	s.mock.ExpectTxPipeline()
	s.mock.ExpectDel("deck:deck-1").SetVal(1)
	s.mock.ExpectSRem("decks:all", "deck-1").SetVal(1)
	s.mock.ExpectSRem("decks:default", "deck-1").SetVal(0)
	s.mock.ExpectSRem("decks:public", "deck-1").SetVal(0)
	s.mock.ExpectSRem("decks:category:truth_or_dare", "deck-1").SetVal(1)
	s.mock.ExpectSRem("decks:category:would_you_rather", "deck-1").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.Delete(context.Background(), "deck-1"))
}

func (s *RedisRepoTestSuite) TestUpdate_ReconcilesCategoryIndexes() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	s.timeProvider.EXPECT().Now().Return(now)

	existing := s.testDeck()
	existingData, err := json.Marshal(existing)
	s.Require().NoError(err)

	// The would-you-rather question is gone in the updated version
	updated := *existing
	updated.Questions = existing.Questions[:1]
	updated.IsPublic = true

	stamped := updated
	stamped.LastModified = now
	expectedData, err := json.Marshal(&stamped)
	s.Require().NoError(err)

	s.mock.ExpectGet("deck:deck-1").SetVal(string(existingData))
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("deck:deck-1", expectedData, 0).SetVal("OK")
	s.mock.ExpectSAdd("decks:all", "deck-1").SetVal(0)
	s.mock.ExpectSRem("decks:default", "deck-1").SetVal(0)
	s.mock.ExpectSAdd("decks:public", "deck-1").SetVal(1)
	s.mock.ExpectSAdd("decks:category:truth_or_dare", "deck-1").SetVal(0)
	s.mock.ExpectSRem("decks:category:would_you_rather", "deck-1").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.Update(ctx, &updated))
}

func (s *RedisRepoTestSuite) TestExists() {
	s.mock.ExpectExists("deck:deck-1").SetVal(1)

	exists, err := s.repo.Exists(context.Background(), "deck-1")
	s.NoError(err)
	s.True(exists)
}

func (s *RedisRepoTestSuite) TestListByCategory() {
	deck := s.testDeck()
	data, err := json.Marshal(deck)
	s.Require().NoError(err)

	s.mock.ExpectSMembers("decks:category:truth_or_dare").SetVal([]string{"deck-1"})
	s.mock.ExpectMGet("deck:deck-1").SetVal([]interface{}{string(data)})

	got, err := s.repo.ListByCategory(context.Background(), game.CategoryTruthOrDare)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("deck-1", got[0].ID)
}

func (s *RedisRepoTestSuite) TestList_EmptyIndex() {
	s.mock.ExpectSMembers("decks:all").SetVal([]string{})

	got, err := s.repo.List(context.Background())
	s.NoError(err)
	s.Empty(got)
}

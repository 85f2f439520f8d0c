package characters

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/lgw4/cetools/internal/entities"
	cerrors "github.com/lgw4/cetools/internal/errors"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = NewRedis(s.mockClient)
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) createTestCharacter(id, name string) *entities.Character {
	attrs, err := entities.NewAttributes(7, 8, 9, 10, 11, 12)
	s.Require().NoError(err)

	return &entities.Character{
		ID:          id,
		Name:        name,
		Age:         34,
		Career:      entities.CareerScouts,
		TermsServed: 3,
		Attributes:  attrs,
		Credits:     1000,
		CreatedAt:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *RedisRepoTestSuite) TestCreate() {
	ctx := context.Background()
	char := s.createTestCharacter("test-id", "Jamison Vane")

	jsonData, err := json.Marshal(char)
	s.Require().NoError(err)

	// Happy path
	s.mock.ExpectExists("character:test-id").SetVal(0)
	s.mock.ExpectSet("character:test-id", string(jsonData), 0).SetVal("OK")
	s.mock.ExpectSAdd("characters", "test-id").SetVal(1)

	s.NoError(s.repo.Create(ctx, char))

	// Already exists
	s.mock.ExpectExists("character:test-id").SetVal(1)

	err = s.repo.Create(ctx, char)
	s.Error(err)
	s.True(cerrors.IsAlreadyExists(err))

	// Input validation
	s.Error(s.repo.Create(ctx, nil))
	s.Error(s.repo.Create(ctx, &entities.Character{}))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()
	char := s.createTestCharacter("test-id", "Jamison Vane")

	jsonData, err := json.Marshal(char)
	s.Require().NoError(err)

	// Happy path
	s.mock.ExpectGet("character:test-id").SetVal(string(jsonData))

	got, err := s.repo.Get(ctx, "test-id")
	s.NoError(err)
	s.Equal("Jamison Vane", got.Name)
	s.Equal(char.Attributes, got.Attributes)

	// Missing key
	s.mock.ExpectGet("character:missing").RedisNil()

	_, err = s.repo.Get(ctx, "missing")
	s.Error(err)
	s.True(cerrors.IsNotFound(err))

	// Dependency error
	s.mock.ExpectGet("character:test-id").SetErr(errors.New("redis error"))

	_, err = s.repo.Get(ctx, "test-id")
	s.Error(err)

	// Input validation
	_, err = s.repo.Get(ctx, "")
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestList() {
	ctx := context.Background()

	char1 := s.createTestCharacter("char-1", "Adal Kerr")
	char2 := s.createTestCharacter("char-2", "Zara Moss")

	jsonData1, err := json.Marshal(char1)
	s.Require().NoError(err)
	jsonData2, err := json.Marshal(char2)
	s.Require().NoError(err)

	// Fetches run concurrently, so expectation order cannot be fixed
	s.mock.MatchExpectationsInOrder(false)

	s.mock.ExpectSMembers("characters").SetVal([]string{"char-1", "char-2"})
	s.mock.ExpectGet("character:char-1").SetVal(string(jsonData1))
	s.mock.ExpectGet("character:char-2").SetVal(string(jsonData2))

	chars, err := s.repo.List(ctx)
	s.NoError(err)
	s.Require().Len(chars, 2)
	s.Equal("Adal Kerr", chars[0].Name)
	s.Equal("Zara Moss", chars[1].Name)
}

func (s *RedisRepoTestSuite) TestListDependencyError() {
	s.mock.ExpectSMembers("characters").SetErr(errors.New("redis error"))

	_, err := s.repo.List(context.Background())
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()

	// Happy path
	s.mock.ExpectExists("character:test-id").SetVal(1)
	s.mock.ExpectDel("character:test-id").SetVal(1)
	s.mock.ExpectSRem("characters", "test-id").SetVal(1)

	s.NoError(s.repo.Delete(ctx, "test-id"))

	// Missing key
	s.mock.ExpectExists("character:missing").SetVal(0)

	err := s.repo.Delete(ctx, "missing")
	s.Error(err)
	s.True(cerrors.IsNotFound(err))

	// Input validation
	s.Error(s.repo.Delete(ctx, ""))
}

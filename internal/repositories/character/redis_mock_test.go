package character_test

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-rules/internal/errors"
	"github.com/KirkDiggler/rpg-rules/internal/repositories/character"
	"github.com/KirkDiggler/rpg-rules/internal/testutils"
)

// RedisFailureTestSuite drives the repository against redismock to cover
// backend failures miniredis cannot produce
type RedisFailureTestSuite struct {
	suite.Suite
	ctx  context.Context
	mock redismock.ClientMock
	repo *character.RedisRepository
}

var errConnRefused = stderrors.New("dial tcp: connection refused")

func TestRedisFailureSuite(t *testing.T) {
	suite.Run(t, new(RedisFailureTestSuite))
}

func (s *RedisFailureTestSuite) SetupTest() {
	s.ctx = context.Background()

	client, mock := redismock.NewClientMock()
	s.mock = mock

	repo, err := character.NewRedis(&character.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisFailureTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *RedisFailureTestSuite) TestGetBackendError() {
	s.mock.ExpectGet("character:char_1").SetErr(errConnRefused)

	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.Contains(err.Error(), "failed to get character char_1")
	s.ErrorIs(err, errConnRefused)
}

func (s *RedisFailureTestSuite) TestSaveStopsOnReadError() {
	s.mock.ExpectGet("character:char_1").SetErr(errConnRefused)

	_, err := s.repo.Save(s.ctx, character.SaveInput{Character: testutils.CreateTestCharacter("char_1")})
	s.Require().Error(err)
	s.ErrorIs(err, errConnRefused)
}

func (s *RedisFailureTestSuite) TestListIndexError() {
	s.mock.ExpectSMembers("characters:all").SetErr(errConnRefused)

	_, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to get characters from index characters:all")
}

func (s *RedisFailureTestSuite) TestListFetchError() {
	s.mock.ExpectSMembers("characters:campaign:camp_1").SetVal([]string{"char_1"})
	s.mock.ExpectGet("character:char_1").SetErr(errConnRefused)

	_, err := s.repo.List(s.ctx, character.ListInput{CampaignID: "camp_1"})
	s.Require().Error(err)
	s.ErrorIs(err, errConnRefused)
}

func (s *RedisFailureTestSuite) TestDeletePipelineError() {
	stored := testutils.CreateTestCharacterInCampaign("char_1", "camp_1")
	data, err := json.Marshal(stored)
	s.Require().NoError(err)

	s.mock.ExpectGet("character:char_1").SetVal(string(data))
	s.mock.ExpectTxPipeline()
	s.mock.ExpectDel("character:char_1").SetVal(1)
	s.mock.ExpectSRem("characters:all", "char_1").SetVal(1)
	s.mock.ExpectSRem("characters:campaign:camp_1", "char_1").SetVal(1)
	s.mock.ExpectTxPipelineExec().SetErr(errConnRefused)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: "char_1"})
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to delete character char_1")
}

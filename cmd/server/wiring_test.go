package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-rules/internal/builder"
	"github.com/KirkDiggler/rpg-rules/internal/config"
	"github.com/KirkDiggler/rpg-rules/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-rules/internal/repositories/campaign"
	characterservice "github.com/KirkDiggler/rpg-rules/internal/services/character"
)

type WiringTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestWiringSuite(t *testing.T) {
	suite.Run(t, new(WiringTestSuite))
}

func (s *WiringTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *WiringTestSuite) baseConfig() *config.Config {
	return &config.Config{
		GRPCPort:    50051,
		Storage:     config.StorageMemory,
		SRDBaseURL:  "https://www.dnd5eapi.co/api/2014/",
		SRDCacheTTL: time.Hour,
		LogLevel:    "info",
	}
}

// createFighter drives the wired service end to end with real dice
func (s *WiringTestSuite) createFighter(deps *dependencies) *characterservice.CreateCharacterOutput {
	output, err := deps.CharacterService.CreateCharacter(s.ctx, &characterservice.CreateCharacterInput{
		Name:       "Thorin",
		Race:       dnd5e.RaceDwarf,
		Class:      dnd5e.ClassFighter,
		CampaignID: "camp_1",
	})
	s.Require().NoError(err)
	s.Require().NotNil(output.Validation)
	return output
}

func (s *WiringTestSuite) TestMemoryStorage() {
	deps, err := buildDependencies(s.ctx, s.baseConfig())
	s.Require().NoError(err)
	defer deps.Close()

	s.IsType(&campaign.MemoryRoster{}, deps.Roster)

	output := s.createFighter(deps)
	if output.Character == nil {
		// rolled scores can miss the fighter minimums
		s.False(output.Validation.IsValid)
		return
	}

	got, err := deps.CharacterService.GetCharacter(s.ctx, &characterservice.GetCharacterInput{
		CharacterID: output.Character.ID,
	})
	s.Require().NoError(err)
	s.Equal(output.Character.ID, got.Character.ID)
	s.Contains(got.Character.ID, "char")
}

func (s *WiringTestSuite) TestExportIDsArePrefixed() {
	deps, err := buildDependencies(s.ctx, s.baseConfig())
	s.Require().NoError(err)
	defer deps.Close()

	created, err := deps.CharacterService.CreateCharacter(s.ctx, &characterservice.CreateCharacterInput{
		Name:   "Thorin",
		Race:   dnd5e.RaceDwarf,
		Class:  dnd5e.ClassFighter,
		Method: builder.MethodElite,
	})
	s.Require().NoError(err)
	s.Require().NotNil(created.Character, "errors: %v", created.Validation.Errors)

	exported, err := deps.CharacterService.ExportCharacter(s.ctx, &characterservice.ExportCharacterInput{
		CharacterID: created.Character.ID,
	})
	s.Require().NoError(err)
	s.True(strings.HasPrefix(exported.Envelope.ExportID, "export_"))
	s.Len(strings.Split(exported.Envelope.ExportID, "_"), 3)
}

func (s *WiringTestSuite) TestSQLiteStorage() {
	cfg := s.baseConfig()
	cfg.Storage = config.StorageSQLite
	cfg.SQLitePath = filepath.Join(s.T().TempDir(), "characters.db")

	deps, err := buildDependencies(s.ctx, cfg)
	s.Require().NoError(err)
	defer deps.Close()

	s.Len(deps.closers, 1)
	s.createFighter(deps)
}

func (s *WiringTestSuite) TestRedisStorage() {
	mr := miniredis.RunT(s.T())

	cfg := s.baseConfig()
	cfg.Storage = config.StorageRedis
	cfg.RedisAddr = mr.Addr()

	deps, err := buildDependencies(s.ctx, cfg)
	s.Require().NoError(err)
	defer deps.Close()

	s.IsType(&campaign.RedisRoster{}, deps.Roster)
	s.Len(deps.closers, 1)
	s.createFighter(deps)
}

func (s *WiringTestSuite) TestUnreachableRedis() {
	mr := miniredis.RunT(s.T())
	addr := mr.Addr()
	mr.Close()

	cfg := s.baseConfig()
	cfg.Storage = config.StorageRedis
	cfg.RedisAddr = addr

	_, err := buildDependencies(s.ctx, cfg)
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to reach redis")
}

func (s *WiringTestSuite) TestMissingRulesFile() {
	cfg := s.baseConfig()
	cfg.RulesFile = filepath.Join(s.T().TempDir(), "missing.yaml")

	_, err := buildDependencies(s.ctx, cfg)
	s.Require().Error(err)
}

package character_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-rules/internal/repositories/character"
	"github.com/KirkDiggler/rpg-rules/internal/testutils"
)

type MemoryRepositoryTestSuite struct {
	repositorySuite
}

func TestMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(MemoryRepositoryTestSuite))
}

func (s *MemoryRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = character.NewMemory()
}

func (s *MemoryRepositoryTestSuite) TestStoredCopyIsIsolated() {
	c := testutils.CreateTestCharacter("char_1")
	s.save(c)

	c.Name = "Changed After Save"
	c.Inventory[0].Name = "Changed Item"

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Equal(testutils.TestCharacterName, got.Character.Name)
	s.Equal("Battleaxe", got.Character.Inventory[0].Name)

	got.Character.Level = 9
	again, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Equal(1, again.Character.Level)
}

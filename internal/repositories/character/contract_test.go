package character_test

import (
	"context"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-rules/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-rules/internal/errors"
	"github.com/KirkDiggler/rpg-rules/internal/repositories/character"
	"github.com/KirkDiggler/rpg-rules/internal/testutils"
)

// repositorySuite holds the behavior every backend shares. Backend suites
// embed it and set repo in SetupTest.
type repositorySuite struct {
	suite.Suite
	ctx  context.Context
	repo character.Repository
}

func (s *repositorySuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), "character with ID char_missing not found")
}

func (s *repositorySuite) TestGetEmptyID() {
	_, err := s.repo.Get(s.ctx, character.GetInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *repositorySuite) TestSaveValidation() {
	testCases := []struct {
		name  string
		input character.SaveInput
	}{
		{name: "nil character", input: character.SaveInput{}},
		{name: "empty id", input: character.SaveInput{Character: testutils.CreateTestCharacter("")}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Save(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *repositorySuite) TestSaveAndGet() {
	want := testutils.CreateTestWizard("char_wizard")

	out, err := s.repo.Save(s.ctx, character.SaveInput{Character: want})
	s.Require().NoError(err)
	s.Equal(want, out.Character)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_wizard"})
	s.Require().NoError(err)
	s.Equal(want, got.Character)
}

func (s *repositorySuite) TestSaveReplaces() {
	c := testutils.CreateTestCharacter("char_1")
	_, err := s.repo.Save(s.ctx, character.SaveInput{Character: c})
	s.Require().NoError(err)

	updated := c.Clone()
	updated.Level = 2
	updated.Experience = 600
	updated.UpdatedAt = c.UpdatedAt + 1000
	_, err = s.repo.Save(s.ctx, character.SaveInput{Character: updated})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Equal(2, got.Character.Level)
	s.Equal(600, got.Character.Experience)

	list, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Len(list.Characters, 1)
}

func (s *repositorySuite) TestListOrderAndCampaignFilter() {
	first := testutils.CreateTestCharacterInCampaign("char_b", "camp_1")
	second := testutils.CreateTestCharacterInCampaign("char_a", "camp_2")
	second.CreatedAt = first.CreatedAt + 10
	third := testutils.CreateTestCharacterInCampaign("char_c", "camp_1")
	third.CreatedAt = first.CreatedAt + 10

	s.save(third)
	s.save(first)
	s.save(second)

	all, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Equal([]string{"char_b", "char_a", "char_c"}, ids(all.Characters))

	camp, err := s.repo.List(s.ctx, character.ListInput{CampaignID: "camp_1"})
	s.Require().NoError(err)
	s.Equal([]string{"char_b", "char_c"}, ids(camp.Characters))

	none, err := s.repo.List(s.ctx, character.ListInput{CampaignID: "camp_unknown"})
	s.Require().NoError(err)
	s.NotNil(none.Characters)
	s.Empty(none.Characters)
}

func (s *repositorySuite) TestCampaignMove() {
	c := testutils.CreateTestCharacterInCampaign("char_1", "camp_1")
	s.save(c)

	moved := c.Clone()
	moved.CampaignID = "camp_2"
	s.save(moved)

	old, err := s.repo.List(s.ctx, character.ListInput{CampaignID: "camp_1"})
	s.Require().NoError(err)
	s.Empty(old.Characters)

	current, err := s.repo.List(s.ctx, character.ListInput{CampaignID: "camp_2"})
	s.Require().NoError(err)
	s.Equal([]string{"char_1"}, ids(current.Characters))
}

func (s *repositorySuite) TestDelete() {
	c := testutils.CreateTestCharacterInCampaign("char_1", "camp_1")
	s.save(c)

	out, err := s.repo.Delete(s.ctx, character.DeleteInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Equal(c, out.Deleted)

	_, err = s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.True(errors.IsNotFound(err))

	camp, err := s.repo.List(s.ctx, character.ListInput{CampaignID: "camp_1"})
	s.Require().NoError(err)
	s.Empty(camp.Characters)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: "char_1"})
	s.True(errors.IsNotFound(err))
}

func (s *repositorySuite) save(c *dnd5e.Character) {
	_, err := s.repo.Save(s.ctx, character.SaveInput{Character: c})
	s.Require().NoError(err)
}

func ids(characters []*dnd5e.Character) []string {
	out := make([]string, 0, len(characters))
	for _, c := range characters {
		out = append(out, c.ID)
	}
	return out
}

package character_test

import (
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-rules/internal/builder"
	"github.com/KirkDiggler/rpg-rules/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-rules/internal/errors"
	"github.com/KirkDiggler/rpg-rules/internal/events"
	"github.com/KirkDiggler/rpg-rules/internal/orchestrators/character"
	characterrepo "github.com/KirkDiggler/rpg-rules/internal/repositories/character"
	service "github.com/KirkDiggler/rpg-rules/internal/services/character"
	"github.com/KirkDiggler/rpg-rules/internal/testutils"
)

func (s *OrchestratorTestSuite) expectLevelUpHitPoints(class dnd5e.Class, constitution, gain int) {
	s.mockBuilder.EXPECT().
		LevelUpHitPoints(gomock.Any(), &builder.LevelUpHitPointsInput{
			Class:        class,
			Constitution: constitution,
		}).
		Return(&builder.LevelUpHitPointsOutput{HitPoints: gain}, nil)
}

func (s *OrchestratorTestSuite) TestLevelUpToFourImprovesAbility() {
	fixture := testutils.CreateTestCharacter("char_1")
	fixture.Level = 3
	fixture.Experience = 900
	s.expectGet(fixture)
	s.expectLevelUpHitPoints(dnd5e.ClassFighter, 14, 7)

	var saved *dnd5e.Character
	s.expectSave(&saved)

	output, err := s.orchestrator.LevelUpCharacter(s.ctx, &service.LevelUpCharacterInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Require().NotNil(output.Character)

	leveled := output.Character
	s.Equal(4, leveled.Level)
	s.Equal(19, leveled.HitPoints)
	s.Equal(1200, leveled.Experience)
	s.Equal(16, leveled.AbilityScores.Strength)
	s.Equal(fixture.AbilityScores.Dexterity, leveled.AbilityScores.Dexterity)
	s.Equal(dnd5e.AbilityStrength, output.ImprovedAbility)
	s.Equal(7, output.HitPointsGained)
	s.Empty(output.LearnedSpells)
	s.Equal(leveled, saved)
	s.Equal([]string{events.EventCharacterLeveledUp}, s.published)
}

func (s *OrchestratorTestSuite) TestLevelUpToFiveDoesNotImproveAbility() {
	fixture := testutils.CreateTestCharacter("char_1")
	fixture.Level = 4
	s.expectGet(fixture)
	s.expectLevelUpHitPoints(dnd5e.ClassFighter, 14, 3)

	var saved *dnd5e.Character
	s.expectSave(&saved)

	output, err := s.orchestrator.LevelUpCharacter(s.ctx, &service.LevelUpCharacterInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Equal(5, output.Character.Level)
	s.Equal(1500, output.Character.Experience)
	s.Equal(fixture.AbilityScores, output.Character.AbilityScores)
	s.Empty(output.ImprovedAbility)
}

func (s *OrchestratorTestSuite) TestLevelUpSkipsMaxedAbilities() {
	fixture := testutils.CreateTestCharacter("char_1")
	fixture.Level = 7
	fixture.AbilityScores.Strength = 20
	s.expectGet(fixture)
	s.expectLevelUpHitPoints(dnd5e.ClassFighter, 14, 5)

	var saved *dnd5e.Character
	s.expectSave(&saved)

	output, err := s.orchestrator.LevelUpCharacter(s.ctx, &service.LevelUpCharacterInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Equal(dnd5e.AbilityDexterity, output.ImprovedAbility)
	s.Equal(20, output.Character.AbilityScores.Strength)
	s.Equal(14, output.Character.AbilityScores.Dexterity)
}

func (s *OrchestratorTestSuite) TestLevelUpLearnsTierSpells() {
	fixture := testutils.CreateTestWizard("char_1")
	fixture.Level = 4
	s.expectGet(fixture)
	s.expectLevelUpHitPoints(dnd5e.ClassWizard, 13, 4)

	var saved *dnd5e.Character
	s.expectSave(&saved)

	output, err := s.orchestrator.LevelUpCharacter(s.ctx, &service.LevelUpCharacterInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Require().NotNil(output.Character)

	s.Equal(5, output.Character.Level)
	s.Equal([]string{"Misty Step", "Scorching Ray"}, spellNames(output.LearnedSpells))
	s.Equal([]string{"Fire Bolt", "Mage Hand", "Magic Missile", "Misty Step", "Scorching Ray"},
		spellNames(output.Character.Spells))
}

func (s *OrchestratorTestSuite) TestLevelUpDoesNotRelearnKnownSpells() {
	fixture := testutils.CreateTestWizard("char_1")
	fixture.Level = 4
	fixture.Spells = append(fixture.Spells, dnd5e.Spell{Name: "Misty Step", Level: 2, School: "conjuration"})
	s.expectGet(fixture)
	s.expectLevelUpHitPoints(dnd5e.ClassWizard, 13, 4)

	var saved *dnd5e.Character
	s.expectSave(&saved)

	output, err := s.orchestrator.LevelUpCharacter(s.ctx, &service.LevelUpCharacterInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Equal([]string{"Scorching Ray"}, spellNames(output.LearnedSpells))
	s.Len(output.Character.Spells, 5)
}

func (s *OrchestratorTestSuite) TestLevelUpPastMaximumIsBlocked() {
	fixture := testutils.CreateTestCharacter("char_1")
	fixture.Level = 20
	s.expectGet(fixture)
	s.expectLevelUpHitPoints(dnd5e.ClassFighter, 14, 6)

	output, err := s.orchestrator.LevelUpCharacter(s.ctx, &service.LevelUpCharacterInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Nil(output.Character)
	s.Contains(output.Validation.Errors, "level 21 must be between 1 and 20")
	s.Empty(s.published)
}

func (s *OrchestratorTestSuite) TestLevelUpNotFound() {
	s.mockCharRepo.EXPECT().
		Get(gomock.Any(), characterrepo.GetInput{ID: "char_missing"}).
		Return(nil, errors.NotFound("character with ID char_missing not found"))

	_, err := s.orchestrator.LevelUpCharacter(s.ctx, &service.LevelUpCharacterInput{CharacterID: "char_missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestLevelUpHitPointError() {
	fixture := testutils.CreateTestCharacter("char_1")
	s.expectGet(fixture)
	s.mockBuilder.EXPECT().
		LevelUpHitPoints(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("dice unavailable"))

	_, err := s.orchestrator.LevelUpCharacter(s.ctx, &service.LevelUpCharacterInput{CharacterID: "char_1"})
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to roll level-up hit points")
}

func (s *OrchestratorTestSuite) TestMulticlassCharacter() {
	fixture := testutils.CreateTestCharacter("char_1")
	s.expectGet(fixture)

	var saved *dnd5e.Character
	s.expectSave(&saved)

	output, err := s.orchestrator.MulticlassCharacter(s.ctx, &service.MulticlassCharacterInput{
		CharacterID: "char_1",
		Class:       dnd5e.ClassRogue,
	})
	s.Require().NoError(err)
	s.Require().NotNil(output.Character)

	s.Equal([]dnd5e.MulticlassEntry{{Class: dnd5e.ClassRogue, Level: 1}}, output.Character.Multiclass)
	s.Equal(2, output.Character.TotalLevel())
	// rogue hit die 8: 8/2 + CON modifier 2
	s.Equal(fixture.HitPoints+6, output.Character.HitPoints)
	s.Equal(output.Character, saved)
	s.Equal([]string{events.EventCharacterMulticlassed}, s.published)
}

func (s *OrchestratorTestSuite) TestMulticlassIntoPrimaryClassIsIneligible() {
	s.expectGet(testutils.CreateTestCharacter("char_1"))

	_, err := s.orchestrator.MulticlassCharacter(s.ctx, &service.MulticlassCharacterInput{
		CharacterID: "char_1",
		Class:       dnd5e.ClassFighter,
	})
	s.Require().Error(err)
	s.True(errors.IsIneligible(err))
	s.Contains(err.Error(), "cannot multiclass into primary class fighter")
	s.Empty(s.published)
}

func (s *OrchestratorTestSuite) TestMulticlassRequiresClass() {
	_, err := s.orchestrator.MulticlassCharacter(s.ctx, &service.MulticlassCharacterInput{CharacterID: "char_1"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestLearnSpell() {
	fixture := testutils.CreateTestWizard("char_1")
	s.expectGet(fixture)

	var saved *dnd5e.Character
	s.expectSave(&saved)

	output, err := s.orchestrator.LearnSpell(s.ctx, &service.LearnSpellInput{
		CharacterID: "char_1",
		Spell:       &dnd5e.Spell{Name: "Shield", Level: 1, School: "abjuration", Prepared: true},
	})
	s.Require().NoError(err)
	s.Require().NotNil(output.Character)
	s.True(output.Learning.CanLearn)

	learned := output.Character.Spells[len(output.Character.Spells)-1]
	s.Equal("Shield", learned.Name)
	s.False(learned.Prepared)
	s.Len(output.Character.Spells, 4)
	s.Equal(output.Character, saved)
	s.Equal([]string{events.EventCharacterSpellLearned}, s.published)
}

func (s *OrchestratorTestSuite) TestLearnSpellByKey() {
	fixture := testutils.CreateTestWizard("char_1")
	s.expectGet(fixture)
	s.mockCatalog.EXPECT().
		GetSpell(gomock.Any(), "sleep").
		Return(&dnd5e.Spell{Name: "Sleep", Level: 1, School: "enchantment"}, nil)

	var saved *dnd5e.Character
	s.expectSave(&saved)

	output, err := s.orchestrator.LearnSpell(s.ctx, &service.LearnSpellInput{
		CharacterID: "char_1",
		SpellKey:    "sleep",
	})
	s.Require().NoError(err)
	s.Equal("Sleep", output.Spell.Name)
	s.True(saved.KnowsSpell("Sleep"))
}

func (s *OrchestratorTestSuite) TestLearnSpellRejected() {
	testCases := []struct {
		name      string
		character *dnd5e.Character
		spell     dnd5e.Spell
		wantError string
	}{
		{
			name:      "non caster",
			character: testutils.CreateTestCharacter("char_1"),
			spell:     dnd5e.Spell{Name: "Shield", Level: 1},
			wantError: "fighter cannot learn spells",
		},
		{
			name:      "already known",
			character: testutils.CreateTestWizard("char_1"),
			spell:     dnd5e.Spell{Name: "Magic Missile", Level: 1},
			wantError: `spell "Magic Missile" is already known`,
		},
		{
			name:      "too high",
			character: testutils.CreateTestWizard("char_1"),
			spell:     dnd5e.Spell{Name: "Fireball", Level: 3},
			wantError: "spell level 3 exceeds maximum 1 at character level 3",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.expectGet(tc.character)
			spell := tc.spell

			output, err := s.orchestrator.LearnSpell(s.ctx, &service.LearnSpellInput{
				CharacterID: "char_1",
				Spell:       &spell,
			})
			s.Require().NoError(err)
			s.Nil(output.Character)
			s.False(output.Learning.CanLearn)
			s.Contains(output.Learning.Errors, tc.wantError)
		})
	}
	s.Empty(s.published)
}

func (s *OrchestratorTestSuite) TestLearnSpellWithoutCatalog() {
	orchestrator := s.newOrchestrator(func(cfg *character.Config) {
		cfg.SpellCatalog = nil
	})
	s.expectGet(testutils.CreateTestWizard("char_1"))

	_, err := orchestrator.LearnSpell(s.ctx, &service.LearnSpellInput{
		CharacterID: "char_1",
		SpellKey:    "shield",
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestLearnSpellRequiresSpell() {
	_, err := s.orchestrator.LearnSpell(s.ctx, &service.LearnSpellInput{CharacterID: "char_1"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestPrepareSpells() {
	fixture := testutils.CreateTestWizard("char_1")
	s.expectGet(fixture)

	output, err := s.orchestrator.PrepareSpells(s.ctx, &service.PrepareSpellsInput{CharacterID: "char_1"})
	s.Require().NoError(err)

	// level 3 with wisdom 12: max(1, 1 + 1)
	s.Equal([]string{"Fire Bolt", "Mage Hand"}, spellNames(output.Prepared))
	for _, spell := range output.Prepared {
		s.True(spell.Prepared)
	}
	s.Equal(dnd5e.SpellSlots{Cantrips: 3, Level1Slots: 4, Level2Slots: 2}, output.Slots)
}

func spellNames(spells []dnd5e.Spell) []string {
	names := make([]string, 0, len(spells))
	for _, spell := range spells {
		names = append(names, spell.Name)
	}
	return names
}

package rules_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-rules/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-rules/internal/errors"
	"github.com/KirkDiggler/rpg-rules/internal/rules"
)

type RulesTestSuite struct {
	suite.Suite
	tables *rules.Tables
}

func TestRulesSuite(t *testing.T) {
	suite.Run(t, new(RulesTestSuite))
}

func (s *RulesTestSuite) SetupTest() {
	tables, err := rules.Default()
	s.Require().NoError(err)
	s.tables = tables
}

func (s *RulesTestSuite) TestEveryClassIsCovered() {
	for _, class := range dnd5e.Classes {
		s.Contains([]int{6, 8, 10, 12}, s.tables.HitDie(class), "class %s", class)
		s.Len(s.tables.AbilityPriority(class), len(dnd5e.Abilities), "class %s", class)
		s.NotEmpty(s.tables.AbilityMinimums(class), "class %s", class)
		s.NotEmpty(s.tables.Archetypes(class), "class %s", class)
	}
	for _, race := range dnd5e.Races {
		_, ok := s.tables.Race(race)
		s.True(ok, "race %s", race)
	}
}

func (s *RulesTestSuite) TestHitDie() {
	s.Equal(10, s.tables.HitDie(dnd5e.ClassFighter))
	s.Equal(12, s.tables.HitDie(dnd5e.ClassBarbarian))
	s.Equal(6, s.tables.HitDie(dnd5e.ClassWizard))
	s.Equal(rules.DefaultHitDie, s.tables.HitDie(dnd5e.Class("artificer")))
}

func (s *RulesTestSuite) TestRequirementsAreCanonicallyOrdered() {
	s.Equal([]rules.Requirement{
		{Ability: dnd5e.AbilityStrength, Minimum: 13},
		{Ability: dnd5e.AbilityCharisma, Minimum: 13},
	}, s.tables.AbilityMinimums(dnd5e.ClassPaladin))
	s.Equal([]rules.Requirement{{Ability: dnd5e.AbilityIntelligence, Minimum: 13}},
		s.tables.MulticlassPrerequisites(dnd5e.ClassWizard))
}

func (s *RulesTestSuite) TestAccessorsReturnCopies() {
	archetypes := s.tables.Archetypes(dnd5e.ClassFighter)
	archetypes[0] = "tampered"
	s.True(s.tables.IsArchetypeAllowed(dnd5e.ClassFighter, "champion"))

	spells := s.tables.SpellsForTier(dnd5e.ClassWizard, 1)
	spells[0].Name = "tampered"
	s.Equal("Magic Missile", s.tables.SpellsForTier(dnd5e.ClassWizard, 1)[0].Name)
}

func (s *RulesTestSuite) TestSpellcasting() {
	s.True(s.tables.HasSpellLearning(dnd5e.ClassWizard))
	s.False(s.tables.HasSpellLearning(dnd5e.ClassFighter))
	s.True(s.tables.IsSpellcaster(dnd5e.ClassCleric))
	s.False(s.tables.IsSpellcaster(dnd5e.ClassRogue))
	s.True(s.tables.IsSpellLearningLevel(dnd5e.ClassWizard, 3))
	s.False(s.tables.IsSpellLearningLevel(dnd5e.ClassWizard, 4))
	s.Equal(2, s.tables.MaxSpellsPerLevel(dnd5e.ClassWizard))
	s.Equal(0, s.tables.MaxSpellsPerLevel(dnd5e.ClassFighter))
}

func (s *RulesTestSuite) TestSpellSlotsFallBackToDefault() {
	s.Equal(dnd5e.SpellSlots{Cantrips: 4, Level1Slots: 4, Level2Slots: 3, Level3Slots: 2},
		s.tables.SpellSlots(dnd5e.ClassWizard, 5))
	s.Equal(dnd5e.SpellSlots{Cantrips: 2, Level1Slots: 2}, s.tables.SpellSlots(dnd5e.ClassWizard, 12))
	s.Equal(dnd5e.SpellSlots{Cantrips: 2, Level1Slots: 2}, s.tables.SpellSlots(dnd5e.ClassFighter, 3))
}

func (s *RulesTestSuite) TestAlignments() {
	count := 0
	for _, ethical := range []string{"lawful", "neutral", "chaotic"} {
		for _, moral := range []string{"good", "neutral", "evil"} {
			s.True(s.tables.IsCanonicalAlignment(dnd5e.Alignment{Moral: moral, Ethical: ethical}))
			count++
		}
	}
	s.Equal(9, count)
	s.False(s.tables.IsCanonicalAlignment(dnd5e.Alignment{Moral: "good", Ethical: "orderly"}))
}

func (s *RulesTestSuite) TestRaceRules() {
	elf, ok := s.tables.Race(dnd5e.RaceElf)
	s.Require().True(ok)
	s.Equal([]rules.Requirement{{Ability: dnd5e.AbilityDexterity, Minimum: 10}}, elf.HardMinimums)
	s.Less(elf.MinTotal, elf.MaxTotal)
}

func (s *RulesTestSuite) TestLoadRejectsIncompleteTables() {
	_, err := rules.Load(strings.NewReader(`
alignments: []
default_spell_slots: {cantrips: 2, level1_slots: 2}
races:
  orc: {total_score: {min: 60, max: 90}}
classes:
  fighter:
    hit_die: 7
    ability_priority: [strength]
    ability_minimums: {luck: 13}
`))
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), `unknown race "orc"`)
	s.Contains(err.Error(), "missing class wizard")
	s.Contains(err.Error(), "missing race human")
	s.Contains(err.Error(), "must be one of 6, 8, 10, 12 (got 7)")
	s.Contains(err.Error(), `unknown ability "luck"`)
	s.Contains(err.Error(), "expected 9 distinct alignments, got 0")
}

func (s *RulesTestSuite) TestLoadRejectsUnknownFields() {
	_, err := rules.Load(strings.NewReader("unexpected: true\n"))
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

package dnd5e_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-rules/internal/entities/dnd5e"
)

type CharacterTestSuite struct {
	suite.Suite
}

func TestCharacterSuite(t *testing.T) {
	suite.Run(t, new(CharacterTestSuite))
}

func (s *CharacterTestSuite) TestAbilityModifierFloorsNegatives() {
	testCases := map[int]int{3: -4, 8: -1, 9: -1, 10: 0, 11: 0, 14: 2, 20: 5}
	for score, expected := range testCases {
		s.Equal(expected, dnd5e.AbilityModifier(score), "score %d", score)
	}
}

func (s *CharacterTestSuite) TestAbilityScoresGetSet() {
	var scores dnd5e.AbilityScores
	for i, ability := range dnd5e.Abilities {
		scores.Set(ability, 10+i)
	}
	s.Equal(10, scores.Strength)
	s.Equal(15, scores.Get(dnd5e.AbilityCharisma))
	s.Equal(75, scores.Total())
	s.Equal(0, scores.Get(dnd5e.Ability("luck")))
}

func (s *CharacterTestSuite) TestTotalLevelAndClassLevels() {
	char := &dnd5e.Character{
		Class: dnd5e.ClassFighter,
		Level: 5,
		Multiclass: []dnd5e.MulticlassEntry{
			{Class: dnd5e.ClassWizard, Level: 2},
			{Class: dnd5e.ClassRogue, Level: 1},
		},
	}

	s.Equal(8, char.TotalLevel())
	levels := char.ClassLevels()
	s.Require().Len(levels, 3)
	s.Equal(dnd5e.MulticlassEntry{Class: dnd5e.ClassFighter, Level: 5}, levels[0])
	s.True(char.HasClass(dnd5e.ClassRogue))
	s.False(char.HasClass(dnd5e.ClassBard))
}

func (s *CharacterTestSuite) TestCloneIsDeep() {
	original := &dnd5e.Character{
		Name:              "Elira",
		Spells:            []dnd5e.Spell{{Name: "Fire Bolt"}},
		Inventory:         []dnd5e.InventoryItem{{ID: "rope", Weight: 10}},
		Skills:            map[string]int{"arcana": 2},
		Alignment:         &dnd5e.Alignment{Moral: dnd5e.MoralGood, Ethical: dnd5e.EthicalLawful},
		ArchetypeFeatures: []string{"evocation"},
		Traits:            dnd5e.Traits{Bonds: []string{"my tower"}},
	}

	clone := original.Clone()
	clone.Spells[0].Name = "Shield"
	clone.Inventory[0].Weight = 99
	clone.Skills["arcana"] = 9
	clone.Alignment.Moral = dnd5e.MoralEvil
	clone.Traits.Bonds[0] = "nothing"

	s.Equal("Fire Bolt", original.Spells[0].Name)
	s.Equal(10.0, original.Inventory[0].Weight)
	s.Equal(2, original.Skills["arcana"])
	s.Equal(dnd5e.MoralGood, original.Alignment.Moral)
	s.Equal("my tower", original.Traits.Bonds[0])
	s.Equal("evocation", clone.SelectedArchetype())
	s.Nil((*dnd5e.Character)(nil).Clone())
}

func (s *CharacterTestSuite) TestEnums() {
	s.True(dnd5e.RaceHalfOrc.IsValid())
	s.False(dnd5e.Race("orc").IsValid())
	s.True(dnd5e.ClassWarlock.IsValid())
	s.False(dnd5e.Class("artificer").IsValid())
	s.Equal("lawful good", dnd5e.Alignment{Moral: "good", Ethical: "lawful"}.String())
}

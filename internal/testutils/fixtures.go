package testutils

import (
	"github.com/KirkDiggler/rpg-rules/internal/entities/dnd5e"
)

// TestCharacterName is the default character name for fixtures
const TestCharacterName = "Thorin Oakenshield"

// CreateTestCharacter returns a level 1 dwarf fighter that passes
// validation without warnings
func CreateTestCharacter(id string) *dnd5e.Character {
	return &dnd5e.Character{
		ID:         id,
		Name:       TestCharacterName,
		Race:       dnd5e.RaceDwarf,
		Class:      dnd5e.ClassFighter,
		Level:      1,
		Experience: 0,
		AbilityScores: dnd5e.AbilityScores{
			Strength:     15,
			Dexterity:    13,
			Constitution: 14,
			Intelligence: 8,
			Wisdom:       12,
			Charisma:     10,
		},
		HitPoints:  12,
		ArmorClass: 17,
		Status:     dnd5e.StatusActive,
		Inventory: []dnd5e.InventoryItem{
			{ID: "item-axe", Name: "Battleaxe", Weight: 4},
		},
		Spells:            []dnd5e.Spell{},
		Skills:            map[string]int{"athletics": 1},
		ArchetypeFeatures: []string{"champion"},
		Alignment:         &dnd5e.Alignment{Moral: dnd5e.MoralGood, Ethical: dnd5e.EthicalLawful},
		Traits: dnd5e.Traits{
			Personality: []string{"gruff"},
			Ideals:      []string{"tradition"},
			Bonds:       []string{"the mountain home"},
			Flaws:       []string{"greed"},
		},
		Backstory: "Exiled heir of a fallen kingdom.",
		CreatedAt: 1700000000000,
		UpdatedAt: 1700000000000,
	}
}

// CreateTestCharacterInCampaign is CreateTestCharacter assigned to a campaign
func CreateTestCharacterInCampaign(id, campaignID string) *dnd5e.Character {
	c := CreateTestCharacter(id)
	c.CampaignID = campaignID
	return c
}

// CreateTestWizard returns a level 3 elf wizard with starting spells
func CreateTestWizard(id string) *dnd5e.Character {
	c := CreateTestCharacter(id)
	c.Name = "Elara Moonwhisper"
	c.Race = dnd5e.RaceElf
	c.Class = dnd5e.ClassWizard
	c.Level = 3
	c.Experience = 900
	c.AbilityScores = dnd5e.AbilityScores{
		Strength:     8,
		Dexterity:    14,
		Constitution: 13,
		Intelligence: 16,
		Wisdom:       12,
		Charisma:     10,
	}
	c.HitPoints = 14
	c.ArmorClass = 12
	c.Inventory = []dnd5e.InventoryItem{{ID: "item-book", Name: "Spellbook", Weight: 3}}
	c.Skills = map[string]int{"arcana": 2}
	c.ArchetypeFeatures = []string{"evocation"}
	c.Alignment = &dnd5e.Alignment{Moral: dnd5e.MoralNeutral, Ethical: dnd5e.EthicalChaotic}
	c.Spells = []dnd5e.Spell{
		{Name: "Fire Bolt", Level: 0, School: "evocation"},
		{Name: "Mage Hand", Level: 0, School: "conjuration"},
		{Name: "Magic Missile", Level: 1, School: "evocation"},
	}
	return c
}

package dnd5e

// Race is a playable race
type Race string

// Races
const (
	RaceHuman      Race = "human"
	RaceElf        Race = "elf"
	RaceDwarf      Race = "dwarf"
	RaceHalfling   Race = "halfling"
	RaceGnome      Race = "gnome"
	RaceHalfElf    Race = "half_elf"
	RaceHalfOrc    Race = "half_orc"
	RaceTiefling   Race = "tiefling"
	RaceDragonborn Race = "dragonborn"
)

// Races lists every playable race
var Races = []Race{
	RaceHuman,
	RaceElf,
	RaceDwarf,
	RaceHalfling,
	RaceGnome,
	RaceHalfElf,
	RaceHalfOrc,
	RaceTiefling,
	RaceDragonborn,
}

// IsValid reports whether r is a playable race
func (r Race) IsValid() bool {
	for _, race := range Races {
		if r == race {
			return true
		}
	}
	return false
}

// Class is a character class
type Class string

// Classes
const (
	ClassBarbarian Class = "barbarian"
	ClassBard      Class = "bard"
	ClassCleric    Class = "cleric"
	ClassDruid     Class = "druid"
	ClassFighter   Class = "fighter"
	ClassMonk      Class = "monk"
	ClassPaladin   Class = "paladin"
	ClassRanger    Class = "ranger"
	ClassRogue     Class = "rogue"
	ClassSorcerer  Class = "sorcerer"
	ClassWarlock   Class = "warlock"
	ClassWizard    Class = "wizard"
)

// Classes lists every class
var Classes = []Class{
	ClassBarbarian,
	ClassBard,
	ClassCleric,
	ClassDruid,
	ClassFighter,
	ClassMonk,
	ClassPaladin,
	ClassRanger,
	ClassRogue,
	ClassSorcerer,
	ClassWarlock,
	ClassWizard,
}

// IsValid reports whether c is a known class
func (c Class) IsValid() bool {
	for _, class := range Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Level bounds
const (
	MinLevel = 1
	MaxLevel = 20
)

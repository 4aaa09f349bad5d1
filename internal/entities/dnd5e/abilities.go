package dnd5e

// Ability names one of the six ability scores
type Ability string

// Abilities
const (
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
)

// Abilities lists every ability in canonical order
var Abilities = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

// Ability score bounds
const (
	MinAbilityScore = 3
	MaxAbilityScore = 20
)

// IsValid reports whether a is one of the six abilities
func (a Ability) IsValid() bool {
	for _, ability := range Abilities {
		if a == ability {
			return true
		}
	}
	return false
}

// AbilityScores holds the six ability scores
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// Get returns the score for an ability, 0 for an unknown ability
func (s AbilityScores) Get(a Ability) int {
	switch a {
	case AbilityStrength:
		return s.Strength
	case AbilityDexterity:
		return s.Dexterity
	case AbilityConstitution:
		return s.Constitution
	case AbilityIntelligence:
		return s.Intelligence
	case AbilityWisdom:
		return s.Wisdom
	case AbilityCharisma:
		return s.Charisma
	default:
		return 0
	}
}

// Set assigns the score for an ability; unknown abilities are ignored
func (s *AbilityScores) Set(a Ability, value int) {
	switch a {
	case AbilityStrength:
		s.Strength = value
	case AbilityDexterity:
		s.Dexterity = value
	case AbilityConstitution:
		s.Constitution = value
	case AbilityIntelligence:
		s.Intelligence = value
	case AbilityWisdom:
		s.Wisdom = value
	case AbilityCharisma:
		s.Charisma = value
	}
}

// Total sums all six scores
func (s AbilityScores) Total() int {
	return s.Strength + s.Dexterity + s.Constitution + s.Intelligence + s.Wisdom + s.Charisma
}

// AbilityModifier returns floor((score-10)/2)
func AbilityModifier(score int) int {
	return FloorDiv(score-10, 2)
}

// FloorDiv divides rounding toward negative infinity
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

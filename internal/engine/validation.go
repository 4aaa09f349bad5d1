package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/rpg-rules/internal/entities/dnd5e"
)

// Validation thresholds
const (
	minNameLength       = 2
	maxNameLength       = 50
	highLevelWarning    = 10
	highCombinedLevel   = 15
	maxSkillLevel       = 20
	skillPointsPerLevel = 2
	carryPerStrength    = 15
	maxBackstoryLength  = 1000
	maxTraitsPerList    = 3
)

// result accumulates errors and warnings across checks
type result struct {
	errors   []string
	warnings []string
}

func (r *result) errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *result) warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

type check func(e *RuleEngine, c *dnd5e.Character, r *result)

var checks = []check{
	checkBasicInfo,
	checkAbilityScores,
	checkClassRequirements,
	checkMulticlass,
	checkArchetype,
	checkAlignment,
	checkSkills,
	checkInventory,
	checkBackground,
}

// ValidateCharacter runs every check and collects all errors and warnings.
// The result is valid iff no check reported an error.
func (e *RuleEngine) ValidateCharacter(character *dnd5e.Character) *dnd5e.ValidationResult {
	r := &result{}

	if character == nil {
		r.errorf("character is required")
	} else {
		for _, fn := range checks {
			fn(e, character, r)
		}
	}

	return &dnd5e.ValidationResult{
		IsValid:  len(r.errors) == 0,
		Errors:   nonNil(r.errors),
		Warnings: nonNil(r.warnings),
	}
}

func checkBasicInfo(_ *RuleEngine, c *dnd5e.Character, r *result) {
	nameLength := utf8.RuneCountInString(strings.TrimSpace(c.Name))
	if nameLength < minNameLength {
		r.errorf("name must be at least %d characters", minNameLength)
	} else if nameLength > maxNameLength {
		r.warnf("name is longer than %d characters", maxNameLength)
	}

	if !c.Race.IsValid() {
		r.errorf("invalid race %q", c.Race)
	}
	if !c.Class.IsValid() {
		r.errorf("invalid class %q", c.Class)
	}

	switch {
	case c.Level < dnd5e.MinLevel || c.Level > dnd5e.MaxLevel:
		r.errorf("level %d must be between %d and %d", c.Level, dnd5e.MinLevel, dnd5e.MaxLevel)
	case c.Level > highLevelWarning:
		r.warnf("level %d is above %d", c.Level, highLevelWarning)
	}

	if c.HitPoints < 1 {
		r.errorf("hit points %d must be at least 1", c.HitPoints)
	}
	if c.Experience < 0 {
		r.errorf("experience %d must not be negative", c.Experience)
	}
	for _, spell := range c.Spells {
		if spell.Level < 0 {
			r.errorf("spell %q level %d must not be negative", spell.Name, spell.Level)
		}
	}
}

func checkAbilityScores(e *RuleEngine, c *dnd5e.Character, r *result) {
	for _, ability := range dnd5e.Abilities {
		score := c.AbilityScores.Get(ability)
		if score < dnd5e.MinAbilityScore || score > dnd5e.MaxAbilityScore {
			r.errorf("%s score %d must be between %d and %d",
				ability, score, dnd5e.MinAbilityScore, dnd5e.MaxAbilityScore)
		}
	}

	race, ok := e.rules.Race(c.Race)
	if !ok {
		return
	}

	if total := c.AbilityScores.Total(); total < race.MinTotal || total > race.MaxTotal {
		r.warnf("ability score total %d is outside the usual %s range %d-%d",
			total, c.Race, race.MinTotal, race.MaxTotal)
	}
	for _, req := range race.HardMinimums {
		if score := c.AbilityScores.Get(req.Ability); score < req.Minimum {
			r.errorf("%s requires %s %d or higher (has %d)", c.Race, req.Ability, req.Minimum, score)
		}
	}
}

func checkClassRequirements(e *RuleEngine, c *dnd5e.Character, r *result) {
	for _, req := range e.rules.AbilityMinimums(c.Class) {
		if score := c.AbilityScores.Get(req.Ability); score < req.Minimum {
			r.errorf("%s requires %s %d or higher (has %d)", c.Class, req.Ability, req.Minimum, score)
		}
	}
}

func checkMulticlass(e *RuleEngine, c *dnd5e.Character, r *result) {
	if len(c.Multiclass) == 0 {
		return
	}

	seen := make(map[dnd5e.Class]bool, len(c.Multiclass))
	for _, entry := range c.Multiclass {
		if !entry.Class.IsValid() {
			r.errorf("invalid multiclass class %q", entry.Class)
			continue
		}
		if seen[entry.Class] {
			r.errorf("multiclass %s is listed more than once", entry.Class)
			continue
		}
		seen[entry.Class] = true

		if entry.Level < dnd5e.MinLevel {
			r.errorf("multiclass %s level %d must be at least %d", entry.Class, entry.Level, dnd5e.MinLevel)
		}
		r.errors = append(r.errors, e.MulticlassEligibility(c, entry.Class)...)
	}

	switch total := c.TotalLevel(); {
	case total > dnd5e.MaxLevel:
		r.errorf("combined level %d exceeds maximum of %d", total, dnd5e.MaxLevel)
	case total > highCombinedLevel:
		r.warnf("combined level %d is above %d", total, highCombinedLevel)
	}
}

func checkArchetype(e *RuleEngine, c *dnd5e.Character, r *result) {
	archetype := c.SelectedArchetype()
	if archetype == "" {
		r.warnf("no archetype selected")
		return
	}
	if !e.rules.IsArchetypeAllowed(c.Class, archetype) {
		r.errorf("archetype %q is not available to %s (choose from: %s)",
			archetype, c.Class, strings.Join(e.rules.Archetypes(c.Class), ", "))
	}
}

func checkAlignment(e *RuleEngine, c *dnd5e.Character, r *result) {
	if c.Alignment == nil {
		r.warnf("no alignment selected")
		return
	}
	if !e.rules.IsCanonicalAlignment(*c.Alignment) {
		r.errorf("invalid alignment %q", c.Alignment.String())
	}
}

func checkSkills(_ *RuleEngine, c *dnd5e.Character, r *result) {
	names := make([]string, 0, len(c.Skills))
	for name := range c.Skills {
		names = append(names, name)
	}
	sort.Strings(names)

	total := 0
	for _, name := range names {
		level := c.Skills[name]
		if level < 0 || level > maxSkillLevel {
			r.errorf("skill %s level %d must be between 0 and %d", name, level, maxSkillLevel)
		}
		total += level
	}

	budget := c.Level * skillPointsPerLevel
	switch {
	case total > budget:
		r.errorf("skill points %d exceed budget %d", total, budget)
	case budget > 0 && total*5 >= budget*4:
		r.warnf("skill points %d use at least 80%% of budget %d", total, budget)
	}
}

func checkInventory(_ *RuleEngine, c *dnd5e.Character, r *result) {
	var weight float64
	seen := make(map[string]bool, len(c.Inventory))
	for _, item := range c.Inventory {
		if item.Weight < 0 {
			r.errorf("inventory item %q has negative weight", item.ID)
		}
		weight += item.Weight

		if seen[item.ID] {
			r.errorf("duplicate inventory item id %q", item.ID)
		}
		seen[item.ID] = true
	}

	capacity := carryPerStrength * c.AbilityScores.Strength
	switch {
	case weight > float64(capacity):
		r.errorf("inventory weight %s exceeds carrying capacity %d", formatWeight(weight), capacity)
	case capacity > 0 && weight >= 0.8*float64(capacity):
		r.warnf("inventory weight %s is near carrying capacity %d", formatWeight(weight), capacity)
	}
}

func checkBackground(_ *RuleEngine, c *dnd5e.Character, r *result) {
	if utf8.RuneCountInString(c.Backstory) > maxBackstoryLength {
		r.warnf("backstory is longer than %d characters", maxBackstoryLength)
	}

	categories := []struct {
		name   string
		traits []string
	}{
		{"personality", c.Traits.Personality},
		{"ideals", c.Traits.Ideals},
		{"bonds", c.Traits.Bonds},
		{"flaws", c.Traits.Flaws},
	}
	for _, category := range categories {
		switch n := len(category.traits); {
		case n == 0:
			r.warnf("no %s traits", category.name)
		case n > maxTraitsPerList:
			r.warnf("%d %s traits, more than %d", n, category.name, maxTraitsPerList)
		}
	}
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Package dnd5e holds the character record and the value types the rules
// engine reads. Types here carry data and small helpers only; rule
// decisions live in internal/engine.
package dnd5e

// Status is the lifecycle state of a stored character
type Status string

// StatusActive marks a character that is in play
const StatusActive Status = "active"

// Character is a persisted player character
type Character struct {
	ID                string            `json:"id,omitempty"`
	Name              string            `json:"name"`
	Race              Race              `json:"race"`
	Class             Class             `json:"class"`
	Level             int               `json:"level"`
	Experience        int               `json:"experience"`
	AbilityScores     AbilityScores     `json:"ability_scores"`
	HitPoints         int               `json:"hit_points"`
	ArmorClass        int               `json:"armor_class"`
	CampaignID        string            `json:"campaign_id,omitempty"`
	Status            Status            `json:"status,omitempty"`
	Inventory         []InventoryItem   `json:"inventory"`
	Spells            []Spell           `json:"spells"`
	Skills            map[string]int    `json:"skills,omitempty"`
	Multiclass        []MulticlassEntry `json:"multiclass,omitempty"`
	ArchetypeFeatures []string          `json:"archetype_features,omitempty"`
	Alignment         *Alignment        `json:"alignment,omitempty"`
	Traits            Traits            `json:"traits"`
	Backstory         string            `json:"backstory,omitempty"`
	CreatedAt         int64             `json:"created_at,omitempty"`
	UpdatedAt         int64             `json:"updated_at,omitempty"`
}

// MulticlassEntry is a class added on top of the primary class
type MulticlassEntry struct {
	Class Class `json:"class"`
	Level int   `json:"level"`
}

// Traits groups the four roleplay trait lists
type Traits struct {
	Personality []string `json:"personality"`
	Ideals      []string `json:"ideals"`
	Bonds       []string `json:"bonds"`
	Flaws       []string `json:"flaws"`
}

// TotalLevel is the primary class level plus every multiclass level
func (c *Character) TotalLevel() int {
	total := c.Level
	for _, entry := range c.Multiclass {
		total += entry.Level
	}
	return total
}

// ClassLevels returns the full class progression, primary class first
func (c *Character) ClassLevels() []MulticlassEntry {
	levels := make([]MulticlassEntry, 0, len(c.Multiclass)+1)
	levels = append(levels, MulticlassEntry{Class: c.Class, Level: c.Level})
	return append(levels, c.Multiclass...)
}

// HasClass reports whether class is the primary class or a multiclass entry
func (c *Character) HasClass(class Class) bool {
	for _, entry := range c.ClassLevels() {
		if entry.Class == class {
			return true
		}
	}
	return false
}

// SelectedArchetype returns the first archetype feature, or "" when none
func (c *Character) SelectedArchetype() string {
	if len(c.ArchetypeFeatures) == 0 {
		return ""
	}
	return c.ArchetypeFeatures[0]
}

// KnowsSpell reports whether a spell with the given name has been learned
func (c *Character) KnowsSpell(name string) bool {
	for _, spell := range c.Spells {
		if spell.Name == name {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can build a candidate without
// touching the stored snapshot.
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}

	out := *c
	out.Inventory = cloneSlice(c.Inventory)
	out.Spells = cloneSlice(c.Spells)
	out.Multiclass = cloneSlice(c.Multiclass)
	out.ArchetypeFeatures = cloneSlice(c.ArchetypeFeatures)
	out.Traits = Traits{
		Personality: cloneSlice(c.Traits.Personality),
		Ideals:      cloneSlice(c.Traits.Ideals),
		Bonds:       cloneSlice(c.Traits.Bonds),
		Flaws:       cloneSlice(c.Traits.Flaws),
	}
	if c.Skills != nil {
		out.Skills = make(map[string]int, len(c.Skills))
		for k, v := range c.Skills {
			out.Skills[k] = v
		}
	}
	if c.Alignment != nil {
		alignment := *c.Alignment
		out.Alignment = &alignment
	}
	return &out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

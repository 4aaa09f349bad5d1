package rules

import (
	"bytes"
	_ "embed"
	"io"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-rules/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-rules/internal/errors"
)

//go:embed rules.yaml
var embeddedRules []byte

var (
	defaultOnce   sync.Once
	defaultTables *Tables
	defaultErr    error
)

type document struct {
	Alignments        []alignmentDoc      `yaml:"alignments"`
	DefaultSpellSlots slotsDoc            `yaml:"default_spell_slots"`
	Races             map[string]raceDoc  `yaml:"races"`
	Classes           map[string]classDoc `yaml:"classes"`
}

type alignmentDoc struct {
	Moral   string `yaml:"moral"`
	Ethical string `yaml:"ethical"`
}

type bandDoc struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type raceDoc struct {
	TotalScore   bandDoc        `yaml:"total_score"`
	HardMinimums map[string]int `yaml:"hard_minimums"`
}

type classDoc struct {
	HitDie                  int              `yaml:"hit_die"`
	ArmorBonus              int              `yaml:"armor_bonus"`
	AbilityPriority         []string         `yaml:"ability_priority"`
	AbilityMinimums         map[string]int   `yaml:"ability_minimums"`
	MulticlassPrerequisites map[string]int   `yaml:"multiclass_prerequisites"`
	Archetypes              []string         `yaml:"archetypes"`
	Spellcasting            *spellcastingDoc `yaml:"spellcasting"`
}

type spellcastingDoc struct {
	LearningLevels    []int              `yaml:"learning_levels"`
	MaxSpellsPerLevel int                `yaml:"max_spells_per_level"`
	SpellsByTier      map[int][]spellDoc `yaml:"spells_by_tier"`
	Slots             map[int]slotsDoc   `yaml:"slots"`
	StartingSpells    []spellDoc         `yaml:"starting_spells"`
}

type spellDoc struct {
	Name   string `yaml:"name"`
	Level  int    `yaml:"level"`
	School string `yaml:"school"`
}

type slotsDoc struct {
	Cantrips    int `yaml:"cantrips"`
	Level1Slots int `yaml:"level1_slots"`
	Level2Slots int `yaml:"level2_slots"`
	Level3Slots int `yaml:"level3_slots"`
}

// Default returns the tables compiled into the binary
func Default() (*Tables, error) {
	defaultOnce.Do(func() {
		defaultTables, defaultErr = Load(bytes.NewReader(embeddedRules))
	})
	return defaultTables, defaultErr
}

// MustDefault is Default for callers that cannot continue without rules
func MustDefault() *Tables {
	tables, err := Default()
	if err != nil {
		panic(err)
	}
	return tables
}

// LoadFile reads tables from a YAML file on disk
func LoadFile(path string) (*Tables, error) {
	f, err := os.Open(path) // #nosec G304 -- operator-supplied rules path
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open rules file %s", path)
	}
	defer func() { _ = f.Close() }()

	return Load(f)
}

// Load decodes and validates tables. Every class and race must be covered
// and every key must name a known enum value.
func Load(r io.Reader) (*Tables, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode rules")
	}

	vb := errors.NewValidationBuilder()
	tables := &Tables{
		classes:      make(map[dnd5e.Class]*classRules, len(doc.Classes)),
		races:        make(map[dnd5e.Race]RaceRules, len(doc.Races)),
		alignments:   make(map[dnd5e.Alignment]bool, len(doc.Alignments)),
		defaultSlots: dnd5e.SpellSlots(doc.DefaultSpellSlots),
	}

	loadAlignments(tables, doc.Alignments, vb)

	for key, rd := range doc.Races {
		race := dnd5e.Race(key)
		if !race.IsValid() {
			vb.Fieldf("races", "unknown race %q", key)
			continue
		}
		if rd.TotalScore.Min > rd.TotalScore.Max {
			vb.Fieldf("races."+key, "total score band min %d exceeds max %d", rd.TotalScore.Min, rd.TotalScore.Max)
		}
		tables.races[race] = RaceRules{
			MinTotal:     rd.TotalScore.Min,
			MaxTotal:     rd.TotalScore.Max,
			HardMinimums: requirements("races."+key+".hard_minimums", rd.HardMinimums, vb),
		}
	}
	for _, race := range dnd5e.Races {
		if _, ok := doc.Races[string(race)]; !ok {
			vb.Fieldf("races", "missing race %s", race)
		}
	}

	for key, cd := range doc.Classes {
		class := dnd5e.Class(key)
		if !class.IsValid() {
			vb.Fieldf("classes", "unknown class %q", key)
			continue
		}
		tables.classes[class] = loadClass("classes."+key, cd, vb)
	}
	for _, class := range dnd5e.Classes {
		if _, ok := doc.Classes[string(class)]; !ok {
			vb.Fieldf("classes", "missing class %s", class)
		}
	}

	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "invalid rules")
	}

	return tables, nil
}

func loadAlignments(tables *Tables, docs []alignmentDoc, vb *errors.ValidationBuilder) {
	morals := []string{dnd5e.MoralGood, dnd5e.MoralNeutral, dnd5e.MoralEvil}
	ethics := []string{dnd5e.EthicalLawful, dnd5e.EthicalNeutral, dnd5e.EthicalChaotic}

	for _, ad := range docs {
		errors.ValidateEnum("alignments.moral", ad.Moral, morals, vb)
		errors.ValidateEnum("alignments.ethical", ad.Ethical, ethics, vb)
		tables.alignments[dnd5e.Alignment{Moral: ad.Moral, Ethical: ad.Ethical}] = true
	}
	if len(tables.alignments) != len(morals)*len(ethics) {
		vb.Fieldf("alignments", "expected %d distinct alignments, got %d", len(morals)*len(ethics), len(tables.alignments))
	}
}

func loadClass(field string, cd classDoc, vb *errors.ValidationBuilder) *classRules {
	switch cd.HitDie {
	case 6, 8, 10, 12:
	default:
		vb.Fieldf(field+".hit_die", "must be one of 6, 8, 10, 12 (got %d)", cd.HitDie)
	}

	rules := &classRules{
		hitDie:     cd.HitDie,
		armorBonus: cd.ArmorBonus,
		minimums:   requirements(field+".ability_minimums", cd.AbilityMinimums, vb),
		prereqs:    requirements(field+".multiclass_prerequisites", cd.MulticlassPrerequisites, vb),
		archetypes: append([]string(nil), cd.Archetypes...),
	}

	seen := make(map[dnd5e.Ability]bool, len(cd.AbilityPriority))
	for _, name := range cd.AbilityPriority {
		ability := dnd5e.Ability(name)
		if !ability.IsValid() || seen[ability] {
			vb.Fieldf(field+".ability_priority", "invalid or repeated ability %q", name)
			continue
		}
		seen[ability] = true
		rules.priority = append(rules.priority, ability)
	}
	if len(rules.priority) != len(dnd5e.Abilities) {
		vb.Fieldf(field+".ability_priority", "must list all %d abilities", len(dnd5e.Abilities))
	}

	if cd.Spellcasting != nil {
		rules.spellcasting = loadSpellcasting(field+".spellcasting", cd.Spellcasting, vb)
	}

	return rules
}

func loadSpellcasting(field string, sd *spellcastingDoc, vb *errors.ValidationBuilder) *spellcasting {
	sc := &spellcasting{
		learningLevels: append([]int(nil), sd.LearningLevels...),
		maxPerLevel:    sd.MaxSpellsPerLevel,
		tiers:          make(map[int][]dnd5e.Spell, len(sd.SpellsByTier)),
		slots:          make(map[int]dnd5e.SpellSlots, len(sd.Slots)),
		starting:       toSpells(sd.StartingSpells),
	}
	sort.Ints(sc.learningLevels)

	for _, level := range sc.learningLevels {
		if level < dnd5e.MinLevel || level > dnd5e.MaxLevel {
			vb.Fieldf(field+".learning_levels", "level %d outside %d-%d", level, dnd5e.MinLevel, dnd5e.MaxLevel)
		}
	}
	if sc.maxPerLevel < 0 {
		vb.Fieldf(field+".max_spells_per_level", "must not be negative (got %d)", sc.maxPerLevel)
	}
	for tier, spells := range sd.SpellsByTier {
		if tier < 0 {
			vb.Fieldf(field+".spells_by_tier", "tier %d must not be negative", tier)
		}
		sc.tiers[tier] = toSpells(spells)
	}
	for level, slots := range sd.Slots {
		if level < dnd5e.MinLevel || level > dnd5e.MaxLevel {
			vb.Fieldf(field+".slots", "level %d outside %d-%d", level, dnd5e.MinLevel, dnd5e.MaxLevel)
		}
		sc.slots[level] = dnd5e.SpellSlots(slots)
	}

	return sc
}

// requirements converts an ability->minimum map into a slice in
// canonical ability order so error output is stable.
func requirements(field string, raw map[string]int, vb *errors.ValidationBuilder) []Requirement {
	for name := range raw {
		if !dnd5e.Ability(name).IsValid() {
			vb.Fieldf(field, "unknown ability %q", name)
		}
	}

	var reqs []Requirement
	for _, ability := range dnd5e.Abilities {
		if minimum, ok := raw[string(ability)]; ok {
			reqs = append(reqs, Requirement{Ability: ability, Minimum: minimum})
		}
	}
	return reqs
}

func toSpells(docs []spellDoc) []dnd5e.Spell {
	spells := make([]dnd5e.Spell, len(docs))
	for i, d := range docs {
		spells[i] = dnd5e.Spell{Name: d.Name, Level: d.Level, School: d.School}
	}
	return spells
}

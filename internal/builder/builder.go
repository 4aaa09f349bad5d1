// Package builder produces the starting stats for a new character and the
// hit points gained on level-up, rolling through the rpg-toolkit dice.
package builder

//go:generate mockgen -destination=mock/mock_builder.go -package=buildermock github.com/KirkDiggler/rpg-rules/internal/builder Builder

import (
	"context"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-rules/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-rules/internal/errors"
	"github.com/KirkDiggler/rpg-rules/internal/rules"
)

// Method selects how ability scores are generated
type Method string

// Generation methods
const (
	MethodStandard Method = "standard"
	MethodHeroic   Method = "heroic"
	MethodElite    Method = "elite"
)

// Methods lists every generation method
var Methods = []Method{MethodStandard, MethodHeroic, MethodElite}

// IsValid reports whether m is a known generation method
func (m Method) IsValid() bool {
	for _, method := range Methods {
		if m == method {
			return true
		}
	}
	return false
}

// eliteArray is the fixed score set for MethodElite
var eliteArray = []int{15, 14, 13, 12, 10, 8}

// BuildInput selects what to build
type BuildInput struct {
	Class  dnd5e.Class
	Race   dnd5e.Race
	Method Method
}

// BuildOutput holds the starting stats
type BuildOutput struct {
	AbilityScores dnd5e.AbilityScores
	HitPoints     int
	ArmorClass    int
}

// LevelUpHitPointsInput describes the character gaining a level
type LevelUpHitPointsInput struct {
	Class        dnd5e.Class
	Constitution int
}

// LevelUpHitPointsOutput holds the rolled hit point gain
type LevelUpHitPointsOutput struct {
	HitPoints int
}

// Builder generates starting stats and level-up hit points
type Builder interface {
	Build(ctx context.Context, input *BuildInput) (*BuildOutput, error)
	LevelUpHitPoints(ctx context.Context, input *LevelUpHitPointsInput) (*LevelUpHitPointsOutput, error)
}

// Config holds the builder dependencies
type Config struct {
	Roller dice.Roller
	Rules  *rules.Tables
}

// Validate checks the configuration
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.Roller == nil {
		vb.RequiredField("Roller")
	}
	if cfg.Rules == nil {
		vb.RequiredField("Rules")
	}

	return vb.Build()
}

// DiceBuilder implements Builder with dice rolls
type DiceBuilder struct {
	roller dice.Roller
	rules  *rules.Tables
}

var _ Builder = (*DiceBuilder)(nil)

// New creates a dice-backed builder
func New(cfg *Config) (*DiceBuilder, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &DiceBuilder{
		roller: cfg.Roller,
		rules:  cfg.Rules,
	}, nil
}

// Build generates ability scores with the requested method, assigns them
// along the class's ability priority and derives hit points and armor class.
func (b *DiceBuilder) Build(ctx context.Context, input *BuildInput) (*BuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if !input.Class.IsValid() {
		vb.Fieldf("Class", "unknown class %q", input.Class)
	}
	if !input.Race.IsValid() {
		vb.Fieldf("Race", "unknown race %q", input.Race)
	}
	if !input.Method.IsValid() {
		vb.Fieldf("Method", "unknown generation method %q", input.Method)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	values, err := b.generate(input.Method)
	if err != nil {
		return nil, err
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))

	var scores dnd5e.AbilityScores
	for i, ability := range b.rules.AbilityPriority(input.Class) {
		scores.Set(ability, values[i])
	}

	output := &BuildOutput{
		AbilityScores: scores,
		HitPoints:     max(1, b.rules.HitDie(input.Class)+dnd5e.AbilityModifier(scores.Constitution)),
		ArmorClass:    10 + b.rules.ArmorBonus(input.Class) + dnd5e.AbilityModifier(scores.Dexterity),
	}

	slog.DebugContext(ctx, "built starting stats",
		"class", input.Class,
		"race", input.Race,
		"method", input.Method,
		"hit_points", output.HitPoints,
		"armor_class", output.ArmorClass)

	return output, nil
}

func (b *DiceBuilder) generate(method Method) ([]int, error) {
	if method == MethodElite {
		return append([]int(nil), eliteArray...), nil
	}

	values := make([]int, len(dnd5e.Abilities))
	for i := range values {
		var err error
		switch method {
		case MethodStandard:
			values[i], err = b.rollDropLowest(4, 6)
		case MethodHeroic:
			values[i], err = b.rollPlus(2, 6, 6)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll ability scores")
		}
	}
	return values, nil
}

func (b *DiceBuilder) rollDropLowest(count, size int) (int, error) {
	rolls, err := b.roller.RollN(count, size)
	if err != nil {
		return 0, err
	}
	if len(rolls) == 0 {
		return 0, errors.Internalf("roller returned no dice for %dd%d", count, size)
	}

	total, lowest := 0, rolls[0]
	for _, r := range rolls {
		total += r
		lowest = min(lowest, r)
	}
	return total - lowest, nil
}

func (b *DiceBuilder) rollPlus(count, size, bonus int) (int, error) {
	rolls, err := b.roller.RollN(count, size)
	if err != nil {
		return 0, err
	}

	total := bonus
	for _, r := range rolls {
		total += r
	}
	return total, nil
}

// LevelUpHitPoints rolls one hit die plus the constitution modifier,
// minimum 1
func (b *DiceBuilder) LevelUpHitPoints(ctx context.Context, input *LevelUpHitPointsInput) (*LevelUpHitPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	hitDie := b.rules.HitDie(input.Class)
	roll, err := b.roller.Roll(hitDie)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll d%d", hitDie)
	}

	hp := max(1, roll+dnd5e.AbilityModifier(input.Constitution))

	slog.DebugContext(ctx, "rolled level-up hit points",
		"class", input.Class,
		"roll", roll,
		"hit_points", hp)

	return &LevelUpHitPointsOutput{HitPoints: hp}, nil
}

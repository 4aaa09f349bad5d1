package dnd5e

import "fmt"

// Spell is a learned spell. Level 0 is a cantrip.
type Spell struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	School   string `json:"school"`
	Prepared bool   `json:"prepared,omitempty"`
}

// InventoryItem is a carried item
type InventoryItem struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// Moral and ethical alignment axes
const (
	MoralGood    = "good"
	MoralNeutral = "neutral"
	MoralEvil    = "evil"

	EthicalLawful  = "lawful"
	EthicalNeutral = "neutral"
	EthicalChaotic = "chaotic"
)

// Alignment is a (moral, ethical) pair
type Alignment struct {
	Moral   string `json:"moral"`
	Ethical string `json:"ethical"`
}

// String renders the alignment the way players say it, e.g. "lawful good"
func (a Alignment) String() string {
	return fmt.Sprintf("%s %s", a.Ethical, a.Moral)
}

// SpellSlots is the per-day spell allocation. Zero level2/level3 slots
// mean the tier is not available yet.
type SpellSlots struct {
	Cantrips    int `json:"cantrips"`
	Level1Slots int `json:"level1_slots"`
	Level2Slots int `json:"level2_slots,omitempty"`
	Level3Slots int `json:"level3_slots,omitempty"`
}

// ValidationResult aggregates blocking errors and advisory warnings.
// IsValid is true iff Errors is empty.
type ValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

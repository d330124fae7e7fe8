package gamedata

import "fmt"

// MoveCategory selects which damage rule a move follows.
// It is assigned once when the move table is loaded.
type MoveCategory int

const (
	CategoryStatus MoveCategory = iota
	CategoryStandard
	CategoryOHKO
	CategoryFixedDamage
	CategoryMultiHit
	CategoryDoubleHit
	CategoryHighCrit
	CategoryFlinch10
	CategoryFlinch30
	CategorySelfDestruct
	CategoryAlwaysHits
)

// String returns a human-readable category name.
func (c MoveCategory) String() string {
	switch c {
	case CategoryStatus:
		return "status"
	case CategoryStandard:
		return "standard"
	case CategoryOHKO:
		return "ohko"
	case CategoryFixedDamage:
		return "fixed_damage"
	case CategoryMultiHit:
		return "multi_hit"
	case CategoryDoubleHit:
		return "double_hit"
	case CategoryHighCrit:
		return "high_crit"
	case CategoryFlinch10:
		return "flinch_10"
	case CategoryFlinch30:
		return "flinch_30"
	case CategorySelfDestruct:
		return "self_destruct"
	case CategoryAlwaysHits:
		return "always_hits"
	default:
		return "unknown"
	}
}

// FixedKind describes how a fixed-damage move computes its payout.
type FixedKind int

const (
	FixedNone     FixedKind = iota
	FixedConstant           // Amount HP
	FixedLevel              // attacker level
	FixedPsywave            // uniform 1..floor(1.5*level)
)

// FixedDamage is the payout rule of a fixed-damage move.
type FixedDamage struct {
	Kind   FixedKind
	Amount int
}

// MoveDef defines a move loaded from the move table.
type MoveDef struct {
	Name     string `json:"name" yaml:"-"`
	Power    int    `json:"power" yaml:"power"`       // 0 for status moves
	Type     Type   `json:"type" yaml:"type"`         // Elemental type
	Accuracy int    `json:"accuracy" yaml:"accuracy"` // Hit chance in percent, see AccuracyRate

	Category MoveCategory `json:"-" yaml:"-"`
	Fixed    FixedDamage  `json:"-" yaml:"-"`
}

// IsDamaging returns true if the move has base power.
func (m *MoveDef) IsDamaging() bool {
	return m.Power > 0
}

func (m *MoveDef) validate(rules *Ruleset) error {
	if m.Name == "" {
		return fmt.Errorf("move with empty name")
	}
	if m.Power < 0 {
		return fmt.Errorf("move %s: negative power %d", m.Name, m.Power)
	}
	if m.Accuracy < 0 || m.Accuracy > 255 {
		return fmt.Errorf("move %s: accuracy %d outside [0,255]", m.Name, m.Accuracy)
	}
	return validateTypes("move "+m.Name, []Type{m.Type}, rules.types)
}

// MovesFile represents the structure of gen<N>_moves.json.
type MovesFile struct {
	Generation int       `json:"generation"`
	Moves      []MoveDef `json:"moves"`
}

// LoadMoves loads move definitions from the embedded table for a generation.
func LoadMoves(generation int) ([]MoveDef, error) {
	file, err := Load[MovesFile](fmt.Sprintf("gen%d_moves.json", generation))
	if err != nil {
		return nil, err
	}
	return file.Moves, nil
}

// LoadMovesYAML loads a map-keyed YAML move table from disk.
func LoadMovesYAML(path string) ([]MoveDef, error) {
	byName, err := LoadYAMLFile[map[string]MoveDef](path)
	if err != nil {
		return nil, err
	}
	moves := make([]MoveDef, 0, len(byName))
	for _, name := range sortedKeys(byName) {
		move := byName[name]
		move.Name = name
		moves = append(moves, move)
	}
	return moves, nil
}

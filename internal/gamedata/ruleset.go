package gamedata

import "fmt"

// =============================================================================
// RULESET
// =============================================================================
//
// A Ruleset bundles everything about a generation that is not per-species or
// per-move data: the type chart, the stat stage multipliers, which types use
// the Special stat, and which moves follow a special damage rule. A Ruleset is
// never mutated after construction and is safe for concurrent reads.

const (
	// MinStage and MaxStage bound in-battle stat stages.
	MinStage = -6
	MaxStage = 6

	// OverflowThreshold is the largest stat the damage routine handles
	// before both stats are scaled down by 4.
	OverflowThreshold = 255
)

// TypeChart maps attacking type to defending type to damage multiplier.
// Missing entries are neutral.
type TypeChart map[Type]map[Type]float64

// Multiplier returns the raw chart entry for attack against defend, or 1.0.
func (c TypeChart) Multiplier(attack, defend Type) float64 {
	if row, ok := c[attack]; ok {
		if multi, ok := row[defend]; ok {
			return multi
		}
	}
	return 1.0
}

// StageTable holds the multiplier for every stage from MinStage to MaxStage.
type StageTable [MaxStage - MinStage + 1]float64

// Multiplier returns the multiplier for a stage, clamped to the valid range.
func (t StageTable) Multiplier(stage int) float64 {
	return t[ClampStage(stage)-MinStage]
}

// ClampStage limits a stage to [MinStage, MaxStage].
func ClampStage(stage int) int {
	if stage < MinStage {
		return MinStage
	}
	if stage > MaxStage {
		return MaxStage
	}
	return stage
}

// Ruleset is the immutable rule data for one generation.
type Ruleset struct {
	types        []Type
	chart        TypeChart
	stages       StageTable
	specialTypes map[Type]bool
	categories   map[string]MoveCategory
	fixedDamage  map[string]FixedDamage
}

// RulesetFor returns the ruleset for a generation.
func RulesetFor(generation int) (*Ruleset, error) {
	switch generation {
	case 1:
		return Gen1(), nil
	default:
		return nil, fmt.Errorf("no ruleset for generation %d", generation)
	}
}

// Types returns the elemental types in chart order.
func (r *Ruleset) Types() []Type {
	out := make([]Type, len(r.types))
	copy(out, r.types)
	return out
}

// Multiplier returns the raw type chart entry for attack against defend.
func (r *Ruleset) Multiplier(attack, defend Type) float64 {
	return r.chart.Multiplier(attack, defend)
}

// StageMultiplier returns the stat multiplier for a stage.
func (r *Ruleset) StageMultiplier(stage int) float64 {
	return r.stages.Multiplier(stage)
}

// Stages returns the stage multiplier table.
func (r *Ruleset) Stages() StageTable { return r.stages }

// IsSpecial reports whether moves of type t use the Special stat.
func (r *Ruleset) IsSpecial(t Type) bool { return r.specialTypes[t] }

// Classify assigns the damage category of a move. Moves without a special
// rule are Standard when they have power and Status otherwise.
func (r *Ruleset) Classify(name string, power int) (MoveCategory, FixedDamage) {
	if fixed, ok := r.fixedDamage[name]; ok {
		return CategoryFixedDamage, fixed
	}
	if category, ok := r.categories[name]; ok {
		if category == CategoryOHKO || power > 0 {
			return category, FixedDamage{}
		}
	}
	if power <= 0 {
		return CategoryStatus, FixedDamage{}
	}
	return CategoryStandard, FixedDamage{}
}

// Gen1 returns the Red/Blue/Yellow ruleset.
func Gen1() *Ruleset {
	categories := make(map[string]MoveCategory)
	assign := func(category MoveCategory, names ...string) {
		for _, name := range names {
			categories[name] = category
		}
	}
	assign(CategoryOHKO, "Fissure", "Guillotine", "Horn Drill")
	assign(CategoryMultiHit, "Barrage", "Bind", "Clamp", "Comet Punch", "Doubleslap", "Fire Spin",
		"Fury Attack", "Fury Swipes", "Pin Missile", "Spike Cannon", "Wrap")
	assign(CategoryDoubleHit, "Bonemerang", "Double Kick", "Twineedle")
	assign(CategoryHighCrit, "Crabhammer", "Karate Chop", "Razor Leaf", "Slash")
	assign(CategoryFlinch10, "Bite", "Bone Club", "Hyper Fang")
	assign(CategoryFlinch30, "Headbutt", "Low Kick", "Rolling Kick", "Stomp")
	assign(CategorySelfDestruct, "Explosion", "Selfdestruct")
	assign(CategoryAlwaysHits, "Swift")

	return &Ruleset{
		types: append([]Type(nil), gen1Types...),
		chart: TypeChart{
			TypeNormal: {TypeRock: 0.5, TypeGhost: 0},
			TypeFighting: {
				TypeNormal: 2, TypeFlying: 0.5, TypePoison: 0.5, TypeRock: 2,
				TypeBug: 0.5, TypeGhost: 0, TypePsychic: 0.5, TypeIce: 2,
			},
			TypeFlying: {TypeFighting: 2, TypeRock: 0.5, TypeBug: 2, TypeGrass: 2, TypeElectric: 0.5},
			TypePoison: {TypePoison: 0.5, TypeGround: 0.5, TypeRock: 0.5, TypeBug: 2, TypeGhost: 0.5, TypeGrass: 2},
			TypeGround: {
				TypeFlying: 0, TypePoison: 2, TypeRock: 2, TypeBug: 0.5,
				TypeFire: 2, TypeGrass: 0.5, TypeElectric: 2,
			},
			TypeRock: {TypeFighting: 0.5, TypeFlying: 2, TypeGround: 0.5, TypeBug: 2, TypeFire: 2, TypeIce: 2},
			TypeBug: {
				TypeFighting: 0.5, TypeFlying: 0.5, TypePoison: 2, TypeGhost: 0.5,
				TypeFire: 0.5, TypeGrass: 2, TypePsychic: 2,
			},
			TypeGhost: {TypeNormal: 0, TypeGhost: 2, TypePsychic: 0},
			TypeFire: {
				TypeRock: 0.5, TypeBug: 2, TypeFire: 0.5, TypeWater: 0.5,
				TypeGrass: 2, TypeIce: 2, TypeDragon: 0.5,
			},
			TypeWater: {TypeGround: 2, TypeRock: 2, TypeFire: 2, TypeWater: 0.5, TypeGrass: 0.5, TypeDragon: 0.5},
			TypeGrass: {
				TypeFlying: 0.5, TypePoison: 0.5, TypeGround: 2, TypeRock: 2, TypeBug: 0.5,
				TypeFire: 0.5, TypeWater: 2, TypeGrass: 0.5, TypeDragon: 0.5,
			},
			TypeElectric: {
				TypeFlying: 2, TypeGround: 0, TypeWater: 2, TypeGrass: 0.5,
				TypeElectric: 0.5, TypeDragon: 0.5,
			},
			TypePsychic: {TypeFighting: 2, TypePoison: 2, TypePsychic: 0.5},
			TypeIce: {TypeFlying: 2, TypeGround: 2, TypeWater: 0.5, TypeGrass: 2, TypeIce: 0.5, TypeDragon: 2},
			TypeDragon: {TypeDragon: 2},
		},
		stages: StageTable{0.25, 0.28, 0.33, 0.4, 0.5, 0.66, 1, 1.5, 2, 2.5, 3, 3.5, 4},
		specialTypes: map[Type]bool{
			TypeDragon: true, TypeElectric: true, TypeFire: true, TypeGrass: true,
			TypeIce: true, TypePsychic: true, TypeWater: true,
		},
		categories: categories,
		fixedDamage: map[string]FixedDamage{
			"Sonicboom":    {Kind: FixedConstant, Amount: 20},
			"Dragon Rage":  {Kind: FixedConstant, Amount: 40},
			"Night Shade":  {Kind: FixedLevel},
			"Seismic Toss": {Kind: FixedLevel},
			"Psywave":      {Kind: FixedPsywave},
		},
	}
}

// Package damage implements the Gen-I damage formula.
//
// Every intermediate result is truncated in the same order as the game's
// own routine. The floors must not be merged or reordered.
package damage

import "math"

// Input is a single evaluation of the damage formula. Attack and Defense
// must already be resolved for the hit kind (see ResolveStats).
type Input struct {
	Level    int
	Power    int
	Attack   int
	Defense  int
	STAB     float64
	Type1    float64
	Type2    float64
	Critical bool
}

// Base returns the level term of the formula. A critical hit scales the
// level by (2L+5)/(L+5).
func Base(level int, critical bool) int {
	if !critical {
		return int(math.Floor(float64(2*level)/5 + 2))
	}
	critFactor := float64(2*level+5) / float64(level+5)
	return int(math.Floor(float64(2*level)*critFactor/5 + 2))
}

// Calculate returns the damage of one hit, never less than 1.
func Calculate(in Input) int {
	base := Base(in.Level, in.Critical)
	defense := max(in.Defense, 1)

	damage := int(math.Floor(math.Floor(float64(base*in.Power*in.Attack)/float64(defense))/50)) + 2
	damage = int(math.Floor(float64(damage) * in.STAB))
	damage = int(math.Floor(float64(damage) * in.Type1))
	damage = int(math.Floor(float64(damage) * in.Type2))

	return max(damage, 1)
}

// Package combat turns a move, an attacker and a defender into an expected
// damage figure, and ranks every move of a roster against one defender.
package combat

import (
	"math"

	"github.com/samdwyer/nuzlocke/internal/damage"
	"github.com/samdwyer/nuzlocke/internal/gamedata"
	"github.com/samdwyer/nuzlocke/internal/stats"
)

// Damage roll and hit-chance constants of the Gen-I engine.
const (
	rollMin      = 217 // lowest damage roll out of 255
	rollMax      = 255
	hitScale     = 235 // average effect of the 1/256 miss and the damage roll spread
	accuracyBase = 25600
	critDivisor  = 256
	highCritMin  = 255
)

// Post-multipliers applied on top of a generic hit.
const (
	multiHitExpected  = 3
	multiHitMin       = 2
	multiHitMax       = 5
	doubleHitTimes    = 2
	flinch10Bonus     = 1.1
	flinch30Bonus     = 1.3
	psywaveLevelScale = 1.5
)

// Screens reports which screens are up on the defender's side.
type Screens struct {
	Reflect     bool
	LightScreen bool
}

// Outcome is the resolved value of one move against one defender.
type Outcome struct {
	Expected float64 // long-term average damage per use
	Min      int
	Max      int
}

// EffectResolver dispatches a move to its damage rule.
type EffectResolver struct {
	rules *gamedata.Ruleset
}

// NewEffectResolver creates a resolver for the given ruleset.
func NewEffectResolver(rules *gamedata.Ruleset) *EffectResolver {
	return &EffectResolver{rules: rules}
}

// Resolve computes the outcome of move used by attacker on defender.
// The second return value is false for status moves, which are not ranked.
func (r *EffectResolver) Resolve(move *gamedata.MoveDef, attacker stats.AttackerLine, defender stats.DefenderLine, screens Screens) (Outcome, bool) {
	if move == nil {
		return Outcome{}, false
	}

	switch move.Category {
	case gamedata.CategoryStatus:
		return Outcome{}, false
	case gamedata.CategoryOHKO:
		return Outcome{
			Expected: float64(defender.HP) * AccuracyRate(move.Accuracy),
			Min:      0,
			Max:      defender.HP,
		}, true
	case gamedata.CategoryFixedDamage:
		return r.resolveFixed(move, attacker), true
	default:
		return r.resolveGeneric(move, attacker, defender, screens), true
	}
}

// resolveFixed handles moves whose damage ignores stats and types.
func (r *EffectResolver) resolveFixed(move *gamedata.MoveDef, attacker stats.AttackerLine) Outcome {
	var payout float64
	var low, high int

	switch move.Fixed.Kind {
	case gamedata.FixedConstant:
		low, high = move.Fixed.Amount, move.Fixed.Amount
		payout = float64(move.Fixed.Amount)
	case gamedata.FixedLevel:
		low, high = attacker.Level, attacker.Level
		payout = float64(attacker.Level)
	case gamedata.FixedPsywave:
		low = 1
		high = int(math.Floor(float64(attacker.Level) * psywaveLevelScale))
		payout = float64(low+high) / 2
	}

	return Outcome{
		Expected: payout * AccuracyRate(move.Accuracy),
		Min:      low,
		Max:      high,
	}
}

// resolveGeneric runs the damage formula for both the normal and critical
// stat lines and folds in crit chance, accuracy and the category bonuses.
func (r *EffectResolver) resolveGeneric(move *gamedata.MoveDef, attacker stats.AttackerLine, defender stats.DefenderLine, screens Screens) Outcome {
	attack, defense := attacker.Attack, defender.Defense
	screen := screens.Reflect
	if r.rules.IsSpecial(move.Type) {
		attack, defense = attacker.Special, defender.Special
		screen = screens.LightScreen
	}

	normalLine, critLine := damage.ResolveStats(attack, defense, damage.Modifiers{
		Screen:       screen,
		HalveDefense: move.Category == gamedata.CategorySelfDestruct,
	})

	type1, type2 := damage.TypeMultipliers(r.rules, move.Type, defender.Types)
	normal, crit := damage.Evaluate(damage.Hit{
		Level: attacker.Level,
		Power: move.Power,
		STAB:  damage.STAB(move.Type, attacker.Types),
		Type1: type1,
		Type2: type2,
	}, normalLine, critLine)

	chance := CritChance(attacker.Speed, move.Category == gamedata.CategoryHighCrit)
	weighted := (float64(normal)*(1-chance) + float64(crit)*chance) * hitScale / rollMax

	rate := 1.0
	if move.Category != gamedata.CategoryAlwaysHits {
		rate = AccuracyRate(move.Accuracy)
	}

	out := Outcome{
		Expected: weighted * rate,
		Min:      normal * rollMin / rollMax,
		Max:      normal,
	}

	switch move.Category {
	case gamedata.CategoryMultiHit:
		out.Expected *= multiHitExpected
		out.Min *= multiHitMin
		out.Max *= multiHitMax
	case gamedata.CategoryDoubleHit:
		out.Expected *= doubleHitTimes
		out.Min *= doubleHitTimes
		out.Max *= doubleHitTimes
	case gamedata.CategoryFlinch10:
		out.Expected *= flinch10Bonus
	case gamedata.CategoryFlinch30:
		out.Expected *= flinch30Bonus
	}
	return out
}

// AccuracyRate converts a move's accuracy to a hit rate the way the game's
// hit check scales it. The result is not clamped and exceeds 1.0 for large
// accuracies.
func AccuracyRate(accuracy int) float64 {
	return float64(accuracy) * rollMax / accuracyBase
}

// CritChance returns the critical hit chance for an attacker's speed.
// High-crit moves use the unstaged speed; others use the staged speed.
func CritChance(speed stats.Pair, highCrit bool) float64 {
	if highCrit {
		return float64(max(highCritMin, 8*(speed.Critical/2))) / critDivisor
	}
	return float64(speed.Staged/2) / critDivisor
}

package damage

import (
	"github.com/samdwyer/nuzlocke/internal/gamedata"
	"github.com/samdwyer/nuzlocke/internal/stats"
)

// StatLine is the attack/defense pair fed into one formula evaluation.
type StatLine struct {
	Attack  int
	Defense int
}

// Modifiers adjust the defender's stat before the formula runs.
type Modifiers struct {
	Screen       bool // Reflect vs physical or Light Screen vs special
	HalveDefense bool // Explosion and Selfdestruct
}

// ResolveStats builds the normal and critical stat lines for a hit.
//
// The screen doubles only the normal defense. Halving applies to both
// defenses. Then, independently per line, if either stat exceeds one byte
// both are divided by 4.
func ResolveStats(attack, defense stats.Pair, mods Modifiers) (normal, critical StatLine) {
	normal = StatLine{Attack: attack.Staged, Defense: defense.Staged}
	critical = StatLine{Attack: attack.Critical, Defense: defense.Critical}

	if mods.Screen {
		normal.Defense *= 2
	}
	if mods.HalveDefense {
		normal.Defense /= 2
		critical.Defense /= 2
	}

	return normal.scaleOverflow(), critical.scaleOverflow()
}

func (l StatLine) scaleOverflow() StatLine {
	if l.Attack > gamedata.OverflowThreshold || l.Defense > gamedata.OverflowThreshold {
		l.Attack /= 4
		l.Defense /= 4
	}
	l.Defense = max(l.Defense, 1)
	return l
}

// STAB returns 1.5 if the move type matches one of the attacker's types.
func STAB(moveType gamedata.Type, attackerTypes []gamedata.Type) float64 {
	if gamedata.ContainsType(attackerTypes, moveType) {
		return 1.5
	}
	return 1.0
}

// TypeMultipliers returns the raw chart multipliers of moveType against the
// defender's first and second type. A mono-type defender gets 1.0 second.
func TypeMultipliers(rules *gamedata.Ruleset, moveType gamedata.Type, defenderTypes []gamedata.Type) (float64, float64) {
	type1, type2 := 1.0, 1.0
	if len(defenderTypes) > 0 {
		type1 = rules.Multiplier(moveType, defenderTypes[0])
	}
	if len(defenderTypes) > 1 {
		type2 = rules.Multiplier(moveType, defenderTypes[1])
	}
	return type1, type2
}

// Hit describes the move-side inputs shared by normal and critical hits.
type Hit struct {
	Level int
	Power int
	STAB  float64
	Type1 float64
	Type2 float64
}

// Evaluate runs the formula for both stat lines and returns the normal and
// critical damage.
func Evaluate(hit Hit, normal, critical StatLine) (normalDamage, criticalDamage int) {
	normalDamage = Calculate(Input{
		Level:   hit.Level,
		Power:   hit.Power,
		Attack:  normal.Attack,
		Defense: normal.Defense,
		STAB:    hit.STAB,
		Type1:   hit.Type1,
		Type2:   hit.Type2,
	})
	criticalDamage = Calculate(Input{
		Level:    hit.Level,
		Power:    hit.Power,
		Attack:   critical.Attack,
		Defense:  critical.Defense,
		STAB:     hit.STAB,
		Type1:    hit.Type1,
		Type2:    hit.Type2,
		Critical: true,
	})
	return normalDamage, criticalDamage
}

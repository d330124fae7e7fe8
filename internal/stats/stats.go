// Package stats derives in-battle stats from base stats, DVs, level and stage.
package stats

import "math"

// StageMultiplier maps a stat stage to its multiplier.
type StageMultiplier interface {
	StageMultiplier(stage int) float64
}

// Raw computes an unstaged stat:
// floor((base+dv)*2*level/100) + (level+10 for HP, 5 otherwise).
func Raw(base, dv, level int, isHP bool) int {
	value := (base + dv) * 2 * level / 100
	if isHP {
		return value + level + 10
	}
	return value + 5
}

// Staged applies a stat stage to a raw stat. Stage 0 returns raw unchanged.
func Staged(raw, stage int, table StageMultiplier) int {
	if stage == 0 {
		return raw
	}
	return int(math.Floor(float64(raw) * table.StageMultiplier(stage)))
}

// Pair keeps a stat with and without its stage applied. Critical hits
// ignore stages, so both values are carried into the damage formula.
type Pair struct {
	Staged   int
	Critical int
}

// NewPair computes both values of a non-HP stat.
func NewPair(base, dv, level, stage int, table StageMultiplier) Pair {
	raw := Raw(base, dv, level, false)
	return Pair{
		Staged:   Staged(raw, stage, table),
		Critical: raw,
	}
}

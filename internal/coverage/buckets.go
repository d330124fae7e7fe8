package coverage

import (
	"sort"

	"github.com/samdwyer/nuzlocke/internal/gamedata"
)

// DefensiveBucket groups attacking types that share a team multiplier.
type DefensiveBucket struct {
	Multiplier float64
	Types      []gamedata.Type
}

// OffensiveBucket groups defending combinations that share a team score.
type OffensiveBucket struct {
	Score  float64
	Combos []gamedata.TypeCombo
}

// DefensiveBuckets groups attacking types by team multiplier, highest first.
// Types within a bucket are sorted by name.
func (b Balance) DefensiveBuckets() []DefensiveBucket {
	groups := map[float64][]gamedata.Type{}
	for _, t := range b.attackTypes {
		multi, ok := b.Defensive[t]
		if !ok {
			continue
		}
		groups[multi] = append(groups[multi], t)
	}

	buckets := make([]DefensiveBucket, 0, len(groups))
	for multi, types := range groups {
		sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
		buckets = append(buckets, DefensiveBucket{Multiplier: multi, Types: types})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Multiplier > buckets[j].Multiplier })
	return buckets
}

// OffensiveBuckets groups combinations by team score, lowest first, so the
// weakest matchups come up top. A non-empty filter keeps only combinations
// containing that type. Scores of 0 or below are dropped.
func (b Balance) OffensiveBuckets(filter gamedata.Type) []OffensiveBucket {
	groups := map[float64][]gamedata.TypeCombo{}
	for _, combo := range b.Combos {
		if filter != "" && !combo.Contains(filter) {
			continue
		}
		score, ok := b.Offensive[combo.Key()]
		if !ok || score <= 0 {
			continue
		}
		groups[score] = append(groups[score], combo)
	}

	buckets := make([]OffensiveBucket, 0, len(groups))
	for score, combos := range groups {
		sort.Slice(combos, func(i, j int) bool { return combos[i].Key() < combos[j].Key() })
		buckets = append(buckets, OffensiveBucket{Score: score, Combos: combos})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Score < buckets[j].Score })
	return buckets
}

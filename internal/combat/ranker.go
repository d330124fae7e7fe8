package combat

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/nuzlocke/internal/entity"
	"github.com/samdwyer/nuzlocke/internal/gamedata"
	"github.com/samdwyer/nuzlocke/internal/stats"
	"github.com/samdwyer/nuzlocke/internal/telemetry"
)

// MoveResult is one ranked (attacker, move) pair.
type MoveResult struct {
	Expected float64
	Nickname string
	Move     string
	Min      int
	Max      int
}

// DefenderSummary describes the resolved defender. The zero value means no
// defender was found.
type DefenderSummary struct {
	Species string
	Level   int
	HP      int
	Defense int // staged
	Special int // staged
	Types   []gamedata.Type
}

// Valid returns true if the summary describes a known species.
func (s DefenderSummary) Valid() bool {
	return s.Species != ""
}

// Ranker ranks every known move of a roster against one defender.
type Ranker struct {
	tables   *gamedata.Tables
	resolver *EffectResolver
}

// NewRanker creates a ranker over the given reference tables.
func NewRanker(tables *gamedata.Tables) *Ranker {
	return &Ranker{
		tables:   tables,
		resolver: NewEffectResolver(tables.Rules),
	}
}

// Rank resolves every non-empty move slot of every attacker against the
// defender and returns the results sorted by expected damage, highest first.
// Ties keep roster and slot order. An unknown defender yields an empty
// summary and no results.
func (r *Ranker) Rank(ctx context.Context, defender entity.Defender, attackers []entity.Attacker) (DefenderSummary, []MoveResult) {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "ranker.rank")
	defer span.End()
	span.SetAttributes(
		attribute.String("defender", defender.Species),
		attribute.Int("defender.level", defender.Level),
		attribute.Int("attackers", len(attackers)),
	)

	species := r.tables.Species.GetByName(defender.Species)
	if species == nil {
		span.SetAttributes(attribute.Bool("defender.unknown", true))
		return DefenderSummary{}, nil
	}

	rules := r.tables.Rules
	line := stats.ForDefender(species, defender.Level, defender.Stages, rules)
	summary := DefenderSummary{
		Species: line.Species,
		Level:   line.Level,
		HP:      line.HP,
		Defense: line.Defense.Staged,
		Special: line.Special.Staged,
		Types:   line.Types,
	}
	screens := Screens{Reflect: defender.Reflect, LightScreen: defender.LightScreen}

	var results []MoveResult
	for _, attacker := range attackers {
		member := attacker.Member
		if member == nil {
			continue
		}
		attackerSpecies := r.tables.Species.GetByName(member.Species)
		if attackerSpecies == nil {
			log.Debug().Str("nickname", member.Nickname).Str("species", member.Species).Msg("skipping attacker with unknown species")
			continue
		}
		attackerLine := stats.ForAttacker(attackerSpecies, member.Level, member.DVs, attacker.Stages, rules)

		for _, name := range member.KnownMoves() {
			move := r.tables.Moves.GetByName(name)
			if move == nil {
				log.Debug().Str("nickname", member.Nickname).Str("move", name).Msg("skipping unknown move")
				continue
			}
			outcome, ok := r.resolver.Resolve(move, attackerLine, line, screens)
			if !ok {
				continue
			}
			results = append(results, MoveResult{
				Expected: outcome.Expected,
				Nickname: member.Nickname,
				Move:     move.Name,
				Min:      outcome.Min,
				Max:      outcome.Max,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Expected > results[j].Expected
	})

	span.SetAttributes(attribute.Int("results", len(results)))
	return summary, results
}

// Top returns at most n results from the front of a ranked list.
func Top(results []MoveResult, n int) []MoveResult {
	if n < 0 {
		n = 0
	}
	if len(results) < n {
		return results
	}
	return results[:n]
}

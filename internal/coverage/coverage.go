// Package coverage scores how a team stands up to every attacking type and
// how hard it hits every defending type combination.
package coverage

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/nuzlocke/internal/entity"
	"github.com/samdwyer/nuzlocke/internal/gamedata"
	"github.com/samdwyer/nuzlocke/internal/telemetry"
)

// Immune is used in place of a chart 0 so immune matchups still rank.
const Immune = 0.125

const stabBonus = 1.5

// BestMove is a member's strongest answer to one type combination.
type BestMove struct {
	Move          string
	Effectiveness float64
}

// MemberCoverage is one member's defensive multiplier per attacking type.
type MemberCoverage struct {
	Nickname  string
	Defensive map[gamedata.Type]float64
}

// Balance is the team's defensive and offensive coverage.
type Balance struct {
	// Defensive is the product of every member's multiplier per attacking type.
	Defensive map[gamedata.Type]float64
	Members   []MemberCoverage

	// Combos are the defending combinations present in the species table.
	Combos []gamedata.TypeCombo
	// MoveCoverage maps combo key to "nickname|move" to effectiveness.
	MoveCoverage map[string]map[string]float64
	// BestMoves maps combo key to nickname to the best effectiveness.
	BestMoves map[string]map[string]float64
	// BestMoveDetails maps combo key to nickname to the move behind BestMoves.
	// Members with no damaging move are absent.
	BestMoveDetails map[string]map[string]BestMove
	// Offensive is the team score per combo key.
	Offensive map[string]float64

	attackTypes []gamedata.Type
}

// Empty returns true if no active member contributed.
func (b Balance) Empty() bool {
	return len(b.Members) == 0
}

// Analyzer computes team coverage against the reference tables.
type Analyzer struct {
	tables *gamedata.Tables
}

// NewAnalyzer creates an analyzer over the given reference tables.
func NewAnalyzer(tables *gamedata.Tables) *Analyzer {
	return &Analyzer{tables: tables}
}

// Effectiveness multiplies the chart entries of attack against each
// defending type, substituting Immune for a 0.
func (a *Analyzer) Effectiveness(attack gamedata.Type, defense []gamedata.Type) float64 {
	multi := 1.0
	for _, t := range defense {
		m := a.tables.Rules.Multiplier(attack, t)
		if m == 0 {
			m = Immune
		}
		multi *= m
	}
	return multi
}

// TypeCombinations returns every distinct defending combination in the species table.
func (a *Analyzer) TypeCombinations() []gamedata.TypeCombo {
	return a.tables.Species.TypeCombinations()
}

// Analyze computes the coverage of the active members of team. Members whose
// species is unknown are skipped. A team with no active members yields an
// empty Balance.
func (a *Analyzer) Analyze(ctx context.Context, team []*entity.Member) Balance {
	tracer := telemetry.Tracer("coverage")
	_, span := tracer.Start(ctx, "coverage.analyze")
	defer span.End()

	active := a.resolveActive(team)
	span.SetAttributes(attribute.Int("team.active", len(active)))
	if len(active) == 0 {
		return Balance{}
	}

	attackTypes := a.tables.Rules.Types()
	combos := a.TypeCombinations()
	balance := Balance{
		Defensive:       make(map[gamedata.Type]float64, len(attackTypes)),
		Combos:          combos,
		MoveCoverage:    make(map[string]map[string]float64, len(combos)),
		BestMoves:       make(map[string]map[string]float64, len(combos)),
		BestMoveDetails: make(map[string]map[string]BestMove, len(combos)),
		Offensive:       make(map[string]float64, len(combos)),
		attackTypes:     attackTypes,
	}

	for _, t := range attackTypes {
		balance.Defensive[t] = 1.0
	}
	for _, c := range combos {
		key := c.Key()
		balance.MoveCoverage[key] = map[string]float64{}
		balance.BestMoves[key] = map[string]float64{}
		balance.BestMoveDetails[key] = map[string]BestMove{}
	}

	for _, m := range active {
		defensive := a.memberDefensive(m.species)
		for t, multi := range defensive {
			balance.Defensive[t] *= multi
		}
		balance.Members = append(balance.Members, MemberCoverage{
			Nickname:  m.member.Nickname,
			Defensive: defensive,
		})

		for _, c := range combos {
			key := c.Key()
			best := BestMove{}
			for _, move := range m.moves {
				eff := a.moveEffectiveness(move, m.species, c)
				balance.MoveCoverage[key][m.member.Nickname+"|"+move.Name] = eff
				if eff > best.Effectiveness {
					best = BestMove{Move: move.Name, Effectiveness: eff}
				}
			}

			score := best.Effectiveness
			if best.Move == "" || score == 0 {
				score = 1.0
			}
			balance.BestMoves[key][m.member.Nickname] = score
			if best.Move != "" {
				balance.BestMoveDetails[key][m.member.Nickname] = best
			}
		}
	}

	for key, scores := range balance.BestMoves {
		team := 1.0
		for _, s := range scores {
			team *= s
		}
		balance.Offensive[key] = team
	}

	span.SetAttributes(attribute.Int("combos", len(combos)))
	return balance
}

type activeMember struct {
	member  *entity.Member
	species *gamedata.SpeciesDef
	moves   []*gamedata.MoveDef // damaging moves only
}

func (a *Analyzer) resolveActive(team []*entity.Member) []activeMember {
	var active []activeMember
	for _, m := range team {
		if m == nil || !m.IsActive() {
			continue
		}
		species := a.tables.Species.GetByName(m.Species)
		if species == nil {
			log.Debug().Str("nickname", m.Nickname).Str("species", m.Species).Msg("coverage skipping unknown species")
			continue
		}
		var moves []*gamedata.MoveDef
		for _, move := range a.tables.Moves.GetMultiple(m.KnownMoves()) {
			if move.IsDamaging() {
				moves = append(moves, move)
			}
		}
		active = append(active, activeMember{member: m, species: species, moves: moves})
	}
	return active
}

func (a *Analyzer) memberDefensive(species *gamedata.SpeciesDef) map[gamedata.Type]float64 {
	attackTypes := a.tables.Rules.Types()
	coverage := make(map[gamedata.Type]float64, len(attackTypes))
	for _, t := range attackTypes {
		coverage[t] = a.Effectiveness(t, species.Types)
	}
	return coverage
}

func (a *Analyzer) moveEffectiveness(move *gamedata.MoveDef, species *gamedata.SpeciesDef, combo gamedata.TypeCombo) float64 {
	eff := a.Effectiveness(move.Type, combo)
	if species.HasType(move.Type) {
		eff *= stabBonus
	}
	return eff
}

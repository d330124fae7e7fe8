package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/nuzlocke/internal/combat"
	"github.com/samdwyer/nuzlocke/internal/coverage"
	"github.com/samdwyer/nuzlocke/internal/entity"
	"github.com/samdwyer/nuzlocke/internal/gamedata"
	"github.com/samdwyer/nuzlocke/internal/stats"
	"github.com/samdwyer/nuzlocke/internal/telemetry"
	"github.com/samdwyer/nuzlocke/internal/ui"
)

// Game holds the planner state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	ranker   *combat.Ranker
	party    *entity.Party
	species  []string // sorted species names for cycling
	filters  []gamedata.Type

	state        State
	speciesIndex int // -1 when no defender is selected
	filterIndex  int // 0 is no filter
	defender     entity.Defender
	teamStages   stats.AttackerStages
	stages       map[*entity.Member]stats.AttackerStages // per-member overrides of teamStages
	memberIndex  int                                     // index into the active party; -1 targets the team

	summary combat.DefenderSummary
	results []combat.MoveResult
	balance coverage.Balance

	running bool
}

// New creates a planner drawing to screen.
func New(cfg Config, tables *gamedata.Tables, party *entity.Party, screen *ui.Screen) *Game {
	g := &Game{
		screen:       screen,
		renderer:     ui.NewRenderer(screen, ui.NewFormatter(cfg.Locale)),
		ranker:       combat.NewRanker(tables),
		party:        party,
		species:      tables.Species.Names(),
		filters:      append([]gamedata.Type{""}, tables.Rules.Types()...),
		state:        StateBestMoves,
		speciesIndex: -1,
		defender:     entity.Defender{Level: cfg.DefenderLevel},
		stages:       make(map[*entity.Member]stats.AttackerStages),
		memberIndex:  -1,
		running:      true,
	}
	for i, name := range g.species {
		if name == cfg.DefenderSpecies {
			g.speciesIndex = i
			g.defender.Species = name
		}
	}
	g.balance = coverage.NewAnalyzer(tables).Analyze(context.Background(), party.Members)
	return g
}

// SetStages presets the defender's stages and screens and the team's
// attacker stages.
func (g *Game) SetStages(defender entity.Defender, team stats.AttackerStages) {
	g.defender.Stages = defender.Stages
	g.defender.Reflect = defender.Reflect
	g.defender.LightScreen = defender.LightScreen
	g.teamStages = team
}

// Run executes the planner loop until the user quits.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.Int("party.active", g.party.ActiveCount()),
		attribute.Int("species", len(g.species)),
		attribute.String("defender", g.defender.Species),
	)
	g.recompute(ctx)
	initSpan.End()

	for g.running {
		g.render()
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input. Any change to the defender or
// stages re-ranks the roster.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	changed := false

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
	case tcell.KeyTab:
		g.state = g.state.Next()
	case tcell.KeyLeft:
		g.cycleSpecies(-1)
		changed = true
	case tcell.KeyRight:
		g.cycleSpecies(1)
		changed = true
	case tcell.KeyUp:
		g.defender.Level = min(g.defender.Level+1, entity.MaxLevel)
		changed = true
	case tcell.KeyDown:
		g.defender.Level = max(g.defender.Level-1, entity.MinLevel)
		changed = true

	case tcell.KeyRune:
		changed = true
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
			changed = false
		case 'd':
			g.defender.Stages.Defense = gamedata.ClampStage(g.defender.Stages.Defense + 1)
		case 'D':
			g.defender.Stages.Defense = gamedata.ClampStage(g.defender.Stages.Defense - 1)
		case 's':
			g.defender.Stages.Special = gamedata.ClampStage(g.defender.Stages.Special + 1)
		case 'S':
			g.defender.Stages.Special = gamedata.ClampStage(g.defender.Stages.Special - 1)
		case 'a':
			g.adjustAttacker(func(s *stats.AttackerStages) { s.Attack = gamedata.ClampStage(s.Attack + 1) })
		case 'A':
			g.adjustAttacker(func(s *stats.AttackerStages) { s.Attack = gamedata.ClampStage(s.Attack - 1) })
		case 'c':
			g.adjustAttacker(func(s *stats.AttackerStages) { s.Special = gamedata.ClampStage(s.Special + 1) })
		case 'C':
			g.adjustAttacker(func(s *stats.AttackerStages) { s.Special = gamedata.ClampStage(s.Special - 1) })
		case 'v':
			g.adjustAttacker(func(s *stats.AttackerStages) { s.Speed = gamedata.ClampStage(s.Speed + 1) })
		case 'V':
			g.adjustAttacker(func(s *stats.AttackerStages) { s.Speed = gamedata.ClampStage(s.Speed - 1) })
		case 'm', 'M':
			g.cycleTarget()
			changed = false
		case '0':
			g.resetAttacker()
		case 'r', 'R':
			g.defender.Reflect = !g.defender.Reflect
		case 'l', 'L':
			g.defender.LightScreen = !g.defender.LightScreen
		case 'f', 'F':
			g.filterIndex = (g.filterIndex + 1) % len(g.filters)
			changed = false
		default:
			changed = false
		}
	}

	if changed {
		g.recompute(ctx)
	}
}

// cycleSpecies moves the defender selection by delta, wrapping around.
func (g *Game) cycleSpecies(delta int) {
	if len(g.species) == 0 {
		return
	}
	if g.speciesIndex < 0 {
		g.speciesIndex = 0
		if delta < 0 {
			g.speciesIndex = len(g.species) - 1
		}
	} else {
		g.speciesIndex = (g.speciesIndex + delta + len(g.species)) % len(g.species)
	}
	g.defender.Species = g.species[g.speciesIndex]
}

// cycleTarget moves the stage target through the team and each active member.
func (g *Game) cycleTarget() {
	active := g.party.Active()
	g.memberIndex++
	if g.memberIndex >= len(active) {
		g.memberIndex = -1
	}
}

// target returns the member whose stages the keys adjust, or nil for the team.
func (g *Game) target() *entity.Member {
	active := g.party.Active()
	if g.memberIndex < 0 || g.memberIndex >= len(active) {
		return nil
	}
	return active[g.memberIndex]
}

// stagesFor returns a member's stages, falling back to the team stages.
func (g *Game) stagesFor(m *entity.Member) stats.AttackerStages {
	if s, ok := g.stages[m]; ok {
		return s
	}
	return g.teamStages
}

func (g *Game) adjustAttacker(apply func(*stats.AttackerStages)) {
	m := g.target()
	if m == nil {
		apply(&g.teamStages)
		return
	}
	s := g.stagesFor(m)
	apply(&s)
	g.stages[m] = s
}

// resetAttacker clears the target's stages. For the team this also drops
// every member override.
func (g *Game) resetAttacker() {
	if m := g.target(); m != nil {
		delete(g.stages, m)
		return
	}
	g.teamStages = stats.AttackerStages{}
	clear(g.stages)
}

func (g *Game) attackers() []entity.Attacker {
	active := g.party.Active()
	attackers := make([]entity.Attacker, 0, len(active))
	for _, m := range active {
		a := entity.Attacker{Member: m, Stages: g.stagesFor(m)}
		if err := a.Validate(); err != nil {
			log.Warn().Err(err).Str("nickname", m.Nickname).Msg("skipping attacker")
			continue
		}
		attackers = append(attackers, a)
	}
	return attackers
}

func (g *Game) recompute(ctx context.Context) {
	if err := g.defender.Validate(); err != nil {
		log.Warn().Err(err).Msg("invalid defender")
		g.summary, g.results = combat.DefenderSummary{}, nil
		return
	}
	g.summary, g.results = g.ranker.Rank(ctx, g.defender, g.attackers())
	log.Debug().
		Str("defender", g.defender.Species).
		Int("level", g.defender.Level).
		Int("results", len(g.results)).
		Msg("ranked moves")
}

func (g *Game) header() ui.Header {
	h := ui.Header{
		Title:        g.state.Title(),
		Defender:     g.defender,
		Attacker:     "team",
		AttackStages: g.teamStages,
		Filter:       g.filter(),
	}
	if m := g.target(); m != nil {
		h.Attacker = m.Nickname
		h.AttackStages = g.stagesFor(m)
	}
	return h
}

func (g *Game) filter() gamedata.Type {
	if g.state != StateOffensive {
		return ""
	}
	return g.filters[g.filterIndex]
}

func (g *Game) render() {
	switch g.state {
	case StateBestMoves:
		g.renderer.RenderBestMoves(g.header(), g.summary, g.results)
	case StateDefensive:
		g.renderer.RenderDefensive(g.header(), g.balance)
	case StateOffensive:
		g.renderer.RenderOffensive(g.header(), g.balance)
	}
}

// Plan computes a one-shot report for the active party against defender,
// with stages applied to every attacker.
func Plan(ctx context.Context, tables *gamedata.Tables, party *entity.Party, defender entity.Defender, stages stats.AttackerStages) (ui.Report, error) {
	if err := defender.Validate(); err != nil {
		return ui.Report{}, err
	}
	attackers := entity.AttackersFor(party.Active(), stages)
	for _, a := range attackers {
		if err := a.Validate(); err != nil {
			return ui.Report{}, fmt.Errorf("attacker %s: %w", a.Member.Nickname, err)
		}
	}
	summary, results := combat.NewRanker(tables).Rank(ctx, defender, attackers)
	return ui.Report{
		Summary: summary,
		Results: results,
		Balance: coverage.NewAnalyzer(tables).Analyze(ctx, party.Members),
	}, nil
}

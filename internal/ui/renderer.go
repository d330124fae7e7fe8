package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/nuzlocke/internal/combat"
	"github.com/samdwyer/nuzlocke/internal/coverage"
	"github.com/samdwyer/nuzlocke/internal/entity"
	"github.com/samdwyer/nuzlocke/internal/gamedata"
	"github.com/samdwyer/nuzlocke/internal/stats"
)

// Header is the calculation context shown above every view.
type Header struct {
	Title        string
	Defender     entity.Defender
	Attacker     string // whose stages AttackStages shows
	AttackStages stats.AttackerStages
	Filter       gamedata.Type
}

// Renderer draws planner views to the screen.
type Renderer struct {
	screen *Screen
	format *Formatter
}

// NewRenderer creates a renderer for the given screen.
func NewRenderer(screen *Screen, format *Formatter) *Renderer {
	return &Renderer{screen: screen, format: format}
}

var (
	titleStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

const helpText = "Tab view  ←/→ species  ↑/↓ level  d/s foe def/spc  m who  a/c/v atk/spc/spd  0 reset  r/l screens  f filter  q quit"

// RenderBestMoves draws the defender summary and the top ranked moves.
func (r *Renderer) RenderBestMoves(h Header, summary combat.DefenderSummary, results []combat.MoveResult) {
	r.screen.Clear()
	y := r.drawHeader(h)

	r.drawText(0, y, textStyle, r.format.Defender(summary))
	y += 2
	for _, line := range r.format.Results(results) {
		r.drawText(2, y, textStyle, line)
		y++
	}

	r.drawFooter()
	r.screen.Show()
}

// RenderDefensive draws the team's defensive multipliers grouped by value.
func (r *Renderer) RenderDefensive(h Header, balance coverage.Balance) {
	r.screen.Clear()
	y := r.drawHeader(h)

	if balance.Empty() {
		r.drawText(0, y, dimStyle, "No active team members")
	}
	for _, bucket := range balance.DefensiveBuckets() {
		x := r.drawText(0, y, defensiveStyle(bucket.Multiplier), r.format.Multiplier(bucket.Multiplier))
		x += 2
		for i, t := range bucket.Types {
			if i > 0 {
				x = r.drawText(x, y, dimStyle, ", ")
			}
			x = r.drawText(x, y, tcell.StyleDefault.Foreground(t.Color()), t.String())
		}
		y++
	}

	r.drawFooter()
	r.screen.Show()
}

// RenderOffensive draws the team's offensive scores grouped by value,
// weakest first, with each member's best answer.
func (r *Renderer) RenderOffensive(h Header, balance coverage.Balance) {
	r.screen.Clear()
	y := r.drawHeader(h)
	_, height := r.screen.Size()

	if balance.Empty() {
		r.drawText(0, y, dimStyle, "No active team members")
	}
	for _, bucket := range balance.OffensiveBuckets(h.Filter) {
		if y >= height-1 {
			break
		}
		r.drawText(0, y, offensiveStyle(bucket.Score), r.format.Multiplier(bucket.Score))
		y++
		for _, combo := range bucket.Combos {
			if y >= height-1 {
				break
			}
			x := r.drawCombo(2, y, combo)
			r.drawText(x+2, y, dimStyle, bestMovesText(balance, combo))
			y++
		}
	}

	r.drawFooter()
	r.screen.Show()
}

func (r *Renderer) drawHeader(h Header) int {
	x := r.drawText(0, 0, titleStyle, h.Title)
	if h.Filter != "" {
		r.drawText(x+2, 0, dimStyle, "filter: "+h.Filter.String())
	}

	d := h.Defender
	line := fmt.Sprintf("%s Lv%d  Def %+d  Spc %+d", orNone(d.Species), d.Level, d.Stages.Defense, d.Stages.Special)
	if d.Reflect {
		line += "  [Reflect]"
	}
	if d.LightScreen {
		line += "  [Light Screen]"
	}
	r.drawText(0, 1, textStyle, line)

	if h.Attacker != "" {
		a := h.AttackStages
		r.drawText(0, 2, dimStyle, fmt.Sprintf("%s: Atk %+d  Spc %+d  Spd %+d", h.Attacker, a.Attack, a.Special, a.Speed))
	}
	return 4
}

func (r *Renderer) drawFooter() {
	_, height := r.screen.Size()
	r.drawText(0, height-1, dimStyle, helpText)
}

func (r *Renderer) drawCombo(x, y int, combo gamedata.TypeCombo) int {
	for i, t := range combo {
		if i > 0 {
			x = r.drawText(x, y, dimStyle, "/")
		}
		x = r.drawText(x, y, tcell.StyleDefault.Foreground(t.Color()), t.String())
	}
	return x
}

// drawText writes s starting at (x, y), clipped to the screen width, and
// returns the column after the last rune.
func (r *Renderer) drawText(x, y int, style tcell.Style, s string) int {
	width, _ := r.screen.Size()
	for _, ch := range s {
		if x >= width {
			break
		}
		r.screen.SetContent(x, y, ch, style)
		x++
	}
	return x
}

func bestMovesText(balance coverage.Balance, combo gamedata.TypeCombo) string {
	details := balance.BestMoveDetails[combo.Key()]
	if len(details) == 0 {
		return ""
	}
	parts := make([]string, 0, len(details))
	for _, m := range balance.Members {
		if best, ok := details[m.Nickname]; ok {
			parts = append(parts, m.Nickname+": "+best.Move)
		}
	}
	return strings.Join(parts, ", ")
}

// defensiveStyle colors a team multiplier against an attacking type.
// Higher is worse.
func defensiveStyle(m float64) tcell.Style {
	switch {
	case m >= 4:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case m >= 2:
		return tcell.StyleDefault.Foreground(tcell.ColorOrange)
	case m >= 1:
		return textStyle
	case m >= 0.5:
		return tcell.StyleDefault.Foreground(tcell.ColorLightGreen)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	}
}

// offensiveStyle colors a team score against a defending combination.
// Lower is worse.
func offensiveStyle(score float64) tcell.Style {
	switch {
	case score <= 0.25:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case score <= 0.5:
		return tcell.StyleDefault.Foreground(tcell.ColorOrange)
	case score < 2:
		return textStyle
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	}
}

func orNone(species string) string {
	if species == "" {
		return "(none)"
	}
	return species
}

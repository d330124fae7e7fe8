package ui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/samdwyer/nuzlocke/internal/combat"
	"github.com/samdwyer/nuzlocke/internal/gamedata"
)

// TopResults is how many ranked moves are shown.
const TopResults = 5

const (
	noDefenderLabel = "No defending Pokémon selected"
	noMovesLabel    = "No damaging moves available"
)

// Formatter renders planner values as locale-aware text.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter creates a formatter for a BCP 47 locale such as "en" or
// "de-DE". Unparseable locales fall back to English.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Defender describes the resolved defender in one line.
func (f *Formatter) Defender(summary combat.DefenderSummary) string {
	if !summary.Valid() {
		return noDefenderLabel
	}
	return f.printer.Sprintf("Defending %s (%s) at level %d with %d HP, Def %d, Spc %d",
		summary.Species, gamedata.NewTypeCombo(summary.Types...), summary.Level,
		summary.HP, summary.Defense, summary.Special)
}

// Results formats the top ranked moves, one line each.
func (f *Formatter) Results(results []combat.MoveResult) []string {
	top := combat.Top(results, TopResults)
	if len(top) == 0 {
		return []string{noMovesLabel}
	}
	lines := make([]string, len(top))
	for i, r := range top {
		lines[i] = f.printer.Sprintf("%d. %s's %s: Damage Range = %d - %d (Long-Term Average = %.1f)",
			i+1, r.Nickname, r.Move, r.Min, r.Max, r.Expected)
	}
	return lines
}

// Multiplier formats a coverage multiplier, e.g. "×0.25" or "×4".
func (f *Formatter) Multiplier(m float64) string {
	return f.printer.Sprintf("×%v", m)
}

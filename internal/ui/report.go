package ui

import (
	"fmt"
	"io"

	"github.com/samdwyer/nuzlocke/internal/combat"
	"github.com/samdwyer/nuzlocke/internal/coverage"
	"github.com/samdwyer/nuzlocke/internal/gamedata"
)

// Report is the one-shot output of the planner.
type Report struct {
	Summary combat.DefenderSummary
	Results []combat.MoveResult
	Balance coverage.Balance
	Filter  gamedata.Type
}

// WriteReport writes the ranked moves and team coverage as plain text.
func (f *Formatter) WriteReport(w io.Writer, report Report) error {
	ew := &errWriter{w: w}

	ew.println("== Best moves ==")
	ew.println(f.Defender(report.Summary))
	for _, line := range f.Results(report.Results) {
		ew.println("  " + line)
	}

	ew.println("")
	ew.println("== Defensive coverage ==")
	if report.Balance.Empty() {
		ew.println("  No active team members")
	}
	for _, bucket := range report.Balance.DefensiveBuckets() {
		ew.println(fmt.Sprintf("  %-7s %v", f.Multiplier(bucket.Multiplier), bucket.Types))
	}

	ew.println("")
	ew.println("== Offensive coverage ==")
	for _, bucket := range report.Balance.OffensiveBuckets(report.Filter) {
		ew.println("  " + f.Multiplier(bucket.Score))
		for _, combo := range bucket.Combos {
			ew.println(fmt.Sprintf("    %-16s %s", combo, bestMovesText(report.Balance, combo)))
		}
	}

	return ew.err
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) println(s string) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintln(e.w, s)
}

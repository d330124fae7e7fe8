// Package entity provides the roster members and opponents the planner works on.
package entity

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/nuzlocke/internal/gamedata"
	"github.com/samdwyer/nuzlocke/internal/stats"
)

const (
	MinLevel = 1
	MaxLevel = 100
	MinDV    = 0
	MaxDV    = 15
	MaxMoves = 4
)

// Status is where a caught creature currently lives.
type Status int

const (
	StatusActive Status = iota
	StatusBoxed
	StatusDead
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusBoxed:
		return "boxed"
	case StatusDead:
		return "dead"
	default:
		return "unknown"
	}
}

// ParseStatus converts a status name to a Status.
func ParseStatus(name string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "active", "party":
		return StatusActive, nil
	case "boxed", "box":
		return StatusBoxed, nil
	case "dead", "graveyard":
		return StatusDead, nil
	default:
		return StatusActive, fmt.Errorf("unknown status %q", name)
	}
}

// UnmarshalYAML decodes a status name.
func (s *Status) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseStatus(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Member is a caught creature on the roster.
type Member struct {
	Nickname    string    `yaml:"nickname"`
	Species     string    `yaml:"species"`
	Level       int       `yaml:"level"`
	CaughtLevel int       `yaml:"caught_level"`
	Moves       []string  `yaml:"moves"` // Up to 4 slots; "" is an empty slot
	DVs         stats.DVs `yaml:"dvs"`
	Encountered string    `yaml:"encountered"`
	Status      Status    `yaml:"status"`
}

// NewMember creates an active member with zero DVs.
func NewMember(nickname, species string, level int, moves ...string) *Member {
	return &Member{
		Nickname:    nickname,
		Species:     species,
		Level:       level,
		CaughtLevel: level,
		Moves:       moves,
		Status:      StatusActive,
	}
}

// String returns e.g. "Shelly (Blastoise) - Lv 50".
func (m *Member) String() string {
	return fmt.Sprintf("%s (%s) - Lv %d", m.Nickname, m.Species, m.Level)
}

// IsActive returns true if the member is in the active party.
func (m *Member) IsActive() bool { return m.Status == StatusActive }

// KnownMoves returns the non-empty move slots in order.
func (m *Member) KnownMoves() []string {
	moves := make([]string, 0, len(m.Moves))
	for _, move := range m.Moves {
		if move != "" {
			moves = append(moves, move)
		}
	}
	return moves
}

// Validate checks the member's level, DVs and move slots.
func (m *Member) Validate() error {
	if strings.TrimSpace(m.Nickname) == "" {
		return errors.New("nickname is required")
	}
	if strings.TrimSpace(m.Species) == "" {
		return fmt.Errorf("%s: species is required", m.Nickname)
	}
	if m.Level < MinLevel || m.Level > MaxLevel {
		return fmt.Errorf("%s: level %d outside [%d,%d]", m.Nickname, m.Level, MinLevel, MaxLevel)
	}
	dvs := []struct {
		name  string
		value int
	}{
		{"hp", m.DVs.HP}, {"attack", m.DVs.Attack}, {"defense", m.DVs.Defense},
		{"special", m.DVs.Special}, {"speed", m.DVs.Speed},
	}
	for _, dv := range dvs {
		if dv.value < MinDV || dv.value > MaxDV {
			return fmt.Errorf("%s: %s DV %d outside [%d,%d]", m.Nickname, dv.name, dv.value, MinDV, MaxDV)
		}
	}
	if len(m.Moves) > MaxMoves {
		return fmt.Errorf("%s: %d moves, at most %d allowed", m.Nickname, len(m.Moves), MaxMoves)
	}
	if len(m.KnownMoves()) == 0 {
		return fmt.Errorf("%s: at least one move is required", m.Nickname)
	}
	return nil
}

// ValidateAgainst checks that the species and every move exist in tables.
func (m *Member) ValidateAgainst(tables *gamedata.Tables) error {
	species := tables.Species.GetByName(m.Species)
	if species == nil {
		return fmt.Errorf("%s: unknown species %q", m.Nickname, m.Species)
	}
	for _, move := range m.KnownMoves() {
		if tables.Moves.GetByName(move) == nil {
			return fmt.Errorf("%s: unknown move %q", m.Nickname, move)
		}
	}
	return nil
}

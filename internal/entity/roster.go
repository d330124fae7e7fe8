package entity

import (
	"fmt"

	"github.com/samdwyer/nuzlocke/internal/gamedata"
)

// RosterFile is the roster snapshot written by the save collaborator.
type RosterFile struct {
	Game    string    `yaml:"game"`
	Ruleset string    `yaml:"ruleset"`
	Pokemon []*Member `yaml:"pokemon"`
}

// LoadRoster reads a YAML roster snapshot and validates every member.
func LoadRoster(path string) (*Party, error) {
	file, err := gamedata.LoadYAMLFile[RosterFile](path)
	if err != nil {
		return nil, err
	}
	return partyFromFile(file)
}

func partyFromFile(file RosterFile) (*Party, error) {
	party := NewParty()
	for i, m := range file.Pokemon {
		if m == nil {
			return nil, fmt.Errorf("roster entry %d is empty", i)
		}
		if m.CaughtLevel == 0 {
			m.CaughtLevel = m.Level
		}
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("roster entry %d: %w", i, err)
		}
		if err := party.Add(m); err != nil {
			return nil, fmt.Errorf("roster entry %d: %w", i, err)
		}
	}
	return party, nil
}

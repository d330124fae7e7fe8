package gamedata

import (
	"fmt"
	"sort"
)

// SpeciesDef defines a species loaded from the species table.
type SpeciesDef struct {
	Name    string   `json:"name" yaml:"-"`
	HP      int      `json:"hp" yaml:"hp"`
	Attack  int      `json:"attack" yaml:"atk"`
	Defense int      `json:"defense" yaml:"def"`
	Special int      `json:"special" yaml:"spe"`
	Speed   int      `json:"speed" yaml:"spd"`
	Types   []Type   `json:"types" yaml:"type"`
	Moves   []string `json:"moves" yaml:"moves"`            // Learnable move names
	Evolve  []string `json:"evolve,omitempty" yaml:"evolve"` // Evolution targets
}

// CanEvolve returns true if the species has evolution targets.
func (s *SpeciesDef) CanEvolve() bool {
	return len(s.Evolve) > 0
}

// HasType returns true if t is one of the species' types.
func (s *SpeciesDef) HasType(t Type) bool {
	return ContainsType(s.Types, t)
}

// TypeCombo returns the species' types in sorted order.
func (s *SpeciesDef) TypeCombo() TypeCombo {
	return NewTypeCombo(s.Types...)
}

func (s *SpeciesDef) validate(rules *Ruleset) error {
	if s.Name == "" {
		return fmt.Errorf("species with empty name")
	}
	stats := []struct {
		name  string
		value int
	}{
		{"hp", s.HP}, {"attack", s.Attack}, {"defense", s.Defense},
		{"special", s.Special}, {"speed", s.Speed},
	}
	for _, st := range stats {
		if st.value <= 0 {
			return fmt.Errorf("species %s: %s must be positive, got %d", s.Name, st.name, st.value)
		}
	}
	if len(s.Types) == 0 || len(s.Types) > 2 {
		return fmt.Errorf("species %s: expected 1 or 2 types, got %d", s.Name, len(s.Types))
	}
	return validateTypes("species "+s.Name, s.Types, rules.types)
}

// SpeciesFile represents the structure of gen<N>_species.json.
type SpeciesFile struct {
	Generation int          `json:"generation"`
	Species    []SpeciesDef `json:"species"`
}

// LoadSpecies loads species definitions from the embedded table for a generation.
func LoadSpecies(generation int) ([]SpeciesDef, error) {
	file, err := Load[SpeciesFile](fmt.Sprintf("gen%d_species.json", generation))
	if err != nil {
		return nil, err
	}
	return file.Species, nil
}

// LoadSpeciesYAML loads a map-keyed YAML species table from disk.
func LoadSpeciesYAML(path string) ([]SpeciesDef, error) {
	byName, err := LoadYAMLFile[map[string]SpeciesDef](path)
	if err != nil {
		return nil, err
	}
	species := make([]SpeciesDef, 0, len(byName))
	for _, name := range sortedKeys(byName) {
		def := byName[name]
		def.Name = name
		species = append(species, def)
	}
	return species, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

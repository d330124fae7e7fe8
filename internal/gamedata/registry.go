package gamedata

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog/log"
)

// SpeciesRegistry holds loaded species definitions keyed by exact name.
type SpeciesRegistry struct {
	species map[string]*SpeciesDef
	all     []SpeciesDef
}

// NewSpeciesRegistry validates species definitions and indexes them.
// A zero stat or unknown type is a configuration error.
func NewSpeciesRegistry(species []SpeciesDef, rules *Ruleset) (*SpeciesRegistry, error) {
	registry := &SpeciesRegistry{
		species: make(map[string]*SpeciesDef, len(species)),
		all:     make([]SpeciesDef, len(species)),
	}
	copy(registry.all, species)
	for i := range registry.all {
		def := &registry.all[i]
		if err := def.validate(rules); err != nil {
			return nil, err
		}
		if _, dup := registry.species[def.Name]; dup {
			return nil, fmt.Errorf("duplicate species %s", def.Name)
		}
		registry.species[def.Name] = def
	}
	return registry, nil
}

// GetByName returns the species with the given name, or nil if not found.
func (r *SpeciesRegistry) GetByName(name string) *SpeciesDef {
	return r.species[name]
}

// All returns a copy of all species definitions in table order.
func (r *SpeciesRegistry) All() []SpeciesDef {
	out := make([]SpeciesDef, len(r.all))
	copy(out, r.all)
	return out
}

// Names returns all species names sorted alphabetically.
func (r *SpeciesRegistry) Names() []string {
	names := make([]string, 0, len(r.all))
	for i := range r.all {
		names = append(names, r.all[i].Name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of species in the registry.
func (r *SpeciesRegistry) Count() int {
	return len(r.all)
}

// TypeCombinations returns every distinct type combination in the table,
// sorted by key.
func (r *SpeciesRegistry) TypeCombinations() []TypeCombo {
	seen := make(map[string]TypeCombo)
	for i := range r.all {
		combo := r.all[i].TypeCombo()
		seen[combo.Key()] = combo
	}
	combos := make([]TypeCombo, 0, len(seen))
	for _, key := range sortedKeys(seen) {
		combos = append(combos, seen[key])
	}
	return combos
}

// =============================================================================
// MoveRegistry
// =============================================================================

// MoveRegistry holds loaded move definitions with their categories resolved.
type MoveRegistry struct {
	moves map[string]*MoveDef
	all   []MoveDef
}

// NewMoveRegistry validates move definitions and assigns each its category.
func NewMoveRegistry(moves []MoveDef, rules *Ruleset) (*MoveRegistry, error) {
	registry := &MoveRegistry{
		moves: make(map[string]*MoveDef, len(moves)),
		all:   make([]MoveDef, len(moves)),
	}
	copy(registry.all, moves)
	for i := range registry.all {
		def := &registry.all[i]
		if err := def.validate(rules); err != nil {
			return nil, err
		}
		if _, dup := registry.moves[def.Name]; dup {
			return nil, fmt.Errorf("duplicate move %s", def.Name)
		}
		def.Category, def.Fixed = rules.Classify(def.Name, def.Power)
		registry.moves[def.Name] = def
	}
	return registry, nil
}

// GetByName returns the move with the given name, or nil if not found.
func (r *MoveRegistry) GetByName(name string) *MoveDef {
	return r.moves[name]
}

// GetMultiple returns move definitions for a list of names.
// Empty and unknown names are silently skipped.
func (r *MoveRegistry) GetMultiple(names []string) []*MoveDef {
	result := make([]*MoveDef, 0, len(names))
	for _, name := range names {
		if move := r.moves[name]; move != nil {
			result = append(result, move)
		}
	}
	return result
}

// All returns a copy of all move definitions.
func (r *MoveRegistry) All() []MoveDef {
	out := make([]MoveDef, len(r.all))
	copy(out, r.all)
	return out
}

// Count returns the number of moves in the registry.
func (r *MoveRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// Tables
// =============================================================================

// Tables is the full set of reference data for one generation.
// It is loaded once and only read afterwards.
type Tables struct {
	Rules   *Ruleset
	Species *SpeciesRegistry
	Moves   *MoveRegistry
}

// NewTables builds registries from raw definitions.
func NewTables(rules *Ruleset, species []SpeciesDef, moves []MoveDef) (*Tables, error) {
	if rules == nil {
		return nil, errors.New("nil ruleset")
	}
	if len(species) == 0 {
		return nil, errors.New("no species loaded")
	}
	if len(moves) == 0 {
		return nil, errors.New("no moves loaded")
	}
	speciesRegistry, err := NewSpeciesRegistry(species, rules)
	if err != nil {
		return nil, fmt.Errorf("species table: %w", err)
	}
	moveRegistry, err := NewMoveRegistry(moves, rules)
	if err != nil {
		return nil, fmt.Errorf("move table: %w", err)
	}
	return &Tables{Rules: rules, Species: speciesRegistry, Moves: moveRegistry}, nil
}

// LoadTables loads the embedded tables for a generation.
func LoadTables(generation int) (*Tables, error) {
	rules, err := RulesetFor(generation)
	if err != nil {
		return nil, err
	}
	species, err := LoadSpecies(generation)
	if err != nil {
		return nil, err
	}
	moves, err := LoadMoves(generation)
	if err != nil {
		return nil, err
	}
	tables, err := NewTables(rules, species, moves)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Int("generation", generation).
		Int("species", tables.Species.Count()).
		Int("moves", tables.Moves.Count()).
		Msg("loaded embedded reference tables")
	return tables, nil
}

// LoadTablesFromDir loads gen<N>_pokemon.yaml and gen<N>_moves.yaml from dir.
func LoadTablesFromDir(dir string, generation int) (*Tables, error) {
	rules, err := RulesetFor(generation)
	if err != nil {
		return nil, err
	}
	species, err := LoadSpeciesYAML(filepath.Join(dir, fmt.Sprintf("gen%d_pokemon.yaml", generation)))
	if err != nil {
		return nil, err
	}
	moves, err := LoadMovesYAML(filepath.Join(dir, fmt.Sprintf("gen%d_moves.yaml", generation)))
	if err != nil {
		return nil, err
	}
	tables, err := NewTables(rules, species, moves)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("dir", dir).
		Int("generation", generation).
		Int("species", tables.Species.Count()).
		Int("moves", tables.Moves.Count()).
		Msg("loaded reference tables from disk")
	return tables, nil
}

// MustLoadTables loads the embedded tables, panicking on error.
func MustLoadTables(generation int) *Tables {
	tables, err := LoadTables(generation)
	if err != nil {
		panic(err)
	}
	return tables
}

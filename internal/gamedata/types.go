package gamedata

import (
	"fmt"
	"sort"
	"strings"
)

// Type is an elemental type.
type Type string

const (
	TypeNormal   Type = "Normal"
	TypeFighting Type = "Fighting"
	TypeFlying   Type = "Flying"
	TypePoison   Type = "Poison"
	TypeGround   Type = "Ground"
	TypeRock     Type = "Rock"
	TypeBug      Type = "Bug"
	TypeGhost    Type = "Ghost"
	TypeFire     Type = "Fire"
	TypeWater    Type = "Water"
	TypeGrass    Type = "Grass"
	TypeElectric Type = "Electric"
	TypePsychic  Type = "Psychic"
	TypeIce      Type = "Ice"
	TypeDragon   Type = "Dragon"
)

// gen1Types lists the Gen-I types in chart order.
var gen1Types = []Type{
	TypeNormal, TypeFighting, TypeFlying, TypePoison, TypeGround,
	TypeRock, TypeBug, TypeGhost, TypeFire, TypeWater,
	TypeGrass, TypeElectric, TypePsychic, TypeIce, TypeDragon,
}

// String returns the type name.
func (t Type) String() string { return string(t) }

// ContainsType reports whether t is one of types.
func ContainsType(types []Type, t Type) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

// validateTypes checks that every type is known to the ruleset.
func validateTypes(owner string, types []Type, known []Type) error {
	for _, t := range types {
		if !ContainsType(known, t) {
			return fmt.Errorf("%s: unknown type %q", owner, t)
		}
	}
	return nil
}

// TypeCombo is a sorted set of one or two defending types.
type TypeCombo []Type

// NewTypeCombo builds a sorted, de-duplicated combination.
func NewTypeCombo(types ...Type) TypeCombo {
	combo := make(TypeCombo, 0, len(types))
	for _, t := range types {
		if !ContainsType(combo, t) {
			combo = append(combo, t)
		}
	}
	sort.Slice(combo, func(i, j int) bool { return combo[i] < combo[j] })
	return combo
}

// Key returns the comma-joined form used to index coverage maps.
func (c TypeCombo) Key() string {
	return c.join(",")
}

// String returns the slash-joined display form, e.g. "Fire/Flying".
func (c TypeCombo) String() string {
	return c.join("/")
}

// Contains reports whether the combination includes t.
func (c TypeCombo) Contains(t Type) bool {
	return ContainsType(c, t)
}

func (c TypeCombo) join(sep string) string {
	names := make([]string, len(c))
	for i, t := range c {
		names[i] = string(t)
	}
	return strings.Join(names, sep)
}

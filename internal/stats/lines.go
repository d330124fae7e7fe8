package stats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/nuzlocke/internal/gamedata"
)

// DVs are a creature's per-stat determinant values (0-15).
// Saves key them as HP, Atk, Def, Spe (special) and Spd (speed).
type DVs struct {
	HP      int `yaml:"HP"`
	Attack  int `yaml:"Atk"`
	Defense int `yaml:"Def"`
	Special int `yaml:"Spe"`
	Speed   int `yaml:"Spd"`
}

// UnmarshalYAML decodes a DV mapping, matching keys without regard to case.
func (d *DVs) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]int
	if err := value.Decode(&raw); err != nil {
		return err
	}
	var decoded DVs
	for key, v := range raw {
		switch strings.ToLower(key) {
		case "hp":
			decoded.HP = v
		case "atk":
			decoded.Attack = v
		case "def":
			decoded.Defense = v
		case "spe":
			decoded.Special = v
		case "spd":
			decoded.Speed = v
		default:
			return fmt.Errorf("line %d: unknown DV %q", value.Line, key)
		}
	}
	*d = decoded
	return nil
}

// AttackerStages are the caller-supplied stages of an attacking creature.
type AttackerStages struct {
	Attack  int
	Special int
	Speed   int
}

// DefenderStages are the caller-supplied stages of a defending creature.
type DefenderStages struct {
	Defense int
	Special int
}

// AttackerLine is the resolved offensive stat line of a roster member.
type AttackerLine struct {
	Level   int
	Types   []gamedata.Type
	Attack  Pair
	Special Pair
	Speed   Pair
}

// DefenderLine is the resolved defensive stat line of an opponent.
type DefenderLine struct {
	Species string
	Level   int
	HP      int
	Types   []gamedata.Type
	Defense Pair
	Special Pair
}

// ForAttacker resolves an attacker's stat line.
func ForAttacker(species *gamedata.SpeciesDef, level int, dvs DVs, stages AttackerStages, table StageMultiplier) AttackerLine {
	return AttackerLine{
		Level:   level,
		Types:   species.Types,
		Attack:  NewPair(species.Attack, dvs.Attack, level, stages.Attack, table),
		Special: NewPair(species.Special, dvs.Special, level, stages.Special, table),
		Speed:   NewPair(species.Speed, dvs.Speed, level, stages.Speed, table),
	}
}

// ForDefender resolves an opponent's stat line. Opponents carry no DVs.
func ForDefender(species *gamedata.SpeciesDef, level int, stages DefenderStages, table StageMultiplier) DefenderLine {
	return DefenderLine{
		Species: species.Name,
		Level:   level,
		HP:      Raw(species.HP, 0, level, true),
		Types:   species.Types,
		Defense: NewPair(species.Defense, 0, level, stages.Defense, table),
		Special: NewPair(species.Special, 0, level, stages.Special, table),
	}
}

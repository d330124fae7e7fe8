package entity

import (
	"fmt"

	"github.com/samdwyer/nuzlocke/internal/gamedata"
	"github.com/samdwyer/nuzlocke/internal/stats"
)

// Attacker is a roster member with the stages the user set for this calculation.
type Attacker struct {
	Member *Member
	Stages stats.AttackerStages
}

// AttackersFor pairs every member with the same stages.
func AttackersFor(members []*Member, stages stats.AttackerStages) []Attacker {
	attackers := make([]Attacker, len(members))
	for i, m := range members {
		attackers[i] = Attacker{Member: m, Stages: stages}
	}
	return attackers
}

// Validate checks the attacker's stages.
func (a Attacker) Validate() error {
	if err := ValidateStage("attack", a.Stages.Attack); err != nil {
		return err
	}
	if err := ValidateStage("special", a.Stages.Special); err != nil {
		return err
	}
	return ValidateStage("speed", a.Stages.Speed)
}

// Defender is the opponent being planned against.
type Defender struct {
	Species     string
	Level       int
	Stages      stats.DefenderStages
	Reflect     bool
	LightScreen bool
}

// Validate checks the defender's level and stages. An empty species is valid
// and simply yields no results.
func (d Defender) Validate() error {
	if d.Level < MinLevel || d.Level > MaxLevel {
		return fmt.Errorf("defender level %d outside [%d,%d]", d.Level, MinLevel, MaxLevel)
	}
	if err := ValidateStage("defense", d.Stages.Defense); err != nil {
		return err
	}
	return ValidateStage("special", d.Stages.Special)
}

// ValidateStage checks that a stage is within [-6, 6].
func ValidateStage(name string, stage int) error {
	if stage < gamedata.MinStage || stage > gamedata.MaxStage {
		return fmt.Errorf("%s stage %d outside [%d,%d]", name, stage, gamedata.MinStage, gamedata.MaxStage)
	}
	return nil
}

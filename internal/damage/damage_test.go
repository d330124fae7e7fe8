package damage

import (
	"testing"

	"github.com/samdwyer/nuzlocke/internal/gamedata"
	"github.com/samdwyer/nuzlocke/internal/stats"
)

func TestBase(t *testing.T) {
	tests := []struct {
		level    int
		critical bool
		want     int
	}{
		{50, false, 22},
		{50, true, 40},
		{100, false, 42},
		{100, true, 80},
		{1, false, 2},
		{1, true, 2},
	}

	for _, tt := range tests {
		if got := Base(tt.level, tt.critical); got != tt.want {
			t.Errorf("Base(%d, %v) = %d, want %d", tt.level, tt.critical, got, tt.want)
		}
	}
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want int
	}{
		{
			name: "golden neutral hit",
			in:   Input{Level: 50, Power: 50, Attack: 50, Defense: 50, STAB: 1, Type1: 1, Type2: 1},
			want: 24,
		},
		{
			name: "stab and super effective",
			in:   Input{Level: 50, Power: 50, Attack: 50, Defense: 50, STAB: 1.5, Type1: 2, Type2: 1},
			want: 72,
		},
		{
			name: "double resisted floors each step",
			// 24 -> *1.5 = 36 -> *0.5 = 18 -> *0.5 = 9
			in:   Input{Level: 50, Power: 50, Attack: 50, Defense: 50, STAB: 1.5, Type1: 0.5, Type2: 0.5},
			want: 9,
		},
		{
			name: "immune still deals minimum",
			in:   Input{Level: 50, Power: 50, Attack: 50, Defense: 50, STAB: 1, Type1: 0, Type2: 1},
			want: 1,
		},
		{
			name: "critical hit",
			// base 40: floor(floor(40*50*50/50)/50)+2 = 42
			in:   Input{Level: 50, Power: 50, Attack: 50, Defense: 50, STAB: 1, Type1: 1, Type2: 1, Critical: true},
			want: 42,
		},
		{
			name: "zero defense floored at one",
			in:   Input{Level: 50, Power: 50, Attack: 50, Defense: 0, STAB: 1, Type1: 1, Type2: 1},
			want: 1102,
		},
	}

	for _, tt := range tests {
		if got := Calculate(tt.in); got != tt.want {
			t.Errorf("%s: Calculate() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestCalculateFloorOrder(t *testing.T) {
	// Level 10: base = floor(20/5+2) = 6
	// floor(6*40*20/30) = 160, floor(160/50)+2 = 5
	// 5*1.5 = 7.5 -> 7, 7*2 = 14, 14*0.5 = 7
	in := Input{Level: 10, Power: 40, Attack: 20, Defense: 30, STAB: 1.5, Type1: 2, Type2: 0.5}
	if got := Calculate(in); got != 7 {
		t.Errorf("Calculate() = %d, want 7", got)
	}

	// 5 * 0.5 = 2.5 -> 2, 2 * 2 = 4; reassociated would be 5.
	in = Input{Level: 10, Power: 40, Attack: 20, Defense: 30, STAB: 1, Type1: 0.5, Type2: 2}
	if got := Calculate(in); got != 4 {
		t.Errorf("Calculate() = %d, want 4", got)
	}
}

func TestResolveStats(t *testing.T) {
	tests := []struct {
		name                 string
		attack, defense      stats.Pair
		mods                 Modifiers
		wantNormal, wantCrit StatLine
	}{
		{
			name:       "no modifiers",
			attack:     stats.Pair{Staged: 120, Critical: 100},
			defense:    stats.Pair{Staged: 80, Critical: 90},
			wantNormal: StatLine{Attack: 120, Defense: 80},
			wantCrit:   StatLine{Attack: 100, Defense: 90},
		},
		{
			name:       "screen doubles only normal defense",
			attack:     stats.Pair{Staged: 100, Critical: 100},
			defense:    stats.Pair{Staged: 100, Critical: 100},
			mods:       Modifiers{Screen: true},
			wantNormal: StatLine{Attack: 100, Defense: 200},
			wantCrit:   StatLine{Attack: 100, Defense: 100},
		},
		{
			name:       "halving floors both defenses",
			attack:     stats.Pair{Staged: 100, Critical: 100},
			defense:    stats.Pair{Staged: 101, Critical: 99},
			mods:       Modifiers{HalveDefense: true},
			wantNormal: StatLine{Attack: 100, Defense: 50},
			wantCrit:   StatLine{Attack: 100, Defense: 49},
		},
		{
			name:       "overflow scales normal line only",
			attack:     stats.Pair{Staged: 300, Critical: 200},
			defense:    stats.Pair{Staged: 100, Critical: 100},
			wantNormal: StatLine{Attack: 75, Defense: 25},
			wantCrit:   StatLine{Attack: 200, Defense: 100},
		},
		{
			name:       "overflow scales critical line only",
			attack:     stats.Pair{Staged: 200, Critical: 300},
			defense:    stats.Pair{Staged: 100, Critical: 101},
			wantNormal: StatLine{Attack: 200, Defense: 100},
			wantCrit:   StatLine{Attack: 75, Defense: 25},
		},
		{
			name:       "screen can trigger overflow",
			attack:     stats.Pair{Staged: 200, Critical: 200},
			defense:    stats.Pair{Staged: 150, Critical: 150},
			mods:       Modifiers{Screen: true},
			wantNormal: StatLine{Attack: 50, Defense: 75},
			wantCrit:   StatLine{Attack: 200, Defense: 150},
		},
		{
			name:       "halving happens before overflow check",
			attack:     stats.Pair{Staged: 100, Critical: 100},
			defense:    stats.Pair{Staged: 300, Critical: 300},
			mods:       Modifiers{HalveDefense: true},
			wantNormal: StatLine{Attack: 100, Defense: 150},
			wantCrit:   StatLine{Attack: 100, Defense: 150},
		},
		{
			name:       "degenerate defense floored at one",
			attack:     stats.Pair{Staged: 300, Critical: 10},
			defense:    stats.Pair{Staged: 2, Critical: 1},
			mods:       Modifiers{HalveDefense: true},
			wantNormal: StatLine{Attack: 75, Defense: 1},
			wantCrit:   StatLine{Attack: 10, Defense: 1},
		},
	}

	for _, tt := range tests {
		normal, crit := ResolveStats(tt.attack, tt.defense, tt.mods)
		if normal != tt.wantNormal {
			t.Errorf("%s: normal = %+v, want %+v", tt.name, normal, tt.wantNormal)
		}
		if crit != tt.wantCrit {
			t.Errorf("%s: critical = %+v, want %+v", tt.name, crit, tt.wantCrit)
		}
	}
}

func TestSTAB(t *testing.T) {
	types := []gamedata.Type{gamedata.TypeWater, gamedata.TypePsychic}
	if got := STAB(gamedata.TypePsychic, types); got != 1.5 {
		t.Errorf("STAB(Psychic) = %v, want 1.5", got)
	}
	if got := STAB(gamedata.TypeIce, types); got != 1.0 {
		t.Errorf("STAB(Ice) = %v, want 1.0", got)
	}
}

func TestTypeMultipliers(t *testing.T) {
	rules := gamedata.Gen1()

	type1, type2 := TypeMultipliers(rules, gamedata.TypeIce, []gamedata.Type{gamedata.TypeDragon, gamedata.TypeFlying})
	if type1 != 2 || type2 != 2 {
		t.Errorf("Ice vs Dragon/Flying = %v, %v, want 2, 2", type1, type2)
	}

	type1, type2 = TypeMultipliers(rules, gamedata.TypeWater, []gamedata.Type{gamedata.TypeFire})
	if type1 != 2 || type2 != 1 {
		t.Errorf("Water vs Fire = %v, %v, want 2, 1", type1, type2)
	}

	type1, _ = TypeMultipliers(rules, gamedata.TypeNormal, []gamedata.Type{gamedata.TypeGhost})
	if type1 != 0 {
		t.Errorf("Normal vs Ghost = %v, want raw 0", type1)
	}
}

func TestEvaluate(t *testing.T) {
	hit := Hit{Level: 50, Power: 50, STAB: 1, Type1: 1, Type2: 1}
	line := StatLine{Attack: 50, Defense: 50}

	normal, crit := Evaluate(hit, line, line)
	if normal != 24 {
		t.Errorf("normal = %d, want 24", normal)
	}
	if crit != 42 {
		t.Errorf("critical = %d, want 42", crit)
	}
}

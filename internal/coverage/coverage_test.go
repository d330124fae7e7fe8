package coverage

import (
	"context"
	"testing"

	"github.com/samdwyer/nuzlocke/internal/entity"
	"github.com/samdwyer/nuzlocke/internal/gamedata"
)

func newTestAnalyzer(t *testing.T) (*Analyzer, *gamedata.Tables) {
	t.Helper()
	tables, err := gamedata.LoadTables(1)
	if err != nil {
		t.Fatalf("LoadTables(1) error: %v", err)
	}
	return NewAnalyzer(tables), tables
}

func TestEffectiveness(t *testing.T) {
	analyzer, _ := newTestAnalyzer(t)

	tests := []struct {
		attack  gamedata.Type
		defense []gamedata.Type
		want    float64
	}{
		{gamedata.TypeWater, []gamedata.Type{gamedata.TypeFire}, 2},
		{gamedata.TypeWater, []gamedata.Type{gamedata.TypeFire, gamedata.TypeRock}, 4},
		{gamedata.TypeNormal, []gamedata.Type{gamedata.TypeGhost}, Immune},
		{gamedata.TypeElectric, []gamedata.Type{gamedata.TypeGround, gamedata.TypeFlying}, Immune * 2},
		{gamedata.TypeFire, []gamedata.Type{gamedata.TypeWater, gamedata.TypeDragon}, 0.25},
		{gamedata.TypeNormal, []gamedata.Type{gamedata.TypeNormal}, 1},
	}

	for _, tt := range tests {
		got := analyzer.Effectiveness(tt.attack, tt.defense)
		if got != tt.want {
			t.Errorf("Effectiveness(%s, %v) = %v, want %v", tt.attack, tt.defense, got, tt.want)
		}
	}
}

func TestAnalyzeEmptyTeam(t *testing.T) {
	analyzer, _ := newTestAnalyzer(t)

	boxed := entity.NewMember("Boxy", "Blastoise", 50, "Surf")
	boxed.Status = entity.StatusBoxed
	dead := entity.NewMember("Gone", "Pidgey", 5, "Gust")
	dead.Status = entity.StatusDead

	for _, team := range [][]*entity.Member{nil, {boxed, dead}} {
		balance := analyzer.Analyze(context.Background(), team)
		if !balance.Empty() {
			t.Errorf("Analyze(%v) should be empty", team)
		}
		if len(balance.Offensive) != 0 || len(balance.Defensive) != 0 {
			t.Errorf("Analyze(%v) produced scores for an empty team", team)
		}
	}
}

func TestAnalyzeMonoTypeDefensiveMatchesChart(t *testing.T) {
	analyzer, tables := newTestAnalyzer(t)
	team := []*entity.Member{entity.NewMember("Shelly", "Blastoise", 50, "Surf")}

	balance := analyzer.Analyze(context.Background(), team)

	for _, attack := range tables.Rules.Types() {
		want := tables.Rules.Multiplier(attack, gamedata.TypeWater)
		if got := balance.Defensive[attack]; got != want {
			t.Errorf("Defensive[%s] = %v, want %v", attack, got, want)
		}
	}
}

func TestAnalyzeDefensiveCompounds(t *testing.T) {
	analyzer, _ := newTestAnalyzer(t)
	team := []*entity.Member{
		entity.NewMember("Shelly", "Blastoise", 50, "Surf"),
		entity.NewMember("Blaze", "Arcanine", 50, "Ember"),
	}

	balance := analyzer.Analyze(context.Background(), team)

	// Grass: 2 vs Water, 0.5 vs Fire.
	if got := balance.Defensive[gamedata.TypeGrass]; got != 1 {
		t.Errorf("Defensive[Grass] = %v, want 1", got)
	}
	// Electric: 2 vs Water, 1 vs Fire.
	if got := balance.Defensive[gamedata.TypeElectric]; got != 2 {
		t.Errorf("Defensive[Electric] = %v, want 2", got)
	}
	if len(balance.Members) != 2 {
		t.Fatalf("got %d member coverages, want 2", len(balance.Members))
	}
	if got := balance.Members[1].Defensive[gamedata.TypeWater]; got != 2 {
		t.Errorf("Blaze Defensive[Water] = %v, want 2", got)
	}
}

func TestAnalyzeOffensive(t *testing.T) {
	analyzer, _ := newTestAnalyzer(t)
	team := []*entity.Member{
		entity.NewMember("Shelly", "Blastoise", 50, "Surf", "Tackle"),
		entity.NewMember("Rat", "Rattata", 10, "Tail Whip"),
	}

	balance := analyzer.Analyze(context.Background(), team)

	fire := gamedata.NewTypeCombo(gamedata.TypeFire).Key()
	if got := balance.BestMoves[fire]["Shelly"]; got != 3 {
		t.Errorf("BestMoves[Fire][Shelly] = %v, want 3 (STAB super effective)", got)
	}
	if got := balance.BestMoveDetails[fire]["Shelly"]; got.Move != "Surf" {
		t.Errorf("BestMoveDetails[Fire][Shelly] = %+v, want Surf", got)
	}

	// A member with no damaging move counts as neutral and has no details.
	if got := balance.BestMoves[fire]["Rat"]; got != 1 {
		t.Errorf("BestMoves[Fire][Rat] = %v, want 1", got)
	}
	if _, ok := balance.BestMoveDetails[fire]["Rat"]; ok {
		t.Error("BestMoveDetails[Fire][Rat] should be absent")
	}

	if got := balance.Offensive[fire]; got <= 1 {
		t.Errorf("Offensive[Fire] = %v, want > 1", got)
	}

	ghost := gamedata.NewTypeCombo(gamedata.TypeGhost, gamedata.TypePoison).Key()
	if got := balance.MoveCoverage[ghost]["Shelly|Tackle"]; got != Immune {
		t.Errorf("MoveCoverage[Ghost,Poison][Shelly|Tackle] = %v, want %v", got, Immune)
	}
	if got := balance.Offensive[ghost]; got != 1.5 {
		t.Errorf("Offensive[Ghost,Poison] = %v, want 1.5", got)
	}
}

func TestAnalyzeOffensiveTeamScores(t *testing.T) {
	analyzer, _ := newTestAnalyzer(t)
	team := []*entity.Member{
		entity.NewMember("Shelly", "Blastoise", 50, "Surf", "Tackle"),
		entity.NewMember("Sparky", "Pikachu", 30, "Thundershock"),
		entity.NewMember("Rat", "Rattata", 10, "Tail Whip"),
	}
	balance := analyzer.Analyze(context.Background(), team)

	tests := []struct {
		name   string
		combo  gamedata.TypeCombo
		scores map[string]float64
		want   float64
	}{
		{"fire", gamedata.NewTypeCombo(gamedata.TypeFire),
			map[string]float64{"Shelly": 3, "Sparky": 1.5, "Rat": 1}, 4.5},
		{"water", gamedata.NewTypeCombo(gamedata.TypeWater),
			map[string]float64{"Shelly": 1, "Sparky": 3, "Rat": 1}, 3},
		{"water flying", gamedata.NewTypeCombo(gamedata.TypeWater, gamedata.TypeFlying),
			map[string]float64{"Shelly": 1, "Sparky": 6, "Rat": 1}, 6},
		// Thundershock is immune on Ground, so 0.125 * 1.5 is Sparky's best.
		{"rock ground", gamedata.NewTypeCombo(gamedata.TypeRock, gamedata.TypeGround),
			map[string]float64{"Shelly": 6, "Sparky": 0.1875, "Rat": 1}, 1.125},
		// Nobody is super effective.
		{"grass poison", gamedata.NewTypeCombo(gamedata.TypeGrass, gamedata.TypePoison),
			map[string]float64{"Shelly": 1, "Sparky": 0.75, "Rat": 1}, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := tt.combo.Key()
			for nickname, want := range tt.scores {
				if got := balance.BestMoves[key][nickname]; got != want {
					t.Errorf("BestMoves[%s][%s] = %v, want %v", key, nickname, got, want)
				}
			}
			if got := balance.Offensive[key]; got != tt.want {
				t.Errorf("Offensive[%s] = %v, want %v", key, got, tt.want)
			}
		})
	}
}

func TestAnalyzeCombosMatchSpeciesTable(t *testing.T) {
	analyzer, tables := newTestAnalyzer(t)
	balance := analyzer.Analyze(context.Background(), []*entity.Member{entity.NewMember("Shelly", "Blastoise", 50, "Surf")})

	combos := tables.Species.TypeCombinations()
	if len(balance.Offensive) != len(combos) {
		t.Errorf("got %d offensive scores, want %d", len(balance.Offensive), len(combos))
	}
	for _, c := range combos {
		if _, ok := balance.Offensive[c.Key()]; !ok {
			t.Errorf("missing offensive score for %s", c)
		}
	}
}

func TestAnalyzeSkipsUnknownSpecies(t *testing.T) {
	analyzer, _ := newTestAnalyzer(t)
	team := []*entity.Member{
		entity.NewMember("Glitch", "Missingno", 50, "Surf"),
		entity.NewMember("Shelly", "Blastoise", 50, "Surf"),
	}

	balance := analyzer.Analyze(context.Background(), team)
	if len(balance.Members) != 1 || balance.Members[0].Nickname != "Shelly" {
		t.Errorf("Members = %+v, want only Shelly", balance.Members)
	}
}

func TestDefensiveBuckets(t *testing.T) {
	analyzer, _ := newTestAnalyzer(t)
	balance := analyzer.Analyze(context.Background(), []*entity.Member{entity.NewMember("Shelly", "Blastoise", 50, "Surf")})

	buckets := balance.DefensiveBuckets()
	if len(buckets) != 3 {
		t.Fatalf("got %d buckets, want 3 (2, 1, 0.5)", len(buckets))
	}
	wantMultipliers := []float64{2, 1, 0.5}
	for i, want := range wantMultipliers {
		if buckets[i].Multiplier != want {
			t.Errorf("buckets[%d].Multiplier = %v, want %v", i, buckets[i].Multiplier, want)
		}
	}

	weak := buckets[0].Types
	if len(weak) != 2 || weak[0] != gamedata.TypeElectric || weak[1] != gamedata.TypeGrass {
		t.Errorf("2x bucket = %v, want [Electric Grass]", weak)
	}

	total := 0
	for _, b := range buckets {
		total += len(b.Types)
	}
	if total != 15 {
		t.Errorf("buckets hold %d types, want 15", total)
	}
}

func TestOffensiveBuckets(t *testing.T) {
	analyzer, _ := newTestAnalyzer(t)
	balance := analyzer.Analyze(context.Background(), []*entity.Member{entity.NewMember("Shelly", "Blastoise", 50, "Surf")})

	buckets := balance.OffensiveBuckets("")
	if len(buckets) == 0 {
		t.Fatal("no offensive buckets")
	}
	for i := 1; i < len(buckets); i++ {
		if buckets[i].Score <= buckets[i-1].Score {
			t.Errorf("buckets not ascending at %d: %v after %v", i, buckets[i].Score, buckets[i-1].Score)
		}
	}

	filtered := balance.OffensiveBuckets(gamedata.TypeFire)
	for _, b := range filtered {
		for _, c := range b.Combos {
			if !c.Contains(gamedata.TypeFire) {
				t.Errorf("filtered bucket holds %s without Fire", c)
			}
		}
	}
	if len(filtered) == 0 {
		t.Error("Fire filter returned no buckets")
	}

	if got := (Balance{}).OffensiveBuckets(""); len(got) != 0 {
		t.Errorf("empty balance returned %d buckets", len(got))
	}
}

package gamedata

import "github.com/gdamore/tcell/v2"

// typeColors are the display colors of each type.
var typeColors = map[Type]tcell.Color{
	TypeNormal:   tcell.NewHexColor(0xA8A878),
	TypeFighting: tcell.NewHexColor(0xC03028),
	TypeFlying:   tcell.NewHexColor(0xA890F0),
	TypePoison:   tcell.NewHexColor(0xA040A0),
	TypeGround:   tcell.NewHexColor(0xE0C068),
	TypeRock:     tcell.NewHexColor(0xB8A038),
	TypeBug:      tcell.NewHexColor(0xA8B820),
	TypeGhost:    tcell.NewHexColor(0x705898),
	TypeFire:     tcell.NewHexColor(0xF08030),
	TypeWater:    tcell.NewHexColor(0x6890F0),
	TypeGrass:    tcell.NewHexColor(0x78C850),
	TypeElectric: tcell.NewHexColor(0xF8D030),
	TypePsychic:  tcell.NewHexColor(0xF85888),
	TypeIce:      tcell.NewHexColor(0x98D8D8),
	TypeDragon:   tcell.NewHexColor(0x7038F8),
}

// Color returns the display color of the type, or white if it has none.
func (t Type) Color() tcell.Color {
	if color, ok := typeColors[t]; ok {
		return color
	}
	return tcell.ColorWhite
}

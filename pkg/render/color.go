// pkg/render/color.go
package render

import (
	"image/color"

	"battle-of-bastions/internal/utils"
)

// FieldColors holds the colors of the static part of the playfield.
type FieldColors struct {
	Background    color.RGBA
	Field         color.RGBA
	PlacementZone color.RGBA
	Bastion       color.RGBA
	Text          color.RGBA
	StrokeWidth   float32
}

// UnitColors holds the colors of everything drawn on top of the field.
type UnitColors struct {
	Party        color.RGBA
	Selection    color.RGBA
	Range        color.RGBA
	AttackEffect color.RGBA
	HealthGood   color.RGBA
	HealthBad    color.RGBA
	HealthBack   color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// FadeColor scales the alpha channel by k (0..1). Premultiplied, so RGB scale too.
func FadeColor(c color.RGBA, k float64) color.RGBA {
	k = max(0, min(k, 1))
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}

// HealthColor blends from bad to good by the remaining health ratio.
func HealthColor(good, bad color.RGBA, ratio float64) color.RGBA {
	ratio = max(0, min(ratio, 1))
	lerp := func(a, b uint8) uint8 {
		return uint8(utils.Lerp(float64(a), float64(b), ratio))
	}
	return color.RGBA{
		R: lerp(bad.R, good.R),
		G: lerp(bad.G, good.G),
		B: lerp(bad.B, good.B),
		A: lerp(bad.A, good.A),
	}
}

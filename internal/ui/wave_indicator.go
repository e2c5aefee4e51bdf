// internal/ui/wave_indicator.go
package ui

import (
	"image/color"

	"battle-of-bastions/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int // центр по X, базовая линия по Y
	Color            color.RGBA
	BossColor        color.RGBA
	OutlineColor     color.Color
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            color.RGBA{70, 130, 180, 255},
		BossColor:        color.RGBA{220, 40, 40, 255},
		OutlineColor:     color.White,
		OutlineThickness: 1,
	}
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, face font.Face, waveNumber int) {
	if waveNumber <= 0 {
		return
	}

	label := utils.ToRoman(waveNumber)

	// Красный для босс-волн
	textColor := i.Color
	if waveNumber%10 == 0 {
		textColor = i.BossColor
	}

	bounds := text.BoundString(face, label)
	textX := i.X - bounds.Dx()/2

	// Рисуем обводку
	for y := -i.OutlineThickness; y <= i.OutlineThickness; y++ {
		for x := -i.OutlineThickness; x <= i.OutlineThickness; x++ {
			if x == 0 && y == 0 {
				continue
			}
			text.Draw(screen, label, face, textX+x, i.Y+y, i.OutlineColor)
		}
	}
	text.Draw(screen, label, face, textX, i.Y, textColor)
}

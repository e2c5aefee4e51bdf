// internal/ui/bastion_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"battle-of-bastions/internal/component"
	"battle-of-bastions/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// BastionIndicator отображает здоровье и уровень бастиона.
type BastionIndicator struct {
	X, Y float32
}

const (
	hpBarWidth      = 180
	hpBarHeight     = 12
	levelRectWidth  = 16
	levelRectHeight = 8
	levelRectGap    = 6
	shownLevels     = 5
	borderWidth     = 1
)

var borderColor = color.White

// NewBastionIndicator создает новый индикатор бастиона.
func NewBastionIndicator(x, y float32) *BastionIndicator {
	return &BastionIndicator{X: x, Y: y}
}

// Draw отрисовывает индикатор.
func (i *BastionIndicator) Draw(screen *ebiten.Image, face font.Face, b component.Bastion) {
	// 1. Обводка полосы здоровья
	vector.StrokeRect(screen, i.X, i.Y, hpBarWidth, hpBarHeight, borderWidth, borderColor, true)

	// 2. Заполненная часть
	fillRatio := 0.0
	if b.MaxHealth > 0 {
		fillRatio = b.Health / b.MaxHealth
	}
	fillRatio = max(0, min(fillRatio, 1))
	fill := config.HealthGoodColor
	if fillRatio < 0.3 {
		fill = config.HealthBadColor
	}
	fillWidth := float32(float64(hpBarWidth-borderWidth*2) * fillRatio)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, hpBarHeight-borderWidth*2, fill, true)
	}

	label := fmt.Sprintf("%.0f/%.0f", b.Health, b.MaxHealth)
	text.Draw(screen, label, face, int(i.X)+hpBarWidth+8, int(i.Y)+hpBarHeight-1, config.TextLightColor)

	// 3. Прямоугольники уровня, дальше пятого пишем числом
	rectY := i.Y + hpBarHeight + 6
	for j := 0; j < shownLevels; j++ {
		rectX := i.X + float32(j)*(levelRectWidth+levelRectGap)
		vector.StrokeRect(screen, rectX, rectY, levelRectWidth, levelRectHeight, borderWidth, borderColor, true)
		if j < b.Level {
			vector.DrawFilledRect(screen, rectX+borderWidth, rectY+borderWidth, levelRectWidth-borderWidth*2, levelRectHeight-borderWidth*2, config.BastionColor, true)
		}
	}
	if b.Level > shownLevels {
		x := int(i.X) + shownLevels*(levelRectWidth+levelRectGap)
		text.Draw(screen, fmt.Sprintf("+%d", b.Level-shownLevels), face, x, int(rectY)+levelRectHeight, config.TextLightColor)
	}
}

// internal/ui/button.go
package ui

import (
	"image"

	"battle-of-bastions/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect     image.Rectangle
	Text     string
	Enabled  bool
	Selected bool
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, text string) *Button {
	return &Button{Rect: rect, Text: text, Enabled: true}
}

// Contains reports whether the point is inside the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Clicked: клик по активной кнопке.
func (b *Button) Clicked(x, y int) bool {
	return b.Enabled && b.Contains(x, y)
}

// Draw отрисовывает кнопку; cursorX/cursorY нужны для подсветки.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, cursorX, cursorY int) {
	bg := config.ButtonColor
	switch {
	case !b.Enabled:
		bg = config.ButtonDisabled
	case b.Contains(cursorX, cursorY):
		bg = config.ButtonHoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())

	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	border := config.PanelBorderColor
	if b.Selected {
		border = config.SelectionColor
	}
	vector.StrokeRect(screen, x, y, w, h, 2, border, true)

	bounds := text.BoundString(face, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, face, textX, textY, config.TextLightColor)
}

// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"strings"

	"battle-of-bastions/internal/component"
	"battle-of-bastions/internal/config"
	"battle-of-bastions/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelMargin  = 8
	lineHeight   = 16
	buttonHeight = 24
)

// ActionKind: что игрок нажал на панели.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionSelectType
	ActionCancelPlacement
	ActionUpgradeDefender
	ActionUpgradeBastion
	ActionStartWave
	ActionTogglePause
)

// Action is the result of a click on the panel.
type Action struct {
	Kind         ActionKind
	DefenderType defs.DefenderType
}

// PanelView: всё, что панель показывает в текущем кадре.
type PanelView struct {
	Gold       int
	Wave       int
	WaveActive bool
	Paused     bool
	GameOver   bool
	Placing    defs.DefenderType // "": не в режиме расстановки
	Selected   *component.Defender
	Bastion    component.Bastion
	NextWave   defs.WaveConfig // волна, которую запустит Space
}

// InfoPanel is the side panel with the shop and the upgrade buttons.
type InfoPanel struct {
	rect     image.Rectangle
	fontFace font.Face

	StartButton   *Button
	PauseButton   *Button
	ShopButtons   []*Button // в порядке defs.DefenderTypes
	CancelButton  *Button
	UpgradeButton *Button
	BastionButton *Button
}

// NewInfoPanel creates the side panel at x with the given width.
func NewInfoPanel(x, y, width, height int, face font.Face) *InfoPanel {
	p := &InfoPanel{
		rect:     image.Rect(x, y, x+width, y+height),
		fontFace: face,
	}
	inner := x + panelMargin
	w := width - 2*panelMargin
	row := func(top int) image.Rectangle {
		return image.Rect(inner, top, inner+w, top+buttonHeight)
	}
	half := func(top, col int) image.Rectangle {
		hw := (w - panelMargin) / 2
		left := inner + col*(hw+panelMargin)
		return image.Rect(left, top, left+hw, top+buttonHeight)
	}

	top := y + panelMargin + lineHeight
	p.StartButton = NewButton(half(top, 0), "Wave [Space]")
	p.PauseButton = NewButton(half(top, 1), "Pause [P]")

	top += buttonHeight + panelMargin + lineHeight
	for i, t := range defs.DefenderTypes {
		label := fmt.Sprintf("%d %s %dg", i+1, defs.DefenderLibrary[t].Visuals.Name, defs.DefenderCost(t))
		p.ShopButtons = append(p.ShopButtons, NewButton(row(top), label))
		top += buttonHeight + 4
	}
	p.CancelButton = NewButton(row(top), "Cancel [Esc]")

	top += buttonHeight + panelMargin + 5*lineHeight
	p.UpgradeButton = NewButton(row(top), "")

	top += buttonHeight + panelMargin + 3*lineHeight
	p.BastionButton = NewButton(row(top), "")
	return p
}

// Contains reports whether the point is over the panel.
func (p *InfoPanel) Contains(x, y int) bool {
	return image.Pt(x, y).In(p.rect)
}

// Sync обновляет подписи и доступность кнопок под текущее состояние.
func (p *InfoPanel) Sync(v PanelView) {
	p.StartButton.Enabled = !v.WaveActive && !v.GameOver && !v.Paused
	p.PauseButton.Enabled = !v.GameOver
	p.PauseButton.Text = "Pause [P]"
	if v.Paused {
		p.PauseButton.Text = "Resume [P]"
	}

	for i, t := range defs.DefenderTypes {
		b := p.ShopButtons[i]
		b.Enabled = !v.GameOver && v.Gold >= defs.DefenderCost(t)
		b.Selected = v.Placing == t
	}
	p.CancelButton.Enabled = v.Placing != ""

	p.UpgradeButton.Enabled = false
	p.UpgradeButton.Text = "Upgrade [U]"
	if d := v.Selected; d != nil {
		cost := defs.DefenderUpgradeCost(d.Type, d.Level)
		p.UpgradeButton.Text = fmt.Sprintf("Upgrade [U] %dg", cost)
		p.UpgradeButton.Enabled = !v.GameOver && v.Gold >= cost
	}

	cost := defs.BastionUpgradeCost(v.Bastion.Level)
	p.BastionButton.Text = fmt.Sprintf("Fortify [B] %dg", cost)
	p.BastionButton.Enabled = !v.GameOver && v.Gold >= cost
}

// HandleClick maps a click on the panel to an action.
func (p *InfoPanel) HandleClick(x, y int) Action {
	switch {
	case p.StartButton.Clicked(x, y):
		return Action{Kind: ActionStartWave}
	case p.PauseButton.Clicked(x, y):
		return Action{Kind: ActionTogglePause}
	case p.CancelButton.Clicked(x, y):
		return Action{Kind: ActionCancelPlacement}
	case p.UpgradeButton.Clicked(x, y):
		return Action{Kind: ActionUpgradeDefender}
	case p.BastionButton.Clicked(x, y):
		return Action{Kind: ActionUpgradeBastion}
	}
	for i, b := range p.ShopButtons {
		if b.Clicked(x, y) {
			return Action{Kind: ActionSelectType, DefenderType: defs.DefenderTypes[i]}
		}
	}
	return Action{}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, v PanelView) {
	x, y := float32(p.rect.Min.X), float32(p.rect.Min.Y)
	w, h := float32(p.rect.Dx()), float32(p.rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, config.PanelColor, true)
	vector.StrokeRect(screen, x, y, w, h, 2, config.PanelBorderColor, true)

	cx, cy := ebiten.CursorPosition()
	left := p.rect.Min.X + panelMargin

	p.title(screen, "Controls", left, p.StartButton.Rect.Min.Y-4)
	p.StartButton.Draw(screen, p.fontFace, cx, cy)
	p.PauseButton.Draw(screen, p.fontFace, cx, cy)

	p.title(screen, "Recruit", left, p.ShopButtons[0].Rect.Min.Y-4)
	for _, b := range p.ShopButtons {
		b.Draw(screen, p.fontFace, cx, cy)
	}
	if v.Placing != "" {
		p.CancelButton.Draw(screen, p.fontFace, cx, cy)
	}

	ty := p.CancelButton.Rect.Max.Y + panelMargin + lineHeight - 4
	if d := v.Selected; d != nil {
		name := defs.DefenderLibrary[d.Type].Visuals.Name
		p.title(screen, fmt.Sprintf("%s Lv.%d", name, d.Level), left, ty)
		p.lines(screen, left, ty+lineHeight,
			fmt.Sprintf("Damage: %.0f", d.Damage),
			fmt.Sprintf("Speed:  %.2f/s", d.AttackSpeed),
			fmt.Sprintf("Range:  %.0f", d.Range),
		)
		p.UpgradeButton.Draw(screen, p.fontFace, cx, cy)
	} else {
		p.lines(screen, left, ty, "Click a defender", "to inspect it.")
	}

	by := p.UpgradeButton.Rect.Max.Y + panelMargin + lineHeight - 4
	p.title(screen, fmt.Sprintf("Bastion Lv.%d", v.Bastion.Level), left, by)
	p.lines(screen, left, by+lineHeight,
		fmt.Sprintf("Health: %.0f/%.0f", v.Bastion.Health, v.Bastion.MaxHealth),
		fmt.Sprintf("Armor:  %.0f%%", v.Bastion.Armor),
	)
	p.BastionButton.Draw(screen, p.fontFace, cx, cy)

	wy := p.BastionButton.Rect.Max.Y + panelMargin + lineHeight - 4
	preview := v.NextWave
	p.title(screen, fmt.Sprintf("Wave %d", preview.Number), left, wy)
	var groups []string
	for _, g := range preview.Enemies {
		groups = append(groups, fmt.Sprintf("%dx %s", g.Count, defs.EnemyLibrary[g.Type].Visuals.Name))
	}
	p.lines(screen, left, wy+lineHeight, wrap(groups, 2)...)
}

func (p *InfoPanel) title(screen *ebiten.Image, s string, x, y int) {
	text.Draw(screen, s, p.fontFace, x, y, config.SelectionColor)
}

func (p *InfoPanel) lines(screen *ebiten.Image, x, y int, lines ...string) {
	for i, s := range lines {
		text.Draw(screen, s, p.fontFace, x, y+i*lineHeight, config.TextLightColor)
	}
}

// wrap склеивает элементы по perLine в строку.
func wrap(items []string, perLine int) []string {
	var out []string
	for i := 0; i < len(items); i += perLine {
		out = append(out, strings.Join(items[i:min(i+perLine, len(items))], ", "))
	}
	return out
}

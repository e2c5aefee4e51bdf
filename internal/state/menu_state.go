// internal/state/menu_state.go
package state

import (
	"battle-of-bastions/internal/app"
	"battle-of-bastions/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var menuLines = []string{
	"BATTLE OF BASTIONS",
	"",
	"Space - play",
	"A     - watch the autopilot",
	"",
	"1/2/3 recruit, click to place or select,",
	"U upgrade, B fortify, Space next wave, P pause",
}

// MenuState: стартовый экран
type MenuState struct {
	sm   *StateMachine
	opts app.Options
}

func NewMenuState(sm *StateMachine, opts app.Options) *MenuState {
	return &MenuState{sm: sm, opts: opts}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		m.sm.SetState(NewGameState(m.sm, m.opts, false))
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		m.sm.SetState(NewGameState(m.sm, m.opts, true))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	y := config.ScreenHeight/2 - len(menuLines)*10
	for i, line := range menuLines {
		b := text.BoundString(face, line)
		clr := config.TextLightColor
		if i == 0 {
			clr = config.SelectionColor
		}
		text.Draw(screen, line, face, (config.ScreenWidth-b.Dx())/2, y+i*20, clr)
	}
}

func (m *MenuState) Exit() {}

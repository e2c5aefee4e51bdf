// internal/state/pause_state.go
package state

import (
	"battle-of-bastions/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState: оверлей поверх GameState. Часы игры стоят, потому что
// обновляется только верх стека.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.previousState.pauseButton.IsClicked(x, y) ||
			s.previousState.infoPanel.PauseButton.Clicked(x, y)
	}

	if unpause {
		s.previousState.game.TogglePause()
		s.stateMachine.Pop()
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(config.GameWidth), config.ScreenHeight, config.OverlayColor, false)

	face := basicfont.Face7x13
	pauseText := "PAUSED - press P to resume"
	b := text.BoundString(face, pauseText)
	text.Draw(screen, pauseText, face, (int(config.GameWidth)-b.Dx())/2, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}

// internal/state/game_state.go
package state

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"battle-of-bastions/internal/app"
	"battle-of-bastions/internal/config"
	"battle-of-bastions/internal/defs"
	"battle-of-bastions/internal/event"
	"battle-of-bastions/internal/types"
	"battle-of-bastions/internal/ui"
	"battle-of-bastions/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const messageTTL = 2.0 // секунды

// GameState: состояние игры
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	bot      *app.Autopilot // nil: играет человек
	fontFace font.Face

	renderer         *render.WorldRenderer
	infoPanel        *ui.InfoPanel
	waveIndicator    *ui.WaveIndicator
	bastionIndicator *ui.BastionIndicator
	stateIndicator   *ui.StateIndicator
	pauseButton      *ui.PauseButton
	restartButton    *ui.Button

	placing  defs.DefenderType // "": не в режиме расстановки
	selected types.EntityID

	message    string
	messageTTL float64

	restartSub event.Subscription
}

// NewGameState creates the play screen. With autopilot the bot makes every decision.
func NewGameState(sm *StateMachine, opts app.Options, autopilot bool) *GameState {
	face := basicfont.Face7x13
	gameLogic := app.NewGame(opts)

	renderer := render.NewWorldRenderer(
		config.FieldOffsetX, config.FieldOffsetY,
		render.FieldColors{
			Background:    config.BackgroundColor,
			Field:         config.FieldColor,
			PlacementZone: config.PlacementZoneColor,
			Bastion:       config.BastionColor,
			Text:          config.TextLightColor,
			StrokeWidth:   config.StrokeWidth,
		},
		render.UnitColors{
			Party:        config.PartyColor,
			Selection:    config.SelectionColor,
			Range:        config.RangeColor,
			AttackEffect: config.AttackEffectColor,
			HealthGood:   config.HealthGoodColor,
			HealthBad:    config.HealthBadColor,
			HealthBack:   config.HealthBackColor,
		},
		face,
	)

	gs := &GameState{
		sm:               sm,
		game:             gameLogic,
		fontFace:         face,
		renderer:         renderer,
		infoPanel:        ui.NewInfoPanel(int(config.SidePanelX), config.HUDHeight, config.ScreenWidth-int(config.SidePanelX), config.ScreenHeight-config.HUDHeight, face),
		waveIndicator:    ui.NewWaveIndicator(config.ScreenWidth/2, 36),
		bastionIndicator: ui.NewBastionIndicator(16, 14),
		stateIndicator:   ui.NewStateIndicator(float32(config.ScreenWidth-70), 30, 12),
		pauseButton:      ui.NewPauseButton(float32(config.ScreenWidth-30), 30, 10, config.ButtonColor, config.HealthGoodColor),
		restartButton:    ui.NewButton(centeredRect(160, 32, config.ScreenHeight/2+20), "Play Again [R]"),
	}
	if autopilot {
		gs.bot = app.NewAutopilot(gameLogic)
	}

	// Ушедший со сцены защитник не может оставаться выбранным
	gs.restartSub = gameLogic.EventDispatcher.Subscribe(event.GameRestarted, event.ListenerFunc(func(event.Event) {
		gs.selected = 0
		gs.placing = ""
	}))
	return gs
}

func (g *GameState) Enter() {}

func (g *GameState) Exit() {
	g.game.EventDispatcher.Cancel(g.restartSub)
}

// Game returns the controller driven by this screen.
func (g *GameState) Game() *app.Game { return g.game }

func (g *GameState) Update(deltaTime float64) {
	dt := deltaTime * 1000
	if g.messageTTL > 0 {
		g.messageTTL -= deltaTime
	}

	if g.bot != nil {
		g.bot.Update(dt)
	} else if g.handleInput() {
		return
	}

	g.game.Update(dt)
	if g.selected != 0 && !g.game.World.Defenders.Has(g.selected) {
		g.selected = 0
	}
}

// handleInput returns true when the state machine switched away from this screen.
func (g *GameState) handleInput() bool {
	w := g.game.World

	if w.IsGameOver {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.game.Restart()
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			if g.restartButton.Clicked(ebiten.CursorPosition()) {
				g.game.Restart()
			}
		}
		return false
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.pause()
		return true
	}
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
		if inpututil.IsKeyJustPressed(key) {
			g.selectType(defs.DefenderTypes[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.placing = ""
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		g.upgradeSelected()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.report(g.game.UpgradeBastion())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.startWave()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return g.handleClick(ebiten.CursorPosition())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.placing = ""
		g.selected = 0
	}
	return false
}

func (g *GameState) handleClick(x, y int) bool {
	switch {
	case g.pauseButton.IsClicked(x, y):
		g.pause()
		return true
	case g.stateIndicator.IsClicked(x, y):
		g.stateIndicator.HandleClick()
		g.startWave()
		return false
	case g.infoPanel.Contains(x, y):
		return g.handlePanelAction(g.infoPanel.HandleClick(x, y))
	}

	fx, fy := g.renderer.ToField(x, y)
	if g.placing != "" {
		if !app.InPlacementZone(fx, fy) {
			return false
		}
		d, err := g.game.PlaceDefender(g.placing, fx, fy)
		if g.report(err) {
			g.placing = ""
			g.selected = d.ID
		}
		return false
	}

	if d := g.game.DefenderAt(fx, fy); d != nil {
		if d.ID == g.selected {
			g.selected = 0
		} else {
			g.selected = d.ID
		}
	}
	return false
}

func (g *GameState) handlePanelAction(a ui.Action) bool {
	switch a.Kind {
	case ui.ActionSelectType:
		g.selectType(a.DefenderType)
	case ui.ActionCancelPlacement:
		g.placing = ""
	case ui.ActionUpgradeDefender:
		g.upgradeSelected()
	case ui.ActionUpgradeBastion:
		g.report(g.game.UpgradeBastion())
	case ui.ActionStartWave:
		g.startWave()
	case ui.ActionTogglePause:
		g.pause()
		return true
	}
	return false
}

func (g *GameState) selectType(t defs.DefenderType) {
	if g.game.World.Gold < defs.DefenderCost(t) {
		g.report(app.ErrInsufficientGold)
		return
	}
	g.placing = t
	g.selected = 0
}

func (g *GameState) upgradeSelected() {
	if g.selected == 0 {
		return
	}
	g.report(g.game.UpgradeDefender(g.selected))
}

func (g *GameState) startWave() {
	if g.report(g.game.StartWave()) {
		g.stateIndicator.HandleClick()
	}
}

func (g *GameState) pause() {
	if g.game.TogglePause() {
		g.sm.Push(NewPauseState(g.sm, g))
	}
}

// report shows err to the player and returns true when there was none.
func (g *GameState) report(err error) bool {
	if err == nil {
		return true
	}
	if !errors.Is(err, app.ErrInsufficientGold) && !errors.Is(err, app.ErrWaveInProgress) {
		slog.Debug("player action rejected", "err", err)
	}
	g.message = err.Error()
	g.messageTTL = messageTTL
	return false
}

func (g *GameState) Draw(screen *ebiten.Image) {
	w := g.game.World
	g.renderer.Draw(screen, w, g.game.GameTime(), g.selected, g.ghost())
	g.drawHUD(screen)

	g.infoPanel.Sync(g.panelView())
	g.infoPanel.Draw(screen, g.panelView())

	if g.messageTTL > 0 && g.message != "" {
		b := text.BoundString(g.fontFace, g.message)
		x := (int(config.GameWidth) - b.Dx()) / 2
		text.Draw(screen, g.message, g.fontFace, x, config.ScreenHeight-16, config.HealthBadColor)
	}

	if w.IsGameOver {
		g.drawGameOver(screen)
	}
}

func (g *GameState) drawHUD(screen *ebiten.Image) {
	w := g.game.World
	g.bastionIndicator.Draw(screen, g.fontFace, w.Bastion)
	g.waveIndicator.Draw(screen, g.fontFace, w.Wave)

	gold := fmt.Sprintf("Gold: %d", w.Gold)
	text.Draw(screen, gold, g.fontFace, config.ScreenWidth/2+60, 36, config.SelectionColor)
	if pending := g.game.PendingSpawns(); pending > 0 {
		text.Draw(screen, fmt.Sprintf("Incoming: %d", pending), g.fontFace, config.ScreenWidth/2+160, 36, config.TextLightColor)
	}
	if g.bot != nil {
		text.Draw(screen, "AUTOPILOT", g.fontFace, config.ScreenWidth/2-180, 36, config.PartyColor)
	}

	g.stateIndicator.Draw(screen, g.phaseColor())
	g.pauseButton.SetPaused(w.IsPaused)
	g.pauseButton.Draw(screen)
}

func (g *GameState) drawGameOver(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	title := fmt.Sprintf("GAME OVER - wave %d", g.game.World.Wave)
	b := text.BoundString(g.fontFace, title)
	text.Draw(screen, title, g.fontFace, (config.ScreenWidth-b.Dx())/2, config.ScreenHeight/2-10, config.TextLightColor)
	if g.bot == nil {
		cx, cy := ebiten.CursorPosition()
		g.restartButton.Draw(screen, g.fontFace, cx, cy)
	}
}

func centeredRect(w, h, top int) image.Rectangle {
	left := (config.ScreenWidth - w) / 2
	return image.Rect(left, top, left+w, top+h)
}

func (g *GameState) phaseColor() color.RGBA {
	w := g.game.World
	switch {
	case w.IsGameOver || w.IsPaused:
		return ui.PhaseStoppedColor
	case w.IsWaveActive:
		return ui.PhaseWaveColor
	case g.game.BonusPending():
		return ui.PhaseBonusColor
	}
	return ui.PhaseIdleColor
}

func (g *GameState) ghost() *render.Ghost {
	if g.placing == "" {
		return nil
	}
	fx, fy := g.renderer.ToField(ebiten.CursorPosition())
	if fx < 0 || fy < 0 || fx > config.GameWidth || fy > config.GameHeight {
		return nil
	}
	return &render.Ghost{Type: g.placing, X: fx, Y: fy, Valid: app.InPlacementZone(fx, fy)}
}

func (g *GameState) panelView() ui.PanelView {
	w := g.game.World
	v := ui.PanelView{
		Gold:       w.Gold,
		Wave:       w.Wave,
		WaveActive: !g.game.Idle(),
		Paused:     w.IsPaused,
		GameOver:   w.IsGameOver,
		Placing:    g.placing,
		Bastion:    w.Bastion,
		NextWave:   defs.GenerateWaveConfig(w.Wave + 1),
	}
	if cfg, ok := g.game.WaveConfig(); ok && w.IsWaveActive {
		v.NextWave = cfg
	}
	if g.selected != 0 {
		v.Selected = w.Defenders.Get(g.selected)
	}
	return v
}

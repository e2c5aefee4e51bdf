// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1000
	ScreenHeight = 560
	MaxDeltaTime = 0.06 // секунды; длиннее кадр не считаем
	HUDHeight    = 60   // полоса сверху под индикаторы

	// Игровое поле (в пикселях, относительно левого верхнего угла поля)
	GameWidth  = 800.0
	GameHeight = 500.0
	BastionX   = GameWidth - 80
	BastionY   = GameHeight / 2
	EdgeMargin = 20.0 // варвар не уходит ближе к краю

	// Поле рисуется под HUD, справа от него боковая панель
	FieldOffsetX = 0.0
	FieldOffsetY = float64(HUDHeight)
	SidePanelX   = GameWidth

	// Зона расстановки защитников
	PlacementZoneX      = 150.0
	PlacementZoneY      = 50.0
	PlacementZoneWidth  = 550.0
	PlacementZoneHeight = 400.0

	StartingGold = 150

	// Симуляция
	ProjectileSpeed   = 400.0 // progress += dt(ms) * speed / distance
	ArrivalThreshold  = 30.0  // враг в этом радиусе считается дошедшим до бастиона
	PartyAttackRadius = 50.0
	PartyScoreDamage  = 5.0 // power score = health + 5*damage
	AttackEffectTTL   = 600.0

	ErraticBlend       = 0.6 // доля случайного направления у варвара
	ErraticMinInterval = 200.0
	ErraticMaxInterval = 400.0

	// Появление врагов
	EnemySpawnX       = -30.0
	EnemySpawnMarginY = 80.0
	PartySpawnOffsetX = 60.0
	PartySpawnSpreadY = 40.0
	WaveBonusDelay    = 500.0 // мс между зачисткой волны и выдачей бонуса

	// Визуал
	DefenderRadius   = 14.0
	EnemyRadius      = 10.0
	PartyRadius      = 11.0
	ProjectileRadius = 4.0
	BastionRadius    = 34.0
	ClickRadius      = 18.0
	HealthBarWidth   = 24.0
)

var (
	BackgroundColor    = color.RGBA{20, 20, 30, 255}
	FieldColor         = color.RGBA{46, 70, 48, 255}
	PlacementZoneColor = color.RGBA{70, 130, 180, 60}
	BastionColor       = color.RGBA{150, 150, 170, 255}
	TextLightColor     = color.RGBA{240, 240, 240, 255}
	HealthGoodColor    = color.RGBA{50, 205, 50, 255}
	HealthBadColor     = color.RGBA{220, 60, 60, 255}
	HealthBackColor    = color.RGBA{40, 40, 40, 255}
	SelectionColor     = color.RGBA{255, 215, 0, 255}
	PartyColor         = color.RGBA{80, 200, 255, 255}
	AttackEffectColor  = color.RGBA{255, 120, 40, 200}
	RangeColor         = color.RGBA{255, 255, 255, 40}
	PanelColor         = color.RGBA{20, 20, 30, 230}
	PanelBorderColor   = color.RGBA{70, 100, 120, 255}
	OverlayColor       = color.RGBA{0, 0, 0, 140}
	ButtonColor        = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor   = color.RGBA{100, 160, 210, 230}
	ButtonDisabled     = color.RGBA{80, 80, 80, 200}
	StrokeWidth        = float32(2.0)
)

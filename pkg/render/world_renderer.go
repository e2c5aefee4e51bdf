// pkg/render/world_renderer.go
package render

import (
	"image/color"
	"math"

	"battle-of-bastions/internal/component"
	"battle-of-bastions/internal/config"
	"battle-of-bastions/internal/defs"
	"battle-of-bastions/internal/entity"
	"battle-of-bastions/internal/types"
	"battle-of-bastions/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Ghost: защитник, которого игрок сейчас ставит (следует за курсором).
type Ghost struct {
	Type  defs.DefenderType
	X, Y  float64 // координаты поля
	Valid bool
}

// WorldRenderer рисует игровое поле и все сущности мира.
type WorldRenderer struct {
	offsetX, offsetY float64
	field            FieldColors
	units            UnitColors
	fontFace         font.Face
	fieldImage       *ebiten.Image // предрендеренный задник
}

func NewWorldRenderer(offsetX, offsetY float64, field FieldColors, units UnitColors, face font.Face) *WorldRenderer {
	r := &WorldRenderer{
		offsetX:    offsetX,
		offsetY:    offsetY,
		field:      field,
		units:      units,
		fontFace:   face,
		fieldImage: ebiten.NewImage(int(config.GameWidth), int(config.GameHeight)),
	}
	r.RenderFieldImage()
	return r
}

// RenderFieldImage рисует статичную часть поля один раз.
func (r *WorldRenderer) RenderFieldImage() {
	img := r.fieldImage
	img.Fill(r.field.Field)

	vector.DrawFilledRect(img,
		float32(config.PlacementZoneX), float32(config.PlacementZoneY),
		float32(config.PlacementZoneWidth), float32(config.PlacementZoneHeight),
		r.field.PlacementZone, false)
	vector.StrokeRect(img,
		float32(config.PlacementZoneX), float32(config.PlacementZoneY),
		float32(config.PlacementZoneWidth), float32(config.PlacementZoneHeight),
		1, DarkenColor(r.field.PlacementZone), false)

	// Полоса, из-за которой выходят враги
	vector.DrawFilledRect(img, 0, 0, 6, float32(config.GameHeight), DarkenColor(r.field.Field), false)
}

// ToScreen converts field coordinates into screen coordinates.
func (r *WorldRenderer) ToScreen(x, y float64) (float32, float32) {
	return float32(x + r.offsetX), float32(y + r.offsetY)
}

// ToField converts a cursor position into field coordinates.
func (r *WorldRenderer) ToField(sx, sy int) (float64, float64) {
	return float64(sx) - r.offsetX, float64(sy) - r.offsetY
}

// Draw renders w at game time now. selected is highlighted with its range.
func (r *WorldRenderer) Draw(screen *ebiten.Image, w *entity.World, now float64, selected types.EntityID, ghost *Ghost) {
	screen.Fill(r.field.Background)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(r.offsetX, r.offsetY)
	screen.DrawImage(r.fieldImage, op)

	r.drawBastion(screen, w.Bastion)
	for _, d := range w.Defenders.Items() {
		r.drawDefender(screen, d, d.ID == selected)
	}
	for _, e := range w.Enemies.Items() {
		r.drawEnemy(screen, e)
	}
	for _, p := range w.Parties.Items() {
		r.drawParty(screen, p)
	}
	for _, p := range w.Projectiles.Items() {
		r.drawProjectile(screen, p)
	}
	for _, a := range w.AttackEffects.Items() {
		r.drawAttackEffect(screen, a, now)
	}
	if ghost != nil {
		r.drawGhost(screen, *ghost)
	}
}

func (r *WorldRenderer) drawBastion(screen *ebiten.Image, b component.Bastion) {
	cx, cy := r.ToScreen(config.BastionX, config.BastionY)
	radius := float32(config.BastionRadius)

	vector.DrawFilledCircle(screen, cx, cy, radius, r.field.Bastion, true)
	vector.StrokeCircle(screen, cx, cy, radius, r.field.StrokeWidth, DarkenColor(r.field.Bastion), true)

	ratio := 0.0
	if b.MaxHealth > 0 {
		ratio = b.Health / b.MaxHealth
	}
	r.drawHealthBar(screen, cx, cy-radius-10, radius*2, ratio)
	r.drawLabel(screen, utils.ToRoman(b.Level), cx, cy+4, r.field.Text)
}

func (r *WorldRenderer) drawDefender(screen *ebiten.Image, d component.Defender, selected bool) {
	cx, cy := r.ToScreen(d.Pos.X, d.Pos.Y)
	radius := float32(config.DefenderRadius)
	vis := defs.DefenderLibrary[d.Type].Visuals

	if selected {
		vector.DrawFilledCircle(screen, cx, cy, float32(d.Range), r.units.Range, true)
		vector.StrokeCircle(screen, cx, cy, float32(d.Range), 1, r.units.Selection, true)
	}
	vector.DrawFilledCircle(screen, cx, cy, radius, vis.Color, true)
	outline := DarkenColor(vis.Color)
	if selected {
		outline = r.units.Selection
	}
	vector.StrokeCircle(screen, cx, cy, radius, r.field.StrokeWidth, outline, true)
	r.drawLabel(screen, vis.Symbol, cx, cy+4, color.Black)

	// Уровень точками под юнитом
	for i := 0; i < d.Level && i < 5; i++ {
		px := cx - 8 + float32(i)*4
		vector.DrawFilledCircle(screen, px, cy+radius+4, 1.5, r.units.Selection, false)
	}
}

func (r *WorldRenderer) drawEnemy(screen *ebiten.Image, e component.Enemy) {
	cx, cy := r.ToScreen(e.Pos.X, e.Pos.Y)
	radius := float32(config.EnemyRadius)
	if e.Type == defs.Troll || e.Type == defs.Dragon {
		radius *= 1.4
	}
	vis := defs.EnemyLibrary[e.Type].Visuals

	vector.DrawFilledCircle(screen, cx, cy, radius, vis.Color, true)
	vector.StrokeCircle(screen, cx, cy, radius, 1, DarkenColor(vis.Color), true)
	r.drawLabel(screen, vis.Symbol, cx, cy+4, r.field.Text)

	ratio := 0.0
	if e.MaxHealth > 0 {
		ratio = e.Health / e.MaxHealth
	}
	r.drawHealthBar(screen, cx, cy-radius-6, float32(config.HealthBarWidth), ratio)
}

func (r *WorldRenderer) drawParty(screen *ebiten.Image, p component.AdventureParty) {
	cx, cy := r.ToScreen(p.Pos.X, p.Pos.Y)
	radius := float32(config.PartyRadius)

	// Ромб, чтобы не путать с защитниками
	var path vector.Path
	path.MoveTo(cx, cy-radius)
	path.LineTo(cx+radius, cy)
	path.LineTo(cx, cy+radius)
	path.LineTo(cx-radius, cy)
	path.Close()
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r.units.Party.R) / 255
		vs[i].ColorG = float32(r.units.Party.G) / 255
		vs[i].ColorB = float32(r.units.Party.B) / 255
		vs[i].ColorA = float32(r.units.Party.A) / 255
	}
	screen.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})

	ratio := 0.0
	if p.MaxHealth > 0 {
		ratio = p.Health / p.MaxHealth
	}
	r.drawHealthBar(screen, cx, cy-radius-6, float32(config.HealthBarWidth), ratio)
}

func (r *WorldRenderer) drawProjectile(screen *ebiten.Image, p component.Projectile) {
	pos := p.Current()
	cx, cy := r.ToScreen(pos.X, pos.Y)
	clr := defs.DefenderLibrary[p.Kind].Visuals.Color

	// Короткий хвост по направлению полёта
	dx, dy := p.To.X-p.From.X, p.To.Y-p.From.Y
	if l := math.Hypot(dx, dy); l > 0 {
		tx := cx - float32(dx/l*8)
		ty := cy - float32(dy/l*8)
		vector.StrokeLine(screen, tx, ty, cx, cy, 2, FadeColor(clr, 0.5), true)
	}
	vector.DrawFilledCircle(screen, cx, cy, float32(config.ProjectileRadius), clr, true)
}

func (r *WorldRenderer) drawAttackEffect(screen *ebiten.Image, a component.AttackEffect, now float64) {
	f := a.Fraction(now)
	cx, cy := r.ToScreen(a.Pos.X, a.Pos.Y)
	radius := float32(config.EnemyRadius + 20*f)
	vector.StrokeCircle(screen, cx, cy, radius, 3, FadeColor(r.units.AttackEffect, 1-f), true)
}

func (r *WorldRenderer) drawGhost(screen *ebiten.Image, g Ghost) {
	cx, cy := r.ToScreen(g.X, g.Y)
	def := defs.DefenderLibrary[g.Type]
	clr := FadeColor(def.Visuals.Color, 0.5)
	if !g.Valid {
		clr = FadeColor(r.units.HealthBad, 0.5)
	}
	vector.StrokeCircle(screen, cx, cy, float32(def.BaseRange), 1, r.units.Range, true)
	vector.DrawFilledCircle(screen, cx, cy, float32(config.DefenderRadius), clr, true)
}

func (r *WorldRenderer) drawHealthBar(screen *ebiten.Image, cx, y, width float32, ratio float64) {
	ratio = max(0, min(ratio, 1))
	x := cx - width/2
	vector.DrawFilledRect(screen, x, y, width, 3, r.units.HealthBack, false)
	fill := HealthColor(r.units.HealthGood, r.units.HealthBad, ratio)
	vector.DrawFilledRect(screen, x, y, width*float32(ratio), 3, fill, false)
}

func (r *WorldRenderer) drawLabel(screen *ebiten.Image, s string, cx, baseline float32, clr color.Color) {
	if r.fontFace == nil || s == "" {
		return
	}
	bounds := text.BoundString(r.fontFace, s)
	x := int(cx) - bounds.Dx()/2
	text.Draw(screen, s, r.fontFace, x, int(baseline), clr)
}

var whitePixelImage *ebiten.Image

func whitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixelImage = img
	}
	return whitePixelImage
}

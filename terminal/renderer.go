package terminal

import (
	"fmt"
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/eniklas/nachtmission/config"
	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/game"
)

// DefaultUnitsPerCol is the horizontal world distance one cell covers
const DefaultUnitsPerCol = 2.0

const title = "NACHTMISSION"

var (
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHelp     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleGround   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleRiver    = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	stylePad      = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleBase     = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleChopper  = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleEnemy    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePrisoner = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleRound    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	stylePrison   = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleFire     = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)
	styleSmoke    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleCrashed  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleGameOver = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon).Bold(true)
)

// Renderer draws frames onto a screen
type Renderer struct {
	screen tcell.Screen
	world  config.World
	camera Camera

	unitsPerCol float64
}

// NewRenderer creates a renderer for the level geometry in world
func NewRenderer(screen tcell.Screen, world config.World) *Renderer {
	return &Renderer{
		screen:      screen,
		world:       world,
		unitsPerCol: DefaultUnitsPerCol,
	}
}

// Camera returns the camera used by the last Draw
func (r *Renderer) Camera() Camera {
	return r.camera
}

// Draw renders f and shows the screen
func (r *Renderer) Draw(f Frame) {
	w, h := r.screen.Size()
	r.screen.Clear()
	if w < 20 || h < 8 {
		r.text(0, 0, "window too small", styleHUD)
		r.screen.Show()
		return
	}

	r.camera = NewCamera(w, h, r.unitsPerCol, r.world.Ceiling)
	followX := r.world.LandingPadX
	if f.Chopper.Alive {
		followX = f.Chopper.Pos.X
	}
	r.camera.Follow(followX, r.world.LeftBoundary, r.world.RightBoundary)

	r.drawTerrain(w)
	r.drawEntities(f)
	r.drawHUD(f, w)
	r.text(0, h-1, "arrows/wasd fly  space fire  z/x turn  esc menu  m mute  q quit", styleHelp)

	if f.Score.GameOver {
		r.centered(h/2, " "+f.Score.Outcome.String()+" ", styleGameOver)
		r.centered(h/2+1, "ctrl+r new mission", styleHelp)
	} else if f.Paused {
		r.drawTitle(f.TitleZoom, h)
	}

	r.screen.Show()
}

func (r *Renderer) drawTerrain(w int) {
	row := r.camera.GroundRow
	for col := 0; col < w; col++ {
		x := r.camera.WorldX(col)
		ch, style := groundCell(r.world, x)
		r.screen.SetContent(col, row, ch, nil, style)
	}
}

// groundCell picks the terrain glyph under world x
func groundCell(world config.World, x float64) (rune, tcell.Style) {
	switch {
	case x < world.LeftBoundary || x > world.RightBoundary:
		return ' ', tcell.StyleDefault
	case world.OverRiver(x):
		return '~', styleRiver
	case math.Abs(x-world.LandingPadX) <= world.LandingPadHalfX:
		return '=', stylePad
	case x >= world.BaseEntranceX:
		return '#', styleBase
	}
	return '_', styleGround
}

func (r *Renderer) drawEntities(f Frame) {
	// Far entities first so near ones overwrite them
	ents := make([]game.EntityView, len(f.Entities))
	copy(ents, f.Entities)
	sort.SliceStable(ents, func(i, j int) bool { return ents[i].Pos.Z > ents[j].Pos.Z })

	for _, e := range ents {
		col, row, ok := r.camera.Project(e.Pos)
		if !ok {
			continue
		}
		ch, style, draw := glyph(e, f.Chopper)
		if !draw {
			continue
		}
		r.screen.SetContent(col, row, ch, nil, style)
	}
}

// glyph picks the cell for an entity, draw is false for entities without a sprite
func glyph(e game.EntityView, chopper game.ChopperView) (ch rune, style tcell.Style, draw bool) {
	switch e.Kind {
	case core.KindChopper:
		if chopper.Crashing {
			return '*', styleCrashed, true
		}
		switch chopper.Facing {
		case core.FacingLeft:
			return '<', styleChopper, true
		case core.FacingRight:
			return '>', styleChopper, true
		}
		return 'H', styleChopper, true
	case core.KindTank:
		return 'T', styleEnemy, true
	case core.KindTurret:
		return 'Y', styleEnemy, true
	case core.KindJet:
		return 'J', styleEnemy, true
	case core.KindDrone:
		return 'o', styleEnemy, true
	case core.KindMissile:
		return '-', styleEnemy, true
	case core.KindProjectile:
		return '.', styleRound, true
	case core.KindPrisoner:
		return 'i', stylePrisoner, true
	case core.KindPrison:
		if e.Damaged {
			return '%', stylePrison, true
		}
		return '#', stylePrison, true
	case core.KindEffect:
		switch e.Effect {
		case core.EffectSmallExplosion, core.EffectBigExplosion:
			return '*', styleFire, true
		case core.EffectFire:
			return '^', styleFire, true
		case core.EffectSmoke:
			return '\'', styleSmoke, true
		case core.EffectPrisonDebris:
			return ',', stylePrison, true
		}
	}
	return 0, tcell.StyleDefault, false
}

func (r *Renderer) drawHUD(f Frame, w int) {
	c := f.Score.Counters
	hud := fmt.Sprintf("LIVES %d  ONBOARD %d/%d  RESCUED %d  KILLED %d  CAPTIVE %d",
		c.Lives, c.Onboard, f.Chopper.Capacity, c.Rescued, c.Killed, c.Captive)
	r.text(0, 0, hud, styleHUD)
	if f.Muted {
		r.text(w-5, 0, "MUTE", styleHelp)
	}
}

// drawTitle reveals the title from the centre outward as zoom goes 0 to 1
func (r *Renderer) drawTitle(zoom float64, h int) {
	zoom = math.Max(0, math.Min(1, zoom))
	n := int(math.Ceil(zoom * float64(len(title))))
	if n == 0 {
		return
	}
	start := (len(title) - n) / 2
	r.centered(h/3, title[start:start+n], styleTitle)
	r.centered(h/3+2, "paused, esc to fly", styleHelp)
}

func (r *Renderer) centered(row int, s string, style tcell.Style) {
	w, _ := r.screen.Size()
	r.text((w-len(s))/2, row, s, style)
}

func (r *Renderer) text(col, row int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(col+i, row, ch, nil, style)
	}
}

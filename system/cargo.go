package system

import (
	"github.com/eniklas/nachtmission/component"
	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/parameter"
	"github.com/eniklas/nachtmission/physics"
	"github.com/eniklas/nachtmission/vmath"
)

// updateCargo resolves prisoner pickup while grounded and unloading on the landing pad
func (s *ChopperSystem) updateCargo(e core.Entity, c *component.ChopperComponent, k *core.Kinetic, dt float64) {
	if !c.Grounded {
		c.UnloadTimer = 0
		return
	}
	s.pickup(c, k)
	s.unload(c, k, dt)
}

// pickup counts collider overlaps per free prisoner
// Facing forward one overlap boards; side facing needs both body and cockpit
// A prisoner under the helicopter on the touchdown tick is crushed instead
func (s *ChopperSystem) pickup(c *component.ChopperComponent, k *core.Kinetic) {
	boxes := chopperBoxes(c.Facing)
	need := 2
	if c.Facing == core.FacingForward {
		need = 1
	}

	for _, pe := range s.Component.Prisoner.GetAllEntities() {
		if !s.World.Alive(pe) {
			continue
		}
		p, ok := s.Component.Prisoner.GetComponent(pe)
		if !ok || !p.Boardable() {
			continue
		}
		pk, ok := s.Component.Kinetic.GetComponent(pe)
		if !ok {
			continue
		}
		col, ok := s.Component.Collider.GetComponent(pe)
		if !ok || len(col.Boxes) == 0 {
			continue
		}

		p.ArmCount = physics.CountOverlaps(k.Pos, boxes, col.Boxes[0].World(pk.Pos))
		s.Component.Prisoner.SetComponent(pe, p)
		if p.ArmCount == 0 {
			continue
		}

		if c.JustLanded {
			killPrisoner(s.World, pe, pk.Pos)
			continue
		}
		if p.ArmCount < need || s.Resource.Score.Onboard >= c.Capacity {
			continue
		}
		if s.World.DestroyEntity(pe) {
			scoreBoard(s.World, pe, pk.Pos)
			requestSound(s.World, core.SoundBoard, pk.Pos)
		}
	}
}

// unload drops one prisoner every UnloadPeriod while parked on the pad
func (s *ChopperSystem) unload(c *component.ChopperComponent, k *core.Kinetic, dt float64) {
	cfg := s.Resource.Config
	onPad := vmath.Abs(k.Pos.X-cfg.World.LandingPadX) <= cfg.World.LandingPadHalfX
	if !onPad || s.Resource.Score.Onboard <= 0 {
		c.UnloadTimer = 0
		return
	}

	c.UnloadTimer += dt
	if c.UnloadTimer < cfg.Chopper.UnloadPeriod {
		return
	}
	c.UnloadTimer -= cfg.Chopper.UnloadPeriod

	pos := vmath.V3F(k.Pos.X+parameter.ChopperUnloadOffset, parameter.PrisonerY, k.Pos.Z)
	pe := spawnPrisoner(s.World, pos, rescuedPrisoner(s.World, pos))
	scoreRescue(s.World, pe, pos)
	requestSound(s.World, core.SoundUnload, pos)
}

// rescuedPrisoner aims a freshly unloaded prisoner at the base entrance so
// X and Z arrive together
func rescuedPrisoner(w *engine.World, pos vmath.Vec3F) component.PrisonerComponent {
	world := w.Resources.Config.World
	xDist := vmath.Abs(world.BaseEntranceX - pos.X)
	zDist := vmath.Abs(world.BaseEntranceZ - pos.Z)

	factor := 1.0
	if xDist > 0 {
		factor = zDist / xDist
	}
	dir := core.Direction(vmath.Sign(world.BaseEntranceX - pos.X))
	return component.PrisonerComponent{
		State:        component.PrisonerRescued,
		Dir:          dir,
		FinalZ:       world.BaseEntranceZ,
		ZSpeedFactor: factor,
	}
}

package physics

import (
	"math"

	"github.com/automoto/yardwalk/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

const contactEpsilon = 1e-9

// Step advances every awake dynamic body by one fixed timestep.
func (w *World) Step() {
	dt := w.cfg.Timestep
	for _, b := range w.order {
		if b.kind == Fixed || b.sleeping || len(b.colliders) == 0 {
			continue
		}

		vy := b.velocity.Y() - w.cfg.Gravity*dt
		b.velocity[1] = math.Max(vy, -w.cfg.MaxFallSpeed)

		w.moveAxis(b, 0, b.velocity.X()*dt)
		w.moveAxis(b, 2, b.velocity.Z()*dt)
		w.moveVertical(b, b.velocity.Y()*dt)

		if b.grounded {
			b.velocity = gamemath.ApplyFrictionXZ(b.velocity, w.cfg.GroundFriction*dt)
			if b.velocity.Len() < w.cfg.SleepSpeed {
				b.velocity = mgl64.Vec3{}
				b.sleeping = true
			}
		}
		w.sync(b)
	}
}

// nearby returns the colliders of other bodies whose footprints share a
// broadphase cell with b's footprints after a move of (dx, dz).
func (w *World) nearby(b *body, dx, dz float64) []*collider {
	seen := make(map[*collider]bool)
	var out []*collider
	for _, c := range b.colliders {
		check := c.obj.Check(dx*w.cfg.GridScale, dz*w.cfg.GridScale)
		if check == nil {
			continue
		}
		for _, obj := range check.Objects {
			other, ok := obj.Data.(*collider)
			if !ok || other.body == b || seen[other] {
				continue
			}
			seen[other] = true
			out = append(out, other)
		}
	}
	return out
}

func overlaps(minA, maxA, minB, maxB float64) bool {
	return maxA > minB+contactEpsilon && minA < maxB-contactEpsilon
}

// moveAxis moves b by d along X (axis 0) or Z (axis 2), stopping at the
// first collider that overlaps it vertically. Surfaces no higher than
// StepHeight above the body's feet are stepped over.
func (w *World) moveAxis(b *body, axis int, d float64) {
	if d == 0 {
		return
	}
	side := 2 - axis
	var delta [3]float64
	delta[axis] = d

	min, max := b.bounds()
	blocked := false
	var blocker *body
	for _, c := range w.nearby(b, delta[0], delta[2]) {
		omin, omax := c.bounds()
		if !overlaps(min.Y()+w.cfg.StepHeight, max.Y(), omin.Y(), omax.Y()) {
			continue
		}
		if !overlaps(min[side], max[side], omin[side], omax[side]) {
			continue
		}
		if d > 0 {
			if gap := omin[axis] - max[axis]; gap >= -contactEpsilon && gap < d {
				d = math.Max(gap, 0)
				blocked = true
				blocker = c.body
			}
		} else {
			if gap := omax[axis] - min[axis]; gap <= contactEpsilon && gap > d {
				d = math.Min(gap, 0)
				blocked = true
				blocker = c.body
			}
		}
	}

	b.position[axis] += d
	if blocked {
		b.velocity[axis] = w.push(b, blocker, axis)
	}
	w.sync(b)
}

// push shares the mover's velocity along axis with a dynamic body it ran
// into, split by mass, and returns what the mover keeps. Fixed or massless
// blockers stop the mover dead.
func (w *World) push(mover, blocker *body, axis int) float64 {
	if blocker == nil || blocker.kind == Fixed {
		return 0
	}
	mm, mb := mover.mass(), blocker.mass()
	if mm <= 0 || mm+mb <= 0 {
		return 0
	}
	v := mover.velocity[axis] * mm / (mm + mb)
	if math.Abs(v) > math.Abs(blocker.velocity[axis]) {
		blocker.velocity[axis] = v
		blocker.sleeping = false
	}
	return v
}

// moveVertical moves b by dy, landing on the highest top surface below it
// or stopping under the lowest ceiling above it.
func (w *World) moveVertical(b *body, dy float64) {
	min, max := b.bounds()
	candidates := w.nearby(b, 0, 0)
	b.grounded = false

	if dy <= 0 {
		floor := math.Inf(-1)
		for _, c := range candidates {
			omin, omax := c.bounds()
			if !overlaps(min.X(), max.X(), omin.X(), omax.X()) || !overlaps(min.Z(), max.Z(), omin.Z(), omax.Z()) {
				continue
			}
			top := omax.Y()
			if top <= min.Y()+w.cfg.StepHeight && top >= min.Y()+dy-contactEpsilon {
				floor = math.Max(floor, top)
			}
		}
		if !math.IsInf(floor, -1) {
			b.position[1] += floor - min.Y()
			b.velocity[1] = 0
			b.grounded = true
			return
		}
		b.position[1] += dy
		return
	}

	ceiling := math.Inf(1)
	for _, c := range candidates {
		omin, omax := c.bounds()
		if !overlaps(min.X(), max.X(), omin.X(), omax.X()) || !overlaps(min.Z(), max.Z(), omin.Z(), omax.Z()) {
			continue
		}
		bottom := omin.Y()
		if bottom >= max.Y()-contactEpsilon && bottom < max.Y()+dy {
			ceiling = math.Min(ceiling, bottom)
		}
	}
	if !math.IsInf(ceiling, 1) {
		b.position[1] += ceiling - max.Y()
		b.velocity[1] = 0
		return
	}
	b.position[1] += dy
}

// depenetrate lifts b onto the highest surface its lower half is sunk into.
func (w *World) depenetrate(b *body) {
	min, max := b.bounds()
	top := math.Inf(-1)
	for _, c := range w.nearby(b, 0, 0) {
		omin, omax := c.bounds()
		if !overlaps(min.X(), max.X(), omin.X(), omax.X()) || !overlaps(min.Z(), max.Z(), omin.Z(), omax.Z()) {
			continue
		}
		if omax.Y() > min.Y() && omax.Y() <= b.position.Y() {
			top = math.Max(top, omax.Y())
		}
	}
	if !math.IsInf(top, -1) {
		b.position[1] += top - min.Y()
		w.sync(b)
	}
}

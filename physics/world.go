// Package physics is a small rigid-body world: gravity, axis-aligned
// contact against static and dynamic colliders, and ground friction.
// Broadphase queries go through a resolv space laid over the XZ plane.
package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/yardwalk/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

var (
	ErrUnknownBody     = errors.New("unknown rigid body")
	ErrUnknownCollider = errors.New("unknown collider")
	ErrInvalidShape    = errors.New("invalid collider shape")
)

// footprintPad widens every footprint so broadphase queries never miss a
// neighbour that is closer than one space unit.
const footprintPad = 2.0

// Resolv tags carried by collider footprints.
const (
	TagFixed   = "fixed"
	TagDynamic = "dynamic"
)

type BodyKind int

const (
	Dynamic BodyKind = iota
	Fixed
)

type (
	BodyHandle     int
	ColliderHandle int
)

// Pose is a body's position and orientation.
type Pose struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

type body struct {
	handle        BodyHandle
	kind          BodyKind
	position      mgl64.Vec3
	velocity      mgl64.Vec3
	lockRotations bool
	colliders     []*collider
	grounded      bool
	sleeping      bool
}

type collider struct {
	handle  ColliderHandle
	body    *body
	shape   Shape
	density float64
	obj     *resolv.Object
}

// World owns every body and collider. Callers hold handles only.
type World struct {
	cfg   config.PhysicsConfig
	space *resolv.Space

	bodies    map[BodyHandle]*body
	colliders map[ColliderHandle]*collider
	order     []*body

	nextBody     BodyHandle
	nextCollider ColliderHandle
}

// NewWorld builds an empty world covering ±ArenaHalfSize on X and Z.
func NewWorld(cfg config.PhysicsConfig) *World {
	side := int(math.Ceil(2 * cfg.ArenaHalfSize * cfg.GridScale))
	cell := int(cfg.CellSize)
	if cell < 1 {
		cell = 1
	}
	return &World{
		cfg:       cfg,
		space:     resolv.NewSpace(side, side, cell, cell),
		bodies:    make(map[BodyHandle]*body),
		colliders: make(map[ColliderHandle]*collider),
	}
}

// Space exposes the broadphase grid for debug drawing.
func (w *World) Space() *resolv.Space {
	return w.space
}

// ToSpace maps a world X or Z coordinate into broadphase space.
func (w *World) ToSpace(v float64) float64 {
	return (v + w.cfg.ArenaHalfSize) * w.cfg.GridScale
}

// FromSpace is the inverse of ToSpace.
func (w *World) FromSpace(v float64) float64 {
	return v/w.cfg.GridScale - w.cfg.ArenaHalfSize
}

func (w *World) CreateRigidBody(kind BodyKind, position mgl64.Vec3, lockRotations bool) BodyHandle {
	w.nextBody++
	b := &body{
		handle:        w.nextBody,
		kind:          kind,
		position:      position,
		lockRotations: lockRotations,
	}
	w.bodies[b.handle] = b
	w.order = append(w.order, b)
	return b.handle
}

// CreateCollider attaches shape to the body. A dynamic body that ends up
// sunk into a surface is lifted onto it.
func (w *World) CreateCollider(shape Shape, density float64, bh BodyHandle) (ColliderHandle, error) {
	b, ok := w.bodies[bh]
	if !ok {
		return 0, fmt.Errorf("create collider on body %d: %w", bh, ErrUnknownBody)
	}
	if err := shape.Validate(); err != nil {
		return 0, err
	}
	if density < 0 {
		return 0, fmt.Errorf("%w: negative density %g", ErrInvalidShape, density)
	}

	w.nextCollider++
	c := &collider{handle: w.nextCollider, body: b, shape: shape, density: density}
	tag := TagDynamic
	if b.kind == Fixed {
		tag = TagFixed
	}
	ext := shape.Extents()
	c.obj = resolv.NewObject(0, 0,
		2*ext.X()*w.cfg.GridScale+2*footprintPad,
		2*ext.Z()*w.cfg.GridScale+2*footprintPad,
		tag)
	c.obj.Data = c
	w.colliders[c.handle] = c
	b.colliders = append(b.colliders, c)
	w.space.Add(c.obj)
	w.sync(b)

	if b.kind == Dynamic {
		w.depenetrate(b)
		b.sleeping = false
	}
	return c.handle, nil
}

// RemoveCollider detaches and drops a collider. With wake set the owning
// body resumes simulation.
func (w *World) RemoveCollider(ch ColliderHandle, wake bool) error {
	c, ok := w.colliders[ch]
	if !ok {
		return fmt.Errorf("remove collider %d: %w", ch, ErrUnknownCollider)
	}
	delete(w.colliders, ch)
	w.space.Remove(c.obj)

	b := c.body
	for i, other := range b.colliders {
		if other == c {
			b.colliders = append(b.colliders[:i], b.colliders[i+1:]...)
			break
		}
	}
	if wake {
		b.sleeping = false
	}
	return nil
}

// LinearVelocity returns the body's velocity, or zero for an unknown handle.
func (w *World) LinearVelocity(bh BodyHandle) mgl64.Vec3 {
	if b, ok := w.bodies[bh]; ok {
		return b.velocity
	}
	return mgl64.Vec3{}
}

func (w *World) SetLinearVelocity(bh BodyHandle, v mgl64.Vec3, wake bool) {
	b, ok := w.bodies[bh]
	if !ok || b.kind == Fixed {
		return
	}
	b.velocity = v
	if wake {
		b.sleeping = false
	}
}

// Pose returns the body transform. Rotations are not simulated, so the
// orientation is always the identity.
func (w *World) Pose(bh BodyHandle) Pose {
	if b, ok := w.bodies[bh]; ok {
		return Pose{Position: b.position, Orientation: mgl64.QuatIdent()}
	}
	return Pose{Orientation: mgl64.QuatIdent()}
}

// SetPosition teleports a body.
func (w *World) SetPosition(bh BodyHandle, p mgl64.Vec3) {
	if b, ok := w.bodies[bh]; ok {
		b.position = p
		b.sleeping = false
		w.sync(b)
	}
}

// Colliders lists the collider handles attached to a body.
func (w *World) Colliders(bh BodyHandle) []ColliderHandle {
	b, ok := w.bodies[bh]
	if !ok {
		return nil
	}
	handles := make([]ColliderHandle, len(b.colliders))
	for i, c := range b.colliders {
		handles[i] = c.handle
	}
	return handles
}

// Bounds returns the body's world-space bounding box.
func (w *World) Bounds(bh BodyHandle) (min, max mgl64.Vec3, ok bool) {
	b, found := w.bodies[bh]
	if !found || len(b.colliders) == 0 {
		return min, max, false
	}
	min, max = b.bounds()
	return min, max, true
}

// Mass is the sum of density times volume over the body's colliders.
func (w *World) Mass(bh BodyHandle) float64 {
	b, ok := w.bodies[bh]
	if !ok {
		return 0
	}
	return b.mass()
}

// Grounded reports whether the body rested on a surface after the last step.
func (w *World) Grounded(bh BodyHandle) bool {
	b, ok := w.bodies[bh]
	return ok && b.grounded
}

// Sleeping reports whether the body has come to rest and is skipped by Step.
func (w *World) Sleeping(bh BodyHandle) bool {
	b, ok := w.bodies[bh]
	return ok && b.sleeping
}

func (b *body) mass() float64 {
	var m float64
	for _, c := range b.colliders {
		m += c.density * c.shape.Volume()
	}
	return m
}

func (b *body) extents() mgl64.Vec3 {
	var ext mgl64.Vec3
	for _, c := range b.colliders {
		e := c.shape.Extents()
		for i := range ext {
			ext[i] = math.Max(ext[i], e[i])
		}
	}
	return ext
}

func (b *body) bounds() (min, max mgl64.Vec3) {
	ext := b.extents()
	return b.position.Sub(ext), b.position.Add(ext)
}

func (c *collider) bounds() (min, max mgl64.Vec3) {
	ext := c.shape.Extents()
	return c.body.position.Sub(ext), c.body.position.Add(ext)
}

// sync moves the body's broadphase footprints to its current position.
func (w *World) sync(b *body) {
	for _, c := range b.colliders {
		ext := c.shape.Extents()
		c.obj.X = w.ToSpace(b.position.X()-ext.X()) - footprintPad
		c.obj.Y = w.ToSpace(b.position.Z()-ext.Z()) - footprintPad
		c.obj.Update()
	}
}

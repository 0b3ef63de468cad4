package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// EntityKind is the closed set of non-player actors.
type EntityKind uint8

const (
	KindWalker EntityKind = iota + 1
	KindSlime
	KindSpike
	KindIcicle
	KindFlyer
	KindPlatform
	KindPickup
)

// Class groups kinds by how collisions treat them.
type Class uint8

const (
	ClassHazard Class = iota
	ClassPlatform
	ClassPickup
)

// Motion describes how a hazard is placed and moves.
type Motion uint8

const (
	MotionStationary Motion = iota
	MotionPatrol
	MotionFlying
)

// kindTraits is the per-kind payload of an EntityKind.
type kindTraits struct {
	Name      string
	Class     Class
	Motion    Motion
	W, H      float64
	Elevation float64 // gap between ground and the entity's bottom edge
	Stompable bool
}

var kindTable = map[EntityKind]kindTraits{
	KindWalker:   {Name: "walker", Class: ClassHazard, Motion: MotionPatrol, W: 30, H: 28, Stompable: true},
	KindSlime:    {Name: "slime", Class: ClassHazard, Motion: MotionStationary, W: 30, H: 20, Stompable: true},
	KindSpike:    {Name: "spike", Class: ClassHazard, Motion: MotionStationary, W: 30, H: 20},
	KindIcicle:   {Name: "icicle", Class: ClassHazard, Motion: MotionStationary, W: 20, H: 30, Elevation: 64},
	KindFlyer:    {Name: "flyer", Class: ClassHazard, Motion: MotionFlying, W: 32, H: 20, Stompable: true},
	KindPlatform: {Name: "platform", Class: ClassPlatform, Motion: MotionStationary, W: 96, H: 20},
	KindPickup:   {Name: "pickup", Class: ClassPickup, Motion: MotionStationary, W: 20, H: 20},
}

// genericHazard stands in for tags outside the table.
var genericHazard = kindTraits{Name: "unknown", Class: ClassHazard, Motion: MotionStationary, W: 30, H: 30, Stompable: true}

func (k EntityKind) traits() kindTraits {
	if s, ok := kindTable[k]; ok {
		return s
	}
	return genericHazard
}

// String returns the kind's name.
func (k EntityKind) String() string {
	return k.traits().Name
}

// Known reports whether k is a member of the kind table.
func (k EntityKind) Known() bool {
	_, ok := kindTable[k]
	return ok
}

// Entity is a non-player actor. Active=false marks it for removal by the
// next Cull.
type Entity struct {
	ID     int
	Kind   EntityKind
	X, Y   float64
	W, H   float64
	VX     float64
	Phase  float64
	Active bool
}

// Box returns the entity's collision box.
func (e Entity) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.W, e.H)
}

// Class returns how collisions treat this entity.
func (e Entity) Class() Class {
	return e.Kind.traits().Class
}

// Static reports whether the entity is excluded from the motion pass.
func (e Entity) Static() bool {
	switch e.Class() {
	case ClassPlatform, ClassPickup:
		return true
	default:
		return false
	}
}

// Stompable reports whether landing on the entity defeats it.
func (e Entity) Stompable() bool {
	return e.Kind.traits().Stompable
}

// Motif selects the decoration artwork of a theme.
type Motif string

const (
	MotifFlower  Motif = "flower"
	MotifCactus  Motif = "cactus"
	MotifCrystal Motif = "crystal"
	MotifPine    Motif = "pine"
	MotifStar    Motif = "star"
)

// Decoration is cosmetic scenery. It never collides.
type Decoration struct {
	X, Y  float64
	Motif Motif
}

const entityAnimStep = 0.1

// EntityManager owns the live entity and decoration collections.
// Removal only happens in Cull; logic passes flag entities inactive instead.
type EntityManager struct {
	entities    []Entity
	decorations []Decoration
	platforms   []Entity // scratch buffer for Platforms
	nextID      int
}

// NewEntityManager creates an empty manager.
func NewEntityManager() *EntityManager {
	return &EntityManager{
		entities:    make([]Entity, 0, 32),
		decorations: make([]Decoration, 0, 32),
	}
}

// Reset drops every entity and decoration.
func (m *EntityManager) Reset() {
	m.entities = m.entities[:0]
	m.decorations = m.decorations[:0]
	m.nextID = 0
}

// Spawn adds an active entity and returns its ID.
func (m *EntityManager) Spawn(e Entity) int {
	m.nextID++
	e.ID = m.nextID
	e.Active = true
	m.entities = append(m.entities, e)
	return e.ID
}

// AddDecoration adds a decoration.
func (m *EntityManager) AddDecoration(d Decoration) {
	m.decorations = append(m.decorations, d)
}

// Move integrates every active non-static entity by one tick.
func (m *EntityManager) Move() {
	for i := range m.entities {
		e := &m.entities[i]
		if !e.Active || e.Static() {
			continue
		}
		e.X += e.VX
		e.Phase = math.Mod(e.Phase+entityAnimStep, 2*math.Pi)
	}
}

// Cull compacts both collections, dropping inactive entities and anything
// more than margin behind cameraX.
func (m *EntityManager) Cull(cameraX, margin float64) {
	limit := cameraX - margin

	kept := m.entities[:0]
	for _, e := range m.entities {
		if e.Active && e.X >= limit {
			kept = append(kept, e)
		}
	}
	clear(m.entities[len(kept):])
	m.entities = kept

	keptDeco := m.decorations[:0]
	for _, d := range m.decorations {
		if d.X >= limit {
			keptDeco = append(keptDeco, d)
		}
	}
	m.decorations = keptDeco
}

// Entities returns the live collection. Callers may mutate fields in place
// but must not append or remove.
func (m *EntityManager) Entities() []Entity {
	return m.entities
}

// Platforms returns copies of the active platforms. The slice is reused by
// the next call.
func (m *EntityManager) Platforms() []Entity {
	m.platforms = m.platforms[:0]
	for _, e := range m.entities {
		if e.Active && e.Class() == ClassPlatform {
			m.platforms = append(m.platforms, e)
		}
	}
	return m.platforms
}

// Decorations returns the live decoration collection.
func (m *EntityManager) Decorations() []Decoration {
	return m.decorations
}

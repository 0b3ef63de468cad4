package platformer

import "testing"

func TestEntityKindTable(t *testing.T) {
	tests := []struct {
		kind      EntityKind
		class     Class
		static    bool
		stompable bool
	}{
		{KindWalker, ClassHazard, false, true},
		{KindSlime, ClassHazard, false, true},
		{KindSpike, ClassHazard, false, false},
		{KindIcicle, ClassHazard, false, false},
		{KindFlyer, ClassHazard, false, true},
		{KindPlatform, ClassPlatform, true, false},
		{KindPickup, ClassPickup, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			e := Entity{Kind: tt.kind}
			if !tt.kind.Known() {
				t.Error("kind should be known")
			}
			if e.Class() != tt.class {
				t.Errorf("Class() = %v, want %v", e.Class(), tt.class)
			}
			if e.Static() != tt.static {
				t.Errorf("Static() = %v, want %v", e.Static(), tt.static)
			}
			if e.Stompable() != tt.stompable {
				t.Errorf("Stompable() = %v, want %v", e.Stompable(), tt.stompable)
			}
		})
	}
}

func TestUnknownKindIsGenericHazard(t *testing.T) {
	e := Entity{Kind: EntityKind(200)}

	if e.Kind.Known() {
		t.Error("kind 200 should not be known")
	}
	if e.Class() != ClassHazard {
		t.Errorf("unknown kind class = %v, want hazard", e.Class())
	}
	if e.Kind.String() != "unknown" {
		t.Errorf("unknown kind name = %q", e.Kind.String())
	}
}

func TestEntityManagerSpawnAssignsIDs(t *testing.T) {
	m := NewEntityManager()
	a := m.Spawn(Entity{Kind: KindWalker})
	b := m.Spawn(Entity{Kind: KindSpike})

	if a == b {
		t.Errorf("IDs should differ, both %d", a)
	}
	for _, e := range m.Entities() {
		if !e.Active {
			t.Errorf("spawned entity %d should be active", e.ID)
		}
	}
}

func TestEntityManagerMove(t *testing.T) {
	m := NewEntityManager()
	m.Spawn(Entity{Kind: KindWalker, X: 100, VX: -1})
	m.Spawn(Entity{Kind: KindPlatform, X: 100, VX: -1}) // static kinds never move
	m.Spawn(Entity{Kind: KindPickup, X: 100, VX: -1})

	m.Move()

	es := m.Entities()
	if es[0].X != 99 {
		t.Errorf("walker X = %v, want 99", es[0].X)
	}
	if es[0].Phase == 0 {
		t.Error("walker phase should advance")
	}
	if es[1].X != 100 || es[2].X != 100 {
		t.Errorf("static entities moved: platform %v, pickup %v", es[1].X, es[2].X)
	}
}

func TestEntityManagerCull(t *testing.T) {
	m := NewEntityManager()
	m.Spawn(Entity{Kind: KindWalker, X: 50})  // behind the margin
	m.Spawn(Entity{Kind: KindWalker, X: 500}) // kept
	id := m.Spawn(Entity{Kind: KindSlime, X: 600})
	m.AddDecoration(Decoration{X: 10})
	m.AddDecoration(Decoration{X: 900})

	for i := range m.Entities() {
		if m.Entities()[i].ID == id {
			m.Entities()[i].Active = false
		}
	}

	m.Cull(400, 200)

	if got := len(m.Entities()); got != 1 {
		t.Fatalf("entities after cull = %d, want 1", got)
	}
	if m.Entities()[0].X != 500 {
		t.Errorf("kept entity X = %v, want 500", m.Entities()[0].X)
	}
	if got := len(m.Decorations()); got != 1 || m.Decorations()[0].X != 900 {
		t.Errorf("decorations after cull = %+v", m.Decorations())
	}
}

func TestEntityManagerReset(t *testing.T) {
	m := NewEntityManager()
	m.Spawn(Entity{Kind: KindWalker})
	m.AddDecoration(Decoration{})

	m.Reset()

	if len(m.Entities()) != 0 || len(m.Decorations()) != 0 {
		t.Error("Reset should empty both collections")
	}
	if id := m.Spawn(Entity{Kind: KindWalker}); id != 1 {
		t.Errorf("first ID after Reset = %d, want 1", id)
	}
}

func TestEntityManagerPlatforms(t *testing.T) {
	m := NewEntityManager()
	m.Spawn(Entity{Kind: KindPlatform, X: 10})
	m.Spawn(Entity{Kind: KindWalker, X: 20})
	gone := m.Spawn(Entity{Kind: KindPlatform, X: 30})
	m.Spawn(Entity{Kind: KindPickup, X: 40})

	for i := range m.Entities() {
		if m.Entities()[i].ID == gone {
			m.Entities()[i].Active = false
		}
	}

	platforms := m.Platforms()
	if len(platforms) != 1 || platforms[0].X != 10 {
		t.Fatalf("Platforms() = %+v, want the one active platform", platforms)
	}

	platforms[0].X = 99
	if m.Entities()[0].X != 10 {
		t.Error("Platforms() should return copies")
	}
}

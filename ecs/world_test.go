package ecs

import (
	"testing"

	"github.com/milk9111/wallrun/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("destroying twice should fail")
				}
				if len(Entities(w)) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
				}
			}
		})
	}
}

func TestStaleHandleAfterReuse(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected id reuse, got %d and %d", fresh.id(), old.id())
	}
	if fresh == old {
		t.Fatalf("reused entity must carry a new generation")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle reported alive")
	}
	if Has(w, fresh, h.Kind()) {
		t.Fatalf("components must not leak into a reused slot")
	}
	if err := Add(w, old, h.Kind(), intPtr(2)); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get[int](w, e1, h1.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove[int](w, e1, h1.Kind()) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has[string](w, e1, h2.Kind()) || !Has[string](w, e2, h2.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
			},
			teardown: func() bool { return Remove[string](w, e1, h2.Kind()) },
		},
		{
			name:  "nil_value_rejected",
			setup: func() error { return nilIsError(Add[int](w, e1, h1.Kind(), nil)) },
			check: func(t *testing.T) {
				if Has(w, e1, h1.Kind()) {
					t.Fatalf("nil add must not store anything")
				}
			},
			teardown: func() bool { return true },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func nilIsError(err error) error {
	if err == component.ErrNilComponent {
		return nil
	}
	return err
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	var ents []Entity
	ForEach(w, h.Kind(), func(e Entity, _ *int) { ents = append(ents, e) })
	if len(ents) != 2 || ents[0] != e1 || ents[1] != e3 {
		t.Fatalf("expected [e1 e3], got %v", ents)
	}
	_ = e2
}

func TestForEachToleratesDestroy(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	var ents []Entity
	for i := 0; i < 4; i++ {
		e := CreateEntity(w)
		_ = Add(w, e, h.Kind(), intPtr(i))
		ents = append(ents, e)
	}

	visited := 0
	ForEach(w, h.Kind(), func(e Entity, _ *int) {
		visited++
		if e == ents[0] {
			DestroyEntity(w, ents[1])
		}
	})
	if visited != 3 {
		t.Fatalf("expected destroyed entity to be skipped, visited %d", visited)
	}
}

func TestForEach2(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	_ = Add(w, e1, ka, intPtr(1))
	_ = Add(w, e2, ka, intPtr(2))
	_ = Add(w, e2, kb, stringPtr("two"))
	_ = Add(w, e3, kb, stringPtr("three"))

	var res []Entity
	ForEach2(w, ka, kb, func(e Entity, a *int, b *string) {
		if *a != 2 || *b != "two" {
			t.Fatalf("unexpected values %d %q", *a, *b)
		}
		res = append(res, e)
	})
	if len(res) != 1 || res[0] != e2 {
		t.Fatalf("expected only e2, got %v", res)
	}

	first, ok := First(w, kb)
	if !ok || first != e2 {
		t.Fatalf("expected First to return e2, got %v ok=%v", first, ok)
	}
}

func TestHierarchy(t *testing.T) {
	w := NewWorld()
	root := CreateEntity(w)
	level := CreateEntity(w)
	spawn := CreateEntity(w)
	door := CreateEntity(w)
	other := CreateEntity(w)

	SetName(w, level, "level")
	SetName(w, spawn, "spawn")
	SetName(w, door, "door")
	SetName(w, other, "spawn")

	SetParent(w, level, root)
	SetParent(w, spawn, level)
	SetParent(w, door, level)

	if p, ok := Parent(w, spawn); !ok || p != level {
		t.Fatalf("expected spawn parent to be level")
	}
	if got := Children(w, level); len(got) != 2 || got[0] != spawn || got[1] != door {
		t.Fatalf("unexpected children %v", got)
	}
	if e, ok := FindByName(w, "spawn", root); !ok || e != spawn {
		t.Fatalf("expected scoped search to find spawn under root")
	}
	if _, ok := FindByName(w, "missing", 0); ok {
		t.Fatalf("expected missing name to fail")
	}

	SetEnabled(w, level, false)
	if !IsEnabled(w, door) {
		t.Fatalf("own flag of door should stay enabled")
	}
	if IsEnabledRec(w, door) {
		t.Fatalf("door under disabled level should not be effectively enabled")
	}
	SetEnabled(w, level, true)
	if !IsEnabledRec(w, door) {
		t.Fatalf("door should be enabled again")
	}

	SetParent(w, door, 0)
	if _, ok := Parent(w, door); ok {
		t.Fatalf("door should be detached")
	}

	DestroyEntity(w, level)
	if IsAlive(w, spawn) {
		t.Fatalf("destroying a parent destroys its children")
	}
	if !IsAlive(w, door) {
		t.Fatalf("detached entity survives")
	}
	if len(Children(w, root)) != 0 {
		t.Fatalf("root should have no children left")
	}
}

type orderSystem struct {
	name string
	log  *[]string
}

func (s orderSystem) Update(*World) { *s.log = append(*s.log, s.name) }

func TestWorldUpdateOrderAndEvents(t *testing.T) {
	w := NewWorld()
	var log []string
	w.AddSystem(orderSystem{"input", &log})
	w.AddSystem(orderSystem{"physics", &log})
	w.AddSystem(nil)

	w.Events().Push(Event{Type: "hit", Data: 1})
	w.Events().Push(Event{Type: "sound", Data: "jump.wav"})
	if got := w.Events().Drain("sound"); len(got) != 1 {
		t.Fatalf("expected one sound event, got %d", len(got))
	}
	if got := w.Events().Peek("hit"); len(got) != 1 {
		t.Fatalf("expected hit event to remain")
	}

	w.Update()
	if len(log) != 2 || log[0] != "input" || log[1] != "physics" {
		t.Fatalf("unexpected order %v", log)
	}
	if len(w.Events().Peek("hit")) != 0 {
		t.Fatalf("events should be flushed after update")
	}
	if w.Tick() != 1 {
		t.Fatalf("expected tick 1, got %d", w.Tick())
	}
	if len(w.Systems()) != 2 {
		t.Fatalf("nil systems must be ignored")
	}
}

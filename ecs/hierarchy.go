package ecs

// node holds the scene-graph data of an entity: name, parent link, children
// and its own enabled flag.
type node struct {
	name     string
	parent   Entity
	children []Entity
	disabled bool
}

func nodeOf(w *World, e Entity, create bool) *node {
	if w == nil || !w.entities.isAlive(e) {
		return nil
	}
	n, ok := w.nodes[e.id()]
	if !ok && create {
		n = &node{}
		w.nodes[e.id()] = n
	}
	return n
}

// SetName names an entity. Names are not required to be unique.
func SetName(w *World, e Entity, name string) {
	if n := nodeOf(w, e, true); n != nil {
		n.name = name
	}
}

func Name(w *World, e Entity) string {
	if n := nodeOf(w, e, false); n != nil {
		return n.name
	}
	return ""
}

// SetParent moves e under parent. A zero parent detaches e.
func SetParent(w *World, e, parent Entity) {
	n := nodeOf(w, e, true)
	if n == nil || e == parent {
		return
	}
	detach(w, e)
	if !parent.Valid() {
		return
	}
	pn := nodeOf(w, parent, true)
	if pn == nil {
		return
	}
	n.parent = parent
	pn.children = append(pn.children, e)
}

func detach(w *World, e Entity) {
	n := nodeOf(w, e, false)
	if n == nil || !n.parent.Valid() {
		return
	}
	if pn := nodeOf(w, n.parent, false); pn != nil {
		for i, c := range pn.children {
			if c == e {
				pn.children = append(pn.children[:i], pn.children[i+1:]...)
				break
			}
		}
	}
	n.parent = 0
}

func Parent(w *World, e Entity) (Entity, bool) {
	n := nodeOf(w, e, false)
	if n == nil || !n.parent.Valid() {
		return 0, false
	}
	return n.parent, true
}

// Children returns a copy of e's children in insertion order.
func Children(w *World, e Entity) []Entity {
	n := nodeOf(w, e, false)
	if n == nil {
		return nil
	}
	return append([]Entity(nil), n.children...)
}

// FindByName returns the first entity named name, searching depth first under
// ancestor, or among all entities when ancestor is zero.
func FindByName(w *World, name string, ancestor Entity) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	if ancestor.Valid() {
		for _, c := range Children(w, ancestor) {
			if Name(w, c) == name {
				return c, true
			}
			if e, ok := FindByName(w, name, c); ok {
				return e, true
			}
		}
		return 0, false
	}
	for _, e := range Entities(w) {
		if Name(w, e) == name {
			return e, true
		}
	}
	return 0, false
}

func SetEnabled(w *World, e Entity, enabled bool) {
	if n := nodeOf(w, e, true); n != nil {
		n.disabled = !enabled
	}
}

// IsEnabled reports the entity's own flag, ignoring ancestors.
func IsEnabled(w *World, e Entity) bool {
	if !IsAlive(w, e) {
		return false
	}
	n := nodeOf(w, e, false)
	return n == nil || !n.disabled
}

// IsEnabledRec reports whether e and all of its ancestors are enabled.
func IsEnabledRec(w *World, e Entity) bool {
	for e.Valid() {
		if !IsEnabled(w, e) {
			return false
		}
		parent, ok := Parent(w, e)
		if !ok {
			return true
		}
		e = parent
	}
	return false
}

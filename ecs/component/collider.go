package component

import "github.com/jakecoffman/cp"

// Collider is an axis-aligned box relative to the entity position.
// Dirty is set whenever the owner moved during the tick.
type Collider struct {
	Box   cp.BB
	Dirty bool
}

var ColliderComponent = NewComponent[Collider]()

package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/wallrun/ecs"
)

const (
	// EventHit carries a Hit from the OverlapSystem.
	EventHit = "hit"
	// EventSound carries the file name of a one-shot sound.
	EventSound = "sound"
	// EventRespawn carries the DeathMarker entity whose timer ran out.
	EventRespawn = "respawn"
)

// Sound effect names emitted by gameplay systems.
const (
	SoundJump  = "jump.wav"
	SoundDash  = "dash.wav"
	SoundDeath = "death.wav"
)

// Hit records two overlapping colliders and the penetration of A into B.
type Hit struct {
	A           ecs.Entity
	B           ecs.Entity
	Penetration cp.Vector
}

// Other returns the side of the hit that is not e.
func (h Hit) Other(e ecs.Entity) (ecs.Entity, bool) {
	switch e {
	case h.A:
		return h.B, true
	case h.B:
		return h.A, true
	}
	return 0, false
}

// Hits returns the hits produced so far this tick.
func Hits(w *ecs.World) []Hit {
	var out []Hit
	for _, evt := range w.Events().Peek(EventHit) {
		if h, ok := evt.Data.(Hit); ok {
			out = append(out, h)
		}
	}
	return out
}

// PlaySound queues a one-shot sound for the SoundSystem.
func PlaySound(w *ecs.World, name string) {
	w.Events().Push(ecs.Event{Type: EventSound, Data: name})
}

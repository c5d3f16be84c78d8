package system

import (
	"github.com/milk9111/wallrun/ecs"
	"github.com/milk9111/wallrun/ecs/component"
)

// CommandQueue accepts command text on behalf of an entity and drains it.
type CommandQueue interface {
	Enqueue(text string, self ecs.Entity)
	Run()
}

// TriggerSystem tracks which triggers the player overlaps and queues their
// scripts on enter, exit and use.
type TriggerSystem struct {
	queue CommandQueue
	input InputSource

	// Suppress swallows the transitions of the next update. It is set when a
	// level starts so spawning inside a trigger does not fire it.
	Suppress bool
}

func NewTriggerSystem(queue CommandQueue, input InputSource) *TriggerSystem {
	return &TriggerSystem{queue: queue, input: input}
}

func (s *TriggerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.TriggerComponent.Kind(), func(e ecs.Entity, t *component.Trigger) {
		if !ecs.IsEnabledRec(w, e) {
			return
		}
		t.PrevInside = t.Inside
		t.Inside = false
	})

	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok && ecs.IsEnabledRec(w, player) {
		for _, hit := range Hits(w) {
			other, ok := hit.Other(player)
			if !ok || !ecs.IsEnabledRec(w, other) {
				continue
			}
			if t, ok := ecs.Get(w, other, component.TriggerComponent.Kind()); ok {
				t.Inside = true
			}
		}
	}

	if s.Suppress {
		s.Suppress = false
		return
	}

	use := s.input != nil && s.input.JustPressed(ActionUp)
	ecs.ForEach(w, component.TriggerComponent.Kind(), func(e ecs.Entity, t *component.Trigger) {
		if !ecs.IsEnabledRec(w, e) {
			return
		}
		switch {
		case t.Entered():
			s.enqueue(t.OnEnter, e)
		case t.Exited():
			s.enqueue(t.OnExit, e)
		}
		if use && t.Inside {
			s.enqueue(t.OnUse, e)
		}
	})
}

func (s *TriggerSystem) enqueue(text string, self ecs.Entity) {
	if text == "" || s.queue == nil {
		return
	}
	s.queue.Enqueue(text, self)
}

// CommandSystem drains the command queue once per tick.
type CommandSystem struct {
	queue CommandQueue
}

func NewCommandSystem(queue CommandQueue) *CommandSystem {
	return &CommandSystem{queue: queue}
}

func (s *CommandSystem) Update(w *ecs.World) {
	if s.queue == nil {
		return
	}
	s.queue.Run()
}

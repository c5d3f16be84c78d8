package system

import (
	"github.com/milk9111/wallrun/ecs"
)

// SoundPlayer plays one-shot sound effects by file name.
type SoundPlayer interface {
	PlaySound(name string)
}

// SoundSystem forwards the sounds queued this tick to a SoundPlayer.
type SoundSystem struct {
	player SoundPlayer
}

func NewSoundSystem(player SoundPlayer) *SoundSystem {
	return &SoundSystem{player: player}
}

func (a *SoundSystem) Update(w *ecs.World) {
	for _, evt := range w.Events().Drain(EventSound) {
		name, ok := evt.Data.(string)
		if !ok || a.player == nil {
			continue
		}
		a.player.PlaySound(name)
	}
}

package main

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"

	"github.com/milk9111/wallrun/assets"
)

const defaultMusicFadeFrames = 30

// soundBank plays one-shot effects, decoding each file once.
type soundBank struct {
	ctx     *audio.Context
	logger  *zap.Logger
	volume  float64
	players map[string]*audio.Player
}

func newSoundBank(ctx *audio.Context, volume float64, logger *zap.Logger) *soundBank {
	return &soundBank{ctx: ctx, logger: logger, volume: volume, players: make(map[string]*audio.Player)}
}

func (s *soundBank) PlaySound(name string) {
	if s == nil || s.ctx == nil {
		return
	}
	p, ok := s.players[name]
	if !ok {
		var err error
		p, err = assets.LoadAudioPlayer(s.ctx, name, false)
		if err != nil {
			s.logger.Warn("cannot load sound", zap.String("sound", name), zap.Error(err))
			s.players[name] = nil
			return
		}
		p.SetVolume(s.volume)
		s.players[name] = p
	}
	if p == nil {
		return
	}
	_ = p.Rewind()
	p.Play()
}

// jukebox loops one track and fades the old one out before switching.
type jukebox struct {
	ctx    *audio.Context
	logger *zap.Logger
	volume float64

	players map[string]*audio.Player

	current       string
	currentVolume float64
	pending       string
	pendingActive bool
	fadeStep      float64
}

func newJukebox(ctx *audio.Context, volume float64, logger *zap.Logger) *jukebox {
	return &jukebox{ctx: ctx, logger: logger, volume: volume, players: make(map[string]*audio.Player)}
}

func (j *jukebox) PlayMusic(name string) {
	j.request(strings.TrimSpace(name))
}

func (j *jukebox) StopMusic() {
	j.request("")
}

func (j *jukebox) request(track string) {
	if j == nil || j.ctx == nil {
		return
	}
	if !j.pendingActive && track == j.current && j.player(track) != nil {
		return
	}
	j.pending = track
	j.pendingActive = true
	if j.player(j.current) == nil {
		j.switchToPending()
		return
	}
	j.fadeStep = j.currentVolume / defaultMusicFadeFrames
	if j.fadeStep <= 0 {
		j.fadeStep = 1
	}
}

// Update advances a running fade. It is called once per frame.
func (j *jukebox) Update() {
	if j == nil || !j.pendingActive {
		return
	}
	cur := j.player(j.current)
	if cur == nil {
		j.switchToPending()
		return
	}

	j.currentVolume -= j.fadeStep
	if j.currentVolume > 0 {
		cur.SetVolume(j.currentVolume)
		return
	}
	cur.SetVolume(0)
	cur.Pause()
	_ = cur.Rewind()
	j.current = ""
	j.switchToPending()
}

func (j *jukebox) switchToPending() {
	track := j.pending
	j.pending = ""
	j.pendingActive = false
	j.current = ""
	j.currentVolume = 0
	if track == "" {
		return
	}

	p := j.load(track)
	if p == nil {
		return
	}
	j.current = track
	j.currentVolume = j.volume
	p.SetVolume(j.volume)
	_ = p.Rewind()
	p.Play()
}

func (j *jukebox) player(track string) *audio.Player {
	if track == "" {
		return nil
	}
	return j.players[track]
}

func (j *jukebox) load(track string) *audio.Player {
	if p, ok := j.players[track]; ok {
		return p
	}
	p, err := assets.LoadAudioPlayer(j.ctx, track, true)
	if err != nil {
		j.logger.Warn("cannot load music", zap.String("track", track), zap.Error(err))
		return nil
	}
	j.players[track] = p
	return p
}

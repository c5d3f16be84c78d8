package component

import "github.com/milk9111/wallrun/common"

// Clip is a named sequence of sprite tile indices.
type Clip struct {
	Name   string
	Frames []int
	FPS    float64
	Loop   bool
}

// Clip names used by the character controller.
const (
	ClipIdle     = "idle"
	ClipWalk     = "walk"
	ClipJump     = "jump"
	ClipDash     = "dash"
	ClipOnWall   = "onWall"
	ClipWallJump = "wallJump"
)

// ClipSet maps clip names to clips.
type ClipSet map[string]*Clip

// DefaultClips returns the built-in player clips.
func DefaultClips() ClipSet {
	return ClipSet{
		ClipIdle:     {Name: ClipIdle, Frames: []int{0}, FPS: 4, Loop: true},
		ClipWalk:     {Name: ClipWalk, Frames: []int{1, 0}, FPS: 4, Loop: true},
		ClipJump:     {Name: ClipJump, Frames: []int{8, 7, 6}, FPS: 8},
		ClipDash:     {Name: ClipDash, Frames: []int{4, 5}, FPS: 8, Loop: true},
		ClipOnWall:   {Name: ClipOnWall, Frames: []int{14}, FPS: 4, Loop: true},
		ClipWallJump: {Name: ClipWallJump, Frames: []int{15, 14, 10}, FPS: 8},
	}
}

// Animator plays one clip at a time.
type Animator struct {
	Clips   ClipSet
	Current *Clip
	Elapsed float64
}

// Play switches to the named clip. Playing the current clip again does not
// restart it. Unknown names are ignored.
func (a *Animator) Play(name string) {
	clip, ok := a.Clips[name]
	if !ok || clip == a.Current {
		return
	}
	a.Current = clip
	a.Elapsed = 0
}

// Is reports whether the named clip is playing.
func (a *Animator) Is(name string) bool {
	return a.Current != nil && a.Current.Name == name
}

// Done reports whether a full pass of the current clip has elapsed.
func (a *Animator) Done() bool {
	if a.Current == nil {
		return true
	}
	return a.Elapsed*a.Current.FPS >= float64(len(a.Current.Frames))
}

// Advance moves time forward by one tick.
func (a *Animator) Advance() {
	if a.Current == nil {
		return
	}
	a.Elapsed += common.TickSeconds
}

// Frame returns the tile index to display.
func (a *Animator) Frame() (int, bool) {
	if a.Current == nil || len(a.Current.Frames) == 0 {
		return 0, false
	}
	n := len(a.Current.Frames)
	idx := int(a.Elapsed * a.Current.FPS)
	if a.Current.Loop {
		idx %= n
	} else if idx > n-1 {
		idx = n - 1
	}
	return a.Current.Frames[idx], true
}

var AnimatorComponent = NewComponent[Animator]()

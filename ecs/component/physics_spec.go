package component

import "github.com/milk9111/wallrun/common"

// CharPhysicsSpec describes a profile in designer units: speeds in tiles per
// second, gravity in tiles per second², times in seconds and ticks.
type CharPhysicsSpec struct {
	AccelTime        float64 `yaml:"accel_time"`
	MaxSpeed         float64 `yaml:"max_speed"`
	AirControl       float64 `yaml:"air_control"`
	Gravity          float64 `yaml:"gravity"`
	Jump             bool    `yaml:"jump"`
	NumJumps         int     `yaml:"num_jumps"`
	JumpTicks        int     `yaml:"jump_ticks"`
	JumpSpeed        float64 `yaml:"jump_speed"`
	WallJump         bool    `yaml:"wall_jump"`
	WallJumpKick     float64 `yaml:"wall_jump_kick"`
	WallFallFraction float64 `yaml:"wall_fall_fraction"`
	NumDashes        int     `yaml:"num_dashes"`
	DashTicks        int     `yaml:"dash_ticks"`
	DashSpeed        float64 `yaml:"dash_speed"`
}

// Params converts the spec into per-tick pixel units.
func (s CharPhysicsSpec) Params() *CharPhysicsParams {
	const (
		tile = common.TileSize
		tick = common.TickSeconds
	)

	accelTime := s.AccelTime * common.TicksPerSecond
	if accelTime <= 0 {
		accelTime = 1
	}
	jumpTicks := s.JumpTicks
	if jumpTicks <= 0 {
		jumpTicks = 1
	}

	maxSpeed := s.MaxSpeed * tile * tick
	groundAccel := maxSpeed / accelTime
	jumpSpeed := s.JumpSpeed * tile * tick
	jumpAccel := jumpSpeed / float64(jumpTicks)

	return &CharPhysicsParams{
		AccelTime:        accelTime,
		MaxSpeed:         maxSpeed,
		GroundAccel:      groundAccel,
		AirAccel:         s.AirControl * groundAccel,
		Gravity:          s.Gravity * tile * tick * tick,
		Jump:             s.Jump,
		NumJumps:         s.NumJumps,
		JumpTicks:        jumpTicks,
		JumpSpeed:        jumpSpeed,
		JumpAccel:        jumpAccel,
		MaxFallSpeed:     jumpSpeed,
		WallJump:         s.WallJump,
		WallJumpAccel:    s.WallJumpKick * jumpAccel,
		MaxWallFallSpeed: s.WallFallFraction * jumpSpeed,
		NumDashes:        s.NumDashes,
		DashTicks:        s.DashTicks,
		DashSpeed:        s.DashSpeed * tile * tick,
	}
}

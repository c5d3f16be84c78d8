package component

// CharPhysicsParams holds the tuning of a character profile in pixels/tick
// and pixels/tick². Characters share a pointer to one value; changing the
// tuning means building a new value and swapping the pointer between ticks.
type CharPhysicsParams struct {
	AccelTime   float64
	MaxSpeed    float64
	GroundAccel float64
	AirAccel    float64
	Gravity     float64

	Jump         bool
	NumJumps     int
	JumpTicks    int
	JumpSpeed    float64
	JumpAccel    float64
	MaxFallSpeed float64

	WallJump         bool
	WallJumpAccel    float64
	MaxWallFallSpeed float64

	NumDashes int
	DashTicks int
	DashSpeed float64
}

// WithFeatures returns a copy with air jumps, dashes or wall-jump disabled.
func (p CharPhysicsParams) WithFeatures(doubleJump, dash, wallJump bool) *CharPhysicsParams {
	out := p
	if !doubleJump {
		out.NumJumps = 0
	}
	if !dash {
		out.NumDashes = 0
	}
	if !wallJump {
		out.WallJump = false
	}
	return &out
}

// DefaultCharPhysicsParams returns the built-in player profile.
func DefaultCharPhysicsParams() *CharPhysicsParams {
	return CharPhysicsSpec{
		AccelTime:        0.1,
		MaxSpeed:         8,
		AirControl:       0.5,
		Gravity:          24,
		Jump:             true,
		NumJumps:         1,
		JumpTicks:        10,
		JumpSpeed:        16,
		WallJump:         true,
		WallJumpKick:     0.5,
		WallFallFraction: 0.25,
		NumDashes:        1,
		DashTicks:        15,
		DashSpeed:        32,
	}.Params()
}

package component

// Transform is the world position of an entity. PrevX/PrevY hold the
// position at the start of the tick so rendering can interpolate.
type Transform struct {
	X      float64
	Y      float64
	PrevX  float64
	PrevY  float64
	ScaleX float64
}

// Snapshot records the current position as the previous one.
func (t *Transform) Snapshot() {
	t.PrevX = t.X
	t.PrevY = t.Y
}

// MoveTo teleports the transform without interpolation.
func (t *Transform) MoveTo(x, y float64) {
	t.X, t.Y = x, y
	t.PrevX, t.PrevY = x, y
}

// Lerp returns the interpolated position for a render alpha in [0,1].
func (t *Transform) Lerp(alpha float64) (float64, float64) {
	return t.PrevX + (t.X-t.PrevX)*alpha, t.PrevY + (t.Y-t.PrevY)*alpha
}

var TransformComponent = NewComponent[Transform]()

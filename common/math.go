package common

import "math"

const (
	// TileSize is the edge length of a grid cell in world pixels.
	TileSize = 32.0

	TicksPerSecond = 60
	TickSeconds    = 1.0 / TicksPerSecond
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// FloorDiv returns floor(v / size) as an int.
func FloorDiv(v, size float64) int {
	return int(math.Floor(v / size))
}

// CeilDiv returns ceil(v / size) as an int.
func CeilDiv(v, size float64) int {
	return int(math.Ceil(v / size))
}

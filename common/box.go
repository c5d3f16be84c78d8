package common

import "github.com/jakecoffman/cp"

// BoxAt translates a local box by pos.
func BoxAt(local cp.BB, pos cp.Vector) cp.BB {
	return cp.BB{L: local.L + pos.X, B: local.B + pos.Y, R: local.R + pos.X, T: local.T + pos.Y}
}

// Inflate grows a box by margin on every side.
func Inflate(bb cp.BB, margin float64) cp.BB {
	return cp.BB{L: bb.L - margin, B: bb.B - margin, R: bb.R + margin, T: bb.T + margin}
}

// CenteredBox returns a box of the given size centered on the origin.
func CenteredBox(w, h float64) cp.BB {
	return cp.BB{L: -w / 2, B: -h / 2, R: w / 2, T: h / 2}
}

// Overlap returns the penetration vector of a into b along the shallow axis,
// or false when the boxes do not intersect.
func Overlap(a, b cp.BB) (cp.Vector, bool) {
	if !a.Intersects(b) {
		return cp.Vector{}, false
	}
	dx := min(a.R-b.L, b.R-a.L)
	dy := min(a.T-b.B, b.T-a.B)
	if dx < dy {
		if a.L+a.R < b.L+b.R {
			return cp.Vector{X: dx}, true
		}
		return cp.Vector{X: -dx}, true
	}
	if a.B+a.T < b.B+b.T {
		return cp.Vector{Y: dy}, true
	}
	return cp.Vector{Y: -dy}, true
}

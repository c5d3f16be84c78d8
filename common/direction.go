package common

// Direction is one of the four axis directions. Opposite directions differ
// only in their lowest bit.
type Direction int

const (
	Left Direction = iota
	Right
	Down
	Up
)

// Directions lists every direction in tie-break order.
var Directions = [4]Direction{Left, Right, Down, Up}

func (d Direction) Opposite() Direction {
	return d ^ 1
}

func (d Direction) Flag() DirFlags {
	return DirFlags(1) << uint(d)
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return "invalid"
	}
}

// DirFlags is a bitmask of directions. The zero value means "none".
type DirFlags uint8

const (
	DirNone  DirFlags = 0
	DirLeft  DirFlags = 1 << Left
	DirRight DirFlags = 1 << Right
	DirDown  DirFlags = 1 << Down
	DirUp    DirFlags = 1 << Up

	DirHorizontal = DirLeft | DirRight
)

// Has reports whether any bit of other is set.
func (f DirFlags) Has(other DirFlags) bool {
	return f&other != 0
}

func (f DirFlags) String() string {
	if f == DirNone {
		return "none"
	}
	out := ""
	for _, d := range Directions {
		if f.Has(d.Flag()) {
			if out != "" {
				out += "|"
			}
			out += d.String()
		}
	}
	return out
}

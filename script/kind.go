package script

// Kind identifies a built-in command.
type Kind int

const (
	KindUnknown Kind = iota
	KindEcho
	KindSetSpawn
	KindKill
	KindNextLevel
	KindDisable
	KindCredits
	KindRun

	kindCount
)

var kindNames = [kindCount]string{
	KindUnknown:   "",
	KindEcho:      "echo",
	KindSetSpawn:  "set-spawn",
	KindKill:      "kill",
	KindNextLevel: "next-level",
	KindDisable:   "disable",
	KindCredits:   "credits",
	KindRun:       "run",
}

// arity holds the accepted argument counts. echo takes any number.
var arity = [kindCount][2]int{
	KindEcho:      {0, -1},
	KindSetSpawn:  {1, 1},
	KindKill:      {0, 0},
	KindNextLevel: {1, 2},
	KindDisable:   {1, 1},
	KindCredits:   {0, 0},
	KindRun:       {1, 1},
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k := KindEcho; k < kindCount; k++ {
		m[kindNames[k]] = k
	}
	return m
}()

// Lookup returns the command kind for a name, or KindUnknown.
func Lookup(name string) Kind {
	return kindsByName[name]
}

func (k Kind) String() string {
	if k <= KindUnknown || k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Arity returns the accepted argument counts. max is -1 when unbounded.
func (k Kind) Arity() (min, max int) {
	if k <= KindUnknown || k >= kindCount {
		return 0, -1
	}
	return arity[k][0], arity[k][1]
}

// AcceptsArgs reports whether n arguments are valid for k.
func (k Kind) AcceptsArgs(n int) bool {
	lo, hi := k.Arity()
	return n >= lo && (hi < 0 || n <= hi)
}

package script

// Outcome tells the interpreter what to do after a handler returns.
type Outcome int

const (
	// OutcomeContinue lets the drain go on.
	OutcomeContinue Outcome = iota
	// OutcomeFailed is logged, then the drain goes on.
	OutcomeFailed
	// OutcomeSuspend stops the drain until Resume.
	OutcomeSuspend
)

// Result is returned by every command handler.
type Result struct {
	Outcome Outcome
	Reason  string
}

func Continue() Result { return Result{Outcome: OutcomeContinue} }

func Fail(reason string) Result { return Result{Outcome: OutcomeFailed, Reason: reason} }

func Suspend(reason string) Result { return Result{Outcome: OutcomeSuspend, Reason: reason} }

// Mode is the drain state of an interpreter.
type Mode int

const (
	Running Mode = iota
	Waiting
)

func (m Mode) String() string {
	if m == Waiting {
		return "waiting"
	}
	return "running"
}

// State is the observable state of an interpreter. Reason names what a
// Waiting interpreter waits for.
type State struct {
	Mode   Mode
	Reason string
}

// Suspend reasons used by the built-in commands.
const (
	ReasonRespawn     = "respawn"
	ReasonLevelChange = "level-change"
)

package script

import (
	"go.uber.org/zap"

	"github.com/milk9111/wallrun/ecs"
)

// Env is the part of the game session commands are allowed to touch.
type Env interface {
	// Entity finds a named entity of the current level.
	Entity(name string) (ecs.Entity, bool)
	SetSpawn(name string)
	// KillPlayer starts the death sequence. It reports false when there is
	// no living player.
	KillPlayer() bool
	// ChangeLevel schedules a switch at the next tick boundary.
	ChangeLevel(path, spawn string)
	Disable(e ecs.Entity)
	ShowCredits()
	// ScriptSource returns the source of a tengo script.
	ScriptSource(name string) ([]byte, error)
}

// Handler runs one parsed command line. args excludes the command name.
type Handler func(in *Interpreter, self ecs.Entity, args []string) Result

// Invocation is one queued command line and the entity it runs for.
type Invocation struct {
	Self ecs.Entity
	Line string
}

// Interpreter is a FIFO command queue with cooperative suspension.
type Interpreter struct {
	env      Env
	logger   *zap.Logger
	handlers [kindCount]Handler

	queue  []Invocation
	nested []Invocation
	busy   bool
	state  State
}

func NewInterpreter(env Env, logger *zap.Logger) *Interpreter {
	if logger == nil {
		logger = zap.NewNop()
	}
	in := &Interpreter{env: env, logger: logger}
	in.handlers = builtinHandlers()
	return in
}

// Env returns the environment the commands act on.
func (in *Interpreter) Env() Env {
	return in.env
}

func (in *Interpreter) Logger() *zap.Logger {
	return in.logger
}

func (in *Interpreter) State() State {
	return in.state
}

// Pending returns the number of queued invocations.
func (in *Interpreter) Pending() int {
	return len(in.queue) + len(in.nested)
}

// Enqueue splits text into lines and queues them for self. Lines queued by
// a running handler run before anything that was already waiting.
func (in *Interpreter) Enqueue(text string, self ecs.Entity) {
	for _, line := range SplitLines(text) {
		inv := Invocation{Self: self, Line: line}
		if in.busy {
			in.nested = append(in.nested, inv)
			continue
		}
		in.queue = append(in.queue, inv)
	}
}

// Exec queues text and drains the queue.
func (in *Interpreter) Exec(text string, self ecs.Entity) {
	in.Enqueue(text, self)
	in.Run()
}

// Run drains the queue until it is empty or a command suspends it.
func (in *Interpreter) Run() {
	for in.state.Mode == Running && len(in.queue) > 0 {
		inv := in.queue[0]
		in.queue = in.queue[1:]
		in.execute(inv)
	}
}

// Resume leaves the Waiting state and drains what is left.
func (in *Interpreter) Resume() {
	if in.state.Mode == Running {
		return
	}
	in.logger.Debug("interpreter resumed", zap.String("reason", in.state.Reason))
	in.state = State{Mode: Running}
	in.Run()
}

// Clear drops every queued invocation without running it.
func (in *Interpreter) Clear() {
	in.queue = nil
	in.nested = nil
}

func (in *Interpreter) execute(inv Invocation) {
	tokens := Tokenize(inv.Line)
	if len(tokens) == 0 {
		return
	}

	kind := Lookup(tokens[0])
	if kind == KindUnknown {
		in.logger.Warn("unknown command", zap.String("command", tokens[0]), zap.Stringer("self", inv.Self))
		return
	}

	in.busy = true
	res := in.handlers[kind](in, inv.Self, tokens[1:])
	in.busy = false

	if len(in.nested) > 0 {
		in.queue = append(in.nested, in.queue...)
		in.nested = nil
	}

	switch res.Outcome {
	case OutcomeFailed:
		in.logger.Warn("command failed",
			zap.String("command", kind.String()),
			zap.String("line", inv.Line),
			zap.String("reason", res.Reason),
		)
	case OutcomeSuspend:
		in.state = State{Mode: Waiting, Reason: res.Reason}
		in.logger.Debug("interpreter waiting", zap.String("command", kind.String()), zap.String("reason", res.Reason))
	}
}

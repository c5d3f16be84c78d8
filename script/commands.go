package script

import (
	"strings"

	"go.uber.org/zap"

	"github.com/milk9111/wallrun/ecs"
)

func builtinHandlers() [kindCount]Handler {
	return [kindCount]Handler{
		KindEcho:      echoCommand,
		KindSetSpawn:  setSpawnCommand,
		KindKill:      killCommand,
		KindNextLevel: nextLevelCommand,
		KindDisable:   disableCommand,
		KindCredits:   creditsCommand,
		KindRun:       runCommand,
	}
}

// checkArgs logs and reports a wrong argument count.
func checkArgs(in *Interpreter, kind Kind, args []string) bool {
	if kind.AcceptsArgs(len(args)) {
		return true
	}
	min, max := kind.Arity()
	in.logger.Warn("wrong number of arguments",
		zap.String("command", kind.String()),
		zap.Int("got", len(args)),
		zap.Int("min", min),
		zap.Int("max", max),
	)
	return false
}

func echoCommand(in *Interpreter, self ecs.Entity, args []string) Result {
	in.logger.Info("echo", zap.String("message", strings.Join(args, " ")), zap.Stringer("self", self))
	return Continue()
}

func setSpawnCommand(in *Interpreter, _ ecs.Entity, args []string) Result {
	if !checkArgs(in, KindSetSpawn, args) {
		return Fail("usage: set-spawn <name>")
	}
	if _, ok := in.env.Entity(args[0]); !ok {
		in.logger.Warn("cannot set spawn: entity not found", zap.String("name", args[0]))
		return Continue()
	}
	in.env.SetSpawn(args[0])
	return Continue()
}

func killCommand(in *Interpreter, _ ecs.Entity, args []string) Result {
	if !checkArgs(in, KindKill, args) {
		return Fail("usage: kill")
	}
	if !in.env.KillPlayer() {
		return Continue()
	}
	return Suspend(ReasonRespawn)
}

func nextLevelCommand(in *Interpreter, _ ecs.Entity, args []string) Result {
	if !checkArgs(in, KindNextLevel, args) {
		return Fail("usage: next-level <path> [spawn]")
	}
	spawn := ""
	if len(args) == 2 {
		spawn = args[1]
	}
	in.env.ChangeLevel(args[0], spawn)
	return Suspend(ReasonLevelChange)
}

func disableCommand(in *Interpreter, _ ecs.Entity, args []string) Result {
	if !checkArgs(in, KindDisable, args) {
		return Fail("usage: disable <name>")
	}
	target, ok := in.env.Entity(args[0])
	if !ok {
		in.logger.Warn("disable: target not found", zap.String("name", args[0]))
		return Fail("target not found")
	}
	in.env.Disable(target)
	return Continue()
}

func creditsCommand(in *Interpreter, _ ecs.Entity, args []string) Result {
	if !checkArgs(in, KindCredits, args) {
		return Fail("usage: credits")
	}
	in.env.ShowCredits()
	return Continue()
}

func runCommand(in *Interpreter, self ecs.Entity, args []string) Result {
	if !checkArgs(in, KindRun, args) {
		return Fail("usage: run <script>")
	}
	src, err := in.env.ScriptSource(args[0])
	if err != nil {
		in.logger.Warn("run: load script", zap.String("script", args[0]), zap.Error(err))
		return Fail("script not found")
	}
	if err := runTengo(args[0], src, self, in); err != nil {
		in.logger.Warn("run: script error", zap.String("script", args[0]), zap.Error(err))
		return Fail("script error")
	}
	return Continue()
}

package script

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/milk9111/wallrun/ecs"
)

type levelChange struct {
	path, spawn string
}

type fakeEnv struct {
	entities map[string]ecs.Entity
	scripts  map[string]string
	spawn    string
	kills    int
	alive    bool
	changes  []levelChange
	disabled []ecs.Entity
	credits  bool
}

func newFakeEnv() *fakeEnv {
	return &fakeEnv{
		entities: map[string]ecs.Entity{"spawn_b": 7, "door": 9},
		scripts:  map[string]string{},
		alive:    true,
	}
}

func (f *fakeEnv) Entity(name string) (ecs.Entity, bool) {
	e, ok := f.entities[name]
	return e, ok
}

func (f *fakeEnv) SetSpawn(name string) { f.spawn = name }

func (f *fakeEnv) KillPlayer() bool {
	if !f.alive {
		return false
	}
	f.kills++
	return true
}

func (f *fakeEnv) ChangeLevel(path, spawn string) {
	f.changes = append(f.changes, levelChange{path, spawn})
}

func (f *fakeEnv) Disable(e ecs.Entity) { f.disabled = append(f.disabled, e) }

func (f *fakeEnv) ShowCredits() { f.credits = true }

func (f *fakeEnv) ScriptSource(name string) ([]byte, error) {
	src, ok := f.scripts[name]
	if !ok {
		return nil, errors.New("not found")
	}
	return []byte(src), nil
}

func newTestInterpreter() (*Interpreter, *fakeEnv, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	env := newFakeEnv()
	return NewInterpreter(env, zap.New(core)), env, logs
}

func echoed(logs *observer.ObservedLogs) []string {
	var out []string
	for _, entry := range logs.FilterMessage("echo").All() {
		out = append(out, entry.ContextMap()["message"].(string))
	}
	return out
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		line string
		want []string
	}{
		{`next-level "lvl2.json" "spawn_b"`, []string{"next-level", "lvl2.json", "spawn_b"}},
		{"echo  a \t b", []string{"echo", "a", "b"}},
		{`echo "hello world"`, []string{"echo", "hello world"}},
		{`echo ""`, []string{"echo", ""}},
		{`echo "open`, []string{"echo", "open"}},
		{"   ", nil},
	}

	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			assert.Equal(t, tc.want, Tokenize(tc.line))
		})
	}
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitLines("a; b\nc"))
	assert.Equal(t, []string{`echo "x;y"`, "kill"}, SplitLines(`echo "x;y"; kill`))
	assert.Empty(t, SplitLines(" ;\n; "))
}

func TestLookup(t *testing.T) {
	for k := KindEcho; k < kindCount; k++ {
		assert.Equal(t, k, Lookup(k.String()))
	}
	assert.Equal(t, KindUnknown, Lookup("teleport"))
	assert.Equal(t, "unknown", KindUnknown.String())
}

func TestAcceptsArgs(t *testing.T) {
	cases := []struct {
		kind Kind
		n    int
		want bool
	}{
		{KindEcho, 0, true},
		{KindEcho, 12, true},
		{KindKill, 0, true},
		{KindKill, 1, false},
		{KindNextLevel, 0, false},
		{KindNextLevel, 2, true},
		{KindNextLevel, 3, false},
		{KindSetSpawn, 1, true},
		{KindUnknown, 5, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.kind.AcceptsArgs(tc.n), "%s with %d args", tc.kind, tc.n)
	}
}

func TestNextLevel(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		in, env, _ := newTestInterpreter()
		in.Exec(`next-level "lvl2.json" "spawn_b"`, 1)

		require.Equal(t, []levelChange{{"lvl2.json", "spawn_b"}}, env.changes)
		assert.Equal(t, State{Mode: Waiting, Reason: ReasonLevelChange}, in.State())
	})

	t.Run("spawn_optional", func(t *testing.T) {
		in, env, _ := newTestInterpreter()
		in.Exec("next-level lvl3.json", 1)
		assert.Equal(t, []levelChange{{"lvl3.json", ""}}, env.changes)
	})

	t.Run("no_args_rejected", func(t *testing.T) {
		in, env, logs := newTestInterpreter()
		in.Exec("next-level; echo after", 1)

		assert.Empty(t, env.changes)
		assert.Equal(t, Running, in.State().Mode)
		assert.Equal(t, 1, logs.FilterMessage("wrong number of arguments").Len())
		assert.Equal(t, []string{"after"}, echoed(logs))
	})

	t.Run("too_many_args", func(t *testing.T) {
		in, env, logs := newTestInterpreter()
		in.Exec("next-level a b c", 1)
		assert.Empty(t, env.changes)
		assert.Equal(t, 1, logs.FilterMessage("command failed").Len())
	})
}

func TestKillSuspendsUntilResume(t *testing.T) {
	in, env, logs := newTestInterpreter()
	in.Exec("echo before; kill; echo after", 1)

	assert.Equal(t, 1, env.kills)
	assert.Equal(t, State{Mode: Waiting, Reason: ReasonRespawn}, in.State())
	assert.Equal(t, []string{"before"}, echoed(logs))
	assert.Equal(t, 1, in.Pending())

	in.Exec("echo queued", 1)
	assert.Equal(t, []string{"before"}, echoed(logs), "nothing runs while waiting")

	in.Resume()
	assert.Equal(t, Running, in.State().Mode)
	assert.Equal(t, []string{"before", "after", "queued"}, echoed(logs))
}

func TestKillWithoutPlayerContinues(t *testing.T) {
	in, env, logs := newTestInterpreter()
	env.alive = false
	in.Exec("kill; echo next", 1)

	assert.Equal(t, Running, in.State().Mode)
	assert.Equal(t, []string{"next"}, echoed(logs))
}

func TestSetSpawn(t *testing.T) {
	in, env, logs := newTestInterpreter()

	in.Exec("set-spawn missing; echo next", 1)
	assert.Empty(t, env.spawn)
	assert.Equal(t, 1, logs.FilterMessage("cannot set spawn: entity not found").Len())
	assert.Zero(t, logs.FilterMessage("command failed").Len(), "unknown spawn is a soft failure")
	assert.Equal(t, []string{"next"}, echoed(logs))

	in.Exec("set-spawn spawn_b", 1)
	assert.Equal(t, "spawn_b", env.spawn)
}

func TestDisable(t *testing.T) {
	in, env, logs := newTestInterpreter()

	in.Exec("disable ghost; disable door; echo done", 1)
	assert.Equal(t, []ecs.Entity{9}, env.disabled)
	assert.Equal(t, 1, logs.FilterMessage("disable: target not found").Len())
	assert.Equal(t, 1, logs.FilterMessage("command failed").Len())
	assert.Equal(t, []string{"done"}, echoed(logs))
}

func TestCreditsAndUnknown(t *testing.T) {
	in, env, logs := newTestInterpreter()
	in.Exec("teleport home; credits", 1)

	assert.True(t, env.credits)
	unknown := logs.FilterMessage("unknown command").All()
	require.Len(t, unknown, 1)
	assert.Equal(t, "teleport", unknown[0].ContextMap()["command"])
}

func TestRunNestedBeforeQueued(t *testing.T) {
	in, env, logs := newTestInterpreter()
	env.scripts["intro.tengo"] = `
engine.exec("echo nested one")
engine.exec("echo nested two")
engine.log("from", "script")
`
	in.Enqueue("run intro.tengo", 1)
	in.Enqueue("echo later", 1)
	in.Run()

	assert.Equal(t, []string{"nested one", "nested two", "later"}, echoed(logs))
	assert.Equal(t, 1, logs.FilterMessage("script").Len())
}

func TestRunFailures(t *testing.T) {
	in, env, logs := newTestInterpreter()
	env.scripts["broken.tengo"] = `engine.exec(`

	in.Exec("run missing.tengo; run broken.tengo; run; echo survived", 1)
	assert.Equal(t, 1, logs.FilterMessage("run: load script").Len())
	assert.Equal(t, 1, logs.FilterMessage("run: script error").Len())
	assert.Equal(t, 3, logs.FilterMessage("command failed").Len())
	assert.Equal(t, []string{"survived"}, echoed(logs))
}

func TestClear(t *testing.T) {
	in, _, logs := newTestInterpreter()
	in.Exec("kill; echo dropped", 1)
	in.Clear()
	in.Resume()

	assert.Zero(t, in.Pending())
	assert.Empty(t, echoed(logs))
}

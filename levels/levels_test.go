package levels

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tinyLevel = `{
 "width": 3, "height": 2,
 "properties": {"music": "a.wav", "double_jump": false, "dash": "yes"},
 "layers": [[0, 0, 0, 1, 1, 2]],
 "objects": [
  {"type": "spawn", "name": "start", "x": 0, "y": 0, "width": 32, "height": 32},
  {"type": "trigger", "name": "t", "x": 32, "y": 0, "width": 32, "height": 32, "properties": {"on_enter": "kill", "margin": 4}}
 ]
}`

func TestEmbeddedLevelsLoad(t *testing.T) {
	for _, name := range []string{"lvl1.json", "lvl2.json", "lvl3.json"} {
		t.Run(name, func(t *testing.T) {
			lvl, err := Load(LevelsFS, name)
			require.NoError(t, err)
			assert.Equal(t, 30, lvl.Width)
			assert.NotEmpty(t, lvl.Objects)
		})
	}

	lvl2, err := Load(LevelsFS, "lvl2.json")
	require.NoError(t, err)
	var spawns []string
	for _, o := range lvl2.Objects {
		if o.Type == ObjectSpawn {
			spawns = append(spawns, o.Name)
		}
	}
	assert.Contains(t, spawns, "spawn_b")
}

func TestLoadErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.json":   {Data: []byte("{")},
		"empty.json": {Data: []byte(`{"width": 2, "height": 2, "layers": []}`)},
		"short.json": {Data: []byte(`{"width": 2, "height": 2, "layers": [[1, 1, 1]]}`)},
		"zero.json":  {Data: []byte(`{"width": 0, "height": 2, "layers": [[]]}`)},
	}

	cases := []struct {
		name string
		want string
	}{
		{"missing.json", "levels: read missing.json"},
		{"bad.json", "levels: unmarshal bad.json"},
		{"empty.json", "no layers"},
		{"short.json", "layer 0 has 3 tiles, want 4"},
		{"zero.json", "invalid size 0x2"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(fsys, tc.name)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestGridSolidity(t *testing.T) {
	lvl, err := Parse("tiny.json", []byte(tinyLevel))
	require.NoError(t, err)

	g := NewGrid(lvl)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.False(t, g.Solid(0, 0))
	assert.True(t, g.Solid(0, 1))
	assert.True(t, g.Solid(1, 1))
	assert.False(t, g.Solid(2, 1), "only tile 1 is solid")
	assert.False(t, g.Solid(5, 5))

	var nilGrid *Grid
	assert.Equal(t, 0, nilGrid.Width())
	assert.False(t, nilGrid.Solid(0, 0))
}

func TestProperties(t *testing.T) {
	lvl, err := Parse("tiny.json", []byte(tinyLevel))
	require.NoError(t, err)

	assert.Equal(t, "a.wav", lvl.StringProp("music", ""))
	assert.Equal(t, "none", lvl.StringProp("background", "none"))
	assert.False(t, lvl.BoolProp("double_jump", true))
	assert.True(t, lvl.BoolProp("dash", true), "non-bool values fall back")
	assert.True(t, lvl.BoolProp("wall_jump", true))

	trig := lvl.Objects[1]
	assert.Equal(t, "kill", trig.StringProp("on_enter", ""))
	assert.Equal(t, 4.0, trig.FloatProp("margin", 0))
	assert.Equal(t, 0.0, lvl.Objects[0].FloatProp("margin", 0))
}

func TestWorldBoxFlipsY(t *testing.T) {
	lvl, err := Parse("tiny.json", []byte(tinyLevel))
	require.NoError(t, err)

	box := lvl.WorldBox(lvl.Objects[0])
	assert.Equal(t, cp.BB{L: 0, B: 32, R: 32, T: 64}, box)
}

func TestRegistryCaches(t *testing.T) {
	fsys := fstest.MapFS{"tiny.json": {Data: []byte(tinyLevel)}}
	r := NewRegistry(fsys)

	assert.False(t, r.Cached("tiny.json"))
	a, err := r.Get("tiny.json")
	require.NoError(t, err)
	b, err := r.Get("tiny.json")
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.True(t, r.Cached("tiny.json"))

	c, err := r.Reload("tiny.json")
	require.NoError(t, err)
	assert.NotSame(t, a, c)

	_, err = r.Get("other.json")
	assert.Error(t, err)
	assert.False(t, r.Cached("other.json"))
}

func TestStateTransitions(t *testing.T) {
	assert.True(t, Initialized.CanStart())
	assert.True(t, Stopped.CanStart())
	assert.False(t, Started.CanStart())
	assert.False(t, TornDown.CanStart())
	assert.Equal(t, "torn-down", TornDown.String())
	assert.Equal(t, "unknown", State(42).String())
}

func TestWatcherReportsLevelWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lvl9.json"), []byte(tinyLevel), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, "lvl9.json", name)
	case <-time.After(2 * time.Second):
		t.Fatal("no watcher event")
	}
}

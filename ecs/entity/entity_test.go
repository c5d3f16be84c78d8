package entity

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/milk9111/wallrun/ecs"
	"github.com/milk9111/wallrun/ecs/component"
	"github.com/milk9111/wallrun/levels"
)

func TestNewPlayerSharesParams(t *testing.T) {
	w := ecs.NewWorld()
	params := component.DefaultCharPhysicsParams()

	e, err := NewPlayerAt(w, params, 100, 200)
	require.NoError(t, err)

	assert.Equal(t, PlayerName, ecs.Name(w, e))
	assert.True(t, ecs.Has(w, e, component.PlayerTagComponent.Kind()))

	c, ok := ecs.Get(w, e, component.CharacterComponent.Kind())
	require.True(t, ok)
	assert.Same(t, params, c.Physics)

	*params = *params.WithFeatures(false, true, true)
	assert.Equal(t, 0, c.Physics.NumJumps)

	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 100.0, tr.X)
	assert.Equal(t, 200.0, tr.PrevY)

	col, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, cp.BB{L: -10, B: -14, R: 10, T: 14}, col.Box)

	anim, ok := ecs.Get(w, e, component.AnimatorComponent.Kind())
	require.True(t, ok)
	assert.True(t, anim.Is(component.ClipIdle))
}

func TestNewPlayerWithoutSharedParams(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewPlayer(w, nil)
	require.NoError(t, err)

	c, ok := ecs.Get(w, e, component.CharacterComponent.Kind())
	require.True(t, ok)
	require.NotNil(t, c.Physics)
	assert.Equal(t, 1, c.Physics.NumJumps)
}

func TestBuildEntityMissingPrefab(t *testing.T) {
	w := ecs.NewWorld()
	_, err := BuildEntity(w, "missing.yaml")
	require.Error(t, err)
	assert.Empty(t, ecs.Entities(w))

	_, err = BuildEntity(nil, "player.yaml")
	assert.Error(t, err)
}

func TestNewDeathMarker(t *testing.T) {
	w := ecs.NewWorld()

	e, err := NewDeathMarker(w, 5, 6, 0)
	require.NoError(t, err)
	m, ok := ecs.Get(w, e, component.DeathMarkerComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 60, m.TicksLeft)

	anim, ok := ecs.Get(w, e, component.AnimatorComponent.Kind())
	require.True(t, ok)
	assert.True(t, anim.Is("dead"))

	e, err = NewDeathMarker(w, 5, 6, 12)
	require.NoError(t, err)
	m, _ = ecs.Get(w, e, component.DeathMarkerComponent.Kind())
	assert.Equal(t, 12, m.TicksLeft)
}

func testLevel() *levels.Level {
	return &levels.Level{
		Width:  4,
		Height: 4,
		Layers: [][]int{make([]int, 16)},
		Objects: []levels.Object{
			{Type: levels.ObjectSpawn, Name: "start", X: 0, Y: 64, Width: 32, Height: 32},
			{Type: levels.ObjectTrigger, Name: "door", X: 32, Y: 0, Width: 64, Height: 32, Properties: map[string]any{
				"on_enter": "kill",
				"on_use":   "echo hi",
				"margin":   2.0,
			}},
			{Type: levels.ObjectTrigger, Name: "door", X: 96, Y: 0, Width: 32, Height: 32, Properties: map[string]any{
				"enabled": false,
			}},
			{Type: "item", Name: "gem"},
		},
	}
}

func TestLoadLevelToWorld(t *testing.T) {
	w := ecs.NewWorld()
	core, logs := observer.New(zapcore.WarnLevel)

	lvl, err := LoadLevelToWorld(w, "test.json", testLevel(), zap.New(core))
	require.NoError(t, err)

	assert.Equal(t, "test.json", ecs.Name(w, lvl.Root))
	assert.False(t, ecs.IsEnabled(w, lvl.Root), "levels start disabled")

	spawn, n := lvl.Lookup(w, "start")
	require.Equal(t, 1, n)
	tr, ok := ecs.Get(w, spawn, component.TransformComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 16.0, tr.X)
	assert.Equal(t, 48.0, tr.Y)
	assert.True(t, ecs.Has(w, spawn, component.SpawnPointComponent.Kind()))

	door, n := lvl.Lookup(w, "door")
	require.Equal(t, 2, n)
	trig, ok := ecs.Get(w, door, component.TriggerComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, "kill", trig.OnEnter)
	assert.Equal(t, "echo hi", trig.OnUse)
	col, ok := ecs.Get(w, door, component.ColliderComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, cp.BB{L: -34, B: -18, R: 34, T: 18}, col.Box)
	dtr, _ := ecs.Get(w, door, component.TransformComponent.Kind())
	assert.Equal(t, 64.0, dtr.X)
	assert.Equal(t, 112.0, dtr.Y)

	var disabled int
	for _, c := range ecs.Children(w, lvl.Objects) {
		if !ecs.IsEnabled(w, c) {
			disabled++
		}
	}
	assert.Equal(t, 1, disabled)

	_, n = lvl.Lookup(w, "gem")
	assert.Equal(t, 0, n)
	require.Equal(t, 1, logs.FilterMessage("failed to load level object").Len())

	ecs.DestroyEntity(w, lvl.Root)
	_, n = lvl.Lookup(w, "start")
	assert.Equal(t, 0, n)
	assert.Empty(t, ecs.Entities(w))
}

func TestLoadLevelToWorldRejectsNil(t *testing.T) {
	_, err := LoadLevelToWorld(nil, "x", testLevel(), nil)
	assert.Error(t, err)
	_, err = LoadLevelToWorld(ecs.NewWorld(), "x", nil, nil)
	assert.Error(t, err)
}

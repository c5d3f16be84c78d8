package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// SpawnPoint marks a named location the player can respawn at.
type SpawnPoint struct{}

var SpawnPointComponent = NewComponent[SpawnPoint]()

// DeathMarker replaces the player while the death timer runs.
type DeathMarker struct {
	TicksLeft int
}

var DeathMarkerComponent = NewComponent[DeathMarker]()

// LevelRoot marks the parent of every entity spawned for one level.
type LevelRoot struct {
	Path string
}

var LevelRootComponent = NewComponent[LevelRoot]()

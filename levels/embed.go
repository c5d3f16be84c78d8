package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed *.json
var LevelsFS embed.FS

// Level is a tile map with placed objects. Layers are row-major with row 0
// at the top; object coordinates are in pixels, y pointing down.
type Level struct {
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Layers     [][]int        `json:"layers"`
	Objects    []Object       `json:"objects,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
}

type Object struct {
	Type       string         `json:"type"`
	Name       string         `json:"name"`
	X          float64        `json:"x"`
	Y          float64        `json:"y"`
	Width      float64        `json:"width"`
	Height     float64        `json:"height"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Object types placed by the level builder.
const (
	ObjectSpawn   = "spawn"
	ObjectTrigger = "trigger"
)

func Load(fsys fs.FS, name string) (*Level, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return Parse(name, data)
}

// LoadFromFS reads a level from the working tree when present, falling back
// to the embedded copy.
func LoadFromFS(name string) (*Level, error) {
	if data, err := os.ReadFile(DiskPath(name)); err == nil {
		return Parse(name, data)
	}
	return Load(LevelsFS, name)
}

// DiskPath is where the editable copy of an embedded level lives.
func DiskPath(name string) string {
	return filepath.Join("levels", filepath.FromSlash(name))
}

func Parse(name string, data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if err := lvl.validate(); err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	return &lvl, nil
}

func (l *Level) validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", l.Width, l.Height)
	}
	if len(l.Layers) == 0 {
		return fmt.Errorf("no layers")
	}
	for i, layer := range l.Layers {
		if len(layer) != l.Width*l.Height {
			return fmt.Errorf("layer %d has %d tiles, want %d", i, len(layer), l.Width*l.Height)
		}
	}
	return nil
}

// Tile returns the tile at (x, y) of a layer, or 0 outside the map.
func (l *Level) Tile(layer, x, y int) int {
	if layer < 0 || layer >= len(l.Layers) || x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return 0
	}
	return l.Layers[layer][y*l.Width+x]
}

func (l *Level) StringProp(key, fallback string) string {
	return stringProp(l.Properties, key, fallback)
}

func (l *Level) BoolProp(key string, fallback bool) bool {
	return boolProp(l.Properties, key, fallback)
}

func (o Object) StringProp(key, fallback string) string {
	return stringProp(o.Properties, key, fallback)
}

func (o Object) BoolProp(key string, fallback bool) bool {
	return boolProp(o.Properties, key, fallback)
}

func (o Object) FloatProp(key string, fallback float64) float64 {
	if v, ok := o.Properties[key].(float64); ok {
		return v
	}
	return fallback
}

func stringProp(props map[string]any, key, fallback string) string {
	if v, ok := props[key].(string); ok {
		return v
	}
	return fallback
}

// boolProp ignores values that are not booleans.
func boolProp(props map[string]any, key string, fallback bool) bool {
	if v, ok := props[key].(bool); ok {
		return v
	}
	return fallback
}

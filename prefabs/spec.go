package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/wallrun/ecs/component"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// EntityBuildSpec is a prefab: a name and one raw spec per component.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ColliderComponentSpec is a box centered on the entity, shifted by the
// offsets.
type ColliderComponentSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type SpriteComponentSpec struct {
	Width     float64   `yaml:"width"`
	Height    float64   `yaml:"height"`
	TileIndex int       `yaml:"tile_index"`
	Color     YAMLColor `yaml:"color"`
}

type CharacterComponentSpec struct {
	Physics component.CharPhysicsSpec `yaml:"physics"`
}

type ClipSpec struct {
	Name   string  `yaml:"name"`
	Frames []int   `yaml:"frames"`
	FPS    float64 `yaml:"fps"`
	Loop   bool    `yaml:"loop"`
}

type AnimatorComponentSpec struct {
	Initial string     `yaml:"initial"`
	Clips   []ClipSpec `yaml:"clips"`
}

// ClipSet converts the clip list, falling back to the built-in clips for
// any character clip the spec leaves out.
func (s AnimatorComponentSpec) ClipSet() component.ClipSet {
	clips := component.DefaultClips()
	for _, c := range s.Clips {
		if c.Name == "" || len(c.Frames) == 0 {
			continue
		}
		fps := c.FPS
		if fps <= 0 {
			fps = 1
		}
		clips[c.Name] = &component.Clip{
			Name:   c.Name,
			Frames: append([]int(nil), c.Frames...),
			FPS:    fps,
			Loop:   c.Loop,
		}
	}
	return clips
}

type TriggerComponentSpec struct {
	OnEnter string `yaml:"on_enter"`
	OnExit  string `yaml:"on_exit"`
	OnUse   string `yaml:"on_use"`
}

type DeathMarkerComponentSpec struct {
	Ticks int `yaml:"ticks"`
}

// LoadCharacterPhysics returns the physics profile of a character prefab.
func LoadCharacterPhysics(filename string) (*component.CharPhysicsParams, error) {
	spec, err := LoadEntityBuildSpec(filename)
	if err != nil {
		return nil, err
	}
	raw, ok := spec.Components["character"]
	if !ok {
		return nil, fmt.Errorf("prefabs: %s has no character component", filename)
	}
	ch, err := DecodeComponentSpec[CharacterComponentSpec](raw)
	if err != nil {
		return nil, fmt.Errorf("prefabs: decode %s character: %w", filename, err)
	}
	return ch.Physics.Params(), nil
}

type YAMLColor struct {
	color.Color
}

// ToRGBA returns the color, or opaque white when unset.
func (c YAMLColor) ToRGBA() color.RGBA {
	if c.Color == nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBAModel.Convert(c.Color).(color.RGBA)
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// MarshalYAML writes the color back as #rrggbbaa.
func (c YAMLColor) MarshalYAML() (any, error) {
	if c.Color == nil {
		return nil, nil
	}
	n := color.NRGBAModel.Convert(c.Color).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A), nil
}

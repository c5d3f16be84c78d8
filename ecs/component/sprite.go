package component

import "image/color"

// Sprite selects a tile of the entity's sheet. Width and Height are in
// pixels and centered on the transform.
type Sprite struct {
	TileIndex int
	Width     float64
	Height    float64
	Color     color.RGBA
}

var SpriteComponent = NewComponent[Sprite]()

package entity

import "github.com/vovakirdan/tui-chase/internal/core"

// Wall is an impassable grid cell.
type Wall struct {
	position core.Point2D[uint16]
}

// NewWall creates a wall at (x, y).
func NewWall(x, y uint16) *Wall {
	return &Wall{position: core.NewPoint(x, y)}
}

func (w *Wall) Position() core.Point2D[uint16] {
	return w.position
}

func (w *Wall) SetPosition(pos core.Point2D[uint16]) {
	w.position.X = pos.X
	w.position.Y = pos.Y
}

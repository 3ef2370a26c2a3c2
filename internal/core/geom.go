// Package core provides fundamental types and utilities for the chase game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"fmt"
	"math"
	"math/rand"
)

// Number is the set of coordinate types a Point2D can carry.
// uint16 is used for grid-fixed entities, float64 for moving ones.
type Number interface {
	uint16 | float64
}

// Heading is one of eight discrete directions, 45 degrees apart.
// DX and DY always hold the table vector for Sector.
type Heading struct {
	DX     float64
	DY     float64
	Sector int8
}

// SectorCount is the number of discrete headings.
const SectorCount = 8

// headingTable maps a sector to its movement vector. The diagonal values are
// intentionally 0.7061 rather than 1/sqrt(2); gameplay is tuned against them.
var headingTable = [SectorCount][2]float64{
	{1.0000, 0.0000},
	{0.7061, 0.7061},
	{0.0000, 1.0000},
	{-0.7061, 0.7061},
	{-1.0000, 0.0000},
	{-0.7061, -0.7061},
	{0.0000, -1.0000},
	{0.7061, -0.7061},
}

// HeadingFor returns the heading for a sector, wrapping out-of-range values.
func HeadingFor(sector int8) Heading {
	s := int8((int(sector)%SectorCount + SectorCount) % SectorCount)
	v := headingTable[s]
	return Heading{DX: v[0], DY: v[1], Sector: s}
}

// DefaultHeading points along +X (sector 0).
func DefaultHeading() Heading {
	return HeadingFor(0)
}

// Point2D is a coordinate paired with a heading.
type Point2D[N Number] struct {
	X       N
	Y       N
	Heading Heading
}

// NewPoint creates a point facing sector 0.
func NewPoint[N Number](x, y N) Point2D[N] {
	return Point2D[N]{X: x, Y: y, Heading: DefaultHeading()}
}

// Turn rotates the heading by whole sectors (-1 = left, +1 = right).
func (p *Point2D[N]) Turn(turn int8) {
	p.Heading = HeadingFor(p.Heading.Sector + turn)
}

// SameCell reports whether two points share X and Y. Headings are ignored.
func (p Point2D[N]) SameCell(other Point2D[N]) bool {
	return p.X == other.X && p.Y == other.Y
}

// String renders the point as P:<x>x<y> D:<sector> with rounded coordinates.
func (p Point2D[N]) String() string {
	return fmt.Sprintf("P:%vx%v D:%d",
		math.Round(float64(p.X)), math.Round(float64(p.Y)), p.Heading.Sector)
}

// Sub returns the component-wise difference a - b, heading included.
// The result is a direction vector, not a meaningful position.
func Sub[N Number](a, b Point2D[N]) Point2D[N] {
	return Point2D[N]{
		X: a.X - b.X,
		Y: a.Y - b.Y,
		Heading: Heading{
			DX:     a.Heading.DX - b.Heading.DX,
			DY:     a.Heading.DY - b.Heading.DY,
			Sector: a.Heading.Sector - b.Heading.Sector,
		},
	}
}

// MoveForward advances p along its heading by speed.
func MoveForward(p *Point2D[float64], speed float64) {
	p.X += p.Heading.DX * speed
	p.Y += p.Heading.DY * speed
}

// SimulateMoveForward returns where p would be after MoveForward without
// touching p. The returned point has the default heading.
func SimulateMoveForward(p Point2D[float64], speed float64) Point2D[float64] {
	return NewPoint(p.X+p.Heading.DX*speed, p.Y+p.Heading.DY*speed)
}

// ToCell truncates a float point to its grid cell. Values saturate at the
// uint16 bounds and NaN maps to 0.
func ToCell(p Point2D[float64]) Point2D[uint16] {
	return NewPoint(toUint16(p.X), toUint16(p.Y))
}

// Round rounds each coordinate to the nearest integer, keeping float64.
func Round(p Point2D[float64]) Point2D[float64] {
	return NewPoint(math.Round(p.X), math.Round(p.Y))
}

// CellOf is Round followed by ToCell: the cell an entity is drawn and
// collided at.
func CellOf(p Point2D[float64]) Point2D[uint16] {
	return ToCell(Round(p))
}

// Float widens a grid point to float coordinates.
func Float(p Point2D[uint16]) Point2D[float64] {
	return Point2D[float64]{X: float64(p.X), Y: float64(p.Y), Heading: p.Heading}
}

// Length returns the euclidean length of (X, Y).
func Length(p Point2D[float64]) float64 {
	return math.Hypot(p.X, p.Y)
}

func toUint16(v float64) uint16 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= math.MaxUint16:
		return math.MaxUint16
	default:
		return uint16(v)
	}
}

// Range is a half-open interval [Min, Max).
type Range[N Number] struct {
	Min N
	Max N
}

// Sample draws a uniform value from the range. An empty range yields Min.
func (r Range[N]) Sample(rng *rand.Rand) N {
	if r.Max <= r.Min {
		return r.Min
	}
	if _, ok := any(r.Min).(float64); ok {
		v := r.Min + N(rng.Float64()*float64(r.Max-r.Min))
		if v >= r.Max {
			return r.Min
		}
		return v
	}
	return r.Min + N(rng.Int63n(int64(r.Max-r.Min)))
}

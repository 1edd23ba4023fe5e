// Package geometry provides basic geometric types used throughout the application.
package geometry

import (
	"math"
)

// Point2D represents a 2D point with floating-point coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// PointInt represents a pixel position.
type PointInt struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for PointInt{X: x, Y: y}.
func Pt(x, y int) PointInt {
	return PointInt{X: x, Y: y}
}

// ToFloat converts to Point2D.
func (p PointInt) ToFloat() Point2D {
	return Point2D{X: float64(p.X), Y: float64(p.Y)}
}

// DistanceSquared returns the exact squared Euclidean distance to another pixel.
func (p PointInt) DistanceSquared(other PointInt) int64 {
	dx := int64(p.X - other.X)
	dy := int64(p.Y - other.Y)
	return dx*dx + dy*dy
}

// In reports whether the point lies inside a width×height grid anchored at (0,0).
func (p PointInt) In(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// Package geom computes target points for a robot moving from a pose, either in a
// straight line or along a circular arc.
package geom

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

const π = math.Pi

// Pose is a position and heading in the world frame. Theta is in radians,
// counterclockwise from +X.
type Pose struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Theta float64 `json:"theta"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (p Point) vector() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// Position drops the heading.
func (p Pose) Position() Point {
	return Point{X: p.X, Y: p.Y}
}

func ToRadians(a float64) float64 {
	return a * π / 180.0
}

func ToDegrees(a float64) float64 {
	return a * 180.0 / π
}

// Line projects distance along theta from (x, y). Unlike the arc model nothing
// is clamped or snapped.
func Line(x, y, theta, distance float64) Point {
	return Point{
		X: x + distance*math.Cos(theta),
		Y: y + distance*math.Sin(theta),
	}
}

// Radius converts a signed curvature to a positive radius. Zero curvature gives
// an infinite radius.
func Radius(curvature float64) float64 {
	return 1 / math.Abs(curvature)
}

// Curvature converts a radius to a left turning curvature.
func Curvature(radius float64) float64 {
	return 1 / radius
}

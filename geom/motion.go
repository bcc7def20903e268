package geom

import (
	"fmt"
	"math"
)

// Motion is one of Straight, Arc or Curve.
type Motion interface {
	fmt.Stringer
	motion()
}

// Straight is a direct projection along the heading. It is not clamped: a
// straight line has no division to protect, so any finite distance is used as is.
type Straight struct{}

// Arc turns left on a circle of Radius. Radii under epsilon use the default.
type Arc struct {
	Radius float64
}

// Curve turns on a circle of signed Curvature, positive is left.
type Curve struct {
	Curvature float64
}

func (Straight) motion() {}
func (Arc) motion()      {}
func (Curve) motion()    {}

func (Straight) String() string { return "straight" }
func (a Arc) String() string    { return fmt.Sprintf("arc r=%g", a.Radius) }
func (c Curve) String() string  { return fmt.Sprintf("curve k=%g", c.Curvature) }

// Target moves distance from pose according to m.
func (e Engine) Target(pose Pose, distance float64, m Motion) Point {
	switch m := m.(type) {
	case Arc:
		return e.ArcPoint(pose.X, pose.Y, pose.Theta, distance, m.Radius)
	case Curve:
		return e.ArcPointFromCurvature(pose.X, pose.Y, pose.Theta, distance, m.Curvature)
	default:
		return Line(pose.X, pose.Y, pose.Theta, distance)
	}
}

// Measure describes a move for display.
type Measure struct {
	// ArcAngle is the angle swept in degrees, 0 for straight moves.
	ArcAngle float64 `json:"arcAngle"`
	Chord    float64 `json:"chord"`
	// Bearing from start to target in degrees, counterclockwise from +X.
	Bearing float64 `json:"bearing"`
}

// Measure computes the display values of moving distance from pose to target.
func (e Engine) Measure(pose Pose, distance float64, m Motion, target Point) Measure {
	var φ float64
	switch m := m.(type) {
	case Arc:
		φ = e.Sweep(distance, m.Radius)
	case Curve:
		φ = e.CurvatureSweep(distance, m.Curvature)
	}

	d := target.vector().Sub(pose.Position().vector())
	return Measure{
		ArcAngle: ToDegrees(φ),
		Chord:    d.Norm(),
		Bearing:  ToDegrees(math.Atan2(d.Y, d.X)),
	}
}

package geom

import "math"

// Engine computes target points. It holds no state besides its settings and is
// safe for concurrent use.
type Engine struct {
	settings Settings
}

func NewEngine(s Settings) (Engine, error) {
	if err := s.Validate(); err != nil {
		return Engine{}, err
	}
	return Engine{settings: s}, nil
}

func DefaultEngine() Engine {
	return Engine{settings: DefaultSettings()}
}

func (e Engine) Settings() Settings {
	return e.settings
}

// ArcPoint follows a left turning arc of the given radius for dlead from the
// pose (x, y, theta). A negative dlead travels the same circle backwards.
func (e Engine) ArcPoint(x, y, theta, dlead, radius float64) Point {
	if math.Abs(dlead) < e.settings.MinLead {
		return Point{X: x, Y: y}
	}
	dlead = e.clampLead(dlead)
	radius = e.normalizeRadius(radius)

	φ := dlead / radius
	lx := radius * math.Sin(φ)
	ly := radius * (1 - math.Cos(φ))

	cos, sin := math.Cos(theta), math.Sin(theta)
	return e.snap(Point{
		X: x + lx*cos - ly*sin,
		Y: y + lx*sin + ly*cos,
	})
}

// ArcPointDefault is ArcPoint with the default radius.
func (e Engine) ArcPointDefault(x, y, theta, dlead float64) Point {
	return e.ArcPoint(x, y, theta, dlead, e.settings.DefaultRadius)
}

// ArcPointFromCurvature is ArcPoint with a signed curvature, positive turning
// left. A curvature under epsilon is a straight line.
func (e Engine) ArcPointFromCurvature(x, y, theta, dlead, curvature float64) Point {
	if math.Abs(curvature) < e.settings.Epsilon {
		return e.snap(Line(x, y, theta, dlead))
	}
	if curvature < 0 {
		dlead = -dlead
	}
	return e.ArcPoint(x, y, theta, dlead, Radius(curvature))
}

// Sweep returns the arc angle in radians ArcPoint turns through for dlead and
// radius, after the same normalization.
func (e Engine) Sweep(dlead, radius float64) float64 {
	if math.Abs(dlead) < e.settings.MinLead {
		return 0
	}
	return e.clampLead(dlead) / e.normalizeRadius(radius)
}

// CurvatureSweep is Sweep for ArcPointFromCurvature. Right turns are negative.
func (e Engine) CurvatureSweep(dlead, curvature float64) float64 {
	if math.Abs(curvature) < e.settings.Epsilon {
		return 0
	}
	if curvature < 0 {
		dlead = -dlead
	}
	return e.Sweep(dlead, Radius(curvature))
}

func (e Engine) clampLead(dlead float64) float64 {
	return math.Max(-e.settings.MaxLead, math.Min(e.settings.MaxLead, dlead))
}

func (e Engine) normalizeRadius(radius float64) float64 {
	if math.Abs(radius) < e.settings.Epsilon {
		radius = e.settings.DefaultRadius
	}
	return math.Abs(radius)
}

func (e Engine) snap(p Point) Point {
	if math.Abs(p.X) < e.settings.Epsilon {
		p.X = 0
	}
	if math.Abs(p.Y) < e.settings.Epsilon {
		p.Y = 0
	}
	return p
}

package geom

import "errors"

// Settings holds the numerical limits of an Engine.
type Settings struct {
	// Epsilon is the magnitude under which radii and curvatures are treated
	// as zero and output coordinates are snapped to 0.
	Epsilon float64 `json:"epsilon"`
	// MinLead is the smallest |dlead| that moves the robot.
	MinLead float64 `json:"minLead"`
	// MaxLead saturates |dlead|.
	MaxLead       float64 `json:"maxLead"`
	DefaultRadius float64 `json:"defaultRadius"`
}

func DefaultSettings() Settings {
	return Settings{
		Epsilon:       1e-9,
		MinLead:       1e-6,
		MaxLead:       1e6,
		DefaultRadius: 1.0,
	}
}

func (s Settings) Validate() error {
	if !(s.Epsilon > 0) {
		return errors.New("epsilon must be positive")
	}
	if s.MinLead < 0 {
		return errors.New("min lead must not be negative")
	}
	if !(s.MaxLead > s.MinLead) {
		return errors.New("max lead must be greater than min lead")
	}
	if !(s.DefaultRadius > s.Epsilon) {
		return errors.New("default radius must be greater than epsilon")
	}
	return nil
}

// ErrRadius is returned with the default radius when an input radius is not
// positive. It is a warning, the default is safe to use.
var ErrRadius = errors.New("radius must be positive, using default radius")

// CheckRadius returns r, or the default radius and ErrRadius when r <= 0.
func (e Engine) CheckRadius(r float64) (float64, error) {
	if r <= 0 {
		return e.settings.DefaultRadius, ErrRadius
	}
	return r, nil
}

package model

import (
	"github.com/a-bouts/path-calc/geom"
)

// Pose as sent by clients. Theta is in degrees when Degrees is set.
type Pose struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Theta   float64 `json:"theta"`
	Degrees bool    `json:"degrees"`
}

func (p Pose) Geom() geom.Pose {
	theta := p.Theta
	if p.Degrees {
		theta = geom.ToRadians(theta)
	}
	return geom.Pose{X: p.X, Y: p.Y, Theta: theta}
}

type Collinear struct {
	Pose     Pose    `json:"pose"`
	Distance float64 `json:"distance"`
}

type Arc struct {
	Pose   Pose     `json:"pose"`
	Dlead  float64  `json:"dlead"`
	Radius *float64 `json:"radius,omitempty"`
}

type Curvature struct {
	Pose      Pose    `json:"pose"`
	Dlead     float64 `json:"dlead"`
	Curvature float64 `json:"curvature"`
}

type Result struct {
	Motion   string       `json:"motion"`
	Target   geom.Point   `json:"target"`
	Measure  geom.Measure `json:"measure"`
	Warnings []string     `json:"warnings,omitempty"`
}

type Error struct {
	Error string `json:"error"`
}

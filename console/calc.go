package console

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/path-calc/geom"
)

func (c *Console) collinearCalc() error {
	c.clear()
	pose, err := c.readPose()
	if err != nil {
		return err
	}
	distance, err := c.readFloat("How far travel? (Positive is straight, negative is backwards)\n")
	if err != nil {
		return err
	}

	target := c.engine.Target(pose, distance, geom.Straight{})
	log.Debugf("Collinear %v by %g : %s", pose, distance, target)

	fmt.Fprint(c.out, rule)
	fmt.Fprint(c.out, "New Points \n")
	fmt.Fprint(c.out, rule)
	fmt.Fprintf(c.out, "NEWX: %s\n", format(target.X))
	fmt.Fprintf(c.out, "NEWY: %s\n", format(target.Y))
	fmt.Fprint(c.out, rule)
	return nil
}

func (c *Console) curveCalc() error {
	c.clear()
	pose, err := c.readPose()
	if err != nil {
		return err
	}
	dlead, err := c.readFloat("Lookahead distance along the curve? (Negative is backwards)\n")
	if err != nil {
		return err
	}
	m, err := c.readShape()
	if err != nil {
		return err
	}

	target := c.engine.Target(pose, dlead, m)
	measure := c.engine.Measure(pose, dlead, m, target)
	log.Debugf("Curve %v by %g on %s : %s", pose, dlead, m, target)

	fmt.Fprint(c.out, rule)
	fmt.Fprint(c.out, "Target Point \n")
	fmt.Fprint(c.out, rule)
	fmt.Fprintf(c.out, "NEWX: %s\n", format(target.X))
	fmt.Fprintf(c.out, "NEWY: %s\n", format(target.Y))
	fmt.Fprintf(c.out, "ARC ANGLE: %s deg\n", format(measure.ArcAngle))
	fmt.Fprintf(c.out, "CHORD: %s\n", format(measure.Chord))
	fmt.Fprintf(c.out, "BEARING: %s deg\n", format(measure.Bearing))
	fmt.Fprint(c.out, rule)
	return nil
}

// readShape asks for a radius or a curvature.
func (c *Console) readShape() (geom.Motion, error) {
	for {
		fmt.Fprint(c.out, "Curve shape: 1. Radius  2. Curvature \n")
		line, err := c.readLine()
		if err != nil {
			return nil, fmt.Errorf("reading curve shape: %w", err)
		}

		switch strings.TrimSpace(line) {
		case "", "1":
			r, err := c.readFloat(fmt.Sprintf("Curvature radius? (default %s)\n", format(c.engine.Settings().DefaultRadius)))
			if err != nil {
				return nil, err
			}
			r, err = c.engine.CheckRadius(r)
			if err != nil {
				log.Debugf("Radius rejected : %s", err)
				fmt.Fprintf(c.out, "Warning: %s (%s)\n", err, format(r))
			}
			return geom.Arc{Radius: r}, nil
		case "2":
			k, err := c.readFloat("Curvature? (1/radius, positive turns left)\n")
			if err != nil {
				return nil, err
			}
			return geom.Curve{Curvature: k}, nil
		default:
			fmt.Fprint(c.out, "Invalid choice. Please try again.\n")
		}
	}
}

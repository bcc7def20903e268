// Package console runs the interactive text menu.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/path-calc/geom"
)

const (
	rule        = "=============================\n"
	clearScreen = "\033[H\033[2J"
)

type Console struct {
	engine geom.Engine
	in     *bufio.Reader
	out    io.Writer
	// Clear writes the screen clearing sequence before each screen.
	Clear bool
}

func New(e geom.Engine, in io.Reader, out io.Writer) *Console {
	return &Console{
		engine: e,
		in:     bufio.NewReader(in),
		out:    out,
		Clear:  true,
	}
}

// Run shows the main menu until the user exits or the input ends.
func (c *Console) Run() error {
	for {
		c.displayScreen("Main Screen")

		line, err := c.readLine()
		if err != nil {
			return endOfInput(err)
		}

		var done bool
		switch strings.TrimSpace(line) {
		case "1":
			err = c.collinearCalc()
		case "2":
			err = c.curveCalc()
		case "3":
			fmt.Fprint(c.out, "Exiting...\n")
			done = true
		default:
			fmt.Fprint(c.out, "Invalid choice. Please try again.\n")
		}
		if err != nil {
			return endOfInput(err)
		}
		if done {
			return nil
		}

		fmt.Fprint(c.out, "Press Enter to return to the main menu...")
		if _, err := c.readLine(); err != nil {
			return endOfInput(err)
		}
	}
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		log.Debug("Input closed")
		return nil
	}
	return err
}

func (c *Console) clear() {
	if c.Clear {
		fmt.Fprint(c.out, clearScreen)
	}
}

func (c *Console) displayScreen(title string) {
	c.clear()
	fmt.Fprint(c.out, rule)
	fmt.Fprintf(c.out, "       %s       \n", title)
	fmt.Fprint(c.out, rule)
	fmt.Fprint(c.out, "1. Option One: Start the collinear Calc\n")
	fmt.Fprint(c.out, "2. Option Two: Start the curve Calc\n")
	fmt.Fprint(c.out, "3. Exit\n")
	fmt.Fprint(c.out, rule)
	fmt.Fprint(c.out, "Select an option: ")
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

// readFloat prompts until a number is entered.
func (c *Console) readFloat(prompt string) (float64, error) {
	for {
		fmt.Fprint(c.out, prompt)
		line, err := c.readLine()
		if err != nil {
			return 0, fmt.Errorf("reading %q: %w", strings.TrimSpace(prompt), err)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err == nil {
			return v, nil
		}
		log.Debugf("Invalid number %q", strings.TrimSpace(line))
		fmt.Fprint(c.out, "Invalid number, try again\n")
	}
}

func (c *Console) readPose() (geom.Pose, error) {
	x, err := c.readFloat("Please Enter Current X \n")
	if err != nil {
		return geom.Pose{}, err
	}
	y, err := c.readFloat("Please Enter Current Y \n")
	if err != nil {
		return geom.Pose{}, err
	}
	theta, err := c.readFloat("Please Enter Current Theta (degrees) \n")
	if err != nil {
		return geom.Pose{}, err
	}
	return geom.Pose{X: x, Y: y, Theta: geom.ToRadians(theta)}, nil
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

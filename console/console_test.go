package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a-bouts/path-calc/geom"
)

func run(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	c := New(geom.DefaultEngine(), strings.NewReader(input), &out)
	c.Clear = false
	require.NoError(t, c.Run())
	return out.String()
}

func TestExit(t *testing.T) {
	out := run(t, "3\n")

	assert.Contains(t, out, "Main Screen")
	assert.Contains(t, out, "Exiting...")
	assert.NotContains(t, out, "Press Enter")
}

func TestClearScreen(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, New(geom.DefaultEngine(), strings.NewReader("3\n"), &out).Run())

	assert.True(t, strings.HasPrefix(out.String(), clearScreen))
}

func TestInvalidChoice(t *testing.T) {
	out := run(t, "9\n\n3\n")

	assert.Contains(t, out, "Invalid choice. Please try again.")
	assert.Equal(t, 2, strings.Count(out, "Main Screen"))
}

func TestCollinear(t *testing.T) {
	out := run(t, "1\n0\n0\n0\n10\n\n3\n")

	assert.Contains(t, out, "NEWX: 10\n")
	assert.Contains(t, out, "NEWY: 0\n")
	assert.Contains(t, out, "Press Enter to return to the main menu...")
}

func TestCollinearDegrees(t *testing.T) {
	out := run(t, "1\n1\n1\n90\n-2\n\n3\n")

	assert.Contains(t, out, "NEWX: 1\n")
	assert.Contains(t, out, "NEWY: -1\n")
}

func TestInvalidNumber(t *testing.T) {
	out := run(t, "1\nabc\n0\n0\n0\n10\n\n3\n")

	assert.Contains(t, out, "Invalid number, try again")
	assert.Contains(t, out, "NEWX: 10\n")
}

func TestCurveRadius(t *testing.T) {
	out := run(t, "2\n0\n0\n0\n1.5707963267948966\n1\n1\n\n3\n")

	assert.Contains(t, out, "NEWX: 1\n")
	assert.Contains(t, out, "NEWY: 1\n")
	assert.Contains(t, out, "ARC ANGLE: 90 deg\n")
	assert.Contains(t, out, "CHORD: 1.41421\n")
	assert.Contains(t, out, "BEARING: 45 deg\n")
}

func TestCurveRadiusWarning(t *testing.T) {
	out := run(t, "2\n0\n0\n0\n1.5707963267948966\n1\n-1\n\n3\n")

	assert.Contains(t, out, "Warning: "+geom.ErrRadius.Error()+" (1)\n")
	assert.Contains(t, out, "NEWX: 1\n")
	assert.Contains(t, out, "NEWY: 1\n")
}

func TestCurveCurvature(t *testing.T) {
	out := run(t, "2\n5\n0\n90\n0\n2\n0.5\n\n3\n")

	// no movement
	assert.Contains(t, out, "NEWX: 5\n")
	assert.Contains(t, out, "NEWY: 0\n")
	assert.Contains(t, out, "CHORD: 0\n")
}

func TestCurveStraightCurvature(t *testing.T) {
	out := run(t, "2\n0\n0\n0\n4\n2\n0\n\n3\n")

	assert.Contains(t, out, "NEWX: 4\n")
	assert.Contains(t, out, "ARC ANGLE: 0 deg\n")
}

func TestCurveInvalidShape(t *testing.T) {
	out := run(t, "2\n0\n0\n0\n1\nx\n1\n1\n\n3\n")

	assert.Contains(t, out, "Invalid choice. Please try again.")
	assert.Contains(t, out, "Target Point")
}

func TestEndOfInput(t *testing.T) {
	run(t, "")
	run(t, "1\n0\n")
	run(t, "2\n0\n0\n0\n1\n")
	run(t, "1\n0\n0\n0\n10\n")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestReadError(t *testing.T) {
	var out bytes.Buffer
	err := New(geom.DefaultEngine(), failingReader{}, &out).Run()

	assert.EqualError(t, err, "broken pipe")
}

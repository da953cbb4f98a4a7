package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/notargets/emissview/solver"
)

// fakeSession is a scripted solver session recording every mutation.
type fakeSession struct {
	walls       []solver.Wall
	namedValues map[string]float64
	bcActive    bool
	dataValid   bool

	casesRead   []string
	initialized bool
	registers   map[string][]string
	expressions map[string]string
	contours    map[string]solver.ContourConfig
	displayed   []string
	exited      bool
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		namedValues: make(map[string]float64),
		registers:   make(map[string][]string),
		expressions: make(map[string]string),
		contours:    make(map[string]solver.ContourConfig),
	}
}

func (f *fakeSession) ReadCase(path string) error {
	f.casesRead = append(f.casesRead, path)
	return nil
}

func (f *fakeSession) Walls() ([]solver.Wall, error) { return f.walls, nil }

func (f *fakeSession) HasNamedExpression(name string) (bool, error) {
	_, ok := f.namedValues[name]
	return ok, nil
}

func (f *fakeSession) NamedExpressionValue(name string) (float64, error) {
	return f.namedValues[name], nil
}

func (f *fakeSession) AddNamedExpression(name, definition string) error {
	f.expressions[name] = definition
	return nil
}

func (f *fakeSession) AddBoundaryRegister(name string, walls []string) error {
	f.registers[name] = walls
	return nil
}

func (f *fakeSession) CreateContour(name string, cfg solver.ContourConfig) error {
	f.contours[name] = cfg
	return nil
}

func (f *fakeSession) DisplayContour(name string) error {
	f.displayed = append(f.displayed, name)
	return nil
}

func (f *fakeSession) BoundaryConditionsActive() (bool, error) { return f.bcActive, nil }
func (f *fakeSession) DataAvailable() (bool, error)            { return f.dataValid, nil }

func (f *fakeSession) Initialize() error {
	f.initialized = true
	return nil
}

func (f *fakeSession) Exit() error {
	f.exited = true
	return nil
}

func TestRunPreconditions(t *testing.T) {
	// Boundary conditions inactive: fail before any group, register,
	// expression or plot exists
	sess := newFakeSession()
	sess.bcActive = false
	rp := &RunParameters{CaseFile: "empty.cas.h5", Batch: true}
	err := run(sess, rp, strings.NewReader(""), zap.NewNop())
	assert.ErrorIs(t, err, solver.ErrBoundaryConditionsInactive)
	assert.Contains(t, err.Error(), "load a case file first")
	assert.Equal(t, []string{"empty.cas.h5"}, sess.casesRead)
	assert.Empty(t, sess.registers)
	assert.Empty(t, sess.expressions)
	assert.Empty(t, sess.contours)
	assert.Empty(t, sess.displayed)
}

func TestRunEndToEnd(t *testing.T) {
	sess := newFakeSession()
	sess.bcActive = true
	sess.dataValid = false
	sess.walls = []solver.Wall{
		{Name: "wall-a", Emissivity: solver.FloatValue(0.8)},
		{Name: "wall-b", Emissivity: solver.FloatValue(0.8)},
		{Name: "wall-c", Emissivity: solver.FloatValue(0.5)},
		{Name: "wall-d"}, // no emissivity: not radiating
	}
	dir := t.TempDir()
	rp := &RunParameters{
		CaseFile: "radiation.cas.h5",
		CSVFile:  filepath.Join(dir, "groups.csv"),
		HTMLFile: filepath.Join(dir, "groups.html"),
	}
	// Not batch: run blocks on the Enter prompt fed from stdin
	err := run(sess, rp, strings.NewReader("\n"), zap.NewNop())
	assert.NoError(t, err)

	// No data yet, so the solution was initialized first
	assert.True(t, sess.initialized)

	// One register per group over its walls
	assert.Equal(t, map[string][]string{
		"e__0_8": {"wall-a", "wall-b"},
		"e__0_5": {"wall-c"},
	}, sess.registers)

	// The synthesized expressions, exactly
	assert.Equal(t, "IF(e__0_8,1,0)+IF(e__0_5,1,0)", sess.expressions["overlay"])
	assert.Equal(t,
		"IF(AND(overlay<2,e__0_8),0.8,0)+IF(AND(overlay<2,e__0_5),0.5,0)",
		sess.expressions["emiss"])

	// Contour over the union of grouped walls; wall-d excluded
	cfg, ok := sess.contours["contour_emissivity"]
	assert.True(t, ok)
	assert.Equal(t, "expr:emiss", cfg.Field)
	assert.Equal(t, []string{"wall-a", "wall-b", "wall-c"}, cfg.Surfaces)
	assert.Equal(t, []string{"contour_emissivity"}, sess.displayed)

	// Reports landed next to the run
	assert.FileExists(t, rp.CSVFile)
	assert.FileExists(t, rp.HTMLFile)
}

func TestRunUnsupportedValue(t *testing.T) {
	// A wall referencing an unknown named expression aborts the run before
	// any solver mutation
	sess := newFakeSession()
	sess.bcActive = true
	sess.dataValid = true
	sess.walls = []solver.Wall{
		{Name: "wall-a", Emissivity: solver.RefValue("undefined-expr")},
	}
	rp := &RunParameters{CaseFile: "radiation.cas.h5", Batch: true}
	err := run(sess, rp, strings.NewReader(""), zap.NewNop())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported emissivity type")
	assert.Contains(t, err.Error(), "undefined-expr")
	assert.Empty(t, sess.registers)
	assert.Empty(t, sess.expressions)
	assert.Empty(t, sess.contours)
	assert.Empty(t, sess.displayed)
}

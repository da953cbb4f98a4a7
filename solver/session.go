package solver

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrBoundaryConditionsInactive means no case with boundary conditions is
// loaded in the session.
var ErrBoundaryConditionsInactive = errors.New("boundary conditions are not active: load a case file first")

type RawKind uint8

const (
	KindAbsent RawKind = iota // wall has no emissivity setting
	KindInt
	KindFloat
	KindReference // named expression reference
)

func (k RawKind) String() string {
	switch k {
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindReference:
		return "named expression reference"
	default:
		return "absent"
	}
}

// RawValue is an emissivity setting exactly as the solver reports it, before
// normalization. The solver may hand back a literal integer, a literal float,
// or the name of one of its own named expressions.
type RawValue struct {
	Kind      RawKind
	Int       int64
	Float     float64
	Reference string
}

func IntValue(n int64) RawValue     { return RawValue{Kind: KindInt, Int: n} }
func FloatValue(x float64) RawValue { return RawValue{Kind: KindFloat, Float: x} }
func RefValue(name string) RawValue { return RawValue{Kind: KindReference, Reference: name} }

func (v RawValue) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindReference:
		return fmt.Sprintf("%q", v.Reference)
	default:
		return "<absent>"
	}
}

// Wall is one wall boundary zone and its emissivity setting.
type Wall struct {
	Name       string
	Emissivity RawValue
}

// The session is injected into each component as the narrowest capability it
// needs, so that the external solver never becomes ambient state.

type BoundaryReader interface {
	Walls() ([]Wall, error)
}

type ExpressionReader interface {
	HasNamedExpression(name string) (bool, error)
	NamedExpressionValue(name string) (float64, error)
}

type ExpressionWriter interface {
	AddNamedExpression(name, definition string) error
}

type RegisterWriter interface {
	// AddBoundaryRegister creates a boundary-type cell register selecting the
	// given wall zones.
	AddBoundaryRegister(name string, walls []string) error
}

// ColorMapConfig mirrors the solver's color-map block of a contour object.
type ColorMapConfig struct {
	Size     int
	Color    string
	LogScale bool
	Format   string
	Length   float64
	UserSkip int
}

// ContourConfig is the fixed configuration schema of a contour graphics
// object as the solver consumes it.
type ContourConfig struct {
	Field      string
	Filled     bool
	Surfaces   []string
	Coloring   string
	NodeValues bool
	ColorMap   ColorMapConfig
}

type GraphicsWriter interface {
	CreateContour(name string, cfg ContourConfig) error
	DisplayContour(name string) error
}

type SolutionControl interface {
	BoundaryConditionsActive() (bool, error)
	// DataAvailable reports whether solution data exists for plotting.
	DataAvailable() (bool, error)
	Initialize() error
}

// Session is the full imperative surface of one live solver process.
type Session interface {
	BoundaryReader
	ExpressionReader
	ExpressionWriter
	RegisterWriter
	GraphicsWriter
	SolutionControl
	ReadCase(path string) error
	Exit() error
}

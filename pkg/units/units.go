// Package units parses the dimension strings used in component
// options, such as "455um", "0.5 mm" or "+1". Parsed lengths are
// normalized to millimeters, the design-unit convention used across
// the toolkit.
package units

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// dimensionLexer defines the lexical structure of a dimension string:
// a signed decimal number optionally followed by a unit suffix.
var dimensionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t]+`},
	{Name: "Number", Pattern: `[-+]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][-+]?[0-9]+)?`},
	{Name: "Unit", Pattern: `[a-zA-Z]+`},
})

// dimension is the parse target: a value with an optional unit.
type dimension struct {
	Value float64 `parser:"@Number"`
	Unit  string  `parser:"@Unit?"`
}

var dimensionParser = participle.MustBuild[dimension](
	participle.Lexer(dimensionLexer),
	participle.Elide("Whitespace"),
)

// Scale factors to millimeters for every supported unit suffix.
var unitToMM = map[string]float64{
	"nm":  1e-6,
	"um":  1e-3,
	"mm":  1.0,
	"cm":  10.0,
	"m":   1000.0,
	"mil": 0.0254,
	"in":  25.4,
}

// ParseLength parses a dimension string and returns its value in
// millimeters. A bare number is taken to be in millimeters already.
func ParseLength(s string) (float64, error) {
	dim, err := dimensionParser.ParseString("", s)
	if err != nil {
		return 0, fmt.Errorf("invalid dimension %q: %w", s, err)
	}
	if dim.Unit == "" {
		return dim.Value, nil
	}
	scale, ok := unitToMM[dim.Unit]
	if !ok {
		return 0, fmt.Errorf("invalid dimension %q: unknown unit %q", s, dim.Unit)
	}
	return dim.Value * scale, nil
}

// ParseNumber parses a dimensionless value such as a placement flag
// ("+1", "-1", "0"). A unit suffix is an error.
func ParseNumber(s string) (float64, error) {
	dim, err := dimensionParser.ParseString("", s)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	if dim.Unit != "" {
		return 0, fmt.Errorf("invalid number %q: unexpected unit %q", s, dim.Unit)
	}
	return dim.Value, nil
}

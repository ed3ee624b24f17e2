// Package qds reads and writes .qds design files: S-expression files
// holding the geometry tables, pins and component names of a design.
package qds

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/design"
	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/geom"
)

// FormatVersion is the current .qds file format version.
const FormatVersion = 1

// Write serializes a design to the writer in .qds format. Coordinates
// are written with full float64 round-trip precision so a parse of the
// output reproduces the geometry exactly.
func Write(w io.Writer, d *design.Design) error {
	var sb strings.Builder

	sb.WriteString("(qeda_design\n")
	fmt.Fprintf(&sb, "  (version %d)\n", FormatVersion)
	sb.WriteString("  (generator oqe)\n")
	fmt.Fprintf(&sb, "  (design (name %s) (chip %s))\n", quote(d.Name), quote(d.Chip))

	if names := d.ComponentNames(); len(names) > 0 {
		sb.WriteString("  (components")
		for _, name := range names {
			sb.WriteByte(' ')
			sb.WriteString(quote(name))
		}
		sb.WriteString(")\n")
	}

	for _, entry := range d.Polys {
		fmt.Fprintf(&sb, "  (poly (component %s) (name %s) (chip %s) (layer %d) (subtract %s)\n",
			quote(entry.Component), quote(entry.Name), quote(entry.Chip),
			entry.Layer, yesNo(entry.Subtract))
		writePoints(&sb, []geom.Point(entry.Polygon))
		sb.WriteString(")\n")
	}

	for _, entry := range d.Paths {
		fmt.Fprintf(&sb, "  (path (component %s) (name %s) (chip %s) (layer %d) (subtract %s) (width %s)\n",
			quote(entry.Component), quote(entry.Name), quote(entry.Chip),
			entry.Layer, yesNo(entry.Subtract), formatFloat(entry.Width))
		writePoints(&sb, []geom.Point(entry.Path))
		sb.WriteString(")\n")
	}

	for _, entry := range d.Junctions {
		fmt.Fprintf(&sb, "  (junction (component %s) (name %s) (chip %s) (layer %d) (width %s)\n",
			quote(entry.Component), quote(entry.Name), quote(entry.Chip),
			entry.Layer, formatFloat(entry.Width))
		writePoints(&sb, []geom.Point(entry.Path))
		sb.WriteString(")\n")
	}

	for _, pin := range d.Pins {
		fmt.Fprintf(&sb, "  (pin (component %s) (name %s) (width %s)\n",
			quote(pin.Component), quote(pin.Name), formatFloat(pin.Width))
		writePoints(&sb, pin.Points[:])
		sb.WriteString(")\n")
	}

	sb.WriteString(")\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteFile serializes a design to a .qds file.
func WriteFile(filename string, d *design.Design) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	return Write(f, d)
}

func writePoints(sb *strings.Builder, pts []geom.Point) {
	sb.WriteString("    (pts")
	for _, p := range pts {
		fmt.Fprintf(sb, " (xy %s %s)", formatFloat(p.X), formatFloat(p.Y))
	}
	sb.WriteString(")")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, ch := range s {
		switch ch {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteRune(ch)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(ch)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

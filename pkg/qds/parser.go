package qds

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/design"
	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/geom"
	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/qds/qdsexp"
)

// ParseFile reads and parses a .qds design file.
func ParseFile(filename string) (*design.Design, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a design from an io.Reader in .qds format.
func Parse(r io.Reader) (*design.Design, error) {
	nodes, err := qdsexp.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse s-expression: %w", err)
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("empty file or no valid s-expressions found")
	}

	root, ok := nodes[0].(qdsexp.List)
	if !ok || root.Head() != "qeda_design" {
		return nil, fmt.Errorf("not a design file: expected (qeda_design ...)")
	}

	if node, found := findNode(root, "version"); found {
		version, err := intAt(node, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to parse version: %w", err)
		}
		if version > FormatVersion {
			return nil, fmt.Errorf("unsupported format version %d (newest supported is %d)", version, FormatVersion)
		}
	}

	d := design.NewDesign("")
	if node, found := findNode(root, "design"); found {
		if nameNode, ok := findNode(node, "name"); ok {
			d.Name, _ = atomAt(nameNode, 1)
		}
		if chipNode, ok := findNode(node, "chip"); ok {
			d.Chip, _ = atomAt(chipNode, 1)
		}
	}

	if node, found := findNode(root, "components"); found {
		for _, item := range node[1:] {
			name, ok := item.(qdsexp.Atom)
			if !ok {
				return nil, fmt.Errorf("components list holds a non-atom entry")
			}
			if err := d.RecordComponent(string(name)); err != nil {
				return nil, err
			}
		}
	}

	for _, node := range findAll(root, "poly") {
		entry, err := parseGeometryNode(node)
		if err != nil {
			return nil, fmt.Errorf("failed to parse poly: %w", err)
		}
		d.Polys = append(d.Polys, design.PolyEntry{
			Component: entry.component,
			Name:      entry.name,
			Chip:      entry.chip,
			Layer:     entry.layer,
			Subtract:  entry.subtract,
			Polygon:   geom.Polygon(entry.pts),
		})
	}

	for _, node := range findAll(root, "path") {
		entry, err := parseGeometryNode(node)
		if err != nil {
			return nil, fmt.Errorf("failed to parse path: %w", err)
		}
		d.Paths = append(d.Paths, design.PathEntry{
			Component: entry.component,
			Name:      entry.name,
			Chip:      entry.chip,
			Layer:     entry.layer,
			Subtract:  entry.subtract,
			Width:     entry.width,
			Path:      geom.LineString(entry.pts),
		})
	}

	for _, node := range findAll(root, "junction") {
		entry, err := parseGeometryNode(node)
		if err != nil {
			return nil, fmt.Errorf("failed to parse junction: %w", err)
		}
		d.Junctions = append(d.Junctions, design.JunctionEntry{
			Component: entry.component,
			Name:      entry.name,
			Chip:      entry.chip,
			Layer:     entry.layer,
			Width:     entry.width,
			Path:      geom.LineString(entry.pts),
		})
	}

	for _, node := range findAll(root, "pin") {
		entry, err := parseGeometryNode(node)
		if err != nil {
			return nil, fmt.Errorf("failed to parse pin: %w", err)
		}
		if len(entry.pts) != 2 {
			return nil, fmt.Errorf("pin %q has %d points, want 2", entry.name, len(entry.pts))
		}
		d.AddPin(entry.component, entry.name, entry.pts[0], entry.pts[1], entry.width)
	}

	return d, nil
}

// geometryNode is the common field set shared by poly, path, junction
// and pin nodes.
type geometryNode struct {
	component string
	name      string
	chip      string
	layer     int
	subtract  bool
	width     float64
	pts       []geom.Point
}

func parseGeometryNode(node qdsexp.List) (geometryNode, error) {
	entry := geometryNode{chip: design.DefaultChip, layer: design.DefaultLayer}
	var err error

	if sub, found := findNode(node, "component"); found {
		if entry.component, err = atomAt(sub, 1); err != nil {
			return entry, err
		}
	}
	if sub, found := findNode(node, "name"); found {
		if entry.name, err = atomAt(sub, 1); err != nil {
			return entry, err
		}
	}
	if sub, found := findNode(node, "chip"); found {
		if entry.chip, err = atomAt(sub, 1); err != nil {
			return entry, err
		}
	}
	if sub, found := findNode(node, "layer"); found {
		if entry.layer, err = intAt(sub, 1); err != nil {
			return entry, err
		}
	}
	if sub, found := findNode(node, "subtract"); found {
		flag, err := atomAt(sub, 1)
		if err != nil {
			return entry, err
		}
		entry.subtract = flag == "yes"
	}
	if sub, found := findNode(node, "width"); found {
		if entry.width, err = floatAt(sub, 1); err != nil {
			return entry, err
		}
	}

	ptsNode, found := findNode(node, "pts")
	if !found {
		return entry, fmt.Errorf("node %q is missing its pts list", node.Head())
	}
	for _, item := range ptsNode[1:] {
		xy, ok := item.(qdsexp.List)
		if !ok || xy.Head() != "xy" {
			return entry, fmt.Errorf("pts list holds a non-xy entry")
		}
		x, err := floatAt(xy, 1)
		if err != nil {
			return entry, err
		}
		y, err := floatAt(xy, 2)
		if err != nil {
			return entry, err
		}
		entry.pts = append(entry.pts, geom.Point{X: x, Y: y})
	}

	return entry, nil
}

// findNode searches the children of a list for a sublist starting with
// the given key, e.g. findNode(root, "version") finds (version 1).
func findNode(l qdsexp.List, key string) (qdsexp.List, bool) {
	for _, item := range l {
		if sub, ok := item.(qdsexp.List); ok && sub.Head() == key {
			return sub, true
		}
	}
	return nil, false
}

// findAll returns every child sublist starting with the given key.
func findAll(l qdsexp.List, key string) []qdsexp.List {
	var out []qdsexp.List
	for _, item := range l {
		if sub, ok := item.(qdsexp.List); ok && sub.Head() == key {
			out = append(out, sub)
		}
	}
	return out
}

// atomAt returns the atom at the given index of a list.
func atomAt(l qdsexp.List, index int) (string, error) {
	if index < 0 || index >= len(l) {
		return "", fmt.Errorf("index %d out of bounds (length %d)", index, len(l))
	}
	a, ok := l[index].(qdsexp.Atom)
	if !ok {
		return "", fmt.Errorf("expected atom at index %d of %q node", index, l.Head())
	}
	return string(a), nil
}

func floatAt(l qdsexp.List, index int) (float64, error) {
	s, err := atomAt(l, index)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("expected number at index %d of %q node: %w", index, l.Head(), err)
	}
	return v, nil
}

func intAt(l qdsexp.List, index int) (int, error) {
	s, err := atomAt(l, index)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("expected integer at index %d of %q node: %w", index, l.Head(), err)
	}
	return v, nil
}

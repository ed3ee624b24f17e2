package qds

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/design"
	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/qlibrary/qubits"
)

func buildTestDesign(t *testing.T) *design.Design {
	t.Helper()

	opts := qubits.DefaultOptions()
	opts.CornerRadius = "20um"
	opts.ConnectionPads = map[string]qubits.ConnectionPadOptions{
		"bus":     {LocW: "+1", LocH: "+1"},
		"readout": {LocW: "0", LocH: "-1"},
	}

	d := design.NewDesign("roundtrip")
	if err := d.Add(qubits.New("Q1", &opts)); err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return d
}

func TestRoundTrip(t *testing.T) {
	d := buildTestDesign(t)

	var buf bytes.Buffer
	if err := Write(&buf, d); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	parsed, err := Parse(&buf)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if parsed.Name != d.Name || parsed.Chip != d.Chip {
		t.Fatalf("design header = %q/%q, want %q/%q", parsed.Name, parsed.Chip, d.Name, d.Chip)
	}
	if diff := cmp.Diff(d.ComponentNames(), parsed.ComponentNames()); diff != "" {
		t.Fatalf("component names mismatch (-want +got):\n%s", diff)
	}

	// Coordinates are written with round-trip precision, so the tables
	// must come back bit-for-bit.
	if diff := cmp.Diff(d.Polys, parsed.Polys); diff != "" {
		t.Fatalf("poly table mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(d.Paths, parsed.Paths); diff != "" {
		t.Fatalf("path table mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(d.Junctions, parsed.Junctions); diff != "" {
		t.Fatalf("junction table mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(d.Pins, parsed.Pins); diff != "" {
		t.Fatalf("pin table mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRejectsWrongRoot(t *testing.T) {
	_, err := Parse(strings.NewReader("(kicad_pcb (version 4))"))
	if err == nil || !strings.Contains(err.Error(), "not a design file") {
		t.Fatalf("wrong root error = %v", err)
	}
}

func TestParseRejectsNewerVersion(t *testing.T) {
	_, err := Parse(strings.NewReader("(qeda_design (version 99))"))
	if err == nil || !strings.Contains(err.Error(), "unsupported format version") {
		t.Fatalf("version error = %v", err)
	}
}

func TestParseEmptyInput(t *testing.T) {
	if _, err := Parse(strings.NewReader("")); err == nil {
		t.Fatal("empty input should fail")
	}
}

func TestWriteIsCommentedAndReadable(t *testing.T) {
	d := buildTestDesign(t)

	var buf bytes.Buffer
	if err := Write(&buf, d); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"(qeda_design", "(version 1)", `(name "pad_top")`, "(subtract yes)", `(pin (component "Q1") (name "bus")`} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

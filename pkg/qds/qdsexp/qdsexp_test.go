package qdsexp

import "testing"

func TestParseNested(t *testing.T) {
	nodes, err := ParseString(`(qeda_design (version 1) (pts (xy 0 0) (xy 1.5 -2)))`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("got %d top-level nodes, want 1", len(nodes))
	}

	root, ok := nodes[0].(List)
	if !ok {
		t.Fatalf("root is %T, want List", nodes[0])
	}
	if root.Head() != "qeda_design" {
		t.Fatalf("root head = %q, want qeda_design", root.Head())
	}
	if len(root) != 3 {
		t.Fatalf("root has %d elements, want 3", len(root))
	}

	pts, ok := root[2].(List)
	if !ok || pts.Head() != "pts" {
		t.Fatalf("third element = %v, want (pts ...)", root[2])
	}
	if len(pts) != 3 {
		t.Fatalf("pts has %d elements, want 3", len(pts))
	}
}

func TestParseQuotedAndComments(t *testing.T) {
	input := "# design header\n(name \"pad top\" (esc \"a\\\"b\"))\n"
	nodes, err := ParseString(input)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	root := nodes[0].(List)
	if got := string(root[1].(Atom)); got != "pad top" {
		t.Fatalf("quoted atom = %q, want %q", got, "pad top")
	}
	esc := root[2].(List)
	if got := string(esc[1].(Atom)); got != `a"b` {
		t.Fatalf("escaped atom = %q, want %q", got, `a"b`)
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"(unclosed", "extra)", `("unterminated`} {
		if _, err := ParseString(input); err == nil {
			t.Fatalf("ParseString(%q) should fail", input)
		}
	}
}

func TestString(t *testing.T) {
	nodes, err := ParseString("(a (b c) d)")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got := nodes[0].String(); got != "(a (b c) d)" {
		t.Fatalf("String() = %q", got)
	}
}

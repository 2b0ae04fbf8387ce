package script

import (
	"testing"

	"github.com/32bitkid/anotherworld/resource"
)

func scriptResource(id int, lines ...string) resource.Resource {
	s := resource.Script{}
	for i, text := range lines {
		s.Lines = append(s.Lines, resource.Line{Address: uint16(i * 4), Text: text})
	}
	return resource.Resource{ID: id, Class: resource.ClassScript, Payload: s}
}

func catalog(size int, scripts ...resource.Resource) []resource.Resource {
	out := make([]resource.Resource, size)
	for i := range out {
		out[i] = resource.Resource{ID: i, Class: resource.ClassPolygonBuffer, Payload: resource.Raw{}}
	}
	for _, s := range scripts {
		out[s.ID] = s
	}
	return out
}

func expectStrings(t *testing.T, expected, actual []string) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Fatalf("expected(%v) != actual(%v)", expected, actual)
	}
	for i := range expected {
		if expected[i] != actual[i] {
			t.Fatalf("expected(%v) != actual(%v)", expected, actual)
		}
	}
}

func TestCrossReferenceDrawPoly(t *testing.T) {
	parts := resource.PartTable{{ID: 0, Palette: 0x14, Script: 5, Poly1: 0x16}}
	resources := catalog(0x17, scriptResource(5, "DRAWPOLY1 00A0, 10, 20, 64"))

	out := CrossReference(Classify(resources, nil), parts)

	line := out[5].Payload.(resource.Script).Lines[0]
	if line.Draw == nil || *line.Draw != (resource.DrawParams{Buffer: 1, Offset: "00A0", X: "10", Y: "20", Zoom: "64"}) {
		t.Fatalf("unexpected draw params %+v", line.Draw)
	}
	expectStrings(t, []string{"00A0"}, out[0x16].Offsets)

	if out[5].Part == nil || *out[5].Part != 0 {
		t.Fatalf("expected script to belong to part 0, got %v", out[5].Part)
	}
	for i, res := range out {
		if i != 0x16 && res.Offsets != nil {
			t.Fatalf("%d: unexpected offsets %v", i, res.Offsets)
		}
	}
}

func TestOffsetsSortedAndDistinct(t *testing.T) {
	parts := resource.PartTable{
		{ID: 2, Script: 1, Poly1: 3, Poly2: 4},
		{ID: 3, Script: 2, Poly1: 5, Poly2: 4},
	}
	a := scriptResource(1,
		"DRAWPOLY1 0100, 00, 00, 40",
		"DRAWPOLY2 0F00, 00, 00, 40",
		"DRAWPOLY1 0020, 00, 00, 40",
		"DRAWPOLY1 0100, 10, 10, 40",
	)
	b := scriptResource(2,
		"DRAWPOLY2 00A0, 00, 00, 40",
		"DRAWPOLY2 0F00, 00, 00, 40",
		"DRAWPOLY1 FFFE, 00, 00, 40",
	)

	forward := Offsets(Classify(catalog(6, a, b), nil), parts)

	// the same scripts seen in the opposite order
	reversed := Classify(catalog(6, a, b), nil)
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	backward := Offsets(reversed, parts)

	for _, table := range []map[int][]string{forward, backward} {
		if len(table) != 3 {
			t.Fatalf("expected(3) != actual(%d) buffers", len(table))
		}
		expectStrings(t, []string{"0020", "0100"}, table[3])
		expectStrings(t, []string{"00A0", "0F00"}, table[4])
		expectStrings(t, []string{"FFFE"}, table[5])
	}
}

func TestCrossReferenceSkipsUnmapped(t *testing.T) {
	parts := resource.PartTable{{ID: 0, Script: 1, Poly1: 2, Poly2: 0}}
	resources := catalog(4,
		scriptResource(1, "DRAWPOLY2 0010, 00, 00, 40"),
		scriptResource(3, "DRAWPOLY1 0020, 00, 00, 40"),
	)

	out := CrossReference(Classify(resources, nil), parts)
	for _, res := range out {
		if len(res.Offsets) != 0 {
			t.Fatalf("%d: unexpected offsets %v", res.ID, res.Offsets)
		}
	}
	if out[3].Part != nil {
		t.Fatal("unmapped script should have no part")
	}
}

func TestCrossReferenceLinksTargets(t *testing.T) {
	resources := catalog(1, scriptResource(0,
		"CALL 0008",
		"JMP 0000",
		"CJNZ r[00], 01, 0100",
		"RET",
	))

	out := CrossReference(Classify(resources, nil), nil)
	lines := out[0].Payload.(resource.Script).Lines

	targets := []int{2, 0, -1}
	for i, expected := range targets {
		last := lines[i].Parts[len(lines[i].Parts)-1]
		if last.Role != resource.RoleAddress || last.Target != expected {
			t.Fatalf("%d: expected(%d) != actual(%+v)", i, expected, last)
		}
	}
}

func TestCrossReferenceLeavesInputUntouched(t *testing.T) {
	parts := resource.PartTable{{ID: 0, Script: 0, Poly1: 1}}
	classified := Classify(catalog(2, scriptResource(0, "DRAWPOLY1 0010, 00, 00, 40", "JMP 0000")), nil)

	_ = CrossReference(classified, parts)

	if classified[1].Offsets != nil || classified[0].Part != nil {
		t.Fatal("input resources were annotated")
	}
	if p := classified[0].Payload.(resource.Script).Lines[1].Parts[1]; p.Target != -1 {
		t.Fatalf("input address target changed to %d", p.Target)
	}
}

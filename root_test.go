package anotherworld

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/32bitkid/anotherworld/internal/testsupport"
	"github.com/32bitkid/anotherworld/resource"
)

func TestInspect(t *testing.T) {
	s := new(testsupport.Snapshot).
		Sound(0, []byte{0x10, 0x20}).
		Palette(3, [16]testsupport.RGB{{0xFF, 0, 0}}).
		Script(4,
			testsupport.Line{Addr: 0x0000, Text: "SETPAL 0000"},
			testsupport.Line{Addr: 0x0003, Text: "LDRES 0000"},
			testsupport.Line{Addr: 0x0006, Text: "DRAWPOLY1 00A0, 10, 20, 64"},
			testsupport.Line{Addr: 0x000B, Text: "DRAWPOLY1 0040, 10, 20, 64"},
			testsupport.Line{Addr: 0x0010, Text: "CALL 0003"},
			testsupport.Line{Addr: 0x0013, Text: "LDRES 0010"},
		).
		Entry(5, make([]byte, 16))

	in := NewInspector()
	in.Parts = resource.PartTable{{ID: 0, Palette: 1, Script: 2, Poly1: 3}}

	resources, err := in.Inspect(s.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if len(resources) != 4 {
		t.Fatalf("expected(4) != actual(%d)", len(resources))
	}

	lines := resources[2].Payload.(resource.Script).Lines
	if lines[0].Parts[1].Role != resource.RolePaletteRef || lines[0].Parts[1].Value != "00" {
		t.Fatalf("unexpected SETPAL parts %+v", lines[0].Parts)
	}
	if lines[1].Parts[1].Role != resource.RoleSoundRef {
		t.Fatalf("unexpected LDRES parts %+v", lines[1].Parts)
	}
	if lines[4].Parts[1].Target != 1 {
		t.Fatalf("CALL should target line 1, got %d", lines[4].Parts[1].Target)
	}
	if lines[5].Parts[1].Role != resource.RolePartRef {
		t.Fatalf("unexpected LDRES parts %+v", lines[5].Parts)
	}

	offsets := resources[3].Offsets
	if len(offsets) != 2 || offsets[0] != "0040" || offsets[1] != "00A0" {
		t.Fatalf("unexpected offsets %v", offsets)
	}
	if resources[2].Part == nil || *resources[2].Part != 0 {
		t.Fatalf("unexpected part %v", resources[2].Part)
	}
}

func TestInspectLogsDegradedOperands(t *testing.T) {
	s := new(testsupport.Snapshot).Script(4, testsupport.Line{Addr: 0x20, Text: "CALL nowhere"})

	var buf bytes.Buffer
	in := NewInspector()
	in.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	resources, err := in.Inspect(s.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if p := resources[0].Payload.(resource.Script).Lines[0].Parts[1]; p.Role != resource.RoleText {
		t.Fatalf("expected text part, got %+v", p)
	}
	if out := buf.String(); !strings.Contains(out, "malformed operand") || !strings.Contains(out, "address=0020") {
		t.Fatalf("missing debug record in %q", out)
	}
}

func TestInspectStructuralError(t *testing.T) {
	snapshot := new(testsupport.Snapshot).Script(4, testsupport.Line{Text: "RET"}).Bytes()

	_, err := NewInspector().Inspect(snapshot[:len(snapshot)-1])
	if !errors.Is(err, resource.ErrBufferUnderrun) {
		t.Fatalf("expected underrun, got %v", err)
	}
}

func TestInspectFile(t *testing.T) {
	path := new(testsupport.Snapshot).Entry(1, []byte{1, 2, 3}).WriteFile(t)

	resources, err := NewInspector().InspectFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(resources) != 1 || resources[0].Class != resource.ClassMusic {
		t.Fatalf("unexpected resources %+v", resources)
	}
}

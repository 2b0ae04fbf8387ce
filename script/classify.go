// Package script classifies the engine's disassembled script lines and links
// them to the resources and polygon buffer offsets they use.
package script

import (
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/32bitkid/anotherworld/resource"
)

type operand uint8

const (
	opAddress operand = iota
	opText
	opPalette
	opResource
	opSound
	opPolyOffset
	opTail
	opDrawTail
)

type shape struct {
	operands []operand
	display  string
	draw     int
}

var conditionalJump = shape{operands: []operand{opText, opText, opAddress}}

var shapes = map[string]shape{
	"CALL":      {operands: []operand{opAddress}},
	"JMP":       {operands: []operand{opAddress}},
	"JNZ":       {operands: []operand{opText, opAddress}},
	"CJZ":       conditionalJump,
	"CJNZ":      conditionalJump,
	"CJG":       conditionalJump,
	"CJGE":      conditionalJump,
	"CJL":       conditionalJump,
	"CJLE":      conditionalJump,
	"SETVEC":    {operands: []operand{opText, opAddress}},
	"SETPAL":    {operands: []operand{opPalette}},
	"LDRES":     {operands: []operand{opResource}},
	"SND":       {operands: []operand{opSound, opTail}},
	"DRAWPOLY1": {operands: []operand{opPolyOffset, opDrawTail}, display: "DRAWPOLY", draw: 1},
	"DRAWPOLY2": {operands: []operand{opPolyOffset, opDrawTail}, display: "DRAWPOLY", draw: 2},
}

// operandHandlers parse a single token. A false result means the token
// doesn't have the expected form.
var operandHandlers = map[operand]func(cl *classifier, tok string) (resource.InstructionPart, bool){
	opAddress: func(_ *classifier, tok string) (resource.InstructionPart, bool) {
		v := strings.TrimSuffix(tok, ",")
		if !isHex(v) {
			return resource.InstructionPart{}, false
		}
		return part(resource.RoleAddress, v), true
	},
	opText: func(_ *classifier, tok string) (resource.InstructionPart, bool) {
		return part(resource.RoleText, tok), true
	},
	opPalette: func(_ *classifier, tok string) (resource.InstructionPart, bool) {
		if len(tok) < 2 || !isHex(tok[:2]) {
			return resource.InstructionPart{}, false
		}
		return part(resource.RolePaletteRef, tok[:2]), true
	},
	opResource: func(cl *classifier, tok string) (resource.InstructionPart, bool) {
		v := strings.TrimSuffix(tok, ",")
		id, err := strconv.ParseUint(v, 16, 16)
		if err != nil {
			return resource.InstructionPart{}, false
		}
		// ids past the end of the catalog are game parts, not resources
		if int(id) >= len(cl.resources) {
			return part(resource.RolePartRef, v), true
		}
		role, ok := resource.RefRole(cl.resources[id].Class)
		if !ok || len(v) < 4 {
			return resource.InstructionPart{}, false
		}
		return part(role, v[2:4]), true
	},
	opSound: func(_ *classifier, tok string) (resource.InstructionPart, bool) {
		if len(tok) < 4 || !isHex(tok[2:4]) {
			return resource.InstructionPart{}, false
		}
		return part(resource.RoleSoundRef, tok[2:4]), true
	},
	opPolyOffset: func(_ *classifier, tok string) (resource.InstructionPart, bool) {
		if len(tok) < 4 || !isHex(tok[:4]) {
			return resource.InstructionPart{}, false
		}
		return part(resource.RolePolygonBufferRef, tok[:4]), true
	},
}

func part(role resource.Role, value string) resource.InstructionPart {
	return resource.InstructionPart{Role: role, Value: value, Target: -1}
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'A' && r <= 'F':
		case r >= 'a' && r <= 'f':
		default:
			return false
		}
	}
	return true
}

type classifier struct {
	resources []resource.Resource
	log       *slog.Logger
	id        int
}

// Classify tags the tokens of every script line in resources. LDRES
// operands are resolved against the same resource list. The input is left
// untouched; script entries in the result carry new lines.
func Classify(resources []resource.Resource, log *slog.Logger) []resource.Resource {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	out := make([]resource.Resource, len(resources))
	for i, res := range resources {
		out[i] = res
		s, ok := res.Payload.(resource.Script)
		if !ok {
			continue
		}

		cl := classifier{resources: resources, log: log, id: res.ID}
		lines := make([]resource.Line, len(s.Lines))
		for j, l := range s.Lines {
			lines[j] = cl.line(l)
		}
		out[i].Payload = resource.Script{Lines: lines}
	}
	return out
}

// ClassifyLine tags a single line without any catalog to resolve LDRES
// against; every LDRES operand is therefore a part reference.
func ClassifyLine(l resource.Line) resource.Line {
	cl := classifier{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	return cl.line(l)
}

func (cl *classifier) line(l resource.Line) resource.Line {
	out := resource.Line{Address: l.Address, Text: l.Text}

	tokens := strings.Fields(l.Text)
	if len(tokens) == 0 {
		return out
	}

	opcode, rest := tokens[0], tokens[1:]
	sh, known := shapes[opcode]
	if !known {
		sh = shape{operands: []operand{opTail}}
	}

	display := opcode
	if sh.display != "" {
		display = sh.display
	}
	parts := []resource.InstructionPart{part(resource.RoleOpcode, display)}

	malformed := false
	for _, o := range sh.operands {
		switch o {
		case opTail:
			if len(rest) > 0 {
				parts = append(parts, part(resource.RoleText, strings.Join(rest, " ")))
			}
			rest = nil
			continue
		case opDrawTail:
			parts = append(parts, part(resource.RoleText, ", "+strings.Join(rest, " ")))
			rest = nil
			continue
		}

		if len(rest) == 0 {
			cl.degraded(l, "missing operand")
			malformed = true
			break
		}

		p, ok := operandHandlers[o](cl, rest[0])
		if !ok {
			cl.degraded(l, "malformed operand", slog.String("operand", rest[0]))
			p = part(resource.RoleText, rest[0])
			malformed = true
		}
		parts = append(parts, p)
		rest = rest[1:]
	}

	if len(rest) > 0 {
		parts = append(parts, part(resource.RoleText, strings.Join(rest, " ")))
	}
	out.Parts = parts

	if sh.draw != 0 && !malformed {
		out.Draw = cl.drawParams(l, sh.draw, tokens)
	}

	return out
}

// drawParams reads "DRAWPOLYn OFFS, X, Y, ZOOM". X, Y and ZOOM may be "??"
// when the engine couldn't resolve them statically.
func (cl *classifier) drawParams(l resource.Line, buffer int, tokens []string) *resource.DrawParams {
	if len(tokens) < 5 {
		cl.degraded(l, "incomplete draw parameters")
		return nil
	}
	return &resource.DrawParams{
		Buffer: buffer,
		Offset: tokens[1][:4],
		X:      strings.TrimSuffix(tokens[2], ","),
		Y:      strings.TrimSuffix(tokens[3], ","),
		Zoom:   strings.TrimSuffix(tokens[4], ","),
	}
}

func (cl *classifier) degraded(l resource.Line, msg string, attrs ...any) {
	args := append([]any{
		slog.Int("resource", cl.id),
		slog.String("address", l.AddressHex()),
		slog.String("text", l.Text),
	}, attrs...)
	cl.log.Debug(msg, args...)
}

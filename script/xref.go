package script

import (
	"sort"
	"strconv"

	"github.com/32bitkid/anotherworld/resource"
)

// Offsets collects, for each polygon buffer, the distinct offsets that
// DRAWPOLY lines draw from it. A script is tied to its buffers through the
// part that runs it; scripts outside every part, and draw variants whose
// buffer id is zero, are skipped. Each list is sorted.
func Offsets(resources []resource.Resource, parts resource.PartTable) map[int][]string {
	seen := make(map[int]map[string]struct{})

	for _, res := range resources {
		s, ok := res.Payload.(resource.Script)
		if !ok {
			continue
		}
		p, ok := parts.ByScript(res.ID)
		if !ok {
			continue
		}
		for _, l := range s.Lines {
			if l.Draw == nil {
				continue
			}
			buffer, ok := p.PolyBuffer(l.Draw.Buffer)
			if !ok {
				continue
			}
			if seen[buffer] == nil {
				seen[buffer] = make(map[string]struct{})
			}
			seen[buffer][l.Draw.Offset] = struct{}{}
		}
	}

	table := make(map[int][]string, len(seen))
	for buffer, set := range seen {
		offsets := make([]string, 0, len(set))
		for o := range set {
			offsets = append(offsets, o)
		}
		// offsets are fixed width hex, so string order is numeric order
		sort.Strings(offsets)
		table[buffer] = offsets
	}
	return table
}

// CrossReference annotates classified resources: polygon buffers receive
// their offsets, scripts record the part that runs them, and address
// operands point at the line they name. The input is left untouched.
func CrossReference(resources []resource.Resource, parts resource.PartTable) []resource.Resource {
	table := Offsets(resources, parts)

	out := make([]resource.Resource, len(resources))
	for i, res := range resources {
		out[i] = res

		if offsets, ok := table[res.ID]; ok {
			out[i].Offsets = offsets
		}

		s, ok := res.Payload.(resource.Script)
		if !ok {
			continue
		}
		if p, ok := parts.ByScript(res.ID); ok {
			id := p.ID
			out[i].Part = &id
		}
		out[i].Payload = resource.Script{Lines: linkTargets(s.Lines)}
	}
	return out
}

func linkTargets(lines []resource.Line) []resource.Line {
	index := make(map[uint16]int, len(lines))
	for i, l := range lines {
		if _, ok := index[l.Address]; !ok {
			index[l.Address] = i
		}
	}

	out := make([]resource.Line, len(lines))
	for i, l := range lines {
		out[i] = l
		if len(l.Parts) == 0 {
			continue
		}
		parts := make([]resource.InstructionPart, len(l.Parts))
		copy(parts, l.Parts)
		for j, p := range parts {
			if p.Role != resource.RoleAddress {
				continue
			}
			addr, err := strconv.ParseUint(p.Value, 16, 16)
			if err != nil {
				continue
			}
			if target, ok := index[uint16(addr)]; ok {
				parts[j].Target = target
			}
		}
		out[i].Parts = parts
	}
	return out
}

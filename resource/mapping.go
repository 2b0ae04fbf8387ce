package resource

// ClassTable maps catalog type codes to asset classes.
type ClassTable map[uint8]Class

// Lookup returns the class for code, or ClassUnknown when the code is not
// in the table.
func (t ClassTable) Lookup(code uint8) Class {
	if c, ok := t[code]; ok {
		return c
	}
	return ClassUnknown
}

// Part groups the resources the engine loads together for one chapter of
// the game. A zero polygon buffer id means the part has no such buffer.
type Part struct {
	ID      int
	Palette int
	Script  int
	Poly1   int
	Poly2   int
}

// PolyBuffer returns the polygon buffer id for a draw variant (1 or 2).
func (p Part) PolyBuffer(selector int) (int, bool) {
	var id int
	switch selector {
	case 1:
		id = p.Poly1
	case 2:
		id = p.Poly2
	}
	return id, id != 0
}

type PartTable []Part

// ByScript finds the part whose script resource is id.
func (t PartTable) ByScript(id int) (Part, bool) {
	for _, p := range t {
		if p.Script == id {
			return p, true
		}
	}
	return Part{}, false
}

// Tables mirroring the data files shipped with the game.
var Defaults = struct {
	Classes ClassTable
	Parts   PartTable
}{
	Classes: ClassTable{
		0: ClassSound,
		1: ClassMusic,
		2: ClassBitmap,
		3: ClassPalette,
		4: ClassScript,
		5: ClassPolygonBuffer,
	},
	Parts: PartTable{
		{ID: 0, Palette: 0x14, Script: 0x15, Poly1: 0x16, Poly2: 0},
		{ID: 1, Palette: 0x17, Script: 0x18, Poly1: 0x19, Poly2: 0},
		{ID: 2, Palette: 0x1a, Script: 0x1b, Poly1: 0x1c, Poly2: 0x11},
		{ID: 3, Palette: 0x1d, Script: 0x1e, Poly1: 0x1f, Poly2: 0x11},
		{ID: 4, Palette: 0x20, Script: 0x21, Poly1: 0x22, Poly2: 0x11},
		{ID: 5, Palette: 0x23, Script: 0x24, Poly1: 0x25, Poly2: 0},
		{ID: 6, Palette: 0x26, Script: 0x27, Poly1: 0x28, Poly2: 0x11},
	},
}

package resource

import "encoding/binary"

// Role is what an instruction token refers to.
type Role uint8

const (
	RoleOpcode Role = iota
	RoleAddress
	RoleText
	RolePaletteRef
	RoleSoundRef
	RolePolygonBufferRef
	RolePartRef
	RoleMusicRef
	RoleBitmapRef
	RoleScriptRef
)

func (r Role) String() string {
	switch r {
	case RoleOpcode:
		return "opcode"
	case RoleAddress:
		return "addr"
	case RoleText:
		return "text"
	case RolePaletteRef:
		return "palette"
	case RoleSoundRef:
		return "sound"
	case RolePolygonBufferRef:
		return "polyBuffer"
	case RolePartRef:
		return "part"
	case RoleMusicRef:
		return "music"
	case RoleBitmapRef:
		return "bitmap"
	case RoleScriptRef:
		return "script"
	}
	return "unknown"
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// RefRole is the role of an operand that loads a resource of class c. The
// second result is false for classes nothing can refer to.
func RefRole(c Class) (Role, bool) {
	switch c {
	case ClassSound:
		return RoleSoundRef, true
	case ClassMusic:
		return RoleMusicRef, true
	case ClassBitmap:
		return RoleBitmapRef, true
	case ClassPalette:
		return RolePaletteRef, true
	case ClassScript:
		return RoleScriptRef, true
	case ClassPolygonBuffer:
		return RolePolygonBufferRef, true
	}
	return RoleText, false
}

// InstructionPart is one classified token of a script line. Target is only
// meaningful for RoleAddress: the index of the line at that address, or -1.
type InstructionPart struct {
	Role   Role   `json:"type"`
	Value  string `json:"value"`
	Target int    `json:"target"`
}

type DrawParams struct {
	Buffer int    `json:"bufferId"`
	Offset string `json:"offset"`
	X      string `json:"x"`
	Y      string `json:"y"`
	Zoom   string `json:"zoom"`
}

type Line struct {
	Address uint16            `json:"address"`
	Text    string            `json:"asmCode"`
	Parts   []InstructionPart `json:"parts,omitempty"`
	Draw    *DrawParams       `json:"params,omitempty"`
}

func (l Line) AddressHex() string {
	return Hex(int(l.Address), 4)
}

// DecodeScript reads the engine's disassembly listing:
//
//	u16 LE  line count
//	repeat:
//	  u16 LE  address
//	  u8      text length
//	  []byte  text
func DecodeScript(c *Cursor, size uint16) (Payload, error) {
	count, err := c.ReadU16(binary.LittleEndian)
	if err != nil {
		return nil, err
	}

	lines := make([]Line, 0, count)
	for i := 0; i < int(count); i++ {
		addr, err := c.ReadU16(binary.LittleEndian)
		if err != nil {
			return nil, err
		}
		n, err := c.ReadU8()
		if err != nil {
			return nil, err
		}
		text, err := c.ReadBytes(int(n))
		if err != nil {
			return nil, err
		}
		lines = append(lines, Line{Address: addr, Text: string(text)})
	}

	return Script{Lines: lines}, nil
}

package resource

// Class is the asset class a catalog type code maps to.
type Class uint8

const (
	ClassSound Class = iota
	ClassMusic
	ClassBitmap
	ClassPalette
	ClassScript
	ClassPolygonBuffer
	ClassUnknown
)

func (c Class) String() string {
	switch c {
	case ClassSound:
		return "Class(Sound)"
	case ClassMusic:
		return "Class(Music)"
	case ClassBitmap:
		return "Class(Bitmap)"
	case ClassPalette:
		return "Class(Palette)"
	case ClassScript:
		return "Class(Script)"
	case ClassPolygonBuffer:
		return "Class(PolygonBuffer)"
	}
	return "Class(Unknown)"
}

// Name is the lower-case name used in configuration files and JSON output.
func (c Class) Name() string {
	switch c {
	case ClassSound:
		return "sound"
	case ClassMusic:
		return "music"
	case ClassBitmap:
		return "bitmap"
	case ClassPalette:
		return "palette"
	case ClassScript:
		return "script"
	case ClassPolygonBuffer:
		return "polygon-buffer"
	}
	return "unknown"
}

// ParseClass is the inverse of Name. Unrecognized names are ClassUnknown.
func ParseClass(name string) (Class, bool) {
	for c := ClassSound; c < ClassUnknown; c++ {
		if c.Name() == name {
			return c, true
		}
	}
	return ClassUnknown, name == ClassUnknown.Name()
}

func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.Name()), nil
}

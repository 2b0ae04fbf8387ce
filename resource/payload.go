package resource

import "fmt"

// Payload is the decoded body of a catalog entry. It is one of Sound,
// Palette, Script or Raw.
type Payload interface {
	payload()
}

// Sound is a mono clip with samples normalized to [0,1].
type Sound struct {
	Samples  []float32 `json:"samples"`
	Channels int       `json:"channels"`

	// Truncated is set when the clip's length field asked for more samples
	// than the payload holds.
	Truncated bool `json:"truncated,omitempty"`
}

// Frame is one 16 colour palette, each colour formatted "#RRGGBB".
type Frame [16]string

type Palette struct {
	Frames []Frame `json:"frames"`
}

type Script struct {
	Lines []Line `json:"lines"`
}

type Raw struct {
	Bytes []byte `json:"bytes"`
}

func (Sound) payload()   {}
func (Palette) payload() {}
func (Script) payload()  {}
func (Raw) payload()     {}

// Resource is one entry of the snapshot catalog. ID is the entry's index,
// which is how scripts refer to it.
type Resource struct {
	ID      int     `json:"id"`
	Code    uint8   `json:"type"`
	Class   Class   `json:"class"`
	Size    uint16  `json:"size"`
	Payload Payload `json:"payload"`

	// Offsets lists, for polygon buffers, the byte offsets drawn by scripts.
	Offsets []string `json:"offsets,omitempty"`

	// Part is the game part that runs this script, if any.
	Part *int `json:"part,omitempty"`
}

func (r Resource) Summary() string {
	switch p := r.Payload.(type) {
	case Sound:
		if len(p.Samples) == 0 {
			return "empty"
		}
		return fmt.Sprintf("%d samples", len(p.Samples))
	case Palette:
		return fmt.Sprintf("%d frames", len(p.Frames))
	case Script:
		s := fmt.Sprintf("%d lines", len(p.Lines))
		if r.Part != nil {
			s += fmt.Sprintf(", part %d", *r.Part)
		}
		return s
	case Raw:
		if len(r.Offsets) > 0 {
			return fmt.Sprintf("%d bytes, %d offsets", len(p.Bytes), len(r.Offsets))
		}
		return fmt.Sprintf("%d bytes", len(p.Bytes))
	}
	return ""
}

// Hex formats v as upper-case hex, zero padded to width digits.
func Hex(v int, width int) string {
	return fmt.Sprintf("%0*X", width, v)
}

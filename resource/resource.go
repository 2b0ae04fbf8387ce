package resource

import (
	"encoding/binary"
)

type DecodeFn = func(c *Cursor, size uint16) (Payload, error)

// DecoderLUT selects the payload decoder for an asset class. Classes that
// are missing from the table are copied as Raw.
type DecoderLUT map[Class]DecodeFn

var Decoders = DecoderLUT{
	ClassSound:   DecodeSound,
	ClassPalette: DecodePalette,
	ClassScript:  DecodeScript,
}

func (lut DecoderLUT) lookup(c Class) DecodeFn {
	if fn, ok := lut[c]; ok {
		return fn
	}
	return DecodeRaw
}

// Catalog decodes snapshots using a class table and a decoder table.
type Catalog struct {
	Classes  ClassTable
	Decoders DecoderLUT
}

func NewCatalog(classes ClassTable) Catalog {
	return Catalog{
		Classes:  classes,
		Decoders: Decoders,
	}
}

// Decode reads every entry of the snapshot. Bytes past the last entry are
// ignored. A structural error aborts the whole decode.
func (cat Catalog) Decode(snapshot []byte) ([]Resource, error) {
	return cat.DecodeFrom(NewCursor(snapshot))
}

func (cat Catalog) DecodeFrom(c *Cursor) ([]Resource, error) {
	decoders := cat.Decoders
	if decoders == nil {
		decoders = Decoders
	}

	count, err := c.ReadU8()
	if err != nil {
		return nil, err
	}

	resources := make([]Resource, 0, count)
	for id := 0; id < int(count); id++ {
		start := c.Position()
		res, err := cat.decodeEntry(c, id, decoders)
		if err != nil {
			return nil, &EntryError{ID: id, Offset: start, Err: err}
		}
		resources = append(resources, res)
	}

	return resources, nil
}

func (cat Catalog) decodeEntry(c *Cursor, id int, decoders DecoderLUT) (Resource, error) {
	var header struct {
		Code uint8
		Size uint16
	}

	var err error
	if header.Code, err = c.ReadU8(); err != nil {
		return Resource{}, err
	}
	if header.Size, err = c.ReadU16(binary.LittleEndian); err != nil {
		return Resource{}, err
	}

	body, err := c.Sub(int(header.Size))
	if err != nil {
		return Resource{}, err
	}

	class := cat.Classes.Lookup(header.Code)
	payload, err := decoders.lookup(class)(body, header.Size)
	if err != nil {
		return Resource{}, err
	}

	if consumed := body.Consumed(); consumed != int(header.Size) {
		return Resource{}, &SizeMismatchError{
			ID:       id,
			Declared: int(header.Size),
			Actual:   consumed,
		}
	}

	return Resource{
		ID:      id,
		Code:    header.Code,
		Class:   class,
		Size:    header.Size,
		Payload: payload,
	}, nil
}

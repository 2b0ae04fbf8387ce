package resource

import (
	"errors"
	"fmt"
)

var (
	ErrBufferUnderrun = errors.New("buffer underrun")
	ErrSizeMismatch   = errors.New("size mismatch")
)

// UnderrunError reports a read that asked for more bytes than remain.
type UnderrunError struct {
	Offset    int
	Requested int
	Remaining int
}

func (e *UnderrunError) Error() string {
	return fmt.Sprintf("buffer underrun at offset %d: requested(%d) > remaining(%d)", e.Offset, e.Requested, e.Remaining)
}

func (e *UnderrunError) Is(target error) bool { return target == ErrBufferUnderrun }

// SizeMismatchError reports a payload decoder that consumed a different
// number of bytes than the entry declared.
type SizeMismatchError struct {
	ID       int
	Declared int
	Actual   int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("resource %d: size mismatch. declared(%d) != actual(%d)", e.ID, e.Declared, e.Actual)
}

func (e *SizeMismatchError) Is(target error) bool { return target == ErrSizeMismatch }

// EntryError locates a structural failure inside the catalog: the index of
// the entry being decoded and the snapshot offset where that entry starts.
type EntryError struct {
	ID     int
	Offset int
	Err    error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %d (offset %d): %v", e.ID, e.Offset, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

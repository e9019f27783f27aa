package ssbhio

import (
	"errors"
	"fmt"

	ssbh "github.com/ultimate-research/ssbh-lib-sub000"
)

var (
	// Indicates an unexpected file signature.
	ErrInvalidSig = errors.New("invalid SSBH signature")
	// Indicates an unexpected header length field.
	ErrHeaderLength = errors.New("unexpected SSBH header length")
	// Indicates a relative offset pointing before its own field.
	ErrNegativeOffset = errors.New("negative relative offset")
	// Indicates an array count larger than the enclosing file.
	ErrArrayCount = errors.New("array count exceeds file size")
	// Indicates a string payload with no null terminator before the end of
	// the file.
	ErrUnterminatedString = errors.New("unterminated string")
	// Indicates an array element that serialized to a different size than
	// the element preceding it. Array payloads are allocated contiguously
	// from the first element's size, so every element must occupy the same
	// number of bytes.
	ErrElementSize = errors.New("array elements serialized with unequal sizes")
)

// FormatError indicates a file whose inner magic does not match the format
// the codec handles.
type FormatError struct {
	Want, Got ssbh.Magic
}

func (err FormatError) Error() string {
	return fmt.Sprintf("file is %q (%s), not %q (%s)",
		err.Got[:], err.Got, err.Want[:], err.Want)
}

// VersionError indicates a record version with no known field layout. It is
// reported before any partial decode or encode is attempted.
type VersionError struct {
	Major, Minor uint16
}

func (err VersionError) Error() string {
	return fmt.Sprintf("unsupported version %d.%d", err.Major, err.Minor)
}

// ReserveError warns about reserved header bytes that are not zero.
type ReserveError struct {
	Value uint32
}

func (err ReserveError) Error() string {
	return fmt.Sprintf("reserved space in file header is non-zero (0x%08X)", err.Value)
}

// DataError wraps an error that occurred while decoding byte data.
type DataError struct {
	// Offset is the byte offset where the error occurred, relative to the
	// end of the file header.
	Offset int64

	Cause error
}

func (err DataError) Error() string {
	if err.Cause == nil {
		return fmt.Sprintf("data error at %d", err.Offset)
	}
	return fmt.Sprintf("data error at %d: %s", err.Offset, err.Cause.Error())
}

func (err DataError) Unwrap() error {
	return err.Cause
}

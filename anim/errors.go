package anim

import (
	"errors"
	"fmt"
)

var (
	// Indicates a stored bits-per-entry that disagrees with the value
	// computed from the compression ranges. The mismatch means either
	// corrupt data or an unresearched flag combination; it is never
	// silently coerced.
	ErrBitCount = errors.New("bits per entry does not match compression ranges")
	// Indicates a compressed track with a null default-value pointer.
	ErrNilDefault = errors.New("compressed track has no default value")
	// Indicates a compressed track with a null data pointer.
	ErrNilCompressedData = errors.New("compressed track has no compressed data")
	// Indicates a track whose frame count disagrees with its value count.
	ErrFrameCount = errors.New("track frame count does not match value count")
	// Indicates track values whose type disagrees with the track's declared
	// type.
	ErrValueType = errors.New("track values do not match the track type")
	// Indicates a track data region extending past the data buffer.
	ErrDataRegion = errors.New("track data region exceeds buffer")
)

// UnsupportedTrackError indicates a (track type, compression) combination
// the codec has no layout for.
type UnsupportedTrackError struct {
	Type        TrackType
	Compression CompressionType
}

func (err UnsupportedTrackError) Error() string {
	return fmt.Sprintf("unsupported track encoding %s/%s (0x%02X/0x%02X)",
		err.Type, err.Compression, uint8(err.Type), uint8(err.Compression))
}

// TrackError indicates an error within a single track. Decoding reports
// these as warnings and preserves the raw track data, so one bad track does
// not discard the rest of the file.
type TrackError struct {
	// Node and Track name the owning node and the track's property.
	Node  string
	Track string

	Cause error
}

func (err TrackError) Error() string {
	return fmt.Sprintf("track %q of node %q: %s", err.Track, err.Node, err.Cause.Error())
}

func (err TrackError) Unwrap() error {
	return err.Cause
}

// Package srt parses SRT subtitle tracks, regroups their entries into
// bounded-duration chunks, and re-serializes them with contiguous
// numbering. Everything except Annotate is pure and in-memory.
package srt

import "errors"

var (
	// ErrMalformedTimecode reports a timestamp that does not match
	// HH:MM:SS,mmm or has an out-of-range minute/second field.
	ErrMalformedTimecode = errors.New("malformed timecode")

	// ErrMalformedEntry reports a block that could not be parsed into a
	// valid entry. Recorded per block; never aborts a parse.
	ErrMalformedEntry = errors.New("malformed entry")

	// ErrEmptyTrack reports an input with no valid entries at all.
	ErrEmptyTrack = errors.New("empty track")
)

// Entry is one caption unit from the raw track. Seq carries the source
// numbering and is advisory only: output numbering is always rebuilt
// contiguously from 1.
type Entry struct {
	Seq   int
	Start float64
	End   float64
	Text  string
}

// Track is the result of one parse call. Skipped holds one error per
// dropped block, each wrapping ErrMalformedEntry.
type Track struct {
	Entries []Entry
	Skipped []error
}

// Chunk is a bounded-duration aggregate of consecutive entries.
// Keywords and Summary are filled in by Annotate after grouping.
type Chunk struct {
	Start    float64
	End      float64
	Text     string
	Keywords []string
	Summary  string
}

// Span returns the chunk's total duration in seconds.
func (c Chunk) Span() float64 {
	return c.End - c.Start
}

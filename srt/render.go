package srt

import (
	"fmt"
	"strings"
)

// RenderEntries serializes entries back to SRT text with sequence
// numbers rebuilt contiguously from 1, regardless of source numbering.
// The output is the exact shape ParseTrack consumes.
func RenderEntries(entries []Entry) string {
	var sb strings.Builder
	for i, e := range entries {
		writeBlock(&sb, i+1, e.Start, e.End, e.Text)
	}
	return sb.String()
}

// RenderChunks serializes chunks in the same SRT shape, one block per
// chunk.
func RenderChunks(chunks []Chunk) string {
	var sb strings.Builder
	for i, c := range chunks {
		writeBlock(&sb, i+1, c.Start, c.End, c.Text)
	}
	return sb.String()
}

func writeBlock(sb *strings.Builder, seq int, start, end float64, text string) {
	fmt.Fprintf(sb, "%d\n%s --> %s\n%s\n\n", seq, FormatTimecode(start), FormatTimecode(end), text)
}

package srt

import "testing"

func TestRenderChunks(t *testing.T) {
	chunks := []Chunk{
		{Start: 0, End: 12, Text: "A B"},
		{Start: 40, End: 45.5, Text: "C"},
	}

	rendered := RenderChunks(chunks)
	want := "1\n00:00:00,000 --> 00:00:12,000\nA B\n\n2\n00:00:40,000 --> 00:00:45,500\nC\n\n"
	if rendered != want {
		t.Errorf("RenderChunks:\n%q\nwant:\n%q", rendered, want)
	}

	// The chunked track is itself a parseable SRT input.
	track, err := ParseTrack(rendered)
	if err != nil {
		t.Fatalf("ParseTrack(RenderChunks(...)): %v", err)
	}
	if len(track.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(track.Entries))
	}
	if track.Entries[1].Start != 40 || track.Entries[1].End != 45.5 {
		t.Errorf("entry 1 timing = (%v, %v)", track.Entries[1].Start, track.Entries[1].End)
	}
}

func TestRenderEntriesEmpty(t *testing.T) {
	if got := RenderEntries(nil); got != "" {
		t.Errorf("RenderEntries(nil) = %q, want empty", got)
	}
}

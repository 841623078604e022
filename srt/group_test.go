package srt

import "testing"

func entry(start, end float64, text string) Entry {
	return Entry{Start: start, End: end, Text: text}
}

func TestGroupEntries(t *testing.T) {
	entries := []Entry{
		entry(0, 5, "A"),
		entry(5, 12, "B"),
		entry(40, 45, "C"),
	}

	chunks, err := GroupEntries(entries, 30)
	if err != nil {
		t.Fatalf("GroupEntries: %v", err)
	}
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}

	if chunks[0].Start != 0 || chunks[0].End != 12 || chunks[0].Text != "A B" {
		t.Errorf("chunk 0 = %+v, want {0 12 A B}", chunks[0])
	}
	if chunks[1].Start != 40 || chunks[1].End != 45 || chunks[1].Text != "C" {
		t.Errorf("chunk 1 = %+v, want {40 45 C}", chunks[1])
	}
}

func TestGroupEntriesSpanInvariant(t *testing.T) {
	entries := []Entry{
		entry(0, 4, "a"), entry(4, 9, "b"), entry(9, 14, "c"),
		entry(14, 16, "d"), entry(16, 22, "e"), entry(22, 29, "f"),
		entry(29, 33, "g"),
	}
	const maxSpan = 15.0

	chunks, err := GroupEntries(entries, maxSpan)
	if err != nil {
		t.Fatalf("GroupEntries: %v", err)
	}

	// Every folded entry's end fits within the chunk's window; entries
	// are assigned to exactly one chunk, in order.
	i := 0
	for ci, c := range chunks {
		if entries[i].Start != c.Start {
			t.Fatalf("chunk %d does not start at next entry", ci)
		}
		for ; i < len(entries) && entries[i].End <= c.Start+maxSpan; i++ {
		}
		if entries[i-1].End != c.End {
			t.Errorf("chunk %d end = %v, want %v", ci, c.End, entries[i-1].End)
		}
	}
	if i != len(entries) {
		t.Errorf("only %d of %d entries assigned", i, len(entries))
	}
}

func TestGroupEntriesOversizedSeed(t *testing.T) {
	// A single entry longer than the window still forms its own chunk;
	// the span test only governs whether additional entries join.
	entries := []Entry{
		entry(0, 50, "long"),
		entry(50, 55, "next"),
	}

	chunks, err := GroupEntries(entries, 30)
	if err != nil {
		t.Fatalf("GroupEntries: %v", err)
	}
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	if chunks[0].Text != "long" || chunks[0].Span() != 50 {
		t.Errorf("chunk 0 = %+v", chunks[0])
	}
}

func TestGroupEntriesEndNonDecreasing(t *testing.T) {
	// An overlapping entry that ends earlier must not pull the chunk
	// end backwards.
	entries := []Entry{
		entry(0, 10, "a"),
		entry(2, 6, "b"),
	}

	chunks, err := GroupEntries(entries, 30)
	if err != nil {
		t.Fatalf("GroupEntries: %v", err)
	}
	if len(chunks) != 1 || chunks[0].End != 10 {
		t.Fatalf("chunks = %+v, want single chunk ending at 10", chunks)
	}
}

func TestGroupEntriesEmpty(t *testing.T) {
	chunks, err := GroupEntries(nil, 30)
	if err != nil {
		t.Fatalf("GroupEntries: %v", err)
	}
	if len(chunks) != 0 {
		t.Fatalf("got %d chunks, want 0", len(chunks))
	}
}

func TestGroupEntriesInvalidSpan(t *testing.T) {
	for _, span := range []float64{0, -1} {
		if _, err := GroupEntries([]Entry{entry(0, 1, "x")}, span); err == nil {
			t.Errorf("GroupEntries with span %v: expected error", span)
		}
	}
}

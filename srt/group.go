package srt

import "fmt"

// GroupEntries folds ordered entries into bounded-duration chunks using
// single-pass greedy accumulation: an entry joins the current chunk if
// its end time fits within maxSpan seconds of the chunk's start,
// otherwise it seeds the next chunk. The seed entry is never rejected,
// so a single over-long entry still forms its own chunk.
func GroupEntries(entries []Entry, maxSpan float64) ([]Chunk, error) {
	if maxSpan <= 0 {
		return nil, fmt.Errorf("max span must be > 0, got %v", maxSpan)
	}
	if len(entries) == 0 {
		return nil, nil
	}

	var chunks []Chunk
	current := Chunk{
		Start: entries[0].Start,
		End:   entries[0].End,
		Text:  entries[0].Text,
	}

	for _, entry := range entries[1:] {
		if entry.End <= current.Start+maxSpan {
			if entry.End > current.End {
				current.End = entry.End
			}
			current.Text += " " + entry.Text
			continue
		}

		chunks = append(chunks, current)
		current = Chunk{Start: entry.Start, End: entry.End, Text: entry.Text}
	}

	return append(chunks, current), nil
}

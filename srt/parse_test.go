package srt

import (
	"errors"
	"strings"
	"testing"
)

const sampleTrack = `1
00:00:00,000 --> 00:00:05,000
Good evening, here is the news.

2
00:00:05,000 --> 00:00:12,000
Markets rallied today
after the announcement.

3
00:00:40,000 --> 00:00:45,000
And now the weather.
`

func TestParseTrack(t *testing.T) {
	track, err := ParseTrack(sampleTrack)
	if err != nil {
		t.Fatalf("ParseTrack: %v", err)
	}
	if len(track.Entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(track.Entries))
	}
	if len(track.Skipped) != 0 {
		t.Fatalf("got %d skipped blocks, want 0", len(track.Skipped))
	}

	second := track.Entries[1]
	if second.Start != 5 || second.End != 12 {
		t.Errorf("entry 2 timing = (%v, %v), want (5, 12)", second.Start, second.End)
	}
	// Multi-line text collapses to one logical line.
	if second.Text != "Markets rallied today after the announcement." {
		t.Errorf("entry 2 text = %q", second.Text)
	}
}

func TestParseTrackMissingSequenceNumber(t *testing.T) {
	raw := "00:00:00,000 --> 00:00:02,000\nno number here\n\n00:00:02,000 --> 00:00:04,000\nnor here\n"

	track, err := ParseTrack(raw)
	if err != nil {
		t.Fatalf("ParseTrack: %v", err)
	}
	if len(track.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(track.Entries))
	}
}

func TestParseTrackSkipsMalformedBlock(t *testing.T) {
	raw := `1
00:00:00,000 --> 00:00:02,000
first

2
badtime --> 00:00:05,000
broken

3
00:00:05,000 --> 00:00:07,000
third
`

	track, err := ParseTrack(raw)
	if err != nil {
		t.Fatalf("ParseTrack: %v", err)
	}
	if len(track.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(track.Entries))
	}
	if len(track.Skipped) != 1 {
		t.Fatalf("got %d skipped blocks, want 1", len(track.Skipped))
	}
	if !errors.Is(track.Skipped[0], ErrMalformedEntry) {
		t.Errorf("skipped error = %v, want ErrMalformedEntry", track.Skipped[0])
	}
	if track.Entries[1].Text != "third" {
		t.Errorf("parsing did not continue past the bad block: %q", track.Entries[1].Text)
	}
}

func TestParseTrackEndBeforeStart(t *testing.T) {
	raw := "1\n00:00:10,000 --> 00:00:05,000\nbackwards\n\n2\n00:00:10,000 --> 00:00:12,000\nfine\n"

	track, err := ParseTrack(raw)
	if err != nil {
		t.Fatalf("ParseTrack: %v", err)
	}
	if len(track.Entries) != 1 || track.Entries[0].Text != "fine" {
		t.Fatalf("entries = %+v, want only the valid block", track.Entries)
	}
	if len(track.Skipped) != 1 {
		t.Fatalf("got %d skipped blocks, want 1", len(track.Skipped))
	}
}

func TestParseTrackEmpty(t *testing.T) {
	for _, raw := range []string{"", "   \n\n  ", "garbage\nwithout any\narrow"} {
		if _, err := ParseTrack(raw); !errors.Is(err, ErrEmptyTrack) {
			t.Errorf("ParseTrack(%q) error = %v, want ErrEmptyTrack", raw, err)
		}
	}
}

func TestParseTrackCRLFAndExtraBlankLines(t *testing.T) {
	raw := "1\r\n00:00:00,000 --> 00:00:01,000\r\nhello\r\n\r\n\r\n2\r\n00:00:01,000 --> 00:00:02,000\r\nworld\r\n"

	track, err := ParseTrack(raw)
	if err != nil {
		t.Fatalf("ParseTrack: %v", err)
	}
	if len(track.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(track.Entries))
	}
}

func TestRenderRoundTrip(t *testing.T) {
	// Irregular source numbering (gaps, duplicates) must come out
	// contiguous from 1 with count, text, and timing preserved.
	raw := `7
00:00:00,000 --> 00:00:05,000
first

7
00:00:05,500 --> 00:00:12,250
second

99
01:02:03,004 --> 01:02:05,006
third
`

	first, err := ParseTrack(raw)
	if err != nil {
		t.Fatalf("first parse: %v", err)
	}

	rendered := RenderEntries(first.Entries)
	if !strings.HasPrefix(rendered, "1\n00:00:00,000 --> 00:00:05,000\nfirst\n") {
		t.Fatalf("unexpected render head:\n%s", rendered)
	}

	second, err := ParseTrack(rendered)
	if err != nil {
		t.Fatalf("second parse: %v", err)
	}
	if len(second.Entries) != len(first.Entries) {
		t.Fatalf("entry count changed: %d -> %d", len(first.Entries), len(second.Entries))
	}
	for i := range first.Entries {
		a, b := first.Entries[i], second.Entries[i]
		if a.Start != b.Start || a.End != b.End || a.Text != b.Text {
			t.Errorf("entry %d changed: %+v -> %+v", i, a, b)
		}
		if b.Seq != i+1 {
			t.Errorf("entry %d seq = %d, want %d", i, b.Seq, i+1)
		}
	}
}

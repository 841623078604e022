package srt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var blockSeparator = regexp.MustCompile(`\n\s*\n`)

// ParseTrack parses raw SRT text into ordered entries. Blocks are
// separated by one or more blank lines. A block needs a timecode arrow
// line and at least one text line; the sequence-number line is
// advisory and may be missing. Malformed blocks are dropped and
// reported on Track.Skipped. If no block survives, ParseTrack fails
// with ErrEmptyTrack.
func ParseTrack(raw string) (*Track, error) {
	content := strings.TrimSpace(strings.ReplaceAll(raw, "\r\n", "\n"))
	track := &Track{}

	if content == "" {
		return nil, ErrEmptyTrack
	}

	for i, block := range blockSeparator.Split(content, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		entry, err := parseBlock(block)
		if err != nil {
			track.Skipped = append(track.Skipped, fmt.Errorf("block %d: %w", i+1, err))
			continue
		}
		track.Entries = append(track.Entries, entry)
	}

	if len(track.Entries) == 0 {
		return nil, ErrEmptyTrack
	}
	return track, nil
}

func parseBlock(block string) (Entry, error) {
	lines := strings.Split(block, "\n")

	// Locate the arrow line; anything before it may be a sequence
	// number, everything after is text.
	arrow := -1
	for i, line := range lines {
		if strings.Contains(line, "-->") {
			arrow = i
			break
		}
	}
	if arrow == -1 {
		return Entry{}, fmt.Errorf("%w: no timecode line", ErrMalformedEntry)
	}

	seq := 0
	if arrow > 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(lines[arrow-1])); err == nil {
			seq = n
		}
	}

	parts := strings.SplitN(lines[arrow], "-->", 2)
	start, err := ParseTimecode(strings.TrimSpace(parts[0]))
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %v", ErrMalformedEntry, err)
	}
	end, err := ParseTimecode(strings.TrimSpace(parts[1]))
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %v", ErrMalformedEntry, err)
	}
	if end < start {
		return Entry{}, fmt.Errorf("%w: end %s before start %s",
			ErrMalformedEntry, FormatTimecode(end), FormatTimecode(start))
	}

	text := collapseText(lines[arrow+1:])
	if text == "" {
		return Entry{}, fmt.Errorf("%w: no text", ErrMalformedEntry)
	}

	return Entry{Seq: seq, Start: start, End: end, Text: text}, nil
}

// collapseText joins a block's text lines into one logical line with
// single spaces and no enclosing whitespace.
func collapseText(lines []string) string {
	return strings.Join(strings.Fields(strings.Join(lines, " ")), " ")
}

package srt

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// timecodePattern matches HH:MM:SS,mmm. The hour field may be wider
// than two digits; minutes and seconds are exactly two.
var timecodePattern = regexp.MustCompile(`^(\d{2,}):(\d{2}):(\d{2}),(\d{3})$`)

// ParseTimecode converts an SRT timestamp to seconds from track start.
// Minutes and seconds are range-checked (0-59); hours are not.
func ParseTimecode(s string) (float64, error) {
	m := timecodePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTimecode, s)
	}

	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTimecode, s)
	}
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])
	millis, _ := strconv.Atoi(m[4])

	if minutes > 59 || seconds > 59 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTimecode, s)
	}

	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000, nil
}

// FormatTimecode renders seconds as an SRT timestamp. Rounding happens
// once at the total-millisecond level, so a .9995 remainder carries
// into the seconds field instead of producing ",1000".
func FormatTimecode(t float64) string {
	if t < 0 {
		t = 0
	}

	totalMillis := int64(math.Round(t * 1000))
	millis := totalMillis % 1000
	totalSeconds := totalMillis / 1000

	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

// File: internal/timeformat/timeformat.go
package timeformat

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned by ToDecimal for input that is not a
// valid HH:MM string.
var ErrInvalidFormat = errors.New("invalid time format, expected HH:MM (e.g. 08:30)")

var timePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// ToDecimal converts an "HH:MM" string to decimal hours, rounded to
// three decimal places. Hours must be 0-23 and minutes 0-59; the
// rounding is a deliberate precision cap, so round-tripping through
// ToHHMM is exact only to the minute.
func ToDecimal(s string) (float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, ErrInvalidFormat
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, ErrInvalidFormat
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, ErrInvalidFormat
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, ErrInvalidFormat
	}
	v := float64(hours) + float64(minutes)/60
	return math.Round(v*1000) / 1000, nil
}

// ToHHMM converts decimal hours to a zero-padded "HH:MM" string.
// NaN or negative input degrades to "-" instead of failing.
func ToHHMM(decimal float64) string {
	if math.IsNaN(decimal) || decimal < 0 {
		return "-"
	}
	hours := int(math.Floor(decimal))
	minutes := int(math.Round((decimal - float64(hours)) * 60))
	if minutes == 60 {
		hours++
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// IsValid reports whether s is an H:MM or HH:MM string with hours 0-23
// and minutes 0-59.
func IsValid(s string) bool {
	return timePattern.MatchString(s)
}

// FormatDifference renders a signed hour difference in HH:MM form,
// keeping a leading minus for negative input.
func FormatDifference(diff float64) string {
	sign := ""
	if diff < 0 {
		sign = "-"
	}
	abs := math.Abs(diff)
	hours := int(math.Floor(abs))
	minutes := int(math.Round((abs - float64(hours)) * 60))
	if minutes == 60 {
		hours++
		minutes = 0
	}
	return fmt.Sprintf("%s%02d:%02d", sign, hours, minutes)
}

package subtitle

import (
	"fmt"
	"math"

	"subgen/internal/services"
)

// FormatTimestamp renders seconds as HH:MM:SS.mmm with truncated
// milliseconds. Fields pad to two digits; the hour field widens past 99.
// Negative input is a validation error; offsets handed to the writer must
// already be rebased.
func FormatTimestamp(seconds float64) (string, error) {
	if seconds < 0 || math.IsNaN(seconds) {
		return "", services.Wrap(services.ErrValidation, "subtitle", "format timestamp", fmt.Sprintf("negative or invalid seconds %v", seconds), nil)
	}
	millis := int64(math.Floor(seconds * 1000))
	hours := millis / 3_600_000
	millis -= hours * 3_600_000
	minutes := millis / 60_000
	millis -= minutes * 60_000
	secs := millis / 1000
	millis -= secs * 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, secs, millis), nil
}

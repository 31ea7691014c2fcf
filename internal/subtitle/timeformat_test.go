package subtitle_test

import (
	"errors"
	"testing"

	"subgen/internal/services"
	"subgen/internal/subtitle"
)

func TestFormatTimestamp(t *testing.T) {
	t.Parallel()

	cases := []struct {
		seconds float64
		want    string
	}{
		{0.0, "00:00:00.000"},
		{3661.2345, "01:01:01.234"},
		{2.5, "00:00:02.500"},
		{59.9999, "00:00:59.999"},
		{360000.0, "100:00:00.000"},
	}
	for _, tc := range cases {
		got, err := subtitle.FormatTimestamp(tc.seconds)
		if err != nil {
			t.Fatalf("FormatTimestamp(%v): %v", tc.seconds, err)
		}
		if got != tc.want {
			t.Fatalf("FormatTimestamp(%v) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestFormatTimestampRejectsNegative(t *testing.T) {
	t.Parallel()

	_, err := subtitle.FormatTimestamp(-0.5)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrExtraction        = errors.New("extraction failed")
	ErrTranscription     = errors.New("transcription failed")
	ErrDurationExceeded  = errors.New("duration exceeded")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrFilesystem        = errors.New("filesystem error")
	ErrValidation        = errors.New("validation error")
	ErrConfiguration     = errors.New("configuration error")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrFilesystem
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Kind maps an error chain to a stable identifier suitable for persistence
// and log fields. Unclassified errors report "unknown".
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrExtraction):
		return "extraction_failed"
	case errors.Is(err, ErrTranscription):
		return "transcription_failed"
	case errors.Is(err, ErrDurationExceeded):
		return "duration_exceeded"
	case errors.Is(err, ErrUnsupportedFormat):
		return "unsupported_format"
	case errors.Is(err, ErrFilesystem):
		return "filesystem_error"
	case errors.Is(err, ErrValidation):
		return "validation_error"
	case errors.Is(err, ErrConfiguration):
		return "configuration_error"
	default:
		return "unknown"
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}

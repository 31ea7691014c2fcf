package subtitle

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"subgen/internal/services"
)

// Recognized output formats.
const (
	FormatSRT = "srt"
	FormatVTT = "vtt"
)

// Writer serializes documents to subtitle files in the output directory.
type Writer struct {
	outputDir string
}

// NewWriter creates a Writer that places subtitle files in outputDir.
func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// Write serializes the document in the requested format and returns the path
// written. Each call produces a fresh uniquely named file. Unknown formats
// fail before anything touches disk.
func (w *Writer) Write(doc Document, format string) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))

	var body []byte
	var err error
	switch format {
	case FormatSRT:
		body, err = renderSRT(doc)
	case FormatVTT:
		body, err = renderVTT(doc)
	default:
		return "", services.Wrap(services.ErrUnsupportedFormat, "writer", "write", fmt.Sprintf("format %q", format), nil)
	}
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return "", services.Wrap(services.ErrFilesystem, "writer", "write", "ensure output directory", err)
	}
	path := filepath.Join(w.outputDir, uuid.NewString()+"."+format)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", services.Wrap(services.ErrFilesystem, "writer", "write", "write subtitle file", err)
	}
	return path, nil
}

func renderSRT(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	for i, segment := range doc.Segments {
		line, err := cueTiming(segment)
		if err != nil {
			return nil, err
		}
		buf.WriteString(strconv.Itoa(i + 1))
		buf.WriteByte('\n')
		buf.WriteString(line)
		buf.WriteByte('\n')
		buf.WriteString(strings.TrimSpace(segment.Text))
		buf.WriteString("\n\n")
	}
	return buf.Bytes(), nil
}

// renderVTT emits bare cues without the WEBVTT file header. This matches the
// historical output of the pipeline rather than the WebVTT standard, which
// requires the header line.
func renderVTT(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	for _, segment := range doc.Segments {
		line, err := cueTiming(segment)
		if err != nil {
			return nil, err
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
		buf.WriteString(strings.TrimSpace(segment.Text))
		buf.WriteString("\n\n")
	}
	return buf.Bytes(), nil
}

func cueTiming(segment Segment) (string, error) {
	start, err := FormatTimestamp(segment.Start)
	if err != nil {
		return "", err
	}
	end, err := FormatTimestamp(segment.End)
	if err != nil {
		return "", err
	}
	return start + " --> " + end, nil
}

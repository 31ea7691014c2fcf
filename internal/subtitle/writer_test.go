package subtitle_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"subgen/internal/services"
	"subgen/internal/subtitle"
)

func TestWriteSRTSingleSegment(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writer := subtitle.NewWriter(dir)
	doc := subtitle.Document{Segments: []subtitle.Segment{
		{Start: 1.0, End: 2.5, Text: "hi"},
	}}

	path, err := writer.Write(doc, "srt")
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if filepath.Ext(path) != ".srt" {
		t.Fatalf("unexpected extension on %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "1\n00:00:01.000 --> 00:00:02.500\nhi\n\n"
	if string(data) != want {
		t.Fatalf("srt body mismatch:\n got %q\nwant %q", data, want)
	}
}

func TestWriteSRTNumbersAndTrims(t *testing.T) {
	t.Parallel()

	writer := subtitle.NewWriter(t.TempDir())
	doc := subtitle.Document{Segments: []subtitle.Segment{
		{Start: 0, End: 1, Text: "  first  "},
		{Start: 1, End: 2, Text: "second"},
	}}
	path, err := writer.Write(doc, "srt")
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, _ := os.ReadFile(path)
	body := string(data)
	if !strings.HasPrefix(body, "1\n00:00:00.000 --> 00:00:01.000\nfirst\n\n2\n") {
		t.Fatalf("unexpected srt body %q", body)
	}
}

func TestWriteVTTOmitsIndexAndHeader(t *testing.T) {
	t.Parallel()

	writer := subtitle.NewWriter(t.TempDir())
	doc := subtitle.Document{Segments: []subtitle.Segment{
		{Start: 1.0, End: 2.5, Text: "hi"},
	}}
	path, err := writer.Write(doc, "vtt")
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, _ := os.ReadFile(path)
	want := "00:00:01.000 --> 00:00:02.500\nhi\n\n"
	if string(data) != want {
		t.Fatalf("vtt body mismatch:\n got %q\nwant %q", data, want)
	}
}

func TestWriteUnknownFormatWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writer := subtitle.NewWriter(dir)
	doc := subtitle.Document{Segments: []subtitle.Segment{{Start: 0, End: 1, Text: "x"}}}

	_, err := writer.Write(doc, "xyz")
	if !errors.Is(err, services.ErrUnsupportedFormat) {
		t.Fatalf("expected unsupported-format error, got %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no files written, found %d", len(entries))
	}
}

func TestWriteUniqueNames(t *testing.T) {
	t.Parallel()

	writer := subtitle.NewWriter(t.TempDir())
	doc := subtitle.Document{Segments: []subtitle.Segment{{Start: 0, End: 1, Text: "x"}}}
	first, err := writer.Write(doc, "srt")
	if err != nil {
		t.Fatalf("first write: %v", err)
	}
	second, err := writer.Write(doc, "srt")
	if err != nil {
		t.Fatalf("second write: %v", err)
	}
	if first == second {
		t.Fatalf("expected unique output names, both were %q", first)
	}
}

func TestDocumentSortIsStable(t *testing.T) {
	t.Parallel()

	doc := subtitle.Document{Segments: []subtitle.Segment{
		{Start: 5.0, End: 6.0, Text: "c"},
		{Start: 1.0, End: 2.0, Text: "a"},
		{Start: 3.0, End: 4.0, Text: "b"},
		{Start: 1.0, End: 2.5, Text: "a2"},
	}}
	doc.Sort()

	got := make([]string, 0, len(doc.Segments))
	for _, s := range doc.Segments {
		got = append(got, s.Text)
	}
	want := []string{"a", "a2", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sorted order %v, want %v", got, want)
		}
	}
}

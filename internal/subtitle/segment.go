package subtitle

import "sort"

// Segment is a single timed piece of transcribed text. Times are seconds
// relative to the start of the original video.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Shifted returns a copy of the segment rebased by offset seconds.
func (s Segment) Shifted(offset float64) Segment {
	s.Start += offset
	s.End += offset
	return s
}

// Document is an ordered sequence of segments.
type Document struct {
	Segments []Segment
}

// Sort orders the segments ascending by start time. The sort is stable so
// segments sharing a start time keep their original relative order.
func (d *Document) Sort() {
	sort.SliceStable(d.Segments, func(i, j int) bool {
		return d.Segments[i].Start < d.Segments[j].Start
	})
}

// Package subtitle holds the segment data model, subtitle timestamp
// formatting, and the SRT/VTT file writer.
package subtitle

// Package chunker splits long videos into consecutive stream-copied clips so
// each piece stays within the transcription tool's practical duration limit.
package chunker

package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// Default splitting parameters, characters.
const (
	DefaultChunkWindow  = 1000
	DefaultChunkOverlap = 200
)

// Splitter cuts document text into overlapping passages. It is a pure
// function of its input: no state is retained between calls.
type Splitter struct {
	window  int
	overlap int
}

// NewSplitter validates the window/overlap configuration. overlap must be
// smaller than window; violating that is a startup error, not a call-time
// error.
func NewSplitter(window, overlap int) (*Splitter, error) {
	if window <= 0 {
		return nil, fmt.Errorf("chunk window must be positive, got %d", window)
	}
	if overlap < 0 {
		return nil, fmt.Errorf("chunk overlap cannot be negative, got %d", overlap)
	}
	if overlap >= window {
		return nil, fmt.Errorf("chunk overlap (%d) must be smaller than window (%d)", overlap, window)
	}
	return &Splitter{window: window, overlap: overlap}, nil
}

// Split produces the ordered chunk sequence for one document. Seq is
// contiguous from 0. Consecutive chunks share the configured overlap;
// window boundaries back up to the nearest whitespace when one is close,
// so words are not cut mid-token more than necessary.
func (s *Splitter) Split(doc Document, text string) []Chunk {
	runes := []rune(text)

	var chunks []Chunk
	start := 0
	for start < len(runes) {
		end := start + s.window
		if end > len(runes) {
			end = len(runes)
		} else {
			end = backUpToBreak(runes, start, end)
		}

		piece := strings.TrimSpace(string(runes[start:end]))
		if piece != "" {
			chunks = append(chunks, Chunk{
				DocumentName:   doc.Name,
				DocumentDigest: doc.Digest,
				Seq:            len(chunks),
				Text:           piece,
			})
		}

		if end == len(runes) {
			break
		}
		next := end - s.overlap
		if next <= start {
			// Whitespace back-up can otherwise stall with large overlaps.
			next = start + 1
		}
		start = next
	}

	return chunks
}

// backUpToBreak moves end left to the last whitespace inside the window,
// unless that would shrink the chunk below half the window.
func backUpToBreak(runes []rune, start, end int) int {
	min := start + (end-start)/2
	for i := end - 1; i > min; i-- {
		if unicode.IsSpace(runes[i]) {
			return i
		}
	}
	return end
}

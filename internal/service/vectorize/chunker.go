package vectorize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/resilihub/docvault/internal/config"
	"github.com/resilihub/docvault/internal/domain"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// normalizeWhitespace collapses all whitespace runs (newlines included) to
// single spaces and trims the ends.
func normalizeWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRuns.ReplaceAllString(text, " "))
}

// Chunker splits content into bounded overlapping segments, preferring
// paragraph and sentence boundaries over mid-sentence cuts.
type Chunker struct {
	size    int
	overlap int
}

// NewChunker validates the settings and returns a ready chunker.
// Rejects overlap >= size up front: with such a config the cursor could
// never make forward progress.
func NewChunker(cfg config.ChunkerConfig) (*Chunker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Chunker{size: cfg.ChunkSize, overlap: cfg.ChunkOverlap}, nil
}

// Chunk splits text into an ordered sequence of chunks. Whitespace is
// normalized first; text at or under the target size comes back as a single
// chunk, empty or whitespace-only text as zero chunks. Size and overlap
// count characters, not bytes, so cuts never land inside a multi-byte rune.
//
// Boundary search runs after normalization, so the paragraph-break branch
// can never match: normalization has already collapsed every "\n\n" to a
// single space. The search order is kept as the system has always shipped
// it; sentence breaks are the boundary that actually fires.
func (c *Chunker) Chunk(text string) ([]string, error) {
	normalized := normalizeWhitespace(text)
	if normalized == "" {
		return nil, nil
	}

	runes := []rune(normalized)
	if len(runes) <= c.size {
		return []string{normalized}, nil
	}

	var chunks []string
	length := len(runes)
	cursor := 0

	for cursor < length {
		end := cursor + c.size
		if end > length {
			end = length
		}

		// Not the final chunk: try to pull the cut back to a boundary,
		// as long as the chunk keeps at least half the target size.
		if end < length {
			window := runes[cursor:end]
			if br := lastIndexRunes(window, paragraphBreak); br > c.size/2 {
				end = cursor + br
			} else if br := lastIndexRunes(window, sentenceBreak); br > c.size/2 {
				end = cursor + br + 1 // the period stays with this chunk
			}
		}

		chunks = append(chunks, string(runes[cursor:end]))
		if end == length {
			break
		}

		next := end - c.overlap
		if next <= cursor {
			return nil, fmt.Errorf("chunk cursor stuck at offset %d (size=%d overlap=%d): %w",
				cursor, c.size, c.overlap, domain.ErrConfiguration)
		}
		cursor = next
	}

	return chunks, nil
}

var (
	paragraphBreak = []rune("\n\n")
	sentenceBreak  = []rune(". ")
)

// lastIndexRunes returns the character offset of the last occurrence of sep
// in s, or -1 if absent.
func lastIndexRunes(s, sep []rune) int {
	for i := len(s) - len(sep); i >= 0; i-- {
		match := true
		for j := range sep {
			if s[i+j] != sep[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

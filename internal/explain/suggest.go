package explain

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Suggestions are only offered for tokens at least this long; shorter
// fillers ("a", "an", "the") are close to too many words.
const (
	minSuggestLen = 4
	maxDistance   = 2
)

// Suggest returns the vocabulary word closest to tok by edit distance, or
// "" when tok is too short or nothing is within maxDistance edits.
func Suggest(tok string, vocab []string) string {
	if len(tok) < minSuggestLen {
		return ""
	}

	dmp := diffmatchpatch.New()
	best, bestDist := "", maxDistance+1
	for _, w := range vocab {
		if w == tok {
			return ""
		}
		d := dmp.DiffLevenshtein(dmp.DiffMain(tok, w, false))
		if d < bestDist {
			best, bestDist = w, d
		}
	}
	return best
}

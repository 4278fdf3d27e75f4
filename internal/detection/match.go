package detection

import (
	"image"
	"log"
	"strings"
)

// windowMax bounds the sliding-window join: up to this many neighboring
// words on each side of a hit are joined when testing multi-word phrases.
const windowMax = 3

// strategy reports whether the phrase matches the word at index i of one
// invocation's word sequence. Both the phrase and the words slice are
// already lowercased.
type strategy func(phrase string, words []string, i int) bool

// strategies is the ordered list of matching rules. A word matches a phrase
// if any rule fires; rules are independent, so adding or removing one never
// touches the aggregation logic.
var strategies = []strategy{
	phraseInWord,
	wordInPhrase,
	despacedPhraseInWord,
	windowJoin,
}

// phraseInWord: the phrase appears inside the recognized word.
func phraseInWord(phrase string, words []string, i int) bool {
	return strings.Contains(words[i], phrase)
}

// wordInPhrase: the recognized word is a fragment of the phrase.
func wordInPhrase(phrase string, words []string, i int) bool {
	return strings.Contains(phrase, words[i])
}

// despacedPhraseInWord: matching with all spaces stripped from both sides,
// for engines that fuse "John Smith" into "JohnSmith".
func despacedPhraseInWord(phrase string, words []string, i int) bool {
	return strings.Contains(
		strings.ReplaceAll(words[i], " ", ""),
		strings.ReplaceAll(phrase, " ", ""),
	)
}

// windowJoin joins up to windowMax neighboring words on each side of i
// (window sizes tried in increasing order) and looks for the phrase in the
// joined text. OCR engines split multi-word phrases into separate tokens;
// this recovers matches that span token boundaries. The window follows the
// engine's own word ordering, which is reading order within a block, so
// treat it as a best-effort heuristic rather than a spatial-adjacency
// guarantee.
func windowJoin(phrase string, words []string, i int) bool {
	for size := 0; size <= windowMax; size++ {
		lo := i - size
		if lo < 0 {
			lo = 0
		}
		hi := i + size + 1
		if hi > len(words) {
			hi = len(words)
		}
		if strings.Contains(strings.Join(words[lo:hi], " "), phrase) {
			return true
		}
	}
	return false
}

// aggregate matches one invocation's word sequence against every phrase and
// records the padded boxes of the hits into regions, deduplicating per
// phrase by exact box equality.
//
// Blank words and words below minConfidence never produce regions.
func aggregate(regions map[string][]image.Rectangle, words []Word, phrases []string, minConfidence float64) {
	lowered := make([]string, len(words))
	for i, word := range words {
		lowered[i] = strings.ToLower(word.Text)
	}

	for i, word := range words {
		if strings.TrimSpace(word.Text) == "" {
			continue
		}
		if word.Confidence < minConfidence {
			continue
		}

		for _, phrase := range phrases {
			if !matchesAny(strings.ToLower(phrase), lowered, i) {
				continue
			}
			box := PadBox(word.Box)
			if addRegion(regions, phrase, box) {
				log.Printf("found %q in %q with confidence %.0f%%", phrase, word.Text, word.Confidence)
			}
		}
	}
}

// matchesAny tries each strategy in order.
func matchesAny(phrase string, words []string, i int) bool {
	for _, match := range strategies {
		if match(phrase, words, i) {
			return true
		}
	}
	return false
}

// PadBox expands a word box by half its height on every side, then clips
// the top-left corner at the origin. Width and height keep their padded
// size even when the corner is clipped, matching the box the blur stage
// will clip against the image bounds on the other two edges.
func PadBox(box image.Rectangle) image.Rectangle {
	pad := box.Dy() / 2
	w := box.Dx() + 2*pad
	h := box.Dy() + 2*pad

	x := box.Min.X - pad
	if x < 0 {
		x = 0
	}
	y := box.Min.Y - pad
	if y < 0 {
		y = 0
	}

	return image.Rect(x, y, x+w, y+h)
}

// addRegion appends box to the phrase's region list unless an identical box
// is already recorded. It reports whether the box was added.
func addRegion(regions map[string][]image.Rectangle, phrase string, box image.Rectangle) bool {
	for _, existing := range regions[phrase] {
		if existing == box {
			return false
		}
	}
	regions[phrase] = append(regions[phrase], box)
	return true
}

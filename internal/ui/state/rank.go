package state

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"github.com/atomicstack/aerospace-switcher/internal/aerospace"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	matchScore       = 16
	adjacentBonus    = 8
	prefixBonus      = 16
	boundaryBonus    = 8
	gapOpenPenalty   = 3
	gapExtendPenalty = 1
)

// Score rates how well pattern matches candidate. Matching is a
// case-insensitive, accent-insensitive subsequence test; ok is false when the
// pattern's characters do not all appear in order. The score rewards the
// tightest alignment of the pattern: adjacent runes, a match at the start or
// after a word boundary. Gaps inside the alignment cost points, while text
// before or after it costs nothing, so candidate length does not matter.
func Score(candidate, pattern string) (int, bool) {
	if !fuzzy.MatchNormalizedFold(pattern, candidate) {
		return 0, false
	}
	c := []rune(fold(candidate))
	p := []rune(fold(pattern))
	if len(p) == 0 {
		return 0, true
	}
	best, found := 0, false
	for start, r := range c {
		if r != p[0] {
			continue
		}
		if score, ok := alignFrom(c, p, start); ok && (!found || score > best) {
			best, found = score, true
		}
	}
	// fuzzy folds a few runes that fold leaves distinct; the match stands
	// without a bonus.
	return best, true
}

// alignFrom matches p greedily in c starting at start and scores the result.
func alignFrom(c, p []rune, start int) (int, bool) {
	score := matchScore
	switch {
	case start == 0:
		score += prefixBonus
	case !isWordRune(c[start-1]):
		score += boundaryBonus
	}
	prev := start
	for _, r := range p[1:] {
		next := -1
		for i := prev + 1; i < len(c); i++ {
			if c[i] == r {
				next = i
				break
			}
		}
		if next < 0 {
			return 0, false
		}
		score += matchScore
		if gap := next - prev - 1; gap == 0 {
			score += adjacentBonus
		} else {
			score -= gapOpenPenalty + gap*gapExtendPenalty
		}
		prev = next
	}
	return score, true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// fold strips combining marks and lowercases, the same normalisation the
// subsequence test applies.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

type scoredIndex struct {
	index int
	score int
}

// Rank returns indices into windows ordered by match quality for query. An
// empty query lists every window in its original order. Otherwise a window is
// kept when its name or info matches, scored by the better of the two, and
// the result is stably sorted by score so equal scores keep fetch order.
func Rank(windows []aerospace.Window, query string) []int {
	if query == "" {
		all := make([]int, len(windows))
		for i := range all {
			all[i] = i
		}
		return all
	}
	matches := make([]scoredIndex, 0, len(windows))
	for i, w := range windows {
		nameScore, nameOK := Score(w.Name, query)
		infoScore, infoOK := Score(w.Info, query)
		switch {
		case nameOK && infoOK:
			matches = append(matches, scoredIndex{index: i, score: max(nameScore, infoScore)})
		case nameOK:
			matches = append(matches, scoredIndex{index: i, score: nameScore})
		case infoOK:
			matches = append(matches, scoredIndex{index: i, score: infoScore})
		}
	}
	slices.SortStableFunc(matches, func(a, b scoredIndex) int {
		return cmp.Compare(b.score, a.score)
	})
	ranked := make([]int, len(matches))
	for i, m := range matches {
		ranked[i] = m.index
	}
	return ranked
}

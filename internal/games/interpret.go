package games

import (
	"strconv"
	"strings"

	"github.com/kevincoe/quantum-computing-project/internal/stats"
)

// passwordCharset maps a six-bit outcome to a password character.
const passwordCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@"

// artScale maps a three-bit intensity to a glyph, darkest first.
const artScale = " .:-=+*#"

// mostFrequent returns the winning outcome of a counts map, empty when
// there is nothing to rank.
func mostFrequent(counts stats.Counts) string {
	ranked := stats.RankByFrequency(counts, 1)
	if len(ranked) == 0 {
		return ""
	}
	return ranked[0].Outcome
}

// InterpretDice folds raw dice outcomes into face values "1".."sides",
// dropping the out-of-range rerolls.
func InterpretDice(counts stats.Counts, sides int) stats.Counts {
	faces := make(stats.Counts)
	for label, n := range counts {
		if v := LabelValue(label); v < sides {
			faces[strconv.Itoa(v+1)] += n
		}
	}
	return faces
}

// InterpretLottery ranks merged draw counts and returns the top picks as
// distinct numbers in [1, max].
func InterpretLottery(counts stats.Counts, picks, max int) []int {
	numbers := make([]int, 0, picks)
	seen := make(map[int]bool)
	for _, oc := range stats.RankByFrequency(counts, len(counts)) {
		n := LabelValue(oc.Outcome) + 1
		if n > max || seen[n] {
			continue
		}
		seen[n] = true
		numbers = append(numbers, n)
		if len(numbers) == picks {
			break
		}
	}
	return numbers
}

// InterpretPassword decodes the most frequent outcome of each character
// circuit into a password string.
func InterpretPassword(perChar []stats.Counts) string {
	var b strings.Builder
	for _, counts := range perChar {
		outcome := mostFrequent(counts)
		if outcome == "" {
			continue
		}
		b.WriteByte(passwordCharset[LabelValue(outcome)%len(passwordCharset)])
	}
	return b.String()
}

// InterpretArt renders one glyph per cell, width cells per row.
func InterpretArt(perCell []stats.Counts, width int) string {
	if width < 1 {
		width = 1
	}
	var b strings.Builder
	for i, counts := range perCell {
		outcome := mostFrequent(counts)
		glyph := byte(' ')
		if outcome != "" {
			glyph = artScale[LabelValue(outcome)%len(artScale)]
		}
		b.WriteByte(glyph)
		if (i+1)%width == 0 && i != len(perCell)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

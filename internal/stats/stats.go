// Package stats derives statistical metrics from quantum measurement counts.
//
// The input to every function is an outcome count map: bitstring label ->
// number of shots that produced it. All functions are pure and operate only
// on their arguments, so concurrent callers need no coordination.
package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrNoCounts is returned when an operation requires at least one outcome.
	ErrNoCounts = errors.New("no measurement counts")

	// ErrNoShots is returned when the counts sum to zero shots, making
	// probability ratios undefined.
	ErrNoShots = errors.New("total shots must be positive")

	// ErrNegativeCount is returned when an outcome carries a negative count.
	ErrNegativeCount = errors.New("negative count")
)

// Counts maps a bitstring outcome label to the number of shots that
// produced it.
type Counts map[string]int

// TotalShots sums the counts of all outcomes.
func (c Counts) TotalShots() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// OutcomeCount is a single (outcome, count) pair from a frequency ranking.
type OutcomeCount struct {
	Outcome string
	Count   int
}

// OutcomeFrequency extends OutcomeCount with the empirical probability.
type OutcomeFrequency struct {
	Outcome     string  `json:"outcome"`
	Count       int     `json:"count"`
	Probability float64 `json:"probability"`
}

// Report is a read-only snapshot of the statistics derived from one outcome
// count map. It is computed fresh on every Summarize call and never mutated.
type Report struct {
	Title          string             `json:"title"`
	TotalShots     int                `json:"total_shots"`
	UniqueOutcomes int                `json:"unique_outcomes"`
	EntropyBits    float64            `json:"entropy_bits"`
	Breakdown      []OutcomeFrequency `json:"breakdown"`
}

// validate checks the counts invariants shared by the derived statistics:
// non-empty, no negative counts, positive total. It returns the total.
func validate(counts Counts) (int, error) {
	if len(counts) == 0 {
		return 0, ErrNoCounts
	}
	total := 0
	for outcome, n := range counts {
		if n < 0 {
			return 0, fmt.Errorf("outcome %q: %w", outcome, ErrNegativeCount)
		}
		total += n
	}
	if total <= 0 {
		return 0, ErrNoShots
	}
	return total, nil
}

// Entropy computes the Shannon entropy of the outcome distribution in bits.
// A single outcome holding all shots has entropy zero; a uniform spread over
// k outcomes has entropy log2(k).
func Entropy(counts Counts) (float64, error) {
	total, err := validate(counts)
	if err != nil {
		return 0, err
	}
	probs := make([]float64, 0, len(counts))
	for _, n := range counts {
		if n > 0 {
			probs = append(probs, float64(n)/float64(total))
		}
	}
	// stat.Entropy uses the natural log; convert nats to bits.
	return stat.Entropy(probs) / math.Ln2, nil
}

// Fidelity returns the empirical frequency of the expected outcome among all
// shots. An outcome that was never observed yields 0.0, which is valid and
// not an error.
func Fidelity(expected string, counts Counts) (float64, error) {
	total, err := validate(counts)
	if err != nil {
		return 0, err
	}
	return float64(counts[expected]) / float64(total), nil
}

// TotalVariationDistance computes half the sum of absolute probability
// differences between two empirical distributions, taken over the union of
// their outcome labels. Labels missing from one side contribute probability
// zero. The result lies in [0, 1]: zero for identical distributions, one for
// disjoint support.
func TotalVariationDistance(a, b Counts, shotsA, shotsB int) (float64, error) {
	if shotsA <= 0 || shotsB <= 0 {
		return 0, fmt.Errorf("tvd: %w", ErrNoShots)
	}

	union := make(map[string]struct{}, len(a)+len(b))
	for outcome := range a {
		union[outcome] = struct{}{}
	}
	for outcome := range b {
		union[outcome] = struct{}{}
	}

	diffs := make([]float64, 0, len(union))
	for outcome := range union {
		pa := float64(a[outcome]) / float64(shotsA)
		pb := float64(b[outcome]) / float64(shotsB)
		diffs = append(diffs, math.Abs(pa-pb))
	}
	return floats.Sum(diffs) / 2, nil
}

// RankByFrequency returns the outcomes sorted by count descending, ties
// broken by ascending lexicographic label, truncated to topK entries. The
// tie-break makes the ranking deterministic regardless of map iteration
// order.
func RankByFrequency(counts Counts, topK int) []OutcomeCount {
	ranked := make([]OutcomeCount, 0, len(counts))
	for outcome, n := range counts {
		ranked = append(ranked, OutcomeCount{Outcome: outcome, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Outcome < ranked[j].Outcome
	})
	if topK < 0 {
		topK = 0
	}
	if topK < len(ranked) {
		ranked = ranked[:topK]
	}
	return ranked
}

// Summarize derives a full statistics report from an outcome count map:
// total shots, unique outcome count, Shannon entropy, and the deterministic
// sorted frequency breakdown. It performs no I/O; rendering is a separate
// concern.
func Summarize(counts Counts, title string) (*Report, error) {
	total, err := validate(counts)
	if err != nil {
		return nil, err
	}
	entropy, err := Entropy(counts)
	if err != nil {
		return nil, err
	}

	breakdown := make([]OutcomeFrequency, 0, len(counts))
	for _, oc := range RankByFrequency(counts, len(counts)) {
		breakdown = append(breakdown, OutcomeFrequency{
			Outcome:     oc.Outcome,
			Count:       oc.Count,
			Probability: float64(oc.Count) / float64(total),
		})
	}

	return &Report{
		Title:          title,
		TotalShots:     total,
		UniqueOutcomes: len(counts),
		EntropyBits:    entropy,
		Breakdown:      breakdown,
	}, nil
}

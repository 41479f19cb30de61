package validate

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

// suggest picks the candidates in options close enough to input to be
// worth showing in a "did you mean" help string, closest first.
//
// Grounded on the teacher's selections.go makeSuggestion, which computes
// a hand-rolled edit distance per candidate and keeps those within
// max(len(input)/2, max(len(option)/2, 1)); reimplemented here over the
// real github.com/agnivade/levenshtein package instead of a hand-rolled
// distance function.
func suggest(input string, options []string) []string {
	type scored struct {
		name string
		dist int
	}
	var candidates []scored
	for _, opt := range options {
		dist := levenshtein.ComputeDistance(input, opt)
		threshold := len(input) / 2
		if t := len(opt) / 2; t > threshold {
			threshold = t
		}
		if threshold < 1 {
			threshold = 1
		}
		if dist <= threshold {
			candidates = append(candidates, scored{opt, dist})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.name
	}
	return out
}

// didYouMean renders suggestions as help text, or "" if there are none.
func didYouMean(input string, options []string) string {
	matches := suggest(input, options)
	if len(matches) == 0 {
		return ""
	}
	msg := "did you mean "
	for i, m := range matches {
		if i > 0 {
			if i == len(matches)-1 {
				msg += " or "
			} else {
				msg += ", "
			}
		}
		msg += "\"" + m + "\""
	}
	return msg + "?"
}

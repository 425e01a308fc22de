package util

import (
	"sort"
	"strings"
)

// SuggestionThreshold is the minimum normalized similarity for a name to be suggested
const SuggestionThreshold = 0.33

// MaxSuggestions caps the number of suggestions attached to an error
const MaxSuggestions = 3

// DamerauLevenshteinDistance calculates the optimal string alignment distance between two
// strings: insertions, deletions, substitutions and transpositions of adjacent runes all cost 1
func DamerauLevenshteinDistance(s1, s2 string) int {
	a, b := []rune(s1), []rune(s2)
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	dp := make([][]int, len(a)+1)
	for i := range dp {
		dp[i] = make([]int, len(b)+1)
		dp[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		dp[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			dp[i][j] = min(dp[i-1][j]+1, dp[i][j-1]+1, dp[i-1][j-1]+cost)
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				dp[i][j] = min(dp[i][j], dp[i-2][j-2]+1)
			}
		}
	}

	return dp[len(a)][len(b)]
}

// Similarity returns 1 - distance/longest length, ignoring case. Identical strings score 1.
func Similarity(s1, s2 string) float64 {
	s1, s2 = strings.ToLower(s1), strings.ToLower(s2)
	longest := max(len([]rune(s1)), len([]rune(s2)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(DamerauLevenshteinDistance(s1, s2))/float64(longest)
}

// Suggest ranks candidates by similarity to input and returns at most MaxSuggestions
// names scoring at least SuggestionThreshold, best first
func Suggest(input string, candidates []string) []string {
	type scored struct {
		name  string
		score float64
	}

	seen := make(map[string]struct{}, len(candidates))
	var ranked []scored
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		if s := Similarity(input, c); s >= SuggestionThreshold {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	out := make([]string, 0, min(len(ranked), MaxSuggestions))
	for i := 0; i < len(ranked) && i < MaxSuggestions; i++ {
		out = append(out, ranked[i].name)
	}

	return out
}

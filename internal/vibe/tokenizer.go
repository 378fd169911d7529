package vibe

import "strings"

// Tokenize expands raw mood input into a deduplicated, order-preserving
// token list and an optional mood group. It never fails: input with no
// lexicon match falls back to its own words (length > 2), and empty
// input yields no tokens and GroupNone, which callers must treat as
// "no strong signal" rather than an error.
func Tokenize(raw string) ([]string, MoodGroup) {
	input := strings.ToLower(strings.TrimSpace(raw))
	if input == "" {
		return nil, GroupNone
	}

	group := GroupNone
	for _, p := range profiles {
		if containsAny(input, p.Keywords) {
			group = p.Group
			break
		}
	}

	var tokens []string

	// Forward pass: input mentions a lexicon key.
	for _, e := range lexicon {
		if strings.Contains(input, e.key) {
			tokens = append(tokens, e.key)
			tokens = append(tokens, e.expansions...)
		}
	}

	// Reverse pass: input mentions a synonym instead of its key.
	for _, e := range lexicon {
		for _, exp := range e.expansions {
			if strings.Contains(input, exp) {
				tokens = append(tokens, exp, e.key)
			}
		}
	}

	if len(tokens) == 0 {
		for _, w := range strings.Fields(input) {
			if len(w) > 2 {
				tokens = append(tokens, w)
			}
		}
	}

	return dedup(tokens), group
}

func containsAny(input string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(input, k) {
			return true
		}
	}
	return false
}

// dedup keeps the first occurrence of each token; insertion order
// drives query-building priority downstream.
func dedup(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := tokens[:0]
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

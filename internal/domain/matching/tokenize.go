package matching

import (
	"regexp"
	"strings"
)

var tokenSplitRe = regexp.MustCompile(`[^a-z0-9']+`)

// Tokenize lowercases the text, breaks hyphenated compounds apart so
// "full-stack" yields two tokens, and splits on anything that is not a
// lowercase letter, digit or apostrophe.
func Tokenize(text string) []string {
	s := strings.ToLower(text)
	s = strings.ReplaceAll(s, "-", " ")
	parts := tokenSplitRe.Split(s, -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// vocabulary is the union of both token sets, first-seen order.
func vocabulary(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	vocab := make([]string, 0, len(a)+len(b))
	for _, t := range a {
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			vocab = append(vocab, t)
		}
	}
	for _, t := range b {
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			vocab = append(vocab, t)
		}
	}
	return vocab
}

// termFrequency counts raw occurrences per vocabulary term, not
// normalized by document length.
func termFrequency(tokens, vocab []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	tf := make(map[string]int, len(vocab))
	for _, term := range vocab {
		tf[term] = counts[term]
	}
	return tf
}

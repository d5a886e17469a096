package matching

import (
	"math"
	"regexp"
)

var (
	roleSynonymRe = regexp.MustCompile(`(?i)\b(?:engineer|developer)\b`)
	verbSynonymRe = regexp.MustCompile(`(?i)\b(?:builds?|crafts?|creates?)\b`)
)

// CanonicalizeJobText collapses near-synonym job-language terms so a
// posting's phrasing and a candidate's self-description share vocabulary:
// engineer/developer variants become "developer", build/craft/create verb
// variants become "create".
func CanonicalizeJobText(text string) string {
	text = roleSynonymRe.ReplaceAllString(text, "developer")
	return verbSynonymRe.ReplaceAllString(text, "create")
}

// TextSimilarity returns the cosine similarity of the two texts' raw
// term-frequency vectors over their shared vocabulary, scaled to [0,100].
// Both texts are canonicalized before tokenization. A text that tokenizes
// to nothing scores 0 against anything.
func TextSimilarity(a, b string) float64 {
	tokensA := Tokenize(CanonicalizeJobText(a))
	tokensB := Tokenize(CanonicalizeJobText(b))

	vocab := vocabulary(tokensA, tokensB)
	tfA := termFrequency(tokensA, vocab)
	tfB := termFrequency(tokensB, vocab)

	var dot, magA, magB float64
	for _, term := range vocab {
		x := float64(tfA[term])
		y := float64(tfB[term])
		dot += x * y
		magA += x * x
		magB += y * y
	}

	magnitude := math.Sqrt(magA) * math.Sqrt(magB)
	if magnitude == 0 {
		return 0
	}
	return dot / magnitude * 100
}

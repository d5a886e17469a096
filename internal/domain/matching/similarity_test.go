package matching

import (
	"math"
	"testing"
)

func TestTextSimilarity_Symmetric(t *testing.T) {
	a := "Backend developer building Go services"
	b := "Experienced engineer who crafts distributed systems in Go"

	ab := TextSimilarity(a, b)
	ba := TextSimilarity(b, a)
	if math.Abs(ab-ba) > 1e-9 {
		t.Fatalf("similarity not symmetric: %v vs %v", ab, ba)
	}
}

func TestTextSimilarity_Identity(t *testing.T) {
	got := TextSimilarity("senior go developer", "senior go developer")
	if math.Abs(got-100) > 1e-9 {
		t.Fatalf("expected 100 for identical text, got %v", got)
	}
}

func TestTextSimilarity_EmptyText(t *testing.T) {
	if got := TextSimilarity("", "anything at all"); got != 0 {
		t.Fatalf("expected 0 against empty text, got %v", got)
	}
	if got := TextSimilarity("something", ""); got != 0 {
		t.Fatalf("expected 0 against empty text, got %v", got)
	}
	if got := TextSimilarity("", ""); got != 0 {
		t.Fatalf("expected 0 for two empty texts, got %v", got)
	}
}

func TestTextSimilarity_CanonicalizesSynonyms(t *testing.T) {
	// "engineer" and "developer" collapse to one canonical term, as do
	// the build/craft/create verb variants.
	got := TextSimilarity("software engineer builds", "software developer creates")
	if math.Abs(got-100) > 1e-9 {
		t.Fatalf("expected 100 after canonicalization, got %v", got)
	}
}

func TestCanonicalizeJobText(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Software Engineer", "Software developer"},
		{"she crafts APIs", "she create APIs"},
		{"builds and creates", "create and create"},
		{"engineering", "engineering"}, // whole words only
	}
	for _, tc := range cases {
		if got := CanonicalizeJobText(tc.in); got != tc.want {
			t.Fatalf("CanonicalizeJobText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTextSimilarity_Range(t *testing.T) {
	got := TextSimilarity("go developer in berlin", "java developer in munich")
	if got <= 0 || got >= 100 {
		t.Fatalf("expected partial similarity in (0,100), got %v", got)
	}
}

package matching

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "  \t\n", nil},
		{"lowercases", "Senior GO Developer", []string{"senior", "go", "developer"}},
		{"hyphen splits compounds", "full-stack engineer", []string{"full", "stack", "engineer"}},
		{"keeps digits and apostrophes", "it's web3 2024", []string{"it's", "web3", "2024"}},
		{"punctuation runs collapse", "Node.js,  React!!", []string{"node", "js", "react"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.in)
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestTermFrequency(t *testing.T) {
	a := Tokenize("go go developer")
	b := Tokenize("developer jobs")
	vocab := vocabulary(a, b)

	if len(vocab) != 3 {
		t.Fatalf("expected 3 vocabulary terms, got %d: %v", len(vocab), vocab)
	}

	tf := termFrequency(a, vocab)
	if tf["go"] != 2 {
		t.Fatalf("expected raw count 2 for %q, got %d", "go", tf["go"])
	}
	if tf["jobs"] != 0 {
		t.Fatalf("expected 0 for term absent from text, got %d", tf["jobs"])
	}
}

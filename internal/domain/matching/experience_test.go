package matching

import (
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

func TestTotalYears(t *testing.T) {
	entries := []ExperienceEntry{
		{StartDate: "01/2021", EndDate: "01/2023"},
	}
	got := TotalYears(entries, testNow)
	if math.Abs(got-2.0) > 1e-9 {
		t.Fatalf("expected 2.0 years, got %v", got)
	}
}

func TestTotalYears_SumsWithoutDeduplication(t *testing.T) {
	// Two fully overlapping one-year entries count twice.
	entries := []ExperienceEntry{
		{StartDate: "01/2020", EndDate: "01/2021"},
		{StartDate: "01/2020", EndDate: "01/2021"},
	}
	got := TotalYears(entries, testNow)
	want := 2 * 366.0 / 365.0 // 2020 is a leap year
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v years, got %v", want, got)
	}
}

func TestTotalYears_PresentUsesNow(t *testing.T) {
	entries := []ExperienceEntry{
		{StartDate: "06/2023", EndDate: "Present"},
	}
	got := TotalYears(entries, testNow)
	if got <= 0.9 || got >= 1.1 {
		t.Fatalf("expected roughly one year up to now, got %v", got)
	}
}

func TestTotalYears_MalformedEntriesContributeNothing(t *testing.T) {
	entries := []ExperienceEntry{
		{StartDate: "not a date", EndDate: "01/2023"},
		{StartDate: "01/2020", EndDate: "garbage"},
		{StartDate: "01/2023", EndDate: "01/2020"}, // end before start
		{StartDate: "01/2021", EndDate: "01/2022"},
	}
	got := TotalYears(entries, testNow)
	if math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("expected only the valid entry to count, got %v", got)
	}
}

func TestExperienceMatch(t *testing.T) {
	bands := DefaultExperienceBands()

	cases := []struct {
		name    string
		band    string
		entries []ExperienceEntry
		want    float64
	}{
		{
			name:    "exactly at lower bound",
			band:    "2-4 years",
			entries: []ExperienceEntry{{StartDate: "01/2021", EndDate: "01/2023"}},
			want:    100,
		},
		{
			name:    "overqualified scores 80",
			band:    "0-1 years",
			entries: []ExperienceEntry{{StartDate: "01/2021", EndDate: "01/2023"}},
			want:    80,
		},
		{
			name:    "partial credit below lower bound",
			band:    "2-4 years",
			entries: []ExperienceEntry{{StartDate: "01/2020", EndDate: "01/2021"}},
			want:    366.0 / 365.0 / 2 * 100,
		},
		{
			name:    "open-ended top band",
			band:    "8+ years",
			entries: []ExperienceEntry{{StartDate: "01/2010", EndDate: "01/2023"}},
			want:    100,
		},
		{
			name:    "zero tenure inside zero-floor band",
			band:    "0-1 years",
			entries: []ExperienceEntry{{StartDate: "01/2021", EndDate: "01/2021"}},
			want:    100,
		},
		{
			name:    "unrecognized band label",
			band:    "3-6 years",
			entries: []ExperienceEntry{{StartDate: "01/2021", EndDate: "01/2023"}},
			want:    0,
		},
		{
			name:    "empty band label",
			band:    "",
			entries: []ExperienceEntry{{StartDate: "01/2021", EndDate: "01/2023"}},
			want:    0,
		},
		{
			name:    "no experience entries",
			band:    "2-4 years",
			entries: nil,
			want:    0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExperienceMatch(tc.band, tc.entries, bands, testNow)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

package matching

import "testing"

func TestLocationMatch_RemoteAlwaysFull(t *testing.T) {
	job := JobPosting{WorkMode: WorkModeRemote}

	cases := []CandidateProfile{
		{City: "Delhi", Country: "India"},
		{City: "", Country: ""},
		{City: "  ", Country: ""},
	}
	for _, c := range cases {
		if got := LocationMatch(job, c); got != 100 {
			t.Fatalf("remote job must score 100, got %v for %+v", got, c)
		}
	}
}

func TestLocationMatch_OnsiteMissingFields(t *testing.T) {
	job := JobPosting{WorkMode: WorkModeOnsite, Country: "India", City: "Delhi"}

	if got := LocationMatch(job, CandidateProfile{City: "", Country: "India"}); got != 0 {
		t.Fatalf("expected 0 for missing city, got %v", got)
	}
	if got := LocationMatch(job, CandidateProfile{City: "Delhi", Country: ""}); got != 0 {
		t.Fatalf("expected 0 for missing country, got %v", got)
	}
}

func TestLocationMatch_OnsiteCountry(t *testing.T) {
	job := JobPosting{WorkMode: WorkModeOnsite, Country: "India", City: "Delhi"}

	if got := LocationMatch(job, CandidateProfile{City: "Mumbai", Country: "india"}); got != 100 {
		t.Fatalf("expected 100 for same country, got %v", got)
	}
	if got := LocationMatch(job, CandidateProfile{City: "Berlin", Country: "Germany"}); got != 50 {
		t.Fatalf("expected 50 for different country, got %v", got)
	}
}

func TestLocationMatch_UnknownWorkMode(t *testing.T) {
	job := JobPosting{WorkMode: "hybrid"}
	if got := LocationMatch(job, CandidateProfile{City: "Delhi", Country: "India"}); got != 0 {
		t.Fatalf("expected 0 for unknown work mode, got %v", got)
	}
}

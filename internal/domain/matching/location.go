package matching

import "strings"

// LocationMatch scores candidate geography against the posting's work
// mode, in [0,100]. Remote postings score 100 regardless of the
// candidate's location fields. Onsite postings score 0 when the candidate
// city or country is missing, 100 on a country match, and 50 otherwise.
func LocationMatch(job JobPosting, c CandidateProfile) float64 {
	if job.WorkMode == WorkModeRemote {
		return 100
	}
	if job.WorkMode != WorkModeOnsite {
		return 0
	}

	city := strings.TrimSpace(c.City)
	country := strings.TrimSpace(c.Country)
	if city == "" || country == "" {
		return 0
	}
	if strings.EqualFold(strings.TrimSpace(job.Country), country) {
		return 100
	}
	return 50
}

package matching

import (
	"math"
	"strings"
	"time"
)

// PresentEndDate marks an experience entry that is still ongoing.
const PresentEndDate = "Present"

const monthYearLayout = "01/2006"

// daysPerYear is the approximation the tenure sum is computed with.
const daysPerYear = 365

// ExperienceBand is a closed interval of years; Max is +Inf for the
// open-ended top band.
type ExperienceBand struct {
	Min float64
	Max float64
}

// DefaultExperienceBands maps the four fixed posting labels to their
// numeric intervals.
func DefaultExperienceBands() map[string]ExperienceBand {
	return map[string]ExperienceBand{
		"0-1 years": {Min: 0, Max: 1},
		"2-4 years": {Min: 2, Max: 4},
		"5-7 years": {Min: 5, Max: 7},
		"8+ years":  {Min: 8, Max: math.Inf(1)},
	}
}

func parseMonthYear(s string) (time.Time, bool) {
	t, err := time.Parse(monthYearLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// TotalYears sums tenure across all entries using a 365-day year.
// Overlapping or back-to-back entries are summed without deduplication.
// Entries with malformed dates or an end before the start contribute
// nothing.
func TotalYears(entries []ExperienceEntry, now time.Time) float64 {
	var total float64
	for _, e := range entries {
		start, ok := parseMonthYear(e.StartDate)
		if !ok {
			continue
		}
		end := now
		if !strings.EqualFold(strings.TrimSpace(e.EndDate), PresentEndDate) {
			end, ok = parseMonthYear(e.EndDate)
			if !ok {
				continue
			}
		}
		years := end.Sub(start).Hours() / (daysPerYear * 24)
		if years > 0 {
			total += years
		}
	}
	return total
}

// ExperienceMatch scores total tenure against the required band, in
// [0,100]: 100 inside the band, 80 above it (overqualified), linear
// partial credit below it. An empty entry list or an unrecognized band
// label scores 0 rather than failing the run.
func ExperienceMatch(bandLabel string, entries []ExperienceEntry, bands map[string]ExperienceBand, now time.Time) float64 {
	if bandLabel == "" || len(entries) == 0 {
		return 0
	}
	band, ok := bands[bandLabel]
	if !ok {
		return 0
	}

	total := TotalYears(entries, now)
	switch {
	case total > band.Max:
		return 80
	case total >= band.Min:
		return 100
	case band.Min <= 0:
		// Unreachable for the 0-1 band since tenure is non-negative;
		// keeps the division below well-defined.
		return 0
	default:
		return total / band.Min * 100
	}
}

package matching

import "strings"

// EducationRelevance returns 100 when any education entry's degree names
// the job role, else 50. The substring check runs one direction only,
// degree contains role. A miss is a mild penalty, never disqualifying.
func EducationRelevance(role string, education []EducationEntry) float64 {
	r := strings.ToLower(role)
	for _, e := range education {
		if e.Degree == "" {
			continue
		}
		if strings.Contains(strings.ToLower(e.Degree), r) {
			return 100
		}
	}
	return 50
}

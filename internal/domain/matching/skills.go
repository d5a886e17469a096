package matching

import "strings"

// SkillsMatch returns the percentage of required skills covered by the
// candidate's skill names, in [0,100]. The check is a case-insensitive
// substring match in either direction, so "React" still matches
// "React.js". An empty list on either side scores 0, not 100.
func SkillsMatch(required []string, candidate []CandidateSkill) float64 {
	if len(required) == 0 || len(candidate) == 0 {
		return 0
	}

	names := make([]string, 0, len(candidate))
	for _, s := range candidate {
		names = append(names, strings.ToLower(s.Name))
	}

	matched := 0
	for _, req := range required {
		r := strings.ToLower(req)
		for _, name := range names {
			if strings.Contains(name, r) || strings.Contains(r, name) {
				matched++
				break
			}
		}
	}

	return float64(matched) / float64(len(required)) * 100
}

package matching

const (
	CategoryStrong    = "Strong Match: Highly recommended for interview"
	CategoryGood      = "Good Match: Consider for interview"
	CategoryPotential = "Potential Match: Review additional qualifications"
	CategoryWeak      = "Weak Match: May not meet core requirements"
)

// Recommend derives the hiring recommendation from the composite score
// and the rounded component breakdown. Insights are appended in a fixed
// order so repeated runs produce identical output.
func Recommend(score int, b Breakdown) Recommendation {
	var category string
	switch {
	case score >= 85:
		category = CategoryStrong
	case score >= 70:
		category = CategoryGood
	case score >= 60:
		category = CategoryPotential
	default:
		category = CategoryWeak
	}

	insights := make([]string, 0, 4)

	if b.Skills >= 80 {
		insights = append(insights, "Strong skills alignment with job requirements")
	} else if b.Skills < 50 {
		insights = append(insights, "Consider evaluating technical skill gaps")
	}

	if b.Experience >= 80 {
		insights = append(insights, "Experience level well-suited for the position")
	} else if b.Experience < 50 {
		insights = append(insights, "May need additional experience in the field")
	}

	if b.Location < 50 {
		insights = append(insights, "Location might be a consideration for this role")
	}

	if b.RoleSimilarity >= 75 {
		insights = append(insights, "Previous roles strongly align with position")
	}

	return Recommendation{Category: category, Insights: insights}
}

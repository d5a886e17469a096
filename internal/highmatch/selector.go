// Package highmatch holds the contract for the downstream selection step
// that gates which ranked candidates become formal applications. The
// selection criterion belongs to the collaborator; only the shape of its
// input and output is fixed here.
package highmatch

import (
	"autohire/internal/domain/matching"

	"github.com/google/uuid"
)

// Pick is one candidate chosen by the selection step.
type Pick struct {
	CandidateID uuid.UUID
	Score       int
}

type Selector interface {
	Select(results []matching.MatchResult) []Pick
}

// ThresholdSelector picks every candidate at or above MinScore. It is
// the shipped default; a real clusterer can replace it behind the same
// contract.
type ThresholdSelector struct {
	MinScore int
}

func (s ThresholdSelector) Select(results []matching.MatchResult) []Pick {
	picks := make([]Pick, 0, len(results))
	for _, r := range results {
		if r.Score >= s.MinScore {
			picks = append(picks, Pick{CandidateID: r.CandidateID, Score: r.Score})
		}
	}
	return picks
}

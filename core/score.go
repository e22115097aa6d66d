package core

import (
	"sort"

	"github.com/altsource/altsource/schema"
)

// RankCandidates sorts evaluations by (passed, percentage) descending and
// returns the top 'limit'. Non-passed candidates are still surfaced with
// their explanation, sorted after all passed ones. Ties break on MPN so the
// ordering is stable across runs.
func RankCandidates(evals []schema.CandidateEvaluation, limit int) []schema.CandidateEvaluation {
	sort.Slice(evals, func(i, j int) bool {
		if evals[i].Passed != evals[j].Passed {
			return evals[i].Passed
		}
		if evals[i].MatchPercentage != evals[j].MatchPercentage {
			return evals[i].MatchPercentage > evals[j].MatchPercentage
		}
		return evals[i].Candidate.MPN < evals[j].Candidate.MPN
	})
	if limit > 0 && len(evals) > limit {
		return evals[:limit]
	}
	return evals
}

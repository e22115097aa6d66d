package schema

import "time"

// RuleCategory groups rule results for display.
type RuleCategory string

// Rule result categories. Fit rules evaluate like lte thresholds but are
// grouped separately so physical constraints render under their own heading.
const (
	CategoryParametric  RuleCategory = "parametric"
	CategoryFit         RuleCategory = "fit"
	CategoryReview      RuleCategory = "review"
	CategoryOperational RuleCategory = "operational"
)

// RuleEvaluationResult is the per-rule output of an evaluation. It always
// carries both raw values and a human-readable note so every verdict stays
// explainable to the engineer reviewing it.
type RuleEvaluationResult struct {
	AttributeID    string       `json:"attribute_id"`
	DisplayName    string       `json:"display_name"`
	LogicType      LogicType    `json:"logic_type"`
	Category       RuleCategory `json:"category"`
	SourceValue    string       `json:"source_value"`
	CandidateValue string       `json:"candidate_value"`
	Verdict        Verdict      `json:"verdict"`
	Note           string       `json:"note"`
	Weight         int          `json:"weight"`
	AwardedWeight  float64      `json:"awarded_weight"`
	CountsToScore  bool         `json:"counts_to_score"` // False when the rule is excluded from the denominator
}

// CandidateEvaluation is the full scored, explained verdict for one
// (source, candidate) pair. Created fresh per pair and never retained.
type CandidateEvaluation struct {
	Candidate       Part                   `json:"candidate"`
	Passed          bool                   `json:"passed"`
	Blocked         bool                   `json:"blocked"` // A blockOnMissing rule had no candidate data
	BlockReasons    []string               `json:"block_reasons,omitempty"`
	MatchPercentage float64                `json:"match_percentage"`
	AwardedWeight   float64                `json:"awarded_weight"`
	PossibleWeight  float64                `json:"possible_weight"`
	Results         []RuleEvaluationResult `json:"results"`
}

// MatchReport is the batch output for one source part against a candidate
// list, in ranked order (passed candidates first, then by percentage).
type MatchReport struct {
	ReportID    string                `json:"report_id"`
	FamilyID    string                `json:"family_id"`
	FamilyName  string                `json:"family_name"`
	Source      PartAttributes        `json:"source"`
	Candidates  []CandidateEvaluation `json:"candidates"`
	GeneratedAt time.Time             `json:"generated_at"`
}

// PassedCount returns how many candidates passed outright.
func (r *MatchReport) PassedCount() int {
	n := 0
	for i := range r.Candidates {
		if r.Candidates[i].Passed {
			n++
		}
	}
	return n
}

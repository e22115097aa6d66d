package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altsource/altsource/schema"
)

type kv struct{ id, val string }

func testPart(mpn string, attrs ...kv) schema.PartAttributes {
	pa := schema.PartAttributes{Part: schema.Part{MPN: mpn}}
	for _, a := range attrs {
		pa.SetAttribute(a.id, a.id, a.val)
	}
	return pa
}

func singleRuleTable(rule schema.MatchingRule) schema.LogicTable {
	return schema.LogicTable{FamilyID: "test_family", FamilyName: "Test Family", Rules: []schema.MatchingRule{rule}}
}

func evaluateSingle(t *testing.T, rule schema.MatchingRule, source, candidate schema.PartAttributes) schema.RuleEvaluationResult {
	t.Helper()
	table := singleRuleTable(rule)
	eval := Evaluate(&table, &source, &candidate, DefaultScorePolicy())
	require.Len(t, eval.Results, 1)
	return eval.Results[0]
}

func TestEvaluateIdentityExact(t *testing.T) {
	rule := schema.MatchingRule{AttributeID: "dielectric", DisplayName: "Dielectric", LogicType: schema.LogicIdentity, Weight: 10}

	res := evaluateSingle(t, rule, testPart("SRC", kv{"dielectric", "X7R"}), testPart("CAND", kv{"dielectric", " x7r "}))
	assert.Equal(t, schema.VerdictPass, res.Verdict)
	assert.True(t, res.CountsToScore)
	assert.Equal(t, 10.0, res.AwardedWeight)

	res = evaluateSingle(t, rule, testPart("SRC", kv{"dielectric", "X7R"}), testPart("CAND", kv{"dielectric", "Y5V"}))
	assert.Equal(t, schema.VerdictFail, res.Verdict)
	assert.True(t, res.CountsToScore)
	assert.Zero(t, res.AwardedWeight)
}

func TestEvaluateIdentityWithTolerance(t *testing.T) {
	rule := schema.MatchingRule{AttributeID: "resistance", LogicType: schema.LogicIdentity, Weight: 10, ToleranceFraction: 0.05}

	res := evaluateSingle(t, rule, testPart("SRC", kv{"resistance", "10 kOhm"}), testPart("CAND", kv{"resistance", "10.2kOhm"}))
	assert.Equal(t, schema.VerdictPass, res.Verdict)

	res = evaluateSingle(t, rule, testPart("SRC", kv{"resistance", "10 kOhm"}), testPart("CAND", kv{"resistance", "12 kOhm"}))
	assert.Equal(t, schema.VerdictFail, res.Verdict)

	// Unreadable values degrade to review and stay out of the score.
	res = evaluateSingle(t, rule, testPart("SRC", kv{"resistance", "ten"}), testPart("CAND", kv{"resistance", "10k"}))
	assert.Equal(t, schema.VerdictReview, res.Verdict)
	assert.False(t, res.CountsToScore)
}

func TestEvaluateUpgradeHierarchy(t *testing.T) {
	rule := schema.MatchingRule{
		AttributeID:      "dielectric",
		LogicType:        schema.LogicIdentityUpgrade,
		UpgradeHierarchy: []string{"X8R", "X7R", "X5R"},
		Weight:           8,
	}
	tests := []struct {
		name    string
		src     string
		cand    string
		verdict schema.Verdict
	}{
		{"same tier", "X7R", "X7R", schema.VerdictPass},
		{"upgrade tier", "X7R", "X8R", schema.VerdictPass},
		{"lower tier", "X7R", "X5R", schema.VerdictFail},
		{"unknown tier", "X7R", "Y5V", schema.VerdictReview},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := evaluateSingle(t, rule, testPart("SRC", kv{"dielectric", tt.src}), testPart("CAND", kv{"dielectric", tt.cand}))
			assert.Equal(t, tt.verdict, res.Verdict)
		})
	}
}

func TestEvaluateFlag(t *testing.T) {
	rule := schema.MatchingRule{AttributeID: "aec_q200", LogicType: schema.LogicIdentityFlag, Weight: 6}

	// Candidate adds a capability the source lacks: harmless upgrade.
	res := evaluateSingle(t, rule, testPart("SRC"), testPart("CAND", kv{"aec_q200", "Yes"}))
	assert.Equal(t, schema.VerdictPass, res.Verdict)
	assert.Equal(t, 6.0, res.AwardedWeight)

	// Neither part has it: nothing required.
	res = evaluateSingle(t, rule, testPart("SRC", kv{"aec_q200", "-"}), testPart("CAND"))
	assert.Equal(t, schema.VerdictPass, res.Verdict)

	// Candidate lacks a capability the source has.
	res = evaluateSingle(t, rule, testPart("SRC", kv{"aec_q200", "Yes"}), testPart("CAND", kv{"aec_q200", "No"}))
	assert.Equal(t, schema.VerdictFail, res.Verdict)
	assert.True(t, res.CountsToScore)
}

func TestEvaluateThreshold(t *testing.T) {
	gte := schema.MatchingRule{AttributeID: "voltage_rating", LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionGTE, Weight: 9}

	res := evaluateSingle(t, gte, testPart("SRC", kv{"voltage_rating", "50 V"}), testPart("CAND", kv{"voltage_rating", "100 V"}))
	assert.Equal(t, schema.VerdictPass, res.Verdict)

	res = evaluateSingle(t, gte, testPart("SRC", kv{"voltage_rating", "50 V"}), testPart("CAND", kv{"voltage_rating", "25 V"}))
	assert.Equal(t, schema.VerdictFail, res.Verdict)

	// fit is an lte comparison grouped under its own category.
	fit := schema.MatchingRule{AttributeID: "height", LogicType: schema.LogicFit, Weight: 7}
	res = evaluateSingle(t, fit, testPart("SRC", kv{"height", "1.6 mm"}), testPart("CAND", kv{"height", "1.2 mm"}))
	assert.Equal(t, schema.VerdictPass, res.Verdict)
	assert.Equal(t, schema.CategoryFit, res.Category)

	res = evaluateSingle(t, fit, testPart("SRC", kv{"height", "1.6 mm"}), testPart("CAND", kv{"height", "2.0 mm"}))
	assert.Equal(t, schema.VerdictFail, res.Verdict)
}

func TestEvaluateRangeSuperset(t *testing.T) {
	rule := schema.MatchingRule{
		AttributeID:        "operating_temp",
		LogicType:          schema.LogicThreshold,
		ThresholdDirection: schema.DirectionRangeSuperset,
		Weight:             8,
	}

	res := evaluateSingle(t, rule,
		testPart("SRC", kv{"operating_temp", "-40°C to +85°C"}),
		testPart("CAND", kv{"operating_temp", "-55°C ~ 125°C"}))
	assert.Equal(t, schema.VerdictPass, res.Verdict)

	res = evaluateSingle(t, rule,
		testPart("SRC", kv{"operating_temp", "-55°C ~ 125°C"}),
		testPart("CAND", kv{"operating_temp", "-40°C to +85°C"}))
	assert.Equal(t, schema.VerdictFail, res.Verdict)
	assert.Contains(t, res.Note, "does not cover")

	res = evaluateSingle(t, rule,
		testPart("SRC", kv{"operating_temp", "industrial"}),
		testPart("CAND", kv{"operating_temp", "-55 to 125"}))
	assert.Equal(t, schema.VerdictReview, res.Verdict)
}

func TestEvaluateAppReviewEarnsPartialCredit(t *testing.T) {
	rule := schema.MatchingRule{AttributeID: "moisture_level", LogicType: schema.LogicAppReview, Weight: 4}

	res := evaluateSingle(t, rule, testPart("SRC", kv{"moisture_level", "MSL 1"}), testPart("CAND", kv{"moisture_level", "MSL 3"}))
	assert.Equal(t, schema.VerdictReview, res.Verdict)
	assert.Equal(t, schema.CategoryReview, res.Category)
	assert.True(t, res.CountsToScore)
	assert.Equal(t, 4*schema.DefaultReviewCredit, res.AwardedWeight)
}

func TestEvaluateOperational(t *testing.T) {
	rule := schema.MatchingRule{AttributeID: "packaging", LogicType: schema.LogicOperational, Weight: 2}

	res := evaluateSingle(t, rule, testPart("SRC", kv{"packaging", "Tape & Reel"}), testPart("CAND", kv{"packaging", "tape & reel"}))
	assert.Equal(t, schema.VerdictPass, res.Verdict)
	assert.Equal(t, schema.CategoryOperational, res.Category)
	assert.Equal(t, 2.0, res.AwardedWeight)

	// A mismatch informs but never rejects.
	res = evaluateSingle(t, rule, testPart("SRC", kv{"packaging", "Tape & Reel"}), testPart("CAND", kv{"packaging", "Bulk"}))
	assert.Equal(t, schema.VerdictReview, res.Verdict)
	assert.Equal(t, 2*schema.DefaultReviewCredit, res.AwardedWeight)
}

func TestEvaluateRangeVoltage(t *testing.T) {
	rule := schema.MatchingRule{AttributeID: "reference_voltage", LogicType: schema.LogicRangeVoltage, Weight: 10}
	source := testPart("SRC", kv{"reference_voltage", "1.25 V"}, kv{"output_voltage", "3.3 V"})

	// A close reference keeps the divider-set output inside the band.
	res := evaluateSingle(t, rule, source, testPart("CAND", kv{"reference_voltage", "1.24 V"}))
	assert.Equal(t, schema.VerdictPass, res.Verdict)

	// A far reference shifts the output; the note proposes the corrected ratio.
	res = evaluateSingle(t, rule, source, testPart("CAND", kv{"reference_voltage", "0.8 V"}))
	assert.Equal(t, schema.VerdictFail, res.Verdict)
	assert.Contains(t, res.Note, "divider ratio")

	// Without the output voltage there is nothing to derive.
	noOut := testPart("SRC", kv{"reference_voltage", "1.25 V"})
	res = evaluateSingle(t, rule, noOut, testPart("CAND", kv{"reference_voltage", "1.24 V"}))
	assert.Equal(t, schema.VerdictReview, res.Verdict)
}

func TestEvaluateMissingCandidateData(t *testing.T) {
	blocking := schema.MatchingRule{AttributeID: "resistance", DisplayName: "Resistance", LogicType: schema.LogicIdentity, Weight: 10, BlockOnMissing: true}
	table := singleRuleTable(blocking)
	source := testPart("SRC", kv{"resistance", "10k"})
	candidate := testPart("CAND")

	eval := Evaluate(&table, &source, &candidate, DefaultScorePolicy())
	require.Len(t, eval.Results, 1)
	assert.Equal(t, schema.VerdictBlocked, eval.Results[0].Verdict)
	assert.True(t, eval.Blocked)
	assert.False(t, eval.Passed)
	require.Len(t, eval.BlockReasons, 1)
	assert.Contains(t, eval.BlockReasons[0], "Resistance")

	// Without block_on_missing the same gap is only a review item.
	soft := blocking
	soft.BlockOnMissing = false
	res := evaluateSingle(t, soft, source, candidate)
	assert.Equal(t, schema.VerdictReview, res.Verdict)
	assert.False(t, res.CountsToScore)
}

func TestEvaluateMissingSourceData(t *testing.T) {
	rule := schema.MatchingRule{AttributeID: "tcr", LogicType: schema.LogicIdentity, Weight: 5}
	res := evaluateSingle(t, rule, testPart("SRC"), testPart("CAND", kv{"tcr", "100 ppm"}))
	assert.Equal(t, schema.VerdictReview, res.Verdict)
	assert.Contains(t, res.Note, "source has no data")
}

func TestEvaluateSkipsZeroWeightRules(t *testing.T) {
	table := schema.LogicTable{Rules: []schema.MatchingRule{
		{AttributeID: "resistance", LogicType: schema.LogicIdentity, Weight: 10},
		{AttributeID: "composition", LogicType: schema.LogicIdentity, Weight: 0},
	}}
	source := testPart("SRC", kv{"resistance", "10k"}, kv{"composition", "thick film"})
	candidate := testPart("CAND", kv{"resistance", "10k"}, kv{"composition", "thin film"})

	eval := Evaluate(&table, &source, &candidate, DefaultScorePolicy())
	require.Len(t, eval.Results, 1)
	assert.Equal(t, "resistance", eval.Results[0].AttributeID)
}

func TestEvaluateMandatoryFailSinksCandidate(t *testing.T) {
	table := schema.LogicTable{Rules: []schema.MatchingRule{
		{AttributeID: "resistance", LogicType: schema.LogicIdentity, Weight: schema.MandatoryWeight},
		{AttributeID: "packaging", LogicType: schema.LogicOperational, Weight: 2},
	}}
	source := testPart("SRC", kv{"resistance", "10k"}, kv{"packaging", "Tape & Reel"})
	candidate := testPart("CAND", kv{"resistance", "22k"}, kv{"packaging", "Tape & Reel"})

	eval := Evaluate(&table, &source, &candidate, DefaultScorePolicy())
	assert.False(t, eval.Passed)
	assert.False(t, eval.Blocked)
}

func TestEvaluateMatchPercentage(t *testing.T) {
	table := schema.LogicTable{Rules: []schema.MatchingRule{
		{AttributeID: "resistance", LogicType: schema.LogicIdentity, Weight: 9},
		{AttributeID: "tolerance", LogicType: schema.LogicIdentity, Weight: 5},
	}}
	source := testPart("SRC", kv{"resistance", "10k"}, kv{"tolerance", "1%"})
	candidate := testPart("CAND", kv{"resistance", "10k"}, kv{"tolerance", "5%"})

	eval := Evaluate(&table, &source, &candidate, DefaultScorePolicy())
	assert.InDelta(t, 100*9.0/14.0, eval.MatchPercentage, 1e-9)
	assert.True(t, eval.Passed)
}

func TestEvaluateNothingScoreable(t *testing.T) {
	// All review verdicts from unreadable data: nothing disqualifying either.
	table := singleRuleTable(schema.MatchingRule{AttributeID: "resistance", LogicType: schema.LogicIdentity, Weight: 5, ToleranceFraction: 0.01})
	source := testPart("SRC", kv{"resistance", "ten"})
	candidate := testPart("CAND", kv{"resistance", "ten"})

	eval := Evaluate(&table, &source, &candidate, DefaultScorePolicy())
	assert.Equal(t, 100.0, eval.MatchPercentage)
	assert.True(t, eval.Passed)
}

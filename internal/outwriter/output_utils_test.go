package outwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/altsource/altsource/internal/contract"
	"github.com/altsource/altsource/schema"
)

func TestCreateFormatters(t *testing.T) {
	fmtFloat, intFmt := createFormatters(2)
	assert.Equal(t, "3.14", fmtFloat(3.14159))
	assert.Equal(t, "%d", intFmt)

	fmtFloat, _ = createFormatters(0)
	assert.Equal(t, "3", fmtFloat(3.14159))
}

func TestFormatTopRuleBreakdown(t *testing.T) {
	tests := []struct {
		name    string
		results []schema.RuleEvaluationResult
		want    string
	}{
		{
			name: "all pass",
			results: []schema.RuleEvaluationResult{
				{AttributeID: "resistance", Verdict: schema.VerdictPass, Weight: 10},
			},
			want: "All rules pass",
		},
		{
			name: "heaviest problem first",
			results: []schema.RuleEvaluationResult{
				{AttributeID: "tcr", Verdict: schema.VerdictFail, Weight: 5},
				{AttributeID: "tolerance", Verdict: schema.VerdictBlocked, Weight: 9},
				{AttributeID: "resistance", Verdict: schema.VerdictPass, Weight: 10},
			},
			want: "tolerance > tcr",
		},
		{
			name: "limited to top three",
			results: []schema.RuleEvaluationResult{
				{AttributeID: "a", Verdict: schema.VerdictFail, Weight: 9},
				{AttributeID: "b", Verdict: schema.VerdictFail, Weight: 8},
				{AttributeID: "c", Verdict: schema.VerdictReview, Weight: 7},
				{AttributeID: "d", Verdict: schema.VerdictFail, Weight: 6},
			},
			want: "a > b > c",
		},
		{
			name: "skipped rules are not problems",
			results: []schema.RuleEvaluationResult{
				{AttributeID: "automotive", Verdict: schema.VerdictSkipped, Weight: 3},
			},
			want: "All rules pass",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := &schema.CandidateEvaluation{Results: tt.results}
			assert.Equal(t, tt.want, formatTopRuleBreakdown(eval))
		})
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "", formatPrice(0))
	assert.Equal(t, "$0.0120", formatPrice(0.012))
}

func TestGetMaxReasonWidth(t *testing.T) {
	narrow := &contract.Config{Width: 60}
	assert.Equal(t, 15, getMaxReasonWidth(narrow))

	wide := &contract.Config{Width: 500}
	assert.Equal(t, 60, getMaxReasonWidth(wide))

	medium := &contract.Config{Width: 100}
	got := getMaxReasonWidth(medium)
	assert.Greater(t, got, 15)
	assert.Less(t, got, 60)

	detail := &contract.Config{Width: 100, Detail: true}
	assert.Equal(t, 15, getMaxReasonWidth(detail))
}

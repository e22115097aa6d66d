package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altsource/altsource/schema"
)

func contextTestTable() schema.LogicTable {
	return schema.LogicTable{
		FamilyID: "chip_resistor",
		Rules: []schema.MatchingRule{
			{AttributeID: "tolerance", LogicType: schema.LogicIdentity, Weight: 5, Rationale: "catalog default"},
			{AttributeID: "power_rating", LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionGTE, Weight: 8},
			{AttributeID: "tcr", LogicType: schema.LogicIdentity, Weight: 4},
			{AttributeID: "packaging", LogicType: schema.LogicOperational, Weight: 2, BlockOnMissing: false},
		},
	}
}

func contextTestConfig() *schema.FamilyContextConfig {
	return &schema.FamilyContextConfig{
		FamilyID: "chip_resistor",
		Questions: []schema.ContextQuestion{
			{
				ID:     "application",
				Prompt: "What application is the part used in?",
				Options: []schema.ContextOption{
					{Value: "automotive", Effects: []schema.AttributeEffect{
						{AttributeID: "tolerance", EffectKind: schema.EffectEscalateMandatory, BlockOnMissing: true},
					}},
					{Value: "consumer"},
				},
			},
			{
				ID:        "pulse_load",
				Prompt:    "Does the circuit see pulse loads?",
				Condition: &schema.QuestionCondition{QuestionID: "application", AnyOf: []string{"automotive", "industrial"}},
				Options: []schema.ContextOption{
					{Value: "yes", Effects: []schema.AttributeEffect{
						{AttributeID: "power_rating", EffectKind: schema.EffectEscalatePrimary},
					}},
				},
			},
			{
				ID:     "tcr_matters",
				Prompt: "Does temperature drift matter?",
				Options: []schema.ContextOption{
					{Value: "no", Effects: []schema.AttributeEffect{
						{AttributeID: "tcr", EffectKind: schema.EffectNotApplicable, BlockOnMissing: true},
					}},
					{Value: "unsure", Effects: []schema.AttributeEffect{
						{AttributeID: "tcr", EffectKind: schema.EffectAddReviewFlag},
					}},
				},
				AllowFreeText: true,
			},
			{
				ID:     "ambient",
				Prompt: "What is the ambient temperature?",
				Options: []schema.ContextOption{
					{Value: "high", Effects: []schema.AttributeEffect{
						{AttributeID: "tolerance", EffectKind: schema.EffectSetThreshold, Note: "derate for 105C ambient"},
						{AttributeID: "no_such_attribute", EffectKind: schema.EffectEscalateMandatory},
					}},
				},
			},
		},
	}
}

func applyAnswers(t *testing.T, answers map[string]string) schema.LogicTable {
	t.Helper()
	table := contextTestTable()
	appCtx := &schema.ApplicationContext{FamilyID: "chip_resistor", Answers: answers}
	return ApplyContext(&table, appCtx, contextTestConfig())
}

func TestApplyContextNoAnswers(t *testing.T) {
	table := contextTestTable()
	out := ApplyContext(&table, nil, contextTestConfig())
	assert.Equal(t, table.Rules, out.Rules)

	// The output is an independent clone.
	out.Rules[0].Weight = 1
	assert.Equal(t, 5, table.RuleByID("tolerance").Weight)
}

func TestApplyContextEscalateMandatory(t *testing.T) {
	out := applyAnswers(t, map[string]string{"application": "automotive"})

	tol := out.RuleByID("tolerance")
	require.NotNil(t, tol)
	assert.Equal(t, schema.MandatoryWeight, tol.Weight)
	assert.True(t, tol.BlockOnMissing)
}

func TestApplyContextDoesNotMutateInput(t *testing.T) {
	table := contextTestTable()
	appCtx := &schema.ApplicationContext{Answers: map[string]string{"application": "automotive"}}
	_ = ApplyContext(&table, appCtx, contextTestConfig())

	assert.Equal(t, 5, table.RuleByID("tolerance").Weight)
	assert.False(t, table.RuleByID("tolerance").BlockOnMissing)
}

func TestApplyContextConditionGating(t *testing.T) {
	// The dependent answer alone must not fire.
	out := applyAnswers(t, map[string]string{"pulse_load": "yes"})
	assert.Equal(t, 8, out.RuleByID("power_rating").Weight)

	// With the wrong prerequisite it still must not fire.
	out = applyAnswers(t, map[string]string{"application": "consumer", "pulse_load": "yes"})
	assert.Equal(t, 8, out.RuleByID("power_rating").Weight)

	// With the right prerequisite it escalates to primary.
	out = applyAnswers(t, map[string]string{"application": "automotive", "pulse_load": "yes"})
	assert.Equal(t, schema.MandatoryWeight-1, out.RuleByID("power_rating").Weight)
}

func TestApplyContextEscalatePrimaryNeverDowngrades(t *testing.T) {
	table := contextTestTable()
	table.RuleByID("power_rating").Weight = schema.MandatoryWeight
	appCtx := &schema.ApplicationContext{Answers: map[string]string{"application": "automotive", "pulse_load": "yes"}}

	out := ApplyContext(&table, appCtx, contextTestConfig())
	assert.Equal(t, schema.MandatoryWeight, out.RuleByID("power_rating").Weight)
}

func TestApplyContextNotApplicable(t *testing.T) {
	out := applyAnswers(t, map[string]string{"tcr_matters": "no"})

	tcr := out.RuleByID("tcr")
	require.NotNil(t, tcr)
	assert.Zero(t, tcr.Weight)
	// not_applicable wins over the effect's own block_on_missing.
	assert.False(t, tcr.BlockOnMissing)
}

func TestApplyContextAddReviewFlag(t *testing.T) {
	out := applyAnswers(t, map[string]string{"tcr_matters": "unsure"})
	assert.Equal(t, schema.LogicAppReview, out.RuleByID("tcr").LogicType)
}

func TestApplyContextSetThresholdAnnotatesRationale(t *testing.T) {
	out := applyAnswers(t, map[string]string{"ambient": "high"})

	tol := out.RuleByID("tolerance")
	assert.Equal(t, "catalog default [context: derate for 105C ambient]", tol.Rationale)
	// The unknown attribute id in the same option is skipped silently.
	assert.Len(t, out.Rules, 4)
}

func TestApplyContextFreeTextAnswerIsAdvisoryOnly(t *testing.T) {
	out := applyAnswers(t, map[string]string{"tcr_matters": "only below -20C"})
	assert.Equal(t, 4, out.RuleByID("tcr").Weight)
	assert.Equal(t, schema.LogicIdentity, out.RuleByID("tcr").LogicType)
}

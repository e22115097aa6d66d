package core

import (
	"fmt"

	"github.com/altsource/altsource/schema"
)

// ApplyContext adapts a logic table to the user's application context and
// returns a new table; the input table is never mutated. Effects are
// independent and idempotent, so questions can be processed in any order.
// A question's condition still gates whether it may contribute effects at
// all, even if the user answered it out of order.
func ApplyContext(table *schema.LogicTable, appCtx *schema.ApplicationContext, config *schema.FamilyContextConfig) schema.LogicTable {
	out := table.Clone()
	if appCtx == nil || len(appCtx.Answers) == 0 || config == nil {
		return out
	}

	for i := range config.Questions {
		q := &config.Questions[i]
		answer, answered := appCtx.Answers[q.ID]
		if !answered {
			continue
		}
		if !conditionMet(q.Condition, appCtx.Answers) {
			continue
		}
		option := q.OptionByValue(answer)
		if option == nil {
			// Free text is advisory to a human reviewer only.
			continue
		}
		for j := range option.Effects {
			applyEffect(&out, &option.Effects[j])
		}
	}
	return out
}

// conditionMet checks a question's prerequisite against the answer map.
func conditionMet(cond *schema.QuestionCondition, answers map[string]string) bool {
	if cond == nil {
		return true
	}
	given, ok := answers[cond.QuestionID]
	if !ok {
		return false
	}
	for _, allowed := range cond.AnyOf {
		if given == allowed {
			return true
		}
	}
	return false
}

// applyEffect adjusts a single rule in place. Effects referencing attribute
// ids the table does not carry are skipped silently, which lets one context
// config be shared across families whose tables differ.
func applyEffect(table *schema.LogicTable, effect *schema.AttributeEffect) {
	rule := table.RuleByID(effect.AttributeID)
	if rule == nil {
		return
	}

	switch effect.EffectKind {
	case schema.EffectEscalateMandatory:
		rule.Weight = schema.MandatoryWeight
	case schema.EffectEscalatePrimary:
		if rule.Weight < schema.MandatoryWeight-1 {
			rule.Weight = schema.MandatoryWeight - 1
		}
	case schema.EffectNotApplicable:
		rule.Weight = 0
		rule.BlockOnMissing = false
	case schema.EffectAddReviewFlag:
		rule.LogicType = schema.LogicAppReview
	case schema.EffectSetThreshold:
		// The engine does not recompute comparison boundaries from context;
		// a human must confirm the new boundary value.
		if effect.Note != "" {
			if rule.Rationale != "" {
				rule.Rationale = fmt.Sprintf("%s [context: %s]", rule.Rationale, effect.Note)
			} else {
				rule.Rationale = fmt.Sprintf("[context: %s]", effect.Note)
			}
		}
	}

	if effect.BlockOnMissing && effect.EffectKind != schema.EffectNotApplicable {
		rule.BlockOnMissing = true
	}
}

// Package core has the matching engine, table derivation, context
// escalation and family classification logic.
package core

import (
	"fmt"

	"github.com/altsource/altsource/schema"
)

// attributeOutputVoltage is the companion attribute a range_voltage_check
// rule reads from both parts to verify the divider-set output voltage.
const attributeOutputVoltage = "output_voltage"

// defaultVoltageBand is the output tolerance band applied when a
// range_voltage_check rule does not declare its own tolerance fraction.
const defaultVoltageBand = 0.03

// ScorePolicy holds the tunable scoring constants. ReviewCredit is the
// fraction of a rule's weight awarded for a review verdict.
type ScorePolicy struct {
	ReviewCredit float64
}

// DefaultScorePolicy returns the standard scoring policy.
func DefaultScorePolicy() ScorePolicy {
	return ScorePolicy{ReviewCredit: schema.DefaultReviewCredit}
}

// Evaluate scores one candidate against a source part using the given logic
// table. It is a pure function: data-quality problems degrade to review or
// fail verdicts, never errors, so every candidate gets an explainable result.
func Evaluate(table *schema.LogicTable, source, candidate *schema.PartAttributes, policy ScorePolicy) schema.CandidateEvaluation {
	eval := schema.CandidateEvaluation{Candidate: candidate.Part}

	mandatoryFailed := false
	for i := range table.Rules {
		rule := &table.Rules[i]
		if rule.Weight <= 0 {
			continue
		}

		res := evaluateRule(rule, source, candidate, policy)
		eval.Results = append(eval.Results, res)

		if res.CountsToScore {
			eval.AwardedWeight += res.AwardedWeight
			eval.PossibleWeight += float64(rule.Weight)
		}
		switch res.Verdict {
		case schema.VerdictBlocked:
			eval.Blocked = true
			eval.BlockReasons = append(eval.BlockReasons, fmt.Sprintf("%s: %s", rule.DisplayName, res.Note))
		case schema.VerdictFail:
			if rule.Weight >= schema.MandatoryWeight {
				mandatoryFailed = true
			}
		}
	}

	if eval.PossibleWeight > 0 {
		eval.MatchPercentage = 100 * eval.AwardedWeight / eval.PossibleWeight
	} else {
		// Nothing scoreable means nothing disqualifying either.
		eval.MatchPercentage = 100
	}
	eval.Passed = !eval.Blocked && !mandatoryFailed
	return eval
}

// evaluateRule produces the verdict for a single rule. Evaluation of the
// remaining rules proceeds even after a hard block so the full explanation
// reaches the caller.
func evaluateRule(rule *schema.MatchingRule, source, candidate *schema.PartAttributes, policy ScorePolicy) schema.RuleEvaluationResult {
	res := schema.RuleEvaluationResult{
		AttributeID: rule.AttributeID,
		DisplayName: rule.DisplayName,
		LogicType:   rule.LogicType,
		Category:    categoryFor(rule.LogicType),
		Weight:      rule.Weight,
	}

	srcAttr := source.Attribute(rule.AttributeID)
	candAttr := candidate.Attribute(rule.AttributeID)
	if srcAttr != nil {
		res.SourceValue = srcAttr.RawValue
	}
	if candAttr != nil {
		res.CandidateValue = candAttr.RawValue
	}

	// identity_flag has its own missing-data semantics: absence is an answer.
	if rule.LogicType == schema.LogicIdentityFlag {
		evaluateFlag(rule, &res)
		return res
	}

	if candAttr == nil || candAttr.RawValue == "" {
		if rule.BlockOnMissing {
			res.Verdict = schema.VerdictBlocked
			res.CountsToScore = true
			res.Note = "candidate has no data for a mandatory attribute"
			return res
		}
		res.Verdict = schema.VerdictReview
		res.Note = "candidate has no data; confirm manually"
		return res
	}
	if srcAttr == nil || srcAttr.RawValue == "" {
		// Without a source value there is nothing to compare against.
		res.Verdict = schema.VerdictReview
		res.Note = "source has no data; confirm manually"
		return res
	}

	switch rule.LogicType {
	case schema.LogicIdentity:
		evaluateIdentity(rule, srcAttr, candAttr, &res)
	case schema.LogicIdentityUpgrade:
		evaluateUpgrade(rule, srcAttr, candAttr, &res)
	case schema.LogicThreshold:
		evaluateThreshold(rule.ThresholdDirection, srcAttr, candAttr, &res)
	case schema.LogicFit:
		evaluateThreshold(schema.DirectionLTE, srcAttr, candAttr, &res)
	case schema.LogicAppReview:
		res.Verdict = schema.VerdictReview
		res.Note = "cannot be automated; must be confirmed by an engineer"
	case schema.LogicOperational:
		evaluateOperational(srcAttr, candAttr, &res)
	case schema.LogicRangeVoltage:
		evaluateRangeVoltage(rule, source, srcAttr, candAttr, &res)
	default:
		res.Verdict = schema.VerdictReview
		res.Note = fmt.Sprintf("unknown logic type %q", rule.LogicType)
	}

	switch res.Verdict {
	case schema.VerdictPass:
		res.CountsToScore = true
		res.AwardedWeight = float64(rule.Weight)
	case schema.VerdictFail:
		res.CountsToScore = true
	case schema.VerdictReview:
		// Reviews that stem from unreadable data neither help nor hurt the
		// score; deliberate review rules earn partial credit.
		if rule.LogicType == schema.LogicAppReview || rule.LogicType == schema.LogicOperational {
			res.CountsToScore = true
			res.AwardedWeight = float64(rule.Weight) * policy.ReviewCredit
		}
	}
	return res
}

// categoryFor maps a logic type to its display grouping.
func categoryFor(lt schema.LogicType) schema.RuleCategory {
	switch lt {
	case schema.LogicFit:
		return schema.CategoryFit
	case schema.LogicAppReview:
		return schema.CategoryReview
	case schema.LogicOperational:
		return schema.CategoryOperational
	}
	return schema.CategoryParametric
}

// evaluateIdentity compares normalized values for equality, or parsed
// numerics for closeness when the rule tolerates a bounded deviation.
func evaluateIdentity(rule *schema.MatchingRule, srcAttr, candAttr *schema.ParametricAttribute, res *schema.RuleEvaluationResult) {
	if rule.ToleranceFraction > 0 {
		srcVal, okS := NumericOf(srcAttr.RawValue, srcAttr.NumericValue)
		candVal, okC := NumericOf(candAttr.RawValue, candAttr.NumericValue)
		if !okS || !okC {
			res.Verdict = schema.VerdictReview
			res.Note = "value is not numeric; confirm manually"
			return
		}
		if WithinTolerance(srcVal, candVal, rule.ToleranceFraction) {
			res.Verdict = schema.VerdictPass
			res.Note = fmt.Sprintf("within %.0f%% of source value", rule.ToleranceFraction*100)
		} else {
			res.Verdict = schema.VerdictFail
			res.Note = fmt.Sprintf("deviates more than %.0f%% from source value", rule.ToleranceFraction*100)
		}
		return
	}

	if NormalizeValue(srcAttr.RawValue) == NormalizeValue(candAttr.RawValue) {
		res.Verdict = schema.VerdictPass
		res.Note = "exact match"
	} else {
		res.Verdict = schema.VerdictFail
		res.Note = "values differ"
	}
}

// evaluateUpgrade passes a candidate at an equal or better hierarchy tier.
// Lower index is better; values outside the hierarchy are unparseable and
// degrade to review.
func evaluateUpgrade(rule *schema.MatchingRule, srcAttr, candAttr *schema.ParametricAttribute, res *schema.RuleEvaluationResult) {
	srcIdx := hierarchyIndex(rule.UpgradeHierarchy, srcAttr.RawValue)
	candIdx := hierarchyIndex(rule.UpgradeHierarchy, candAttr.RawValue)
	if srcIdx < 0 || candIdx < 0 {
		res.Verdict = schema.VerdictReview
		res.Note = "value is not a known tier; confirm manually"
		return
	}
	switch {
	case candIdx < srcIdx:
		res.Verdict = schema.VerdictPass
		res.Note = "candidate is an upgrade tier"
	case candIdx == srcIdx:
		res.Verdict = schema.VerdictPass
		res.Note = "same tier"
	default:
		res.Verdict = schema.VerdictFail
		res.Note = "candidate is a lower tier"
	}
}

// evaluateFlag handles boolean capability presence. A candidate that adds a
// capability the source lacks is a harmless upgrade.
func evaluateFlag(rule *schema.MatchingRule, res *schema.RuleEvaluationResult) {
	sourceHas := ParseFlag(res.SourceValue)
	candidateHas := ParseFlag(res.CandidateValue)

	res.CountsToScore = true
	switch {
	case !sourceHas:
		res.Verdict = schema.VerdictPass
		if candidateHas {
			res.Note = "candidate adds a capability the source lacks"
		} else {
			res.Note = "capability not required by source"
		}
		res.AwardedWeight = float64(rule.Weight)
	case candidateHas:
		res.Verdict = schema.VerdictPass
		res.Note = "capability present on both parts"
		res.AwardedWeight = float64(rule.Weight)
	default:
		res.Verdict = schema.VerdictFail
		res.Note = "candidate lacks a capability the source has"
	}
}

// evaluateThreshold compares parsed numerics per direction, or full range
// containment for range_superset. Unparseable values degrade to review.
func evaluateThreshold(direction schema.ThresholdDirection, srcAttr, candAttr *schema.ParametricAttribute, res *schema.RuleEvaluationResult) {
	if direction == schema.DirectionRangeSuperset {
		srcLo, srcHi, okS := ParseRange(srcAttr.RawValue)
		candLo, candHi, okC := ParseRange(candAttr.RawValue)
		if !okS || !okC {
			res.Verdict = schema.VerdictReview
			res.Note = "range could not be parsed; confirm manually"
			return
		}
		if candLo <= srcLo && candHi >= srcHi {
			res.Verdict = schema.VerdictPass
			res.Note = "candidate range covers source range"
		} else {
			res.Verdict = schema.VerdictFail
			res.Note = fmt.Sprintf("candidate range [%s, %s] does not cover [%s, %s]",
				formatNumeric(candLo), formatNumeric(candHi), formatNumeric(srcLo), formatNumeric(srcHi))
		}
		return
	}

	srcVal, okS := NumericOf(srcAttr.RawValue, srcAttr.NumericValue)
	candVal, okC := NumericOf(candAttr.RawValue, candAttr.NumericValue)
	if !okS || !okC {
		res.Verdict = schema.VerdictReview
		res.Note = "value is not numeric; confirm manually"
		return
	}

	ok := candVal >= srcVal
	relation := "at least"
	if direction == schema.DirectionLTE {
		ok = candVal <= srcVal
		relation = "at most"
	}
	if ok {
		res.Verdict = schema.VerdictPass
		res.Note = fmt.Sprintf("%s is %s the source's %s", formatNumeric(candVal), relation, formatNumeric(srcVal))
	} else {
		res.Verdict = schema.VerdictFail
		res.Note = fmt.Sprintf("%s is not %s the source's %s", formatNumeric(candVal), relation, formatNumeric(srcVal))
	}
}

// evaluateOperational handles logistics/packaging attributes. They inform
// the score but can never cause rejection; a mismatch is a review item.
func evaluateOperational(srcAttr, candAttr *schema.ParametricAttribute, res *schema.RuleEvaluationResult) {
	if NormalizeValue(srcAttr.RawValue) == NormalizeValue(candAttr.RawValue) {
		res.Verdict = schema.VerdictPass
		res.Note = "matches source"
	} else {
		res.Verdict = schema.VerdictReview
		res.Note = "differs from source; informational only"
	}
}

// evaluateRangeVoltage verifies that a candidate regulator's reference
// voltage keeps the divider-set output voltage inside the tolerance band
// when the external divider is left unchanged. On failure the note reports
// the corrected divider ratio that would restore the original output.
func evaluateRangeVoltage(rule *schema.MatchingRule, source *schema.PartAttributes, srcAttr, candAttr *schema.ParametricAttribute, res *schema.RuleEvaluationResult) {
	band := rule.ToleranceFraction
	if band <= 0 {
		band = defaultVoltageBand
	}

	srcVref, okSV := NumericOf(srcAttr.RawValue, srcAttr.NumericValue)
	candVref, okCV := NumericOf(candAttr.RawValue, candAttr.NumericValue)

	var targetVout float64
	okVout := false
	if outAttr := source.Attribute(attributeOutputVoltage); outAttr != nil {
		targetVout, okVout = NumericOf(outAttr.RawValue, outAttr.NumericValue)
	}

	if !okSV || !okCV || !okVout || srcVref == 0 {
		res.Verdict = schema.VerdictReview
		res.Note = "reference or output voltage unavailable; confirm manually"
		return
	}

	// Output scales with Vref when the divider ratio is unchanged.
	shiftedVout := candVref * targetVout / srcVref
	if WithinTolerance(targetVout, shiftedVout, band) {
		res.Verdict = schema.VerdictPass
		res.Note = fmt.Sprintf("output stays at %s V with the existing divider", formatNumeric(shiftedVout))
		return
	}

	correctedRatio := targetVout/candVref - 1
	res.Verdict = schema.VerdictFail
	res.Note = fmt.Sprintf("output would shift to %s V; set divider ratio R1/R2 to %s to restore %s V",
		formatNumeric(shiftedVout), formatNumeric(correctedRatio), formatNumeric(targetVout))
}

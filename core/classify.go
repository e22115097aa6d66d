package core

import (
	"regexp"
	"strings"

	"github.com/altsource/altsource/schema"
)

// NumericPredicate constrains a parsed numeric attribute to an inclusive
// interval. Nil endpoints are unbounded.
type NumericPredicate struct {
	AttributeID string
	Min         *float64
	Max         *float64
}

// ClassifierRule maps parts of a base family to a more specific sub-family.
// Rules run in list order and the first match wins, so stronger signals
// (explicit keywords) must be listed before weaker heuristics
// (numeric-range-only) to avoid cross-family misclassification.
type ClassifierRule struct {
	BaseFamilyID   string
	TargetFamilyID string
	Keywords       []string          // any-of, matched against category, subcategory and description text
	MPNPattern     *regexp.Regexp    // optional manufacturer part number pattern
	Numeric        []NumericPredicate // all must hold
}

// ClassifyFamily decides whether a part belongs to a more specific
// sub-family of the given base family. Only rules scoped to the base family
// are considered. If no rule matches, classification falls back to the base
// family and never blocks evaluation.
func ClassifyFamily(baseFamilyID string, attrs *schema.PartAttributes, rules []ClassifierRule) string {
	for i := range rules {
		rule := &rules[i]
		if rule.BaseFamilyID != baseFamilyID {
			continue
		}
		if classifierMatches(rule, attrs) {
			return rule.TargetFamilyID
		}
	}
	return baseFamilyID
}

// classifierMatches requires every declared signal on the rule to hold.
func classifierMatches(rule *ClassifierRule, attrs *schema.PartAttributes) bool {
	matched := false

	if len(rule.Keywords) > 0 {
		if !keywordHit(rule.Keywords, attrs) {
			return false
		}
		matched = true
	}

	if rule.MPNPattern != nil {
		if !rule.MPNPattern.MatchString(attrs.Part.MPN) {
			return false
		}
		matched = true
	}

	for i := range rule.Numeric {
		pred := &rule.Numeric[i]
		attr := attrs.Attribute(pred.AttributeID)
		if attr == nil {
			return false
		}
		v, ok := NumericOf(attr.RawValue, attr.NumericValue)
		if !ok {
			return false
		}
		if pred.Min != nil && v < *pred.Min {
			return false
		}
		if pred.Max != nil && v > *pred.Max {
			return false
		}
		matched = true
	}

	return matched
}

// keywordHit scans the part's descriptive text for any of the keywords.
func keywordHit(keywords []string, attrs *schema.PartAttributes) bool {
	haystack := strings.ToLower(strings.Join([]string{
		attrs.Part.Category,
		attrs.Part.Subcategory,
	}, " "))
	if desc := attrs.Attribute("description"); desc != nil {
		haystack += " " + strings.ToLower(desc.RawValue)
	}
	for _, kw := range keywords {
		if strings.Contains(haystack, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

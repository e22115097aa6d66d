package schema

// MatchingRule is the atomic unit of substitution policy for one attribute.
type MatchingRule struct {
	AttributeID        string             `json:"attribute_id" yaml:"attribute_id"`
	DisplayName        string             `json:"display_name" yaml:"display_name"`
	LogicType          LogicType          `json:"logic_type" yaml:"logic_type"`
	ThresholdDirection ThresholdDirection `json:"threshold_direction,omitempty" yaml:"threshold_direction,omitempty"` // Required when LogicType is threshold
	UpgradeHierarchy   []string           `json:"upgrade_hierarchy,omitempty" yaml:"upgrade_hierarchy,omitempty"`     // Best tier first; required for identity_upgrade
	Weight             int                `json:"weight" yaml:"weight"`                                               // 0-10; 0 means the rule is not evaluated
	BlockOnMissing     bool               `json:"block_on_missing,omitempty" yaml:"block_on_missing,omitempty"`
	ToleranceFraction  float64            `json:"tolerance_fraction,omitempty" yaml:"tolerance_fraction,omitempty"` // Bounded deviation for identity comparisons
	Rationale          string             `json:"rationale,omitempty" yaml:"rationale,omitempty"`                   // Free text, never interpreted programmatically
	SortOrder          int                `json:"sort_order,omitempty" yaml:"sort_order,omitempty"`                 // Display ordering only
}

// Clone returns a deep copy of the rule, including the hierarchy slice.
func (r MatchingRule) Clone() MatchingRule {
	out := r
	if r.UpgradeHierarchy != nil {
		out.UpgradeHierarchy = make([]string, len(r.UpgradeHierarchy))
		copy(out.UpgradeHierarchy, r.UpgradeHierarchy)
	}
	return out
}

// LogicTable is the full rule set for one component family. Tables are built
// once at load time and shared read-only across all evaluations.
type LogicTable struct {
	FamilyID    string         `json:"family_id" yaml:"family_id"`
	FamilyName  string         `json:"family_name" yaml:"family_name"`
	Category    string         `json:"category" yaml:"category"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Rules       []MatchingRule `json:"rules" yaml:"rules"`
}

// RuleByID returns a pointer into the table's rule slice for the given
// attribute id, or nil. AttributeID is unique within one table.
func (t *LogicTable) RuleByID(attributeID string) *MatchingRule {
	for i := range t.Rules {
		if t.Rules[i].AttributeID == attributeID {
			return &t.Rules[i]
		}
	}
	return nil
}

// Clone returns an independent deep copy of the table. Derivation and context
// escalation operate on clones so the registry's tables stay untouched.
func (t *LogicTable) Clone() LogicTable {
	out := *t
	out.Rules = make([]MatchingRule, len(t.Rules))
	for i := range t.Rules {
		out.Rules[i] = t.Rules[i].Clone()
	}
	return out
}

// MaxSortOrder returns the highest SortOrder among the table's rules.
func (t *LogicTable) MaxSortOrder() int {
	max := 0
	for i := range t.Rules {
		if t.Rules[i].SortOrder > max {
			max = t.Rules[i].SortOrder
		}
	}
	return max
}

// RuleOverride replaces only the fields explicitly present (non-nil) on an
// existing rule during table derivation.
type RuleOverride struct {
	AttributeID        string              `json:"attribute_id" yaml:"attribute_id"`
	DisplayName        *string             `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	LogicType          *LogicType          `json:"logic_type,omitempty" yaml:"logic_type,omitempty"`
	ThresholdDirection *ThresholdDirection `json:"threshold_direction,omitempty" yaml:"threshold_direction,omitempty"`
	UpgradeHierarchy   []string            `json:"upgrade_hierarchy,omitempty" yaml:"upgrade_hierarchy,omitempty"`
	Weight             *int                `json:"weight,omitempty" yaml:"weight,omitempty"`
	BlockOnMissing     *bool               `json:"block_on_missing,omitempty" yaml:"block_on_missing,omitempty"`
	ToleranceFraction  *float64            `json:"tolerance_fraction,omitempty" yaml:"tolerance_fraction,omitempty"`
	Rationale          *string             `json:"rationale,omitempty" yaml:"rationale,omitempty"`
	SortOrder          *int                `json:"sort_order,omitempty" yaml:"sort_order,omitempty"`
}

// LogicTableDelta derives one family's table from another without mutating
// the base. Processing order is fixed: remove, then override, then add.
type LogicTableDelta struct {
	BaseFamilyID string         `json:"base_family_id" yaml:"base_family_id"`
	FamilyID     string         `json:"family_id" yaml:"family_id"`
	FamilyName   string         `json:"family_name" yaml:"family_name"`
	Category     string         `json:"category" yaml:"category"`
	Description  string         `json:"description,omitempty" yaml:"description,omitempty"`
	RemoveIDs    []string       `json:"remove_ids,omitempty" yaml:"remove_ids,omitempty"`
	Overrides    []RuleOverride `json:"overrides,omitempty" yaml:"overrides,omitempty"`
	AddRules     []MatchingRule `json:"add_rules,omitempty" yaml:"add_rules,omitempty"`
}

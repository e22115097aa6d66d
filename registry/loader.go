package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/altsource/altsource/schema"
)

// TablesFile is the on-disk format for site-specific tables. Full family
// tables, deltas against built-in or file-local bases, and extra category
// label aliases can all be declared in one file.
type TablesFile struct {
	Families       []schema.LogicTable      `yaml:"families"`
	Deltas         []schema.LogicTableDelta `yaml:"deltas"`
	CategoryLabels map[string]string        `yaml:"category_labels"`
}

// LoadTablesFile reads and validates a YAML tables file.
func LoadTablesFile(path string) (*TablesFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables file: %w", err)
	}

	var file TablesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse tables file %s: %w", path, err)
	}

	for i := range file.Families {
		if err := validateTable(&file.Families[i]); err != nil {
			return nil, fmt.Errorf("tables file %s: %w", path, err)
		}
	}
	for i := range file.Deltas {
		if err := validateDelta(&file.Deltas[i]); err != nil {
			return nil, fmt.Errorf("tables file %s: %w", path, err)
		}
	}
	return &file, nil
}

// Apply merges a loaded tables file into the registry. Families register
// before deltas so a file can derive from its own tables.
func (r *Registry) Apply(file *TablesFile) error {
	for i := range file.Families {
		r.RegisterTable(file.Families[i])
	}
	for i := range file.Deltas {
		if err := r.RegisterDelta(&file.Deltas[i]); err != nil {
			return err
		}
	}
	for label, familyID := range file.CategoryLabels {
		if _, ok := r.tables[familyID]; !ok {
			return fmt.Errorf("category label %q: family %q: %w", label, familyID, ErrUnsupportedFamily)
		}
		r.RegisterCategoryLabel(label, familyID)
	}
	return nil
}

func validateTable(table *schema.LogicTable) error {
	if table.FamilyID == "" {
		return fmt.Errorf("family with name %q is missing family_id", table.FamilyName)
	}
	if len(table.Rules) == 0 {
		return fmt.Errorf("family %s has no rules", table.FamilyID)
	}
	seen := make(map[string]struct{}, len(table.Rules))
	for i := range table.Rules {
		rule := &table.Rules[i]
		if err := validateRule(rule); err != nil {
			return fmt.Errorf("family %s: %w", table.FamilyID, err)
		}
		if _, dup := seen[rule.AttributeID]; dup {
			return fmt.Errorf("family %s: duplicate rule for attribute %s", table.FamilyID, rule.AttributeID)
		}
		seen[rule.AttributeID] = struct{}{}
	}
	return nil
}

func validateDelta(delta *schema.LogicTableDelta) error {
	if delta.FamilyID == "" {
		return fmt.Errorf("delta with name %q is missing family_id", delta.FamilyName)
	}
	if delta.BaseFamilyID == "" {
		return fmt.Errorf("delta %s is missing base_family_id", delta.FamilyID)
	}
	for i := range delta.AddRules {
		if err := validateRule(&delta.AddRules[i]); err != nil {
			return fmt.Errorf("delta %s: %w", delta.FamilyID, err)
		}
	}
	for i := range delta.Overrides {
		ov := &delta.Overrides[i]
		if ov.AttributeID == "" {
			return fmt.Errorf("delta %s: override is missing attribute_id", delta.FamilyID)
		}
		if ov.Weight != nil && (*ov.Weight < schema.MinWeight || *ov.Weight > schema.MaxWeight) {
			return fmt.Errorf("delta %s: override %s: weight %d out of range", delta.FamilyID, ov.AttributeID, *ov.Weight)
		}
	}
	return nil
}

func validateRule(rule *schema.MatchingRule) error {
	if rule.AttributeID == "" {
		return fmt.Errorf("rule with display name %q is missing attribute_id", rule.DisplayName)
	}
	if _, ok := schema.ValidLogicTypes[rule.LogicType]; !ok {
		return fmt.Errorf("rule %s: unknown logic type %q", rule.AttributeID, rule.LogicType)
	}
	if rule.Weight < schema.MinWeight || rule.Weight > schema.MaxWeight {
		return fmt.Errorf("rule %s: weight %d out of range [%d, %d]", rule.AttributeID, rule.Weight, schema.MinWeight, schema.MaxWeight)
	}
	if rule.LogicType == schema.LogicThreshold {
		switch rule.ThresholdDirection {
		case schema.DirectionGTE, schema.DirectionLTE, schema.DirectionRangeSuperset:
		default:
			return fmt.Errorf("rule %s: threshold requires a direction (gte, lte, range_superset)", rule.AttributeID)
		}
	}
	if rule.LogicType == schema.LogicIdentityUpgrade && len(rule.UpgradeHierarchy) == 0 {
		return fmt.Errorf("rule %s: identity_upgrade requires upgrade_hierarchy", rule.AttributeID)
	}
	return nil
}

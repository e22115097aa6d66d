package core

import "github.com/altsource/altsource/schema"

// DeriveLogicTable builds a family-variant table from a base table plus a
// delta, without mutating the base. The processing order is load-bearing:
// remove, then override, then add. Unknown attribute ids in removes and
// overrides are ignored so a delta stays valid as its base evolves.
func DeriveLogicTable(base *schema.LogicTable, delta *schema.LogicTableDelta) schema.LogicTable {
	out := schema.LogicTable{
		FamilyID:    delta.FamilyID,
		FamilyName:  delta.FamilyName,
		Category:    delta.Category,
		Description: delta.Description,
	}

	removed := make(map[string]struct{}, len(delta.RemoveIDs))
	for _, id := range delta.RemoveIDs {
		removed[id] = struct{}{}
	}
	for i := range base.Rules {
		if _, drop := removed[base.Rules[i].AttributeID]; drop {
			continue
		}
		out.Rules = append(out.Rules, base.Rules[i].Clone())
	}

	for i := range delta.Overrides {
		applyOverride(&out, &delta.Overrides[i])
	}

	nextOrder := out.MaxSortOrder()
	for _, add := range delta.AddRules {
		rule := add.Clone()
		if rule.SortOrder == 0 {
			nextOrder++
			rule.SortOrder = nextOrder
		} else if rule.SortOrder > nextOrder {
			nextOrder = rule.SortOrder
		}
		out.Rules = append(out.Rules, rule)
	}

	return out
}

// applyOverride replaces only the fields explicitly present on the override.
func applyOverride(table *schema.LogicTable, ov *schema.RuleOverride) {
	rule := table.RuleByID(ov.AttributeID)
	if rule == nil {
		return
	}
	if ov.DisplayName != nil {
		rule.DisplayName = *ov.DisplayName
	}
	if ov.LogicType != nil {
		rule.LogicType = *ov.LogicType
	}
	if ov.ThresholdDirection != nil {
		rule.ThresholdDirection = *ov.ThresholdDirection
	}
	if ov.UpgradeHierarchy != nil {
		rule.UpgradeHierarchy = make([]string, len(ov.UpgradeHierarchy))
		copy(rule.UpgradeHierarchy, ov.UpgradeHierarchy)
	}
	if ov.Weight != nil {
		rule.Weight = *ov.Weight
	}
	if ov.BlockOnMissing != nil {
		rule.BlockOnMissing = *ov.BlockOnMissing
	}
	if ov.ToleranceFraction != nil {
		rule.ToleranceFraction = *ov.ToleranceFraction
	}
	if ov.Rationale != nil {
		rule.Rationale = *ov.Rationale
	}
	if ov.SortOrder != nil {
		rule.SortOrder = *ov.SortOrder
	}
}

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altsource/altsource/schema"
)

func baseTableForDerive() schema.LogicTable {
	return schema.LogicTable{
		FamilyID:   "chip_resistor",
		FamilyName: "Chip Resistors",
		Rules: []schema.MatchingRule{
			{AttributeID: "resistance", LogicType: schema.LogicIdentity, Weight: 10, SortOrder: 1},
			{AttributeID: "tolerance", LogicType: schema.LogicIdentity, Weight: 5, SortOrder: 2},
			{AttributeID: "composition", LogicType: schema.LogicIdentity, Weight: 3, SortOrder: 3},
		},
	}
}

func TestDeriveLogicTable(t *testing.T) {
	base := baseTableForDerive()
	weight := 10
	block := true
	delta := &schema.LogicTableDelta{
		BaseFamilyID: "chip_resistor",
		FamilyID:     "current_sense_resistor",
		FamilyName:   "Current Sense Resistors",
		Category:     "Current Sense Resistors",
		RemoveIDs:    []string{"composition"},
		Overrides: []schema.RuleOverride{
			{AttributeID: "tolerance", Weight: &weight, BlockOnMissing: &block},
		},
		AddRules: []schema.MatchingRule{
			{AttributeID: "kelvin_connection", LogicType: schema.LogicIdentityFlag, Weight: 6},
		},
	}

	out := DeriveLogicTable(&base, delta)
	assert.Equal(t, "current_sense_resistor", out.FamilyID)
	assert.Equal(t, "Current Sense Resistors", out.FamilyName)

	// Removed rule is gone.
	assert.Nil(t, out.RuleByID("composition"))

	// Override touched only the named fields.
	tol := out.RuleByID("tolerance")
	require.NotNil(t, tol)
	assert.Equal(t, 10, tol.Weight)
	assert.True(t, tol.BlockOnMissing)
	assert.Equal(t, schema.LogicIdentity, tol.LogicType)

	// Added rule got a sort order after the surviving rules.
	kelvin := out.RuleByID("kelvin_connection")
	require.NotNil(t, kelvin)
	assert.Equal(t, 3, kelvin.SortOrder)
}

func TestDeriveLogicTableDoesNotMutateBase(t *testing.T) {
	base := baseTableForDerive()
	weight := 1
	delta := &schema.LogicTableDelta{
		FamilyID:  "variant",
		RemoveIDs: []string{"resistance"},
		Overrides: []schema.RuleOverride{{AttributeID: "tolerance", Weight: &weight}},
	}

	_ = DeriveLogicTable(&base, delta)

	require.Len(t, base.Rules, 3)
	assert.Equal(t, 5, base.RuleByID("tolerance").Weight)
}

func TestDeriveLogicTableIgnoresUnknownIDs(t *testing.T) {
	base := baseTableForDerive()
	weight := 7
	delta := &schema.LogicTableDelta{
		FamilyID:  "variant",
		RemoveIDs: []string{"no_such_attribute"},
		Overrides: []schema.RuleOverride{{AttributeID: "also_missing", Weight: &weight}},
	}

	out := DeriveLogicTable(&base, delta)
	assert.Len(t, out.Rules, 3)
}

func TestDeriveLogicTableAddRuleKeepsExplicitSortOrder(t *testing.T) {
	base := baseTableForDerive()
	delta := &schema.LogicTableDelta{
		FamilyID: "variant",
		AddRules: []schema.MatchingRule{
			{AttributeID: "explicit", LogicType: schema.LogicIdentity, Weight: 2, SortOrder: 20},
			{AttributeID: "appended", LogicType: schema.LogicIdentity, Weight: 2},
		},
	}

	out := DeriveLogicTable(&base, delta)
	assert.Equal(t, 20, out.RuleByID("explicit").SortOrder)
	assert.Equal(t, 21, out.RuleByID("appended").SortOrder)
}

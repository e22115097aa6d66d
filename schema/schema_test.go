package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSetAttribute verifies replace-vs-append behavior for overrides.
func TestSetAttribute(t *testing.T) {
	v := 100.0
	pa := PartAttributes{
		Part: Part{MPN: "RC0603FR-0710KL"},
		Attributes: []ParametricAttribute{
			{AttributeID: "resistance", DisplayName: "Resistance", RawValue: "10 kOhm", NumericValue: &v, DisplayOrder: 1},
		},
	}

	t.Run("replace invalidates numeric parse", func(t *testing.T) {
		clone := pa.Clone()
		clone.SetAttribute("resistance", "Resistance", "4.7 kOhm")
		attr := clone.Attribute("resistance")
		require.NotNil(t, attr)
		assert.Equal(t, "4.7 kOhm", attr.RawValue)
		assert.Nil(t, attr.NumericValue)
	})

	t.Run("append gets next display order", func(t *testing.T) {
		clone := pa.Clone()
		clone.SetAttribute("tolerance", "Tolerance", "1%")
		attr := clone.Attribute("tolerance")
		require.NotNil(t, attr)
		assert.Equal(t, 2, attr.DisplayOrder)
	})

	t.Run("clone does not mutate original", func(t *testing.T) {
		clone := pa.Clone()
		clone.SetAttribute("resistance", "Resistance", "1 Ohm")
		assert.Equal(t, "10 kOhm", pa.Attribute("resistance").RawValue)
	})
}

// TestLogicTableClone verifies clones are fully independent of the original.
func TestLogicTableClone(t *testing.T) {
	table := LogicTable{
		FamilyID: "chip_resistor",
		Rules: []MatchingRule{
			{AttributeID: "qualification", LogicType: LogicIdentityUpgrade, UpgradeHierarchy: []string{"aec-q200", "industrial", "commercial"}, Weight: 5},
		},
	}

	clone := table.Clone()
	clone.Rules[0].Weight = 10
	clone.Rules[0].UpgradeHierarchy[0] = "changed"

	assert.Equal(t, 5, table.Rules[0].Weight)
	assert.Equal(t, "aec-q200", table.Rules[0].UpgradeHierarchy[0])
}

// TestRuleByID verifies lookup against the table's unique attribute ids.
func TestRuleByID(t *testing.T) {
	table := LogicTable{
		Rules: []MatchingRule{
			{AttributeID: "resistance", Weight: 10},
			{AttributeID: "tolerance", Weight: 8},
		},
	}

	assert.NotNil(t, table.RuleByID("tolerance"))
	assert.Nil(t, table.RuleByID("nope"))
	assert.Equal(t, 0, table.MaxSortOrder())
}

// TestOptionByValue verifies free-text answers match no predefined option.
func TestOptionByValue(t *testing.T) {
	q := ContextQuestion{
		ID: "application",
		Options: []ContextOption{
			{Value: "precision", Label: "Precision measurement"},
			{Value: "general", Label: "General purpose"},
		},
	}

	assert.NotNil(t, q.OptionByValue("precision"))
	assert.Nil(t, q.OptionByValue("something the user typed"))
}

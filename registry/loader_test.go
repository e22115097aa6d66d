package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/altsource/altsource/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTablesYAML = `
families:
  - family_id: tantalum
    family_name: Tantalum Capacitor
    category: Tantalum Capacitors
    rules:
      - attribute_id: capacitance
        display_name: Capacitance
        logic_type: identity
        tolerance_fraction: 0.1
        weight: 10
        block_on_missing: true
      - attribute_id: voltage_rating
        display_name: Voltage Rating
        logic_type: threshold
        threshold_direction: gte
        weight: 10
        block_on_missing: true
      - attribute_id: esr
        display_name: ESR
        logic_type: threshold
        threshold_direction: lte
        weight: 7
deltas:
  - base_family_id: tantalum
    family_id: tantalum_polymer
    family_name: Tantalum Polymer Capacitor
    category: Tantalum Polymer Capacitors
    overrides:
      - attribute_id: esr
        weight: 9
    add_rules:
      - attribute_id: ripple_current
        display_name: Ripple Current
        logic_type: threshold
        threshold_direction: gte
        weight: 6
category_labels:
  "Capacitors - Tantalum": tantalum
`

func writeTempTables(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTablesFile(t *testing.T) {
	path := writeTempTables(t, sampleTablesYAML)

	file, err := LoadTablesFile(path)
	require.NoError(t, err)
	require.Len(t, file.Families, 1)
	require.Len(t, file.Deltas, 1)

	r := New()
	require.NoError(t, r.Apply(file))

	table, err := r.Table("tantalum")
	require.NoError(t, err)
	assert.Len(t, table.Rules, 3)

	derived, err := r.Table("tantalum_polymer")
	require.NoError(t, err)
	assert.Equal(t, 9, derived.RuleByID("esr").Weight)
	assert.NotNil(t, derived.RuleByID("ripple_current"))

	byLabel, err := r.TableForCategory("Capacitors - Tantalum")
	require.NoError(t, err)
	assert.Equal(t, "tantalum", byLabel.FamilyID)
}

func TestLoadTablesFileRejectsBadRules(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "missing family id",
			yaml: `
families:
  - family_name: Unnamed
    rules:
      - attribute_id: x
        logic_type: identity
        weight: 5
`,
		},
		{
			name: "weight out of range",
			yaml: `
families:
  - family_id: f
    rules:
      - attribute_id: x
        logic_type: identity
        weight: 11
`,
		},
		{
			name: "threshold without direction",
			yaml: `
families:
  - family_id: f
    rules:
      - attribute_id: x
        logic_type: threshold
        weight: 5
`,
		},
		{
			name: "upgrade without hierarchy",
			yaml: `
families:
  - family_id: f
    rules:
      - attribute_id: x
        logic_type: identity_upgrade
        weight: 5
`,
		},
		{
			name: "duplicate attribute",
			yaml: `
families:
  - family_id: f
    rules:
      - attribute_id: x
        logic_type: identity
        weight: 5
      - attribute_id: x
        logic_type: identity
        weight: 5
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempTables(t, tt.yaml)
			_, err := LoadTablesFile(path)
			assert.Error(t, err)
		})
	}
}

func TestApplyRejectsDeltaWithUnknownBase(t *testing.T) {
	r := New()
	err := r.Apply(&TablesFile{
		Deltas: []schema.LogicTableDelta{
			{BaseFamilyID: "does_not_exist", FamilyID: "orphan"},
		},
	})
	assert.ErrorIs(t, err, ErrUnsupportedFamily)
}

func TestApplyRejectsLabelForUnknownFamily(t *testing.T) {
	r := New()
	err := r.Apply(&TablesFile{
		CategoryLabels: map[string]string{"Relays": "relay"},
	})
	assert.ErrorIs(t, err, ErrUnsupportedFamily)
}

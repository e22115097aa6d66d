package registry

import "github.com/altsource/altsource/schema"

func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

// builtinDeltas returns the derived family variants. Each delta is applied to
// its base table at registry construction: remove, then override, then add.
func builtinDeltas() []schema.LogicTableDelta {
	return []schema.LogicTableDelta{
		currentSenseResistorDelta(),
		chassisMountResistorDelta(),
		automotiveMlccDelta(),
		polymerElectrolyticDelta(),
	}
}

// currentSenseResistorDelta tightens the resistor table for shunt duty, where
// the resistance value carries the measurement accuracy.
func currentSenseResistorDelta() schema.LogicTableDelta {
	return schema.LogicTableDelta{
		BaseFamilyID: "chip_resistor",
		FamilyID:     "current_sense_resistor",
		FamilyName:   "Current Sense Resistor",
		Category:     "Current Sense Resistors",
		Description:  "Low-value shunt resistors for current measurement",
		RemoveIDs:    []string{"composition"},
		Overrides: []schema.RuleOverride{
			{
				AttributeID: attrTolerance,
				Weight:      intPtr(10), BlockOnMissing: boolPtr(true),
				Rationale: strPtr("Tolerance translates directly into measurement error"),
			},
			{
				AttributeID: "temperature_coefficient",
				Weight:      intPtr(8), BlockOnMissing: boolPtr(true),
				Rationale: strPtr("TCR drift shifts the sense voltage over temperature"),
			},
			{
				AttributeID: "power_rating",
				Weight:      intPtr(9),
			},
		},
		AddRules: []schema.MatchingRule{
			{
				AttributeID: "kelvin_connection", DisplayName: "Kelvin (4-Terminal) Connection",
				LogicType: schema.LogicIdentityFlag,
				Weight:    6,
				Rationale: "A 2-terminal part cannot replace a 4-terminal layout",
			},
		},
	}
}

// chassisMountResistorDelta adapts the resistor table for wirewound power
// parts, where the SMD footprint rules do not apply.
func chassisMountResistorDelta() schema.LogicTableDelta {
	return schema.LogicTableDelta{
		BaseFamilyID: "chip_resistor",
		FamilyID:     "chassis_mount_resistor",
		FamilyName:   "Chassis Mount Resistor",
		Category:     "Chassis Mount Resistors",
		Description:  "High-power wirewound and thick film resistors on heatsinks",
		RemoveIDs:    []string{attrPackageCase, "composition"},
		Overrides: []schema.RuleOverride{
			{
				AttributeID: "power_rating",
				Weight:      intPtr(10), BlockOnMissing: boolPtr(true),
			},
			{
				AttributeID: "temperature_coefficient",
				Weight:      intPtr(3),
			},
		},
		AddRules: []schema.MatchingRule{
			{
				AttributeID: "mounting_type", DisplayName: "Mounting Type",
				LogicType: schema.LogicIdentity,
				Weight:    8, BlockOnMissing: true,
				Rationale: "Screw-flange and clip mountings need different mechanical provisions",
			},
			{
				AttributeID: "heatsink_required", DisplayName: "Heatsink Required",
				LogicType: schema.LogicIdentityFlag,
				Weight:    4,
			},
		},
	}
}

// automotiveMlccDelta escalates the qualification rules for automotive builds.
func automotiveMlccDelta() schema.LogicTableDelta {
	return schema.LogicTableDelta{
		BaseFamilyID: "mlcc",
		FamilyID:     "automotive_mlcc",
		FamilyName:   "Automotive Ceramic Capacitor",
		Category:     "Automotive MLCC",
		Description:  "AEC-Q200 qualified multilayer ceramic capacitors",
		Overrides: []schema.RuleOverride{
			{
				AttributeID: attrAutomotive,
				Weight:      intPtr(10), BlockOnMissing: boolPtr(true),
				Rationale: strPtr("Non-qualified parts are not acceptable in automotive builds"),
			},
			{
				AttributeID: "flexible_termination",
				Weight:      intPtr(6),
			},
		},
	}
}

// polymerElectrolyticDelta reworks the electrolytic table for solid polymer
// parts, which trade lifetime specs for much lower ESR.
func polymerElectrolyticDelta() schema.LogicTableDelta {
	return schema.LogicTableDelta{
		BaseFamilyID: "aluminum_electrolytic",
		FamilyID:     "polymer_electrolytic",
		FamilyName:   "Polymer Electrolytic Capacitor",
		Category:     "Polymer Capacitors",
		Description:  "Solid polymer aluminum capacitors",
		RemoveIDs:    []string{"rated_lifetime_hours"},
		Overrides: []schema.RuleOverride{
			{
				AttributeID: "esr",
				Weight:      intPtr(10), BlockOnMissing: boolPtr(true),
				Rationale: strPtr("Low ESR is the reason polymers get designed in"),
			},
			{
				AttributeID: "ripple_current",
				Weight:      intPtr(9),
			},
		},
		AddRules: []schema.MatchingRule{
			{
				AttributeID: "leakage_current", DisplayName: "Leakage Current",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionLTE,
				Weight:    4,
				Rationale: "Polymer leakage is higher than wet aluminum; check the budget",
			},
		},
	}
}

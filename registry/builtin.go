package registry

import "github.com/altsource/altsource/schema"

// Common attribute ids shared across families.
const (
	attrPackageCase   = "package_case"
	attrOperatingTemp = "operating_temperature"
	attrAutomotive    = "automotive_grade"
	attrLifecycle     = "lifecycle_status"
	attrVoltageRating = "voltage_rating"
	attrTolerance     = "tolerance"
)

// builtinTables returns the base family tables. Weights follow a single
// convention across families: 10 is mandatory, 8-9 primary electrical, 4-7
// secondary, 1-3 informational.
func builtinTables() []schema.LogicTable {
	return []schema.LogicTable{
		chipResistorTable(),
		mlccTable(),
		aluminumElectrolyticTable(),
		powerInductorTable(),
		schottkyDiodeTable(),
		nchMosfetTable(),
		ldoRegulatorTable(),
		opampTable(),
	}
}

func chipResistorTable() schema.LogicTable {
	return schema.LogicTable{
		FamilyID:    "chip_resistor",
		FamilyName:  "Chip Resistor",
		Category:    "Resistors",
		Description: "Surface-mount fixed resistors, thick and thin film",
		Rules: []schema.MatchingRule{
			{
				AttributeID: "resistance", DisplayName: "Resistance",
				LogicType: schema.LogicIdentity, ToleranceFraction: 0.001,
				Weight: 10, BlockOnMissing: true,
				Rationale: "A different nominal value is a different part",
				SortOrder: 1,
			},
			{
				AttributeID: attrTolerance, DisplayName: "Tolerance",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionLTE,
				Weight: 9, BlockOnMissing: true,
				Rationale: "A tighter tolerance always satisfies a looser one",
				SortOrder: 2,
			},
			{
				AttributeID: "power_rating", DisplayName: "Power Rating",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionGTE,
				Weight:    8,
				Rationale: "Candidate must dissipate at least the source's rated power",
				SortOrder: 3,
			},
			{
				AttributeID: attrPackageCase, DisplayName: "Package / Case",
				LogicType: schema.LogicIdentity,
				Weight:    10, BlockOnMissing: true,
				Rationale: "Footprint must land on the existing pads",
				SortOrder: 4,
			},
			{
				AttributeID: "temperature_coefficient", DisplayName: "Temperature Coefficient",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionLTE,
				Weight:    5,
				SortOrder: 5,
			},
			{
				AttributeID: attrVoltageRating, DisplayName: "Voltage Rating",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionGTE,
				Weight:    6,
				SortOrder: 6,
			},
			{
				AttributeID: attrOperatingTemp, DisplayName: "Operating Temperature",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionRangeSuperset,
				Weight:    6,
				SortOrder: 7,
			},
			{
				AttributeID: "composition", DisplayName: "Composition",
				LogicType: schema.LogicIdentity,
				Weight:    4,
				Rationale: "Thin film differs from thick film in noise and pulse handling",
				SortOrder: 8,
			},
			{
				AttributeID: attrAutomotive, DisplayName: "AEC-Q200 Qualified",
				LogicType: schema.LogicIdentityFlag,
				Weight:    3,
				SortOrder: 9,
			},
			{
				AttributeID: attrLifecycle, DisplayName: "Lifecycle Status",
				LogicType: schema.LogicOperational,
				Weight:    2,
				SortOrder: 10,
			},
		},
	}
}

func mlccTable() schema.LogicTable {
	return schema.LogicTable{
		FamilyID:    "mlcc",
		FamilyName:  "Ceramic Capacitor (MLCC)",
		Category:    "Ceramic Capacitors",
		Description: "Multilayer ceramic chip capacitors",
		Rules: []schema.MatchingRule{
			{
				AttributeID: "capacitance", DisplayName: "Capacitance",
				LogicType: schema.LogicIdentity, ToleranceFraction: 0.001,
				Weight: 10, BlockOnMissing: true,
				SortOrder: 1,
			},
			{
				AttributeID: attrVoltageRating, DisplayName: "Voltage Rating",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionGTE,
				Weight: 10, BlockOnMissing: true,
				Rationale: "Derating practice assumes at least the source's rated voltage",
				SortOrder: 2,
			},
			{
				AttributeID: "dielectric", DisplayName: "Dielectric",
				LogicType:        schema.LogicIdentityUpgrade,
				UpgradeHierarchy: []string{"C0G", "X8R", "X7R", "X6S", "X5R", "Z5U", "Y5V"},
				Weight:           9,
				Rationale:        "A more stable dielectric class is always acceptable",
				SortOrder:        3,
			},
			{
				AttributeID: attrPackageCase, DisplayName: "Package / Case",
				LogicType: schema.LogicIdentity,
				Weight:    10, BlockOnMissing: true,
				SortOrder: 4,
			},
			{
				AttributeID: attrTolerance, DisplayName: "Tolerance",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionLTE,
				Weight:    6,
				SortOrder: 5,
			},
			{
				AttributeID: attrOperatingTemp, DisplayName: "Operating Temperature",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionRangeSuperset,
				Weight:    7,
				SortOrder: 6,
			},
			{
				AttributeID: attrAutomotive, DisplayName: "AEC-Q200 Qualified",
				LogicType: schema.LogicIdentityFlag,
				Weight:    3,
				SortOrder: 7,
			},
			{
				AttributeID: "flexible_termination", DisplayName: "Flexible Termination",
				LogicType: schema.LogicIdentityFlag,
				Weight:    3,
				Rationale: "Soft terminations resist board-flex cracking",
				SortOrder: 8,
			},
			{
				AttributeID: attrLifecycle, DisplayName: "Lifecycle Status",
				LogicType: schema.LogicOperational,
				Weight:    2,
				SortOrder: 9,
			},
		},
	}
}

func aluminumElectrolyticTable() schema.LogicTable {
	return schema.LogicTable{
		FamilyID:    "aluminum_electrolytic",
		FamilyName:  "Aluminum Electrolytic Capacitor",
		Category:    "Aluminum Electrolytic Capacitors",
		Description: "Wet aluminum electrolytic capacitors, radial and SMD",
		Rules: []schema.MatchingRule{
			{
				AttributeID: "capacitance", DisplayName: "Capacitance",
				LogicType: schema.LogicIdentity, ToleranceFraction: 0.2,
				Weight: 9, BlockOnMissing: true,
				Rationale: "Electrolytics are typically specified at -20/+20%",
				SortOrder: 1,
			},
			{
				AttributeID: attrVoltageRating, DisplayName: "Voltage Rating",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionGTE,
				Weight: 10, BlockOnMissing: true,
				SortOrder: 2,
			},
			{
				AttributeID: "esr", DisplayName: "ESR",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionLTE,
				Weight:    8,
				Rationale: "Higher ESR raises ripple heating and output noise",
				SortOrder: 3,
			},
			{
				AttributeID: "ripple_current", DisplayName: "Ripple Current",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionGTE,
				Weight:    8,
				SortOrder: 4,
			},
			{
				AttributeID: "rated_lifetime_hours", DisplayName: "Rated Lifetime",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionGTE,
				Weight:    6,
				Rationale: "Lifetime at rated temperature bounds field reliability",
				SortOrder: 5,
			},
			{
				AttributeID: attrOperatingTemp, DisplayName: "Operating Temperature",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionRangeSuperset,
				Weight:    7,
				SortOrder: 6,
			},
			{
				AttributeID: attrPackageCase, DisplayName: "Package / Case",
				LogicType: schema.LogicIdentity,
				Weight:    7,
				Rationale: "Can diameter and lead spacing must fit the board",
				SortOrder: 7,
			},
			{
				AttributeID: attrLifecycle, DisplayName: "Lifecycle Status",
				LogicType: schema.LogicOperational,
				Weight:    2,
				SortOrder: 8,
			},
		},
	}
}

func powerInductorTable() schema.LogicTable {
	return schema.LogicTable{
		FamilyID:    "power_inductor",
		FamilyName:  "Power Inductor",
		Category:    "Power Inductors",
		Description: "SMD power inductors for DC-DC conversion",
		Rules: []schema.MatchingRule{
			{
				AttributeID: "inductance", DisplayName: "Inductance",
				LogicType: schema.LogicIdentity, ToleranceFraction: 0.1,
				Weight: 10, BlockOnMissing: true,
				SortOrder: 1,
			},
			{
				AttributeID: "saturation_current", DisplayName: "Saturation Current",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionGTE,
				Weight: 9, BlockOnMissing: true,
				Rationale: "Below Isat the inductance collapses and ripple current spikes",
				SortOrder: 2,
			},
			{
				AttributeID: "rms_current", DisplayName: "RMS Current",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionGTE,
				Weight:    8,
				SortOrder: 3,
			},
			{
				AttributeID: "dc_resistance", DisplayName: "DC Resistance",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionLTE,
				Weight:    8,
				SortOrder: 4,
			},
			{
				AttributeID: attrPackageCase, DisplayName: "Package / Case",
				LogicType: schema.LogicIdentity,
				Weight:    8,
				SortOrder: 5,
			},
			{
				AttributeID: "shielding", DisplayName: "Shielding",
				LogicType:        schema.LogicIdentityUpgrade,
				UpgradeHierarchy: []string{"shielded", "semi-shielded", "unshielded"},
				Weight:           6,
				Rationale:        "A shielded part can replace an unshielded one, not the reverse",
				SortOrder:        6,
			},
			{
				AttributeID: attrOperatingTemp, DisplayName: "Operating Temperature",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionRangeSuperset,
				Weight:    5,
				SortOrder: 7,
			},
			{
				AttributeID: attrAutomotive, DisplayName: "AEC-Q200 Qualified",
				LogicType: schema.LogicIdentityFlag,
				Weight:    3,
				SortOrder: 8,
			},
			{
				AttributeID: attrLifecycle, DisplayName: "Lifecycle Status",
				LogicType: schema.LogicOperational,
				Weight:    2,
				SortOrder: 9,
			},
		},
	}
}

func schottkyDiodeTable() schema.LogicTable {
	return schema.LogicTable{
		FamilyID:    "schottky_diode",
		FamilyName:  "Schottky Diode",
		Category:    "Schottky Diodes",
		Description: "Schottky barrier rectifiers",
		Rules: []schema.MatchingRule{
			{
				AttributeID: "reverse_voltage", DisplayName: "Reverse Voltage",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionGTE,
				Weight: 10, BlockOnMissing: true,
				SortOrder: 1,
			},
			{
				AttributeID: "forward_current", DisplayName: "Forward Current",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionGTE,
				Weight: 9, BlockOnMissing: true,
				SortOrder: 2,
			},
			{
				AttributeID: "forward_voltage", DisplayName: "Forward Voltage",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionLTE,
				Weight:    8,
				Rationale: "Vf sets the conduction loss budget",
				SortOrder: 3,
			},
			{
				AttributeID: "reverse_leakage", DisplayName: "Reverse Leakage",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionLTE,
				Weight:    5,
				SortOrder: 4,
			},
			{
				AttributeID: attrPackageCase, DisplayName: "Package / Case",
				LogicType: schema.LogicIdentity,
				Weight:    9,
				SortOrder: 5,
			},
			{
				AttributeID: "configuration", DisplayName: "Configuration",
				LogicType: schema.LogicIdentity,
				Weight:    7,
				Rationale: "Single, dual common-cathode and dual common-anode are not pin compatible",
				SortOrder: 6,
			},
			{
				AttributeID: attrOperatingTemp, DisplayName: "Operating Temperature",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionRangeSuperset,
				Weight:    5,
				SortOrder: 7,
			},
			{
				AttributeID: attrAutomotive, DisplayName: "AEC-Q101 Qualified",
				LogicType: schema.LogicIdentityFlag,
				Weight:    3,
				SortOrder: 8,
			},
			{
				AttributeID: attrLifecycle, DisplayName: "Lifecycle Status",
				LogicType: schema.LogicOperational,
				Weight:    2,
				SortOrder: 9,
			},
		},
	}
}

func nchMosfetTable() schema.LogicTable {
	return schema.LogicTable{
		FamilyID:    "nch_mosfet",
		FamilyName:  "N-Channel MOSFET",
		Category:    "MOSFETs",
		Description: "Discrete N-channel power MOSFETs",
		Rules: []schema.MatchingRule{
			{
				AttributeID: "vds_rating", DisplayName: "Drain-Source Voltage",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionGTE,
				Weight: 10, BlockOnMissing: true,
				SortOrder: 1,
			},
			{
				AttributeID: "rds_on", DisplayName: "Rds(on)",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionLTE,
				Weight: 9, BlockOnMissing: true,
				Rationale: "On-resistance sets conduction loss; lower is strictly better",
				SortOrder: 2,
			},
			{
				AttributeID: "continuous_drain_current", DisplayName: "Continuous Drain Current",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionGTE,
				Weight:    8,
				SortOrder: 3,
			},
			{
				AttributeID: "vgs_threshold", DisplayName: "Gate Threshold Voltage",
				LogicType: schema.LogicIdentity, ToleranceFraction: 0.25,
				Weight:    6,
				Rationale: "A very different Vgs(th) changes switching behavior with the same driver",
				SortOrder: 4,
			},
			{
				AttributeID: "gate_charge", DisplayName: "Total Gate Charge",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionLTE,
				Weight:    6,
				Rationale: "Higher Qg slows switching and loads the gate driver",
				SortOrder: 5,
			},
			{
				AttributeID: attrPackageCase, DisplayName: "Package / Case",
				LogicType: schema.LogicIdentity,
				Weight:    9, BlockOnMissing: true,
				SortOrder: 6,
			},
			{
				AttributeID: "power_dissipation", DisplayName: "Power Dissipation",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionGTE,
				Weight:    5,
				SortOrder: 7,
			},
			{
				AttributeID: "logic_level_gate", DisplayName: "Logic-Level Gate",
				LogicType: schema.LogicIdentityFlag,
				Weight:    5,
				SortOrder: 8,
			},
			{
				AttributeID: attrOperatingTemp, DisplayName: "Operating Temperature",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionRangeSuperset,
				Weight:    4,
				SortOrder: 9,
			},
			{
				AttributeID: attrLifecycle, DisplayName: "Lifecycle Status",
				LogicType: schema.LogicOperational,
				Weight:    2,
				SortOrder: 10,
			},
		},
	}
}

func ldoRegulatorTable() schema.LogicTable {
	return schema.LogicTable{
		FamilyID:    "ldo_regulator",
		FamilyName:  "LDO Regulator",
		Category:    "Linear Regulators",
		Description: "Low-dropout linear voltage regulators, fixed and adjustable",
		Rules: []schema.MatchingRule{
			{
				AttributeID: "output_voltage", DisplayName: "Output Voltage",
				LogicType: schema.LogicIdentity, ToleranceFraction: 0.01,
				Weight: 10, BlockOnMissing: true,
				SortOrder: 1,
			},
			{
				AttributeID: "output_current", DisplayName: "Output Current",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionGTE,
				Weight: 9, BlockOnMissing: true,
				SortOrder: 2,
			},
			{
				AttributeID: "input_voltage_range", DisplayName: "Input Voltage Range",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionRangeSuperset,
				Weight:    8,
				Rationale: "Candidate must accept every input voltage the source accepts",
				SortOrder: 3,
			},
			{
				AttributeID: "dropout_voltage", DisplayName: "Dropout Voltage",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionLTE,
				Weight:    8,
				SortOrder: 4,
			},
			{
				AttributeID: "quiescent_current", DisplayName: "Quiescent Current",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionLTE,
				Weight:    6,
				SortOrder: 5,
			},
			{
				AttributeID: "reference_voltage", DisplayName: "Reference Voltage",
				LogicType: schema.LogicRangeVoltage, ToleranceFraction: 0.03,
				Weight:    7,
				Rationale: "Adjustable parts must hold the divider-set output voltage",
				SortOrder: 6,
			},
			{
				AttributeID: "output_type", DisplayName: "Output Type",
				LogicType: schema.LogicIdentity,
				Weight:    6,
				SortOrder: 7,
			},
			{
				AttributeID: attrPackageCase, DisplayName: "Package / Case",
				LogicType: schema.LogicIdentity,
				Weight:    8,
				SortOrder: 8,
			},
			{
				AttributeID: "psrr", DisplayName: "PSRR",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionGTE,
				Weight:    4,
				SortOrder: 9,
			},
			{
				AttributeID: "output_capacitor", DisplayName: "Output Capacitor Compatibility",
				LogicType: schema.LogicAppReview,
				Weight:    5,
				Rationale: "Stable ESR range differs between parts; verify against the fitted capacitor",
				SortOrder: 10,
			},
			{
				AttributeID: attrLifecycle, DisplayName: "Lifecycle Status",
				LogicType: schema.LogicOperational,
				Weight:    2,
				SortOrder: 11,
			},
		},
	}
}

func opampTable() schema.LogicTable {
	return schema.LogicTable{
		FamilyID:    "opamp",
		FamilyName:  "Operational Amplifier",
		Category:    "Op Amps",
		Description: "General purpose and precision operational amplifiers",
		Rules: []schema.MatchingRule{
			{
				AttributeID: "supply_voltage_range", DisplayName: "Supply Voltage Range",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionRangeSuperset,
				Weight: 9, BlockOnMissing: true,
				SortOrder: 1,
			},
			{
				AttributeID: "channels", DisplayName: "Channels per Package",
				LogicType: schema.LogicIdentity,
				Weight:    10, BlockOnMissing: true,
				Rationale: "Single, dual and quad packages are not pin compatible",
				SortOrder: 2,
			},
			{
				AttributeID: attrPackageCase, DisplayName: "Package / Case",
				LogicType: schema.LogicIdentity,
				Weight:    9, BlockOnMissing: true,
				SortOrder: 3,
			},
			{
				AttributeID: "gain_bandwidth", DisplayName: "Gain Bandwidth Product",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionGTE,
				Weight:    8,
				SortOrder: 4,
			},
			{
				AttributeID: "input_offset_voltage", DisplayName: "Input Offset Voltage",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionLTE,
				Weight:    8,
				SortOrder: 5,
			},
			{
				AttributeID: "slew_rate", DisplayName: "Slew Rate",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionGTE,
				Weight:    7,
				SortOrder: 6,
			},
			{
				AttributeID: "input_bias_current", DisplayName: "Input Bias Current",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionLTE,
				Weight:    6,
				SortOrder: 7,
			},
			{
				AttributeID: "rail_to_rail", DisplayName: "Rail-to-Rail I/O",
				LogicType: schema.LogicIdentityFlag,
				Weight:    6,
				SortOrder: 8,
			},
			{
				AttributeID: "unity_gain_stable", DisplayName: "Unity-Gain Stable",
				LogicType: schema.LogicIdentityFlag,
				Weight:    5,
				SortOrder: 9,
			},
			{
				AttributeID: attrOperatingTemp, DisplayName: "Operating Temperature",
				LogicType: schema.LogicThreshold, ThresholdDirection: schema.DirectionRangeSuperset,
				Weight:    5,
				SortOrder: 10,
			},
			{
				AttributeID: attrLifecycle, DisplayName: "Lifecycle Status",
				LogicType: schema.LogicOperational,
				Weight:    2,
				SortOrder: 11,
			},
		},
	}
}

// builtinCategoryLabels maps extra free-text category labels to family ids,
// beyond the canonical labels registered from the tables themselves.
func builtinCategoryLabels() map[string]string {
	return map[string]string{
		"Resistor":                       "chip_resistor",
		"Chip Resistor - Surface Mount":  "chip_resistor",
		"Thick Film Resistors":           "chip_resistor",
		"Thin Film Resistors":            "chip_resistor",
		"Current Sense Resistors":        "current_sense_resistor",
		"Shunt Resistors":                "current_sense_resistor",
		"Chassis Mount Resistors":        "chassis_mount_resistor",
		"Capacitor":                      "mlcc",
		"Ceramic Capacitor":              "mlcc",
		"Multilayer Ceramic Capacitors":  "mlcc",
		"MLCC":                           "mlcc",
		"Electrolytic Capacitor":         "aluminum_electrolytic",
		"Aluminum Capacitors":            "aluminum_electrolytic",
		"Polymer Capacitors":             "polymer_electrolytic",
		"Inductor":                       "power_inductor",
		"Fixed Inductors":                "power_inductor",
		"Schottky":                       "schottky_diode",
		"Diodes - Rectifiers - Schottky": "schottky_diode",
		"MOSFET":                         "nch_mosfet",
		"N-Channel MOSFET":               "nch_mosfet",
		"Transistors - FETs - Single":    "nch_mosfet",
		"LDO":                            "ldo_regulator",
		"LDO Voltage Regulators":         "ldo_regulator",
		"Linear Voltage Regulators":      "ldo_regulator",
		"Op Amp":                         "opamp",
		"Operational Amplifiers":         "opamp",
		"Amplifiers - Op Amps":           "opamp",
	}
}

package catalog

import "github.com/altsource/altsource/schema"

type fixtureAttr struct {
	id, name, value string
}

func mk(part schema.Part, attrs ...fixtureAttr) schema.PartAttributes {
	out := schema.PartAttributes{Part: part}
	for i, a := range attrs {
		out.Attributes = append(out.Attributes, schema.ParametricAttribute{
			AttributeID:  a.id,
			DisplayName:  a.name,
			RawValue:     a.value,
			DisplayOrder: i + 1,
		})
	}
	return out
}

// fixtureParts returns the built-in catalog: a realistic cross-section of
// jellybean parts in every supported family, with attribute values taken
// from public datasheets.
func fixtureParts() []schema.PartAttributes {
	var parts []schema.PartAttributes
	parts = append(parts, resistorFixtures()...)
	parts = append(parts, capacitorFixtures()...)
	parts = append(parts, regulatorFixtures()...)
	parts = append(parts, discreteFixtures()...)
	return parts
}

func resistorFixtures() []schema.PartAttributes {
	return []schema.PartAttributes{
		mk(
			schema.Part{MPN: "RC0603FR-0710KL", Manufacturer: "Yageo", Category: "Resistors", Subcategory: "Chip Resistor - Surface Mount", Lifecycle: schema.LifecycleActive, UnitPrice: 0.001, Stock: 1500000},
			fixtureAttr{"resistance", "Resistance", "10 kOhm"},
			fixtureAttr{"tolerance", "Tolerance", "1%"},
			fixtureAttr{"power_rating", "Power Rating", "0.1 W"},
			fixtureAttr{"package_case", "Package / Case", "0603"},
			fixtureAttr{"temperature_coefficient", "Temperature Coefficient", "100 ppm/C"},
			fixtureAttr{"voltage_rating", "Voltage Rating", "75 V"},
			fixtureAttr{"operating_temperature", "Operating Temperature", "-55 to 155"},
			fixtureAttr{"composition", "Composition", "Thick Film"},
			fixtureAttr{"lifecycle_status", "Lifecycle Status", "active"},
		),
		mk(
			schema.Part{MPN: "CRCW060310K0FKEA", Manufacturer: "Vishay", Category: "Resistors", Subcategory: "Chip Resistor - Surface Mount", Lifecycle: schema.LifecycleActive, UnitPrice: 0.002, Stock: 800000},
			fixtureAttr{"resistance", "Resistance", "10 kOhm"},
			fixtureAttr{"tolerance", "Tolerance", "1%"},
			fixtureAttr{"power_rating", "Power Rating", "0.1 W"},
			fixtureAttr{"package_case", "Package / Case", "0603"},
			fixtureAttr{"temperature_coefficient", "Temperature Coefficient", "100 ppm/C"},
			fixtureAttr{"voltage_rating", "Voltage Rating", "75 V"},
			fixtureAttr{"operating_temperature", "Operating Temperature", "-55 to 155"},
			fixtureAttr{"composition", "Composition", "Thick Film"},
			fixtureAttr{"automotive_grade", "AEC-Q200 Qualified", "yes"},
			fixtureAttr{"lifecycle_status", "Lifecycle Status", "active"},
		),
		mk(
			schema.Part{MPN: "ERJ-3EKF1002V", Manufacturer: "Panasonic", Category: "Resistors", Subcategory: "Chip Resistor - Surface Mount", Lifecycle: schema.LifecycleActive, UnitPrice: 0.002, Stock: 650000},
			fixtureAttr{"resistance", "Resistance", "10 kOhm"},
			fixtureAttr{"tolerance", "Tolerance", "1%"},
			fixtureAttr{"power_rating", "Power Rating", "0.1 W"},
			fixtureAttr{"package_case", "Package / Case", "0603"},
			fixtureAttr{"temperature_coefficient", "Temperature Coefficient", "100 ppm/C"},
			fixtureAttr{"voltage_rating", "Voltage Rating", "75 V"},
			fixtureAttr{"operating_temperature", "Operating Temperature", "-55 to 155"},
			fixtureAttr{"composition", "Composition", "Thick Film"},
			fixtureAttr{"automotive_grade", "AEC-Q200 Qualified", "yes"},
			fixtureAttr{"lifecycle_status", "Lifecycle Status", "active"},
		),
		mk(
			schema.Part{MPN: "RC0603JR-0710KL", Manufacturer: "Yageo", Category: "Resistors", Subcategory: "Chip Resistor - Surface Mount", Lifecycle: schema.LifecycleActive, UnitPrice: 0.001, Stock: 2000000},
			fixtureAttr{"resistance", "Resistance", "10 kOhm"},
			fixtureAttr{"tolerance", "Tolerance", "5%"},
			fixtureAttr{"power_rating", "Power Rating", "0.1 W"},
			fixtureAttr{"package_case", "Package / Case", "0603"},
			fixtureAttr{"temperature_coefficient", "Temperature Coefficient", "200 ppm/C"},
			fixtureAttr{"voltage_rating", "Voltage Rating", "75 V"},
			fixtureAttr{"operating_temperature", "Operating Temperature", "-55 to 155"},
			fixtureAttr{"composition", "Composition", "Thick Film"},
			fixtureAttr{"lifecycle_status", "Lifecycle Status", "active"},
		),
		mk(
			schema.Part{MPN: "RT0603FRE0710KL", Manufacturer: "Yageo", Category: "Resistors", Subcategory: "Chip Resistor - Surface Mount", Lifecycle: schema.LifecycleActive, UnitPrice: 0.012, Stock: 120000},
			fixtureAttr{"resistance", "Resistance", "10 kOhm"},
			fixtureAttr{"tolerance", "Tolerance", "1%"},
			fixtureAttr{"power_rating", "Power Rating", "0.1 W"},
			fixtureAttr{"package_case", "Package / Case", "0603"},
			fixtureAttr{"temperature_coefficient", "Temperature Coefficient", "50 ppm/C"},
			fixtureAttr{"voltage_rating", "Voltage Rating", "75 V"},
			fixtureAttr{"operating_temperature", "Operating Temperature", "-55 to 155"},
			fixtureAttr{"composition", "Composition", "Thin Film"},
			fixtureAttr{"lifecycle_status", "Lifecycle Status", "active"},
		),
		mk(
			schema.Part{MPN: "WSL2512R0100FEA", Manufacturer: "Vishay", Category: "Resistors", Subcategory: "Current Sense Resistors", Lifecycle: schema.LifecycleActive, UnitPrice: 0.45, Stock: 45000},
			fixtureAttr{"resistance", "Resistance", "0.01 Ohm"},
			fixtureAttr{"tolerance", "Tolerance", "1%"},
			fixtureAttr{"power_rating", "Power Rating", "1 W"},
			fixtureAttr{"package_case", "Package / Case", "2512"},
			fixtureAttr{"temperature_coefficient", "Temperature Coefficient", "75 ppm/C"},
			fixtureAttr{"operating_temperature", "Operating Temperature", "-65 to 170"},
			fixtureAttr{"description", "Description", "Power Metal Strip current sense resistor"},
			fixtureAttr{"lifecycle_status", "Lifecycle Status", "active"},
		),
		mk(
			schema.Part{MPN: "KRL3216T-M-R010-F-T1", Manufacturer: "Susumu", Category: "Resistors", Subcategory: "Current Sense Resistors", Lifecycle: schema.LifecycleActive, UnitPrice: 0.52, Stock: 18000},
			fixtureAttr{"resistance", "Resistance", "0.01 Ohm"},
			fixtureAttr{"tolerance", "Tolerance", "1%"},
			fixtureAttr{"power_rating", "Power Rating", "1 W"},
			fixtureAttr{"package_case", "Package / Case", "1206"},
			fixtureAttr{"temperature_coefficient", "Temperature Coefficient", "50 ppm/C"},
			fixtureAttr{"operating_temperature", "Operating Temperature", "-55 to 170"},
			fixtureAttr{"description", "Description", "Metal foil shunt resistor for current detection"},
			fixtureAttr{"lifecycle_status", "Lifecycle Status", "active"},
		),
	}
}

func capacitorFixtures() []schema.PartAttributes {
	return []schema.PartAttributes{
		mk(
			schema.Part{MPN: "GRM188R71H104KA93D", Manufacturer: "Murata", Category: "Ceramic Capacitors", Lifecycle: schema.LifecycleActive, UnitPrice: 0.002, Stock: 3000000},
			fixtureAttr{"capacitance", "Capacitance", "100 nF"},
			fixtureAttr{"voltage_rating", "Voltage Rating", "50 V"},
			fixtureAttr{"dielectric", "Dielectric", "X7R"},
			fixtureAttr{"package_case", "Package / Case", "0603"},
			fixtureAttr{"tolerance", "Tolerance", "10%"},
			fixtureAttr{"lifecycle_status", "Lifecycle Status", "active"},
		),
		mk(
			schema.Part{MPN: "CL10B104KB8NNNC", Manufacturer: "Samsung", Category: "Ceramic Capacitors", Lifecycle: schema.LifecycleActive, UnitPrice: 0.001, Stock: 5000000},
			fixtureAttr{"capacitance", "Capacitance", "100 nF"},
			fixtureAttr{"voltage_rating", "Voltage Rating", "50 V"},
			fixtureAttr{"dielectric", "Dielectric", "X7R"},
			fixtureAttr{"package_case", "Package / Case", "0603"},
			fixtureAttr{"tolerance", "Tolerance", "10%"},
			fixtureAttr{"lifecycle_status", "Lifecycle Status", "active"},
		),
		mk(
			schema.Part{MPN: "CGA3E2X7R1H104K080AA", Manufacturer: "TDK", Category: "Ceramic Capacitors", Subcategory: "Automotive MLCC", Lifecycle: schema.LifecycleActive, UnitPrice: 0.01, Stock: 900000},
			fixtureAttr{"capacitance", "Capacitance", "100 nF"},
			fixtureAttr{"voltage_rating", "Voltage Rating", "50 V"},
			fixtureAttr{"dielectric", "Dielectric", "X7R"},
			fixtureAttr{"package_case", "Package / Case", "0603"},
			fixtureAttr{"tolerance", "Tolerance", "10%"},
			fixtureAttr{"automotive_grade", "AEC-Q200 Qualified", "yes"},
			fixtureAttr{"flexible_termination", "Flexible Termination", "yes"},
			fixtureAttr{"lifecycle_status", "Lifecycle Status", "active"},
		),
		mk(
			schema.Part{MPN: "GRM188R61A106ME69D", Manufacturer: "Murata", Category: "Ceramic Capacitors", Lifecycle: schema.LifecycleActive, UnitPrice: 0.02, Stock: 700000},
			fixtureAttr{"capacitance", "Capacitance", "10 uF"},
			fixtureAttr{"voltage_rating", "Voltage Rating", "10 V"},
			fixtureAttr{"dielectric", "Dielectric", "X5R"},
			fixtureAttr{"package_case", "Package / Case", "0603"},
			fixtureAttr{"tolerance", "Tolerance", "20%"},
			fixtureAttr{"lifecycle_status", "Lifecycle Status", "active"},
		),
		mk(
			schema.Part{MPN: "UWT1V101MCL1GB", Manufacturer: "Nichicon", Category: "Aluminum Electrolytic Capacitors", Lifecycle: schema.LifecycleActive, UnitPrice: 0.08, Stock: 120000},
			fixtureAttr{"capacitance", "Capacitance", "100 uF"},
			fixtureAttr{"voltage_rating", "Voltage Rating", "35 V"},
			fixtureAttr{"esr", "ESR", "0.9 Ohm"},
			fixtureAttr{"ripple_current", "Ripple Current", "150 mA"},
			fixtureAttr{"rated_lifetime_hours", "Rated Lifetime", "2000"},
			fixtureAttr{"operating_temperature", "Operating Temperature", "-55 to 105"},
			fixtureAttr{"package_case", "Package / Case", "6.3x5.8"},
			fixtureAttr{"lifecycle_status", "Lifecycle Status", "active"},
		),
		mk(
			schema.Part{MPN: "EEE-FT1V101AP", Manufacturer: "Panasonic", Category: "Aluminum Electrolytic Capacitors", Lifecycle: schema.LifecycleActive, UnitPrice: 0.18, Stock: 60000},
			fixtureAttr{"capacitance", "Capacitance", "100 uF"},
			fixtureAttr{"voltage_rating", "Voltage Rating", "35 V"},
			fixtureAttr{"esr", "ESR", "0.4 Ohm"},
			fixtureAttr{"ripple_current", "Ripple Current", "260 mA"},
			fixtureAttr{"rated_lifetime_hours", "Rated Lifetime", "5000"},
			fixtureAttr{"operating_temperature", "Operating Temperature", "-55 to 105"},
			fixtureAttr{"package_case", "Package / Case", "6.3x5.8"},
			fixtureAttr{"lifecycle_status", "Lifecycle Status", "active"},
		),
		mk(
			schema.Part{MPN: "APXG160ARA101MH70G", Manufacturer: "Chemi-Con", Category: "Aluminum Electrolytic Capacitors", Subcategory: "Polymer Capacitors", Lifecycle: schema.LifecycleActive, UnitPrice: 0.35, Stock: 25000},
			fixtureAttr{"capacitance", "Capacitance", "100 uF"},
			fixtureAttr{"voltage_rating", "Voltage Rating", "16 V"},
			fixtureAttr{"esr", "ESR", "0.024 Ohm"},
			fixtureAttr{"ripple_current", "Ripple Current", "2.4 A"},
			fixtureAttr{"operating_temperature", "Operating Temperature", "-55 to 105"},
			fixtureAttr{"package_case", "Package / Case", "6.3x7.7"},
			fixtureAttr{"description", "Description", "Conductive polymer aluminum solid capacitor"},
			fixtureAttr{"lifecycle_status", "Lifecycle Status", "active"},
		),
	}
}

func regulatorFixtures() []schema.PartAttributes {
	return []schema.PartAttributes{
		mk(
			schema.Part{MPN: "TLV75533PDBVR", Manufacturer: "Texas Instruments", Category: "Linear Regulators", Lifecycle: schema.LifecycleActive, UnitPrice: 0.25, Stock: 90000},
			fixtureAttr{"output_voltage", "Output Voltage", "3.3 V"},
			fixtureAttr{"output_current", "Output Current", "500 mA"},
			fixtureAttr{"input_voltage_range", "Input Voltage Range", "1.45 to 5.5"},
			fixtureAttr{"dropout_voltage", "Dropout Voltage", "130 mV"},
			fixtureAttr{"quiescent_current", "Quiescent Current", "25 uA"},
			fixtureAttr{"output_type", "Output Type", "fixed"},
			fixtureAttr{"package_case", "Package / Case", "SOT-23-5"},
			fixtureAttr{"psrr", "PSRR", "55"},
			fixtureAttr{"lifecycle_status", "Lifecycle Status", "active"},
		),
		mk(
			schema.Part{MPN: "MCP1700T-3302E/TT", Manufacturer: "Microchip", Category: "Linear Regulators", Lifecycle: schema.LifecycleActive, UnitPrice: 0.32, Stock: 140000},
			fixtureAttr{"output_voltage", "Output Voltage", "3.3 V"},
			fixtureAttr{"output_current", "Output Current", "250 mA"},
			fixtureAttr{"input_voltage_range", "Input Voltage Range", "2.3 to 6"},
			fixtureAttr{"dropout_voltage", "Dropout Voltage", "178 mV"},
			fixtureAttr{"quiescent_current", "Quiescent Current", "1.6 uA"},
			fixtureAttr{"output_type", "Output Type", "fixed"},
			fixtureAttr{"package_case", "Package / Case", "SOT-23-3"},
			fixtureAttr{"psrr", "PSRR", "44"},
			fixtureAttr{"lifecycle_status", "Lifecycle Status", "active"},
		),
		mk(
			schema.Part{MPN: "NCP1117ST33T3G", Manufacturer: "onsemi", Category: "Linear Regulators", Lifecycle: schema.LifecycleActive, UnitPrice: 0.28, Stock: 200000},
			fixtureAttr{"output_voltage", "Output Voltage", "3.3 V"},
			fixtureAttr{"output_current", "Output Current", "1 A"},
			fixtureAttr{"input_voltage_range", "Input Voltage Range", "4.75 to 18"},
			fixtureAttr{"dropout_voltage", "Dropout Voltage", "1.2 V"},
			fixtureAttr{"quiescent_current", "Quiescent Current", "5.2 mA"},
			fixtureAttr{"output_type", "Output Type", "fixed"},
			fixtureAttr{"package_case", "Package / Case", "SOT-223"},
			fixtureAttr{"lifecycle_status", "Lifecycle Status", "active"},
		),
		mk(
			schema.Part{MPN: "LM1117MPX-ADJ", Manufacturer: "Texas Instruments", Category: "Linear Regulators", Lifecycle: schema.LifecycleActive, UnitPrice: 0.55, Stock: 40000},
			fixtureAttr{"output_voltage", "Output Voltage", "3.3 V"},
			fixtureAttr{"reference_voltage", "Reference Voltage", "1.25 V"},
			fixtureAttr{"output_current", "Output Current", "800 mA"},
			fixtureAttr{"input_voltage_range", "Input Voltage Range", "4.75 to 15"},
			fixtureAttr{"dropout_voltage", "Dropout Voltage", "1.2 V"},
			fixtureAttr{"quiescent_current", "Quiescent Current", "5 mA"},
			fixtureAttr{"output_type", "Output Type", "adjustable"},
			fixtureAttr{"package_case", "Package / Case", "SOT-223"},
			fixtureAttr{"lifecycle_status", "Lifecycle Status", "active"},
		),
		mk(
			schema.Part{MPN: "TPS7A4901DGNR", Manufacturer: "Texas Instruments", Category: "Linear Regulators", Lifecycle: schema.LifecycleActive, UnitPrice: 2.4, Stock: 12000},
			fixtureAttr{"reference_voltage", "Reference Voltage", "1.194 V"},
			fixtureAttr{"output_current", "Output Current", "150 mA"},
			fixtureAttr{"input_voltage_range", "Input Voltage Range", "3 to 36"},
			fixtureAttr{"dropout_voltage", "Dropout Voltage", "260 mV"},
			fixtureAttr{"quiescent_current", "Quiescent Current", "60 uA"},
			fixtureAttr{"output_type", "Output Type", "adjustable"},
			fixtureAttr{"package_case", "Package / Case", "MSOP-8"},
			fixtureAttr{"psrr", "PSRR", "72"},
			fixtureAttr{"lifecycle_status", "Lifecycle Status", "active"},
		),
	}
}

func discreteFixtures() []schema.PartAttributes {
	return []schema.PartAttributes{
		mk(
			schema.Part{MPN: "LM358DR", Manufacturer: "Texas Instruments", Category: "Op Amps", Lifecycle: schema.LifecycleActive, UnitPrice: 0.12, Stock: 500000},
			fixtureAttr{"supply_voltage_range", "Supply Voltage Range", "3 to 32"},
			fixtureAttr{"channels", "Channels per Package", "2"},
			fixtureAttr{"package_case", "Package / Case", "SOIC-8"},
			fixtureAttr{"gain_bandwidth", "Gain Bandwidth Product", "0.7 MHz"},
			fixtureAttr{"input_offset_voltage", "Input Offset Voltage", "3 mV"},
			fixtureAttr{"slew_rate", "Slew Rate", "0.3"},
			fixtureAttr{"input_bias_current", "Input Bias Current", "45 nA"},
			fixtureAttr{"unity_gain_stable", "Unity-Gain Stable", "yes"},
			fixtureAttr{"operating_temperature", "Operating Temperature", "0 to 70"},
			fixtureAttr{"lifecycle_status", "Lifecycle Status", "active"},
		),
		mk(
			schema.Part{MPN: "LM358DT", Manufacturer: "STMicroelectronics", Category: "Op Amps", Lifecycle: schema.LifecycleActive, UnitPrice: 0.1, Stock: 350000},
			fixtureAttr{"supply_voltage_range", "Supply Voltage Range", "3 to 30"},
			fixtureAttr{"channels", "Channels per Package", "2"},
			fixtureAttr{"package_case", "Package / Case", "SOIC-8"},
			fixtureAttr{"gain_bandwidth", "Gain Bandwidth Product", "1.1 MHz"},
			fixtureAttr{"input_offset_voltage", "Input Offset Voltage", "2 mV"},
			fixtureAttr{"slew_rate", "Slew Rate", "0.6"},
			fixtureAttr{"input_bias_current", "Input Bias Current", "20 nA"},
			fixtureAttr{"unity_gain_stable", "Unity-Gain Stable", "yes"},
			fixtureAttr{"operating_temperature", "Operating Temperature", "-40 to 105"},
			fixtureAttr{"lifecycle_status", "Lifecycle Status", "active"},
		),
		mk(
			schema.Part{MPN: "TLV9062IDR", Manufacturer: "Texas Instruments", Category: "Op Amps", Lifecycle: schema.LifecycleActive, UnitPrice: 0.35, Stock: 80000},
			fixtureAttr{"supply_voltage_range", "Supply Voltage Range", "1.8 to 5.5"},
			fixtureAttr{"channels", "Channels per Package", "2"},
			fixtureAttr{"package_case", "Package / Case", "SOIC-8"},
			fixtureAttr{"gain_bandwidth", "Gain Bandwidth Product", "10 MHz"},
			fixtureAttr{"input_offset_voltage", "Input Offset Voltage", "0.3 mV"},
			fixtureAttr{"slew_rate", "Slew Rate", "6.5"},
			fixtureAttr{"input_bias_current", "Input Bias Current", "0.5 pA"},
			fixtureAttr{"rail_to_rail", "Rail-to-Rail I/O", "yes"},
			fixtureAttr{"unity_gain_stable", "Unity-Gain Stable", "yes"},
			fixtureAttr{"operating_temperature", "Operating Temperature", "-40 to 125"},
			fixtureAttr{"lifecycle_status", "Lifecycle Status", "active"},
		),
		mk(
			schema.Part{MPN: "BSS138", Manufacturer: "onsemi", Category: "MOSFETs", Lifecycle: schema.LifecycleActive, UnitPrice: 0.06, Stock: 900000},
			fixtureAttr{"vds_rating", "Drain-Source Voltage", "50 V"},
			fixtureAttr{"rds_on", "Rds(on)", "3.5 Ohm"},
			fixtureAttr{"continuous_drain_current", "Continuous Drain Current", "220 mA"},
			fixtureAttr{"vgs_threshold", "Gate Threshold Voltage", "1.3 V"},
			fixtureAttr{"package_case", "Package / Case", "SOT-23"},
			fixtureAttr{"power_dissipation", "Power Dissipation", "360 mW"},
			fixtureAttr{"logic_level_gate", "Logic-Level Gate", "yes"},
			fixtureAttr{"operating_temperature", "Operating Temperature", "-55 to 150"},
			fixtureAttr{"lifecycle_status", "Lifecycle Status", "active"},
		),
		mk(
			schema.Part{MPN: "BSS138P", Manufacturer: "Nexperia", Category: "MOSFETs", Lifecycle: schema.LifecycleActive, UnitPrice: 0.05, Stock: 1200000},
			fixtureAttr{"vds_rating", "Drain-Source Voltage", "60 V"},
			fixtureAttr{"rds_on", "Rds(on)", "3 Ohm"},
			fixtureAttr{"continuous_drain_current", "Continuous Drain Current", "320 mA"},
			fixtureAttr{"vgs_threshold", "Gate Threshold Voltage", "1.4 V"},
			fixtureAttr{"package_case", "Package / Case", "SOT-23"},
			fixtureAttr{"power_dissipation", "Power Dissipation", "300 mW"},
			fixtureAttr{"logic_level_gate", "Logic-Level Gate", "yes"},
			fixtureAttr{"operating_temperature", "Operating Temperature", "-55 to 150"},
			fixtureAttr{"lifecycle_status", "Lifecycle Status", "active"},
		),
		mk(
			schema.Part{MPN: "IRLML6344TRPBF", Manufacturer: "Infineon", Category: "MOSFETs", Lifecycle: schema.LifecycleActive, UnitPrice: 0.18, Stock: 300000},
			fixtureAttr{"vds_rating", "Drain-Source Voltage", "30 V"},
			fixtureAttr{"rds_on", "Rds(on)", "0.029 Ohm"},
			fixtureAttr{"continuous_drain_current", "Continuous Drain Current", "5 A"},
			fixtureAttr{"vgs_threshold", "Gate Threshold Voltage", "1.1 V"},
			fixtureAttr{"gate_charge", "Total Gate Charge", "6.8 nC"},
			fixtureAttr{"package_case", "Package / Case", "SOT-23"},
			fixtureAttr{"power_dissipation", "Power Dissipation", "1.3 W"},
			fixtureAttr{"logic_level_gate", "Logic-Level Gate", "yes"},
			fixtureAttr{"operating_temperature", "Operating Temperature", "-55 to 150"},
			fixtureAttr{"lifecycle_status", "Lifecycle Status", "active"},
		),
		mk(
			schema.Part{MPN: "744043100", Manufacturer: "Wurth Elektronik", Category: "Power Inductors", Lifecycle: schema.LifecycleActive, UnitPrice: 0.65, Stock: 50000},
			fixtureAttr{"inductance", "Inductance", "10 uH"},
			fixtureAttr{"saturation_current", "Saturation Current", "1.8 A"},
			fixtureAttr{"rms_current", "RMS Current", "1.25 A"},
			fixtureAttr{"dc_resistance", "DC Resistance", "0.165 Ohm"},
			fixtureAttr{"package_case", "Package / Case", "4828"},
			fixtureAttr{"shielding", "Shielding", "shielded"},
			fixtureAttr{"operating_temperature", "Operating Temperature", "-40 to 125"},
			fixtureAttr{"lifecycle_status", "Lifecycle Status", "active"},
		),
		mk(
			schema.Part{MPN: "SRR7045-100M", Manufacturer: "Bourns", Category: "Power Inductors", Lifecycle: schema.LifecycleActive, UnitPrice: 0.55, Stock: 35000},
			fixtureAttr{"inductance", "Inductance", "10 uH"},
			fixtureAttr{"saturation_current", "Saturation Current", "2.4 A"},
			fixtureAttr{"rms_current", "RMS Current", "1.9 A"},
			fixtureAttr{"dc_resistance", "DC Resistance", "0.082 Ohm"},
			fixtureAttr{"package_case", "Package / Case", "7045"},
			fixtureAttr{"shielding", "Shielding", "shielded"},
			fixtureAttr{"operating_temperature", "Operating Temperature", "-40 to 125"},
			fixtureAttr{"lifecycle_status", "Lifecycle Status", "active"},
		),
		mk(
			schema.Part{MPN: "MBRS340T3G", Manufacturer: "onsemi", Category: "Schottky Diodes", Lifecycle: schema.LifecycleActive, UnitPrice: 0.22, Stock: 250000},
			fixtureAttr{"reverse_voltage", "Reverse Voltage", "40 V"},
			fixtureAttr{"forward_current", "Forward Current", "3 A"},
			fixtureAttr{"forward_voltage", "Forward Voltage", "0.53 V"},
			fixtureAttr{"reverse_leakage", "Reverse Leakage", "0.1 mA"},
			fixtureAttr{"package_case", "Package / Case", "SMC"},
			fixtureAttr{"configuration", "Configuration", "single"},
			fixtureAttr{"operating_temperature", "Operating Temperature", "-65 to 150"},
			fixtureAttr{"lifecycle_status", "Lifecycle Status", "active"},
		),
		mk(
			schema.Part{MPN: "SS34-E3/57T", Manufacturer: "Vishay", Category: "Schottky Diodes", Lifecycle: schema.LifecycleActive, UnitPrice: 0.16, Stock: 400000},
			fixtureAttr{"reverse_voltage", "Reverse Voltage", "40 V"},
			fixtureAttr{"forward_current", "Forward Current", "3 A"},
			fixtureAttr{"forward_voltage", "Forward Voltage", "0.5 V"},
			fixtureAttr{"reverse_leakage", "Reverse Leakage", "0.5 mA"},
			fixtureAttr{"package_case", "Package / Case", "SMC"},
			fixtureAttr{"configuration", "Configuration", "single"},
			fixtureAttr{"operating_temperature", "Operating Temperature", "-65 to 150"},
			fixtureAttr{"lifecycle_status", "Lifecycle Status", "active"},
		),
	}
}

package registry

import (
	"regexp"

	"github.com/altsource/altsource/core"
	"github.com/altsource/altsource/schema"
)

// builtinClassifierRules returns the sub-family classifier rules. Order
// matters: keyword rules carry explicit vendor intent and run before the
// numeric-only heuristics.
func builtinClassifierRules() []core.ClassifierRule {
	return []core.ClassifierRule{
		{
			BaseFamilyID:   "chip_resistor",
			TargetFamilyID: "current_sense_resistor",
			Keywords:       []string{"current sense", "shunt"},
		},
		{
			BaseFamilyID:   "chip_resistor",
			TargetFamilyID: "current_sense_resistor",
			MPNPattern:     regexp.MustCompile(`^WSL|^CSR|^LVK`),
		},
		{
			BaseFamilyID:   "chip_resistor",
			TargetFamilyID: "chassis_mount_resistor",
			Keywords:       []string{"chassis", "wirewound"},
		},
		{
			BaseFamilyID:   "mlcc",
			TargetFamilyID: "automotive_mlcc",
			Keywords:       []string{"aec-q200", "automotive"},
		},
		{
			BaseFamilyID:   "aluminum_electrolytic",
			TargetFamilyID: "polymer_electrolytic",
			Keywords:       []string{"polymer", "os-con"},
		},
		{
			// Heuristic: milliohm value at significant power is a shunt even
			// when the vendor text does not say so.
			BaseFamilyID:   "chip_resistor",
			TargetFamilyID: "current_sense_resistor",
			Numeric: []core.NumericPredicate{
				{AttributeID: "resistance", Max: floatPtr(0.1)},
				{AttributeID: "power_rating", Min: floatPtr(0.5)},
			},
		},
		{
			// Heuristic: nothing below 10 W ships as a chassis mount part.
			BaseFamilyID:   "chip_resistor",
			TargetFamilyID: "chassis_mount_resistor",
			Numeric: []core.NumericPredicate{
				{AttributeID: "power_rating", Min: floatPtr(10)},
			},
		},
	}
}

func floatPtr(v float64) *float64 { return &v }

// packagePowerRatings maps standard chip resistor case sizes to their typical
// rated power in watts.
var packagePowerRatings = map[string]string{
	"0201": "0.05 W",
	"0402": "0.0625 W",
	"0603": "0.1 W",
	"0805": "0.125 W",
	"1206": "0.25 W",
	"1210": "0.5 W",
	"2010": "0.75 W",
	"2512": "1 W",
}

// dielectricTempRanges maps MLCC dielectric classes to the operating range
// implied by the EIA class code. Keys are normalized (lowercase).
var dielectricTempRanges = map[string]string{
	"c0g": "-55 to 125",
	"x8r": "-55 to 150",
	"x7r": "-55 to 125",
	"x6s": "-55 to 105",
	"x5r": "-55 to 85",
	"z5u": "10 to 85",
	"y5v": "-30 to 85",
}

// builtinEnrichers returns the attribute enrichment steps. Enrichers fill
// gaps in vendor data from what the class codes already imply; they never
// overwrite a supplied value.
func builtinEnrichers() []core.Enricher {
	return []core.Enricher{
		{
			FamilyID:    "chip_resistor",
			AttributeID: "power_rating",
			DisplayName: "Power Rating",
			Derive: func(attrs *schema.PartAttributes) (string, bool) {
				pkg := attrs.Attribute(attrPackageCase)
				if pkg == nil {
					return "", false
				}
				rating, ok := packagePowerRatings[core.NormalizeValue(pkg.RawValue)]
				return rating, ok
			},
		},
		{
			FamilyID:    "mlcc",
			AttributeID: attrOperatingTemp,
			DisplayName: "Operating Temperature",
			Derive: func(attrs *schema.PartAttributes) (string, bool) {
				diel := attrs.Attribute("dielectric")
				if diel == nil {
					return "", false
				}
				r, ok := dielectricTempRanges[core.NormalizeValue(diel.RawValue)]
				return r, ok
			},
		},
		{
			FamilyID:    "ldo_regulator",
			AttributeID: "output_type",
			DisplayName: "Output Type",
			Derive: func(attrs *schema.PartAttributes) (string, bool) {
				// Adjustable parts publish a reference voltage instead of a
				// fixed output.
				if attrs.HasAttribute("output_voltage") {
					return "fixed", true
				}
				if attrs.HasAttribute("reference_voltage") {
					return "adjustable", true
				}
				return "", false
			},
		},
	}
}

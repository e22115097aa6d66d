package registry

import "github.com/altsource/altsource/schema"

// builtinContextConfigs returns the qualifying questions per family. Effects
// only ever escalate or annotate; they never relax a rule below its table
// default except through the explicit not_applicable kind.
func builtinContextConfigs() map[string]*schema.FamilyContextConfig {
	configs := map[string]*schema.FamilyContextConfig{
		"chip_resistor":          chipResistorContext(),
		"current_sense_resistor": chipResistorContext(),
		"mlcc":                   mlccContext(),
		"automotive_mlcc":        mlccContext(),
		"ldo_regulator":          ldoContext(),
	}
	for familyID, config := range configs {
		config.FamilyID = familyID
	}
	return configs
}

func chipResistorContext() *schema.FamilyContextConfig {
	return &schema.FamilyContextConfig{
		Questions: []schema.ContextQuestion{
			{
				ID:       "application",
				Prompt:   "What is the resistor used for?",
				Priority: 1,
				Options: []schema.ContextOption{
					{
						Value: "precision_sense", Label: "Precision sensing or reference divider",
						Effects: []schema.AttributeEffect{
							{AttributeID: attrTolerance, EffectKind: schema.EffectEscalateMandatory, BlockOnMissing: true},
							{AttributeID: "temperature_coefficient", EffectKind: schema.EffectEscalatePrimary, BlockOnMissing: true},
						},
					},
					{
						Value: "pull_up", Label: "Pull-up / pull-down",
						Effects: []schema.AttributeEffect{
							{AttributeID: attrTolerance, EffectKind: schema.EffectNotApplicable},
							{AttributeID: "temperature_coefficient", EffectKind: schema.EffectNotApplicable},
						},
					},
					{Value: "general", Label: "General purpose"},
				},
			},
			{
				ID:       "environment",
				Prompt:   "What environment does the board ship into?",
				Priority: 2,
				Options: []schema.ContextOption{
					{
						Value: "automotive", Label: "Automotive",
						Effects: []schema.AttributeEffect{
							{AttributeID: attrAutomotive, EffectKind: schema.EffectEscalateMandatory, BlockOnMissing: true},
						},
					},
					{
						Value: "industrial", Label: "Industrial",
						Effects: []schema.AttributeEffect{
							{AttributeID: attrOperatingTemp, EffectKind: schema.EffectEscalatePrimary},
						},
					},
					{Value: "commercial", Label: "Commercial / consumer"},
				},
			},
			{
				ID:        "sense_current",
				Prompt:    "How much current flows through the sense path?",
				Priority:  3,
				Condition: &schema.QuestionCondition{QuestionID: "application", AnyOf: []string{"precision_sense"}},
				Options: []schema.ContextOption{
					{
						Value: "high", Label: "More than 1 A",
						Effects: []schema.AttributeEffect{
							{AttributeID: "power_rating", EffectKind: schema.EffectEscalateMandatory, BlockOnMissing: true},
						},
					},
					{Value: "low", Label: "1 A or less"},
				},
			},
		},
	}
}

func mlccContext() *schema.FamilyContextConfig {
	return &schema.FamilyContextConfig{
		Questions: []schema.ContextQuestion{
			{
				ID:       "dc_bias_critical",
				Prompt:   "Is the effective capacitance under DC bias critical?",
				Priority: 1,
				Options: []schema.ContextOption{
					{
						Value: "yes", Label: "Yes, it sets a filter pole or soft-start time",
						Effects: []schema.AttributeEffect{
							{AttributeID: "dielectric", EffectKind: schema.EffectEscalateMandatory, BlockOnMissing: true},
							{AttributeID: attrPackageCase, EffectKind: schema.EffectSetThreshold,
								Note: "smaller case sizes lose more capacitance under bias"},
						},
					},
					{Value: "no", Label: "No, bulk decoupling only"},
				},
			},
			{
				ID:       "environment",
				Prompt:   "What environment does the board ship into?",
				Priority: 2,
				Options: []schema.ContextOption{
					{
						Value: "automotive", Label: "Automotive",
						Effects: []schema.AttributeEffect{
							{AttributeID: attrAutomotive, EffectKind: schema.EffectEscalateMandatory, BlockOnMissing: true},
							{AttributeID: "flexible_termination", EffectKind: schema.EffectEscalatePrimary},
						},
					},
					{Value: "commercial", Label: "Commercial / consumer"},
				},
			},
		},
	}
}

func ldoContext() *schema.FamilyContextConfig {
	return &schema.FamilyContextConfig{
		Questions: []schema.ContextQuestion{
			{
				ID:       "battery_powered",
				Prompt:   "Is the rail battery powered?",
				Priority: 1,
				Options: []schema.ContextOption{
					{
						Value: "yes", Label: "Yes",
						Effects: []schema.AttributeEffect{
							{AttributeID: "quiescent_current", EffectKind: schema.EffectEscalatePrimary},
							{AttributeID: "dropout_voltage", EffectKind: schema.EffectEscalateMandatory, BlockOnMissing: true},
						},
					},
					{Value: "no", Label: "No, mains or USB powered"},
				},
			},
			{
				ID:       "post_regulation",
				Prompt:   "Does the LDO post-regulate a switching converter?",
				Priority: 2,
				Options: []schema.ContextOption{
					{
						Value: "yes", Label: "Yes",
						Effects: []schema.AttributeEffect{
							{AttributeID: "psrr", EffectKind: schema.EffectSetThreshold,
								Note: "PSRR must hold at the converter's switching frequency"},
						},
					},
					{Value: "no", Label: "No"},
				},
			},
		},
	}
}

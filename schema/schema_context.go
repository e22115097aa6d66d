package schema

// AttributeEffect is one rule adjustment carried by a context option. Effects
// referencing attribute ids the table does not carry are skipped silently, so
// one context config can be shared across families whose tables differ.
type AttributeEffect struct {
	AttributeID    string     `json:"attribute_id" yaml:"attribute_id"`
	EffectKind     EffectKind `json:"effect_kind" yaml:"effect_kind"`
	Note           string     `json:"note,omitempty" yaml:"note,omitempty"`
	BlockOnMissing bool       `json:"block_on_missing,omitempty" yaml:"block_on_missing,omitempty"` // Propagated onto the rule regardless of effect kind
}

// ContextOption is one predefined, mutually exclusive answer to a question.
type ContextOption struct {
	Value   string            `json:"value" yaml:"value"`
	Label   string            `json:"label" yaml:"label"`
	Effects []AttributeEffect `json:"effects,omitempty" yaml:"effects,omitempty"`
}

// QuestionCondition gates a question on a prior question's answer. If the
// prerequisite was not answered with one of the allowed values, the dependent
// question's effects are never applied, even if it was answered out of order.
type QuestionCondition struct {
	QuestionID string   `json:"question_id" yaml:"question_id"`
	AnyOf      []string `json:"any_of" yaml:"any_of"`
}

// ContextQuestion is one family-specific qualifying question. Free-text
// answers that match no option are advisory to a human reviewer only.
type ContextQuestion struct {
	ID            string             `json:"id" yaml:"id"`
	Prompt        string             `json:"prompt" yaml:"prompt"`
	Priority      int                `json:"priority" yaml:"priority"` // Evaluation/display order, lower first
	AllowFreeText bool               `json:"allow_free_text,omitempty" yaml:"allow_free_text,omitempty"`
	Condition     *QuestionCondition `json:"condition,omitempty" yaml:"condition,omitempty"`
	Options       []ContextOption    `json:"options" yaml:"options"`
}

// OptionByValue returns the option matching the given answer value, or nil.
func (q *ContextQuestion) OptionByValue(value string) *ContextOption {
	for i := range q.Options {
		if q.Options[i].Value == value {
			return &q.Options[i]
		}
	}
	return nil
}

// FamilyContextConfig is the static set of qualifying questions for a family.
type FamilyContextConfig struct {
	FamilyID  string            `json:"family_id" yaml:"family_id"`
	Questions []ContextQuestion `json:"questions" yaml:"questions"`
}

// ApplicationContext holds the user's resolved answers for one evaluation
// session, keyed by question id. Ephemeral; discarded after use.
type ApplicationContext struct {
	FamilyID string            `json:"family_id"`
	Answers  map[string]string `json:"answers"`
}

// Package schema has configs, models and constants for all parts of altsource.
package schema

// Part holds the identity and commercial metadata for a single component.
// It is immutable once fetched for a given evaluation.
type Part struct {
	MPN          string  `json:"mpn"`          // Manufacturer part number
	Manufacturer string  `json:"manufacturer"` // Manufacturer name
	Category     string  `json:"category"`     // Free-text category label (e.g. "Chip Resistors")
	Subcategory  string  `json:"subcategory"`  // Optional finer-grained label
	Lifecycle    string  `json:"lifecycle"`    // Lifecycle status: active, nrnd, eol, obsolete
	UnitPrice    float64 `json:"unit_price"`   // Unit price in USD, 0 if unknown
	Stock        int     `json:"stock"`        // Reported stock quantity, 0 if unknown
}

// ParametricAttribute is a single parametric value on a part. AttributeID is
// the join key between a part's attribute list and a rule's AttributeID.
type ParametricAttribute struct {
	AttributeID  string   `json:"attribute_id"`
	DisplayName  string   `json:"display_name"`
	RawValue     string   `json:"raw_value"`
	NumericValue *float64 `json:"numeric_value,omitempty"` // Parsed numeric value in base units, nil if not numeric
	Unit         string   `json:"unit,omitempty"`
	DisplayOrder int      `json:"display_order"`
}

// PartAttributes is a part plus its ordered attribute list. This is the unit
// exchanged between all core components.
type PartAttributes struct {
	Part       Part                  `json:"part"`
	Attributes []ParametricAttribute `json:"attributes"`
}

// Attribute returns the attribute with the given id, or nil if the part does
// not carry it. AttributeID is unique within one part's attribute set.
func (pa *PartAttributes) Attribute(attributeID string) *ParametricAttribute {
	for i := range pa.Attributes {
		if pa.Attributes[i].AttributeID == attributeID {
			return &pa.Attributes[i]
		}
	}
	return nil
}

// HasAttribute reports whether the part carries a non-empty value for the id.
func (pa *PartAttributes) HasAttribute(attributeID string) bool {
	attr := pa.Attribute(attributeID)
	return attr != nil && attr.RawValue != ""
}

// SetAttribute replaces the raw value of an existing attribute, invalidating
// any cached numeric parse, or appends a new attribute when the id is absent.
func (pa *PartAttributes) SetAttribute(attributeID, displayName, rawValue string) {
	if attr := pa.Attribute(attributeID); attr != nil {
		attr.RawValue = rawValue
		attr.NumericValue = nil
		return
	}
	order := 0
	for i := range pa.Attributes {
		if pa.Attributes[i].DisplayOrder > order {
			order = pa.Attributes[i].DisplayOrder
		}
	}
	pa.Attributes = append(pa.Attributes, ParametricAttribute{
		AttributeID:  attributeID,
		DisplayName:  displayName,
		RawValue:     rawValue,
		DisplayOrder: order + 1,
	})
}

// Clone returns a deep copy so callers can mutate attributes without
// affecting the original (overrides, enrichment).
func (pa *PartAttributes) Clone() PartAttributes {
	out := PartAttributes{Part: pa.Part}
	out.Attributes = make([]ParametricAttribute, len(pa.Attributes))
	copy(out.Attributes, pa.Attributes)
	return out
}

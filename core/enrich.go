package core

import "github.com/altsource/altsource/schema"

// Enricher synthesizes a derived attribute when the source data omits it,
// so classification and evaluation can rely on it. Enrichment never
// overwrites an attribute that is already present.
type Enricher struct {
	FamilyID    string // base family the enricher applies to
	AttributeID string // the attribute it synthesizes
	DisplayName string
	Derive      func(attrs *schema.PartAttributes) (string, bool)
}

// EnrichAttributes runs every enricher scoped to the family against a copy
// of the part's attributes and returns the enriched copy.
func EnrichAttributes(familyID string, attrs *schema.PartAttributes, enrichers []Enricher) schema.PartAttributes {
	out := attrs.Clone()
	for i := range enrichers {
		e := &enrichers[i]
		if e.FamilyID != familyID {
			continue
		}
		if out.HasAttribute(e.AttributeID) {
			continue
		}
		if value, ok := e.Derive(&out); ok {
			out.SetAttribute(e.AttributeID, e.DisplayName, value)
		}
	}
	return out
}

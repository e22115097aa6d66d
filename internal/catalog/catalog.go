// Package catalog provides part data sources: a built-in fixture catalog, an
// HTTP client for a remote catalog service, and a caching decorator.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/altsource/altsource/schema"
)

// ErrPartNotFound is returned when a catalog has no part for the given MPN.
var ErrPartNotFound = errors.New("part not found")

// EmbeddedProvider serves parts from the built-in fixture set. It backs the
// default configuration and the CLI integration tests, so no network or
// credentials are needed to exercise the full pipeline.
type EmbeddedProvider struct {
	parts map[string]schema.PartAttributes // keyed by normalized MPN
}

// NewEmbeddedProvider returns a provider over the fixture catalog.
func NewEmbeddedProvider() *EmbeddedProvider {
	parts := fixtureParts()
	byMPN := make(map[string]schema.PartAttributes, len(parts))
	for i := range parts {
		byMPN[normalizeMPN(parts[i].Part.MPN)] = parts[i]
	}
	return &EmbeddedProvider{parts: byMPN}
}

// GetPart returns the fixture part for an MPN. Lookup is case-insensitive.
func (p *EmbeddedProvider) GetPart(_ context.Context, mpn string) (schema.PartAttributes, error) {
	part, ok := p.parts[normalizeMPN(mpn)]
	if !ok {
		return schema.PartAttributes{}, fmt.Errorf("%s: %w", mpn, ErrPartNotFound)
	}
	return part.Clone(), nil
}

// FindCandidates returns every fixture part sharing the source's category,
// excluding the source itself, in deterministic MPN order.
func (p *EmbeddedProvider) FindCandidates(_ context.Context, source *schema.PartAttributes, limit int) ([]schema.PartAttributes, error) {
	sourceKey := normalizeMPN(source.Part.MPN)
	category := strings.ToLower(source.Part.Category)

	var out []schema.PartAttributes
	for key, part := range p.parts {
		if key == sourceKey {
			continue
		}
		if strings.ToLower(part.Part.Category) != category {
			continue
		}
		out = append(out, part.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Part.MPN < out[j].Part.MPN })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func normalizeMPN(mpn string) string {
	return strings.ToUpper(strings.TrimSpace(mpn))
}

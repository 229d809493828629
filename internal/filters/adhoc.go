// Package filters composes the active segment, the transient ad-hoc
// filter stack, and free-text search into the predicate the dashboard
// applies to each record list. Everything here is pure: the same inputs
// always produce the same filtered list, and nothing is mutated or
// fetched along the way.
package filters

import (
	"strings"

	"github.com/DKmica/TreeProAIv2-sub000/internal/segments"
)

// ServiceAny is the sentinel meaning no service filter is selected.
const ServiceAny = "any"

// AdHocFilters is the session-local filter state owned by the UI layer.
// It is never persisted; the host hands it in per evaluation pass. Each
// sub-rule is active only when its field is non-empty (or, for the
// service filter, not the "any" sentinel); inactive sub-rules never
// exclude a record.
type AdHocFilters struct {
	LocationText  string
	ServiceFilter string
	SpeciesText   string
	TagFilters    []string
}

// Matches reports whether ctx passes every active sub-rule. The zero
// value matches everything.
func (f AdHocFilters) Matches(ctx segments.Context) bool {
	if !f.matchesLocation(ctx) {
		return false
	}
	if !f.matchesSpecies(ctx) {
		return false
	}
	if !f.matchesService(ctx) {
		return false
	}
	return f.matchesTags(ctx)
}

// matchesLocation casts a wider net than the single-field segment
// criteria: the quick free-form box hits zip prefix, city substring, or
// state substring.
func (f AdHocFilters) matchesLocation(ctx segments.Context) bool {
	text := strings.TrimSpace(f.LocationText)
	if text == "" {
		return true
	}
	lower := strings.ToLower(text)
	if ctx.Zip != "" && strings.HasPrefix(strings.ToLower(ctx.Zip), lower) {
		return true
	}
	if ctx.City != "" && strings.Contains(strings.ToLower(ctx.City), lower) {
		return true
	}
	return ctx.State != "" && strings.Contains(strings.ToLower(ctx.State), lower)
}

func (f AdHocFilters) matchesSpecies(ctx segments.Context) bool {
	text := strings.TrimSpace(f.SpeciesText)
	if text == "" {
		return true
	}
	lower := strings.ToLower(text)
	for _, sp := range ctx.Species {
		if strings.Contains(strings.ToLower(sp), lower) {
			return true
		}
	}
	return false
}

// matchesService looks for the filter key as a phrase inside the service
// history: underscores in the key become spaces, so "plant_health"
// matches "Plant Health treatment needed".
func (f AdHocFilters) matchesService(ctx segments.Context) bool {
	key := strings.TrimSpace(f.ServiceFilter)
	if key == "" || strings.EqualFold(key, ServiceAny) {
		return true
	}
	phrase := strings.ToLower(strings.ReplaceAll(key, "_", " "))
	for _, svc := range ctx.Services {
		if strings.Contains(strings.ToLower(svc), phrase) {
			return true
		}
	}
	return false
}

func (f AdHocFilters) matchesTags(ctx segments.Context) bool {
	if len(f.TagFilters) == 0 {
		return true
	}
	for _, tag := range ctx.Tags {
		for _, selected := range f.TagFilters {
			if strings.EqualFold(tag, selected) {
				return true
			}
		}
	}
	return false
}

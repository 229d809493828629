package segments

import (
	"strings"
	"time"
)

// FieldKind names the record attribute a criterion constrains.
type FieldKind string

const (
	FieldZip             FieldKind = "zip"
	FieldCity            FieldKind = "city"
	FieldState           FieldKind = "state"
	FieldTag             FieldKind = "tag"
	FieldService         FieldKind = "service"
	FieldSpecies         FieldKind = "species"
	FieldStatus          FieldKind = "status"
	FieldClientType      FieldKind = "client_type"
	FieldLifetimeValue   FieldKind = "lifetime_value"
	FieldLastInteraction FieldKind = "last_interaction"
)

// Criterion is one field-level rule within a segment. The concrete types
// below form a closed set, one per FieldKind, so evaluation is a total
// match with no dynamic value-shape checks. Segment definitions arrive
// from an external management service; the catalog package converts their
// raw values into these types.
type Criterion interface {
	Field() FieldKind
	Matches(ctx Context) bool
}

// ZipPrefix matches when the context zip starts with the given prefix.
// Prefix matching supports zip-prefix regions ("941" covers 94110).
type ZipPrefix struct {
	Prefix string
}

func (ZipPrefix) Field() FieldKind { return FieldZip }

func (c ZipPrefix) Matches(ctx Context) bool {
	return ctx.Zip != "" && hasPrefixFold(ctx.Zip, c.Prefix)
}

// CityContains matches when the context city contains the text.
type CityContains struct {
	Text string
}

func (CityContains) Field() FieldKind { return FieldCity }

func (c CityContains) Matches(ctx Context) bool {
	return ctx.City != "" && containsFold(ctx.City, c.Text)
}

// StateEquals matches the state exactly, ignoring case. "CA" does not
// match "California".
type StateEquals struct {
	Code string
}

func (StateEquals) Field() FieldKind { return FieldState }

func (c StateEquals) Matches(ctx Context) bool {
	return ctx.State != "" && strings.EqualFold(ctx.State, c.Code)
}

// TagIn matches when any context tag is in the allow-list. A single-tag
// criterion is a one-element list.
type TagIn struct {
	OneOf []string
}

func (TagIn) Field() FieldKind { return FieldTag }

func (c TagIn) Matches(ctx Context) bool {
	return anyEqualFold(ctx.Tags, c.OneOf)
}

// ServiceIn matches when any context service entry is in the allow-list.
type ServiceIn struct {
	OneOf []string
}

func (ServiceIn) Field() FieldKind { return FieldService }

func (c ServiceIn) Matches(ctx Context) bool {
	return anyEqualFold(ctx.Services, c.OneOf)
}

// SpeciesIn matches when any context species entry is in the allow-list.
type SpeciesIn struct {
	OneOf []string
}

func (SpeciesIn) Field() FieldKind { return FieldSpecies }

func (c SpeciesIn) Matches(ctx Context) bool {
	return anyEqualFold(ctx.Species, c.OneOf)
}

// StatusEquals matches the lifecycle status, ignoring case. An absent
// status never matches; there is no vacuous match here.
type StatusEquals struct {
	Value string
}

func (StatusEquals) Field() FieldKind { return FieldStatus }

func (c StatusEquals) Matches(ctx Context) bool {
	return ctx.Status != "" && strings.EqualFold(ctx.Status, c.Value)
}

// ClientTypeEquals matches the client type exactly. Unlike status this
// comparison is case-sensitive, matching the management service's
// long-standing behavior.
type ClientTypeEquals struct {
	Value string
}

func (ClientTypeEquals) Field() FieldKind { return FieldClientType }

func (c ClientTypeEquals) Matches(ctx Context) bool {
	return ctx.ClientType == c.Value
}

// ValueRange matches when the context lifetime value falls in
// [Min, Max], both bounds inclusive and independently optional. A flat
// minimum threshold is a range with no Max. Malformed source values are
// coerced to NaN upstream, and NaN bounds compare false against
// everything, so a broken criterion matches nothing rather than erroring.
type ValueRange struct {
	Min *float64
	Max *float64
}

func (ValueRange) Field() FieldKind { return FieldLifetimeValue }

func (c ValueRange) Matches(ctx Context) bool {
	v := ctx.LifetimeValue
	if c.Min != nil && !(v >= *c.Min) {
		return false
	}
	if c.Max != nil && !(v <= *c.Max) {
		return false
	}
	return true
}

// InteractedSince matches records whose last interaction is at or after
// the cutoff. This is a "since" floor, not a range.
type InteractedSince struct {
	Cutoff time.Time
}

func (InteractedSince) Field() FieldKind { return FieldLastInteraction }

func (c InteractedSince) Matches(ctx Context) bool {
	if ctx.LastInteraction == nil {
		return false
	}
	return !ctx.LastInteraction.Before(c.Cutoff)
}

// Unrecognized stands in for a criterion whose field kind this engine
// does not understand. It matches everything: segmentation definitions
// evolve ahead of deployed evaluators, and silently hiding records would
// be worse than over-matching.
type Unrecognized struct {
	Kind string
}

func (c Unrecognized) Field() FieldKind { return FieldKind(c.Kind) }

func (Unrecognized) Matches(Context) bool { return true }

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func hasPrefixFold(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}

func anyEqualFold(values, allowed []string) bool {
	for _, v := range values {
		for _, a := range allowed {
			if strings.EqualFold(v, a) {
				return true
			}
		}
	}
	return false
}

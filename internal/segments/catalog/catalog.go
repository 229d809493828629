// Package catalog decodes segment definitions exported by the external
// segment-management service into typed segments. The wire format carries
// polymorphic criterion values (a scalar, a list, or a {min,max} object);
// decoding resolves each into one concrete criterion type so the
// evaluator never inspects value shapes at runtime.
//
// Decoding is deliberately permissive about content the engine does not
// understand — unknown field kinds become always-true criteria, malformed
// numbers and dates become criteria that match nothing — and strict only
// about structurally broken definitions (a segment without a name, a
// criterion without a field).
package catalog

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/DKmica/TreeProAIv2-sub000/internal/segments"
	"github.com/DKmica/TreeProAIv2-sub000/platform/apperr"
)

var validate = validator.New()

// farFuture is the cutoff assigned to last_interaction criteria whose
// date failed to parse: no real interaction timestamp reaches it, so the
// criterion matches nothing instead of erroring.
var farFuture = time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)

type document struct {
	Segments []segmentDef `yaml:"segments"`
}

type segmentDef struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name" validate:"required"`
	Description string         `yaml:"description"`
	Criteria    []criterionDef `yaml:"criteria" validate:"dive"`
}

type criterionDef struct {
	ID    string    `yaml:"id"`
	Field string    `yaml:"field" validate:"required"`
	Label string    `yaml:"label"`
	Value yaml.Node `yaml:"value"`
}

type rangeDef struct {
	Min *float64 `yaml:"min"`
	Max *float64 `yaml:"max"`
}

// Load reads and parses a segment catalog file. The file may be YAML or
// JSON; yaml.v3 accepts both.
func Load(path string) ([]segments.Segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindNotFound, "segment catalog not readable", err).WithOp("catalog.Load")
	}
	return Parse(data)
}

// Parse decodes a segment catalog document.
func Parse(data []byte) ([]segments.Segment, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, apperr.Wrap(apperr.KindBadRequest, "malformed segment catalog", err).WithOp("catalog.Parse")
	}

	out := make([]segments.Segment, 0, len(doc.Segments))
	for i, def := range doc.Segments {
		seg, err := buildSegment(def)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindValidation, fmt.Sprintf("segment %d invalid", i), err).WithOp("catalog.Parse")
		}
		out = append(out, seg)
	}
	return out, nil
}

func buildSegment(def segmentDef) (segments.Segment, error) {
	if err := validate.Struct(def); err != nil {
		return segments.Segment{}, err
	}

	id, err := uuid.Parse(def.ID)
	if err != nil {
		// Catalog exports from older deployments omit IDs; mint one so
		// every segment is addressable within this process.
		id = uuid.New()
	}

	criteria := make([]segments.Criterion, 0, len(def.Criteria))
	for _, c := range def.Criteria {
		criteria = append(criteria, buildCriterion(c))
	}

	return segments.Segment{
		ID:          id,
		Name:        def.Name,
		Description: def.Description,
		Criteria:    criteria,
	}, nil
}

// buildCriterion resolves one raw criterion into its typed form. This is
// the single place the value polymorphism of the wire format is allowed
// to exist.
func buildCriterion(def criterionDef) segments.Criterion {
	switch segments.FieldKind(def.Field) {
	case segments.FieldZip:
		return segments.ZipPrefix{Prefix: scalarString(def.Value)}
	case segments.FieldCity:
		return segments.CityContains{Text: scalarString(def.Value)}
	case segments.FieldState:
		return segments.StateEquals{Code: scalarString(def.Value)}
	case segments.FieldTag:
		return segments.TagIn{OneOf: stringList(def.Value)}
	case segments.FieldService:
		return segments.ServiceIn{OneOf: stringList(def.Value)}
	case segments.FieldSpecies:
		return segments.SpeciesIn{OneOf: stringList(def.Value)}
	case segments.FieldStatus:
		return segments.StatusEquals{Value: scalarString(def.Value)}
	case segments.FieldClientType:
		return segments.ClientTypeEquals{Value: scalarString(def.Value)}
	case segments.FieldLifetimeValue:
		return valueCriterion(def.Value)
	case segments.FieldLastInteraction:
		return sinceCriterion(def.Value)
	default:
		return segments.Unrecognized{Kind: def.Field}
	}
}

// valueCriterion accepts either a {min,max} mapping or a flat scalar
// treated as a minimum threshold. Non-numeric scalars coerce to NaN,
// which compares false against every value.
func valueCriterion(node yaml.Node) segments.Criterion {
	if node.Kind == yaml.MappingNode {
		var r rangeDef
		if err := node.Decode(&r); err == nil {
			return segments.ValueRange{Min: r.Min, Max: r.Max}
		}
	}
	min := scalarNumber(node)
	return segments.ValueRange{Min: &min}
}

func sinceCriterion(node yaml.Node) segments.Criterion {
	raw := strings.TrimSpace(scalarString(node))
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return segments.InteractedSince{Cutoff: ts}
		}
	}
	return segments.InteractedSince{Cutoff: farFuture}
}

func scalarString(node yaml.Node) string {
	var s string
	if err := node.Decode(&s); err != nil {
		return ""
	}
	return s
}

func scalarNumber(node yaml.Node) float64 {
	var f float64
	if err := node.Decode(&f); err == nil {
		return f
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(scalarString(node)), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// stringList accepts a single scalar or a sequence of scalars.
func stringList(node yaml.Node) []string {
	var list []string
	if err := node.Decode(&list); err == nil {
		return list
	}
	if s := scalarString(node); s != "" {
		return []string{s}
	}
	return nil
}

package segments

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Segment is a named, reusable audience definition. Criteria are ANDed: a
// record belongs to the segment only when every criterion matches. An
// empty criteria list matches everything, mirroring the "no segment
// selected" state.
type Segment struct {
	ID          uuid.UUID
	Name        string
	Description string
	Criteria    []Criterion

	// AudienceCount and SampleTags are display metadata refreshed by
	// Summarize; they never influence matching.
	AudienceCount int
	SampleTags    []string
}

// Matches reports whether ctx belongs to the segment. A nil segment means
// no segment is selected and matches every context. Evaluation
// short-circuits on the first failing criterion; AND is commutative, so
// criterion order never changes the result.
func (s *Segment) Matches(ctx Context) bool {
	if s == nil {
		return true
	}
	for _, c := range s.Criteria {
		if !c.Matches(ctx) {
			return false
		}
	}
	return true
}

// Summarize recomputes the segment's display metadata over a projected
// record set: the audience count and up to sampleLimit distinct tags seen
// on matching records, sorted for stable output.
func (s *Segment) Summarize(contexts []Context, sampleLimit int) {
	if s == nil {
		return
	}

	count := 0
	seen := map[string]string{}
	for _, ctx := range contexts {
		if !s.Matches(ctx) {
			continue
		}
		count++
		for _, tag := range ctx.Tags {
			key := strings.ToLower(tag)
			if _, ok := seen[key]; !ok {
				seen[key] = tag
			}
		}
	}

	tags := make([]string, 0, len(seen))
	for _, tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	if sampleLimit > 0 && len(tags) > sampleLimit {
		tags = tags[:sampleLimit]
	}

	s.AudienceCount = count
	s.SampleTags = tags
}

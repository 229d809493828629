package segments

import "testing"

func TestSegmentMatches_VacuousTruth(t *testing.T) {
	ctx := Context{State: "NV", Tags: []string{"Commercial"}}

	var none *Segment
	if !none.Matches(ctx) {
		t.Errorf("nil segment must match every context")
	}

	empty := &Segment{Name: "everyone"}
	if !empty.Matches(ctx) {
		t.Errorf("segment with no criteria must match every context")
	}
}

func TestSegmentMatches_Conjunction(t *testing.T) {
	seg := &Segment{
		Name: "CA VIPs",
		Criteria: []Criterion{
			StateEquals{Code: "CA"},
			TagIn{OneOf: []string{"VIP"}},
		},
	}

	both := Context{State: "CA", Tags: []string{"VIP"}}
	oneOnly := Context{State: "CA", Tags: []string{"HOA"}}

	if !seg.Matches(both) {
		t.Errorf("context satisfying every criterion should match")
	}
	if seg.Matches(oneOnly) {
		t.Errorf("context failing one criterion must not match")
	}
}

func TestSegmentMatches_OrderIndependent(t *testing.T) {
	a := StateEquals{Code: "CA"}
	b := ValueRange{Min: f64(1000)}

	contexts := []Context{
		{State: "CA", LifetimeValue: 2000},
		{State: "CA", LifetimeValue: 500},
		{State: "NV", LifetimeValue: 2000},
		{},
	}

	forward := &Segment{Criteria: []Criterion{a, b}}
	reversed := &Segment{Criteria: []Criterion{b, a}}

	for i, ctx := range contexts {
		if forward.Matches(ctx) != reversed.Matches(ctx) {
			t.Errorf("context %d: criterion order changed the result", i)
		}
	}
}

func TestSummarize_CountAndSampleTags(t *testing.T) {
	seg := &Segment{
		Name:     "CA",
		Criteria: []Criterion{StateEquals{Code: "CA"}},
	}

	contexts := []Context{
		{State: "CA", Tags: []string{"VIP", "HOA"}},
		{State: "CA", Tags: []string{"vip", "Commercial"}},
		{State: "NV", Tags: []string{"Excluded"}},
	}

	seg.Summarize(contexts, 2)

	if seg.AudienceCount != 2 {
		t.Fatalf("expected audience count 2, got %d", seg.AudienceCount)
	}
	if len(seg.SampleTags) != 2 {
		t.Fatalf("expected 2 sample tags, got %v", seg.SampleTags)
	}
	// Tags dedupe case-insensitively and sort for stable output.
	if seg.SampleTags[0] != "Commercial" || seg.SampleTags[1] != "HOA" {
		t.Errorf("unexpected sample tags %v", seg.SampleTags)
	}
}

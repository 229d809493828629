package filters

import (
	"testing"

	"github.com/google/uuid"

	"github.com/DKmica/TreeProAIv2-sub000/internal/crm"
	"github.com/DKmica/TreeProAIv2-sub000/internal/segments"
)

func TestClients_SegmentOnState(t *testing.T) {
	seg := &segments.Segment{
		Name:     "California",
		Criteria: []segments.Criterion{segments.StateEquals{Code: "CA"}},
	}

	clientA := crm.Client{ID: uuid.New(), Name: "A", BillingAddress: crm.Address{State: "CA"}}
	clientB := crm.Client{ID: uuid.New(), Name: "B", BillingAddress: crm.Address{State: "NV"}}

	got := Clients(Config{Segment: seg}, []crm.Client{clientA, clientB})

	if len(got) != 1 {
		t.Fatalf("expected 1 client, got %d", len(got))
	}
	if got[0].ID != clientA.ID {
		t.Errorf("expected client A to pass the state segment")
	}
}

func TestLeads_ServiceFilterOnDescription(t *testing.T) {
	cfg := Config{
		Filters: AdHocFilters{ServiceFilter: "plant_health"},
	}

	match := crm.Lead{ID: uuid.New(), CustomerName: "P", Description: "Plant Health treatment needed"}
	miss := crm.Lead{ID: uuid.New(), CustomerName: "S", Description: "Stump removal"}

	got := Leads(cfg, []crm.Lead{match, miss}, nil)

	if len(got) != 1 || got[0].ID != match.ID {
		t.Fatalf("expected only the plant health lead, got %d", len(got))
	}
}

func TestLeads_SearchAndFiltersAreIndependentPasses(t *testing.T) {
	cfg := Config{
		Filters: AdHocFilters{TagFilters: []string{"VIP"}},
		Search:  "alvarez",
	}

	// Matches the search but not the tag filter: search must not bypass
	// filter exclusion.
	searchOnly := crm.Lead{ID: uuid.New(), CustomerName: "J. Alvarez", Tags: []string{"HOA"}}
	// Matches the tag filter but not the search.
	filterOnly := crm.Lead{ID: uuid.New(), CustomerName: "M. Chen", Tags: []string{"VIP"}}
	both := crm.Lead{ID: uuid.New(), CustomerName: "R. Alvarez", Tags: []string{"VIP"}}

	got := Leads(cfg, []crm.Lead{searchOnly, filterOnly, both}, nil)

	if len(got) != 1 || got[0].ID != both.ID {
		t.Fatalf("only the lead passing both passes should survive, got %d", len(got))
	}
}

func TestLeads_SearchCoversSourceAndStatus(t *testing.T) {
	leads := []crm.Lead{
		{ID: uuid.New(), CustomerName: "A", Source: "Website", Status: crm.LeadStatusNew},
		{ID: uuid.New(), CustomerName: "B", Source: "Referral", Status: crm.LeadStatusQualified},
	}

	bySource := Leads(Config{Search: "referral"}, leads, nil)
	if len(bySource) != 1 || bySource[0].CustomerName != "B" {
		t.Errorf("search should cover the lead source")
	}

	byStatus := Leads(Config{Search: "qualified"}, leads, nil)
	if len(byStatus) != 1 || byStatus[0].CustomerName != "B" {
		t.Errorf("search should cover the lead status")
	}
}

func TestLeads_ClientTypeComesFromOwner(t *testing.T) {
	owner := crm.Client{ID: uuid.New(), ClientType: "Commercial"}
	seg := &segments.Segment{
		Criteria: []segments.Criterion{segments.ClientTypeEquals{Value: "Commercial"}},
	}

	linked := crm.Lead{ID: uuid.New(), ClientID: &owner.ID}
	orphan := crm.Lead{ID: uuid.New()}

	got := Leads(Config{Segment: seg}, []crm.Lead{linked, orphan}, crm.ClientIndex([]crm.Client{owner}))

	if len(got) != 1 || got[0].ID != linked.ID {
		t.Fatalf("only the lead with a Commercial owner should match, got %d", len(got))
	}
}

func TestQuotes_SearchOnQuoteNumber(t *testing.T) {
	quotes := []crm.Quote{
		{ID: uuid.New(), QuoteNumber: "Q-1042", Status: crm.QuoteStatusSent},
		{ID: uuid.New(), QuoteNumber: "Q-2000", Status: crm.QuoteStatusDraft},
	}

	got := Quotes(Config{Search: "1042"}, quotes, nil)

	if len(got) != 1 || got[0].QuoteNumber != "Q-1042" {
		t.Fatalf("expected quote Q-1042, got %d results", len(got))
	}
}

func TestPipeline_PureAndRepeatable(t *testing.T) {
	seg := &segments.Segment{
		Criteria: []segments.Criterion{segments.ZipPrefix{Prefix: "89"}},
	}
	cfg := Config{Segment: seg, Filters: AdHocFilters{LocationText: "reno"}}

	leads := []crm.Lead{
		{ID: uuid.New(), CustomerName: "A", Address: crm.Address{City: "Reno", Zip: "89501"}},
		{ID: uuid.New(), CustomerName: "B", Address: crm.Address{City: "Sparks", Zip: "89431"}},
	}

	first := Leads(cfg, leads, nil)
	second := Leads(cfg, leads, nil)

	if len(first) != len(second) {
		t.Fatalf("repeated evaluation diverged: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("repeated evaluation reordered results at %d", i)
		}
	}
	if len(leads) != 2 {
		t.Errorf("input list must not be mutated")
	}
}

package segments

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/DKmica/TreeProAIv2-sub000/internal/crm"
)

func TestProjectClient(t *testing.T) {
	updated := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	client := crm.Client{
		ID:   uuid.New(),
		Name: "Oakdale HOA",
		BillingAddress: crm.Address{
			City:  "Sacramento",
			State: "CA",
			Zip:   "95814",
		},
		Tags:          []string{"HOA"},
		Notes:         "Annual pruning contract",
		Status:        "Active",
		ClientType:    "HOA",
		LifetimeValue: 42000,
		UpdatedAt:     &updated,
	}

	ctx := ProjectClient(client)

	if ctx.Zip != "95814" || ctx.City != "Sacramento" || ctx.State != "CA" {
		t.Errorf("geographic fields not mapped from billing address: %+v", ctx)
	}
	if len(ctx.Services) != 1 || ctx.Services[0] != "Annual pruning contract" {
		t.Errorf("client notes should project as single service entry, got %v", ctx.Services)
	}
	if len(ctx.Species) != 0 {
		t.Errorf("clients have no species concept, got %v", ctx.Species)
	}
	if ctx.LifetimeValue != 42000 || ctx.ClientType != "HOA" || ctx.Status != "Active" {
		t.Errorf("direct fields not mapped: %+v", ctx)
	}
	if ctx.LastInteraction == nil || !ctx.LastInteraction.Equal(updated) {
		t.Errorf("last interaction should be the update timestamp")
	}
}

func TestProjectClient_EmptyRecordDefaults(t *testing.T) {
	ctx := ProjectClient(crm.Client{})

	if ctx.Zip != "" || len(ctx.Services) != 0 || ctx.LastInteraction != nil {
		t.Errorf("empty client should project to zero values, got %+v", ctx)
	}
	if ctx.LifetimeValue != 0 {
		t.Errorf("lifetime value should default to 0")
	}
}

func TestProjectLead_DescriptionFeedsServicesAndSpecies(t *testing.T) {
	owner := crm.Client{ClientType: "Residential"}
	lead := crm.Lead{
		Description:    "Remove dead oak near driveway",
		EstimatedValue: 7500,
		Address:        crm.Address{City: "Reno", State: "NV", Zip: "89501"},
		Status:         crm.LeadStatusNew,
	}

	ctx := ProjectLead(lead, &owner)

	// The description duplicates into both arrays deliberately: it may
	// mention a service, a species, or both.
	if len(ctx.Services) != 1 || len(ctx.Species) != 1 {
		t.Fatalf("description should feed services and species, got %v / %v", ctx.Services, ctx.Species)
	}
	if ctx.Services[0] != ctx.Species[0] {
		t.Errorf("services and species should carry the same description text")
	}
	if ctx.ClientType != "Residential" {
		t.Errorf("client type should come from the owning client, got %q", ctx.ClientType)
	}
	if ctx.LifetimeValue != 7500 {
		t.Errorf("lead lifetime value should be the estimated deal value")
	}
}

func TestProjectLead_NoOwner(t *testing.T) {
	ctx := ProjectLead(crm.Lead{Status: crm.LeadStatusContacted}, nil)

	if ctx.ClientType != "" {
		t.Errorf("lead without an owning client should have no client type")
	}
}

func TestProjectQuote(t *testing.T) {
	quote := crm.Quote{
		QuoteNumber: "Q-1042",
		CustomerDetails: crm.CustomerDetails{
			Name: "J. Alvarez",
			Address: crm.Address{
				Street: "12 Cedar Ln",
				City:   "Boise",
				State:  "ID",
				Zip:    "83702",
			},
		},
		Status: crm.QuoteStatusSent,
		Items: []crm.QuoteItem{
			{Description: "Crown thinning"},
			{Description: "Stump grinding"},
		},
		Total: 3200,
	}

	ctx := ProjectQuote(quote, nil)

	if len(ctx.Services) != 2 || ctx.Services[1] != "Stump grinding" {
		t.Errorf("services should carry one entry per line item, got %v", ctx.Services)
	}
	// Quotes carry no species field; the street line stands in until
	// line items do.
	if len(ctx.Species) != 1 || ctx.Species[0] != "12 Cedar Ln" {
		t.Errorf("quote species should reuse the customer street line, got %v", ctx.Species)
	}
	if ctx.LifetimeValue != 3200 {
		t.Errorf("quote lifetime value should be the grand total")
	}
}

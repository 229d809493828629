package segments

import (
	"strings"

	"github.com/DKmica/TreeProAIv2-sub000/internal/crm"
)

// Projectors normalize the three record shapes into one evaluation
// context so the criterion evaluator stays entity-agnostic. They are
// total: absent nested data projects to zero values, never a panic.

// ProjectClient maps a client onto an evaluation context. Clients have no
// species concept, and their service history is a single free-text notes
// field, projected as a one-element slice when present.
func ProjectClient(c crm.Client) Context {
	var services []string
	if notes := strings.TrimSpace(c.Notes); notes != "" {
		services = []string{notes}
	}

	return Context{
		Zip:             c.BillingAddress.Zip,
		City:            c.BillingAddress.City,
		State:           c.BillingAddress.State,
		Tags:            c.Tags,
		Services:        services,
		Status:          c.Status,
		ClientType:      c.ClientType,
		LifetimeValue:   c.LifetimeValue,
		LastInteraction: c.UpdatedAt,
	}
}

// ProjectLead maps a lead onto an evaluation context. The free-text
// description feeds both services and species: a prospect's note may
// mention either ("remove the dead oak" vs "stump grinding"), and
// substring criteria pick up whichever applies. The client type comes
// from the owning client record when one is linked; owner may be nil.
func ProjectLead(l crm.Lead, owner *crm.Client) Context {
	var mentions []string
	if desc := strings.TrimSpace(l.Description); desc != "" {
		mentions = []string{desc}
	}

	clientType := ""
	if owner != nil {
		clientType = owner.ClientType
	}

	return Context{
		Zip:             l.Address.Zip,
		City:            l.Address.City,
		State:           l.Address.State,
		Tags:            l.Tags,
		Services:        mentions,
		Species:         mentions,
		Status:          l.Status,
		ClientType:      clientType,
		LifetimeValue:   l.EstimatedValue,
		LastInteraction: l.UpdatedAt,
	}
}

// ProjectQuote maps a quote onto an evaluation context. Services come
// from the line-item descriptions, one entry per item. Species reuses the
// customer street line until quotes carry species on their line items;
// species filters on quotes key off that placeholder today.
func ProjectQuote(q crm.Quote, owner *crm.Client) Context {
	var services []string
	if len(q.Items) > 0 {
		services = make([]string, 0, len(q.Items))
		for _, item := range q.Items {
			services = append(services, item.Description)
		}
	}

	var species []string
	if street := strings.TrimSpace(q.CustomerDetails.Address.Street); street != "" {
		species = []string{street}
	}

	clientType := ""
	if owner != nil {
		clientType = owner.ClientType
	}

	return Context{
		Zip:             q.CustomerDetails.Address.Zip,
		City:            q.CustomerDetails.Address.City,
		State:           q.CustomerDetails.Address.State,
		Tags:            q.Tags,
		Services:        services,
		Species:         species,
		Status:          q.Status,
		ClientType:      clientType,
		LifetimeValue:   q.Total,
		LastInteraction: q.UpdatedAt,
	}
}

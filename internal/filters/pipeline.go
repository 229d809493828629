package filters

import (
	"strings"

	"github.com/google/uuid"

	"github.com/DKmica/TreeProAIv2-sub000/internal/crm"
	"github.com/DKmica/TreeProAIv2-sub000/internal/segments"
)

// Config is one evaluation pass's selection state: the active segment
// (nil when none is selected), the ad-hoc filter stack, and the free-text
// search term. The host owns its lifecycle and threads it in as a plain
// argument.
type Config struct {
	Segment *segments.Segment
	Filters AdHocFilters
	Search  string
}

// keep applies the segment and ad-hoc passes, then the independent
// free-text pass over the entity's display fields. Search never bypasses
// segment or filter exclusion, and vice versa.
func (cfg Config) keep(ctx segments.Context, displayFields ...string) bool {
	if !cfg.Segment.Matches(ctx) {
		return false
	}
	if !cfg.Filters.Matches(ctx) {
		return false
	}
	return searchMatches(cfg.Search, displayFields)
}

func searchMatches(term string, fields []string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// Clients returns the clients passing the configured pipeline, in input
// order.
func Clients(cfg Config, clients []crm.Client) []crm.Client {
	out := make([]crm.Client, 0, len(clients))
	for _, c := range clients {
		ctx := segments.ProjectClient(c)
		if cfg.keep(ctx, c.Name, c.Email, c.Phone) {
			out = append(out, c)
		}
	}
	return out
}

// Leads returns the leads passing the configured pipeline. The client
// index resolves each lead's owning client for the client_type attribute;
// leads without a linked client project with none.
func Leads(cfg Config, leads []crm.Lead, clientsByID map[uuid.UUID]crm.Client) []crm.Lead {
	out := make([]crm.Lead, 0, len(leads))
	for _, l := range leads {
		ctx := segments.ProjectLead(l, ownerOf(l.ClientID, clientsByID))
		if cfg.keep(ctx, l.CustomerName, l.Source, l.Status) {
			out = append(out, l)
		}
	}
	return out
}

// Quotes returns the quotes passing the configured pipeline.
func Quotes(cfg Config, quotes []crm.Quote, clientsByID map[uuid.UUID]crm.Client) []crm.Quote {
	out := make([]crm.Quote, 0, len(quotes))
	for _, q := range quotes {
		ctx := segments.ProjectQuote(q, ownerOf(q.ClientID, clientsByID))
		if cfg.keep(ctx, q.QuoteNumber, q.CustomerDetails.Name, q.Status) {
			out = append(out, q)
		}
	}
	return out
}

func ownerOf(id *uuid.UUID, clientsByID map[uuid.UUID]crm.Client) *crm.Client {
	if id == nil {
		return nil
	}
	if owner, ok := clientsByID[*id]; ok {
		return &owner
	}
	return nil
}

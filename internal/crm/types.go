// Package crm holds the record model shared by the segmentation engine:
// clients, leads, and quotes as the host application materializes them.
// The engine never fetches or mutates these records; they arrive as
// read-only lists and everything derived from them is recomputed per pass.
package crm

import (
	"time"

	"github.com/google/uuid"
)

// Lead lifecycle statuses. Every lead the board aggregator sees should be
// in one of these; anything else is ignored rather than rejected.
const (
	LeadStatusNew       = "New"
	LeadStatusContacted = "Contacted"
	LeadStatusQualified = "Qualified"
	LeadStatusLost      = "Lost"
)

// Quote statuses. Accepted and Converted both count as a won deal for
// conversion metrics.
const (
	QuoteStatusDraft     = "Draft"
	QuoteStatusSent      = "Sent"
	QuoteStatusAccepted  = "Accepted"
	QuoteStatusConverted = "Converted"
	QuoteStatusDeclined  = "Declined"
)

// Address is a postal address snapshot. Fields may be empty when the
// source record was captured without them.
type Address struct {
	Street string `yaml:"street" json:"street"`
	City   string `yaml:"city" json:"city"`
	State  string `yaml:"state" json:"state"`
	Zip    string `yaml:"zip" json:"zip"`
}

// Client is an established customer with billing details and work history.
type Client struct {
	ID             uuid.UUID  `yaml:"id" json:"id"`
	Name           string     `yaml:"name" json:"name"`
	Email          string     `yaml:"email" json:"email"`
	Phone          string     `yaml:"phone" json:"phone"`
	BillingAddress Address    `yaml:"billing_address" json:"billing_address"`
	Tags           []string   `yaml:"tags" json:"tags"`
	Notes          string     `yaml:"notes" json:"notes"`
	Status         string     `yaml:"status" json:"status"`
	ClientType     string     `yaml:"client_type" json:"client_type"`
	LifetimeValue  float64    `yaml:"lifetime_value" json:"lifetime_value"`
	UpdatedAt      *time.Time `yaml:"updated_at" json:"updated_at"`
}

// Lead is a prospective job. ClientID links to the existing client record
// when the prospect is a known customer; new prospects have none.
type Lead struct {
	ID               uuid.UUID  `yaml:"id" json:"id"`
	ClientID         *uuid.UUID `yaml:"client_id" json:"client_id"`
	CustomerName     string     `yaml:"customer_name" json:"customer_name"`
	Source           string     `yaml:"source" json:"source"`
	Status           string     `yaml:"status" json:"status"`
	Description      string     `yaml:"description" json:"description"`
	EstimatedValue   float64    `yaml:"estimated_value" json:"estimated_value"`
	Address          Address    `yaml:"address" json:"address"`
	Tags             []string   `yaml:"tags" json:"tags"`
	LastContactDate  *time.Time `yaml:"last_contact_date" json:"last_contact_date"`
	NextFollowupDate *time.Time `yaml:"next_followup_date" json:"next_followup_date"`
	UpdatedAt        *time.Time `yaml:"updated_at" json:"updated_at"`
}

// CustomerDetails is the customer snapshot frozen onto a quote at
// creation time, independent of later client edits.
type CustomerDetails struct {
	Name    string  `yaml:"name" json:"name"`
	Address Address `yaml:"address" json:"address"`
}

// QuoteItem is one line item on a quote.
type QuoteItem struct {
	Description string  `yaml:"description" json:"description"`
	Quantity    float64 `yaml:"quantity" json:"quantity"`
	UnitPrice   float64 `yaml:"unit_price" json:"unit_price"`
	Total       float64 `yaml:"total" json:"total"`
}

// Quote is a priced proposal, optionally linked to the lead it came from.
type Quote struct {
	ID              uuid.UUID       `yaml:"id" json:"id"`
	QuoteNumber     string          `yaml:"quote_number" json:"quote_number"`
	LeadID          *uuid.UUID      `yaml:"lead_id" json:"lead_id"`
	ClientID        *uuid.UUID      `yaml:"client_id" json:"client_id"`
	CustomerDetails CustomerDetails `yaml:"customer_details" json:"customer_details"`
	Status          string          `yaml:"status" json:"status"`
	Items           []QuoteItem     `yaml:"items" json:"items"`
	Total           float64         `yaml:"total" json:"total"`
	Tags            []string        `yaml:"tags" json:"tags"`
	UpdatedAt       *time.Time      `yaml:"updated_at" json:"updated_at"`
}

// IsWon reports whether a quote counts as a converted deal.
func (q Quote) IsWon() bool {
	return q.Status == QuoteStatusAccepted || q.Status == QuoteStatusConverted
}

// ClientIndex builds a lookup from client ID to client. Projectors use it
// to resolve the owning client of leads and quotes.
func ClientIndex(clients []Client) map[uuid.UUID]Client {
	idx := make(map[uuid.UUID]Client, len(clients))
	for _, c := range clients {
		idx[c.ID] = c
	}
	return idx
}

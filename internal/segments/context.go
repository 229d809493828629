// Package segments implements saved audience definitions and their
// evaluation: a segment is an AND of field-level criteria, evaluated
// against a normalized projection of one CRM record. Evaluation is total;
// missing attributes simply fail to match, they never error.
package segments

import "time"

// Context is the normalized attribute projection of one record. Every
// field is independently defaultable: empty strings and nil slices mean
// the source record carried no such attribute.
type Context struct {
	Zip      string
	City     string
	State    string
	Tags     []string
	Services []string
	Species  []string

	// Status is compared case-insensitively; ClientType exactly.
	Status     string
	ClientType string

	// LifetimeValue is literal lifetime value for clients, estimated deal
	// value for leads, and the grand total for quotes.
	LifetimeValue float64

	// LastInteraction is the record's last-updated time, nil when unknown.
	LastInteraction *time.Time
}

// Package queue buckets leads into the fixed follow-up queues shown on
// the leads dashboard. The rules are business constants, not
// configuration: they apply to raw leads and ignore whatever segment or
// filters are currently selected.
package queue

import (
	"time"

	"github.com/DKmica/TreeProAIv2-sub000/internal/crm"
)

// Kind identifies one of the fixed lead queues.
type Kind string

const (
	All              Kind = "all"
	Stalled          Kind = "stalled"
	AwaitingResponse Kind = "awaiting_response"
	HighValue        Kind = "high_value"
)

const (
	// stallAfter is how long a lead may sit without contact before it
	// counts as stalled when no follow-up is on the calendar.
	stallAfter = 7 * 24 * time.Hour

	// highValueThreshold is in the same currency unit as EstimatedValue.
	highValueThreshold = 10000
)

// Flags holds a lead's queue membership. A lead can be in several queues
// at once.
type Flags struct {
	Stalled          bool
	AwaitingResponse bool
	HighValue        bool
}

// Classify evaluates all queue rules for one lead at the given instant.
// Callers pass now explicitly so repeated classification of the same data
// is reproducible.
func Classify(lead crm.Lead, now time.Time) Flags {
	return Flags{
		Stalled:          IsStalled(lead, now),
		AwaitingResponse: isAwaitingResponse(lead),
		HighValue:        lead.EstimatedValue >= highValueThreshold,
	}
}

// IsStalled reports whether a lead needs attention. Three disjuncts, in
// order:
//
//  1. a scheduled follow-up exists and is already in the past;
//  2. no follow-up is scheduled and the last contact was over a week ago;
//  3. the lead has no follow-up and no contact history at all.
//
// A future follow-up means the lead is being worked: never stalled, no
// matter how old the last contact is.
func IsStalled(lead crm.Lead, now time.Time) bool {
	if lead.NextFollowupDate != nil {
		return lead.NextFollowupDate.Before(now)
	}
	if lead.LastContactDate != nil {
		return now.Sub(*lead.LastContactDate) > stallAfter
	}
	return true
}

func isAwaitingResponse(lead crm.Lead) bool {
	return lead.Status == crm.LeadStatusContacted && lead.NextFollowupDate == nil
}

// InQueue reports whether a lead belongs to the given queue. The "all"
// queue matches every lead.
func InQueue(lead crm.Lead, kind Kind, now time.Time) bool {
	switch kind {
	case Stalled:
		return IsStalled(lead, now)
	case AwaitingResponse:
		return isAwaitingResponse(lead)
	case HighValue:
		return lead.EstimatedValue >= highValueThreshold
	default:
		return true
	}
}

// Filter returns the leads belonging to the given queue, in input order.
func Filter(leads []crm.Lead, kind Kind, now time.Time) []crm.Lead {
	out := make([]crm.Lead, 0, len(leads))
	for _, l := range leads {
		if InQueue(l, kind, now) {
			out = append(out, l)
		}
	}
	return out
}

// Counts tallies queue membership across a lead list, for the dashboard
// badge counters.
func Counts(leads []crm.Lead, now time.Time) map[Kind]int {
	counts := map[Kind]int{All: len(leads)}
	for _, l := range leads {
		flags := Classify(l, now)
		if flags.Stalled {
			counts[Stalled]++
		}
		if flags.AwaitingResponse {
			counts[AwaitingResponse]++
		}
		if flags.HighValue {
			counts[HighValue]++
		}
	}
	return counts
}

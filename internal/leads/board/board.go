// Package board groups a filtered lead list into the four fixed pipeline
// columns and derives per-column conversion metrics. Aggregation is
// grouping, not sequencing: input order never changes the result.
package board

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/DKmica/TreeProAIv2-sub000/internal/crm"
)

// Statuses are the fixed board columns, in display order. Leads whose
// status matches none of these are left off the board; the columns still
// render, empty.
var Statuses = []string{
	crm.LeadStatusNew,
	crm.LeadStatusContacted,
	crm.LeadStatusQualified,
	crm.LeadStatusLost,
}

// Column is one status group with its derived metrics.
type Column struct {
	Status string
	Leads  []crm.Lead

	// ConvertedCount is how many leads in the column have at least one
	// won quote pointing at them.
	ConvertedCount int

	// ConversionRate is a rounded integer percentage, 0 for an empty
	// column.
	ConversionRate int

	// TotalValue sums the estimated deal value across the column.
	TotalValue float64
}

// Build groups leads by status and computes conversion metrics against
// the full quote list. Callers pass the post-pipeline lead list; quotes
// are always the complete set, since a quote filtered off the quotes tab
// still proves its lead converted.
func Build(leads []crm.Lead, quotes []crm.Quote) []Column {
	wonLeads := make(map[uuid.UUID]bool)
	for _, q := range quotes {
		if q.LeadID != nil && q.IsWon() {
			wonLeads[*q.LeadID] = true
		}
	}

	columns := make([]Column, len(Statuses))
	for i, status := range Statuses {
		columns[i] = Column{Status: status, Leads: []crm.Lead{}}
	}

	for _, lead := range leads {
		i, ok := columnIndex(lead.Status)
		if !ok {
			continue
		}
		columns[i].Leads = append(columns[i].Leads, lead)
		columns[i].TotalValue += lead.EstimatedValue
		if wonLeads[lead.ID] {
			columns[i].ConvertedCount++
		}
	}

	for i := range columns {
		columns[i].ConversionRate = ratePercent(columns[i].ConvertedCount, len(columns[i].Leads))
	}

	return columns
}

// Totals returns the board-wide lead count, converted count, rounded
// conversion percentage, and summed value, for the dashboard header.
func Totals(columns []Column) (leads, converted, rate int, value float64) {
	for _, col := range columns {
		leads += len(col.Leads)
		converted += col.ConvertedCount
		value += col.TotalValue
	}
	rate = ratePercent(converted, leads)
	return leads, converted, rate, value
}

func columnIndex(status string) (int, bool) {
	for i, s := range Statuses {
		if strings.EqualFold(s, status) {
			return i, true
		}
	}
	return 0, false
}

// ratePercent is defined as 0 for an empty group; no division by zero.
func ratePercent(converted, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(converted) / float64(total) * 100))
}

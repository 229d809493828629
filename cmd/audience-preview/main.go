// audience-preview loads the CRM record fixtures and the segment catalog,
// applies a segment plus optional ad-hoc filters and search, and reports
// the filtered counts, lead queues, and pipeline board. It is the
// operator-side harness for the segmentation engine; the dashboard
// application wires the same packages against live data.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/DKmica/TreeProAIv2-sub000/internal/crm"
	"github.com/DKmica/TreeProAIv2-sub000/internal/filters"
	"github.com/DKmica/TreeProAIv2-sub000/internal/leads/board"
	"github.com/DKmica/TreeProAIv2-sub000/internal/leads/queue"
	"github.com/DKmica/TreeProAIv2-sub000/internal/segments"
	"github.com/DKmica/TreeProAIv2-sub000/internal/segments/catalog"
	"github.com/DKmica/TreeProAIv2-sub000/platform/config"
	"github.com/DKmica/TreeProAIv2-sub000/platform/logger"
)

type recordSet struct {
	Clients []crm.Client `yaml:"clients"`
	Leads   []crm.Lead   `yaml:"leads"`
	Quotes  []crm.Quote  `yaml:"quotes"`
}

func main() {
	segmentName := flag.String("segment", "", "name of the catalog segment to apply (empty = none)")
	search := flag.String("search", "", "free-text search term")
	location := flag.String("location", "", "location filter (zip prefix, city, or state)")
	service := flag.String("service", filters.ServiceAny, "service filter key, e.g. plant_health")
	species := flag.String("species", "", "species text filter")
	tags := flag.String("tags", "", "comma-separated tag filters")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting audience preview",
		"catalog", cfg.CatalogPath,
		"records", cfg.RecordsPath,
	)

	segs, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.CatalogError(cfg.CatalogPath, err)
		os.Exit(1)
	}

	records, err := loadRecords(cfg.RecordsPath)
	if err != nil {
		log.Error("failed to load records", "path", cfg.RecordsPath, "error", err)
		os.Exit(1)
	}

	active, err := pickSegment(segs, *segmentName)
	if err != nil {
		log.Error("segment not found", "name", *segmentName)
		os.Exit(1)
	}

	pipeCfg := filters.Config{
		Segment: active,
		Filters: filters.AdHocFilters{
			LocationText:  *location,
			ServiceFilter: *service,
			SpeciesText:   *species,
			TagFilters:    splitCSV(*tags),
		},
		Search: *search,
	}

	clientIdx := crm.ClientIndex(records.Clients)

	var (
		matchedClients []crm.Client
		matchedLeads   []crm.Lead
		matchedQuotes  []crm.Quote
	)

	// The pipeline is pure and re-entrant, so the three entity lists can
	// be filtered in parallel.
	started := time.Now()
	var g errgroup.Group
	g.Go(func() error {
		matchedClients = filters.Clients(pipeCfg, records.Clients)
		return nil
	})
	g.Go(func() error {
		matchedLeads = filters.Leads(pipeCfg, records.Leads, clientIdx)
		return nil
	})
	g.Go(func() error {
		matchedQuotes = filters.Quotes(pipeCfg, records.Quotes, clientIdx)
		return nil
	})
	_ = g.Wait()
	elapsedMs := float64(time.Since(started).Microseconds()) / 1000

	log.PipelineRun("clients", len(records.Clients), len(matchedClients), elapsedMs)
	log.PipelineRun("leads", len(records.Leads), len(matchedLeads), elapsedMs)
	log.PipelineRun("quotes", len(records.Quotes), len(matchedQuotes), elapsedMs)

	if active != nil {
		active.Summarize(projectAll(records, clientIdx), cfg.SampleTags)
		log.WithSegment(active.Name).Info("segment audience",
			"audience_count", active.AudienceCount,
			"sample_tags", strings.Join(active.SampleTags, ","),
		)
	}

	// Queues classify raw leads; the selected segment and filters do not
	// change a lead's follow-up state.
	now := time.Now().UTC()
	counts := queue.Counts(records.Leads, now)
	log.QueueCounts(counts[queue.All], counts[queue.Stalled], counts[queue.AwaitingResponse], counts[queue.HighValue])

	columns := board.Build(matchedLeads, records.Quotes)
	for _, col := range columns {
		log.Info("board_column",
			"status", col.Status,
			"leads", len(col.Leads),
			"converted", col.ConvertedCount,
			"conversion_rate", col.ConversionRate,
			"total_value", col.TotalValue,
		)
	}
	totalLeads, converted, rate, value := board.Totals(columns)
	log.Info("board_totals",
		"leads", totalLeads,
		"converted", converted,
		"conversion_rate", rate,
		"total_value", value,
	)

	printPreview(matchedLeads, cfg.PreviewLimit)
}

func loadRecords(path string) (recordSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return recordSet{}, err
	}
	var records recordSet
	if err := yaml.Unmarshal(data, &records); err != nil {
		return recordSet{}, err
	}
	return records, nil
}

func pickSegment(segs []segments.Segment, name string) (*segments.Segment, error) {
	if name == "" {
		return nil, nil
	}
	for i := range segs {
		if strings.EqualFold(segs[i].Name, name) {
			return &segs[i], nil
		}
	}
	return nil, fmt.Errorf("no segment named %q", name)
}

func projectAll(records recordSet, clientIdx map[uuid.UUID]crm.Client) []segments.Context {
	contexts := make([]segments.Context, 0, len(records.Clients)+len(records.Leads)+len(records.Quotes))
	for _, c := range records.Clients {
		contexts = append(contexts, segments.ProjectClient(c))
	}
	for _, l := range records.Leads {
		contexts = append(contexts, segments.ProjectLead(l, owner(l.ClientID, clientIdx)))
	}
	for _, q := range records.Quotes {
		contexts = append(contexts, segments.ProjectQuote(q, owner(q.ClientID, clientIdx)))
	}
	return contexts
}

func owner(id *uuid.UUID, clientIdx map[uuid.UUID]crm.Client) *crm.Client {
	if id == nil {
		return nil
	}
	if c, ok := clientIdx[*id]; ok {
		return &c
	}
	return nil
}

func splitCSV(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func printPreview(leads []crm.Lead, limit int) {
	if len(leads) > limit {
		leads = leads[:limit]
	}
	for _, l := range leads {
		fmt.Printf("%s  %-24s %-10s %10.0f\n", l.ID, l.CustomerName, l.Status, l.EstimatedValue)
	}
}

// Package generator rebuilds the static data tree served to the calendar:
// one event document per date that has events, the platform metadata
// document, and the latest-day summary.
package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fincal-labs/fincal-cli/internal/core/domain"
	"github.com/fincal-labs/fincal-cli/internal/logger"
)

// Platforms is the fixed catalog of collected source platforms.
var Platforms = []domain.Platform{
	{ID: "cls", Name: "财联社"},
	{ID: "jiuyangongshe", Name: "韭研公社"},
	{ID: "tonghuashun", Name: "同花顺"},
	{ID: "investing", Name: "英为财情"},
	{ID: "eastmoney", Name: "东方财富"},
}

// historyStart is the first date covered by archived data.
const historyStart = "2025-01-01"

const dateLayout = "2006-01-02"

// platformFile is the collected per-platform file shape.
type platformFile struct {
	Events []domain.Event `json:"events"`
}

// Stats summarizes one generation run.
type Stats struct {
	DayFiles    int
	TotalEvents int
	Range       domain.DateRange
}

// Generator scans the collected data directory and writes the static tree.
type Generator struct {
	dataDir string
	outDir  string
	now     func() time.Time

	// cache of loaded platform files, keyed by path
	cache map[string][]domain.Event
}

// New creates a generator reading from dataDir and writing below outDir.
func New(dataDir, outDir string) *Generator {
	return &Generator{
		dataDir: dataDir,
		outDir:  outDir,
		now:     time.Now,
		cache:   make(map[string][]domain.Event),
	}
}

// Run regenerates the whole tree. Unreadable platform files are logged and
// skipped; only dates with events get a day file.
func (g *Generator) Run() (*Stats, error) {
	g.cache = make(map[string][]domain.Event)

	if err := os.MkdirAll(filepath.Join(g.outDir, "events"), 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	dr := g.dateRange()
	start, err := time.Parse(dateLayout, dr.Start)
	if err != nil {
		return nil, fmt.Errorf("parse range start: %w", err)
	}
	end, err := time.Parse(dateLayout, dr.End)
	if err != nil {
		return nil, fmt.Errorf("parse range end: %w", err)
	}

	stats := &Stats{Range: dr}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format(dateLayout)
		events := g.eventsForDate(date)
		if len(events) == 0 {
			continue
		}
		if err := g.writeDayFile(date, events); err != nil {
			return nil, err
		}
		stats.DayFiles++
		stats.TotalEvents += len(events)
	}

	if err := g.writeMetadata(dr); err != nil {
		return nil, err
	}
	if err := g.writeLatest(); err != nil {
		return nil, err
	}

	logger.Info().Int("day_files", stats.DayFiles).Int("events", stats.TotalEvents).
		Str("start", dr.Start).Str("end", dr.End).Msg("static data generated")
	return stats, nil
}

// eventsForDate gathers all platforms' events for one date. Past dates read
// from the archived tree, current and future dates from the active one.
func (g *Generator) eventsForDate(date string) []domain.Event {
	dir := g.activeDir()
	if date < g.today() {
		dir = g.archivedDir(date)
	}

	var all []domain.Event
	for _, p := range Platforms {
		for _, e := range g.loadPlatform(dir, p.ID) {
			if e.EventDate == date {
				all = append(all, e)
			}
		}
	}
	return all
}

func (g *Generator) loadPlatform(dir, platform string) []domain.Event {
	path := filepath.Join(dir, platform+".txt")
	if cached, ok := g.cache[path]; ok {
		return cached
	}

	events := readPlatformFile(path, platform)
	g.cache[path] = events
	return events
}

func readPlatformFile(path, platform string) []domain.Event {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn().Err(err).Str("platform", platform).Msg("platform file unreadable")
		}
		return nil
	}

	var pf platformFile
	if err := json.Unmarshal(data, &pf); err != nil {
		logger.Warn().Err(err).Str("platform", platform).Msg("platform file malformed, skipped")
		return nil
	}
	return pf.Events
}

// dateRange spans from the fixed history start to the newest collected
// event date, or today when nothing is collected yet.
func (g *Generator) dateRange() domain.DateRange {
	end := ""
	for _, p := range Platforms {
		for _, e := range g.loadPlatform(g.activeDir(), p.ID) {
			if e.EventDate > end {
				end = e.EventDate
			}
		}
	}
	if end == "" {
		end = g.today()
	}
	return domain.DateRange{Start: historyStart, End: end}
}

func (g *Generator) writeDayFile(date string, events []domain.Event) error {
	newCount := 0
	platformCounts := make(map[string]int)
	for _, e := range events {
		if e.IsNew {
			newCount++
		}
		platformCounts[e.Platform]++
	}

	doc := domain.DayDocument{
		Date:        date,
		TotalEvents: len(events),
		NewEvents:   newCount,
		Platforms:   platformCounts,
		Events:      events,
	}
	return g.writeJSON(filepath.Join(g.outDir, "events", date+".json"), doc)
}

func (g *Generator) writeMetadata(dr domain.DateRange) error {
	md := domain.Metadata{
		Platforms:   Platforms,
		DateRange:   dr,
		LastUpdated: g.now().Format(time.RFC3339),
	}
	return g.writeJSON(filepath.Join(g.outDir, "metadata.json"), md)
}

func (g *Generator) writeLatest() error {
	today := g.today()
	events := g.eventsForDate(today)
	newCount := 0
	for _, e := range events {
		if e.IsNew {
			newCount++
		}
	}

	summary := domain.LatestSummary{
		Date:        today,
		TotalEvents: len(events),
		NewEvents:   newCount,
		LastUpdated: g.now().Format(time.RFC3339),
	}
	return g.writeJSON(filepath.Join(g.outDir, "latest.json"), summary)
}

func (g *Generator) writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (g *Generator) activeDir() string {
	return filepath.Join(g.dataDir, "active", "current")
}

// archivedDir maps a past date to its data/archived/<year>/<MM>月 directory.
func (g *Generator) archivedDir(date string) string {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return g.activeDir()
	}
	return filepath.Join(g.dataDir, "archived",
		fmt.Sprintf("%d", d.Year()), fmt.Sprintf("%02d月", int(d.Month())))
}

func (g *Generator) today() string {
	return g.now().Format(dateLayout)
}

package dataset

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lysyi3m/market-intel/app/feed"
	"github.com/lysyi3m/market-intel/app/market"
	"gopkg.in/yaml.v3"
)

//go:embed sample.yml
var sampleData []byte

const dateLayout = "2006-01-02"

type rawDataset struct {
	Results []rawResult  `yaml:"results"`
	Trends  []rawTrend   `yaml:"trends"`
	History []rawHistory `yaml:"history"`
}

type rawResult struct {
	ID        string   `yaml:"id"`
	Headline  string   `yaml:"headline"`
	URL       string   `yaml:"url"`
	Summary   []string `yaml:"summary"`
	Sentiment string   `yaml:"sentiment"`
	Impact    string   `yaml:"impact"`
	Source    string   `yaml:"source"`
	Date      string   `yaml:"date"`
}

type rawTrend struct {
	ID            string   `yaml:"id"`
	Title         string   `yaml:"title"`
	Description   string   `yaml:"description"`
	Strength      int      `yaml:"strength"`
	Sentiment     string   `yaml:"sentiment"`
	Impact        string   `yaml:"impact"`
	RelatedTopics []string `yaml:"related_topics"`
}

type rawHistory struct {
	ID        string   `yaml:"id"`
	Query     string   `yaml:"query"`
	Timestamp string   `yaml:"timestamp"`
	Results   []string `yaml:"results"`
}

// Loader builds the dataset from the embedded sample, an optional YAML file
// that replaces it, and an optional RSS/Atom file whose items are appended to
// the search results.
type Loader struct {
	dataFile string
	feedFile string
	parser   *feed.Parser
}

func NewLoader(dataFile, feedFile string) *Loader {
	return &Loader{
		dataFile: dataFile,
		feedFile: feedFile,
		parser:   feed.NewParser(),
	}
}

func (l *Loader) Run() (*Dataset, error) {
	data := sampleData
	source := "embedded sample"

	if l.dataFile != "" {
		fileData, err := os.ReadFile(l.dataFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read data file: %w", err)
		}
		data = fileData
		source = l.dataFile
	}

	ds, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", source, err)
	}

	if l.feedFile != "" {
		if err := l.importFeed(ds); err != nil {
			return nil, err
		}
	}

	slog.Info("Dataset loaded",
		"source", source,
		"results", len(ds.results),
		"trends", len(ds.trends),
		"history", len(ds.history))

	return ds, nil
}

func (l *Loader) importFeed(ds *Dataset) error {
	data, err := os.ReadFile(l.feedFile)
	if err != nil {
		return fmt.Errorf("failed to read feed file: %w", err)
	}

	metadata, results, err := l.parser.Run(data)
	if err != nil {
		return fmt.Errorf("error importing %s: %w", l.feedFile, err)
	}

	imported := 0
	for _, result := range results {
		if _, exists := ds.resultIndex[result.ID]; exists {
			slog.Debug("Skipping duplicate feed item", "id", result.ID, "headline", result.Headline)
			continue
		}
		ds.addResult(result)
		imported++
	}

	slog.Info("Feed imported", "file", l.feedFile, "title", metadata.Title, "items", imported)
	return nil
}

// Parse decodes and validates a YAML dataset.
func Parse(data []byte) (*Dataset, error) {
	var raw rawDataset
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ds := newDataset()

	for i, r := range raw.Results {
		result, err := convertResult(r)
		if err != nil {
			return nil, fmt.Errorf("invalid result at index %d: %w", i, err)
		}
		if _, exists := ds.resultIndex[result.ID]; exists {
			return nil, fmt.Errorf("duplicate result id %q", result.ID)
		}
		ds.addResult(result)
	}

	trendIDs := make(map[string]bool, len(raw.Trends))
	for i, t := range raw.Trends {
		trend, err := convertTrend(t)
		if err != nil {
			return nil, fmt.Errorf("invalid trend at index %d: %w", i, err)
		}
		if trendIDs[trend.ID] {
			return nil, fmt.Errorf("duplicate trend id %q", trend.ID)
		}
		trendIDs[trend.ID] = true
		ds.trends = append(ds.trends, trend)
	}

	historyIDs := make(map[string]bool, len(raw.History))
	for i, h := range raw.History {
		entry, err := ds.convertHistory(h)
		if err != nil {
			return nil, fmt.Errorf("invalid history entry at index %d: %w", i, err)
		}
		if historyIDs[entry.ID] {
			return nil, fmt.Errorf("duplicate history id %q", entry.ID)
		}
		historyIDs[entry.ID] = true
		ds.history = append(ds.history, entry)
	}

	return ds, nil
}

func convertResult(r rawResult) (market.SearchResult, error) {
	if r.ID == "" {
		return market.SearchResult{}, fmt.Errorf("id is required")
	}
	if strings.TrimSpace(r.Headline) == "" {
		return market.SearchResult{}, fmt.Errorf("headline is required for %q", r.ID)
	}

	sentiment, impact, err := classify(r.ID, r.Sentiment, r.Impact)
	if err != nil {
		return market.SearchResult{}, err
	}

	result := market.SearchResult{
		ID:        r.ID,
		Headline:  r.Headline,
		URL:       r.URL,
		Summary:   r.Summary,
		Sentiment: sentiment,
		Impact:    impact,
		Source:    r.Source,
	}

	if r.Date != "" {
		date, err := time.Parse(dateLayout, r.Date)
		if err != nil {
			return market.SearchResult{}, fmt.Errorf("invalid date for %q: %w", r.ID, err)
		}
		result.Date = date
	}

	return result, nil
}

func convertTrend(t rawTrend) (market.TrendItem, error) {
	if t.ID == "" {
		return market.TrendItem{}, fmt.Errorf("id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return market.TrendItem{}, fmt.Errorf("title is required for %q", t.ID)
	}
	if t.Strength < 1 || t.Strength > 10 {
		return market.TrendItem{}, fmt.Errorf("strength for %q must be between 1 and 10, got %d", t.ID, t.Strength)
	}

	sentiment, impact, err := classify(t.ID, t.Sentiment, t.Impact)
	if err != nil {
		return market.TrendItem{}, err
	}

	return market.TrendItem{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Strength:      t.Strength,
		Sentiment:     sentiment,
		Impact:        impact,
		RelatedTopics: t.RelatedTopics,
	}, nil
}

func (ds *Dataset) convertHistory(h rawHistory) (market.SearchQuery, error) {
	if h.ID == "" {
		return market.SearchQuery{}, fmt.Errorf("id is required")
	}
	if strings.TrimSpace(h.Query) == "" {
		return market.SearchQuery{}, fmt.Errorf("query is required for %q", h.ID)
	}

	timestamp, err := time.Parse(time.RFC3339, h.Timestamp)
	if err != nil {
		return market.SearchQuery{}, fmt.Errorf("invalid timestamp for %q: %w", h.ID, err)
	}

	entry := market.SearchQuery{
		ID:        h.ID,
		Query:     h.Query,
		Timestamp: timestamp,
		Results:   make([]market.SearchResult, 0, len(h.Results)),
	}

	for _, ref := range h.Results {
		idx, ok := ds.resultIndex[ref]
		if !ok {
			return market.SearchQuery{}, fmt.Errorf("history %q references unknown result %q", h.ID, ref)
		}
		entry.Results = append(entry.Results, ds.results[idx])
	}

	return entry, nil
}

// classify validates the enum fields of a record. A missing impact falls back
// to medium; a missing sentiment is an error.
func classify(id, rawSentiment, rawImpact string) (market.Sentiment, market.Impact, error) {
	sentiment, err := market.ParseSentiment(rawSentiment)
	if err != nil {
		return "", "", fmt.Errorf("record %q: %w", id, err)
	}

	if rawImpact == "" {
		slog.Warn("Record has no impact, using medium", "id", id)
		return sentiment, market.ImpactMedium, nil
	}

	impact, err := market.ParseImpact(rawImpact)
	if err != nil {
		return "", "", fmt.Errorf("record %q: %w", id, err)
	}

	return sentiment, impact, nil
}

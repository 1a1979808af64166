package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lysyi3m/market-intel/app/market"
)

func TestLoader_Run_EmbeddedSample(t *testing.T) {
	ds, err := NewLoader("", "").Run()
	if err != nil {
		t.Fatal(err)
	}

	if len(ds.Results()) != 5 {
		t.Errorf("Expected 5 results, got %d", len(ds.Results()))
	}
	if len(ds.Trends()) != 6 {
		t.Errorf("Expected 6 trends, got %d", len(ds.Trends()))
	}
	if len(ds.History()) != 3 {
		t.Errorf("Expected 3 history entries, got %d", len(ds.History()))
	}

	filterer := market.NewFilterer()
	high := filterer.Results(ds.Results(), market.Criteria{Impact: market.ImpactHigh})
	if len(high) != 3 || high[0].ID != "sr1" || high[1].ID != "sr2" || high[2].ID != "sr5" {
		t.Errorf("Expected sr1, sr2, sr5 for high impact, got %v", high)
	}

	positive := filterer.History(ds.History(), market.Criteria{Sentiments: []market.Sentiment{market.SentimentPositive}})
	if len(positive) != 1 || positive[0].ID != "sq1" {
		t.Errorf("Expected only sq1 to have a positive result, got %v", positive)
	}

	entry, ok := ds.HistoryEntry("sq3")
	if !ok {
		t.Fatal("Expected history entry sq3")
	}
	if len(entry.Results) != 2 || entry.Results[0].ID != "sr5" || entry.Results[1].ID != "sr3" {
		t.Errorf("Expected sq3 to reference sr5 then sr3, got %v", entry.Results)
	}
	if !entry.Timestamp.Equal(time.Date(2025, 5, 10, 14, 20, 0, 0, time.UTC)) {
		t.Errorf("Unexpected timestamp %v", entry.Timestamp)
	}
}

func TestDataset_AccessorsReturnCopies(t *testing.T) {
	ds, err := NewLoader("", "").Run()
	if err != nil {
		t.Fatal(err)
	}

	results := ds.Results()
	results[0].Headline = "changed"

	if ds.Results()[0].Headline == "changed" {
		t.Error("Expected dataset to be unaffected by changes to returned slices")
	}
}

func TestLoader_Run_DataFile(t *testing.T) {
	tempDir := t.TempDir()

	content := `
results:
  - id: a
    headline: Only result
    sentiment: negative
    date: "2024-01-02"
trends:
  - id: t
    title: Only trend
    strength: 3
    sentiment: neutral
    impact: low
history:
  - id: h
    query: something
    timestamp: "2024-01-03T10:00:00Z"
    results: [a]
`
	path := filepath.Join(tempDir, "data.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	ds, err := NewLoader(path, "").Run()
	if err != nil {
		t.Fatal(err)
	}

	results := ds.Results()
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].Impact != market.ImpactMedium {
		t.Errorf("Expected missing impact to default to medium, got %q", results[0].Impact)
	}
	if !results[0].Date.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Unexpected date %v", results[0].Date)
	}
	if len(ds.History()[0].Results) != 1 {
		t.Errorf("Expected history reference to resolve")
	}
}

func TestLoader_Run_FeedFile(t *testing.T) {
	tempDir := t.TempDir()

	rss := `<?xml version="1.0"?>
<rss version="2.0"><channel><title>Imported</title>
<item><title>Oil Prices Jump</title><link>https://example.com/oil</link><guid>oil</guid>
<category>sentiment:negative</category><category>impact:high</category></item>
</channel></rss>`
	path := filepath.Join(tempDir, "feed.xml")
	if err := os.WriteFile(path, []byte(rss), 0644); err != nil {
		t.Fatal(err)
	}

	ds, err := NewLoader("", path).Run()
	if err != nil {
		t.Fatal(err)
	}

	results := ds.Results()
	if len(results) != 6 {
		t.Fatalf("Expected 5 sample results plus 1 imported, got %d", len(results))
	}

	imported := results[5]
	if imported.Headline != "Oil Prices Jump" || imported.Source != "Imported" {
		t.Errorf("Unexpected imported result %+v", imported)
	}
	if imported.Sentiment != market.SentimentNegative || imported.Impact != market.ImpactHigh {
		t.Errorf("Expected negative/high, got %s/%s", imported.Sentiment, imported.Impact)
	}
}

func TestLoader_Run_MissingFiles(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yml")

	if _, err := NewLoader(missing, "").Run(); err == nil {
		t.Error("Expected error for missing data file")
	}
	if _, err := NewLoader("", missing).Run(); err == nil {
		t.Error("Expected error for missing feed file")
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":          "results: [",
		"unknown sentiment": "results:\n  - {id: a, headline: A, sentiment: happy}",
		"missing sentiment": "results:\n  - {id: a, headline: A, impact: low}",
		"unknown impact":    "results:\n  - {id: a, headline: A, sentiment: neutral, impact: huge}",
		"duplicate result":  "results:\n  - {id: a, headline: A, sentiment: neutral}\n  - {id: a, headline: B, sentiment: neutral}",
		"missing headline":  "results:\n  - {id: a, sentiment: neutral}",
		"bad date":          "results:\n  - {id: a, headline: A, sentiment: neutral, date: 12/05/2025}",
		"strength too high": "trends:\n  - {id: t, title: T, strength: 11, sentiment: neutral, impact: low}",
		"strength missing":  "trends:\n  - {id: t, title: T, sentiment: neutral, impact: low}",
		"duplicate trend":   "trends:\n  - {id: t, title: T, strength: 2, sentiment: neutral}\n  - {id: t, title: U, strength: 2, sentiment: neutral}",
		"unknown reference": "history:\n  - {id: h, query: q, timestamp: \"2025-05-14T15:30:00Z\", results: [zz]}",
		"bad timestamp":     "history:\n  - {id: h, query: q, timestamp: yesterday}",
		"blank query":       "history:\n  - {id: h, query: \"  \", timestamp: \"2025-05-14T15:30:00Z\"}",
	}

	for name, content := range tests {
		if _, err := Parse([]byte(content)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestParse_Empty(t *testing.T) {
	ds, err := Parse([]byte(""))
	if err != nil {
		t.Fatal(err)
	}

	if len(ds.Results()) != 0 || len(ds.Trends()) != 0 || len(ds.History()) != 0 {
		t.Error("Expected empty dataset")
	}
	if _, ok := ds.HistoryEntry("sq1"); ok {
		t.Error("Expected no history entry")
	}
}

func TestParse_ErrorMentionsIndex(t *testing.T) {
	_, err := Parse([]byte("trends:\n  - {id: ok, title: T, strength: 2, sentiment: neutral}\n  - {id: bad, title: U, strength: 0, sentiment: neutral}"))
	if err == nil || !strings.Contains(err.Error(), "index 1") {
		t.Errorf("Expected error mentioning index 1, got %v", err)
	}
}

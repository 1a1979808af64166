package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/lysyi3m/market-intel/app/market"
)

func sampleResults() []market.SearchResult {
	return []market.SearchResult{
		{
			ID:        "sr1",
			Headline:  "Tesla Announces Revolutionary New Battery Technology",
			URL:       "https://example.com/tesla-battery",
			Summary:   []string{"2x energy density", "EV costs down 30% & falling"},
			Sentiment: market.SentimentPositive,
			Impact:    market.ImpactHigh,
			Source:    "TechCrunch",
			Date:      time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        "sr4",
			Headline:  "Federal Reserve Maintains Current Interest Rates",
			URL:       "https://example.com/fed-rates",
			Sentiment: market.SentimentNeutral,
			Impact:    market.ImpactMedium,
			Source:    "Wall Street Journal",
			Date:      time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestGenerator_Run(t *testing.T) {
	generator := NewGenerator()

	channel := Channel{
		Title:    "MarketIntel results",
		Link:     "https://intel.example.com",
		SelfLink: "https://intel.example.com/feeds/results.xml?impact=high",
		Version:  "1.2.3",
	}

	rss, err := generator.Run(channel, sampleResults())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	expected := []string{
		`<rss version="2.0"`,
		"<title>MarketIntel results</title>",
		`<atom:link href="https://intel.example.com/feeds/results.xml?impact=high"`,
		"<generator>MarketIntel/1.2.3</generator>",
		`<guid isPermaLink="false">sr1</guid>`,
		"<category>sentiment:positive</category>",
		"<category>impact:high</category>",
		"<category>priority:urgent</category>",
		"<category>TechCrunch</category>",
		"&amp; falling",
		"<description>No summary available</description>",
		"<pubDate>Mon, 12 May 2025 00:00:00 +0000</pubDate>",
	}
	for _, want := range expected {
		if !strings.Contains(rss, want) {
			t.Errorf("Expected RSS to contain %q", want)
		}
	}

	if strings.Count(rss, "<item>") != 2 {
		t.Errorf("Expected 2 items, got %d", strings.Count(rss, "<item>"))
	}
}

func TestGenerator_Run_Empty(t *testing.T) {
	generator := NewGenerator()

	rss, err := generator.Run(Channel{Title: "Empty"}, nil)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if strings.Contains(rss, "<item>") {
		t.Error("Expected no items")
	}
	if !strings.Contains(rss, "<description>Filtered market research results</description>") {
		t.Error("Expected default channel description")
	}
}

func TestGenerator_RoundTrip(t *testing.T) {
	rss, err := NewGenerator().Run(Channel{Title: "Export"}, sampleResults())
	if err != nil {
		t.Fatal(err)
	}

	_, results, err := NewParser().Run([]byte(rss))
	if err != nil {
		t.Fatalf("Expected exported feed to parse, got: %v", err)
	}

	exported := sampleResults()
	if len(results) != len(exported) {
		t.Fatalf("Expected %d results, got %d", len(exported), len(results))
	}

	for i, result := range results {
		if result.Headline != exported[i].Headline {
			t.Errorf("Result %d: expected headline %q, got %q", i, exported[i].Headline, result.Headline)
		}
		if result.Sentiment != exported[i].Sentiment || result.Impact != exported[i].Impact {
			t.Errorf("Result %d: expected %s/%s, got %s/%s", i, exported[i].Sentiment, exported[i].Impact, result.Sentiment, result.Impact)
		}
		if !result.Date.Equal(exported[i].Date) {
			t.Errorf("Result %d: expected date %v, got %v", i, exported[i].Date, result.Date)
		}
	}

	if got := results[0].Summary; len(got) != 2 || got[1] != "EV costs down 30% & falling" {
		t.Errorf("Expected summary lines to survive export, got %v", got)
	}
}

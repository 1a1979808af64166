package feed

import (
	"bytes"
	"cmp"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lysyi3m/market-intel/app/market"
	"github.com/mmcdole/gofeed"
)

// Parser turns an RSS/Atom document into search results. Sentiment and impact
// are read from "sentiment:<value>" and "impact:<value>" categories and default
// to neutral and medium.
type Parser struct {
	gofeedParser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
	}
}

func (p *Parser) Run(data []byte) (*Metadata, []market.SearchResult, error) {
	feed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	metadata := &Metadata{
		Title:       feed.Title,
		Link:        feed.Link,
		Description: feed.Description,
		Language:    feed.Language,
	}

	if feed.PublishedParsed != nil {
		metadata.PublishedAt = feed.PublishedParsed
	}

	source := cmp.Or(feed.Title, feed.Link)
	results := make([]market.SearchResult, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil || strings.TrimSpace(item.Title) == "" {
			continue
		}
		results = append(results, p.normalizeItem(item, source))
	}

	return metadata, results, nil
}

func (p *Parser) normalizeItem(item *gofeed.Item, source string) market.SearchResult {
	result := market.SearchResult{
		ID:        p.generateID(item),
		Headline:  strings.TrimSpace(item.Title),
		URL:       item.Link,
		Summary:   summaryLines(cmp.Or(item.Description, item.Content)),
		Sentiment: market.SentimentNeutral,
		Impact:    market.ImpactMedium,
		Source:    source,
	}

	if item.PublishedParsed != nil {
		result.Date = item.PublishedParsed.UTC().Truncate(24 * time.Hour)
	}

	for _, category := range item.Categories {
		category = strings.ToLower(strings.TrimSpace(category))
		switch {
		case strings.HasPrefix(category, sentimentCategoryPrefix):
			if s, err := market.ParseSentiment(strings.TrimPrefix(category, sentimentCategoryPrefix)); err == nil {
				result.Sentiment = s
			} else {
				slog.Debug("Ignoring feed category", "item", result.Headline, "category", category, "error", err)
			}
		case strings.HasPrefix(category, impactCategoryPrefix):
			if i, err := market.ParseImpact(strings.TrimPrefix(category, impactCategoryPrefix)); err == nil {
				result.Impact = i
			} else {
				slog.Debug("Ignoring feed category", "item", result.Headline, "category", category, "error", err)
			}
		}
	}

	return result
}

// generateID keeps ids stable across imports of the same document.
func (p *Parser) generateID(item *gofeed.Item) string {
	key := cmp.Or(item.GUID, item.Link, item.Title)
	hash := sha256.Sum256([]byte(key))
	return "feed-" + hex.EncodeToString(hash[:])[:12]
}

// summaryLines splits a description into one line per non-empty text line.
func summaryLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

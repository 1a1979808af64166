package view

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/lysyi3m/market-intel/app/market"
)

const (
	MessageNoResults = "No results match your filter criteria"
	MessageSearching = "Searching..."
	MessageWelcome   = "Enter a search query about market trends, competitors, or industry news to get AI-analyzed results."
	MessageNoTrends  = "No trends match your filter criteria"
	MessageNoHistory = "No search history matches your filter criteria"

	visibleTopics = 2
)

type ResultCard struct {
	market.SearchResult
	SentimentLabel string          `json:"sentiment_label"`
	ImpactLabel    string          `json:"impact_label"`
	Priority       market.Priority `json:"priority"`
	PriorityLabel  string          `json:"priority_label"`
	DateLabel      string          `json:"date_label,omitempty"`
}

type TrendCard struct {
	market.TrendItem
	Band           market.StrengthBand `json:"band"`
	SentimentLabel string              `json:"sentiment_label"`
	ImpactLabel    string              `json:"impact_label"`
	Priority       market.Priority     `json:"priority"`
	PriorityLabel  string              `json:"priority_label"`
	TopicsPreview  []string            `json:"topics_preview"`
	MoreTopics     int                 `json:"more_topics"`
}

type HistoryCard struct {
	ID             string       `json:"id"`
	Query          string       `json:"query"`
	Timestamp      time.Time    `json:"timestamp"`
	TimestampLabel string       `json:"timestamp_label"`
	Ago            string       `json:"ago"`
	ResultCount    int          `json:"result_count"`
	Open           bool         `json:"open"`
	Results        []ResultCard `json:"results,omitempty"`
}

func RenderResults(results []market.SearchResult) []ResultCard {
	cards := make([]ResultCard, 0, len(results))
	for _, result := range results {
		priority := market.DerivePriority(result.Impact)
		card := ResultCard{
			SearchResult:   result,
			SentimentLabel: market.SentimentLabel(result.Sentiment),
			ImpactLabel:    market.ImpactLabel(result.Impact),
			Priority:       priority,
			PriorityLabel:  market.PriorityLabel(priority),
		}
		if !result.Date.IsZero() {
			card.DateLabel = result.Date.Format("Jan 2, 2006")
		}
		cards = append(cards, card)
	}
	return cards
}

func RenderTrends(trends []market.TrendItem) []TrendCard {
	cards := make([]TrendCard, 0, len(trends))
	for _, trend := range trends {
		priority := market.DerivePriority(trend.Impact)
		preview := trend.RelatedTopics
		if len(preview) > visibleTopics {
			preview = preview[:visibleTopics]
		}
		cards = append(cards, TrendCard{
			TrendItem:      trend,
			Band:           market.BandForStrength(trend.Strength),
			SentimentLabel: market.SentimentLabel(trend.Sentiment),
			ImpactLabel:    market.ImpactLabel(trend.Impact),
			Priority:       priority,
			PriorityLabel:  market.PriorityLabel(priority),
			TopicsPreview:  append([]string{}, preview...),
			MoreTopics:     len(trend.RelatedTopics) - len(preview),
		})
	}
	return cards
}

// RenderHistory renders entries relative to now. Nested results are only
// included for entries marked open.
func RenderHistory(entries []market.SearchQuery, open map[string]bool, now time.Time) []HistoryCard {
	cards := make([]HistoryCard, 0, len(entries))
	for _, entry := range entries {
		card := HistoryCard{
			ID:             entry.ID,
			Query:          entry.Query,
			Timestamp:      entry.Timestamp,
			TimestampLabel: entry.Timestamp.In(time.Local).Format("Jan 2, 2006 3:04 PM"),
			Ago:            humanize.RelTime(entry.Timestamp, now, "ago", "from now"),
			ResultCount:    len(entry.Results),
			Open:           open[entry.ID],
		}
		if card.Open {
			card.Results = RenderResults(entry.Results)
		}
		cards = append(cards, card)
	}
	return cards
}

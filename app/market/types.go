package market

import (
	"fmt"
	"time"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type TimeRange string

const (
	TimeRangeDay   TimeRange = "day"
	TimeRangeWeek  TimeRange = "week"
	TimeRangeMonth TimeRange = "month"
	TimeRangeYear  TimeRange = "year"
	TimeRangeAll   TimeRange = "all"
)

// Option lists in display order.
var (
	Sentiments = []Sentiment{SentimentPositive, SentimentNeutral, SentimentNegative}
	Impacts    = []Impact{ImpactHigh, ImpactMedium, ImpactLow}
	Priorities = []Priority{PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow}
	TimeRanges = []TimeRange{TimeRangeDay, TimeRangeWeek, TimeRangeMonth, TimeRangeYear, TimeRangeAll}
)

func ParseSentiment(s string) (Sentiment, error) {
	for _, v := range Sentiments {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown sentiment %q", s)
}

func ParseImpact(s string) (Impact, error) {
	for _, v := range Impacts {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown impact %q", s)
}

func ParsePriority(s string) (Priority, error) {
	for _, v := range Priorities {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

func ParseTimeRange(s string) (TimeRange, error) {
	for _, v := range TimeRanges {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown time range %q", s)
}

// Classified is implemented by every record the filter engine can work on.
type Classified interface {
	GetSentiment() Sentiment
	GetImpact() Impact
}

type SearchResult struct {
	ID        string    `json:"id"`
	Headline  string    `json:"headline"`
	URL       string    `json:"url"`
	Summary   []string  `json:"summary"`
	Sentiment Sentiment `json:"sentiment"`
	Impact    Impact    `json:"impact"`
	Source    string    `json:"source"`
	Date      time.Time `json:"date"`
}

func (r SearchResult) GetSentiment() Sentiment { return r.Sentiment }
func (r SearchResult) GetImpact() Impact       { return r.Impact }

type TrendItem struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Strength      int       `json:"strength"` // 1-10
	Sentiment     Sentiment `json:"sentiment"`
	Impact        Impact    `json:"impact"`
	RelatedTopics []string  `json:"related_topics"`
}

func (t TrendItem) GetSentiment() Sentiment { return t.Sentiment }
func (t TrendItem) GetImpact() Impact       { return t.Impact }

// SearchQuery is a history entry: a past query and the results it produced.
type SearchQuery struct {
	ID        string         `json:"id"`
	Query     string         `json:"query"`
	Timestamp time.Time      `json:"timestamp"`
	Results   []SearchResult `json:"results"`
}

package market

// Axis is one independent filter dimension. Match must return true when the
// axis is inactive in the given criteria.
type Axis struct {
	Name  string
	Match func(record Classified, criteria Criteria) bool
}

var (
	SentimentAxis = Axis{
		Name: "sentiment",
		Match: func(record Classified, criteria Criteria) bool {
			return len(criteria.Sentiments) == 0 || criteria.HasSentiment(record.GetSentiment())
		},
	}

	ImpactAxis = Axis{
		Name: "impact",
		Match: func(record Classified, criteria Criteria) bool {
			return criteria.Impact == "" || record.GetImpact() == criteria.Impact
		},
	}

	PriorityAxis = Axis{
		Name: "priority",
		Match: func(record Classified, criteria Criteria) bool {
			return criteria.Priority == "" || DerivePriority(record.GetImpact()) == criteria.Priority
		},
	}
)

type Filterer struct {
	axes []Axis
}

// NewFilterer builds a filterer over the sentiment, impact and priority axes
// plus any extra axes. The time range has no axis of its own yet.
func NewFilterer(extra ...Axis) *Filterer {
	axes := []Axis{SentimentAxis, ImpactAxis, PriorityAxis}
	return &Filterer{axes: append(axes, extra...)}
}

func (f *Filterer) Matches(record Classified, criteria Criteria) bool {
	for _, axis := range f.axes {
		if !axis.Match(record, criteria) {
			return false
		}
	}
	return true
}

// Apply returns the records matching every axis, in their original order.
// The input slice is never modified.
func Apply[T Classified](f *Filterer, records []T, criteria Criteria) []T {
	filtered := make([]T, 0, len(records))
	for _, record := range records {
		if f.Matches(record, criteria) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

func (f *Filterer) Results(results []SearchResult, criteria Criteria) []SearchResult {
	return Apply(f, results, criteria)
}

func (f *Filterer) Trends(trends []TrendItem, criteria Criteria) []TrendItem {
	return Apply(f, trends, criteria)
}

// History keeps the entries where at least one nested result matches both the
// sentiment and impact selection. Priority does not apply to history.
// With no sentiment or impact selected every entry is kept, including ones
// without results.
func (f *Filterer) History(entries []SearchQuery, criteria Criteria) []SearchQuery {
	nested := Criteria{Sentiments: criteria.Sentiments, Impact: criteria.Impact}

	filtered := make([]SearchQuery, 0, len(entries))
	for _, entry := range entries {
		if nested.MatchesAll() || f.anyResultMatches(entry.Results, nested) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

func (f *Filterer) anyResultMatches(results []SearchResult, criteria Criteria) bool {
	for _, result := range results {
		if f.Matches(result, criteria) {
			return true
		}
	}
	return false
}

package dataset

import (
	"slices"

	"github.com/lysyi3m/market-intel/app/market"
)

// Dataset holds the fixed records served for the lifetime of the process.
// Accessors return copies so callers cannot reorder or replace records.
type Dataset struct {
	results     []market.SearchResult
	trends      []market.TrendItem
	history     []market.SearchQuery
	resultIndex map[string]int
}

func newDataset() *Dataset {
	return &Dataset{
		resultIndex: make(map[string]int),
	}
}

// New builds a dataset from already validated records.
func New(results []market.SearchResult, trends []market.TrendItem, history []market.SearchQuery) *Dataset {
	ds := newDataset()
	for _, result := range results {
		ds.addResult(result)
	}
	ds.trends = slices.Clone(trends)
	ds.history = slices.Clone(history)
	return ds
}

func (ds *Dataset) addResult(result market.SearchResult) {
	ds.resultIndex[result.ID] = len(ds.results)
	ds.results = append(ds.results, result)
}

func (ds *Dataset) Results() []market.SearchResult {
	return slices.Clone(ds.results)
}

func (ds *Dataset) Trends() []market.TrendItem {
	return slices.Clone(ds.trends)
}

func (ds *Dataset) History() []market.SearchQuery {
	return slices.Clone(ds.history)
}

func (ds *Dataset) HistoryEntry(id string) (market.SearchQuery, bool) {
	for _, entry := range ds.history {
		if entry.ID == id {
			return entry, true
		}
	}
	return market.SearchQuery{}, false
}

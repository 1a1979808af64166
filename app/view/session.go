package view

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/lysyi3m/market-intel/app/market"
)

const (
	sidebarExpandedWidth  = 240
	sidebarCollapsedWidth = 60
)

// Source supplies the fixed records the views render.
type Source interface {
	Results() []market.SearchResult
	Trends() []market.TrendItem
	History() []market.SearchQuery
	HistoryEntry(id string) (market.SearchQuery, bool)
}

type searchView struct {
	query     string
	criteria  market.Criteria
	results   []market.SearchResult // nil until a search completes
	searching bool
	timer     *time.Timer
}

type historyView struct {
	criteria market.Criteria
	open     map[string]bool
}

// Session is one mounted dashboard. All of its view state is owned by the
// session and guarded by its mutex.
type Session struct {
	ID string

	mu          sync.Mutex
	source      Source
	filterer    *market.Filterer
	user        User
	searchDelay time.Duration

	activeTab        Tab
	sidebarExpanded  bool
	menuOpen         bool
	search           searchView
	searchGeneration uint64
	trends           market.Criteria
	history          historyView
	lastActive       time.Time
	closed           bool
}

func newSession(id string, source Source, filterer *market.Filterer, user User, searchDelay time.Duration, now time.Time) *Session {
	s := &Session{
		ID:              id,
		source:          source,
		filterer:        filterer,
		user:            user,
		searchDelay:     searchDelay,
		activeTab:       TabSearch,
		sidebarExpanded: true,
		lastActive:      now,
	}
	s.mount(TabSearch)
	s.mount(TabTrends)
	s.mount(TabHistory)
	return s
}

// mount resets a view to its defaults. Caller holds s.mu.
func (s *Session) mount(tab Tab) {
	switch tab {
	case TabSearch:
		s.cancelSearch()
		s.search = searchView{criteria: market.Criteria{TimeRange: market.TimeRangeWeek}}
	case TabTrends:
		s.trends = market.Criteria{}
	case TabHistory:
		s.history = historyView{open: make(map[string]bool)}
	}
}

// cancelSearch drops any pending simulated search. Caller holds s.mu.
func (s *Session) cancelSearch() {
	s.searchGeneration++
	if s.search.timer != nil {
		s.search.timer.Stop()
		s.search.timer = nil
	}
	s.search.searching = false
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = now
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Close cancels pending work. A closed session ignores late search completions.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelSearch()
	s.menuOpen = false
	s.closed = true
}

// SelectTab switches the active view. Entering a different view mounts it
// fresh, so its filters start from defaults.
func (s *Session) SelectTab(tab Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectTab(tab)
}

func (s *Session) selectTab(tab Tab) {
	if tab == s.activeTab {
		return
	}
	if s.activeTab == TabSearch {
		s.cancelSearch()
	}
	s.activeTab = tab
	s.mount(tab)
}

func (s *Session) ToggleSidebar() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebarExpanded = !s.sidebarExpanded
	return s.sidebarExpanded
}

func (s *Session) ToggleMenu() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menuOpen = !s.menuOpen
	return s.menuOpen
}

// Search switches to the search view and starts a simulated search. Results
// appear after the configured delay. A newer search cancels an older one that
// has not completed yet. Blank queries are ignored and report false.
func (s *Session) Search(query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectTab(TabSearch)
	s.cancelSearch()
	s.search.query = query
	s.search.searching = true
	generation := s.searchGeneration

	if s.searchDelay <= 0 {
		s.completeSearch(generation)
		return true
	}

	s.search.timer = time.AfterFunc(s.searchDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.completeSearch(generation)
	})

	return true
}

// completeSearch publishes results for the given search. Caller holds s.mu.
func (s *Session) completeSearch(generation uint64) {
	if s.closed || generation != s.searchGeneration {
		slog.Debug("Discarding stale search", "session", s.ID, "generation", generation)
		return
	}
	s.search.results = s.source.Results()
	s.search.searching = false
	s.search.timer = nil
	slog.Debug("Search completed", "session", s.ID, "query", s.search.query, "results", len(s.search.results))
}

// Rerun repeats a history entry's query in the search view.
func (s *Session) Rerun(entryID string) error {
	entry, ok := s.source.HistoryEntry(entryID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownEntry, entryID)
	}
	s.Search(entry.Query)
	return nil
}

// ToggleHistoryEntry expands or collapses one history entry.
func (s *Session) ToggleHistoryEntry(entryID string) (bool, error) {
	if _, ok := s.source.HistoryEntry(entryID); !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownEntry, entryID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.history.open[entryID] = !s.history.open[entryID]
	return s.history.open[entryID], nil
}

// ToggleFilter applies a filter action on the active view. Sentiment, impact
// and priority toggle; the time range is set.
func (s *Session) ToggleFilter(axis Axis, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !supportsAxis(s.activeTab, axis) {
		return fmt.Errorf("%w: %s on %s", ErrUnsupportedAxis, axis, s.activeTab)
	}

	criteria := s.criteria()
	var err error

	switch axis {
	case AxisSentiment:
		var sentiment market.Sentiment
		if sentiment, err = market.ParseSentiment(value); err == nil {
			if s.activeTab == TabTrends {
				criteria = selectSingleSentiment(criteria, sentiment)
			} else {
				criteria = criteria.ToggleSentiment(sentiment)
			}
		}
	case AxisImpact:
		var impact market.Impact
		if impact, err = market.ParseImpact(value); err == nil {
			criteria = criteria.ToggleImpact(impact)
		}
	case AxisPriority:
		var priority market.Priority
		if priority, err = market.ParsePriority(value); err == nil {
			criteria = criteria.TogglePriority(priority)
		}
	case AxisTimeRange:
		var timeRange market.TimeRange
		if timeRange, err = market.ParseTimeRange(value); err == nil {
			criteria.TimeRange = timeRange
		}
	}

	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}

	s.setCriteria(criteria)
	return nil
}

// ClearFilter resets one axis of the active view to its default.
func (s *Session) ClearFilter(axis Axis) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !supportsAxis(s.activeTab, axis) {
		return fmt.Errorf("%w: %s on %s", ErrUnsupportedAxis, axis, s.activeTab)
	}

	criteria := s.criteria()
	switch axis {
	case AxisSentiment:
		criteria.Sentiments = nil
	case AxisImpact:
		criteria.Impact = ""
	case AxisPriority:
		criteria.Priority = ""
	case AxisTimeRange:
		criteria.TimeRange = market.TimeRangeWeek
	}

	s.setCriteria(criteria)
	return nil
}

// The trends view selects a single sentiment at a time.
func selectSingleSentiment(criteria market.Criteria, sentiment market.Sentiment) market.Criteria {
	if len(criteria.Sentiments) == 1 && criteria.Sentiments[0] == sentiment {
		criteria.Sentiments = nil
	} else {
		criteria.Sentiments = []market.Sentiment{sentiment}
	}
	return criteria
}

func (s *Session) criteria() market.Criteria {
	switch s.activeTab {
	case TabTrends:
		return s.trends
	case TabHistory:
		return s.history.criteria
	default:
		return s.search.criteria
	}
}

func (s *Session) setCriteria(criteria market.Criteria) {
	switch s.activeTab {
	case TabTrends:
		s.trends = criteria
	case TabHistory:
		s.history.criteria = criteria
	default:
		s.search.criteria = criteria
	}
}

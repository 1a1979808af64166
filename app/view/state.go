package view

import (
	"time"

	"github.com/lysyi3m/market-intel/app/market"
)

type State struct {
	SessionID string        `json:"session_id"`
	ActiveTab Tab           `json:"active_tab"`
	Theme     Theme         `json:"theme"`
	Sidebar   SidebarState  `json:"sidebar"`
	Menu      MenuState     `json:"menu"`
	Axes      []Axis        `json:"axes"`
	Search    *SearchPanel  `json:"search,omitempty"`
	Trends    *TrendsPanel  `json:"trends,omitempty"`
	History   *HistoryPanel `json:"history,omitempty"`
}

type SidebarState struct {
	Expanded bool `json:"expanded"`
	Width    int  `json:"width"`
}

type MenuState struct {
	Open     bool   `json:"open"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Initials string `json:"initials"`
}

type SearchPanel struct {
	Query     string          `json:"query"`
	Searching bool            `json:"searching"`
	Criteria  market.Criteria `json:"criteria"`
	Total     int             `json:"total"`
	Results   []ResultCard    `json:"results"`
	Message   string          `json:"message,omitempty"`
}

type TrendsPanel struct {
	Criteria market.Criteria `json:"criteria"`
	Trends   []TrendCard     `json:"trends"`
	Message  string          `json:"message,omitempty"`
}

type HistoryPanel struct {
	Criteria market.Criteria `json:"criteria"`
	Entries  []HistoryCard   `json:"entries"`
	Message  string          `json:"message,omitempty"`
}

// Snapshot renders the session with only the active view populated. Filters
// are applied on every call.
func (s *Session) Snapshot(theme Theme, now time.Time) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := State{
		SessionID: s.ID,
		ActiveTab: s.activeTab,
		Theme:     theme,
		Sidebar: SidebarState{
			Expanded: s.sidebarExpanded,
			Width:    sidebarCollapsedWidth,
		},
		Menu: MenuState{
			Open:     s.menuOpen,
			Name:     s.user.Name,
			Title:    s.user.Title,
			Initials: s.user.Initials(),
		},
		Axes: AxesFor(s.activeTab),
	}
	if s.sidebarExpanded {
		state.Sidebar.Width = sidebarExpandedWidth
	}

	switch s.activeTab {
	case TabSearch:
		state.Search = s.renderSearch()
	case TabTrends:
		state.Trends = RenderTrendsPanel(s.filterer, s.source.Trends(), s.trends)
	case TabHistory:
		state.History = RenderHistoryPanel(s.filterer, s.source.History(), s.history.criteria, s.history.open, now)
	}

	return state
}

func (s *Session) renderSearch() *SearchPanel {
	filtered := s.filterer.Results(s.search.results, s.search.criteria)
	panel := &SearchPanel{
		Query:     s.search.query,
		Searching: s.search.searching,
		Criteria:  normalizeCriteria(s.search.criteria),
		Total:     len(s.search.results),
		Results:   RenderResults(filtered),
	}

	switch {
	case len(filtered) > 0:
	case len(s.search.results) > 0:
		panel.Message = MessageNoResults
	case s.search.searching:
		panel.Message = MessageSearching
	default:
		panel.Message = MessageWelcome
	}

	return panel
}

func RenderResultsPanel(filterer *market.Filterer, results []market.SearchResult, criteria market.Criteria) *SearchPanel {
	filtered := filterer.Results(results, criteria)
	panel := &SearchPanel{
		Criteria: normalizeCriteria(criteria),
		Total:    len(results),
		Results:  RenderResults(filtered),
	}
	if len(filtered) == 0 {
		panel.Message = MessageNoResults
	}
	return panel
}

func RenderTrendsPanel(filterer *market.Filterer, trends []market.TrendItem, criteria market.Criteria) *TrendsPanel {
	filtered := filterer.Trends(trends, criteria)
	panel := &TrendsPanel{
		Criteria: normalizeCriteria(criteria),
		Trends:   RenderTrends(filtered),
	}
	if len(filtered) == 0 {
		panel.Message = MessageNoTrends
	}
	return panel
}

func RenderHistoryPanel(filterer *market.Filterer, entries []market.SearchQuery, criteria market.Criteria, open map[string]bool, now time.Time) *HistoryPanel {
	filtered := filterer.History(entries, criteria)
	panel := &HistoryPanel{
		Criteria: normalizeCriteria(criteria),
		Entries:  RenderHistory(filtered, open, now),
	}
	if len(filtered) == 0 {
		panel.Message = MessageNoHistory
	}
	return panel
}

// normalizeCriteria makes an empty sentiment selection encode as [].
func normalizeCriteria(criteria market.Criteria) market.Criteria {
	if criteria.Sentiments == nil {
		criteria.Sentiments = []market.Sentiment{}
	}
	return criteria
}

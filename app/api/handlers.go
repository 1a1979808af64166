package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lysyi3m/market-intel/app/feed"
	"github.com/lysyi3m/market-intel/app/market"
	"github.com/lysyi3m/market-intel/app/view"
)

func NewHandler(source view.Source, filterer *market.Filterer, store *view.Store,
	theme *view.ThemeSetting, baseURL, version string) *Handler {
	return &Handler{
		source:    source,
		filterer:  filterer,
		store:     store,
		theme:     theme,
		generator: feed.NewGenerator(),
		baseURL:   strings.TrimRight(baseURL, "/"),
		version:   version,
	}
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"version":   h.version,
		"sessions":  h.store.Count(),
		"theme":     h.theme.Get(),
		"dataset": gin.H{
			"results": len(h.source.Results()),
			"trends":  len(h.source.Trends()),
			"history": len(h.source.History()),
		},
	})
}

func (h *Handler) GetOptions(c *gin.Context) {
	sentiments := make([]option, 0, len(market.Sentiments))
	for _, s := range market.Sentiments {
		sentiments = append(sentiments, option{Value: string(s), Label: market.SentimentLabel(s)})
	}

	impacts := make([]option, 0, len(market.Impacts))
	for _, impact := range market.Impacts {
		impacts = append(impacts, option{Value: string(impact), Label: market.ImpactLabel(impact)})
	}

	priorities := make([]option, 0, len(market.Priorities))
	for _, p := range market.Priorities {
		priorities = append(priorities, option{Value: string(p), Label: market.PriorityLabel(p)})
	}

	timeRanges := make([]option, 0, len(market.TimeRanges))
	for _, tr := range market.TimeRanges {
		timeRanges = append(timeRanges, option{Value: string(tr), Label: market.Title(string(tr))})
	}

	tabs := make([]gin.H, 0, len(view.Tabs))
	for _, tab := range view.Tabs {
		tabs = append(tabs, gin.H{
			"value": tab,
			"label": market.Title(string(tab)),
			"axes":  view.AxesFor(tab),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"tabs":        tabs,
		"sentiments":  sentiments,
		"impacts":     impacts,
		"priorities":  priorities,
		"time_ranges": timeRanges,
	})
}

func (h *Handler) GetResults(c *gin.Context) {
	criteria, err := criteriaFromQuery(c, view.AxesFor(view.TabSearch))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view.RenderResultsPanel(h.filterer, h.source.Results(), criteria))
}

func (h *Handler) GetTrends(c *gin.Context) {
	criteria, err := criteriaFromQuery(c, view.AxesFor(view.TabTrends))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view.RenderTrendsPanel(h.filterer, h.source.Trends(), criteria))
}

func (h *Handler) GetHistory(c *gin.Context) {
	criteria, err := criteriaFromQuery(c, view.AxesFor(view.TabHistory))
	if err != nil {
		respondError(c, err)
		return
	}

	open := make(map[string]bool)
	for _, id := range splitList(c.Query("open")) {
		open[id] = true
	}

	c.JSON(http.StatusOK, view.RenderHistoryPanel(h.filterer, h.source.History(), criteria, open, h.store.Now()))
}

func (h *Handler) GetResultsFeed(c *gin.Context) {
	criteria, err := criteriaFromQuery(c, view.AxesFor(view.TabSearch))
	if err != nil {
		respondError(c, err)
		return
	}

	results := h.filterer.Results(h.source.Results(), criteria)

	baseURL := h.baseURL
	if baseURL == "" {
		baseURL = "http://" + c.Request.Host
	}
	selfLink := baseURL + c.Request.URL.Path
	if c.Request.URL.RawQuery != "" {
		selfLink += "?" + c.Request.URL.RawQuery
	}

	rss, err := h.generator.Run(feed.Channel{
		Title:       "MarketIntel AI: search results",
		Link:        baseURL,
		Description: "Market research results filtered by sentiment and impact",
		SelfLink:    selfLink,
		Version:     h.version,
	}, results)
	if err != nil {
		slog.Error("RSS generation error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate feed"})
		return
	}

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.Header("X-Feed-Items", strconv.Itoa(len(results)))

	c.String(http.StatusOK, rss)
}

func (h *Handler) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"theme": h.theme.Get()})
}

func (h *Handler) PutTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing theme"})
		return
	}

	theme, err := view.ParseTheme(req.Theme)
	if err != nil {
		respondError(c, err)
		return
	}

	h.theme.Set(theme)
	slog.Info("Theme changed", "theme", theme)
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

func (h *Handler) ToggleTheme(c *gin.Context) {
	theme := h.theme.Toggle()
	slog.Info("Theme changed", "theme", theme)
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

func (h *Handler) CreateSession(c *gin.Context) {
	session := h.store.Create()
	c.JSON(http.StatusCreated, h.snapshot(session))
}

func (h *Handler) GetSession(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.snapshot(session))
}

func (h *Handler) DeleteSession(c *gin.Context) {
	if !h.store.Delete(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": view.ErrSessionNotFound.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) SelectTab(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req tabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing tab"})
		return
	}

	tab, err := view.ParseTab(req.Tab)
	if err != nil {
		respondError(c, err)
		return
	}

	session.SelectTab(tab)
	c.JSON(http.StatusOK, h.snapshot(session))
}

func (h *Handler) ToggleSidebar(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	session.ToggleSidebar()
	c.JSON(http.StatusOK, h.snapshot(session))
}

func (h *Handler) ToggleMenu(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	session.ToggleMenu()
	c.JSON(http.StatusOK, h.snapshot(session))
}

// Search answers 202 while the simulated search is still pending.
func (h *Handler) Search(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if !session.Search(req.Query) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query must not be blank"})
		return
	}

	h.respondSearch(c, session)
}

func (h *Handler) ToggleFilter(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	if err := session.ToggleFilter(view.Axis(c.Param("axis")), c.Param("value")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.snapshot(session))
}

func (h *Handler) ClearFilter(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	if err := session.ClearFilter(view.Axis(c.Param("axis"))); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.snapshot(session))
}

func (h *Handler) ToggleHistoryEntry(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	if _, err := session.ToggleHistoryEntry(c.Param("entry")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.snapshot(session))
}

func (h *Handler) RerunHistoryEntry(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	if err := session.Rerun(c.Param("entry")); err != nil {
		respondError(c, err)
		return
	}
	h.respondSearch(c, session)
}

func (h *Handler) respondSearch(c *gin.Context, session *view.Session) {
	state := h.snapshot(session)
	status := http.StatusOK
	if state.Search != nil && state.Search.Searching {
		status = http.StatusAccepted
	}
	c.JSON(status, state)
}

func (h *Handler) session(c *gin.Context) (*view.Session, bool) {
	session, err := h.store.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return session, true
}

func (h *Handler) snapshot(session *view.Session) view.State {
	return session.Snapshot(h.theme.Get(), h.store.Now())
}

func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, view.ErrSessionNotFound), errors.Is(err, view.ErrUnknownEntry):
		status = http.StatusNotFound
	case errors.Is(err, view.ErrUnsupportedAxis), errors.Is(err, view.ErrInvalidValue),
		errors.Is(err, view.ErrUnknownTab), errors.Is(err, view.ErrUnknownTheme):
		status = http.StatusBadRequest
	default:
		slog.Error("Request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// criteriaFromQuery reads the criteria for the given axes from the query
// string. Sentiments are comma separated; other axes take a single value.
func criteriaFromQuery(c *gin.Context, axes []view.Axis) (market.Criteria, error) {
	var criteria market.Criteria

	for _, axis := range axes {
		raw := strings.TrimSpace(c.Query(string(axis)))
		if raw == "" {
			continue
		}

		var err error
		switch axis {
		case view.AxisSentiment:
			for _, value := range splitList(raw) {
				var sentiment market.Sentiment
				if sentiment, err = market.ParseSentiment(value); err != nil {
					break
				}
				if !criteria.HasSentiment(sentiment) {
					criteria.Sentiments = append(criteria.Sentiments, sentiment)
				}
			}
		case view.AxisImpact:
			criteria.Impact, err = market.ParseImpact(raw)
		case view.AxisPriority:
			criteria.Priority, err = market.ParsePriority(raw)
		case view.AxisTimeRange:
			criteria.TimeRange, err = market.ParseTimeRange(raw)
		}

		if err != nil {
			return market.Criteria{}, fmt.Errorf("%w: %v", view.ErrInvalidValue, err)
		}
	}

	return criteria, nil
}

func splitList(raw string) []string {
	var values []string
	for _, value := range strings.Split(raw, ",") {
		if value = strings.TrimSpace(value); value != "" {
			values = append(values, value)
		}
	}
	return values
}

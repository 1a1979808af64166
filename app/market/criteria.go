package market

import "slices"

// Criteria is the set of user-selected filters for one view.
// A zero value on any axis matches every record.
type Criteria struct {
	Sentiments []Sentiment `json:"sentiments"`
	Impact     Impact      `json:"impact,omitempty"`
	Priority   Priority    `json:"priority,omitempty"`
	// TimeRange is reported back to the client but does not narrow results.
	TimeRange TimeRange `json:"time_range,omitempty"`
}

// MatchesAll reports whether no record-narrowing axis is active.
func (c Criteria) MatchesAll() bool {
	return len(c.Sentiments) == 0 && c.Impact == "" && c.Priority == ""
}

func (c Criteria) HasSentiment(s Sentiment) bool {
	return slices.Contains(c.Sentiments, s)
}

// ToggleSentiment adds s to the selection, or removes it if already selected.
// The receiver's slice is never modified.
func (c Criteria) ToggleSentiment(s Sentiment) Criteria {
	if c.HasSentiment(s) {
		c.Sentiments = slices.DeleteFunc(slices.Clone(c.Sentiments), func(v Sentiment) bool { return v == s })
	} else {
		c.Sentiments = append(slices.Clone(c.Sentiments), s)
	}
	return c
}

// ToggleImpact selects impact, or clears the axis when it is already selected.
func (c Criteria) ToggleImpact(impact Impact) Criteria {
	if c.Impact == impact {
		c.Impact = ""
	} else {
		c.Impact = impact
	}
	return c
}

// TogglePriority selects priority, or clears the axis when it is already selected.
func (c Criteria) TogglePriority(priority Priority) Criteria {
	if c.Priority == priority {
		c.Priority = ""
	} else {
		c.Priority = priority
	}
	return c
}

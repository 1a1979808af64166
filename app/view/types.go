package view

import (
	"errors"
	"fmt"
	"strings"
)

type Tab string

const (
	TabSearch  Tab = "search"
	TabTrends  Tab = "trends"
	TabHistory Tab = "history"
)

var Tabs = []Tab{TabSearch, TabTrends, TabHistory}

func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
}

type Axis string

const (
	AxisSentiment Axis = "sentiment"
	AxisImpact    Axis = "impact"
	AxisPriority  Axis = "priority"
	AxisTimeRange Axis = "time_range"
)

// Axes each view exposes, in display order.
var viewAxes = map[Tab][]Axis{
	TabSearch:  {AxisTimeRange, AxisSentiment, AxisImpact},
	TabTrends:  {AxisSentiment, AxisImpact, AxisPriority},
	TabHistory: {AxisSentiment, AxisImpact},
}

func AxesFor(tab Tab) []Axis {
	return viewAxes[tab]
}

func supportsAxis(tab Tab, axis Axis) bool {
	for _, a := range viewAxes[tab] {
		if a == axis {
			return true
		}
	}
	return false
}

var (
	ErrUnknownTab      = errors.New("unknown tab")
	ErrUnsupportedAxis = errors.New("filter axis not available on this view")
	ErrInvalidValue    = errors.New("invalid filter value")
	ErrUnknownEntry    = errors.New("unknown history entry")
	ErrSessionNotFound = errors.New("session not found")
	ErrUnknownTheme    = errors.New("unknown theme")
)

// User is the signed-in analyst shown in the header menu.
type User struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// Initials returns up to two upper-cased initials from the user's name.
func (u User) Initials() string {
	var initials []rune
	for _, part := range strings.Fields(u.Name) {
		initials = append(initials, []rune(part)[0])
		if len(initials) == 2 {
			break
		}
	}
	return strings.ToUpper(string(initials))
}

package view

import (
	"fmt"
	"sync"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
	}
}

// ThemeSetting is the single process-wide presentation theme.
type ThemeSetting struct {
	mu    sync.RWMutex
	theme Theme
}

func NewThemeSetting(initial Theme) *ThemeSetting {
	if initial == "" {
		initial = ThemeLight
	}
	return &ThemeSetting{theme: initial}
}

func (ts *ThemeSetting) Get() Theme {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return ts.theme
}

func (ts *ThemeSetting) Set(theme Theme) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.theme = theme
}

func (ts *ThemeSetting) Toggle() Theme {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if ts.theme == ThemeDark {
		ts.theme = ThemeLight
	} else {
		ts.theme = ThemeDark
	}
	return ts.theme
}

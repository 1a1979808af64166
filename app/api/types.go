package api

import (
	"github.com/lysyi3m/market-intel/app/feed"
	"github.com/lysyi3m/market-intel/app/market"
	"github.com/lysyi3m/market-intel/app/view"
)

type GeneratorInterface interface {
	Run(channel feed.Channel, results []market.SearchResult) (string, error)
}

var _ GeneratorInterface = (*feed.Generator)(nil)

type Handler struct {
	source    view.Source
	filterer  *market.Filterer
	store     *view.Store
	theme     *view.ThemeSetting
	generator GeneratorInterface
	baseURL   string
	version   string
}

type tabRequest struct {
	Tab string `json:"tab" binding:"required"`
}

type searchRequest struct {
	Query string `json:"query"`
}

type themeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

type option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

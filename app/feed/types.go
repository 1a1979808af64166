package feed

import (
	"time"
)

// Metadata describes the channel a set of imported results came from.
type Metadata struct {
	Title       string
	Link        string
	Description string
	Language    string
	PublishedAt *time.Time
}

// Channel describes an exported feed.
type Channel struct {
	Title       string
	Link        string
	Description string
	SelfLink    string
	Version     string
}

const (
	sentimentCategoryPrefix = "sentiment:"
	impactCategoryPrefix    = "impact:"
)

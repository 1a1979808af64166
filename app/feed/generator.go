package feed

import (
	"bytes"
	"cmp"
	"encoding/xml"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/lysyi3m/market-intel/app/market"
)

// Generator renders search results as an RSS 2.0 document. Classification is
// written as categories in the format Parser reads back.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Run(channel Channel, results []market.SearchResult) (string, error) {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
	buf.WriteString("\n  <channel>\n")

	g.writeElement(&buf, "title", channel.Title, 4)
	g.writeElement(&buf, "link", channel.Link, 4)
	g.writeElement(&buf, "description", cmp.Or(channel.Description, "Filtered market research results"), 4)

	if channel.SelfLink != "" {
		buf.WriteString(fmt.Sprintf("    <atom:link href=\"%s\" rel=\"self\" type=\"application/rss+xml\" />\n",
			html.EscapeString(channel.SelfLink)))
	}

	lastBuildDate := time.Now().In(time.Local)
	if len(results) > 0 && !results[0].Date.IsZero() {
		lastBuildDate = results[0].Date
	}
	g.writeElement(&buf, "lastBuildDate", lastBuildDate.Format(time.RFC1123Z), 4)
	g.writeElement(&buf, "generator", fmt.Sprintf("MarketIntel/%s", cmp.Or(channel.Version, "dev")), 4)

	for _, result := range results {
		g.writeItem(&buf, result)
	}

	buf.WriteString("  </channel>\n</rss>")

	return buf.String(), nil
}

func (g *Generator) writeItem(buf *bytes.Buffer, result market.SearchResult) {
	buf.WriteString("    <item>\n")

	if result.ID != "" {
		buf.WriteString("      <guid isPermaLink=\"false\">")
		xml.EscapeText(buf, []byte(result.ID))
		buf.WriteString("</guid>\n")
	}

	g.writeElement(buf, "title", result.Headline, 6)
	g.writeElement(buf, "link", result.URL, 6)
	g.writeElement(buf, "description", cmp.Or(strings.Join(result.Summary, "\n"), "No summary available"), 6)

	if !result.Date.IsZero() {
		g.writeElement(buf, "pubDate", result.Date.Format(time.RFC1123Z), 6)
	}

	g.writeElement(buf, "category", sentimentCategoryPrefix+string(result.Sentiment), 6)
	g.writeElement(buf, "category", impactCategoryPrefix+string(result.Impact), 6)
	g.writeElement(buf, "category", "priority:"+string(market.DerivePriority(result.Impact)), 6)
	g.writeElement(buf, "category", result.Source, 6)

	buf.WriteString("    </item>\n")
}

func (g *Generator) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}

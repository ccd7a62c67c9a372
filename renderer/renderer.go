// Package renderer turns portfolios and simulation outcomes into markdown
// reports, and markdown reports into HTML.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// html converts GitHub flavored markdown, tables included.
var html = goldmark.New(goldmark.WithExtensions(extension.GFM))

// HTML renders a markdown report as an HTML fragment.
func HTML(markdown string) (string, error) {
	var b bytes.Buffer
	if err := html.Convert([]byte(markdown), &b); err != nil {
		return "", fmt.Errorf("cannot convert report to html: %w", err)
	}
	return b.String(), nil
}

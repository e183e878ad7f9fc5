package renderer

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdown converts GitHub flavoured markdown, tables included.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// HTML converts a markdown document to an HTML fragment.
func HTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return buf.String(), nil
}

// HTMLPage converts a markdown document to a standalone HTML page.
func HTMLPage(title, src string) (string, error) {
	body, err := HTML(src)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`, html.EscapeString(title), body), nil
}

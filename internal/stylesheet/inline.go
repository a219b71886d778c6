package stylesheet

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// Embed replaces every <link rel="stylesheet"> pointing at href with a
// <style> element holding css. The rest of the page is copied byte for
// byte. It returns the rewritten page and the number of replaced links.
func Embed(page, href, css string) (string, int, error) {
	z := html.NewTokenizer(strings.NewReader(page))

	var b strings.Builder
	b.Grow(len(page) + len(css))
	replaced := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return "", 0, fmt.Errorf("parse html: %w", err)
			}
			return b.String(), replaced, nil
		}

		// Token lowercases names in place, so copy the raw bytes first.
		raw := string(z.Raw())
		if (tt == html.StartTagToken || tt == html.SelfClosingTagToken) && isStylesheetLink(z.Token(), href) {
			b.WriteString("<style>")
			b.WriteString(css)
			b.WriteString("</style>")
			replaced++
			continue
		}
		b.WriteString(raw)
	}
}

// isStylesheetLink 判断 token 是否为指向 href 的样式表链接
func isStylesheetLink(tok html.Token, href string) bool {
	if tok.Data != "link" {
		return false
	}
	var rel, target string
	for _, a := range tok.Attr {
		switch strings.ToLower(a.Key) {
		case "rel":
			rel = a.Val
		case "href":
			target = a.Val
		}
	}
	return target == href && slices.Contains(strings.Fields(strings.ToLower(rel)), "stylesheet")
}

package converter

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlighter 使用 chroma 为代码块生成带内联样式的 HTML
type Highlighter struct {
	style     *chroma.Style
	formatter *html.Formatter
}

// NewHighlighter creates a highlighter for the named chroma style. Unknown
// styles fall back to the chroma default.
func NewHighlighter(styleName string) *Highlighter {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &Highlighter{
		style:     style,
		formatter: html.New(html.PreventSurroundingPre(true)),
	}
}

// Highlight renders code for language. It fails when no lexer is known for
// the language.
func (h *Highlighter) Highlight(code, language string) (string, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		return "", fmt.Errorf("no lexer for language %q", language)
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("tokenise %s: %w", language, err)
	}

	var b strings.Builder
	if err := h.formatter.Format(&b, h.style, iterator); err != nil {
		return "", fmt.Errorf("format %s: %w", language, err)
	}
	return b.String(), nil
}

package dump

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/riverfjs/mmd-go/internal/types"
)

// Format 输出格式
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, yaml or json)", name)
	}
}

var (
	kindStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	posStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	attrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	plainStyle  = lipgloss.NewStyle()
	indentUnit  = "  "
	wordPadding = " "
)

// Write dumps doc to w in the given format.
func Write(w io.Writer, doc *types.Document, format Format) error {
	root := Build(doc)
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(root); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(root); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatText, "":
		_, err := io.WriteString(w, Text(root, true))
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// Text renders the node tree as an indented outline. With styled set the
// labels are colored for terminals.
func Text(root *Node, styled bool) string {
	var b strings.Builder
	writeText(&b, root, 0, styled)
	return b.String()
}

func writeText(b *strings.Builder, n *Node, depth int, styled bool) {
	style := func(s lipgloss.Style, v string) string {
		if !styled {
			return v
		}
		return s.Render(v)
	}

	b.WriteString(strings.Repeat(indentUnit, depth))
	b.WriteString(style(kindStyle, n.Kind))

	var attrs []string
	if n.Indent > 0 {
		attrs = append(attrs, fmt.Sprintf("indent=%d", n.Indent))
	}
	if n.Level > 0 {
		attrs = append(attrs, fmt.Sprintf("level=%d", n.Level))
	}
	if n.Kind == KindAside {
		attrs = append(attrs, "kind="+n.Aside)
	}
	if n.Marker != "" {
		attrs = append(attrs, fmt.Sprintf("marker=%q", n.Marker))
	}
	if n.Language != "" {
		attrs = append(attrs, "language="+n.Language)
	}
	if n.Title != "" {
		attrs = append(attrs, fmt.Sprintf("title=%q", n.Title))
	}
	if len(attrs) > 0 {
		b.WriteString(" ")
		b.WriteString(style(attrStyle, strings.Join(attrs, " ")))
	}
	if n.Pos != "" {
		b.WriteString(" ")
		b.WriteString(style(posStyle, n.Pos))
	}

	if n.Kind == KindSource {
		if len(n.Words) > 0 {
			words := make([]string, len(n.Words))
			for i, w := range n.Words {
				if w.Modifier == "" {
					words[i] = fmt.Sprintf("%q", w.Value)
				} else {
					words[i] = fmt.Sprintf("%q[%s]", w.Value, w.Modifier)
				}
			}
			b.WriteString(wordPadding)
			b.WriteString(style(textStyle, strings.Join(words, " ")))
		} else {
			b.WriteString(wordPadding)
			b.WriteString(style(plainStyle, fmt.Sprintf("%q", n.Text)))
		}
	}
	b.WriteString("\n")

	for _, c := range n.Children {
		writeText(b, c, depth+1, styled)
	}
}

package converter

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/riverfjs/mmd-go/internal/buffer"
	"github.com/riverfjs/mmd-go/internal/types"
	"github.com/riverfjs/mmd-go/internal/util"
)

// RenderConfig 类型别名
type RenderConfig = types.RenderConfig

const pageTemplate = `<!doctype html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>%s</title>
    <link rel="stylesheet" href="%s">
    <style>
        section { margin-left: 1rem }
        section > :where(h1, h2, h3, h4, h5, h6) { margin-left: -1rem }
    </style>
</head>
<body>
<main class="container">
%s</main>
</body>
</html>
`

// HTMLWalker 遍历文档树并生成 HTML
type HTMLWalker struct {
	config      *RenderConfig
	log         zerolog.Logger
	highlighter *Highlighter
}

// NewHTMLWalker 创建新的 HTMLWalker
func NewHTMLWalker(config *RenderConfig, log zerolog.Logger) *HTMLWalker {
	if config == nil {
		config = types.DefaultRenderConfig()
	}
	w := &HTMLWalker{config: config, log: log}
	if config.Highlight {
		w.highlighter = NewHighlighter(config.HighlightStyle)
	}
	return w
}

// Page renders root as a complete HTML page.
func (w *HTMLWalker) Page(root *types.Document) string {
	body := w.Body(root)
	return fmt.Sprintf(pageTemplate,
		escape(w.config.PageTitle),
		escape(w.config.Stylesheet),
		body.Join("    "),
	)
}

// Body renders root without the page wrapper.
func (w *HTMLWalker) Body(root *types.Document) *buffer.HTMLBuffer {
	return w.document(root, 0)
}

func (w *HTMLWalker) document(d *types.Document, nesting int) *buffer.HTMLBuffer {
	out := buffer.New()
	if d.Title != nil {
		w.titleGroup(d.Title, nesting, out)
	}
	for _, part := range d.Content {
		switch p := part.(type) {
		case *types.Section:
			w.section(p, nesting, out)
		case *types.Paragraph:
			w.paragraph(p, nesting, out)
		}
	}
	return out
}

// titleGroup 渲染文档标题组：首行为标题，其余行为副标题
func (w *HTMLWalker) titleGroup(title *types.Paragraph, nesting int, out *buffer.HTMLBuffer) {
	out.Write("<hgroup>")

	var lines []*types.Line
	for _, item := range title.Items {
		l, ok := item.(*types.Line)
		if !ok {
			w.log.Warn().Str("item", fmt.Sprintf("%T", item)).Msg("only lines are supported in a title group")
			continue
		}
		lines = append(lines, l)
	}

	if len(lines) > 0 {
		tag := "h5"
		switch nesting {
		case 0:
			tag = "h2"
		case 1:
			tag = "h4"
		}
		out.Write(fmt.Sprintf("<%s>%s</%s>", tag, strings.TrimSuffix(RenderLine(lines[0]), "<br>"), tag))
	}
	if len(lines) > 1 {
		out.Write("<p>")
		for _, l := range lines[1:] {
			out.Write(RenderLine(l))
		}
		dropBreak(out)
		out.Write("</p>")
	}

	out.Write("</hgroup>")
	out.Write("<hr>")
}

func (w *HTMLWalker) section(s *types.Section, nesting int, out *buffer.HTMLBuffer) {
	level := min(max(1, s.Level), 4)
	tag := fmt.Sprintf("h%d", 6-level)

	out.Write("<section>")
	out.Write(fmt.Sprintf("<%s>%s</%s>", tag, escape(strings.TrimSpace(s.Title.Text())), tag))
	out.WriteAll(w.document(s.Doc, nesting+1))
	out.Write("</section>")
}

// paragraph 连续的行放在同一个 <p> 中；旁注、列表和代码块位于 <p> 之外
func (w *HTMLWalker) paragraph(p *types.Paragraph, nesting int, out *buffer.HTMLBuffer) {
	items := p.Items
	for i := 0; i < len(items); i++ {
		switch it := items[i].(type) {
		case *types.Line:
			j := i
			out.Write("<p>")
			for ; j < len(items); j++ {
				l, ok := items[j].(*types.Line)
				if !ok {
					break
				}
				out.Write(RenderLine(l))
			}
			dropBreak(out)
			out.Write("</p>")
			i = j - 1

		case *types.Aside:
			w.aside(it, nesting, out)

		case *types.Block:
			w.block(it, out)

		case *types.List:
			j := i
			var group []*types.List
			for ; j < len(items); j++ {
				l, ok := items[j].(*types.List)
				if !ok {
					break
				}
				group = append(group, l)
			}
			w.list(group, nesting, out)
			i = j - 1
		}
	}
}

// dropBreak 去掉最后一行末尾的 <br>
func dropBreak(out *buffer.HTMLBuffer) {
	if out.Len() == 0 {
		return
	}
	out.Write(strings.TrimSuffix(out.PopLast(), "<br>"))
}

// aside 渲染旁注；正文以标题组开头时将其放入 <header>
func (w *HTMLWalker) aside(a *types.Aside, nesting int, out *buffer.HTMLBuffer) {
	body := w.document(a.Doc, nesting+1)
	inner := body.Parts()

	out.Write(fmt.Sprintf(`<article class="%s">`, a.Kind))
	if body.First() == "<hgroup>" {
		out.Write("<header>")
		i := 0
		for ; i < len(inner); i++ {
			out.Write(inner[i])
			if inner[i] == "</hgroup>" {
				break
			}
		}
		out.Write("</header>")
		inner = inner[i+1:]
		if len(inner) > 0 && inner[0] == "<hr>" {
			inner = inner[1:]
		}
	}
	for _, part := range inner {
		out.Write(part)
	}
	out.Write("</article>")
}

func (w *HTMLWalker) block(b *types.Block, out *buffer.HTMLBuffer) {
	lines := make([]string, len(b.Lines))
	for i := range b.Lines {
		lines[i] = b.Lines[i].Text()
	}
	code := strings.Join(util.Dedent(lines), "\n")

	open := "<pre><code>"
	if b.Language != "" {
		open = fmt.Sprintf(`<pre><code class="language-%s">`, escape(b.Language))
	}

	if w.highlighter != nil && b.Language != "" {
		highlighted, err := w.highlighter.Highlight(code, b.Language)
		if err == nil {
			out.Write(open + highlighted + "</code></pre>")
			return
		}
		w.log.Debug().Err(err).Str("language", b.Language).Msg("highlighting skipped")
	}

	out.Write(open + strings.ReplaceAll(escape(code), "\n", "<br>") + "</code></pre>")
}

// list 渲染一组连续的列表项，编号样式由第一项的标记推断
func (w *HTMLWalker) list(items []*types.List, nesting int, out *buffer.HTMLBuffer) {
	style, ok := InferListStyle(items[0].Marker)
	if !ok {
		w.log.Warn().Str("marker", items[0].Marker).Msg("unknown list marker, rendering unordered")
		style = ListStyle{Tag: "ul"}
	}

	out.Write(style.Open())
	for _, item := range items {
		out.Write("<li>")
		out.WriteAll(w.document(item.Doc, nesting+1))
		out.Write("</li>")
	}
	out.Write(style.Close())
}

package converter

import (
	"strings"

	"github.com/yuin/goldmark/util"

	"github.com/riverfjs/mmd-go/internal/types"
)

// inlineTag 行内样式与 HTML 标签的对应关系，按打开顺序排列
type inlineTag struct {
	flag types.Modifier
	name string
}

var inlineTags = []inlineTag{
	{types.Quotes, "q"},
	{types.Bold, "strong"},
	{types.Italic, "i"},
	{types.Monospace, "code"},
	{types.Select, "mark"},
	{types.Strikethrough, "s"},
}

var styleMask = func() types.Modifier {
	var m types.Modifier
	for _, t := range inlineTags {
		m |= t.flag
	}
	return m
}()

func tagName(flag types.Modifier) string {
	for _, t := range inlineTags {
		if t.flag == flag {
			return t.name
		}
	}
	return ""
}

// tagStack tracks the inline tags currently open while emitting one source
// line. Words only record their state, so tags are derived from the
// difference between consecutive states.
type tagStack struct {
	open []types.Modifier
}

func (s *tagStack) state() types.Modifier {
	m := types.None
	for _, f := range s.open {
		m |= f
	}
	return m
}

// transition 输出从当前状态切换到 next 所需的闭合和打开标签
//
// 关闭某个标签时，位于其内部仍需保持的标签会先关闭再重新打开，保证嵌套正确。
func (s *tagStack) transition(b *strings.Builder, next types.Modifier) {
	want := next & styleMask
	changed := s.state().Diff(want)
	if changed == types.None {
		return
	}

	cut := -1
	for i, f := range s.open {
		if changed.Has(f) {
			cut = i
			break
		}
	}
	if cut >= 0 {
		var reopen []types.Modifier
		for j := len(s.open) - 1; j >= cut; j-- {
			f := s.open[j]
			b.WriteString("</" + tagName(f) + ">")
			if want.Has(f) {
				reopen = append([]types.Modifier{f}, reopen...)
			}
		}
		s.open = s.open[:cut]
		for _, f := range reopen {
			b.WriteString("<" + tagName(f) + ">")
			s.open = append(s.open, f)
		}
	}

	for _, t := range inlineTags {
		if changed.Has(t.flag) && want.Has(t.flag) {
			b.WriteString("<" + t.name + ">")
			s.open = append(s.open, t.flag)
		}
	}
}

func (s *tagStack) closeAll(b *strings.Builder) {
	s.transition(b, types.None)
}

func escape(text string) string {
	return string(util.EscapeHTML([]byte(text)))
}

// RenderLine 渲染一个逻辑行；各物理行以空格连接，结尾为 <br>
func RenderLine(l *types.Line) string {
	var b strings.Builder
	for _, src := range l.Sources {
		tags := &tagStack{}
		for _, w := range src.Words {
			tags.transition(&b, w.Modifier)
			b.WriteString(escape(w.Value))
		}
		tags.closeAll(&b)
		b.WriteByte(' ')
	}
	return strings.TrimRight(b.String(), " ") + "<br>"
}

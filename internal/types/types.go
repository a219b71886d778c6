package types

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Position 源文件位置（文件 + 从 1 开始的行号）
type Position struct {
	File string `json:"file" yaml:"file"`
	Line int    `json:"line" yaml:"line"`
}

func (p Position) String() string {
	return fmt.Sprintf(".../%s:%d", filepath.Base(p.File), p.Line)
}

// Word 最小的带样式文本单元
//
// 单词之间的空白也作为 Word 保存（Value 为空白本身），渲染时原样输出。
type Word struct {
	Value    string
	Modifier Modifier
}

// IsSpace reports whether the word is a whitespace separator.
func (w Word) IsSpace() bool {
	return w.Value != "" && strings.TrimSpace(w.Value) == ""
}

// SourceLine is the tokenized content of one physical input line.
type SourceLine struct {
	Pos   Position
	Words []Word
}

// Text returns the line content with all styling removed.
func (s *SourceLine) Text() string {
	var b strings.Builder
	for _, w := range s.Words {
		b.WriteString(w.Value)
	}
	return b.String()
}

// Terms returns the non-separator words of the line.
func (s *SourceLine) Terms() []Word {
	terms := make([]Word, 0, len(s.Words))
	for _, w := range s.Words {
		if !w.IsSpace() {
			terms = append(terms, w)
		}
	}
	return terms
}

// Item 段落内容：*Line、*Aside、*List 或 *Block
type Item interface {
	// line 返回可以继续追加内容的逻辑行，没有时返回 nil
	line() *Line
}

// Part 文档内容：*Paragraph 或 *Section
type Part interface {
	Empty() bool
	paragraph() *Paragraph
}

// Line 一个逻辑行，可能由多个物理行（续行）组成
type Line struct {
	Sources []*SourceLine
}

func (l *Line) line() *Line { return l }

// Empty reports whether no source line has been appended yet.
func (l *Line) Empty() bool {
	return len(l.Sources) == 0
}

// Append adds a physical line to the logical line.
func (l *Line) Append(src *SourceLine) {
	l.Sources = append(l.Sources, src)
}

// AsideKind 由前导符号决定的旁注类型
type AsideKind string

const (
	AsidePlain    AsideKind = ""
	AsideEmphasis AsideKind = "#"
	AsideFoot     AsideKind = "_"
)

func (k AsideKind) String() string {
	switch k {
	case AsideEmphasis:
		return "emphasis"
	case AsideFoot:
		return "footnote"
	default:
		return "plain"
	}
}

// Aside 类似引用块的旁注，拥有一个嵌套文档
type Aside struct {
	Kind AsideKind
	Doc  *Document
}

func (a *Aside) line() *Line { return a.Doc.Paragraph().line() }

// List 列表中的一项；Marker 保留原始标记文本用于推断编号样式
type List struct {
	Marker string
	Doc    *Document
}

func (l *List) line() *Line { return l.Doc.Paragraph().line() }

// Block 围栏代码块，内容不做行内解析
type Block struct {
	Language string
	Lines    []SourceLine
}

func (b *Block) line() *Line { return nil }

// Paragraph is an ordered sequence of lines, asides, lists and blocks.
type Paragraph struct {
	Items []Item
}

func (p *Paragraph) paragraph() *Paragraph { return p }

// Empty reports whether the paragraph has no items.
func (p *Paragraph) Empty() bool {
	return len(p.Items) == 0
}

// Append adds an item to the paragraph.
func (p *Paragraph) Append(item Item) {
	p.Items = append(p.Items, item)
}

// Line returns the logical line that continuation text is appended to:
// the last item's own line, descending into asides and lists.
func (p *Paragraph) Line() *Line {
	if len(p.Items) == 0 {
		return nil
	}
	return p.Items[len(p.Items)-1].line()
}

func (p *Paragraph) line() *Line { return p.Line() }

// Section 标题及其正文文档
type Section struct {
	Level int
	Title SourceLine
	Doc   *Document
}

// Empty always reports false: a heading is content even without a body.
func (s *Section) Empty() bool { return false }

func (s *Section) paragraph() *Paragraph { return s.Doc.Paragraph() }

// Document 递归容器；Indent 为该作用域在内容开始前消耗的字符数
type Document struct {
	Indent  int
	Title   *Paragraph
	Content []Part
}

// NewDocument creates a scope with the given indent and one empty paragraph.
func NewDocument(indent int) *Document {
	return &Document{
		Indent:  indent,
		Content: []Part{&Paragraph{}},
	}
}

// Paragraph returns the paragraph new content is appended to. A trailing
// section delegates to its own body.
func (d *Document) Paragraph() *Paragraph {
	if len(d.Content) == 0 {
		p := &Paragraph{}
		d.Content = append(d.Content, p)
		return p
	}
	return d.Content[len(d.Content)-1].paragraph()
}

// Trailing returns the last part if it is a paragraph, otherwise nil.
func (d *Document) Trailing() *Paragraph {
	if len(d.Content) == 0 {
		return nil
	}
	p, _ := d.Content[len(d.Content)-1].(*Paragraph)
	return p
}

// Empty reports whether every part of the document is empty.
func (d *Document) Empty() bool {
	for _, c := range d.Content {
		if !c.Empty() {
			return false
		}
	}
	return true
}

// Append adds a part at the end of the document.
func (d *Document) Append(part Part) {
	d.Content = append(d.Content, part)
}

// Pop removes and returns the last part.
func (d *Document) Pop() Part {
	if len(d.Content) == 0 {
		return nil
	}
	last := d.Content[len(d.Content)-1]
	d.Content = d.Content[:len(d.Content)-1]
	return last
}

// PromoteTitle 将末尾段落转为文档标题，并追加一个新的空段落。
// 末尾不是段落时标题为空段落。重复调用会覆盖之前的标题。
func (d *Document) PromoteTitle() {
	title := d.Trailing()
	if title != nil {
		d.Pop()
	} else {
		title = &Paragraph{}
	}
	d.Title = title
	d.Append(&Paragraph{})
}

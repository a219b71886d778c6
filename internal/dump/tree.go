// Package dump 将文档树转换为便于查看的形式：缩进文本、YAML 或 JSON
package dump

import (
	"fmt"

	"github.com/riverfjs/mmd-go/internal/types"
)

// Node kinds.
const (
	KindDocument  = "document"
	KindTitle     = "title"
	KindSection   = "section"
	KindParagraph = "paragraph"
	KindLine      = "line"
	KindSource    = "source"
	KindAside     = "aside"
	KindList      = "list"
	KindBlock     = "block"
)

// Node 文档树节点的可序列化形式
type Node struct {
	Kind     string  `json:"kind" yaml:"kind"`
	Pos      string  `json:"pos,omitempty" yaml:"pos,omitempty"`
	Indent   int     `json:"indent,omitempty" yaml:"indent,omitempty"`
	Level    int     `json:"level,omitempty" yaml:"level,omitempty"`
	Title    string  `json:"title,omitempty" yaml:"title,omitempty"`
	Aside    string  `json:"aside,omitempty" yaml:"aside,omitempty"`
	Marker   string  `json:"marker,omitempty" yaml:"marker,omitempty"`
	Language string  `json:"language,omitempty" yaml:"language,omitempty"`
	Text     string  `json:"text,omitempty" yaml:"text,omitempty"`
	Words    []Word  `json:"words,omitempty" yaml:"words,omitempty"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// Word 单词及其样式名（如 "BOLD|ITALIC"）
type Word struct {
	Value    string `json:"value" yaml:"value"`
	Modifier string `json:"modifier,omitempty" yaml:"modifier,omitempty"`
}

// Build converts the document tree rooted at doc into nodes.
// Separator words are left out; Text keeps the full line.
func Build(doc *types.Document) *Node {
	n := &Node{Kind: KindDocument, Indent: doc.Indent}
	if doc.Title != nil {
		title := paragraph(doc.Title)
		title.Kind = KindTitle
		n.Children = append(n.Children, title)
	}
	for _, part := range doc.Content {
		switch p := part.(type) {
		case *types.Section:
			n.Children = append(n.Children, &Node{
				Kind:     KindSection,
				Pos:      p.Title.Pos.String(),
				Level:    p.Level,
				Title:    p.Title.Text(),
				Children: []*Node{Build(p.Doc)},
			})
		case *types.Paragraph:
			n.Children = append(n.Children, paragraph(p))
		}
	}
	return n
}

func paragraph(p *types.Paragraph) *Node {
	n := &Node{Kind: KindParagraph}
	for _, item := range p.Items {
		n.Children = append(n.Children, itemNode(item))
	}
	return n
}

func itemNode(item types.Item) *Node {
	switch it := item.(type) {
	case *types.Line:
		n := &Node{Kind: KindLine}
		for _, src := range it.Sources {
			n.Children = append(n.Children, source(src))
		}
		return n
	case *types.Aside:
		return &Node{Kind: KindAside, Aside: it.Kind.String(), Children: []*Node{Build(it.Doc)}}
	case *types.List:
		return &Node{Kind: KindList, Marker: it.Marker, Children: []*Node{Build(it.Doc)}}
	case *types.Block:
		n := &Node{Kind: KindBlock, Language: it.Language}
		for i := range it.Lines {
			n.Children = append(n.Children, &Node{
				Kind: KindSource,
				Pos:  it.Lines[i].Pos.String(),
				Text: it.Lines[i].Text(),
			})
		}
		return n
	default:
		panic(fmt.Sprintf("dump: unexpected item %T", item))
	}
}

func source(src *types.SourceLine) *Node {
	n := &Node{Kind: KindSource, Pos: src.Pos.String(), Text: src.Text()}
	for _, w := range src.Terms() {
		word := Word{Value: w.Value}
		if w.Modifier != types.None {
			word.Modifier = w.Modifier.String()
		}
		n.Words = append(n.Words, word)
	}
	return n
}

// Package parser 将 mmd 标记文本解析为文档树
//
// 解析器逐行读取输入，使用缩进栈管理嵌套作用域（标题、旁注、列表），
// 按固定优先级对每行分类，并对普通文本做行内样式切分。
// 解析是严格的：遇到错误立即返回带位置信息的 *ParseError。
package parser

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/riverfjs/mmd-go/internal/types"
	"github.com/riverfjs/mmd-go/internal/util"
)

// Options 解析选项
type Options struct {
	// Strict rejects lines that end inside an inline modifier span.
	Strict bool
	Logger zerolog.Logger
}

// Option configures Options.
type Option func(*Options)

// WithStrict enables or disables strict modifier checking.
func WithStrict(strict bool) Option {
	return func(o *Options) {
		o.Strict = strict
	}
}

// WithLogger sets the logger used for scope tracing.
func WithLogger(log zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = log
	}
}

// Parser holds the state of a single parse. It is not safe for concurrent
// use; run independent parses on independent parsers.
type Parser struct {
	opts  Options
	file  string
	lines []string
	next  int
	root  *types.Document
	stack *scopeStack
}

// New creates a parser for source read from file.
func New(file, source string, opts ...Option) *Parser {
	o := Options{Logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	root := types.NewDocument(0)
	return &Parser{
		opts:  o,
		file:  file,
		lines: util.SplitLines(source),
		root:  root,
		stack: newScopeStack(root, o.Logger),
	}
}

// Parse parses source; file is only used for positions.
func Parse(file, source string, opts ...Option) (*types.Document, error) {
	return New(file, source, opts...).Parse()
}

// ParseFile reads and parses the file at path.
func ParseFile(path string, opts ...Option) (*types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(path, string(data), opts...)
}

// Parse runs the parser over all lines and returns the root document.
func (p *Parser) Parse() (*types.Document, error) {
	for p.next < len(p.lines) {
		index := p.next
		p.next++
		pos := types.Position{File: p.file, Line: index + 1}
		if err := p.parseLine(p.lines[index], pos); err != nil {
			return nil, p.annotate(err, index, pos)
		}
	}
	return p.root, nil
}

// annotate 为错误附加位置、缩进列以及该列上的字符
func (p *Parser) annotate(err error, index int, pos types.Position) error {
	column := p.stack.indent()
	pe := &ParseError{Kind: err, Pos: pos, Column: column}
	var f *failure
	if errors.As(err, &f) {
		pe.Kind = f.kind
		pe.Msg = f.msg
	}
	if c, ok := util.CharAt(p.lines[index], column); ok {
		pe.Char = string(c)
	}
	return pe
}

func (p *Parser) parseLine(raw string, pos types.Position) error {
	p.stack.settle(raw, pos)

	text, err := p.stack.strip(raw)
	if err != nil {
		return err
	}

	if isTitle(text) {
		p.stack.current().PromoteTitle()
		return nil
	}

	if h, ok := matchHeading(text); ok {
		p.openSection(h, pos)
		return nil
	}

	if lang, ok := matchFence(text); ok {
		return p.readBlock(lang, pos)
	}

	// 旁注与列表标记之后的剩余文本继续按普通内容解析
	if marker, kind, ok := matchAside(text); ok {
		body := types.NewDocument(utf8.RuneCountInString(marker))
		p.stack.current().Paragraph().Append(&types.Aside{Kind: kind, Doc: body})
		p.stack.push(body, pos)
		text = text[len(marker):]
	}

	if marker, ok := matchList(text); ok {
		body := types.NewDocument(utf8.RuneCountInString(marker))
		p.stack.current().Paragraph().Append(&types.List{Marker: marker, Doc: body})
		p.stack.push(body, pos)
		text = text[len(marker):]
	}

	doc := p.stack.current()

	if util.IsBlank(text) {
		// 连续空行只产生一次段落分隔
		if doc.Paragraph().Empty() {
			return nil
		}
		doc.Append(&types.Paragraph{})
		return nil
	}

	first, _ := utf8.DecodeRuneInString(text)
	if !unicode.IsSpace(first) {
		doc.Paragraph().Append(&types.Line{})
	} else {
		if doc.Paragraph().Empty() {
			return fail(ErrStructuralIndentation, "Invalid indentation")
		}
		text = strings.TrimLeftFunc(text, unicode.IsSpace)
	}

	src, state, err := Tokenize(pos, strings.TrimRightFunc(text, unicode.IsSpace), types.None)
	if err != nil {
		return err
	}
	if p.opts.Strict && unterminated(state) {
		return fail(ErrUnterminatedModifier, "Unterminated %s span", state)
	}

	line := doc.Paragraph().Line()
	if line == nil {
		return fail(ErrStructuralIndentation, "Invalid indentation: no line to continue")
	}
	line.Append(src)
	return nil
}

// openSection 打开一个新的章节作用域；当前段落为空时将其丢弃
func (p *Parser) openSection(h heading, pos types.Position) {
	doc := p.stack.current()
	if t := doc.Trailing(); t != nil && t.Empty() {
		doc.Pop()
	}

	title := types.SourceLine{Pos: pos, Words: make([]types.Word, 0)}
	if h.hasTitle {
		title.Words = append(title.Words, types.Word{Value: h.title, Modifier: types.None})
	}

	body := types.NewDocument(h.indent())
	doc.Append(&types.Section{Level: h.level, Title: title, Doc: body})
	p.stack.push(body, pos)
}

// readBlock 逐行读取代码块内容直到结束标记，不经过作用域和行分类
func (p *Parser) readBlock(lang string, pos types.Position) error {
	block := &types.Block{Language: lang, Lines: make([]types.SourceLine, 0)}
	indent := p.stack.indent()

	for {
		if p.next >= len(p.lines) {
			return fail(ErrUnterminatedBlock, "Unterminated code block opened @ %s", pos)
		}
		index := p.next
		p.next++

		_, body := util.Cut(p.lines[index], indent)
		if isFenceEnd(body) {
			break
		}
		block.Lines = append(block.Lines, types.SourceLine{
			Pos:   types.Position{File: p.file, Line: index + 1},
			Words: []types.Word{{Value: body, Modifier: types.Literal}},
		})
	}

	p.stack.current().Paragraph().Append(block)
	p.opts.Logger.Debug().
		Str("pos", pos.String()).
		Str("language", lang).
		Int("lines", len(block.Lines)).
		Msg("code block read")
	return nil
}

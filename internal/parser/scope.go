package parser

import (
	"github.com/rs/zerolog"

	"github.com/riverfjs/mmd-go/internal/types"
	"github.com/riverfjs/mmd-go/internal/util"
)

// scopeStack 当前打开的文档路径（从根到正在解析的行）
//
// 栈只引用文档，文档的所有权属于树本身。
type scopeStack struct {
	docs []*types.Document
	log  zerolog.Logger
}

func newScopeStack(root *types.Document, log zerolog.Logger) *scopeStack {
	return &scopeStack{docs: []*types.Document{root}, log: log}
}

// indent returns the number of characters owned by all open scopes.
func (s *scopeStack) indent() int {
	total := 0
	for _, d := range s.docs {
		total += d.Indent
	}
	return total
}

func (s *scopeStack) current() *types.Document {
	return s.docs[len(s.docs)-1]
}

func (s *scopeStack) push(d *types.Document, pos types.Position) {
	s.docs = append(s.docs, d)
	s.log.Debug().
		Str("pos", pos.String()).
		Int("depth", len(s.docs)).
		Int("indent", d.Indent).
		Msg("scope opened")
}

// settle 弹出不再满足缩进要求的作用域
//
// 空行不会触发弹出（编辑器常会删除行尾空白）。
func (s *scopeStack) settle(raw string, pos types.Position) {
	if raw == "" {
		return
	}
	for len(s.docs) > 1 {
		prefix, _ := util.Cut(raw, s.indent())
		if util.IsBlank(prefix) {
			return
		}
		s.pop(pos)
	}
}

// pop closes the innermost scope. A trailing empty paragraph of a non-empty
// scope moves into the parent so paragraph breaks survive the scope boundary.
func (s *scopeStack) pop(pos types.Position) {
	prev := s.docs[len(s.docs)-1]
	s.docs = s.docs[:len(s.docs)-1]

	relocated := false
	if !prev.Empty() {
		if p := prev.Trailing(); p != nil && p.Empty() {
			prev.Pop()
			s.current().Append(p)
			relocated = true
		}
	}
	s.log.Debug().
		Str("pos", pos.String()).
		Int("depth", len(s.docs)).
		Bool("relocated", relocated).
		Msg("scope closed")
}

// strip removes the indentation of all open scopes from raw. An empty scope
// claims any further leading whitespace as its own indentation; the root
// scope never does.
func (s *scopeStack) strip(raw string) (string, error) {
	_, text := util.Cut(raw, s.indent())

	doc := s.current()
	if !doc.Empty() || util.IsBlank(text) {
		return text, nil
	}
	n := util.LeadingSpace(text)
	if n == 0 {
		return text, nil
	}
	if len(s.docs) == 1 {
		return "", fail(ErrRootIndentation, "Invalid space on root document")
	}
	doc.Indent += n
	_, text = util.Cut(text, n)
	return text, nil
}

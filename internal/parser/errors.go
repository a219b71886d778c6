package parser

import (
	"errors"
	"fmt"

	"github.com/riverfjs/mmd-go/internal/types"
)

// 解析错误分类，均可通过 errors.Is 判断
var (
	ErrStructuralIndentation = errors.New("invalid indentation")
	ErrRootIndentation       = errors.New("invalid space on root document")
	ErrInlineSpacing         = errors.New("spaces are not allowed here")
	ErrUnterminatedBlock     = errors.New("unterminated code block")
	ErrUnterminatedModifier  = errors.New("unterminated modifier")
)

// ParseError 带位置信息的解析错误
type ParseError struct {
	Kind   error
	Pos    types.Position
	Column int
	// Char is the character at Column of the raw line; empty past the end.
	Char string
	Msg  string
}

func (e *ParseError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.Error()
	}
	char := "EOL"
	if e.Char != "" {
		char = fmt.Sprintf("%q", e.Char)
	}
	return fmt.Sprintf("%s @ %s, %2d = %s", msg, e.Pos, e.Column, char)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// failure is raised by the classifier and tokenizer before the driver
// annotates it with the column information.
type failure struct {
	kind error
	msg  string
}

func (f *failure) Error() string {
	if f.msg == "" {
		return f.kind.Error()
	}
	return f.msg
}

func (f *failure) Unwrap() error {
	return f.kind
}

func fail(kind error, format string, args ...any) error {
	return &failure{kind: kind, msg: fmt.Sprintf(format, args...)}
}

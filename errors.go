package mmd

import (
	"github.com/riverfjs/mmd-go/internal/parser"
)

// ParseError 带位置信息的解析错误
type ParseError = parser.ParseError

// Error kinds reported through ParseError.Kind; match them with errors.Is.
var (
	ErrStructuralIndentation = parser.ErrStructuralIndentation
	ErrRootIndentation       = parser.ErrRootIndentation
	ErrInlineSpacing         = parser.ErrInlineSpacing
	ErrUnterminatedBlock     = parser.ErrUnterminatedBlock
	ErrUnterminatedModifier  = parser.ErrUnterminatedModifier
)

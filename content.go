package mmd

import (
	"github.com/riverfjs/mmd-go/internal/types"
)

// 导出文档树类型别名
type (
	Position   = types.Position
	Modifier   = types.Modifier
	Word       = types.Word
	SourceLine = types.SourceLine
	Item       = types.Item
	Part       = types.Part
	Line       = types.Line
	AsideKind  = types.AsideKind
	Aside      = types.Aside
	List       = types.List
	Block      = types.Block
	Paragraph  = types.Paragraph
	Section    = types.Section
	Document   = types.Document
)

// Inline modifiers.
const (
	None          = types.None
	WithSpaces    = types.WithSpaces
	Align         = types.Align
	Bold          = types.Bold
	Italic        = types.Italic
	Monospace     = types.Monospace
	Strikethrough = types.Strikethrough
	Select        = types.Select
	Quotes        = types.Quotes
	Literal       = types.Literal
)

// Aside kinds.
const (
	AsidePlain    = types.AsidePlain
	AsideEmphasis = types.AsideEmphasis
	AsideFoot     = types.AsideFoot
)

package types

import "strings"

// Modifier 行内样式标志位集合，可同时携带多个标志
type Modifier uint16

// None 表示没有任何样式
const None Modifier = 0

const (
	WithSpaces Modifier = 1 << iota
	Align
	Bold
	Italic
	Monospace
	Strikethrough
	Select
	Quotes
	Literal
)

var modifierNames = []struct {
	flag Modifier
	name string
}{
	{WithSpaces, "WITH_SPACES"},
	{Align, "ALIGN"},
	{Bold, "BOLD"},
	{Italic, "ITALIC"},
	{Monospace, "MONOSPACE"},
	{Strikethrough, "STRIKETHROUGH"},
	{Select, "SELECT"},
	{Quotes, "QUOTES"},
	{Literal, "BLOCK"},
}

// Has reports whether every flag of f is set in m.
func (m Modifier) Has(f Modifier) bool {
	return f != None && m&f == f
}

// Toggle flips the flags of f (XOR).
func (m Modifier) Toggle(f Modifier) Modifier {
	return m ^ f
}

// Diff returns the flags that differ between m and other.
func (m Modifier) Diff(other Modifier) Modifier {
	return m ^ other
}

// String 返回以 | 连接的标志名，例如 "BOLD|ITALIC"
func (m Modifier) String() string {
	if m == None {
		return "NONE"
	}
	var names []string
	for _, n := range modifierNames {
		if m&n.flag != 0 {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

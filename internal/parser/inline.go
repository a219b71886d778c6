package parser

import (
	"unicode"
	"unicode/utf8"

	"github.com/riverfjs/mmd-go/internal/types"
)

// sigils maps each inline marker to the flag it toggles.
var sigils = map[byte]types.Modifier{
	'*': types.Bold,
	'_': types.Italic,
	'~': types.Strikethrough,
	'`': types.Monospace,
	'"': types.Quotes,
	'[': types.Select,
	']': types.Select,
}

// doubled 可成对出现的标记；成对时该区间允许空格
func doubled(c byte) bool {
	return c == '*' || c == '_' || c == '~' || c == '`'
}

// spacious 单个出现即允许空格的标记（引号与选中区间）
func spacious(c byte) bool {
	return c == '"' || c == '[' || c == ']'
}

// tokenizer keeps the running modifier state of one physical line. Every
// sigil toggles its flag with XOR; doubled and spacious sigils toggle
// WithSpaces as well, so the allowance is one shared bit rather than a
// property of each span.
type tokenizer struct {
	mod types.Modifier
	src *types.SourceLine
}

func (t *tokenizer) toggle(flag types.Modifier, withSpaces bool) {
	if withSpaces {
		flag |= types.WithSpaces
	}
	t.mod = t.mod.Toggle(flag)
}

func (t *tokenizer) spacesAllowed() bool {
	return t.mod == types.None || t.mod.Has(types.WithSpaces)
}

func (t *tokenizer) emit(value string) {
	t.src.Words = append(t.src.Words, types.Word{Value: value, Modifier: t.mod})
}

// Tokenize 将一行文本拆分为带样式的单词
//
// 标记字符以 XOR 方式切换对应样式；空白只允许出现在无样式或允许空格的区间内。
// initial 为行首的样式状态（ALIGN 只作用于其后的第一个单词）。
// 返回解析结果以及行尾仍处于打开状态的样式。
func Tokenize(pos types.Position, text string, initial types.Modifier) (*types.SourceLine, types.Modifier, error) {
	t := &tokenizer{
		mod: initial,
		src: &types.SourceLine{Pos: pos, Words: make([]types.Word, 0)},
	}

	i := 0
	for i < len(text) {
		c := text[i]
		if flag, ok := sigils[c]; ok {
			n := 1
			if doubled(c) && i+1 < len(text) && text[i+1] == c {
				n = 2
			}
			t.toggle(flag, n == 2 || spacious(c))
			i += n
			continue
		}

		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			j := i + size
			for j < len(text) {
				r, size := utf8.DecodeRuneInString(text[j:])
				if !unicode.IsSpace(r) {
					break
				}
				j += size
			}
			if !t.spacesAllowed() {
				return nil, t.mod, fail(ErrInlineSpacing,
					"Spaces are not allowed here! (%s span at offset %d)", t.mod, i)
			}
			t.emit(text[i:j])
			i = j
			continue
		}

		j := i + size
		for j < len(text) {
			if _, ok := sigils[text[j]]; ok {
				break
			}
			r, size := utf8.DecodeRuneInString(text[j:])
			if unicode.IsSpace(r) {
				break
			}
			j += size
		}
		t.emit(text[i:j])
		i = j

		// ALIGN 只对一个单词有效
		if t.mod.Has(types.Align) {
			t.mod = t.mod.Toggle(types.Align)
		}
	}

	return t.src, t.mod, nil
}

// unterminated reports whether a line ended inside a modifier span. A lone
// WithSpaces bit means a doubled sigil was closed by a single one.
func unterminated(state types.Modifier) bool {
	return state&^types.Align != types.None
}

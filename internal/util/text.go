package util

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SplitLines splits text into physical lines. Line breaks are "\n", "\r\n"
// or "\r"; a final line break does not start an extra empty line.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// LeadingSpace returns the number of whitespace characters prefixing s.
func LeadingSpace(s string) int {
	return utf8.RuneCountInString(s) - utf8.RuneCountInString(strings.TrimLeftFunc(s, unicode.IsSpace))
}

// Cut 返回 s 的前 n 个字符和剩余部分；n 超出长度时前缀为整个 s
func Cut(s string, n int) (prefix, rest string) {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos], s[pos:]
		}
		i++
	}
	return s, ""
}

// CharAt 返回第 n 个字符，用于错误提示；越界时 ok 为 false
func CharAt(s string, n int) (r rune, ok bool) {
	if n < 0 {
		return 0, false
	}
	i := 0
	for _, c := range s {
		if i == n {
			return c, true
		}
		i++
	}
	return 0, false
}

// Dedent removes the whitespace prefix common to all non-blank lines.
// Blank lines become empty.
func Dedent(lines []string) []string {
	margin := ""
	first := true
	for _, l := range lines {
		if IsBlank(l) {
			continue
		}
		indent, _ := Cut(l, LeadingSpace(l))
		if first {
			margin = indent
			first = false
			continue
		}
		margin = commonPrefix(margin, indent)
	}

	out := make([]string, len(lines))
	for i, l := range lines {
		if IsBlank(l) {
			continue
		}
		out[i] = strings.TrimPrefix(l, margin)
	}
	return out
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}

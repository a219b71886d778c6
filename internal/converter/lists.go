package converter

import (
	"fmt"
	"regexp"
)

// ListStyle 列表的 HTML 标签和编号类型
type ListStyle struct {
	Tag  string // "ol" or "ul"
	Type string // ordered numbering alphabet: "A", "1" or "I"
}

// Open returns the opening tag.
func (s ListStyle) Open() string {
	if s.Type == "" {
		return "<" + s.Tag + ">"
	}
	return fmt.Sprintf(`<%s type="%s">`, s.Tag, s.Type)
}

// Close returns the closing tag.
func (s ListStyle) Close() string {
	return "</" + s.Tag + ">"
}

// 按顺序检查，后面的规则覆盖前面的（罗马数字字母同时也是大写字母）
var listStyleRules = []struct {
	re    *regexp.Regexp
	style ListStyle
}{
	{regexp.MustCompile(`[A-Z]+\.\s*$`), ListStyle{Tag: "ol", Type: "A"}},
	{regexp.MustCompile(`\d+\.\s*$`), ListStyle{Tag: "ol", Type: "1"}},
	{regexp.MustCompile(`[IVXCM]+\.\s*$`), ListStyle{Tag: "ol", Type: "I"}},
	{regexp.MustCompile(`\s*-\s*$`), ListStyle{Tag: "ul"}},
}

// InferListStyle derives the list style from the literal marker of the
// first item. ok is false when no rule matches.
func InferListStyle(marker string) (style ListStyle, ok bool) {
	for _, rule := range listStyleRules {
		if rule.re.MatchString(marker) {
			style = rule.style
			ok = true
		}
	}
	return style, ok
}

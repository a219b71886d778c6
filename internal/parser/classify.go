package parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/riverfjs/mmd-go/internal/types"
)

var (
	titleRe    = regexp.MustCompile(`^---`)
	headingRe  = regexp.MustCompile(`^(#+)(\s*)(?:\s(.+)\s*)?$`)
	fenceRe    = regexp.MustCompile("^```(.+)?\\s*$")
	fenceEndRe = regexp.MustCompile("^```\\s*$")
	asideRe    = regexp.MustCompile(`^(([_#]?)>\s*)`)
	listRe     = regexp.MustCompile(`^((?:[A-Z]+\.|\d+\.|[IVXCM]+\.|\s*-)+(?:\s+|$))`)
)

// heading 标题行的匹配结果
type heading struct {
	level    int
	pad      int
	title    string
	hasTitle bool
}

// indent is the width the section body must be indented by.
func (h heading) indent() int {
	return h.level + h.pad + 1
}

func isTitle(text string) bool {
	return titleRe.MatchString(text)
}

func matchHeading(text string) (heading, bool) {
	m := headingRe.FindStringSubmatchIndex(text)
	if m == nil {
		return heading{}, false
	}
	h := heading{
		level: m[3] - m[2],
		pad:   m[5] - m[4],
	}
	if m[6] >= 0 {
		h.title = strings.TrimRightFunc(text[m[6]:m[7]], unicode.IsSpace)
		h.hasTitle = true
	}
	return h, true
}

// matchFence 匹配代码块起始行，返回语言标记（可能为空）
func matchFence(text string) (string, bool) {
	m := fenceRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

func isFenceEnd(text string) bool {
	return fenceEndRe.MatchString(text)
}

// matchAside returns the consumed marker text and the aside kind.
func matchAside(text string) (string, types.AsideKind, bool) {
	m := asideRe.FindStringSubmatch(text)
	if m == nil {
		return "", types.AsidePlain, false
	}
	return m[1], types.AsideKind(m[2]), true
}

// matchList returns the list marker including its trailing spaces.
func matchList(text string) (string, bool) {
	m := listRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Package mmd 解析 mmd 标记文本并渲染为 HTML 页面
//
// mmd 是一种基于缩进的轻量标记方言：标题、旁注和列表通过缩进嵌套，
// 行内样式使用成对的符号（*粗体*、_斜体_、`等宽`、~删除线~、[高亮]、"引用"）。
//
// 核心功能：
//   - 将源文本解析为文档树（Document / Section / Paragraph / Line ...）
//   - 将文档树渲染为完整的 HTML 页面
//   - 将页面引用的样式表下载并内联，便于离线预览
//
// 主要 API：
//   - Parse() / ParseFile(): 解析，返回文档树或 *ParseError
//   - Render(): 将文档树渲染为 HTML
//   - Convert() / ConvertFile(): 解析并渲染
//   - InlineFile(): 内联样式表
//
// 示例：
//
//	doc, err := mmd.Parse("notes.mmd", source)
//	if err != nil {
//	    var perr *mmd.ParseError
//	    if errors.As(err, &perr) {
//	        // perr.Pos, perr.Column, perr.Char
//	    }
//	}
//	page := mmd.Render(doc, mmd.WithHighlight(true))
package mmd

import (
	"github.com/riverfjs/mmd-go/internal/parser"
)

// Parse 解析 mmd 源文本
//
// 参数：
//   - file: 源文件名，仅用于错误和节点的位置信息
//   - source: 源文本
//   - opts: 选项（WithStrict、WithLogger）
//
// 返回：
//   - *Document: 根文档
//   - error: 解析失败时为 *ParseError
func Parse(file, source string, opts ...Option) (*Document, error) {
	options := applyOptions(opts...)
	return parser.Parse(file, source, options.parserOptions()...)
}

// ParseFile reads and parses the file at path. Read errors keep the
// underlying error, so errors.Is(err, fs.ErrNotExist) works.
func ParseFile(path string, opts ...Option) (*Document, error) {
	options := applyOptions(opts...)
	return parser.ParseFile(path, options.parserOptions()...)
}

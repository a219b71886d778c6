package mmd

import (
	"github.com/riverfjs/mmd-go/internal/converter"
)

// Render 将文档树渲染为完整的 HTML 页面
//
// 参数:
//   - doc: Parse() 返回的根文档
//   - opts: 选项（WithConfig、WithHighlight、WithLogger）
//
// 返回:
//   - string: HTML 页面
func Render(doc *Document, opts ...Option) string {
	options := applyOptions(opts...)
	return converter.NewHTMLWalker(options.config(), options.logger()).Page(doc)
}

// Convert 解析 mmd 源文本并渲染为 HTML 页面
//
// 参数:
//   - file: 源文件名，仅用于位置信息
//   - source: 源文本
//   - opts: 选项
//
// 返回:
//   - string: HTML 页面
//   - error: 解析失败时为 *ParseError
func Convert(file, source string, opts ...Option) (string, error) {
	doc, err := Parse(file, source, opts...)
	if err != nil {
		return "", err
	}
	return Render(doc, opts...), nil
}

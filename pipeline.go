package mmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/riverfjs/mmd-go/internal/stylesheet"
)

// HTMLPath returns the sibling .html path for a source file.
func HTMLPath(path string) string {
	return withSuffix(path, ".html")
}

// LocalHTMLPath returns the sibling .local.html path for a rendered page.
func LocalHTMLPath(path string) string {
	return withSuffix(path, ".local.html")
}

// withSuffix 替换最后一个扩展名，没有扩展名时直接追加
func withSuffix(path, suffix string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + suffix
}

// ConvertFile 解析 path 并将 HTML 页面写入同目录下的 .html 文件
//
// 返回:
//   - string: 输出文件路径
//   - error: 读取、解析或写入错误
func ConvertFile(path string, opts ...Option) (string, error) {
	options := applyOptions(opts...)
	log := options.logger()

	doc, err := ParseFile(path, opts...)
	if err != nil {
		return "", err
	}
	page := Render(doc, opts...)

	out := HTMLPath(path)
	if err := os.WriteFile(out, []byte(page), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", out, err)
	}
	log.Info().Str("source", path).Str("output", out).Int("bytes", len(page)).Msg("rendered")
	return out, nil
}

// InlineFile 下载 HTML 页面引用的样式表并内联，写入同目录下的 .local.html 文件
//
// 参数:
//   - ctx: 上下文
//   - path: ConvertFile 生成的 HTML 文件
//   - client: HTTP 客户端，为 nil 时使用带超时的默认客户端
//   - opts: 选项；样式表地址取自 RenderConfig.Stylesheet
//
// 返回:
//   - string: 输出文件路径
//   - error: 错误信息
func InlineFile(ctx context.Context, path string, client *http.Client, opts ...Option) (string, error) {
	options := applyOptions(opts...)
	config := options.config()
	log := options.logger()

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	css, rules, err := stylesheet.Fetch(ctx, config.Stylesheet, client)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", config.Stylesheet, err)
	}
	log.Info().Str("url", config.Stylesheet).Int("rules", rules).Msg("stylesheet fetched")

	page, replaced, err := stylesheet.Embed(string(data), config.Stylesheet, css)
	if err != nil {
		return "", err
	}
	if replaced == 0 {
		log.Warn().Str("file", path).Str("url", config.Stylesheet).Msg("no matching stylesheet link")
	}

	out := LocalHTMLPath(path)
	if err := os.WriteFile(out, []byte(page), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", out, err)
	}
	log.Info().Str("output", out).Int("replaced", replaced).Msg("stylesheet inlined")
	return out, nil
}

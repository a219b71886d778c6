// Package stylesheet 下载样式表并将其内联到 HTML 页面中，
// 使生成的页面在离线预览时也能正常显示
package stylesheet

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

const userAgent = "mmd-go (+https://github.com/riverfjs/mmd-go)"

// Download 下载样式表内容
func Download(ctx context.Context, url string, client *http.Client) (*bytes.Buffer, error) {
	if client == nil {
		client = &http.Client{
			Timeout: 10 * time.Second,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/css,*/*;q=0.1")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download stylesheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, fmt.Errorf("failed to read stylesheet: %w", err)
	}
	return &buf, nil
}

// Validate parses data as CSS.
func Validate(data string) (*css.Stylesheet, error) {
	sheet, err := parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid stylesheet: %w", err)
	}
	return sheet, nil
}

// Fetch downloads the stylesheet at url and checks that it parses as CSS.
// It returns the raw stylesheet text and the number of top-level rules.
func Fetch(ctx context.Context, url string, client *http.Client) (string, int, error) {
	data, err := Download(ctx, url, client)
	if err != nil {
		return "", 0, err
	}
	text := data.String()
	sheet, err := Validate(text)
	if err != nil {
		return "", 0, err
	}
	return text, len(sheet.Rules), nil
}

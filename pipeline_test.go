package mmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiblingPaths(t *testing.T) {
	tests := []struct {
		in, html, local string
	}{
		{"notes.mmd", "notes.html", "notes.local.html"},
		{"dir/notes", "dir/notes.html", "dir/notes.local.html"},
		{"a.b.mmd", "a.b.html", "a.b.local.html"},
		{"page.html", "page.html", "page.local.html"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.html, HTMLPath(tt.in))
			assert.Equal(t, tt.local, LocalHTMLPath(tt.in))
		})
	}
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "notes.mmd")
	require.NoError(t, os.WriteFile(src, []byte("# Hello\n  world\n"), 0644))

	out, err := ConvertFile(src, WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "notes.html"), out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<h5>Hello</h5>")
	assert.Contains(t, string(data), DefaultStylesheet)
}

func TestConvertFile_ParseErrorWritesNothing(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.mmd")
	require.NoError(t, os.WriteFile(src, []byte(" x\n"), 0644))

	_, err := ConvertFile(src, WithLogger(zerolog.Nop()))
	assert.ErrorIs(t, err, ErrRootIndentation)
	assert.NoFileExists(t, filepath.Join(dir, "bad.html"))
}

func TestInlineFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css")
		_, _ = w.Write([]byte("main { padding: 0; }"))
	}))
	defer srv.Close()

	config := *DefaultConfig()
	config.Stylesheet = srv.URL + "/pico.min.css"
	opts := []Option{WithConfig(&config), WithLogger(zerolog.Nop())}

	dir := t.TempDir()
	src := filepath.Join(dir, "doc.mmd")
	require.NoError(t, os.WriteFile(src, []byte("text\n"), 0644))
	page, err := ConvertFile(src, opts...)
	require.NoError(t, err)

	out, err := InlineFile(context.Background(), page, srv.Client(), opts...)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "doc.local.html"), out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "main { padding: 0; }")
	assert.NotContains(t, string(data), `rel="stylesheet"`)
}

func TestInlineFile_FetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	config := *DefaultConfig()
	config.Stylesheet = srv.URL
	page := filepath.Join(t.TempDir(), "doc.html")
	require.NoError(t, os.WriteFile(page, []byte("<html></html>"), 0644))

	_, err := InlineFile(context.Background(), page, srv.Client(), WithConfig(&config), WithLogger(zerolog.Nop()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
	assert.NoFileExists(t, filepath.Join(filepath.Dir(page), "doc.local.html"))
}

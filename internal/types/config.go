package types

// DefaultStylesheet 默认样式表（pico.css）
const DefaultStylesheet = "https://cdn.jsdelivr.net/npm/@picocss/pico@2/css/pico.min.css"

// RenderConfig 渲染配置
type RenderConfig struct {
	// Stylesheet is linked from the page head and fetched by the inline step.
	Stylesheet string
	// PageTitle is the content of the <title> element.
	PageTitle string
	// Highlight enables syntax highlighting of code blocks with a language tag.
	Highlight bool
	// HighlightStyle names the chroma style used for highlighting.
	HighlightStyle string
	// Strict rejects lines that end inside an inline modifier span.
	Strict bool
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		Stylesheet:     DefaultStylesheet,
		PageTitle:      "mmd",
		Highlight:      false,
		HighlightStyle: "github",
	}
}

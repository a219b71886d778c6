package mmd

import (
	"sync"

	"github.com/riverfjs/mmd-go/internal/types"
)

// 导出类型别名
type RenderConfig = types.RenderConfig

// DefaultStylesheet is the stylesheet linked by default.
const DefaultStylesheet = types.DefaultStylesheet

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}

package mdplain

import (
	"sync"

	"github.com/riverfjs/mdplain/internal/types"
)

// 导出类型别名
type Symbol = types.Symbol
type RenderConfig = types.RenderConfig
type FrontMatter = types.FrontMatter
type CodeBlock = types.CodeBlock

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
//
// The returned value is shared; copy it before changing fields.
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}

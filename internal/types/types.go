package types

// Symbol 定义纯文本输出中替代 Markdown 元素的符号
type Symbol struct {
	Bullet          string
	Image           string
	Diagram         string
	TaskCompleted   string
	TaskUncompleted string
}

// DefaultSymbol 返回默认符号配置
func DefaultSymbol() *Symbol {
	return &Symbol{
		Bullet:          "•",
		Image:           "",
		Diagram:         "Diagram:",
		TaskCompleted:   "[x]",
		TaskUncompleted: "[ ]",
	}
}

// RenderConfig 结构化（AST）去标记的渲染配置
type RenderConfig struct {
	Symbol *Symbol

	// KeepCodeBlocks 保留代码块内容，默认整块丢弃
	KeepCodeBlocks bool

	// DiagramLinks 将 mermaid 代码块替换为 mermaid.live 编辑链接
	DiagramLinks bool
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		Symbol: DefaultSymbol(),
	}
}

// FrontMatter 文档头部元数据
type FrontMatter struct {
	Title   string         `json:"title,omitempty" yaml:"title,omitempty"`
	Slug    string         `json:"slug,omitempty" yaml:"slug,omitempty"`
	Summary string         `json:"summary,omitempty" yaml:"summary,omitempty"`
	Tags    []string       `json:"tags,omitempty" yaml:"tags,omitempty"`
	Draft   bool           `json:"draft,omitempty" yaml:"draft,omitempty"`
	Raw     map[string]any `json:"raw,omitempty" yaml:"raw,omitempty"`
}

// IsZero reports whether no front matter was found.
func (fm FrontMatter) IsZero() bool {
	return len(fm.Raw) == 0
}

// CodeBlock 从 Markdown 中提取的代码块
type CodeBlock struct {
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
	Code     string `json:"code" yaml:"code"`
	Lines    int    `json:"lines" yaml:"lines"`
	Filename string `json:"filename" yaml:"filename"`
	Diagram  bool   `json:"diagram,omitempty" yaml:"diagram,omitempty"`

	// PreviewURL 仅 mermaid 图表：mermaid.ink 渲染图片地址
	PreviewURL string `json:"preview_url,omitempty" yaml:"preview_url,omitempty"`
}

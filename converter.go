package mdplain

import (
	"github.com/riverfjs/mdplain/internal/converter"
	"github.com/riverfjs/mdplain/internal/parser"
)

// StripAST 通过 goldmark AST 将 Markdown 转换为纯文本
//
// 与 Strip 不同，StripAST 理解文档结构：列表保留项目符号和编号，
// 表格按行输出，脚注保留编号，代码块默认丢弃（RenderConfig.KeepCodeBlocks 保留），
// mermaid 代码块可替换为编辑链接（RenderConfig.DiagramLinks）。
//
// 参数:
//   - markdown: 原始 Markdown 文本
//   - config: 渲染配置，如为 nil 则使用默认配置
//
// 返回:
//   - string: 去除首尾空白的纯文本
func StripAST(markdown string, config *RenderConfig) string {
	text, _ := StripASTWithBlocks(markdown, config)
	return text
}

// StripASTWithBlocks 与 StripAST 相同，同时返回按出现顺序的代码块
func StripASTWithBlocks(markdown string, config *RenderConfig) (string, []CodeBlock) {
	if config == nil {
		config = DefaultConfig()
	}
	return parser.Parse(markdown, config)
}

// ExtractCodeBlocks 返回 Markdown 中所有围栏和缩进代码块
func ExtractCodeBlocks(markdown string) []CodeBlock {
	_, blocks := StripASTWithBlocks(markdown, nil)
	return blocks
}

// SplitFrontMatter 拆分 front matter 和正文
//
// 支持 YAML (---)、TOML (+++) 和 JSON (;;;)。没有 front matter 时
// 返回零值和原始内容；格式错误时返回错误。
func SplitFrontMatter(source []byte) (FrontMatter, []byte, error) {
	return converter.SplitFrontMatter(source)
}

package parser

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/mdplain/internal/converter"
	"github.com/riverfjs/mdplain/internal/types"
)

// StandardOptions goldmark 扩展配置
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,            // GitHub Flavored Markdown (tables, strikethrough, tasklists, linkify)
		extension.DefinitionList, // 定义列表
		extension.Footnote,       // 脚注
	),
}

// goldmark 解析器可并发使用
var md = goldmark.New(StandardOptions...)

// Parse 解析 Markdown 并遍历 AST 生成 (text, codeBlocks)
func Parse(markdown string, config *types.RenderConfig) (string, []types.CodeBlock) {
	source := []byte(markdown)
	node := md.Parser().Parse(text.NewReader(source))

	walker := converter.NewEventWalker(source, config)
	_ = ast.Walk(node, walker.Walk)

	return walker.Result()
}


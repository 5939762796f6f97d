// Package mdplain 将 CMS 中的 Markdown 内容转换为纯文本
//
// 用于搜索索引、meta description、通知正文和列表预览等只需要纯文本的场景。
//
// 核心功能：
//   - Strip(): 按固定顺序的正则替换去除 Markdown 标记（默认模式）
//   - StripAST(): 基于 goldmark AST 的结构化去标记（列表、表格、脚注）
//   - 拆分 front matter（YAML / TOML / JSON）
//   - 生成摘要、统计字数和阅读时间
//   - 提取代码块
//
// 示例：
//
//	// 简单去标记
//	plain := mdplain.Strip("## Title\n**bold** [link](https://example.com)")
//
//	// 完整处理（front matter、摘要、统计）
//	doc, err := mdplain.Process(ctx, source,
//	    mdplain.WithMode(mdplain.ModeAST),
//	    mdplain.WithExcerptLength(160),
//	)
package mdplain

import "github.com/riverfjs/mdplain/internal/converter"

// Strip 去除 Markdown 标记，返回去除首尾空白的纯文本
//
// 按顺序执行：粗体/斜体 → 链接 → 标题 → 引用 → 围栏代码块 → 行内代码 → trim。
// 对任意输入都有定义，不会失败，无副作用，可并发调用。
// 嵌套或不配对的标记按阶段顺序处理，不做完整的 Markdown 解析。
func Strip(markdown string) string {
	return converter.StripMarkdown(markdown)
}

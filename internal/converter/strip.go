package converter

import (
	"regexp"
	"strings"
)

var (
	// 粗体：**text** 或 __text__
	boldRe = regexp.MustCompile(`\*\*(.*?)\*\*|__(.*?)__`)

	// 斜体：*text* 或 _text_
	italicRe = regexp.MustCompile(`\*(.*?)\*|_(.*?)_`)

	// 链接：[label](url)
	linkRe = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)

	// 行首标题标记
	headingRe = regexp.MustCompile(`(?m)^#+\s+`)

	// 行首引用标记
	blockquoteRe = regexp.MustCompile(`(?m)^>\s+`)

	// 围栏代码块，非贪婪，可跨行
	fencedCodeRe = regexp.MustCompile("```[\\s\\S]*?```")

	// 行内代码，可跨行（与强调不同）
	inlineCodeRe = regexp.MustCompile("`([^`]+)`")
)

// StripMarkdown 按固定顺序用正则去除 Markdown 标记，返回纯文本
//
// 各阶段依次作用于上一阶段的输出，顺序不可调换：
// 粗体/斜体 → 链接 → 标题 → 引用 → 围栏代码块 → 行内代码 → 去除首尾空白。
// 对任意输入都有定义，不会失败。嵌套或不配对的标记只按阶段顺序处理。
func StripMarkdown(markdown string) string {
	if markdown == "" {
		return ""
	}

	s := boldRe.ReplaceAllString(markdown, "${1}${2}")
	s = italicRe.ReplaceAllString(s, "${1}${2}")
	s = linkRe.ReplaceAllString(s, "$1")
	s = headingRe.ReplaceAllString(s, "")
	s = blockquoteRe.ReplaceAllString(s, "")
	s = fencedCodeRe.ReplaceAllString(s, "")
	s = inlineCodeRe.ReplaceAllString(s, "$1")

	return strings.TrimSpace(s)
}

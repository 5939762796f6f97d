package mdplain

import (
	"context"
	"fmt"
)

// Process 完整处理管道：源文档 → Document
//
// 步骤：
//  1. 拆分 front matter（WithFrontMatter，默认开启）
//  2. 按 Mode 去除正文标记（ModeRegex 使用 Strip，ModeAST 使用 StripAST）
//  3. 生成摘要：优先使用 front matter 中的 summary，否则使用正文
//  4. 统计词数、字符数和阅读时间；按需收集代码块
//
// 只有 ctx 已取消、front matter 格式错误或 Mode 未知时返回错误。
func Process(ctx context.Context, content string, opts ...Option) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	options := applyOptions(opts...)

	mode, err := ParseMode(string(options.Mode))
	if err != nil {
		return nil, err
	}

	doc := &Document{}
	body := content
	if options.FrontMatter {
		fm, rest, err := SplitFrontMatter([]byte(content))
		if err != nil {
			return nil, err
		}
		doc.FrontMatter = fm
		body = string(rest)
	}

	var blocks []CodeBlock
	switch mode {
	case ModeAST:
		doc.Text, blocks = StripASTWithBlocks(body, options.Config)
	default:
		doc.Text = Strip(body)
		if options.CodeBlocks {
			blocks = ExtractCodeBlocks(body)
		}
	}
	if options.CodeBlocks {
		doc.CodeBlocks = blocks
	}

	doc.Words = CountWords(doc.Text)
	doc.Runes = RuneLen(doc.Text)
	doc.ReadingTime = ReadingTime(doc.Text, options.WordsPerMinute)
	doc.Excerpt = excerptFor(doc, options.ExcerptLength)

	Logger.Debug("processed document",
		"mode", mode,
		"front_matter", !doc.FrontMatter.IsZero(),
		"source_len", len(content),
		"text_runes", doc.Runes,
		"code_blocks", len(doc.CodeBlocks))

	return doc, nil
}

// ProcessBytes is Process for a byte slice source.
func ProcessBytes(ctx context.Context, source []byte, opts ...Option) (*Document, error) {
	doc, err := Process(ctx, string(source), opts...)
	if err != nil {
		return nil, fmt.Errorf("process document: %w", err)
	}
	return doc, nil
}

// excerptFor 优先使用 front matter summary，summary 去标记后为空时回退到正文
func excerptFor(doc *Document, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	if doc.FrontMatter.Summary != "" {
		if summary := Strip(doc.FrontMatter.Summary); summary != "" {
			return Excerpt(summary, maxRunes)
		}
		Logger.Warn("front matter summary is empty after stripping, using body",
			"title", doc.FrontMatter.Title)
	}
	return Excerpt(doc.Text, maxRunes)
}

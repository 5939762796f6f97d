package converter

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	gutil "github.com/yuin/goldmark/util"

	"github.com/riverfjs/mdplain/internal/buffer"
	"github.com/riverfjs/mdplain/internal/mermaid"
	"github.com/riverfjs/mdplain/internal/types"
	"github.com/riverfjs/mdplain/internal/util"
)

type listState struct {
	ordered bool
	next    int
}

// EventWalker 遍历 goldmark AST 并生成纯文本和代码块列表
type EventWalker struct {
	buf    *buffer.TextBuffer
	source []byte
	config *types.RenderConfig
	blocks []types.CodeBlock

	// Block-level state
	blockCount    int // 用于段落间距
	listStack     []*listState
	itemIndent    string
	footnoteDepth int
	defListDepth  int

	// Table state
	inTableCell bool
	cellParts   []string
	currentRow  []string
}

// NewEventWalker 创建新的 EventWalker
func NewEventWalker(source []byte, config *types.RenderConfig) *EventWalker {
	if config == nil {
		config = types.DefaultRenderConfig()
	}
	if config.Symbol == nil {
		cfg := *config
		cfg.Symbol = types.DefaultSymbol()
		config = &cfg
	}
	return &EventWalker{
		buf:    buffer.New(),
		source: source,
		config: config,
		blocks: make([]types.CodeBlock, 0),
	}
}

// Walk 遍历 AST 节点
func (w *EventWalker) Walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := node.(type) {
	// --- Inline elements ---
	case *ast.Text:
		if entering {
			w.onText(n)
		}

	case *ast.String:
		if entering {
			w.write(string(n.Value))
		}

	case *ast.CodeSpan:
		if entering {
			w.write(extractCodeSpanText(n, w.source))
			return ast.WalkSkipChildren, nil
		}

	case *ast.Image:
		if entering && w.config.Symbol.Image != "" {
			w.write(w.config.Symbol.Image + " ")
		}

	case *ast.AutoLink:
		if entering {
			w.write(string(n.Label(w.source)))
			return ast.WalkSkipChildren, nil
		}

	case *ast.RawHTML:
		return ast.WalkSkipChildren, nil

	case *east.FootnoteLink:
		if entering {
			w.write("[" + strconv.Itoa(n.Index) + "]")
		}

	case *east.FootnoteBacklink:
		return ast.WalkSkipChildren, nil

	// --- Block elements ---
	case *ast.Paragraph:
		if entering {
			w.onStartParagraph()
		} else {
			w.onEndParagraph()
		}

	case *ast.Heading:
		if entering {
			w.ensureBlockSpacing()
		} else {
			w.blockCount++
		}

	case *ast.Blockquote:
		if entering {
			w.ensureBlockSpacing()
		} else {
			w.blockCount++
		}

	case *ast.List:
		if entering {
			w.onStartList(n)
		} else {
			w.onEndList()
		}

	case *ast.ListItem:
		if entering {
			w.onStartItem()
		} else {
			w.endLine()
		}

	case *east.TaskCheckBox:
		if entering {
			w.onTaskCheckBox(n.IsChecked)
		}

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if entering {
			w.onCodeBlock(n)
		}
		return ast.WalkSkipChildren, nil

	case *ast.ThematicBreak, *ast.HTMLBlock:
		return ast.WalkSkipChildren, nil

	// --- Footnotes ---
	case *east.FootnoteList:
		if entering {
			w.ensureBlockSpacing()
			w.footnoteDepth++
		} else {
			w.footnoteDepth--
			w.blockCount++
		}

	case *east.Footnote:
		if entering {
			w.startLine()
			w.write("[" + strconv.Itoa(n.Index) + "] ")
		} else {
			w.endLine()
		}

	// --- Definition lists ---
	case *east.DefinitionList:
		if entering {
			if !w.inContainer() {
				w.ensureBlockSpacing()
			}
			w.defListDepth++
		} else {
			w.defListDepth--
			if !w.inContainer() {
				w.blockCount++
			}
		}

	case *east.DefinitionTerm:
		if entering {
			w.startLine()
		} else {
			w.endLine()
		}

	case *east.DefinitionDescription:
		if entering {
			w.startLine()
			w.write("  ")
		} else {
			w.endLine()
		}

	// --- Table ---
	case *east.Table:
		if entering {
			w.ensureBlockSpacing()
		} else {
			w.blockCount++
		}

	case *east.TableHeader, *east.TableRow:
		if entering {
			w.currentRow = make([]string, 0)
		} else {
			w.onEndTableRow()
		}

	case *east.TableCell:
		if entering {
			w.cellParts = make([]string, 0)
			w.inTableCell = true
		} else {
			w.currentRow = append(w.currentRow, strings.TrimSpace(strings.Join(w.cellParts, "")))
			w.cellParts = nil
			w.inTableCell = false
		}
	}

	return ast.WalkContinue, nil
}

// Result 返回转换结果：去除首尾空白的纯文本和按出现顺序的代码块
func (w *EventWalker) Result() (string, []types.CodeBlock) {
	return strings.TrimSpace(w.buf.String()), w.blocks
}

// --- Text handling ---

func (w *EventWalker) write(s string) {
	if w.inTableCell {
		w.cellParts = append(w.cellParts, s)
		return
	}
	w.buf.Write(s)
}

func (w *EventWalker) onText(n *ast.Text) {
	content := textValue(n, w.source)
	softBreak, hardBreak := n.SoftLineBreak(), n.HardLineBreak()

	if w.inTableCell {
		// Table cells: line breaks become spaces
		if softBreak || hardBreak {
			content += " "
		}
		w.cellParts = append(w.cellParts, content)
		return
	}

	if softBreak || hardBreak {
		content += "\n"
	}
	w.buf.Write(content)
}

// startLine ensures the next write begins on a fresh line.
func (w *EventWalker) startLine() {
	if w.buf.ByteOffset() > 0 && w.buf.TrailingNewlineCount() == 0 {
		w.buf.Write("\n")
	}
}

// endLine terminates the current line unless it already is.
func (w *EventWalker) endLine() {
	if w.buf.TrailingNewlineCount() == 0 {
		w.buf.Write("\n")
	}
}

func (w *EventWalker) inContainer() bool {
	return len(w.listStack) > 0 || w.footnoteDepth > 0 || w.defListDepth > 0
}

// --- Paragraph ---

func (w *EventWalker) onStartParagraph() {
	if !w.inContainer() {
		w.ensureBlockSpacing()
	}
}

func (w *EventWalker) onEndParagraph() {
	if !w.inContainer() {
		w.blockCount++
	} else {
		// loose list 中段落结束时写入换行，避免多段落粘连
		w.endLine()
	}
}

// --- Code block ---

func (w *EventWalker) onCodeBlock(n ast.Node) {
	var lang string
	if fenced, ok := n.(*ast.FencedCodeBlock); ok {
		lang = string(fenced.Language(w.source))
	}
	lang = strings.TrimSpace(strings.Split(lang, ",")[0])

	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		sb.Write(line.Value(w.source))
	}
	rawCode := strings.TrimSuffix(sb.String(), "\n")

	block := types.CodeBlock{
		Language: lang,
		Code:     rawCode,
		Filename: util.FilenameFor(rawCode, lang),
		Diagram:  strings.EqualFold(lang, "mermaid"),
	}
	if rawCode != "" {
		block.Lines = strings.Count(rawCode, "\n") + 1
	}
	if block.Diagram {
		if url, err := mermaid.GetMermaidInkURL(rawCode); err == nil {
			block.PreviewURL = url
		}
	}
	w.blocks = append(w.blocks, block)

	if block.Diagram && w.config.DiagramLinks {
		if url, err := mermaid.GetMermaidLiveURL(rawCode); err == nil {
			w.writeBlock(strings.TrimSpace(w.config.Symbol.Diagram + " " + url))
			return
		}
	}
	if w.config.KeepCodeBlocks {
		w.writeBlock(rawCode)
	}
}

// writeBlock writes s as a standalone block.
func (w *EventWalker) writeBlock(s string) {
	if s == "" {
		return
	}
	if w.inContainer() {
		w.startLine()
		w.buf.Write(s)
		w.endLine()
		return
	}
	w.ensureBlockSpacing()
	w.buf.Write(s)
	w.blockCount++
}

// --- Lists ---

func (w *EventWalker) onStartList(n *ast.List) {
	if !w.inContainer() {
		w.ensureBlockSpacing()
	}
	w.listStack = append(w.listStack, &listState{
		ordered: n.IsOrdered(),
		next:    n.Start,
	})
}

func (w *EventWalker) onStartItem() {
	depth := len(w.listStack)
	if depth == 0 {
		return
	}
	indent := strings.Repeat("  ", depth-1)

	// 嵌套列表：父项文本后没有换行时，插入换行确保子项独占一行
	w.startLine()
	w.itemIndent = indent

	current := w.listStack[depth-1]
	if current.ordered {
		w.buf.Write(indent + strconv.Itoa(current.next) + ". ")
		current.next++
	} else {
		// 先写 bullet，如果后面遇到 TaskCheckBox 会被替换
		w.buf.Write(indent + w.config.Symbol.Bullet + " ")
	}
}

// onTaskCheckBox 用任务标记替换刚写入的列表前缀
func (w *EventWalker) onTaskCheckBox(checked bool) {
	w.buf.PopLast()

	symbol := w.config.Symbol.TaskUncompleted
	if checked {
		symbol = w.config.Symbol.TaskCompleted
	}
	w.buf.Write(w.itemIndent + symbol + " ")
}

func (w *EventWalker) onEndList() {
	if len(w.listStack) > 0 {
		w.listStack = w.listStack[:len(w.listStack)-1]
	}
	if !w.inContainer() {
		w.blockCount++
	}
}

// --- Tables ---

func (w *EventWalker) onEndTableRow() {
	w.startLine()
	w.buf.Write(strings.Join(w.currentRow, " | "))
	w.buf.Write("\n")
	w.currentRow = nil
}

// ensureBlockSpacing ensures a blank line between blocks, avoiding excess newlines.
func (w *EventWalker) ensureBlockSpacing() {
	if w.blockCount > 0 {
		needed := 2 - w.buf.TrailingNewlineCount()
		if needed > 0 {
			w.buf.Write(strings.Repeat("\n", needed))
		}
	}
}

// --- Utilities ---

// textValue 返回文本节点的纯文本：解码反斜杠转义和字符引用，raw 节点原样返回
func textValue(n *ast.Text, source []byte) string {
	value := n.Segment.Value(source)
	if n.IsRaw() {
		return string(value)
	}
	value = gutil.UnescapePunctuations(value)
	value = gutil.ResolveNumericReferences(value)
	value = gutil.ResolveEntityNames(value)
	return string(value)
}

func extractCodeSpanText(n *ast.CodeSpan, source []byte) string {
	var buf strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
		case *ast.String:
			buf.Write(t.Value)
		}
	}
	return buf.String()
}

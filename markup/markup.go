// Package markup lowers a small markdown dialect straight into
// document.Node trees: headers, horizontal rules, lists, blockquotes,
// fenced code (delegated to highlight.Highlight), and inline
// **bold**/#color(...) spans. The block/inline regex scanner is ported
// from the reference parser.go; unlike that parser's own Node/Style AST
// (italic, underline, strike, bold-as-a-boolean), the lowering target
// here is document.Node's Style kind, which only carries color/bgColor
// and a bright flag — so **bold** lowers to Bright, and italic/
// underline/strikethrough tokens are not recognized (there is no
// attribute to carry them).
package markup

import (
	"regexp"
	"strings"

	"termdoc/ansi"
	"termdoc/document"
	"termdoc/highlight"
)

var (
	headerRe    = regexp.MustCompile(`^(#{1,6})[ \t]+(.+)`)
	hrRe        = regexp.MustCompile(`^(\*{3,}|-{3,}|_{3,})$`)
	listRe      = regexp.MustCompile(`^([ \t]*)([*+-]|\d+\.)[ \t]+(.+)`)
	quoteRe     = regexp.MustCompile(`^>[ \t]*(.*)`)
	codeFenceRe = regexp.MustCompile("^```(.*)")

	inlineTokenRe = regexp.MustCompile(`(\*\*.+?\*\*)|(#[a-zA-Z]+\(.+?\))|(!#[a-zA-Z]+\(.+?\))`)
)

var colorByName = map[string]ansi.Color{
	"black":   ansi.ColorBlack,
	"red":     ansi.ColorRed,
	"green":   ansi.ColorGreen,
	"yellow":  ansi.ColorYellow,
	"blue":    ansi.ColorBlue,
	"magenta": ansi.ColorMagenta,
	"cyan":    ansi.ColorCyan,
	"white":   ansi.ColorWhite,
}

// Parse lowers source into a Block node holding one child per line/
// block-level construct. The caller attaches the result to a Document
// or to another Block.
func Parse(source string) *document.Node {
	root := document.NewBlock()
	lines := strings.Split(source, "\n")

	var currentList *document.Node
	var inCode bool
	var codeLang string
	var codeBuf strings.Builder

	flushList := func() { currentList = nil }

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if m := codeFenceRe.FindStringSubmatch(trimmed); m != nil {
			if inCode {
				appendCodeBlock(root, codeLang, codeBuf.String())
				codeBuf.Reset()
				inCode = false
				codeLang = ""
			} else {
				inCode = true
				codeLang = strings.TrimSpace(m[1])
			}
			continue
		}
		if inCode {
			codeBuf.WriteString(line)
			codeBuf.WriteString("\n")
			continue
		}

		if m := listRe.FindStringSubmatch(line); m != nil {
			if currentList == nil {
				currentList = document.NewBlock()
				root.Attach(currentList, -1)
			}
			item := document.NewBlock()
			item.AttachAll(parseInline("• "+m[3]), -1)
			item.Attach(document.NewNewline(), -1)
			currentList.Attach(item, -1)
			continue
		}
		flushList()

		if m := headerRe.FindStringSubmatch(line); m != nil {
			level := len(m[1])
			appendHeader(root, level, m[2])
			continue
		}

		if hrRe.MatchString(trimmed) {
			appendHR(root)
			continue
		}

		if m := quoteRe.FindStringSubmatch(line); m != nil {
			appendQuote(root, m[1])
			continue
		}

		if trimmed == "" {
			root.Attach(document.NewNewline(), -1)
			continue
		}

		para := document.NewBlock()
		para.AttachAll(parseInline(line), -1)
		para.Attach(document.NewNewline(), -1)
		root.Attach(para, -1)
	}

	if inCode {
		appendCodeBlock(root, codeLang, codeBuf.String())
	}

	return root
}

func appendHeader(root *document.Node, level int, content string) {
	style := document.NewStyle()
	bright := level <= 2
	style.SetColor(colorPtr(ansi.ColorWhite))
	style.SetBright(bright)
	style.AttachAll(parseInline(content), -1)
	root.Attach(style, -1)
	root.Attach(document.NewNewline(), -1)
}

func appendHR(root *document.Node) {
	root.Attach(document.NewText(strings.Repeat("-", 40)), -1)
	root.Attach(document.NewNewline(), -1)
}

func appendQuote(root *document.Node, content string) {
	style := document.NewStyle()
	style.SetColor(colorPtr(ansi.ColorBlack))
	style.SetBright(true)
	quoted := document.NewBlock()
	quoted.Attach(document.NewText("│ "), -1)
	quoted.AttachAll(parseInline(content), -1)
	style.Attach(quoted, -1)
	root.Attach(style, -1)
	root.Attach(document.NewNewline(), -1)
}

func appendCodeBlock(root *document.Node, lang, code string) {
	code = strings.TrimSuffix(code, "\n")
	block := document.NewBlock()
	attachLines := func(parent *document.Node, text string) {
		for i, line := range strings.Split(text, "\n") {
			if i > 0 {
				parent.Attach(document.NewNewline(), -1)
			}
			if line != "" {
				parent.Attach(document.NewText(line), -1)
			}
		}
	}
	for _, span := range highlight.Highlight(code, lang) {
		if span.Color == nil {
			attachLines(block, span.Text)
			continue
		}
		style := document.NewStyle()
		style.SetColor(span.Color)
		style.SetBright(span.Bright)
		attachLines(style, span.Text)
		block.Attach(style, -1)
	}
	root.Attach(block, -1)
	root.Attach(document.NewNewline(), -1)
}

func colorPtr(c ansi.Color) *ansi.Color { return &c }

// parseInline scans text for **bold** and #color(...)/!#color(...)
// tokens, returning a flat list of Text and Style nodes to attach in
// order.
func parseInline(text string) []*document.Node {
	var nodes []*document.Node
	lastIndex := 0

	for _, match := range inlineTokenRe.FindAllStringIndex(text, -1) {
		start, end := match[0], match[1]
		if start > lastIndex {
			nodes = append(nodes, document.NewText(text[lastIndex:start]))
		}
		token := text[start:end]
		nodes = append(nodes, lowerInlineToken(token))
		lastIndex = end
	}

	if lastIndex < len(text) {
		nodes = append(nodes, document.NewText(text[lastIndex:]))
	}
	return nodes
}

func lowerInlineToken(token string) *document.Node {
	switch {
	case strings.HasPrefix(token, "**"):
		content := token[2 : len(token)-2]
		style := document.NewStyle()
		style.SetBright(true)
		style.AttachAll(parseInline(content), -1)
		return style
	case strings.HasPrefix(token, "!#"):
		return lowerColorToken(token[1:], true)
	case strings.HasPrefix(token, "#"):
		return lowerColorToken(token, false)
	default:
		return document.NewText(token)
	}
}

func lowerColorToken(token string, isBg bool) *document.Node {
	startParen := strings.Index(token, "(")
	endParen := strings.LastIndex(token, ")")
	if startParen < 0 || endParen <= startParen {
		return document.NewText(token)
	}
	name := token[1:startParen]
	content := token[startParen+1 : endParen]

	style := document.NewStyle()
	color, ok := colorByName[name]
	if !ok {
		color = ansi.ColorDefault
	}
	if isBg {
		style.SetBgColor(&color)
	} else {
		style.SetColor(&color)
	}
	style.AttachAll(parseInline(content), -1)
	return style
}

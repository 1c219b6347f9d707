//go:build chroma

package highlight

import (
	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/lexers"

	"termdoc/ansi"
)

// Highlight tokenizes code as lang using chroma and maps each token's
// category to one of the engine's 8 ANSI colors. Chroma's own style
// themes carry full RGB, which the screen/ansi packages have no way to
// represent, so the mapping goes by token category instead of trying
// to approximate an RGB palette down to 16 colors.
func Highlight(code, lang string) []Span {
	var lexer chroma.Lexer
	if lang != "" {
		lexer = lexers.Get(lang)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return []Span{{Text: code}}
	}

	var spans []Span
	for _, token := range iterator.Tokens() {
		spans = append(spans, Span{Text: token.Value, Color: colorFor(token.Type), Bright: brightFor(token.Type)})
	}
	return spans
}

func colorFor(t chroma.TokenType) *ansi.Color {
	var c ansi.Color
	switch t.Category() {
	case chroma.Keyword:
		c = ansi.ColorMagenta
	case chroma.Name:
		c = ansi.ColorWhite
	case chroma.LiteralString:
		c = ansi.ColorGreen
	case chroma.LiteralNumber:
		c = ansi.ColorCyan
	case chroma.Comment:
		c = ansi.ColorBlack
	case chroma.Operator, chroma.Punctuation:
		c = ansi.ColorWhite
	default:
		return nil
	}
	return &c
}

func brightFor(t chroma.TokenType) bool {
	return t.Category() == chroma.Comment
}

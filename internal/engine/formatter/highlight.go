package formatter

import (
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const highlightStyle = "monokai"

// Highlight writes a change set to w. With color it is tokenised as a unified diff
// and rendered with 256-color escapes; otherwise it is written verbatim.
func Highlight(w io.Writer, text string, color bool) error {
	if !color || text == "" {
		_, err := io.WriteString(w, text)
		return err
	}

	lexer := lexers.Get("diff")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	style := styles.Get(highlightStyle)
	if style == nil {
		style = styles.Fallback
	}
	terminal := formatters.Get("terminal256")
	if terminal == nil {
		terminal = formatters.Fallback
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, text)
	if err != nil {
		return err
	}
	return terminal.Format(w, style, iterator)
}

package diff

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/termenv"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "monokai"

// Renderer highlights unified diffs for terminal output.
type Renderer struct {
	lexer     chroma.Lexer
	formatter chroma.Formatter
	style     *chroma.Style
}

// RendererOpt configures a [Renderer].
type RendererOpt func(*Renderer)

// WithStyle selects a chroma style by name. Unknown names fall back to
// chroma's default style.
func WithStyle(name string) RendererOpt {
	return func(r *Renderer) {
		r.style = styles.Get(name)
	}
}

// NewRenderer creates a [Renderer] for the given color profile. Profiles
// without color support get a formatter that writes the diff unchanged.
func NewRenderer(profile termenv.Profile, opts ...RendererOpt) *Renderer {
	formatterName := "noop"
	switch profile {
	case termenv.TrueColor:
		formatterName = "terminal16m"

	case termenv.ANSI256:
		formatterName = "terminal256"

	case termenv.ANSI:
		formatterName = "terminal8"

	case termenv.Ascii:
	}

	r := &Renderer{
		lexer:     chroma.Coalesce(lexers.Get("diff")),
		formatter: formatters.Get(formatterName),
		style:     styles.Get(DefaultStyle),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Render writes the highlighted diff to w.
func (r *Renderer) Render(w io.Writer, unified string) error {
	iterator, err := r.lexer.Tokenise(nil, unified)
	if err != nil {
		return fmt.Errorf("lexer tokenize: %w", err)
	}

	err = r.formatter.Format(w, r.style, iterator)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}

	return nil
}

package highlight

import (
	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// DefaultAliases maps language tags commonly found in blog posts
// to the Chroma lexers that handle them.
// Tags Chroma already knows about need not be listed here.
var DefaultAliases = map[string]string{
	"njk":      "django",
	"nunjucks": "django",
	"liquid":   "django",
	"conf":     "ini",
}

// Lexer analyzes source code and generates a stream of tokens.
type Lexer interface {
	Lex(src string) ([]chroma.Token, error)
}

// LookupLexer returns a Lexer for the Chroma lexer with the given name
// or alias, or false if Chroma doesn't know about it.
func LookupLexer(name string) (Lexer, bool) {
	l := lexers.Get(name)
	if l == nil {
		return nil, false
	}
	return &chromaLexer{l: chroma.Coalesce(l)}, true
}

// chromaLexer builds a [Lexer] from a Chroma lexer.
type chromaLexer struct{ l chroma.Lexer }

// Lex lexically analyzes the given source code using Chroma.
//
// Chroma's lexers are regular-expression driven
// and may panic on pathological input.
// Such panics are reported as errors.
func (cl *chromaLexer) Lex(src string) (_ []chroma.Token, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errtrace.Errorf("%v lexer panicked: %v", cl.l.Config().Name, r)
		}
	}()

	tokens, err := chroma.Tokenise(cl.l, nil, src)
	return tokens, errtrace.Wrap(err)
}

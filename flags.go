package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"
	"github.com/peterbourgon/ff/v3"
	"go.abhg.dev/snippet/internal/flagvalue"
	"go.abhg.dev/snippet/internal/highlight"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// _envPrefix is the prefix for environment variables
// that may be used in place of flags.
const _envPrefix = "SNIPPET"

// params holds all arguments for snippet.
type params struct {
	version bool
	help    Help
	config  string

	Debug flagvalue.FileSwitch

	OutputDir string
	Exclude   []flagvalue.Glob
	Jobs      int

	Style   string
	CSSFile string
	Inline  bool
	Aliases []languageAlias

	Paths []string
}

// cliParser parses the command line arguments for snippet.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("snippet", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		DefaultHelp.Write(cmd.Stderr)
	}

	var p params

	// Filesystem:
	flag.StringVar(&p.OutputDir, "out", "_site", "")
	flag.Var(flagvalue.ListOf(&p.Exclude), "exclude", "")
	flag.IntVar(&p.Jobs, "jobs", 4, "")

	// HTML output:
	flag.StringVar(&p.Style, "style", highlight.PlainStyle.Name, "")
	flag.StringVar(&p.CSSFile, "css", "", "")
	flag.BoolVar(&p.Inline, "inline", false, "")
	flag.Var(flagvalue.ListOf(&p.Aliases), "alias", "")

	// Program-level:
	flag.StringVar(&p.config, "config", "", "")
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, flag := cmd.newFlagSet()
	err := ff.Parse(flag, args,
		ff.WithEnvVarPrefix(_envPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		if !errors.Is(err, errHelp) {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errtrace.Wrap(err)
	}
	args = flag.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "snippet", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		if _, ok := _helpTopics[Help(args[0])]; ok {
			p.help = Help(args[0])
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	if _, ok := highlight.LookupStyle(p.Style); !ok {
		fmt.Fprintf(cmd.Stderr, "Unknown style %q. Valid styles are:\n", p.Style)
		fmt.Fprintf(cmd.Stderr, "  %v\n", strings.Join(highlight.StyleNames(), ", "))
		return nil, errInvalidArguments
	}

	if p.Jobs < 1 {
		fmt.Fprintf(cmd.Stderr, "-jobs must be at least 1, got %d.\n", p.Jobs)
		return nil, errInvalidArguments
	}

	p.Paths = args
	if len(p.Paths) == 0 {
		fmt.Fprintln(cmd.Stderr, "Please provide at least one path.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	return p, nil
}

// languageAlias is a -alias flag value of the form "tag=lexer".
type languageAlias struct {
	Tag   string
	Lexer string
}

var _ flag.Getter = (*languageAlias)(nil)

func (la *languageAlias) Get() any { return la }

func (la *languageAlias) String() string {
	return la.Tag + "=" + la.Lexer
}

func (la *languageAlias) Set(s string) error {
	tag, lexer, ok := strings.Cut(s, "=")
	if !ok || len(tag) == 0 || len(lexer) == 0 {
		return errtrace.Errorf("expected form 'tag=lexer'")
	}
	if _, ok := highlight.LookupLexer(lexer); !ok {
		return errtrace.Errorf("unknown lexer %q", lexer)
	}

	la.Tag = tag
	la.Lexer = lexer
	return nil
}

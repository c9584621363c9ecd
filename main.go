// snippet converts Markdown to HTML,
// rendering fenced code blocks with per-line markup
// and optional line highlighting.
package main

import (
	"bytes"
	"errors"
	"io"
	"log"
	"maps"
	"os"

	"braces.dev/errtrace"
	"github.com/natefinch/atomic"
	"go.abhg.dev/snippet/internal/codeblock"
	"go.abhg.dev/snippet/internal/errdefer"
	"go.abhg.dev/snippet/internal/highlight"
	"go.abhg.dev/snippet/internal/markdown"
)

func main() {
	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, errHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("snippet: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	debugw, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, debugw)

	style, _ := highlight.LookupStyle(opts.Style) // validated by cliParser
	aliases := maps.Clone(highlight.DefaultAliases)
	for _, a := range opts.Aliases {
		aliases[a.Tag] = a.Lexer
	}

	highlighter := &highlight.Chroma{
		Style:      style,
		UseClasses: !opts.Inline,
		Aliases:    aliases,
	}

	if len(opts.CSSFile) > 0 {
		var css bytes.Buffer
		if err := highlighter.WriteCSS(&css); err != nil {
			return errtrace.Wrap(err)
		}
		if err := atomic.WriteFile(opts.CSSFile, &css); err != nil {
			return errtrace.Wrap(err)
		}
	}

	converter := Converter{
		Log: log.New(debugw, "", 0),
		Markdown: markdown.NewConverter(&codeblock.Renderer{
			Highlighter: highlighter,
			Logger:      cmd.log,
		}),
		OutDir:  opts.OutputDir,
		Exclude: opts.Exclude,
		Jobs:    opts.Jobs,
	}
	return errtrace.Wrap(converter.Run(opts.Paths))
}

package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/snippet/internal/iotest"
)

func TestCLIParser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string
		want params
	}{
		{
			desc: "minimal",
			give: []string{"posts"},
			want: params{
				OutputDir: "_site",
				Jobs:      4,
				Style:     "plain",
				Paths:     []string{"posts"},
			},
		},
		{
			desc: "many arguments",
			give: []string{
				"-out", "build/site",
				"-jobs", "2",
				"-style", "monokai",
				"-css=build/site/chroma.css",
				"-inline",
				"-alias", "njk=html",
				"-alias=tmpl=go",
				"-debug=log.txt",
				"about.md",
				"posts",
			},
			want: params{
				Debug:     "log.txt",
				OutputDir: "build/site",
				Jobs:      2,
				Style:     "monokai",
				CSSFile:   "build/site/chroma.css",
				Inline:    true,
				Aliases: []languageAlias{
					{Tag: "njk", Lexer: "html"},
					{Tag: "tmpl", Lexer: "go"},
				},
				Paths: []string{"about.md", "posts"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, err := (&cliParser{
				Stdout: iotest.Writer(t),
				Stderr: iotest.Writer(t),
			}).Parse(tt.give)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}

	t.Run("exclude", func(t *testing.T) {
		t.Parallel()

		got, err := (&cliParser{
			Stdout: iotest.Writer(t),
			Stderr: iotest.Writer(t),
		}).Parse([]string{
			"-exclude", "drafts/**",
			"-exclude=**/README.md",
			"posts",
		})
		require.NoError(t, err)

		require.Len(t, got.Exclude, 2)
		assert.Equal(t, "drafts/**", got.Exclude[0].String())
		assert.Equal(t, "**/README.md", got.Exclude[1].String())
		assert.True(t, got.Exclude[0].Match("drafts/foo.md"))
		assert.True(t, got.Exclude[1].Match("posts/README.md"))
	})

	t.Run("config file", func(t *testing.T) {
		t.Parallel()

		config := filepath.Join(t.TempDir(), "snippet.conf")
		require.NoError(t, os.WriteFile(config, []byte(
			"# site settings\n"+
				"out build/site\n"+
				"style monokai\n"+
				"exclude drafts/**\n"+
				"exclude *.txt\n",
		), 0o644))

		got, err := (&cliParser{
			Stdout: iotest.Writer(t),
			Stderr: iotest.Writer(t),
		}).Parse([]string{"-config", config, "-out", "dist", "posts"})
		require.NoError(t, err)

		assert.Equal(t, "dist", got.OutputDir, "command line should win")
		assert.Equal(t, "monokai", got.Style)
		require.Len(t, got.Exclude, 2)
		assert.Equal(t, "drafts/**", got.Exclude[0].String())
		assert.Equal(t, "*.txt", got.Exclude[1].String())
		assert.Equal(t, []string{"posts"}, got.Paths)
	})
}

// Can't be parallel: modifies the environment.
func TestCLIParser_env(t *testing.T) {
	t.Setenv("SNIPPET_STYLE", "monokai")
	t.Setenv("SNIPPET_JOBS", "8")

	got, err := (&cliParser{
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Parse([]string{"-jobs", "3", "posts"})
	require.NoError(t, err)

	assert.Equal(t, "monokai", got.Style)
	assert.Equal(t, 3, got.Jobs, "command line should win")
}

func TestCLIParser_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string
		want string // expected messages
	}{
		{
			desc: "no paths",
			want: "Please provide at least one path",
		},
		{
			desc: "unrecognized",
			give: []string{"-foo=bar", "posts"},
			want: "flag provided but not defined: -foo",
		},
		{
			desc: "unknown style",
			give: []string{"-style", "not-a-style", "posts"},
			want: `Unknown style "not-a-style"`,
		},
		{
			desc: "no jobs",
			give: []string{"-jobs", "0", "posts"},
			want: "-jobs must be at least 1",
		},
		{
			desc: "bad alias",
			give: []string{"-alias", "njk", "posts"},
			want: "expected form 'tag=lexer'",
		},
		{
			desc: "alias to unknown lexer",
			give: []string{"-alias", "njk=not-a-lexer", "posts"},
			want: `unknown lexer "not-a-lexer"`,
		},
		{
			desc: "bad exclude",
			give: []string{"-exclude", "[drafts", "posts"},
			want: `bad glob "[drafts"`,
		},
		{
			desc: "missing config file",
			give: []string{"-config", "does-not-exist.conf", "posts"},
			want: "does-not-exist.conf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var stderr bytes.Buffer
			_, err := (&cliParser{
				Stdout: iotest.Writer(t),
				Stderr: &stderr,
			}).Parse(tt.give)
			require.Error(t, err)
			assert.Contains(t, stderr.String(), tt.want)
		})
	}
}

func TestCLIParser_help(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string
		want string
	}{
		{desc: "short", give: []string{"-h"}, want: "USAGE: snippet"},
		{desc: "long", give: []string{"-help"}, want: "USAGE: snippet"},
		{desc: "topic", give: []string{"-help=highlight"}, want: "lines=2,4-6"},
		{desc: "topic argument", give: []string{"-h", "config"}, want: "SNIPPET_"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var stderr bytes.Buffer
			_, err := (&cliParser{
				Stdout: iotest.Writer(t),
				Stderr: &stderr,
			}).Parse(tt.give)
			assert.ErrorIs(t, err, flag.ErrHelp)
			assert.Contains(t, stderr.String(), tt.want)
		})
	}
}

func TestLanguageAlias(t *testing.T) {
	t.Parallel()

	fset := flag.NewFlagSet(t.Name(), flag.ContinueOnError)
	fset.SetOutput(iotest.Writer(t))

	var la languageAlias
	fset.Var(&la, "x", "")
	require.NoError(t, fset.Parse([]string{
		"-x", "njk=django",
	}))

	assert.Equal(t, "njk", la.Tag)
	assert.Equal(t, "django", la.Lexer)
	assert.NotNil(t, la.Get(), "Get")
	assert.Equal(t, "njk=django", la.String())
}

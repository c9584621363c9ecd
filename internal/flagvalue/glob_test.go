package flagvalue

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlob(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{pattern: "*.md", path: "foo.md", want: true},
		{pattern: "*.md", path: "posts/foo.md", want: false},
		{pattern: "**.md", path: "posts/foo.md", want: true},
		{pattern: "drafts/**", path: "drafts/2024/foo.md", want: true},
		{pattern: "drafts/**", path: "posts/foo.md", want: false},
		{pattern: "{README,LICENSE}.md", path: "README.md", want: true},
		{pattern: "_*", path: "_includes", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.path, func(t *testing.T) {
			t.Parallel()

			var g Glob
			require.NoError(t, g.Set(tt.pattern))
			assert.Equal(t, tt.pattern, g.String())
			assert.Equal(t, tt.want, g.Match(tt.path))
		})
	}
}

func TestGlob_zero(t *testing.T) {
	t.Parallel()

	var g Glob
	assert.False(t, g.Match("foo.md"))
	assert.Empty(t, g.String())
}

func TestGlob_list(t *testing.T) {
	t.Parallel()

	fset := flag.NewFlagSet(t.Name(), flag.ContinueOnError)
	fset.SetOutput(io.Discard)

	var globs []Glob
	fset.Var(ListOf(&globs), "exclude", "")
	require.NoError(t, fset.Parse([]string{
		"-exclude", "drafts/**",
		"-exclude=*.txt",
	}))

	require.Len(t, globs, 2)
	assert.True(t, globs[0].Match("drafts/foo.md"))
	assert.True(t, globs[1].Match("notes.txt"))
	assert.Equal(t, "drafts/**; *.txt", fset.Lookup("exclude").Value.String())
}

func TestGlob_error(t *testing.T) {
	t.Parallel()

	var g Glob
	err := g.Set("[unterminated")
	assert.ErrorContains(t, err, `bad glob "[unterminated"`)
	assert.False(t, g.Match("[unterminated"))
}

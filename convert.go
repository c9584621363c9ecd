package main

import (
	"bytes"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"braces.dev/errtrace"
	"github.com/natefinch/atomic"
	"go.abhg.dev/snippet/internal/flagvalue"
	"go.abhg.dev/snippet/internal/markdown"
	"golang.org/x/sync/errgroup"
)

// Markdown converts a Markdown document to HTML.
type Markdown interface {
	Convert(src []byte) ([]byte, error)
}

var _ Markdown = (*markdown.Converter)(nil)

// _markdownExts lists the extensions of files considered Markdown
// when searching a directory.
var _markdownExts = map[string]struct{}{
	".md":       {},
	".markdown": {},
}

// SourceFile is a Markdown file to convert.
type SourceFile struct {
	// FS holds the file.
	FS fs.FS

	// Path is the slash-separated path of the file inside FS.
	// The output file is placed at the same path inside the output directory,
	// with the extension changed to .html.
	Path string
}

// Converter converts Markdown files to HTML fragments.
//
// In terms of code organization,
// Converter's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Converter struct {
	Log      *log.Logger // required
	Markdown Markdown    // required
	OutDir   string      // required

	// Exclude lists patterns for files to skip
	// when searching directories.
	Exclude []flagvalue.Glob

	// Jobs is the maximum number of files converted at once.
	// Defaults to 1.
	Jobs int
}

// Run converts the Markdown files at the given paths.
// Directories are searched recursively for Markdown files.
func (c *Converter) Run(paths []string) error {
	var files []SourceFile
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return errtrace.Wrap(err)
		}

		if !info.IsDir() {
			files = append(files, SourceFile{
				FS:   os.DirFS(filepath.Dir(p)),
				Path: filepath.Base(p),
			})
			continue
		}

		fsys := os.DirFS(p)
		found, err := c.FindFiles(fsys)
		if err != nil {
			return errtrace.Wrap(err)
		}
		c.Log.Printf("Found %d files in %v", len(found), p)
		for _, name := range found {
			files = append(files, SourceFile{FS: fsys, Path: name})
		}
	}

	return errtrace.Wrap(c.ConvertFiles(files))
}

// FindFiles returns the paths of Markdown files in fsys,
// skipping those that match any of the Exclude patterns.
// Directories that match an Exclude pattern are not searched.
func (c *Converter) FindFiles(fsys fs.FS) ([]string, error) {
	var files []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == "." {
			return nil
		}

		if c.excluded(p) {
			c.Log.Printf("Skipping %v", p)
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		if _, ok := _markdownExts[strings.ToLower(path.Ext(p))]; ok {
			files = append(files, p)
		}
		return nil
	})
	return files, errtrace.Wrap(err)
}

func (c *Converter) excluded(p string) bool {
	for i := range c.Exclude {
		if c.Exclude[i].Match(p) {
			return true
		}
	}
	return false
}

// ConvertFiles converts the given files,
// up to Jobs of them at a time.
// It stops at the first failure.
func (c *Converter) ConvertFiles(files []SourceFile) error {
	var g errgroup.Group
	g.SetLimit(max(c.Jobs, 1))
	for _, f := range files {
		g.Go(func() error {
			return c.convertFile(f)
		})
	}
	return errtrace.Wrap(g.Wait())
}

func (c *Converter) convertFile(f SourceFile) error {
	src, err := fs.ReadFile(f.FS, f.Path)
	if err != nil {
		return errtrace.Wrap(err)
	}

	out, err := c.Markdown.Convert(src)
	if err != nil {
		return errtrace.Errorf("convert %v: %w", f.Path, err)
	}

	dst := filepath.Join(c.OutDir, filepath.FromSlash(outputPath(f.Path)))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return errtrace.Wrap(err)
	}
	if err := atomic.WriteFile(dst, bytes.NewReader(out)); err != nil {
		return errtrace.Wrap(err)
	}

	c.Log.Printf("Wrote %v", dst)
	return nil
}

// outputPath returns the path of the HTML file for a Markdown file.
func outputPath(p string) string {
	return strings.TrimSuffix(p, path.Ext(p)) + ".html"
}

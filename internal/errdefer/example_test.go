package errdefer_test

import (
	"fmt"
	"os"
	"path/filepath"

	"go.abhg.dev/snippet/internal/errdefer"
)

func writeNote(name, note string) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer errdefer.Close(&err, f)
	// NOTE: err must be a named return.

	_, err = fmt.Fprintln(f, note)
	return err
}

func ExampleClose() {
	dir, err := os.MkdirTemp("", "errdefer")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	if err := writeNote(filepath.Join(dir, "note.txt"), "hello"); err != nil {
		panic(err)
	}
}

package flagvalue

import (
	"flag"
	"io"
	"os"

	"braces.dev/errtrace"
)

// FileSwitch is a flag that accepts both "-x" and "-x=path".
// With a path, output goes to that file.
// Without one, output goes to a fallback writer.
type FileSwitch string

var _ flag.Getter = (*FileSwitch)(nil)

// Get returns the path given to the flag,
// "-" if the flag was passed without a path,
// or "" if it wasn't passed at all.
func (fs *FileSwitch) Get() any { return string(*fs) }

// String returns the same value as Get.
func (fs *FileSwitch) String() string {
	return string(*fs)
}

// IsBoolFlag marks this as a flag
// that doesn't require a value.
func (*FileSwitch) IsBoolFlag() bool {
	return true
}

// Set receives the value for this flag.
func (fs *FileSwitch) Set(v string) error {
	switch v {
	case "true":
		v = "-"
	case "false":
		v = ""
	}
	*fs = FileSwitch(v)
	return nil
}

// Bool reports whether this flag was set with any value.
func (fs *FileSwitch) Bool() bool {
	return len(*fs) > 0
}

// Create opens the destination selected by this flag.
// The caller must close the returned writer when done with it.
//
//   - flag not passed: output is discarded
//   - flag passed without a path: output goes to fallback,
//     which is not closed
//   - flag passed with a path: the file is created
func (fs *FileSwitch) Create(fallback io.Writer) (io.WriteCloser, error) {
	switch *fs {
	case "":
		return nopCloser{io.Discard}, nil
	case "-":
		return nopCloser{fallback}, nil
	default:
		f, err := os.Create(string(*fs))
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		return f, nil
	}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

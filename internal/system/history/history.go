// Released under an MIT license. See LICENSE.

// Package history persists console history between sessions.
package history

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Load opens the history file and passes it to read. A missing history
// file is not an error.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		f.Close()

		return fmt.Errorf("reading history: %w", err)
	}

	return f.Close()
}

// Path returns the history file's location. ZEUS_HISTORY overrides the
// default of .zeus_history in the user's home directory.
func Path() (string, error) {
	if p := os.Getenv("ZEUS_HISTORY"); p != "" {
		return p, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".zeus_history"), nil
}

// Save creates the history file and passes it to write.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(os.Create)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		f.Close()

		return fmt.Errorf("writing history: %w", err)
	}

	return f.Close()
}

func file(op func(string) (*os.File, error)) (*os.File, error) {
	p, err := Path()
	if err != nil {
		return nil, err
	}

	return op(p)
}

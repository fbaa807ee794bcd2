package common

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nspcc-dev/pngme/pkg/png"
)

const defaultFilePerm = 0o644

// ReadPNG reads and decodes the PNG file.
func ReadPNG(path string) (*png.PNG, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read file: %w", err)
	}

	p, err := png.Decode(b)
	if err != nil {
		return nil, Errf("invalid PNG file %s: %w", path, err)
	}

	return p, nil
}

// WritePNG encodes p and writes it to the file. Existing file is replaced
// atomically and keeps its permissions.
func WritePNG(path string, p *png.PNG) error {
	perm := fs.FileMode(defaultFilePerm)

	fi, err := os.Stat(path)
	switch {
	case err == nil:
		perm = fi.Mode().Perm()
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("could not stat file: %w", err)
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	f, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary file: %w", err)
	}

	tmp := f.Name()

	err = writeAndClose(f, p.Marshal(), perm)
	if err == nil {
		err = os.Rename(tmp, path)
	}

	if err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("could not write file: %w", err)
	}

	return nil
}

func writeAndClose(f *os.File, data []byte, perm fs.FileMode) error {
	_, err := f.Write(data)
	if err == nil {
		err = f.Chmod(perm)
	}
	if err == nil {
		err = f.Sync()
	}

	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	return err
}

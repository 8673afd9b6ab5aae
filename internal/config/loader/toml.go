package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// TOMLLoader loads configuration from TOML files. Unknown keys are
// rejected so that typos do not silently fall back to defaults.
type TOMLLoader struct {
	fs FileSystem
}

// NewTOMLLoader creates a TOML loader reading from the OS file system.
func NewTOMLLoader() *TOMLLoader {
	return NewTOMLLoaderWithFS(DefaultFS())
}

// NewTOMLLoaderWithFS creates a TOML loader with a custom file system.
func NewTOMLLoaderWithFS(fs FileSystem) *TOMLLoader {
	return &TOMLLoader{fs: fs}
}

// LoadInto implements FileLoader.
func (l *TOMLLoader) LoadInto(path string, target any) (bool, error) {
	data, found, err := readFile(l.fs, path)
	if err != nil || !found {
		return false, err
	}
	return true, l.decode(path, bytes.NewReader(data), target)
}

// DecodeReader implements FileLoader.
func (l *TOMLLoader) DecodeReader(r io.Reader, target any) error {
	return l.decode("<reader>", r, target)
}

func (l *TOMLLoader) decode(source string, r io.Reader, target any) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}

		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			perr.Message = fmt.Sprintf("unknown key: %s", serr.String())
		}
		return perr
	}
	return nil
}

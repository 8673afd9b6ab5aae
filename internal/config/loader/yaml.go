package loader

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLLoader loads configuration from YAML files. Unknown keys are
// rejected.
type YAMLLoader struct {
	fs FileSystem
}

// NewYAMLLoader creates a YAML loader reading from the OS file system.
func NewYAMLLoader() *YAMLLoader {
	return NewYAMLLoaderWithFS(DefaultFS())
}

// NewYAMLLoaderWithFS creates a YAML loader with a custom file system.
func NewYAMLLoaderWithFS(fs FileSystem) *YAMLLoader {
	return &YAMLLoader{fs: fs}
}

// LoadInto implements FileLoader.
func (l *YAMLLoader) LoadInto(path string, target any) (bool, error) {
	data, found, err := readFile(l.fs, path)
	if err != nil || !found {
		return false, err
	}
	return true, l.decode(path, bytes.NewReader(data), target)
}

// DecodeReader implements FileLoader.
func (l *YAMLLoader) DecodeReader(r io.Reader, target any) error {
	return l.decode("<reader>", r, target)
}

func (l *YAMLLoader) decode(source string, r io.Reader, target any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil {
		// An empty document leaves target as it was.
		if errors.Is(err, io.EOF) {
			return nil
		}
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}
		var terr *yaml.TypeError
		if errors.As(err, &terr) && len(terr.Errors) > 0 {
			perr.Message = terr.Errors[0]
		}
		return perr
	}
	return nil
}

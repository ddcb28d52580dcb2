// Package fileio loads and saves documents for the editor.
//
// The buffer only ever sees '\n' line breaks and no trailing newline; the
// Document records how the file looked on disk so Save can write it back
// the same way.
package fileio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrNotFound         = errors.New("file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrIO               = errors.New("i/o error")
)

// LineEnding is the line terminator used on disk.
type LineEnding uint8

const (
	LF LineEnding = iota
	CRLF
)

func (e LineEnding) String() string {
	if e == CRLF {
		return "crlf"
	}
	return "lf"
}

func (e LineEnding) sep() string {
	if e == CRLF {
		return "\r\n"
	}
	return "\n"
}

// DefaultPerm is used for files that do not exist yet.
const DefaultPerm fs.FileMode = 0o644

// Document is a loaded file.
type Document struct {
	Path string
	// Text is the content with '\n' line breaks and without the final
	// newline.
	Text            string
	LineEnding      LineEnding
	TrailingNewline bool
	Perm            fs.FileMode
}

// Load reads path. Errors match ErrNotFound, ErrPermissionDenied or ErrIO
// and wrap the underlying *fs.PathError.
func Load(path string) (Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Document{}, classify(err)
	}
	if info.IsDir() {
		return Document{}, fmt.Errorf("%w: %s is a directory", ErrIO, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, classify(err)
	}

	doc := Document{Path: path, Perm: info.Mode().Perm()}
	text := string(data)
	if strings.Contains(text, "\r\n") {
		doc.LineEnding = CRLF
		text = strings.ReplaceAll(text, "\r\n", "\n")
	}
	if strings.HasSuffix(text, "\n") {
		doc.TrailingNewline = true
		text = strings.TrimSuffix(text, "\n")
	}
	doc.Text = text
	return doc, nil
}

// Store writes buffer text back in a document's on-disk format. It
// satisfies session.Storage.
type Store struct {
	LineEnding      LineEnding
	TrailingNewline bool
	Perm            fs.FileMode
}

// StoreFor returns a Store that preserves doc's format.
func StoreFor(doc Document) *Store {
	return &Store{LineEnding: doc.LineEnding, TrailingNewline: doc.TrailingNewline, Perm: doc.Perm}
}

// Encode converts buffer text to file content.
func (s *Store) Encode(text string) []byte {
	if s.TrailingNewline {
		text += "\n"
	}
	if s.LineEnding == CRLF {
		text = strings.ReplaceAll(text, "\n", "\r\n")
	}
	return []byte(text)
}

// Save writes text to path through a temporary file in the same directory,
// so a failed write never truncates the original. A symlinked path is
// resolved first; the link stays and its target is replaced.
func (s *Store) Save(path, text string) error {
	if path == "" {
		return fmt.Errorf("%w: no file name", ErrIO)
	}
	if target, err := filepath.EvalSymlinks(path); err == nil {
		path = target
	}

	perm := s.Perm
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if perm == 0 {
		perm = DefaultPerm
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return classify(err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(s.Encode(text)); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return classify(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return classify(err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return classify(err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return classify(err)
	}
	return nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	default:
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
}

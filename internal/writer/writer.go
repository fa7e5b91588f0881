// Package writer stores schema documents in an output directory.
package writer

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/gosimple/slug"
	"github.com/spf13/afero"
)

// Fallback names documents whose title is empty or unusable.
const Fallback = "UnknownSchema"

var reservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// Sanitize turns a page title into a file name stem. Path separators,
// characters reserved on common filesystems and control characters become
// underscores; leading dots and trailing dots or spaces are dropped.
func Sanitize(title string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case strings.ContainsRune(`/\:*?"<>|`, r):
			return '_'
		case unicode.IsControl(r):
			return '_'
		}
		return r
	}, strings.TrimSpace(title))

	name = strings.TrimLeft(name, ".")
	name = strings.TrimRight(name, ". ")
	if name == "" || strings.Trim(name, "_") == "" {
		return Fallback
	}
	if reservedNames[strings.ToUpper(name)] {
		return "_" + name
	}
	return name
}

// Writer writes documents to a filesystem.
type Writer struct {
	fs   afero.Fs
	slug bool
}

// Option configures a Writer.
type Option func(*Writer)

// WithSlug names files after the slug of the title instead of the title.
func WithSlug() Option {
	return func(w *Writer) { w.slug = true }
}

func New(fs afero.Fs, opts ...Option) *Writer {
	w := &Writer{fs: fs}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// FileName returns the file name used for a document titled title.
func (w *Writer) FileName(title, ext string) string {
	stem := Sanitize(title)
	if w.slug && stem != Fallback {
		if s := slug.Make(stem); s != "" {
			stem = s
		}
	}
	return stem + ext
}

// Write stores data in dir under the name derived from title, creating dir
// when needed, and returns the written path.
func (w *Writer) Write(dir, title, ext string, data []byte) (string, error) {
	if err := w.fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, w.FileName(title, ext))
	if err := afero.WriteFile(w.fs, path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write to file: %w", err)
	}
	return path, nil
}

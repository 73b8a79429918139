// Package plistio writes country holiday files as property lists.
package plistio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"howett.net/plist"

	"holidaygen/internal/models"
)

// Output formats.
const (
	FormatXML    = "xml"
	FormatBinary = "binary"
)

// DefaultFilePattern names a country's file from its lower-case code.
const DefaultFilePattern = "holidays-%s.plist"

// FilePermissions is the mode of written holiday files.
const FilePermissions = 0644

// Writer errors.
var (
	ErrIO            = errors.New("holiday file I/O failed")
	ErrUnknownFormat = errors.New("unknown plist format")
)

// IOError reports a failed read or write of a holiday file.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrIO, e.Path, e.Err)
}

func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

// Writer serializes holiday files into a directory.
type Writer struct {
	dir     string
	pattern string
	format  int
}

// NewWriter creates a writer for dir. An empty pattern uses
// DefaultFilePattern; format is FormatXML or FormatBinary.
func NewWriter(dir, pattern, format string) (*Writer, error) {
	f, err := parseFormat(format)
	if err != nil {
		return nil, err
	}

	if pattern == "" {
		pattern = DefaultFilePattern
	}

	return &Writer{dir: dir, pattern: pattern, format: f}, nil
}

func parseFormat(format string) (int, error) {
	switch strings.ToLower(format) {
	case "", FormatXML:
		return plist.XMLFormat, nil
	case FormatBinary:
		return plist.BinaryFormat, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Path returns the target path for countryCode.
func (w *Writer) Path(countryCode string) string {
	return filepath.Join(w.dir, fmt.Sprintf(w.pattern, strings.ToLower(countryCode)))
}

// Encode writes file to out in the writer's format.
func (w *Writer) Encode(out io.Writer, file *models.CountryHolidayFile) error {
	enc := plist.NewEncoderForFormat(out, w.format)
	if w.format == plist.XMLFormat {
		enc.Indent("\t")
	}

	return enc.Encode(file)
}

// Write stores file for countryCode and returns the path written. The data
// goes to a temporary file in the same directory which is then renamed over
// the target, so an existing file is never left truncated.
func (w *Writer) Write(countryCode string, file *models.CountryHolidayFile) (string, error) {
	target := w.Path(countryCode)

	tmp, err := os.CreateTemp(w.dir, "."+filepath.Base(target)+".tmp-*")
	if err != nil {
		return "", &IOError{Path: target, Err: err}
	}

	tmpPath := tmp.Name()

	fail := func(err error) (string, error) {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)

		return "", &IOError{Path: target, Err: err}
	}

	if err := w.Encode(tmp, file); err != nil {
		return fail(err)
	}

	if err := tmp.Sync(); err != nil {
		return fail(err)
	}

	if err := tmp.Chmod(FilePermissions); err != nil {
		return fail(err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", &IOError{Path: target, Err: err}
	}

	if err := os.Rename(tmpPath, target); err != nil {
		_ = os.Remove(tmpPath)
		return "", &IOError{Path: target, Err: err}
	}

	return target, nil
}

// Read decodes the holiday file at path.
func Read(path string) (*models.CountryHolidayFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}

	var file models.CountryHolidayFile
	if _, err := plist.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return &file, nil
}

// Package dbfile implements the on-disk database format: a 5-byte header
// followed by a stream of delta-encoded pathname records (see
// SPEC_FULL.md §4.3 and §6).
package dbfile

import (
	"errors"
	"fmt"
	"io"
)

const magic = "fsix"

// Settings is the one-byte wire enum recorded in the header.
type Settings byte

const (
	// FileNamesOnly stores only pathnames; records carry no size field.
	FileNamesOnly Settings = 0x00
	// WithFileSizes stores a size alongside every pathname.
	WithFileSizes Settings = 0x01
)

// ErrNotADatabase is returned when the first four bytes of a file are not
// the "fsix" magic.
var ErrNotADatabase = errors.New("dbfile: not a database file")

// ErrUnsupportedFormat is returned when the settings byte is outside the
// known {0,1} range.
var ErrUnsupportedFormat = errors.New("dbfile: unsupported settings byte")

// Header is the decoded 5-byte file header.
type Header struct {
	Settings Settings
}

// WriteHeader writes the 5-byte magic+settings header to w.
func WriteHeader(w io.Writer, h Header) error {
	var buf [5]byte
	copy(buf[:4], magic)
	buf[4] = byte(h.Settings)
	_, err := w.Write(buf[:])
	return err
}

// ReadHeader reads and validates the 5-byte header from r.
func ReadHeader(r io.Reader) (Header, error) {
	var buf [5]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return Header{}, &OpenError{Err: ErrNotADatabase}
		}
		return Header{}, &OpenError{Err: err}
	}
	if string(buf[:4]) != magic {
		return Header{}, &OpenError{Err: ErrNotADatabase}
	}
	s := Settings(buf[4])
	if s != FileNamesOnly && s != WithFileSizes {
		return Header{}, &OpenError{Err: ErrUnsupportedFormat}
	}
	return Header{Settings: s}, nil
}

// OpenError wraps a failure to open or validate a database file, attaching
// the path for diagnostics.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("dbfile: open %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("dbfile: %v", e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// withPath returns a copy of err with path attached, if err is an
// *OpenError produced by ReadHeader without a path.
func withPath(err error, path string) error {
	var oe *OpenError
	if errors.As(err, &oe) {
		return &OpenError{Path: path, Err: oe.Err}
	}
	return err
}

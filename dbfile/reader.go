package dbfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/coregx/fsidx/codec"
)

// Metadata is the optional per-entry size recorded when the header settings
// is WithFileSizes. HasSize is false when the writer had no size available
// for that entry (size_plus_one == 0 on the wire).
type Metadata struct {
	Size    uint64
	HasSize bool
}

// ErrTruncatedRecord is reported when EOF or a short read occurs in the
// middle of a record rather than exactly at a record boundary.
var ErrTruncatedRecord = errors.New("dbfile: truncated record")

// Reader sequentially decodes pathname records from a database file.
type Reader struct {
	r        *bufio.Reader
	closer   io.Closer
	settings Settings
	buf      []byte // rolling pathname buffer, owned by the Reader
}

// Open opens path, validates its header, and returns a Reader positioned at
// the first record.
func Open(path string) (*Reader, Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Header{}, &OpenError{Path: path, Err: err}
	}
	br := bufio.NewReader(f)
	h, err := ReadHeader(br)
	if err != nil {
		f.Close()
		return nil, Header{}, withPath(err, path)
	}
	return &Reader{r: br, closer: f, settings: h.Settings}, h, nil
}

// NewReader wraps an already-open io.Reader (the header must already have
// been consumed via ReadHeader).
func NewReader(r io.Reader, h Header) *Reader {
	return &Reader{r: bufio.NewReader(r), settings: h.Settings}
}

// Next decodes the next record. On clean EOF at a record boundary it
// returns (nil, Metadata{}, io.EOF). The returned path slice is owned by the
// Reader and is only valid until the next call to Next.
func (r *Reader) Next() ([]byte, Metadata, error) {
	discard, err := codec.ReadUvarint(r.r)
	if err != nil {
		if err == io.EOF {
			return nil, Metadata{}, io.EOF
		}
		return nil, Metadata{}, fmt.Errorf("%w: %v", ErrTruncatedRecord, err)
	}
	sufLen, err := codec.ReadUvarint(r.r)
	if err != nil {
		return nil, Metadata{}, fmt.Errorf("%w: %v", ErrTruncatedRecord, err)
	}
	suffix := make([]byte, sufLen)
	if _, err := io.ReadFull(r.r, suffix); err != nil {
		return nil, Metadata{}, fmt.Errorf("%w: %v", ErrTruncatedRecord, err)
	}
	if uint64(len(r.buf)) < discard {
		return nil, Metadata{}, fmt.Errorf("%w: discard %d exceeds buffer length %d", ErrTruncatedRecord, discard, len(r.buf))
	}
	r.buf = codec.DeltaDecode(r.buf, int(discard), suffix)

	var meta Metadata
	if r.settings == WithFileSizes {
		sizePlusOne, err := codec.ReadUvarint(r.r)
		if err != nil {
			return nil, Metadata{}, fmt.Errorf("%w: %v", ErrTruncatedRecord, err)
		}
		if sizePlusOne > 0 {
			meta = Metadata{Size: sizePlusOne - 1, HasSize: true}
		}
	}
	return r.buf, meta, nil
}

// Close releases any resources Open acquired. It is a no-op for Readers
// created with NewReader.
func (r *Reader) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

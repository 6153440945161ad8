package dbfile

import (
	"bufio"
	"io"

	"github.com/coregx/fsidx/codec"
)

// Writer sequentially delta-encodes pathname records to an io.Writer. The
// header must be written separately with WriteHeader before the first call
// to Put.
type Writer struct {
	w        *bufio.Writer
	settings Settings
	prev     []byte
}

// NewWriter returns a Writer that will encode records according to
// settings (WithFileSizes controls whether Put's size argument is written).
func NewWriter(w io.Writer, settings Settings) *Writer {
	return &Writer{w: bufio.NewWriter(w), settings: settings}
}

// Put encodes one record for path, with an optional size (ignored unless
// the writer's settings is WithFileSizes). Entries must be supplied in
// natural order; Put does not itself validate ordering.
func (wr *Writer) Put(path []byte, meta Metadata) error {
	discard, suffix := codec.DeltaEncode(wr.prev, path)
	if err := codec.WriteUvarint(wr.w, uint64(discard)); err != nil {
		return err
	}
	if err := codec.WriteUvarint(wr.w, uint64(len(suffix))); err != nil {
		return err
	}
	if len(suffix) > 0 {
		if _, err := wr.w.Write(suffix); err != nil {
			return err
		}
	}
	if wr.settings == WithFileSizes {
		sizePlusOne := uint64(0)
		if meta.HasSize {
			sizePlusOne = meta.Size + 1
		}
		if err := codec.WriteUvarint(wr.w, sizePlusOne); err != nil {
			return err
		}
	}
	wr.prev = append(wr.prev[:0], path...)
	return nil
}

// Flush flushes any buffered data to the underlying writer.
func (wr *Writer) Flush() error {
	return wr.w.Flush()
}

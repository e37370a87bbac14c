package fsb5

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Reader is a forward-only cursor over a byte source. It tracks the
// absolute offset consumed so far and never moves backward, matching
// the single-pass layout of an FSB5 header. Wrap the source in a
// bufio.Reader when it is not already buffered.
type Reader struct {
	r   io.Reader
	pos int64
	buf [8]byte
}

// NewReader returns a cursor positioned at offset 0 of r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Position returns the absolute byte offset consumed so far.
func (r *Reader) Position() int64 {
	return r.pos
}

func (r *Reader) read(n int) ([]byte, error) {
	b := r.buf[:n]
	if _, err := io.ReadFull(r.r, b); err != nil {
		return nil, err
	}
	r.pos += int64(n)
	return b, nil
}

// Uint8 reads one byte.
func (r *Reader) Uint8() (uint8, error) {
	b, err := r.read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Uint16LE reads a little-endian 16-bit unsigned integer.
func (r *Reader) Uint16LE() (uint16, error) {
	b, err := r.read(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// Uint32LE reads a little-endian 32-bit unsigned integer.
func (r *Reader) Uint32LE() (uint32, error) {
	b, err := r.read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Uint64LE reads a little-endian 64-bit unsigned integer.
func (r *Reader) Uint64LE() (uint64, error) {
	b, err := r.read(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// Int16BE reads a big-endian 16-bit signed integer.
func (r *Reader) Int16BE() (int16, error) {
	b, err := r.read(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(b)), nil
}

// Take reads exactly n raw bytes. Spans past takeChunk are grown as
// bytes arrive, so a bogus declared length fails at the end of the
// source instead of allocating the full span up front.
func (r *Reader) Take(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("fsb5: take %d bytes", n)
	}
	if n <= takeChunk {
		b := make([]byte, n)
		m, err := io.ReadFull(r.r, b)
		r.pos += int64(m)
		if err != nil {
			return nil, err
		}
		return b, nil
	}

	var buf bytes.Buffer
	m, err := io.CopyN(&buf, r.r, int64(n))
	r.pos += m
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf.Bytes(), nil
}

const takeChunk = 64 << 10

// Skip discards exactly n bytes. The position reflects any bytes
// discarded before a short read.
func (r *Reader) Skip(n int64) error {
	if n < 0 {
		return fmt.Errorf("fsb5: skip %d bytes", n)
	}
	m, err := io.CopyN(io.Discard, r.r, n)
	r.pos += m
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

// AdvanceTo discards bytes until the cursor sits at the given absolute
// offset. It fails when the target is behind the current position or
// the source ends first.
func (r *Reader) AdvanceTo(offset int64) error {
	if offset < r.pos {
		return fmt.Errorf("fsb5: advance to offset %d: cursor already at %d", offset, r.pos)
	}
	return r.Skip(offset - r.pos)
}

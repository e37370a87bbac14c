// Package unpack loads FSB5 sound banks and writes their streams out
// as standalone audio files.
package unpack

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/zsiec/fsbank/fsb5"
)

// zstd frame magic. Banks are sometimes shipped inside a zstd frame;
// those are decompressed transparently on load.
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// Bank is a fully loaded sound bank: the parsed header plus the
// payload region its stream offsets index into.
type Bank struct {
	header  *fsb5.Header
	payload []byte
}

// Open loads and parses the bank at path.
func Open(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(data)
}

// OpenReader loads and parses a bank from r, reading it to the end.
func OpenReader(r io.Reader) (*Bank, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return New(data)
}

// New parses a bank already in memory. data is retained by the
// returned Bank.
func New(data []byte) (*Bank, error) {
	if bytes.HasPrefix(data, zstdMagic) {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		data, err = dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("unpack: decompress bank: %w", err)
		}
	}

	header, err := fsb5.Parse(fsb5.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, err
	}

	start := header.DataStart()
	if int64(len(data)) < start {
		return nil, fmt.Errorf("unpack: stream data starts at offset %d, bank is %d bytes", start, len(data))
	}
	payload := data[start:]

	// Sizes are gaps between declared offsets and the offsets are not
	// required to be ordered, so bound the payload by the furthest span.
	var need int64
	for _, s := range header.Streams {
		if end := int64(s.DataOffset) + int64(s.Size); end > need {
			need = end
		}
	}
	if int64(len(payload)) < need {
		return nil, fmt.Errorf("unpack: bank declares %d payload bytes, %d present", need, len(payload))
	}

	return &Bank{header: header, payload: payload}, nil
}

// Header returns the parsed bank header.
func (b *Bank) Header() *fsb5.Header {
	return b.header
}

// StreamData returns the encoded payload of stream i. The slice
// aliases the bank's buffer; callers must not modify it.
func (b *Bank) StreamData(i int) []byte {
	s := b.header.Streams[i]
	lo := int64(s.DataOffset)
	return b.payload[lo : lo+int64(s.Size)]
}

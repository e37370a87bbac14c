package fsb5

import (
	"bytes"
	"errors"
	"unicode/utf8"
)

// readStreamNames resolves stream names from the name table. offsets
// holds one entry per stream plus the table size as a terminal
// sentinel; each consecutive pair bounds one NUL terminated name.
func readStreamNames(r *Reader, offsets []uint32, streams []StreamInfo) error {
	for i := 0; i+1 < len(offsets); i++ {
		index := uint32(i)
		length := offsets[i+1] - offsets[i]

		raw, err := r.Take(int(length))
		if err != nil {
			return &NameError{Stream: index, Kind: NameRead, Err: err}
		}

		name, err := cutNUL(raw)
		if err != nil {
			return &NameError{Stream: index, Kind: NameTerminator, Err: err}
		}
		if !utf8.Valid(name) {
			return &NameError{Stream: index, Kind: NameEncoding}
		}

		streams[i].Name = string(name)
	}
	return nil
}

// cutNUL strips the terminating NUL from raw. The NUL must be the last
// byte and must not occur earlier.
func cutNUL(raw []byte) ([]byte, error) {
	n := bytes.IndexByte(raw, 0)
	switch {
	case n < 0:
		return nil, errNoNUL
	case n != len(raw)-1:
		return nil, errInteriorNUL
	}
	return raw[:n], nil
}

var (
	errNoNUL       = errors.New("no terminating NUL")
	errInteriorNUL = errors.New("NUL before end of name")
)

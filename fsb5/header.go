// Package fsb5 parses the header of an FSB5 sound bank: the container
// header, the packed per-stream headers with their extensible chunk
// lists, and the optional name table. Parsing is single-pass and
// forward-only, and every malformed or truncated field is reported with
// a stage-scoped error identifying the exact field, the stream or chunk
// index, and any underlying read failure. The package stops at stream
// metadata; decoding the audio payload belongs to the extract package.
package fsb5

import "bytes"

var magicFSB5 = []byte("FSB5")

// Version selects the container base header layout.
type Version uint8

const (
	V0 Version = iota // 64-byte base header
	V1                // 60-byte base header
)

func versionFromU32(v uint32) (Version, error) {
	switch v {
	case 0:
		return V0, nil
	case 1:
		return V1, nil
	}
	return 0, &HeaderError{Kind: HeaderUnknownVersion, Version: v}
}

func (v Version) baseSize() int64 {
	if v == V0 {
		return 64
	}
	return 60
}

func (v Version) String() string {
	if v == V0 {
		return "FSB5 v0"
	}
	return "FSB5 v1"
}

// Header is the parsed metadata of an FSB5 sound bank. Streams are in
// declaration order; the bank's audio payloads live in one contiguous
// region starting at DataStart, each stream spanning
// [DataOffset, DataOffset+Size) within it.
type Header struct {
	Version Version
	Codec   Codec
	Streams []StreamInfo

	streamHeadersSize uint32
	nameTableSize     uint32
}

// DataStart returns the absolute offset of the stream data region: the
// base header, the stream header table, then the name table.
func (h *Header) DataStart() int64 {
	return h.Version.baseSize() + int64(h.streamHeadersSize) + int64(h.nameTableSize)
}

// Parse reads an FSB5 header from r. It consumes the container header,
// every stream header and the name table, and returns the assembled
// metadata. On any malformed or truncated field it stops immediately
// and returns one of HeaderError, StreamError, ChunkError or NameError;
// no partial Header is ever returned.
func Parse(r *Reader) (*Header, error) {
	magic, err := r.Take(4)
	if err != nil {
		return nil, &HeaderError{Kind: HeaderMagic, Err: err}
	}
	if !bytes.Equal(magic, magicFSB5) {
		return nil, &HeaderError{Kind: HeaderMagic}
	}

	rawVersion, err := r.Uint32LE()
	if err != nil {
		return nil, &HeaderError{Kind: HeaderVersion, Err: err}
	}
	version, err := versionFromU32(rawVersion)
	if err != nil {
		return nil, err
	}

	numStreams, err := r.Uint32LE()
	if err != nil {
		return nil, &HeaderError{Kind: HeaderStreamCount, Err: err}
	}
	if numStreams == 0 {
		return nil, &HeaderError{Kind: HeaderZeroStreams}
	}

	streamHeadersSize, err := r.Uint32LE()
	if err != nil {
		return nil, &HeaderError{Kind: HeaderStreamHeadersSize, Err: err}
	}

	nameTableSize, err := r.Uint32LE()
	if err != nil {
		return nil, &HeaderError{Kind: HeaderNameTableSize, Err: err}
	}

	totalStreamSize, err := r.Uint32LE()
	if err != nil {
		return nil, &HeaderError{Kind: HeaderTotalStreamSize, Err: err}
	}
	if totalStreamSize == 0 {
		return nil, &HeaderError{Kind: HeaderZeroTotalStreamSize}
	}

	codecFlag, err := r.Uint32LE()
	if err != nil {
		return nil, &HeaderError{Kind: HeaderCodec, Err: err}
	}
	codec, err := codecFromFlag(codecFlag)
	if err != nil {
		return nil, err
	}

	// The rest of the base header is unused metadata.
	if err := r.AdvanceTo(version.baseSize()); err != nil {
		return nil, &HeaderError{Kind: HeaderMetadata, Err: err}
	}

	streams, err := parseStreamHeaders(r, numStreams, totalStreamSize)
	if err != nil {
		return nil, err
	}

	headerEnd := version.baseSize() + int64(streamHeadersSize)
	if err := r.AdvanceTo(headerEnd); err != nil {
		return nil, &HeaderError{
			Kind:     HeaderWrongSize,
			Expected: headerEnd,
			Actual:   r.Position(),
			Err:      err,
		}
	}

	if nameTableSize != 0 {
		// Grown by append: the count is untrusted and each entry must
		// actually be present in the source.
		var offsets []uint32
		for index := uint32(0); index < numStreams; index++ {
			offset, err := r.Uint32LE()
			if err != nil {
				return nil, &NameError{Stream: index, Kind: NameOffset, Err: err}
			}
			offsets = append(offsets, offset)
		}
		offsets = append(offsets, nameTableSize)

		if err := readStreamNames(r, offsets, streams); err != nil {
			return nil, err
		}
	}

	return &Header{
		Version: version,
		Codec:   codec,
		Streams: streams,

		streamHeadersSize: streamHeadersSize,
		nameTableSize:     nameTableSize,
	}, nil
}

// parseStreamHeaders reads one packed header word per stream, walks any
// flagged chunk lists, and derives each stream's data size from the gap
// to the next stream's offset. The last stream is bounded by the total
// stream data size.
func parseStreamHeaders(r *Reader, numStreams, totalStreamSize uint32) ([]StreamInfo, error) {
	// Both slices are grown by append: numStreams is untrusted, and a
	// stream only takes space here once its header bytes exist.
	var (
		headers []streamHeader
		offsets []uint32
	)

	for index := uint32(0); index < numStreams; index++ {
		word, err := r.Uint64LE()
		if err != nil {
			return nil, &StreamError{Stream: index, Kind: StreamInfoRead, Err: err}
		}

		hdr, err := rawStreamHeader(word).decode(index)
		if err != nil {
			return nil, err
		}

		if hdr.hasChunks {
			if err := parseStreamChunks(r, index, &hdr); err != nil {
				return nil, err
			}
		}

		offsets = append(offsets, hdr.dataOffset)
		headers = append(headers, hdr)
	}
	offsets = append(offsets, totalStreamSize)

	streams := make([]StreamInfo, 0, len(headers))
	for i, hdr := range headers {
		size := offsets[i+1] - offsets[i]
		if size == 0 {
			return nil, &HeaderError{Kind: HeaderZeroStreamSize, Stream: uint32(i)}
		}
		streams = append(streams, hdr.withSize(size))
	}

	return streams, nil
}

package fsb5

import "fmt"

// HeaderErrorKind identifies the container-level field or check that failed.
type HeaderErrorKind uint8

const (
	HeaderMagic HeaderErrorKind = iota
	HeaderVersion
	HeaderUnknownVersion
	HeaderStreamCount
	HeaderZeroStreams
	HeaderStreamHeadersSize
	HeaderNameTableSize
	HeaderTotalStreamSize
	HeaderZeroTotalStreamSize
	HeaderCodec
	HeaderUnknownCodec
	HeaderMetadata
	HeaderWrongSize
	HeaderZeroStreamSize
)

func (k HeaderErrorKind) String() string {
	switch k {
	case HeaderMagic:
		return "magic"
	case HeaderVersion:
		return "version"
	case HeaderUnknownVersion:
		return "unknown version"
	case HeaderStreamCount:
		return "stream count"
	case HeaderZeroStreams:
		return "zero streams"
	case HeaderStreamHeadersSize:
		return "stream headers size"
	case HeaderNameTableSize:
		return "name table size"
	case HeaderTotalStreamSize:
		return "total stream data size"
	case HeaderZeroTotalStreamSize:
		return "zero total stream data size"
	case HeaderCodec:
		return "codec"
	case HeaderUnknownCodec:
		return "unknown codec"
	case HeaderMetadata:
		return "metadata"
	case HeaderWrongSize:
		return "wrong header size"
	case HeaderZeroStreamSize:
		return "zero stream size"
	}
	return fmt.Sprintf("header error kind %d", uint8(k))
}

// HeaderError reports a failure while parsing the container-level header.
// Kind identifies the field or check that failed; Version, Flag, Stream,
// Expected and Actual carry the offending values for the kinds that
// reference them and are zero otherwise. Err holds the underlying read
// error when one caused the failure.
type HeaderError struct {
	Kind     HeaderErrorKind
	Version  uint32 // HeaderUnknownVersion
	Flag     uint32 // HeaderUnknownCodec
	Stream   uint32 // HeaderZeroStreamSize
	Expected int64  // HeaderWrongSize: offset the header should end at
	Actual   int64  // HeaderWrongSize: offset the cursor reached
	Err      error
}

func (e *HeaderError) Error() string {
	msg := "fsb5: header: "
	switch e.Kind {
	case HeaderMagic:
		msg += "missing FSB5 magic"
	case HeaderUnknownVersion:
		msg += fmt.Sprintf("unknown version %#x", e.Version)
	case HeaderUnknownCodec:
		msg += fmt.Sprintf("unknown codec flag %d", e.Flag)
	case HeaderWrongSize:
		msg += fmt.Sprintf("stream headers should end at offset %d, cursor at %d", e.Expected, e.Actual)
	case HeaderZeroStreamSize:
		msg += fmt.Sprintf("stream %d has zero data size", e.Stream)
	default:
		msg += e.Kind.String()
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *HeaderError) Unwrap() error {
	return e.Err
}

// StreamErrorKind identifies the failure while decoding one stream's
// packed header word.
type StreamErrorKind uint8

const (
	StreamInfoRead StreamErrorKind = iota
	StreamUnknownSampleRate
	StreamZeroSamples
)

func (k StreamErrorKind) String() string {
	switch k {
	case StreamInfoRead:
		return "stream info"
	case StreamUnknownSampleRate:
		return "unknown sample rate"
	case StreamZeroSamples:
		return "zero samples"
	}
	return fmt.Sprintf("stream error kind %d", uint8(k))
}

// StreamError reports a failure while decoding one stream's bitfield
// header. Stream is the 0-based index of the stream in declaration
// order. Flag carries the offending rate code for
// StreamUnknownSampleRate.
type StreamError struct {
	Stream uint32
	Kind   StreamErrorKind
	Flag   uint8
	Err    error
}

func (e *StreamError) Error() string {
	msg := fmt.Sprintf("fsb5: stream %d: ", e.Stream)
	switch e.Kind {
	case StreamUnknownSampleRate:
		msg += fmt.Sprintf("unknown sample rate flag %d", e.Flag)
	default:
		msg += e.Kind.String()
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *StreamError) Unwrap() error {
	return e.Err
}

// ChunkErrorKind identifies the failure while walking a stream's chunk
// list.
type ChunkErrorKind uint8

const (
	ChunkFlag ChunkErrorKind = iota
	ChunkChannelCount
	ChunkZeroChannels
	ChunkSampleRate
	ChunkZeroSampleRate
	ChunkLoopStart
	ChunkLoopEnd
	ChunkZeroLengthLoop
	ChunkDSPCoefficients
	ChunkVorbisLayerCount
	ChunkTooManyVorbisLayers
	ChunkZeroVorbisLayers
	ChunkUnknownType
	ChunkWrongSize
)

func (k ChunkErrorKind) String() string {
	switch k {
	case ChunkFlag:
		return "flag word"
	case ChunkChannelCount:
		return "channel count"
	case ChunkZeroChannels:
		return "zero channels"
	case ChunkSampleRate:
		return "sample rate"
	case ChunkZeroSampleRate:
		return "zero sample rate"
	case ChunkLoopStart:
		return "loop start"
	case ChunkLoopEnd:
		return "loop end"
	case ChunkZeroLengthLoop:
		return "zero length loop"
	case ChunkDSPCoefficients:
		return "dsp coefficients"
	case ChunkVorbisLayerCount:
		return "vorbis layer count"
	case ChunkTooManyVorbisLayers:
		return "too many vorbis layers"
	case ChunkZeroVorbisLayers:
		return "zero vorbis layers"
	case ChunkUnknownType:
		return "unknown type"
	case ChunkWrongSize:
		return "wrong size"
	}
	return fmt.Sprintf("chunk error kind %d", uint8(k))
}

// ChunkError reports a failure while decoding one metadata chunk. Stream
// is the owning stream's index; Chunk is the 0-based position of the
// chunk within that stream's list. Flag, Layers, Expected and Actual
// carry the offending values for the kinds that reference them.
type ChunkError struct {
	Stream   uint32
	Chunk    uint32
	Kind     ChunkErrorKind
	Flag     uint8  // ChunkUnknownType
	Layers   uint32 // ChunkTooManyVorbisLayers
	Expected uint32 // ChunkWrongSize: declared payload size
	Actual   int64  // ChunkWrongSize: bytes actually walked
	Err      error
}

func (e *ChunkError) Error() string {
	msg := fmt.Sprintf("fsb5: stream %d: chunk %d: ", e.Stream, e.Chunk)
	switch e.Kind {
	case ChunkUnknownType:
		msg += fmt.Sprintf("unknown type flag %d", e.Flag)
	case ChunkTooManyVorbisLayers:
		msg += fmt.Sprintf("vorbis layer count %d exceeds 255", e.Layers)
	case ChunkWrongSize:
		msg += fmt.Sprintf("declared size %d, walked %d", e.Expected, e.Actual)
	default:
		msg += e.Kind.String()
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ChunkError) Unwrap() error {
	return e.Err
}

// NameErrorKind identifies the failure while resolving one stream's name.
type NameErrorKind uint8

const (
	NameOffset NameErrorKind = iota
	NameRead
	NameTerminator
	NameEncoding
)

func (k NameErrorKind) String() string {
	switch k {
	case NameOffset:
		return "offset"
	case NameRead:
		return "bytes"
	case NameTerminator:
		return "terminator"
	case NameEncoding:
		return "encoding"
	}
	return fmt.Sprintf("name error kind %d", uint8(k))
}

// NameError reports a failure while reading the name table entry for the
// stream at index Stream.
type NameError struct {
	Stream uint32
	Kind   NameErrorKind
	Err    error
}

func (e *NameError) Error() string {
	msg := fmt.Sprintf("fsb5: stream %d: ", e.Stream)
	switch e.Kind {
	case NameOffset:
		msg += "name offset"
	case NameRead:
		msg += "name bytes"
	case NameTerminator:
		msg += "name is not a NUL terminated string"
	case NameEncoding:
		msg += "name is not valid UTF-8"
	default:
		msg += "name " + e.Kind.String()
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *NameError) Unwrap() error {
	return e.Err
}

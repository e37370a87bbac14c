package fsb5

import (
	"errors"
	"io"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"magic",
			&HeaderError{Kind: HeaderMagic},
			"fsb5: header: missing FSB5 magic",
		},
		{
			"magic_with_cause",
			&HeaderError{Kind: HeaderMagic, Err: io.EOF},
			"fsb5: header: missing FSB5 magic: EOF",
		},
		{
			"unknown_version",
			&HeaderError{Kind: HeaderUnknownVersion, Version: 0xFF},
			"fsb5: header: unknown version 0xff",
		},
		{
			"unknown_codec",
			&HeaderError{Kind: HeaderUnknownCodec, Flag: 18},
			"fsb5: header: unknown codec flag 18",
		},
		{
			"wrong_header_size",
			&HeaderError{Kind: HeaderWrongSize, Expected: 92, Actual: 68},
			"fsb5: header: stream headers should end at offset 92, cursor at 68",
		},
		{
			"zero_stream_size",
			&HeaderError{Kind: HeaderZeroStreamSize, Stream: 2},
			"fsb5: header: stream 2 has zero data size",
		},
		{
			"unknown_sample_rate",
			&StreamError{Stream: 3, Kind: StreamUnknownSampleRate, Flag: 14},
			"fsb5: stream 3: unknown sample rate flag 14",
		},
		{
			"zero_samples",
			&StreamError{Stream: 0, Kind: StreamZeroSamples},
			"fsb5: stream 0: zero samples",
		},
		{
			"chunk_unknown_type",
			&ChunkError{Stream: 1, Chunk: 2, Kind: ChunkUnknownType, Flag: 42},
			"fsb5: stream 1: chunk 2: unknown type flag 42",
		},
		{
			"chunk_wrong_size",
			&ChunkError{Stream: 0, Chunk: 1, Kind: ChunkWrongSize, Expected: 4, Actual: 8},
			"fsb5: stream 0: chunk 1: declared size 4, walked 8",
		},
		{
			"too_many_vorbis_layers",
			&ChunkError{Kind: ChunkTooManyVorbisLayers, Layers: 256},
			"fsb5: stream 0: chunk 0: vorbis layer count 256 exceeds 255",
		},
		{
			"name_terminator",
			&NameError{Stream: 1, Kind: NameTerminator},
			"fsb5: stream 1: name is not a NUL terminated string",
		},
		{
			"name_encoding",
			&NameError{Stream: 0, Kind: NameEncoding},
			"fsb5: stream 0: name is not valid UTF-8",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.err.Error(); got != tc.want {
				t.Errorf("Error() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := io.ErrUnexpectedEOF
	for _, err := range []error{
		&HeaderError{Kind: HeaderStreamCount, Err: cause},
		&StreamError{Kind: StreamInfoRead, Err: cause},
		&ChunkError{Kind: ChunkFlag, Err: cause},
		&NameError{Kind: NameRead, Err: cause},
	} {
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Errorf("%T does not unwrap to its cause", err)
		}
	}
}

func TestErrorFamiliesAreDistinct(t *testing.T) {
	t.Parallel()

	var he *HeaderError
	var se *StreamError
	if errors.As(error(&StreamError{}), &he) {
		t.Error("StreamError matched as HeaderError")
	}
	if errors.As(error(&HeaderError{}), &se) {
		t.Error("HeaderError matched as StreamError")
	}
}

package fsb5

// rawStreamChunk is the packed 32-bit chunk flag word preceding each
// chunk payload. Layout from bit 0 upward:
//
//	[0]     more chunks follow
//	[1:25]  payload size in bytes
//	[25:32] chunk kind code
type rawStreamChunk uint32

func (f rawStreamChunk) moreChunks() bool {
	return f&0x01 == 1
}

func (f rawStreamChunk) size() uint32 {
	return uint32(f >> 1 & 0x00FF_FFFF)
}

func (f rawStreamChunk) kindCode() uint8 {
	return uint8(f >> 25 & 0x7F)
}

// packStreamChunk assembles a chunk flag word from its fields, masking
// each to its bit span. Inverse of the accessors above.
func packStreamChunk(more bool, size uint32, kind uint8) rawStreamChunk {
	var f rawStreamChunk
	if more {
		f |= 1
	}
	f |= rawStreamChunk(size&0x00FF_FFFF) << 1
	f |= rawStreamChunk(kind&0x7F) << 25
	return f
}

// chunkKind enumerates the known per-stream metadata chunk types. Any
// other code on the wire aborts the parse; kinds without a dedicated
// case in the walker only skip their declared span.
type chunkKind uint8

const (
	chunkChannels          chunkKind = 1
	chunkSampleRate        chunkKind = 2
	chunkLoop              chunkKind = 3
	chunkComment           chunkKind = 4
	chunkXMASeekTable      chunkKind = 6
	chunkDSPCoefficients   chunkKind = 7
	chunkATRAC9Config      chunkKind = 9
	chunkXWMAConfig        chunkKind = 10
	chunkVorbisSeekTable   chunkKind = 11
	chunkPeakVolume        chunkKind = 13
	chunkVorbisIntraLayers chunkKind = 14
	chunkOpusDataSize      chunkKind = 15
)

func decodeChunkKind(code uint8) (chunkKind, bool) {
	switch chunkKind(code) {
	case chunkChannels, chunkSampleRate, chunkLoop, chunkComment,
		chunkXMASeekTable, chunkDSPCoefficients, chunkATRAC9Config,
		chunkXWMAConfig, chunkVorbisSeekTable, chunkPeakVolume,
		chunkVorbisIntraLayers, chunkOpusDataSize:
		return chunkKind(code), true
	}
	return 0, false
}

// parseStreamChunks walks the chunk list of the stream at the given
// index, applying each chunk's effect to hdr. The cursor must land
// exactly at the end of each declared payload; the walk ends when a
// flag word clears the more-chunks bit.
func parseStreamChunks(r *Reader, stream uint32, hdr *streamHeader) error {
	for index := uint32(0); ; index++ {
		word, err := r.Uint32LE()
		if err != nil {
			return &ChunkError{Stream: stream, Chunk: index, Kind: ChunkFlag, Err: err}
		}
		flags := rawStreamChunk(word)

		kind, ok := decodeChunkKind(flags.kindCode())
		if !ok {
			return &ChunkError{Stream: stream, Chunk: index, Kind: ChunkUnknownType, Flag: flags.kindCode()}
		}

		start := r.Position()

		switch kind {
		case chunkChannels:
			channels, err := r.Uint8()
			if err != nil {
				return &ChunkError{Stream: stream, Chunk: index, Kind: ChunkChannelCount, Err: err}
			}
			if channels == 0 {
				return &ChunkError{Stream: stream, Chunk: index, Kind: ChunkZeroChannels}
			}
			hdr.channels = channels

		case chunkSampleRate:
			rate, err := r.Uint32LE()
			if err != nil {
				return &ChunkError{Stream: stream, Chunk: index, Kind: ChunkSampleRate, Err: err}
			}
			if rate == 0 {
				return &ChunkError{Stream: stream, Chunk: index, Kind: ChunkZeroSampleRate}
			}
			hdr.sampleRate = rate

		case chunkLoop:
			loopStart, err := r.Uint32LE()
			if err != nil {
				return &ChunkError{Stream: stream, Chunk: index, Kind: ChunkLoopStart, Err: err}
			}
			loopEnd, err := r.Uint32LE()
			if err != nil {
				return &ChunkError{Stream: stream, Chunk: index, Kind: ChunkLoopEnd, Err: err}
			}
			length := loopEnd - loopStart
			if length == 0 {
				return &ChunkError{Stream: stream, Chunk: index, Kind: ChunkZeroLengthLoop}
			}
			hdr.loop = &Loop{Start: loopStart, Len: length}

		case chunkDSPCoefficients:
			coeffs := make([]int16, 0, hdr.channels)
			for ch := uint8(0); ch < hdr.channels; ch++ {
				var coeff int16
				for i := 0; i < 16; i++ {
					v, err := r.Int16BE()
					if err != nil {
						return &ChunkError{Stream: stream, Chunk: index, Kind: ChunkDSPCoefficients, Err: err}
					}
					coeff += v
				}
				if err := r.Skip(14); err != nil {
					return &ChunkError{Stream: stream, Chunk: index, Kind: ChunkDSPCoefficients, Err: err}
				}
				coeffs = append(coeffs, coeff)
			}
			hdr.dspCoeffs = coeffs

		case chunkVorbisIntraLayers:
			layers, err := r.Uint32LE()
			if err != nil {
				return &ChunkError{Stream: stream, Chunk: index, Kind: ChunkVorbisLayerCount, Err: err}
			}
			if layers > 0xFF {
				return &ChunkError{Stream: stream, Chunk: index, Kind: ChunkTooManyVorbisLayers, Layers: layers}
			}
			channels := hdr.channels * uint8(layers)
			if channels == 0 {
				return &ChunkError{Stream: stream, Chunk: index, Kind: ChunkZeroVorbisLayers}
			}
			hdr.channels = channels
		}

		if err := r.AdvanceTo(start + int64(flags.size())); err != nil {
			return &ChunkError{
				Stream:   stream,
				Chunk:    index,
				Kind:     ChunkWrongSize,
				Expected: flags.size(),
				Actual:   r.Position() - start,
				Err:      err,
			}
		}

		if !flags.moreChunks() {
			return nil
		}
	}
}

package fsb5

// StreamInfo describes one audio stream in a parsed bank. Fields are
// fixed at parse time; callers must not modify the slice-typed ones.
type StreamInfo struct {
	SampleRate uint32
	Channels   uint8
	NumSamples uint32
	DataOffset uint32 // bytes from the start of the stream data region
	Size       uint32 // bytes of encoded data belonging to this stream
	Loop       *Loop
	DSPCoeffs  []int16 // one summed coefficient per channel, GC ADPCM banks only
	Name       string  // empty when the bank carries no name table
}

// Loop marks a repeating region in a stream's decoded samples. Start
// and Len are in sample units.
type Loop struct {
	Start uint32
	Len   uint32
}

// rawStreamHeader is the packed 64-bit per-stream mode word. Layout
// from bit 0 upward:
//
//	[0]     has chunks
//	[1:5]   sample rate code
//	[5:7]   channel code
//	[7:34]  data offset in 32-byte units
//	[34:64] sample count
type rawStreamHeader uint64

func (m rawStreamHeader) hasChunks() bool {
	return m&0x01 == 1
}

func (m rawStreamHeader) sampleRateCode() uint8 {
	return uint8(m >> 1 & 0x0F)
}

func (m rawStreamHeader) channelCode() uint8 {
	return uint8(m >> 5 & 0x03)
}

func (m rawStreamHeader) dataOffsetUnits() uint32 {
	return uint32(m >> 7 & 0x07FF_FFFF)
}

func (m rawStreamHeader) numSamples() uint32 {
	return uint32(m >> 34 & 0x3FFF_FFFF)
}

// packStreamHeader assembles a mode word from its fields, masking each
// to its bit span. Inverse of the accessors above.
func packStreamHeader(hasChunks bool, rateCode, chanCode uint8, offsetUnits, samples uint32) rawStreamHeader {
	var m rawStreamHeader
	if hasChunks {
		m |= 1
	}
	m |= rawStreamHeader(rateCode&0x0F) << 1
	m |= rawStreamHeader(chanCode&0x03) << 5
	m |= rawStreamHeader(offsetUnits&0x07FF_FFFF) << 7
	m |= rawStreamHeader(samples&0x3FFF_FFFF) << 34
	return m
}

// Sample rate table indexed by the 4-bit rate code. Codes past the end
// of the table do not occur in well-formed banks.
var sampleRates = [...]uint32{
	4000, 8000, 11000, 11025, 16000, 22050,
	24000, 32000, 44100, 48000, 96000,
}

// Channel count table indexed by the 2-bit channel code.
var channelCounts = [...]uint8{1, 2, 6, 8}

// streamHeader carries one stream's decoded attributes before its data
// size is known. Chunk effects mutate it in place.
type streamHeader struct {
	hasChunks  bool
	sampleRate uint32
	channels   uint8
	dataOffset uint32
	numSamples uint32
	loop       *Loop
	dspCoeffs  []int16
}

func (m rawStreamHeader) decode(stream uint32) (streamHeader, error) {
	code := m.sampleRateCode()
	if int(code) >= len(sampleRates) {
		return streamHeader{}, &StreamError{Stream: stream, Kind: StreamUnknownSampleRate, Flag: code}
	}

	samples := m.numSamples()
	if samples == 0 {
		return streamHeader{}, &StreamError{Stream: stream, Kind: StreamZeroSamples}
	}

	return streamHeader{
		hasChunks:  m.hasChunks(),
		sampleRate: sampleRates[code],
		channels:   channelCounts[m.channelCode()],
		dataOffset: m.dataOffsetUnits() * 32,
		numSamples: samples,
	}, nil
}

func (h streamHeader) withSize(size uint32) StreamInfo {
	return StreamInfo{
		SampleRate: h.sampleRate,
		Channels:   h.channels,
		NumSamples: h.numSamples,
		DataOffset: h.dataOffset,
		Size:       size,
		Loop:       h.loop,
		DSPCoeffs:  h.dspCoeffs,
	}
}

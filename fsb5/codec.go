package fsb5

// Codec identifies the encoding shared by every stream in a bank. FSB5
// declares a single codec for the whole container.
type Codec uint8

const (
	CodecPCM8 Codec = iota + 1
	CodecPCM16
	CodecPCM24
	CodecPCM32
	CodecPCMFloat
	CodecGCADPCM
	CodecIMAADPCM
	CodecVAG
	CodecHEVAG
	CodecXMA
	CodecMPEG
	CodecCELT
	CodecATRAC9
	CodecXWMA
	CodecVorbis
	CodecFADPCM
	CodecOpus
)

// codecFromFlag maps the container's codec field to a Codec. Every value
// outside 1..17 is rejected.
func codecFromFlag(flag uint32) (Codec, error) {
	if flag < 1 || flag > uint32(CodecOpus) {
		return 0, &HeaderError{Kind: HeaderUnknownCodec, Flag: flag}
	}
	return Codec(flag), nil
}

func (c Codec) String() string {
	switch c {
	case CodecPCM8:
		return "PCM8"
	case CodecPCM16:
		return "PCM16"
	case CodecPCM24:
		return "PCM24"
	case CodecPCM32:
		return "PCM32"
	case CodecPCMFloat:
		return "PCMFLOAT"
	case CodecGCADPCM:
		return "GCADPCM"
	case CodecIMAADPCM:
		return "IMAADPCM"
	case CodecVAG:
		return "VAG"
	case CodecHEVAG:
		return "HEVAG"
	case CodecXMA:
		return "XMA"
	case CodecMPEG:
		return "MPEG"
	case CodecCELT:
		return "CELT"
	case CodecATRAC9:
		return "ATRAC9"
	case CodecXWMA:
		return "XWMA"
	case CodecVorbis:
		return "VORBIS"
	case CodecFADPCM:
		return "FADPCM"
	case CodecOpus:
		return "OPUS"
	}
	return "UNKNOWN"
}

// Extension returns the conventional file extension, dot included, for
// a stream extracted from a bank of this codec. Codecs whose payload
// has no standalone container convention map to ".bin".
func (c Codec) Extension() string {
	switch c {
	case CodecPCM8, CodecPCM16, CodecPCM24, CodecPCM32, CodecPCMFloat:
		return ".wav"
	case CodecMPEG:
		return ".mp3"
	case CodecXMA:
		return ".xma"
	case CodecXWMA:
		return ".xwma"
	case CodecVorbis, CodecCELT:
		return ".ogg"
	case CodecVAG, CodecHEVAG:
		return ".vag"
	case CodecATRAC9:
		return ".at9"
	case CodecOpus:
		return ".opus"
	}
	return ".bin"
}

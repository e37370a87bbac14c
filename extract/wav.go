package extract

import (
	"encoding/binary"
	"io"

	"github.com/zsiec/fsbank/fsb5"
)

// wavHeader is the 44-byte RIFF/WAVE prelude with a 16-byte fmt chunk,
// written little-endian in field order.
type wavHeader struct {
	RiffID        [4]byte
	FileSize      uint32
	WaveID        [4]byte
	FmtID         [4]byte
	FmtSize       uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataID        [4]byte
	DataSize      uint32
}

const (
	wavFormatPCM   = 1
	wavFormatFloat = 3
)

// writeWAV wraps a bare PCM payload in a RIFF/WAVE container. FSB5
// stores PCM little-endian, which is what WAV wants, so the payload
// passes through verbatim.
func writeWAV(codec fsb5.Codec, info fsb5.StreamInfo, data []byte, w io.Writer) error {
	var format, bits uint16
	switch codec {
	case fsb5.CodecPCM8:
		format, bits = wavFormatPCM, 8
	case fsb5.CodecPCM16:
		format, bits = wavFormatPCM, 16
	case fsb5.CodecPCM24:
		format, bits = wavFormatPCM, 24
	case fsb5.CodecPCM32:
		format, bits = wavFormatPCM, 32
	case fsb5.CodecPCMFloat:
		format, bits = wavFormatFloat, 32
	default:
		return &UnsupportedCodecError{Codec: codec}
	}

	channels := uint16(info.Channels)
	dataSize := uint32(len(data))
	// RIFF chunks are word aligned; DataSize states the unpadded length.
	pad := dataSize & 1

	hdr := wavHeader{
		RiffID:        [4]byte{'R', 'I', 'F', 'F'},
		FileSize:      36 + dataSize + pad,
		WaveID:        [4]byte{'W', 'A', 'V', 'E'},
		FmtID:         [4]byte{'f', 'm', 't', ' '},
		FmtSize:       16,
		AudioFormat:   format,
		NumChannels:   channels,
		SampleRate:    info.SampleRate,
		ByteRate:      info.SampleRate * uint32(channels) * uint32(bits) / 8,
		BlockAlign:    channels * bits / 8,
		BitsPerSample: bits,
		DataID:        [4]byte{'d', 'a', 't', 'a'},
		DataSize:      dataSize,
	}
	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if pad != 0 {
		if _, err := w.Write([]byte{0}); err != nil {
			return err
		}
	}
	return nil
}

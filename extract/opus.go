package extract

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/thesyncim/gopus/container/ogg"

	"github.com/zsiec/fsbank/fsb5"
)

var (
	errTruncatedFrame = errors.New("truncated frame")
	errEmptyPacket    = errors.New("empty packet")
	errNoCountByte    = errors.New("code 3 packet without count byte")
	errZeroFrames     = errors.New("code 3 packet with zero frames")
)

// writeOggOpus rebuilds an FSB5 Opus payload as an Ogg Opus stream.
// The payload is a frame sequence: each frame is a 16-bit big-endian
// byte length followed by one raw Opus packet.
func writeOggOpus(info fsb5.StreamInfo, data []byte, w io.Writer) error {
	ow, err := ogg.NewWriter(w, info.SampleRate, info.Channels)
	if err != nil {
		return fmt.Errorf("extract: opus: %d channel stream: %w", info.Channels, err)
	}

	for off := 0; off < len(data); {
		if len(data)-off < 2 {
			return fmt.Errorf("extract: opus: frame length at offset %d: %w", off, errTruncatedFrame)
		}
		n := int(binary.BigEndian.Uint16(data[off:]))
		off += 2
		if len(data)-off < n {
			return fmt.Errorf("extract: opus: %d byte packet at offset %d: %w", n, off, errTruncatedFrame)
		}
		packet := data[off : off+n]
		off += n

		samples, err := packetSamples(packet)
		if err != nil {
			return fmt.Errorf("extract: opus: packet at offset %d: %w", off-n, err)
		}
		if err := ow.WritePacket(packet, samples); err != nil {
			return err
		}
	}
	return ow.Close()
}

// packetSamples derives a packet's 48kHz sample count from its TOC
// byte: the config field fixes the frame duration, the low two bits
// the frame count. Count code 3 carries the frame count in the low six
// bits of the next byte.
func packetSamples(packet []byte) (int, error) {
	if len(packet) == 0 {
		return 0, errEmptyPacket
	}

	var per int
	switch config := packet[0] >> 3; config {
	case 16, 20, 24, 28:
		per = 120 // 2.5ms
	case 17, 21, 25, 29:
		per = 240 // 5ms
	case 0, 4, 8, 12, 14, 18, 22, 26, 30:
		per = 480 // 10ms
	case 1, 5, 9, 13, 15, 19, 23, 27, 31:
		per = 960 // 20ms
	case 2, 6, 10:
		per = 1920 // 40ms
	case 3, 7, 11:
		per = 2880 // 60ms
	}

	var frames int
	switch packet[0] & 0x03 {
	case 0:
		frames = 1
	case 1, 2:
		frames = 2
	case 3:
		if len(packet) < 2 {
			return 0, errNoCountByte
		}
		frames = int(packet[1] & 0x3F)
		if frames == 0 {
			return 0, errZeroFrames
		}
	}
	return frames * per, nil
}

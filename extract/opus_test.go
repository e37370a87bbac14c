package extract

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thesyncim/gopus/container/ogg"

	"github.com/zsiec/fsbank/fsb5"
)

// opusPayload frames packets the way FSB5 stores them: 16-bit
// big-endian length, then the raw packet.
func opusPayload(packets ...[]byte) []byte {
	var buf []byte
	for _, p := range packets {
		buf = binary.BigEndian.AppendUint16(buf, uint16(len(p)))
		buf = append(buf, p...)
	}
	return buf
}

func TestPacketSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		packet []byte
		want   int
	}{
		// TOC = config<<3 | stereo<<2 | count code.
		{"silk_nb_10ms", []byte{0x00}, 480},
		{"silk_nb_20ms", []byte{0x08}, 960},
		{"silk_nb_40ms", []byte{0x10}, 1920},
		{"silk_nb_60ms", []byte{0x18}, 2880},
		{"celt_fb_2p5ms", []byte{0xE0}, 120},
		{"celt_fb_5ms", []byte{0xE8}, 240},
		{"celt_fb_10ms", []byte{0xF0}, 480},
		{"celt_fb_20ms", []byte{0xF8}, 960},
		{"hybrid_fb_20ms", []byte{0x78}, 960},
		{"two_frames_code1", []byte{0x09}, 1920},
		{"two_frames_code2", []byte{0x0A}, 1920},
		{"code3_three_frames", []byte{0x0B, 0x03}, 2880},
		{"code3_vbr_flag_ignored", []byte{0x0B, 0x83}, 2880},
		{"stereo_bit_ignored", []byte{0x0C}, 960},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := packetSamples(tc.packet)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestPacketSamples_Malformed(t *testing.T) {
	t.Parallel()

	_, err := packetSamples(nil)
	require.ErrorIs(t, err, errEmptyPacket)

	_, err = packetSamples([]byte{0x0B})
	require.ErrorIs(t, err, errNoCountByte)

	_, err = packetSamples([]byte{0x0B, 0x40})
	require.ErrorIs(t, err, errZeroFrames)
}

func TestWriteOggOpus_RoundTrip(t *testing.T) {
	t.Parallel()

	// Three 20ms mono packets.
	packets := [][]byte{
		{0x08, 0x01, 0x02, 0x03},
		{0x08, 0x04, 0x05},
		{0x08, 0x06},
	}
	info := fsb5.StreamInfo{SampleRate: 48000, Channels: 1}

	var out bytes.Buffer
	require.NoError(t, writeOggOpus(info, opusPayload(packets...), &out))

	or, err := ogg.NewReader(bytes.NewReader(out.Bytes()))
	require.NoError(t, err)
	require.Equal(t, uint8(1), or.Channels())
	require.Equal(t, uint32(48000), or.SampleRate())

	for i, want := range packets {
		got, granule, err := or.ReadPacket()
		require.NoError(t, err, "packet %d", i)
		require.Equal(t, want, got, "packet %d", i)
		require.Equal(t, uint64(960*(i+1)), granule, "packet %d", i)
	}

	_, _, err = or.ReadPacket()
	require.ErrorIs(t, err, io.EOF)
}

func TestWriteOggOpus_EmptyPayload(t *testing.T) {
	t.Parallel()

	// No frames at all still yields a valid, empty Ogg Opus stream.
	var out bytes.Buffer
	require.NoError(t, writeOggOpus(fsb5.StreamInfo{SampleRate: 44100, Channels: 2}, nil, &out))

	or, err := ogg.NewReader(bytes.NewReader(out.Bytes()))
	require.NoError(t, err)
	_, _, err = or.ReadPacket()
	require.ErrorIs(t, err, io.EOF)
}

func TestWriteOggOpus_TruncatedFrameLength(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := writeOggOpus(fsb5.StreamInfo{SampleRate: 48000, Channels: 1}, []byte{0x00}, &out)
	require.ErrorIs(t, err, errTruncatedFrame)
}

func TestWriteOggOpus_TruncatedPacket(t *testing.T) {
	t.Parallel()

	payload := opusPayload([]byte{0x08, 0x01, 0x02})[:4]
	var out bytes.Buffer
	err := writeOggOpus(fsb5.StreamInfo{SampleRate: 48000, Channels: 1}, payload, &out)
	require.ErrorIs(t, err, errTruncatedFrame)
}

func TestWriteOggOpus_RejectsMultichannel(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := writeOggOpus(fsb5.StreamInfo{SampleRate: 48000, Channels: 6}, nil, &out)
	require.Error(t, err)
}

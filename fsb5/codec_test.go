package fsb5

import "testing"

func TestCodecFromFlag(t *testing.T) {
	t.Parallel()

	for flag := uint32(1); flag <= 17; flag++ {
		c, err := codecFromFlag(flag)
		if err != nil {
			t.Fatalf("flag %d: %v", flag, err)
		}
		if uint32(c) != flag {
			t.Errorf("flag %d: codec = %d", flag, c)
		}
		if c.String() == "UNKNOWN" {
			t.Errorf("flag %d: no name", flag)
		}
	}

	for _, flag := range []uint32{0, 18, 255, 0xFFFFFFFF} {
		_, err := codecFromFlag(flag)
		he := wantHeaderErr(t, err, HeaderUnknownCodec)
		if he.Flag != flag {
			t.Errorf("Flag = %d, want %d", he.Flag, flag)
		}
	}
}

func TestCodec_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		codec Codec
		want  string
	}{
		{CodecPCM16, "PCM16"},
		{CodecGCADPCM, "GCADPCM"},
		{CodecVorbis, "VORBIS"},
		{CodecOpus, "OPUS"},
		{Codec(0), "UNKNOWN"},
		{Codec(99), "UNKNOWN"},
	}
	for _, tc := range tests {
		if got := tc.codec.String(); got != tc.want {
			t.Errorf("Codec(%d).String() = %q, want %q", tc.codec, got, tc.want)
		}
	}
}

func TestCodec_Extension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		codec Codec
		want  string
	}{
		{CodecPCM8, ".wav"},
		{CodecPCMFloat, ".wav"},
		{CodecMPEG, ".mp3"},
		{CodecVorbis, ".ogg"},
		{CodecOpus, ".opus"},
		{CodecGCADPCM, ".bin"},
		{CodecFADPCM, ".bin"},
	}
	for _, tc := range tests {
		if got := tc.codec.Extension(); got != tc.want {
			t.Errorf("%v.Extension() = %q, want %q", tc.codec, got, tc.want)
		}
	}
}

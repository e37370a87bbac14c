package unpack

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zsiec/fsbank/fsb5"
)

func TestOutputNames(t *testing.T) {
	t.Parallel()

	data, _, _ := pcmBank(t)
	bank, err := New(data)
	require.NoError(t, err)

	names := outputNames(bank.Header(), false)
	require.Equal(t, []string{"kick.wav", "snare.wav"}, names)

	raw := outputNames(bank.Header(), true)
	require.Equal(t, []string{"kick.bin", "snare.bin"}, raw)
}

func TestOutputNames_FallbackAndCollision(t *testing.T) {
	t.Parallel()

	header := &fsb5.Header{
		Codec: fsb5.CodecMPEG,
		Streams: []fsb5.StreamInfo{
			{Name: "theme"},
			{Name: ""},
			{Name: "theme"},
			{Name: "sfx/../theme"},
		},
	}

	names := outputNames(header, false)
	require.Equal(t, []string{
		"theme.mp3",
		"stream_001.mp3",
		"theme_2.mp3",
		"sfx_.._theme.mp3",
	}, names)
}

func TestSanitizeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"kick", "kick"},
		{"music/intro", "music_intro"},
		{`win\path`, "win_path"},
		{"../../etc/passwd", ".._.._etc_passwd"},
		{"", ""},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, sanitizeName(tc.in), "input %q", tc.in)
	}
}

// Package extract rebuilds FSB5 stream payloads into standalone audio
// files. The bank stores bare codec payloads with no per-stream
// container; each supported codec has a rebuild path that wraps the
// payload in the container players expect. Sample data passes through
// untouched, never transcoded.
package extract

import (
	"fmt"
	"io"

	"github.com/zsiec/fsbank/fsb5"
)

// UnsupportedCodecError reports a codec with no rebuild path. Callers
// that want the payload anyway fall back to dumping it verbatim.
type UnsupportedCodecError struct {
	Codec fsb5.Codec
}

func (e *UnsupportedCodecError) Error() string {
	return fmt.Sprintf("extract: no rebuild path for codec %s", e.Codec)
}

// Stream writes the standalone rendition of one stream to w. data must
// be exactly the stream's payload region from the bank; info supplies
// the attributes the container headers need.
func Stream(codec fsb5.Codec, info fsb5.StreamInfo, data []byte, w io.Writer) error {
	switch codec {
	case fsb5.CodecPCM8, fsb5.CodecPCM16, fsb5.CodecPCM24, fsb5.CodecPCM32, fsb5.CodecPCMFloat:
		return writeWAV(codec, info, data, w)
	case fsb5.CodecMPEG:
		// MPEG payloads are concatenated audio frames, already a
		// playable elementary stream.
		_, err := w.Write(data)
		return err
	case fsb5.CodecOpus:
		return writeOggOpus(info, data, w)
	}
	return &UnsupportedCodecError{Codec: codec}
}

package unpack

import (
	"fmt"
	"strings"

	"github.com/zsiec/fsbank/fsb5"
)

// outputNames returns one filename per stream: the stream's sanitized
// name when present, else a stream_NNN fallback. Collisions get the
// stream index appended so every stream lands in its own file.
func outputNames(header *fsb5.Header, raw bool) []string {
	ext := header.Codec.Extension()
	if raw {
		ext = ".bin"
	}

	names := make([]string, len(header.Streams))
	used := make(map[string]struct{}, len(header.Streams))
	for i, s := range header.Streams {
		base := sanitizeName(s.Name)
		if base == "" {
			base = fmt.Sprintf("stream_%03d", i)
		}
		if _, clash := used[base]; clash {
			base = fmt.Sprintf("%s_%d", base, i)
		}
		used[base] = struct{}{}
		names[i] = base + ext
	}
	return names
}

// sanitizeName makes a stream name safe as a single path component.
// Separators and NULs become underscores; everything else is kept,
// names are UTF-8 already.
func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return '_'
		}
		return r
	}, name)
}

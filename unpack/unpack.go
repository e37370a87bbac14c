package unpack

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/zsiec/fsbank/extract"
)

// Options configure an Unpack run.
type Options struct {
	// OutDir is the destination directory, created if missing. Empty
	// means the current directory.
	OutDir string

	// Raw dumps each stream's payload verbatim instead of rebuilding a
	// playable container around it.
	Raw bool

	// Workers bounds concurrent stream writes. Zero or negative means
	// GOMAXPROCS.
	Workers int

	// Logger receives per-stream progress. If nil, slog.Default() is
	// used.
	Logger *slog.Logger
}

// Report summarizes an Unpack run.
type Report struct {
	Written int   // streams written to disk
	Skipped int   // streams skipped for lack of a rebuild path
	Bytes   int64 // file bytes produced
}

// Unpack writes every stream of the bank into its own file. Streams
// are processed concurrently; the first failure cancels the rest.
// Streams whose codec has no rebuild path are skipped with a warning
// rather than failing the bank.
func Unpack(ctx context.Context, bank *Bank, opts Options) (Report, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With("component", "unpack")

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	outDir := opts.OutDir
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Report{}, err
	}

	header := bank.Header()
	names := outputNames(header, opts.Raw)
	log.Info("unpacking bank",
		"codec", header.Codec.String(),
		"streams", len(header.Streams),
		"raw", opts.Raw,
		"out", outDir,
	)

	var written, skipped, outBytes atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range header.Streams {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			path := filepath.Join(outDir, names[i])
			n, err := writeStream(bank, i, path, opts.Raw)
			if err != nil {
				var uce *extract.UnsupportedCodecError
				if errors.As(err, &uce) {
					log.Warn("no rebuild path, skipping stream",
						"stream", i,
						"codec", uce.Codec.String(),
					)
					skipped.Add(1)
					return nil
				}
				return fmt.Errorf("stream %d: %w", i, err)
			}

			log.Debug("wrote stream", "stream", i, "file", names[i], "bytes", n)
			written.Add(1)
			outBytes.Add(n)
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		// A cancel that landed before any worker observed it still
		// has to surface.
		err = ctx.Err()
	}
	return Report{
		Written: int(written.Load()),
		Skipped: int(skipped.Load()),
		Bytes:   outBytes.Load(),
	}, err
}

// writeStream extracts one stream into path. On failure the partial
// file is removed.
func writeStream(bank *Bank, i int, path string, raw bool) (int64, error) {
	header := bank.Header()
	data := bank.StreamData(i)

	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}

	bw := bufio.NewWriter(f)
	cw := &countingWriter{w: bw}

	var werr error
	if raw {
		_, werr = cw.Write(data)
	} else {
		werr = extract.Stream(header.Codec, header.Streams[i], data, cw)
	}
	if werr == nil {
		werr = bw.Flush()
	}
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		os.Remove(path)
		return 0, werr
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

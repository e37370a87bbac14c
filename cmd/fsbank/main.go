package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/zsiec/fsbank/fsb5"
	"github.com/zsiec/fsbank/unpack"
)

var version = "dev"

const usageText = `fsbank inspects and unpacks FSB5 sound banks.

Usage:
  fsbank info [-json] <bank>
  fsbank extract [-o dir] [-raw] [-workers n] <bank>

The bank may be a plain .fsb file or a zstd-compressed one.
Set FSBANK_LOG_LEVEL to debug, info, warn or error.
`

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	})))

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "info":
		err = runInfo(os.Args[2:])
	case "extract":
		err = runExtract(os.Args[2:])
	case "version":
		fmt.Println("fsbank", version)
	case "help", "-h", "--help":
		fmt.Print(usageText)
	default:
		fmt.Fprintf(os.Stderr, "fsbank: unknown command %q\n\n%s", os.Args[1], usageText)
		os.Exit(2)
	}
	if err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	asJSON := fs.Bool("json", false, "print machine-readable JSON")
	fs.Parse(args)
	if fs.NArg() != 1 {
		return errors.New("info: exactly one bank file required")
	}
	path := fs.Arg(0)

	bank, err := unpack.Open(path)
	if err != nil {
		return err
	}

	if *asJSON {
		return printJSON(bank.Header())
	}
	printInfo(path, bank.Header())
	return nil
}

func runExtract(args []string) error {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	outDir := fs.String("o", ".", "output `directory`")
	raw := fs.Bool("raw", false, "dump stream payloads verbatim instead of rebuilding containers")
	workers := fs.Int("workers", 0, "concurrent stream writers (0 = GOMAXPROCS)")
	fs.Parse(args)
	if fs.NArg() != 1 {
		return errors.New("extract: exactly one bank file required")
	}
	path := fs.Arg(0)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bank, err := unpack.Open(path)
	if err != nil {
		return err
	}

	report, err := unpack.Unpack(ctx, bank, unpack.Options{
		OutDir:  *outDir,
		Raw:     *raw,
		Workers: *workers,
	})
	if err != nil {
		return err
	}

	slog.Info("bank unpacked",
		"written", report.Written,
		"skipped", report.Skipped,
		"bytes", report.Bytes,
	)
	return nil
}

func printInfo(path string, h *fsb5.Header) {
	fmt.Printf("%s: %s, codec %s, %d streams, data at %d\n\n",
		path, h.Version, h.Codec, len(h.Streams), h.DataStart())

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tRATE\tCH\tSAMPLES\tOFFSET\tSIZE\tLOOP")
	for i, s := range h.Streams {
		name := s.Name
		if name == "" {
			name = "-"
		}
		loop := "-"
		if s.Loop != nil {
			loop = fmt.Sprintf("%d+%d", s.Loop.Start, s.Loop.Len)
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%s\n",
			i, name, s.SampleRate, s.Channels, s.NumSamples, s.DataOffset, s.Size, loop)
	}
	tw.Flush()
}

type loopJSON struct {
	Start uint32 `json:"start"`
	Len   uint32 `json:"len"`
}

type streamJSON struct {
	Index      int       `json:"index"`
	Name       string    `json:"name,omitempty"`
	SampleRate uint32    `json:"sample_rate"`
	Channels   uint8     `json:"channels"`
	Samples    uint32    `json:"samples"`
	DataOffset uint32    `json:"data_offset"`
	Size       uint32    `json:"size"`
	Loop       *loopJSON `json:"loop,omitempty"`
}

type infoJSON struct {
	Version   string       `json:"version"`
	Codec     string       `json:"codec"`
	DataStart int64        `json:"data_start"`
	Streams   []streamJSON `json:"streams"`
}

func printJSON(h *fsb5.Header) error {
	info := infoJSON{
		Version:   h.Version.String(),
		Codec:     h.Codec.String(),
		DataStart: h.DataStart(),
		Streams:   make([]streamJSON, 0, len(h.Streams)),
	}
	for i, s := range h.Streams {
		sj := streamJSON{
			Index:      i,
			Name:       s.Name,
			SampleRate: s.SampleRate,
			Channels:   s.Channels,
			Samples:    s.NumSamples,
			DataOffset: s.DataOffset,
			Size:       s.Size,
		}
		if s.Loop != nil {
			sj.Loop = &loopJSON{Start: s.Loop.Start, Len: s.Loop.Len}
		}
		info.Streams = append(info.Streams, sj)
	}

	out, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func logLevel() slog.Level {
	switch strings.ToLower(envOr("FSBANK_LOG_LEVEL", "info")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

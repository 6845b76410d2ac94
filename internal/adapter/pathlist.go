package adapter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	m "covmap.dev/pkg/covmap/internal/model"
)

// StdinSource is the path-list source name that reads standard input.
const StdinSource = "-"

// PathListReader loads the raw paths extracted from a coverage report, one per line.
type PathListReader interface {
	Read(ctx context.Context, source m.Path) ([]string, error)
}

type localPathListReader struct {
	fs    SourceFSAdapter
	stdin io.Reader
}

// NewLocalPathListReader returns a PathListReader reading files through fs and
// the "-" source from stdin.
func NewLocalPathListReader(fs SourceFSAdapter, stdin io.Reader) PathListReader {
	return &localPathListReader{fs: fs, stdin: stdin}
}

// Read returns the non-empty, non-comment lines of source with surrounding
// whitespace trimmed. Files ending in .gz or .zst are decompressed.
func (r *localPathListReader) Read(ctx context.Context, source m.Path) ([]string, error) {
	if source == StdinSource {
		return scanPaths(ctx, r.stdin)
	}

	f, err := r.fs.Open(source)
	if err != nil {
		return nil, fmt.Errorf("open path list: %w", err)
	}

	defer func() { _ = f.Close() }()

	reader, closeFn, err := decompress(string(source), f)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", source, err)
	}

	defer closeFn()

	paths, err := scanPaths(ctx, reader)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}

	return paths, nil
}

func decompress(name string, r io.Reader) (io.Reader, func(), error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, err
		}

		return zr, func() { _ = zr.Close() }, nil
	case strings.HasSuffix(name, ".zst"):
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}

		return dec, dec.Close, nil
	}

	return r, func() {}, nil
}

func scanPaths(ctx context.Context, r io.Reader) ([]string, error) {
	var paths []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		paths = append(paths, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return paths, nil
}

// Package batchfile reads and writes pre-serialized target address batches.
//
// A batch file holds one address per line behind a "#count <n>" header line.
// Files ending in .addr.zst are zstd compressed.
package batchfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

const (
	PlainExt = ".addr"
	ZstdExt  = ".addr.zst"

	countHeader = "#count "
)

func isBatchFile(name string) bool {
	return strings.HasSuffix(name, PlainExt) || strings.HasSuffix(name, ZstdExt)
}

type batchReader struct {
	file *os.File
	dec  *zstd.Decoder
	*bufio.Scanner
}

func openBatch(path string) (*batchReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open batch file: %w", err)
	}

	br := &batchReader{file: f}
	var r io.Reader = f
	if strings.HasSuffix(path, ZstdExt) {
		dec, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("open zstd stream %s: %w", path, err)
		}
		br.dec = dec
		r = dec
	}
	br.Scanner = bufio.NewScanner(r)
	return br, nil
}

func (br *batchReader) Close() error {
	if br.dec != nil {
		br.dec.Close()
	}
	return br.file.Close()
}

// parseHeader returns the declared row count of a header line.
func parseHeader(line string) (uint64, bool, error) {
	if !strings.HasPrefix(line, countHeader) {
		return 0, false, nil
	}
	n, err := strconv.ParseUint(strings.TrimSpace(line[len(countHeader):]), 10, 64)
	if err != nil {
		return 0, true, fmt.Errorf("invalid count header %q: %w", line, err)
	}
	return n, true, nil
}

// countFile returns the header count of a batch file, falling back to a full
// scan when the header is missing.
func countFile(path string) (total uint64, scanned bool, err error) {
	br, err := openBatch(path)
	if err != nil {
		return 0, false, err
	}
	defer func() {
		if closeErr := br.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close batch file: %w", closeErr)
		}
	}()

	if !br.Scan() {
		if err := br.Err(); err != nil {
			return 0, false, fmt.Errorf("read %s: %w", path, err)
		}
		return 0, false, nil
	}

	first := strings.TrimSpace(br.Text())
	n, ok, err := parseHeader(first)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", path, err)
	}
	if ok {
		return n, false, nil
	}

	if isRow(first) {
		total++
	}
	for br.Scan() {
		if isRow(strings.TrimSpace(br.Text())) {
			total++
		}
	}
	if err := br.Err(); err != nil {
		return 0, true, fmt.Errorf("scan %s: %w", path, err)
	}
	return total, true, nil
}

func isRow(line string) bool {
	return line != "" && !strings.HasPrefix(line, "#")
}

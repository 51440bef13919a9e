package batchfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

var errNoRows = errors.New("no addresses to write")

// WriteFile writes addresses as one batch file. The file is compressed when
// path ends in .addr.zst and is renamed into place only after a full write.
func WriteFile(path string, addresses []string) (err error) {
	if len(addresses) == 0 {
		return errNoRows
	}
	if !isBatchFile(path) {
		return fmt.Errorf("batch file %s must end in %s or %s", path, PlainExt, ZstdExt)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create batch file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	var (
		w   io.Writer = tmp
		enc *zstd.Encoder
	)
	if strings.HasSuffix(path, ZstdExt) {
		enc, err = zstd.NewWriter(tmp, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		if err != nil {
			return fmt.Errorf("open zstd writer: %w", err)
		}
		w = enc
	}

	bw := bufio.NewWriter(w)
	if _, err = fmt.Fprintf(bw, "%s%d\n", countHeader, len(addresses)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, address := range addresses {
		if _, err = bw.WriteString(address); err != nil {
			return fmt.Errorf("write address: %w", err)
		}
		if err = bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("write address: %w", err)
		}
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("flush batch file: %w", err)
	}
	if enc != nil {
		if err = enc.Close(); err != nil {
			return fmt.Errorf("close zstd writer: %w", err)
		}
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close batch file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename batch file: %w", err)
	}
	return nil
}

// FileName returns the name of the n-th batch file of an export.
func FileName(prefix string, n int, compress bool) string {
	ext := PlainExt
	if compress {
		ext = ZstdExt
	}
	return fmt.Sprintf("%s-%06d%s", prefix, n, ext)
}

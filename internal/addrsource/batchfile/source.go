package batchfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/goodnatureofminers/collider-backend/pkg/workerpool"
	"go.uber.org/zap"
)

// Source streams target addresses from the batch files of one directory.
type Source struct {
	dir     string
	workers int
	logger  *zap.Logger
}

func NewSource(dir string, workers int, logger *zap.Logger) *Source {
	if workers <= 0 {
		workers = 1
	}
	return &Source{
		dir:     dir,
		workers: workers,
		logger:  logger.Named("batchfile_source").With(zap.String("dir", dir)),
	}
}

// Files lists the batch files in lexical order.
func (s *Source) Files() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read batch dir: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !isBatchFile(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(s.dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// Count sums the header counts of all files, reading them in parallel.
func (s *Source) Count(ctx context.Context) (uint64, error) {
	files, err := s.Files()
	if err != nil {
		return 0, err
	}

	var total atomic.Uint64
	err = workerpool.Process(ctx, s.workers, files, func(_ context.Context, path string) error {
		n, scanned, err := countFile(path)
		if err != nil {
			return err
		}
		if scanned {
			s.logger.Warn("batch file has no count header, counted by scan",
				zap.String("file", filepath.Base(path)),
				zap.Uint64("rows", n),
			)
		}
		total.Add(n)
		return nil
	}, func() {
		s.logger.Debug("batch count canceled, skipping remaining files")
	})
	if err != nil {
		return 0, fmt.Errorf("count batch files: %w", err)
	}

	s.logger.Debug("batch files counted", zap.Int("files", len(files)), zap.Uint64("total", total.Load()))
	return total.Load(), nil
}

// Stream reads every file in order and hands fn batches of at most batchSize rows.
func (s *Source) Stream(ctx context.Context, batchSize int, fn func(batch []string) error) error {
	if batchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", batchSize)
	}

	files, err := s.Files()
	if err != nil {
		return err
	}

	batch := make([]string, 0, batchSize)
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.streamFile(ctx, path, batchSize, &batch, fn); err != nil {
			return err
		}
	}
	if len(batch) > 0 {
		return fn(batch)
	}
	return nil
}

func (s *Source) streamFile(ctx context.Context, path string, batchSize int, batch *[]string, fn func([]string) error) (err error) {
	br, err := openBatch(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := br.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close batch file: %w", closeErr)
		}
	}()

	for br.Scan() {
		line := strings.TrimSpace(br.Text())
		if !isRow(line) {
			continue
		}
		*batch = append(*batch, line)
		if len(*batch) < batchSize {
			continue
		}
		if err = fn(*batch); err != nil {
			return err
		}
		*batch = make([]string, 0, batchSize)
		if err = ctx.Err(); err != nil {
			return err
		}
	}
	if err = br.Err(); err != nil {
		return fmt.Errorf("scan %s: %w", filepath.Base(path), err)
	}
	return nil
}

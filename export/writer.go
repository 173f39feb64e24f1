package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tzdruck/tzdruck/logging"
)

// RenderChunkFunc renders one planned range into a finished file body
// (e.g. a multi-page PDF). Implementations must be safe for concurrent use;
// the writer fans ranges out over several workers.
type RenderChunkFunc func(r ChunkRange) ([]byte, error)

// ChunkWriter writes the files of one batch export. Threads is an upper
// bound taken from the render profile; it is a hint and gets clamped to at
// least one worker.
type ChunkWriter struct {
	Dir          string
	Timestamp    string
	ExportFormat string
	Threads      int
}

// WriteAll renders and writes every planned chunk. The output directory is
// created if needed. The first render or write error aborts the batch;
// remaining chunks are skipped, already written files are left in place for
// inspection.
func (w ChunkWriter) WriteAll(ranges []ChunkRange, render RenderChunkFunc) error {
	if len(ranges) == 0 {
		return nil
	}
	if render == nil {
		return fmt.Errorf("export: render function missing")
	}
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return fmt.Errorf("create export folder %s: %w", w.Dir, err)
	}

	workers := w.Threads
	if workers < 1 {
		workers = 1
	}
	if workers > len(ranges) {
		workers = len(ranges)
	}

	jobs := make(chan int)
	errs := make([]error, len(ranges))
	var wg sync.WaitGroup
	var aborted sync.Once
	stop := make(chan struct{})

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				errs[idx] = w.writeOne(idx, ranges, render)
				if errs[idx] != nil {
					aborted.Do(func() { close(stop) })
				}
			}
		}()
	}

feed:
	for idx := range ranges {
		select {
		case jobs <- idx:
		case <-stop:
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (w ChunkWriter) writeOne(idx int, ranges []ChunkRange, render RenderChunkFunc) error {
	r := ranges[idx]
	name := PDFFileName(w.Timestamp, w.ExportFormat, r.Start, r.End, idx+1, len(ranges))
	data, err := render(r)
	if err != nil {
		return fmt.Errorf("render chunk %d (%d-%d): %w", idx+1, r.Start, r.End, err)
	}
	path := filepath.Join(w.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write chunk file %s: %w", name, err)
	}
	logging.Logger().Debug("chunk written", "file", name, "items", r.Count())
	return nil
}

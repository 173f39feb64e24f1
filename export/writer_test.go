package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkWriterWritesAllFiles(t *testing.T) {
	dir := t.TempDir()
	plan := ChunkPlan{TotalItems: 203, ChunkSize: 100, MinLastChunk: 5}
	ranges := plan.Ranges()

	var mu sync.Mutex
	rendered := map[ChunkRange]bool{}
	w := ChunkWriter{
		Dir:          filepath.Join(dir, "out"),
		Timestamp:    "2025-10-31_09-40",
		ExportFormat: FormatSingle,
		Threads:      4,
	}
	err := w.WriteAll(ranges, func(r ChunkRange) ([]byte, error) {
		mu.Lock()
		rendered[r] = true
		mu.Unlock()
		return []byte(fmt.Sprintf("pdf %d-%d", r.Start, r.End)), nil
	})
	require.NoError(t, err)
	assert.Len(t, rendered, len(ranges))

	entries, err := os.ReadDir(w.Dir)
	require.NoError(t, err)
	require.Len(t, entries, len(ranges))

	// file names follow the chunk template
	first := filepath.Join(w.Dir, PDFFileName(w.Timestamp, FormatSingle, 1, 100, 1, 2))
	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "pdf 1-100", string(data))
}

func TestChunkWriterPropagatesRenderError(t *testing.T) {
	w := ChunkWriter{
		Dir:          filepath.Join(t.TempDir(), "out"),
		Timestamp:    "2025-10-31_09-40",
		ExportFormat: FormatSingle,
		Threads:      2,
	}
	ranges := ChunkPlan{TotalItems: 300, ChunkSize: 100, MinLastChunk: 5}.Ranges()
	boom := errors.New("rasterizer crashed")
	err := w.WriteAll(ranges, func(r ChunkRange) ([]byte, error) {
		if r.Start == 101 {
			return nil, boom
		}
		return []byte("ok"), nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestChunkWriterThreadHintClamped(t *testing.T) {
	w := ChunkWriter{
		Dir:          filepath.Join(t.TempDir(), "out"),
		Timestamp:    "2025-10-31_09-40",
		ExportFormat: FormatSheet,
		Threads:      0, // hint may be junk; writer clamps to one worker
	}
	ranges := ChunkPlan{TotalItems: 10, ChunkSize: 5, MinLastChunk: 2}.Ranges()
	err := w.WriteAll(ranges, func(r ChunkRange) ([]byte, error) {
		return []byte("x"), nil
	})
	require.NoError(t, err)
}

func TestChunkWriterEmptyPlan(t *testing.T) {
	w := ChunkWriter{Dir: t.TempDir()}
	require.NoError(t, w.WriteAll(nil, nil))
}

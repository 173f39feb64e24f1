// Package export plans batch exports: deterministic folder and file names
// and the partitioning of symbols into PDF chunk files.
package export

import (
	"fmt"
	"time"
)

// ExportTimestampFormat is the timestamp layout used in all export names.
const ExportTimestampFormat = "2006-01-02_15-04"

// File formats and export formats as they appear in names.
const (
	FileFormatPNG = "PNG"
	FileFormatPDF = "PDF"

	FormatSingle = "Einzelzeichen"
	FormatSheet  = "Schnittbogen"
)

// Timestamp formats ts for use in export names.
func Timestamp(ts time.Time) string {
	return ts.Format(ExportTimestampFormat)
}

// FolderName builds the export folder name:
//
//	{timestamp}_{file_format}_{export_format}_{count}_Zeichen_{dpi}_dpi
//
// e.g. "2025-10-31_09-40_PNG_Einzelzeichen_540_Zeichen_600_dpi".
func FolderName(ts time.Time, fileFormat, exportFormat string, count, dpi int) string {
	return fmt.Sprintf("%s_%s_%s_%d_Zeichen_%d_dpi",
		Timestamp(ts), fileFormat, exportFormat, count, dpi)
}

// PDFFileName builds the name of one chunk file:
//
//	{timestamp}_{export_format}_Zeichen_{start}_bis_{end}_Datei_{idx}_von_{total}.pdf
//
// start/end are 1-based symbol indexes, idx/total 1-based file indexes.
func PDFFileName(timestamp, exportFormat string, start, end, idx, total int) string {
	return fmt.Sprintf("%s_%s_Zeichen_%d_bis_%d_Datei_%d_von_%d.pdf",
		timestamp, exportFormat, start, end, idx, total)
}

// ChunkRange is one planned output file, covering the 1-based inclusive
// symbol indexes [Start, End].
type ChunkRange struct {
	Start int
	End   int
}

// Count returns the number of items in the range.
func (r ChunkRange) Count() int { return r.End - r.Start + 1 }

// ChunkPlan partitions a batch into output files of ChunkSize items each.
// A trailing remainder smaller than MinLastChunk is merged into the
// preceding chunk instead of being left as an undersized final file.
type ChunkPlan struct {
	TotalItems   int
	ChunkSize    int
	MinLastChunk int
}

// Ranges computes the concrete partition. A non-positive chunk size yields
// a single range covering everything; a non-positive total yields nil.
//
// Example: 102 items, chunk size 100, minimum 5 -> one range 1..102 (the
// 2-item remainder merges), not 1..100 plus 101..102.
func (p ChunkPlan) Ranges() []ChunkRange {
	if p.TotalItems <= 0 {
		return nil
	}
	if p.ChunkSize <= 0 || p.ChunkSize >= p.TotalItems {
		return []ChunkRange{{Start: 1, End: p.TotalItems}}
	}

	var ranges []ChunkRange
	for start := 1; start <= p.TotalItems; start += p.ChunkSize {
		end := start + p.ChunkSize - 1
		if end > p.TotalItems {
			end = p.TotalItems
		}
		ranges = append(ranges, ChunkRange{Start: start, End: end})
	}

	last := ranges[len(ranges)-1]
	if len(ranges) > 1 && last.Count() < p.MinLastChunk {
		ranges[len(ranges)-2].End = last.End
		ranges = ranges[:len(ranges)-1]
	}
	return ranges
}

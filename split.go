// Package xlsplit splits one large spreadsheet into several smaller
// files, repeating the header rows in each output and preserving
// merged-cell regions that fall wholly inside a single output file.
package xlsplit

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SplitChunk describes one emitted output file.
type SplitChunk struct {
	FilePath  string
	TotalRows int // header + data rows written
	DataRows  int
}

// SplitResult summarizes one Split invocation.
type SplitResult struct {
	TotalRows  int // rows in the source sheet, header included
	HeaderRows int
	Chunks     []SplitChunk
}

// Options holds configuration for Split.
type Options struct {
	outputDir string
	sheetName string
}

// Option configures Split.
type Option func(*Options)

// WithOutputDir writes output files into dir instead of the source
// file's directory.
func WithOutputDir(dir string) Option {
	return func(o *Options) { o.outputDir = dir }
}

// WithSheetName processes the named sheet instead of the first one.
func WithSheetName(name string) Option {
	return func(o *Options) { o.sheetName = name }
}

// Split reads one worksheet of the spreadsheet at path and writes it
// out as sibling files named <stem>_part<N>.xlsx, each holding the
// header rows followed by at most chunkSize-headerRows data rows.
// Merged regions wholly contained in one output file are recreated
// there with their anchor text; regions straddling a file boundary are
// dropped.
//
// chunkSize is the maximum row count per output file, header included,
// and must exceed headerRows. Split is synchronous and must not be
// invoked twice concurrently against the same source and output
// directory, since the deterministic naming would collide.
func Split(path string, chunkSize, headerRows int, opts ...Option) (*SplitResult, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	if err := validateParams(chunkSize, headerRows); err != nil {
		return nil, err
	}

	grid, sheetName, err := readSheet(path, o.sheetName)
	if err != nil {
		return nil, err
	}

	plans, err := PlanChunks(len(grid), headerRows, chunkSize)
	if err != nil {
		return nil, err
	}

	merges, err := ExtractMergeRanges(path, sheetName)
	if err != nil {
		return nil, err
	}

	header := grid[:headerRows]
	data := grid[headerRows:]

	outDir := o.outputDir
	if outDir == "" {
		outDir = filepath.Dir(path)
	}
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	chunks := make([]SplitChunk, 0, len(plans))
	for _, plan := range plans {
		destination := filepath.Join(outDir, fmt.Sprintf("%s_part%d.xlsx", stem, plan.Index))
		chunkData := data[plan.DataStart:plan.DataEnd]
		chunkMerges := remapMerges(merges, headerRows, plan, header, data)
		if err := writeChunk(destination, header, chunkData, chunkMerges); err != nil {
			return nil, err
		}
		chunks = append(chunks, SplitChunk{
			FilePath:  destination,
			TotalRows: headerRows + len(chunkData),
			DataRows:  len(chunkData),
		})
	}

	return &SplitResult{
		TotalRows:  len(grid),
		HeaderRows: headerRows,
		Chunks:     chunks,
	}, nil
}

// Summary renders the result as human-readable text, one line per
// output file.
func (r *SplitResult) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "split %d rows (%d header) into %d file(s)", r.TotalRows, r.HeaderRows, len(r.Chunks))
	for i, c := range r.Chunks {
		fmt.Fprintf(&b, "\npart %d: %d rows (%d data) -> %s", i+1, c.TotalRows, c.DataRows, c.FilePath)
	}
	return b.String()
}

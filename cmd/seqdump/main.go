// Copyright 2022 The Impala-1 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// seqdump scans Hadoop sequence files of delimited decimal text, checks
// every field against the configured precision and scale, and reports row
// counts plus an approximate distinct-value count per column.
//
// Usage:
//
//	seqdump -cfg seqdump.toml file1.seq file2.seq ...
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/MyqueWooMiddo/Impala-1/pkg/common/moerr"
	"github.com/MyqueWooMiddo/Impala-1/pkg/container/nulls"
	"github.com/MyqueWooMiddo/Impala-1/pkg/container/types"
	"github.com/MyqueWooMiddo/Impala-1/pkg/logutil"
	"github.com/MyqueWooMiddo/Impala-1/pkg/seqfile"
	"github.com/MyqueWooMiddo/Impala-1/pkg/vectorize/ndv"
)

type fileResult struct {
	path    string
	rows    int64
	badRows int64
	err     error

	sketches []*ndv.Sketch
}

func main() {
	cfgPath := flag.String("cfg", "seqdump.toml", "configuration file")
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: seqdump -cfg <config> <file>...")
		os.Exit(2)
	}

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logutil.SetupLogger(&cfg.Log)

	typs, err := cfg.columnTypes()
	if err != nil {
		logutil.Fatal("bad column configuration", zap.Error(err))
	}

	pool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		logutil.Fatal("create worker pool", zap.Error(err))
	}
	defer pool.Release()

	results := make([]fileResult, flag.NArg())
	var wg sync.WaitGroup
	for i, path := range flag.Args() {
		i, path := i, path
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			results[i] = scanFile(path, cfg, typs)
		}); err != nil {
			wg.Done()
			results[i] = fileResult{path: path, err: err}
		}
	}
	wg.Wait()

	exit := 0
	totals := newSketches(cfg, typs)
	var totalRows, totalBad int64
	for _, res := range results {
		if res.err != nil {
			logutil.Error("scan failed", zap.String("file", res.path), zap.Error(res.err))
			exit = 1
			continue
		}
		totalRows += res.rows
		totalBad += res.badRows
		for c, s := range res.sketches {
			if err := totals[c].Merge(s); err != nil {
				logutil.Error("merge sketch", zap.String("file", res.path), zap.Error(err))
			}
		}
		fmt.Printf("%s: %d rows, %d skipped\n", res.path, res.rows, res.badRows)
	}
	fmt.Printf("total: %d rows, %d skipped\n", totalRows, totalBad)
	if cfg.EstimateNdv {
		for c, s := range totals {
			fmt.Printf("column %d (%s): ~%d distinct values\n", c, typs[c].String(), s.Estimate())
		}
	}
	os.Exit(exit)
}

func newSketches(cfg *Config, typs []types.Type) []*ndv.Sketch {
	if !cfg.EstimateNdv {
		return nil
	}
	sketches := make([]*ndv.Sketch, len(typs))
	for i := range sketches {
		sketches[i] = ndv.New()
	}
	return sketches
}

func scanFile(path string, cfg *Config, typs []types.Type) fileResult {
	res := fileResult{path: path, sketches: newSketches(cfg, typs)}

	f, err := os.Open(path)
	if err != nil {
		res.err = moerr.NewFileNotFoundNoCtx(path)
		return res
	}
	defer f.Close()

	sr, err := seqfile.NewReader(f)
	if err != nil {
		res.err = err
		return res
	}

	cols := make([]*seqfile.DecimalColumn, len(typs))
	for i, typ := range typs {
		if cols[i], err = seqfile.NewDecimalColumn(typ); err != nil {
			res.err = err
			return res
		}
	}

	delim := cfg.Delimiter[0]
	for {
		rec, err := sr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Corrupt record: re-align on the next sync marker and go on.
			logutil.Warn("corrupt record, resyncing",
				zap.String("file", path), zap.Error(err))
			res.badRows++
			if err := sr.SkipToSync(); err != nil {
				break
			}
			continue
		}
		if err := decodeInto(rec.Value, delim, cols); err != nil {
			logutil.Warn("bad row", zap.String("file", path), zap.Error(err))
			res.badRows++
			continue
		}
		res.rows++
		if res.rows%batchRows == 0 {
			drainColumns(cols, res.sketches)
		}
	}
	drainColumns(cols, res.sketches)

	logutil.Info("scanned file",
		zap.String("file", path),
		zap.Int64("rows", res.rows),
		zap.Int64("skipped", res.badRows))
	return res
}

// batchRows bounds how much column data a scan buffers before folding it
// into the sketches.
const batchRows = 8192

func decodeInto(row []byte, delim byte, cols []*seqfile.DecimalColumn) error {
	return seqfile.DecodeRow(row, delim, cols)
}

// drainColumns feeds buffered values into the sketches and resets the
// column buffers.
func drainColumns(cols []*seqfile.DecimalColumn, sketches []*ndv.Sketch) {
	for c, col := range cols {
		if sketches != nil {
			sketches[c].InsertDecimal16(col.Values, col.Nsp)
		}
		col.Values = col.Values[:0]
		col.Nsp = &nulls.Nulls{}
	}
}

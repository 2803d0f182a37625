package store

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/katalvlaran/frfinder/finder"
	"github.com/katalvlaran/frfinder/report"
)

// Key layout:
//
//	run/<id>/params      report.WriteParams text
//	run/<id>/header      report header line
//	run/<id>/fr/<%08d>   one report row per accepted region
const (
	runPrefix = "run/"
	paramsKey = "params"
	headerKey = "header"
	rowPrefix = "fr/"
)

func runKey(runID, name string) []byte {
	return []byte(runPrefix + runID + "/" + name)
}

func rowKey(runID string, ordinal int) []byte {
	return []byte(fmt.Sprintf("%s%s/%s%08d", runPrefix, runID, rowPrefix, ordinal))
}

// Begin records the parameters and the report header of a new run. totals
// maps each path label to its number of paths, as for report.Write.
func (s *Store) Begin(ctx context.Context, info report.RunInfo, totals map[string]int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var params bytes.Buffer
	if err := report.WriteParams(&params, info); err != nil {
		return fmt.Errorf("Begin(%s): %w", info.RunID, err)
	}
	labels := make([]string, 0, len(totals))
	for l := range totals {
		labels = append(labels, l)
	}
	header := strings.Join(report.Columns(labels), "\t")

	err := s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(runKey(info.RunID, paramsKey), params.Bytes()); err != nil {
			return err
		}

		return txn.Set(runKey(info.RunID, headerKey), []byte(header))
	})
	if err != nil {
		return fmt.Errorf("Begin(%s): %w", info.RunID, err)
	}

	return nil
}

// Append stores one report row under its ordinal. Re-appending an ordinal
// overwrites it.
func (s *Store) Append(ctx context.Context, runID string, ordinal int, row string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(rowKey(runID, ordinal), []byte(row))
	})
	if err != nil {
		return fmt.Errorf("Append(%s, %d): %w", runID, ordinal, err)
	}

	return nil
}

// Checkpoint returns a finder.WithOnAccept hook that appends every accepted
// region as a report row numbered in acceptance order. Rows are written
// even after ctx is cancelled: the finder still commits the round it was
// in, and the checkpoint has to match the result.
func (s *Store) Checkpoint(ctx context.Context, runID string, totals map[string]int) func(finder.Accepted) error {
	ctx = context.WithoutCancel(ctx)
	return func(a finder.Accepted) error {
		return s.Append(ctx, runID, a.Ordinal, report.FormatRow(a.Ordinal, a.Region, totals))
	}
}

// Info returns the parameters recorded by Begin.
func (s *Store) Info(ctx context.Context, runID string) (report.RunInfo, error) {
	raw, err := s.get(ctx, runKey(runID, paramsKey))
	if err != nil {
		return report.RunInfo{}, fmt.Errorf("Info(%s): %w", runID, err)
	}
	info, err := report.ReadParams(bytes.NewReader(raw))
	if err != nil {
		return report.RunInfo{}, fmt.Errorf("Info(%s): %w", runID, err)
	}

	return info, nil
}

// Rows returns the header and the stored rows of a run in ordinal order.
func (s *Store) Rows(ctx context.Context, runID string) (string, []string, error) {
	header, err := s.get(ctx, runKey(runID, headerKey))
	if err != nil {
		return "", nil, fmt.Errorf("Rows(%s): %w", runID, err)
	}

	var rows []string
	prefix := runKey(runID, rowPrefix)
	err = s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			rows = append(rows, string(v))
		}

		return nil
	})
	if err != nil {
		return "", nil, fmt.Errorf("Rows(%s): %w", runID, err)
	}

	return string(header), rows, nil
}

// Export writes a run as a report readable by report.Read.
func (s *Store) Export(ctx context.Context, runID string, w io.Writer) error {
	header, rows, err := s.Rows(ctx, runID)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, header)
	for _, row := range rows {
		fmt.Fprintln(bw, row)
	}

	return bw.Flush()
}

// Runs lists the IDs of every run in the store, sorted.
func (s *Store) Runs(ctx context.Context) ([]string, error) {
	var ids []string
	prefix := []byte(runPrefix)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			rest := strings.TrimPrefix(string(it.Item().Key()), runPrefix)
			if id, ok := strings.CutSuffix(rest, "/"+headerKey); ok {
				ids = append(ids, id)
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Runs: %w", err)
	}
	sort.Strings(ids)

	return ids, nil
}

func (s *Store) get(ctx context.Context, key []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)

		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNoRun
	}

	return out, err
}

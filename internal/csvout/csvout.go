// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package csvout serializes a Dataset to CSV for the CRM importer.
//
// Files are written to a temporary sibling and renamed into place, so a
// failed write never leaves a truncated file at the destination.
package csvout

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/pdiddy/crm-import/pkg/types"
)

// outputSuffix replaces the input extension when no output path is given.
const outputSuffix = "_CRM_READY.csv"

// DefaultOutputPath strips the extension from input and appends
// _CRM_READY.csv: "foo/bar.xlsx" becomes "foo/bar_CRM_READY.csv".
func DefaultOutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + outputSuffix
}

// Encoding returns the text encoding for name. The empty name selects
// UTF-8 with a byte-order mark.
func Encoding(name types.Encoding) (encoding.Encoding, error) {
	switch types.Encoding(strings.ToLower(string(name))) {
	case types.EncodingUTF8BOM, "":
		return unicode.UTF8BOM, nil
	case types.EncodingUTF8:
		return unicode.UTF8, nil
	case types.EncodingWindows1254, "cp1254":
		return charmap.Windows1254, nil
	case types.EncodingISO88599, "latin5":
		return charmap.ISO8859_9, nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q: use utf-8-sig, utf-8, windows-1254, or iso-8859-9", name)
	}
}

// Format renders v as a CSV field.
func Format(v types.Value, style types.BoolStyle) string {
	switch v.Kind {
	case types.KindString:
		return v.Str
	case types.KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case types.KindBool:
		if style == types.BoolPython {
			if v.Bool {
				return "True"
			}
			return "False"
		}
		return strconv.FormatBool(v.Bool)
	case types.KindTime:
		t := v.Time
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
			return t.Format("2006-01-02")
		}
		return t.Format("2006-01-02 15:04:05")
	default:
		return ""
	}
}

// Write serializes ds to path. The header lists the columns in order and
// each row follows on its own line.
func Write(path string, ds *types.Dataset, opts types.CSVOptions) error {
	enc, err := Encoding(opts.Encoding)
	if err != nil {
		return &types.PathError{Kind: types.ErrWriteFailure, Op: "write", Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &types.PathError{Kind: types.ErrWriteFailure, Op: "write", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	fail := func(err error) error {
		return &types.PathError{Kind: types.ErrWriteFailure, Op: "write", Path: path, Err: err}
	}

	bw := bufio.NewWriter(tmp)
	tw := transform.NewWriter(bw, enc.NewEncoder())
	if err := encode(tw, ds, opts.BoolStyle); err != nil {
		return fail(err)
	}
	if err := tw.Close(); err != nil {
		return fail(err)
	}
	if err := bw.Flush(); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		return fail(err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fail(err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fail(err)
	}
	committed = true
	return nil
}

// encode writes the header and rows of ds to w.
func encode(w io.Writer, ds *types.Dataset, style types.BoolStyle) error {
	cw := csv.NewWriter(w)
	if err := writeRecord(cw, w, ds.Columns); err != nil {
		return err
	}

	record := make([]string, len(ds.Columns))
	for _, row := range ds.Rows {
		for j := range record {
			if j < len(row) {
				record[j] = Format(row[j], style)
			} else {
				record[j] = ""
			}
		}
		if err := writeRecord(cw, w, record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeRecord writes one record. A lone empty field is written as "" so
// readers do not skip the line as blank.
func writeRecord(cw *csv.Writer, w io.Writer, record []string) error {
	if len(record) == 1 && record[0] == "" {
		cw.Flush()
		if err := cw.Error(); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\"\"\n")
		return err
	}
	return cw.Write(record)
}

// Read parses a CSV written by Write and returns the header and rows.
func Read(path string, name types.Encoding) ([]string, [][]string, error) {
	enc, err := Encoding(name)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(transform.NewReader(f, enc.NewDecoder()))
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, nil
	}
	return records[0], records[1:], nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package csvout

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/pdiddy/crm-import/pkg/types"
)

// Discrepancy describes the first difference found between a written file
// and the dataset it was written from.
type Discrepancy struct {
	Where string
	Got   string
	Want  string
}

func (d Discrepancy) String() string {
	return fmt.Sprintf("%s: got %q, want %q", d.Where, d.Got, d.Want)
}

// Verify re-reads path and checks header, row count, and every field
// against ds as Write would have rendered it.
func Verify(path string, ds *types.Dataset, opts types.CSVOptions) error {
	header, rows, err := Read(path, opts.Encoding)
	if err != nil {
		return &types.PathError{Kind: types.ErrVerification, Op: "verify", Path: path, Err: err}
	}
	if d, ok := compare(header, rows, ds, opts.BoolStyle); !ok {
		return &types.PathError{Kind: types.ErrVerification, Op: "verify", Path: path, Err: errors.New(d.String())}
	}
	return nil
}

func compare(header []string, rows [][]string, ds *types.Dataset, style types.BoolStyle) (Discrepancy, bool) {
	if len(ds.Columns) > 0 || len(header) > 0 {
		if !slices.Equal(header, ds.Columns) {
			return Discrepancy{Where: "header", Got: strings.Join(header, ","), Want: strings.Join(ds.Columns, ",")}, false
		}
	}
	if len(rows) != ds.Len() {
		return Discrepancy{Where: "row count", Got: fmt.Sprint(len(rows)), Want: fmt.Sprint(ds.Len())}, false
	}
	for i, row := range ds.Rows {
		for j, name := range ds.Columns {
			want := ""
			if j < len(row) {
				want = Format(row[j], style)
			}
			// The CSV reader folds CRLF inside quoted fields to LF.
			want = strings.ReplaceAll(want, "\r\n", "\n")
			if got := rows[i][j]; got != want {
				return Discrepancy{Where: fmt.Sprintf("row %d column %q", i, name), Got: got, Want: want}, false
			}
		}
	}
	return Discrepancy{}, true
}

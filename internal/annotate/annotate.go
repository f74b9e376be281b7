// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package annotate appends the fixed CRM review columns to a dataset.
//
// Every record is marked CONDITIONAL and flagged for manual review. Hak
// ediş values are never inferred: HAK_EDIS_AUTO_INFER is always false.
package annotate

import (
	"fmt"
	"io"

	"github.com/pdiddy/crm-import/pkg/types"
)

const (
	ColStatus         = "CRM_STATUS"
	ColReviewRequired = "CRM_REVIEW_REQUIRED"
	ColHakEdisInfer   = "HAK_EDIS_AUTO_INFER"

	// StatusConditional marks a record as pending manual review.
	StatusConditional = "CONDITIONAL"
)

// Column pairs a column name with the constant it is filled with.
type Column struct {
	Name  string
	Value types.Value
}

// Columns lists the review columns in the order they are checked and
// appended.
func Columns() []Column {
	return []Column{
		{Name: ColStatus, Value: types.String(StatusConditional)},
		{Name: ColReviewRequired, Value: types.Bool(true)},
		{Name: ColHakEdisInfer, Value: types.Bool(false)},
	}
}

// Apply appends each review column that ds does not already have and
// returns the ones it added. Existing columns are left untouched, so a
// second Apply adds nothing.
func Apply(ds *types.Dataset) []Column {
	var added []Column
	for _, c := range Columns() {
		if ds.HasColumn(c.Name) {
			continue
		}
		// HasColumn was false, so this cannot fail.
		_ = ds.AddConstantColumn(c.Name, c.Value)
		added = append(added, c)
	}
	return added
}

// Notify writes one line per added column.
func Notify(w io.Writer, added []Column, rows int) {
	for _, c := range added {
		switch c.Name {
		case ColStatus:
			fmt.Fprintf(w, "[+] Added %s = '%s' for all %d records\n", c.Name, c.Value.Str, rows)
		case ColHakEdisInfer:
			fmt.Fprintf(w, "[+] Added %s = %s (automatic inference disabled)\n", c.Name, literal(c.Value))
		default:
			fmt.Fprintf(w, "[+] Added %s = %s for all records\n", c.Name, literal(c.Value))
		}
	}
}

// Records converts added columns into their manifest form.
func Records(added []Column) []types.AddedColumn {
	out := make([]types.AddedColumn, len(added))
	for i, c := range added {
		out[i] = types.AddedColumn{Name: c.Name, Value: literal(c.Value)}
	}
	return out
}

func literal(v types.Value) string {
	switch v.Kind {
	case types.KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case types.KindString:
		return v.Str
	default:
		return ""
	}
}

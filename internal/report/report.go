// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report builds the structural summary of a dataset and renders it
// for the console. Nothing here mutates the dataset.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pdiddy/crm-import/pkg/types"
)

// missingText is how the missing marker appears in the sample table.
const missingText = "NaN"

// Summarize computes row count, column layout, non-missing counts, and the
// first sampleRows rows as display strings.
func Summarize(ds *types.Dataset, sampleRows int) types.Summary {
	s := types.Summary{
		Rows:         ds.Len(),
		Columns:      make([]types.ColumnSummary, len(ds.Columns)),
		SampleHeader: append([]string(nil), ds.Columns...),
	}
	for i, name := range ds.Columns {
		s.Columns[i] = types.ColumnSummary{Name: name, NonNull: ds.NonMissing(name)}
	}

	head := ds.Head(sampleRows)
	s.Sample = make([][]string, len(head))
	for i, row := range head {
		cells := make([]string, len(ds.Columns))
		for j := range ds.Columns {
			v := types.Missing()
			if j < len(row) {
				v = row[j]
			}
			cells[j] = Display(v)
		}
		s.Sample[i] = cells
	}
	return s
}

// Display renders a value for the sample table.
func Display(v types.Value) string {
	switch v.Kind {
	case types.KindString:
		return v.Str
	case types.KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case types.KindBool:
		if v.Bool {
			return "True"
		}
		return "False"
	case types.KindTime:
		if v.Time.Hour() == 0 && v.Time.Minute() == 0 && v.Time.Second() == 0 && v.Time.Nanosecond() == 0 {
			return v.Time.Format("2006-01-02")
		}
		return v.Time.Format("2006-01-02 15:04:05")
	default:
		return missingText
	}
}

// WriteText renders s in the console layout.
func WriteText(w io.Writer, s types.Summary) error {
	var b strings.Builder

	b.WriteString("\n=== FILE STRUCTURE ===\n")
	fmt.Fprintf(&b, "Total records: %d\n", s.Rows)
	fmt.Fprintf(&b, "Columns: %s\n", quoteList(s.ColumnNames()))

	b.WriteString("\n=== COLUMN DETAILS ===\n")
	for _, c := range s.Columns {
		fmt.Fprintf(&b, "  %s: %d non-null values\n", c.Name, c.NonNull)
	}

	fmt.Fprintf(&b, "\n=== SAMPLE DATA (first %d rows) ===\n", len(s.Sample))
	if err := writeTable(&b, s.SampleHeader, s.Sample); err != nil {
		return err
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON renders s as indented JSON.
func WriteJSON(w io.Writer, s types.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// Write renders s in the requested format.
func Write(w io.Writer, s types.Summary, format types.ReportFormat) error {
	switch format {
	case types.ReportText, "":
		return WriteText(w, s)
	case types.ReportJSON:
		return WriteJSON(w, s)
	default:
		return fmt.Errorf("unsupported report format %q: use text or json", format)
	}
}

// writeTable lays out rows right-aligned under header with a leading row
// index column.
func writeTable(w io.Writer, header []string, rows [][]string) error {
	if len(header) == 0 {
		_, err := fmt.Fprintf(w, "Empty dataset\nColumns: []\nIndex: [%s]\n", indexList(len(rows)))
		return err
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintf(w, "Empty dataset\nColumns: %s\nIndex: []\n", quoteList(header))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	line := make([]string, 0, len(header)+1)
	line = append(line, "")
	for _, h := range header {
		line = append(line, cell(h))
	}
	fmt.Fprintln(tw, strings.Join(line, "\t")+"\t")
	for i, row := range rows {
		line = line[:0]
		line = append(line, strconv.Itoa(i))
		for _, c := range row {
			line = append(line, cell(c))
		}
		fmt.Fprintln(tw, strings.Join(line, "\t")+"\t")
	}
	return tw.Flush()
}

// cell flattens characters that would break the table layout.
func cell(s string) string {
	return strings.NewReplacer("\t", " ", "\r\n", "\\n", "\n", "\\n").Replace(s)
}

func quoteList(items []string) string {
	q := make([]string, len(items))
	for i, s := range items {
		q[i] = "'" + s + "'"
	}
	return "[" + strings.Join(q, ", ") + "]"
}

func indexList(n int) string {
	idx := make([]string, n)
	for i := range idx {
		idx[i] = strconv.Itoa(i)
	}
	return strings.Join(idx, ", ")
}

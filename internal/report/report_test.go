// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/crm-import/pkg/types"
)

func dataset(rows int) *types.Dataset {
	ds := &types.Dataset{Columns: []string{"Name", "Amount", "Paid"}}
	for i := 0; i < rows; i++ {
		amount := types.Number(float64(i) * 1.5)
		if i%2 == 1 {
			amount = types.Missing()
		}
		ds.Rows = append(ds.Rows, []types.Value{
			types.String("row" + string(rune('A'+i))),
			amount,
			types.Bool(i%3 == 0),
		})
	}
	return ds
}

func TestSummarize(t *testing.T) {
	ds := dataset(7)
	s := Summarize(ds, 5)

	assert.Equal(t, 7, s.Rows)
	assert.Equal(t, []string{"Name", "Amount", "Paid"}, s.ColumnNames())
	assert.Equal(t, []types.ColumnSummary{
		{Name: "Name", NonNull: 7},
		{Name: "Amount", NonNull: 4},
		{Name: "Paid", NonNull: 7},
	}, s.Columns)
	require.Len(t, s.Sample, 5)
	assert.Equal(t, []string{"rowA", "0", "True"}, s.Sample[0])
	assert.Equal(t, []string{"rowB", "NaN", "False"}, s.Sample[1])
}

func TestSummarize_FewerRowsThanSample(t *testing.T) {
	s := Summarize(dataset(2), 5)
	assert.Len(t, s.Sample, 2)

	empty := Summarize(&types.Dataset{}, 5)
	assert.Equal(t, 0, empty.Rows)
	assert.Empty(t, empty.Sample)
}

func TestSummarize_DoesNotMutate(t *testing.T) {
	ds := dataset(6)
	before := dataset(6)

	first := Summarize(ds, 5)
	second := Summarize(ds, 5)

	assert.Equal(t, before, ds)
	assert.Equal(t, first, second)

	var a, b bytes.Buffer
	require.NoError(t, WriteText(&a, first))
	require.NoError(t, WriteText(&b, second))
	assert.Equal(t, a.String(), b.String())
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		name string
		v    types.Value
		want string
	}{
		{name: "text", v: types.String("Öztürk"), want: "Öztürk"},
		{name: "integral number", v: types.Number(100), want: "100"},
		{name: "fraction", v: types.Number(12.5), want: "12.5"},
		{name: "bool", v: types.Bool(true), want: "True"},
		{name: "date", v: types.Time(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)), want: "2024-03-01"},
		{name: "datetime", v: types.Time(time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)), want: "2024-03-01 09:30:00"},
		{name: "missing", v: types.Missing(), want: "NaN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Display(tt.v))
		})
	}
}

func TestWriteText(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteText(&out, Summarize(dataset(3), 5)))
	text := out.String()

	for _, want := range []string{
		"=== FILE STRUCTURE ===",
		"Total records: 3",
		"Columns: ['Name', 'Amount', 'Paid']",
		"=== COLUMN DETAILS ===",
		"  Amount: 2 non-null values",
		"=== SAMPLE DATA (first 3 rows) ===",
	} {
		assert.Contains(t, text, want)
	}

	// Header plus three rows, each starting with its index after padding.
	table := text[strings.Index(text, "rows) ===\n")+len("rows) ===\n"):]
	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Name")
	assert.True(t, strings.HasPrefix(strings.TrimLeft(lines[1], " "), "0"))
	assert.True(t, strings.HasPrefix(strings.TrimLeft(lines[3], " "), "2"))
	assert.Contains(t, lines[2], "NaN")
}

func TestWriteText_EmptyDataset(t *testing.T) {
	var out bytes.Buffer
	ds := &types.Dataset{Columns: []string{"Name"}}
	require.NoError(t, WriteText(&out, Summarize(ds, 5)))
	assert.Contains(t, out.String(), "Empty dataset")
	assert.Contains(t, out.String(), "Total records: 0")
}

func TestWriteJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Write(&out, Summarize(dataset(2), 5), types.ReportJSON))

	var got types.Summary
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, 2, got.Rows)
	assert.Equal(t, []string{"Name", "Amount", "Paid"}, got.ColumnNames())
	assert.Len(t, got.Sample, 2)
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, types.Summary{}, "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}

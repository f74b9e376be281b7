// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() *Dataset {
	return &Dataset{
		Columns: []string{"Name", "Amount"},
		Rows: [][]Value{
			{String("Ayşe"), Number(10)},
			{String("Mehmet"), Missing()},
			{Missing(), Number(2.5)},
		},
	}
}

func TestDataset_Accessors(t *testing.T) {
	ds := sampleDataset()

	assert.Equal(t, 3, ds.Len())
	assert.True(t, ds.HasColumn("Amount"))
	assert.False(t, ds.HasColumn("amount"), "names match exactly")
	assert.Equal(t, 1, ds.ColumnIndex("Amount"))
	assert.Equal(t, -1, ds.ColumnIndex("Missing"))

	assert.Equal(t, String("Mehmet"), ds.Get(1, "Name"))
	assert.True(t, ds.Get(5, "Name").IsMissing())
	assert.True(t, ds.Get(0, "Nope").IsMissing())

	assert.Equal(t, 2, ds.NonMissing("Name"))
	assert.Equal(t, 2, ds.NonMissing("Amount"))
	assert.Equal(t, 0, ds.NonMissing("Nope"))
	assert.Nil(t, ds.Column("Nope"))
	assert.Len(t, ds.Column("Amount"), 3)
}

func TestDataset_Head(t *testing.T) {
	ds := sampleDataset()
	tests := []struct {
		n    int
		want int
	}{
		{n: 5, want: 3},
		{n: 2, want: 2},
		{n: 0, want: 0},
		{n: -1, want: 0},
	}
	for _, tt := range tests {
		assert.Len(t, ds.Head(tt.n), tt.want, "Head(%d)", tt.n)
	}
}

func TestDataset_AddConstantColumn(t *testing.T) {
	ds := sampleDataset()
	require.NoError(t, ds.AddConstantColumn("Flag", Bool(true)))

	assert.Equal(t, []string{"Name", "Amount", "Flag"}, ds.Columns)
	for i := range ds.Rows {
		assert.Len(t, ds.Rows[i], 3)
		assert.Equal(t, Bool(true), ds.Get(i, "Flag"))
	}

	err := ds.AddConstantColumn("Name", String("x"))
	require.Error(t, err)
	assert.Equal(t, String("Ayşe"), ds.Get(0, "Name"), "existing column must not change")
}

func TestDataset_AddConstantColumnPadsShortRows(t *testing.T) {
	ds := &Dataset{
		Columns: []string{"A", "B"},
		Rows:    [][]Value{{String("a")}},
	}
	require.NoError(t, ds.AddConstantColumn("C", String("c")))
	assert.Equal(t, []Value{String("a"), Missing(), String("c")}, ds.Rows[0])
}

func TestPathError(t *testing.T) {
	cause := fs.ErrPermission
	err := error(&PathError{Kind: ErrWriteFailure, Op: "write", Path: "out.csv", Err: cause})

	assert.True(t, errors.Is(err, ErrWriteFailure))
	assert.True(t, errors.Is(err, fs.ErrPermission))
	assert.False(t, errors.Is(err, ErrFileNotFound))
	assert.Equal(t, "write: write failure: out.csv: permission denied", err.Error())

	bare := &PathError{Kind: ErrFileNotFound, Path: "in.xlsx"}
	assert.Equal(t, "file not found: in.xlsx", bare.Error())
}

func TestImportConfig_WithDefaults(t *testing.T) {
	cfg := ImportConfig{}.WithDefaults()
	assert.Equal(t, DefaultInput, cfg.Input)
	assert.Equal(t, EncodingUTF8BOM, cfg.CSV.Encoding)
	assert.Equal(t, BoolLiteral, cfg.CSV.BoolStyle)
	assert.Equal(t, DefaultSampleRows, cfg.Report.SampleRows)
	assert.Equal(t, ReportText, cfg.Report.Format)
	assert.Empty(t, cfg.Output, "output is derived later from the input")

	kept := ImportConfig{Input: "a.xlsx", CSV: CSVOptions{Encoding: EncodingUTF8}}.WithDefaults()
	assert.Equal(t, "a.xlsx", kept.Input)
	assert.Equal(t, EncodingUTF8, kept.CSV.Encoding)
}

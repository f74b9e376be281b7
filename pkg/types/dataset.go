// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"
)

// ValueKind identifies which field of a Value is meaningful.
type ValueKind int

const (
	KindMissing ValueKind = iota
	KindString
	KindNumber
	KindBool
	KindTime
)

// String returns the lowercase kind name.
func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	default:
		return "missing"
	}
}

// Value is a single cell. The zero Value is the missing marker.
type Value struct {
	Kind ValueKind
	Str  string
	Num  float64
	Bool bool
	Time time.Time
}

// Missing returns the missing marker.
func Missing() Value { return Value{} }

// String wraps text.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Number wraps a numeric cell.
func Number(f float64) Value { return Value{Kind: KindNumber, Num: f} }

// Bool wraps a boolean cell.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Time wraps a date or datetime cell.
func Time(t time.Time) Value { return Value{Kind: KindTime, Time: t} }

// IsMissing reports whether v is the missing marker.
func (v Value) IsMissing() bool { return v.Kind == KindMissing }

// Dataset is an ordered table of rows. Each row is aligned with Columns:
// Rows[i][j] is the value of column Columns[j] in row i.
type Dataset struct {
	Columns []string
	Rows    [][]Value
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.Rows) }

// ColumnIndex returns the position of name in Columns, or -1.
func (d *Dataset) ColumnIndex(name string) int {
	for i, c := range d.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether a column with exactly this name exists.
func (d *Dataset) HasColumn(name string) bool {
	return d.ColumnIndex(name) >= 0
}

// Get returns the value of column name in row i. Unknown columns and
// short rows yield the missing marker.
func (d *Dataset) Get(i int, name string) Value {
	j := d.ColumnIndex(name)
	if j < 0 || i < 0 || i >= len(d.Rows) || j >= len(d.Rows[i]) {
		return Missing()
	}
	return d.Rows[i][j]
}

// Column returns a copy of every value in column name, in row order.
func (d *Dataset) Column(name string) []Value {
	j := d.ColumnIndex(name)
	if j < 0 {
		return nil
	}
	out := make([]Value, len(d.Rows))
	for i, row := range d.Rows {
		if j < len(row) {
			out[i] = row[j]
		}
	}
	return out
}

// NonMissing counts the rows where column name holds a value.
func (d *Dataset) NonMissing(name string) int {
	n := 0
	for _, v := range d.Column(name) {
		if !v.IsMissing() {
			n++
		}
	}
	return n
}

// Head returns at most n leading rows. The slice shares storage with d.
func (d *Dataset) Head(n int) [][]Value {
	if n < 0 {
		n = 0
	}
	if n > len(d.Rows) {
		n = len(d.Rows)
	}
	return d.Rows[:n]
}

// AddConstantColumn appends a column holding v in every row. It refuses
// to touch an existing column of the same name.
func (d *Dataset) AddConstantColumn(name string, v Value) error {
	if d.HasColumn(name) {
		return fmt.Errorf("column %q already exists", name)
	}
	d.Columns = append(d.Columns, name)
	width := len(d.Columns)
	for i, row := range d.Rows {
		for len(row) < width-1 {
			row = append(row, Missing())
		}
		d.Rows[i] = append(row, v)
	}
	return nil
}

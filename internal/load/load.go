// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package load reads the first sheet of a workbook into a Dataset.
//
// Row 1 is the header. Cells keep the workbook's own typing: numbers stay
// numeric, booleans stay boolean, date-formatted numbers become times,
// text stays text, and empty or error cells become the missing marker.
package load

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/crm-import/pkg/types"
)

// Workbook loads path and returns the first sheet as a Dataset.
func Workbook(path string) (*types.Dataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &types.PathError{Kind: types.ErrFileNotFound, Op: "load", Path: path}
		}
		return nil, &types.PathError{Kind: types.ErrMalformedInput, Op: "load", Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &types.PathError{Kind: types.ErrFileNotFound, Op: "load", Path: path, Err: errors.New("is a directory")}
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &types.PathError{Kind: types.ErrMalformedInput, Op: "load", Path: path, Err: err}
	}
	defer f.Close()

	ds, err := readSheet(f)
	if err != nil {
		return nil, &types.PathError{Kind: types.ErrMalformedInput, Op: "load", Path: path, Err: err}
	}
	return ds, nil
}

// readSheet converts the first sheet of f.
func readSheet(f *excelize.File) (*types.Dataset, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	sheet := sheets[0]

	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(raw) == 0 {
		return &types.Dataset{}, nil
	}

	width := 0
	for _, r := range raw {
		if len(r) > width {
			width = len(r)
		}
	}

	header := raw[0]
	names := make([]string, width)
	for j := 0; j < width; j++ {
		var cell string
		if j < len(header) {
			cell = header[j]
		}
		if strings.TrimSpace(cell) == "" {
			cell = "Unnamed: " + strconv.Itoa(j)
		}
		names[j] = cell
	}

	c := &cellReader{f: f, sheet: sheet, styles: map[int]bool{}}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		c.date1904 = *props.Date1904
	}
	rows := make([][]types.Value, 0, len(raw)-1)
	for i, r := range raw[1:] {
		row := make([]types.Value, width)
		for j, s := range r {
			// Sheet coordinates are 1-based and the header occupies row 1.
			v, err := c.value(j+1, i+2, s)
			if err != nil {
				return nil, err
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	return &types.Dataset{Columns: dedupe(names), Rows: rows}, nil
}

// dedupe renames repeated column names to name.1, name.2, and so on,
// skipping any suffix already taken by another column.
func dedupe(names []string) []string {
	taken := make(map[string]bool, len(names))
	for _, n := range names {
		taken[n] = true
	}
	used := make(map[string]bool, len(names))
	counts := make(map[string]int, len(names))
	out := make([]string, len(names))
	for i, n := range names {
		if !used[n] {
			used[n] = true
			out[i] = n
			continue
		}
		k := counts[n]
		var cand string
		for {
			k++
			cand = n + "." + strconv.Itoa(k)
			if !used[cand] && !taken[cand] {
				break
			}
		}
		counts[n] = k
		used[cand] = true
		out[i] = cand
	}
	return out
}

// cellReader resolves the typed value of individual cells, caching
// whether a style id carries a date number format.
type cellReader struct {
	f        *excelize.File
	sheet    string
	date1904 bool
	styles   map[int]bool
}

func (c *cellReader) value(col, row int, raw string) (types.Value, error) {
	if raw == "" {
		return types.Missing(), nil
	}
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return types.Missing(), err
	}
	kind, err := c.f.GetCellType(c.sheet, axis)
	if err != nil {
		return types.Missing(), fmt.Errorf("cell %s: %w", axis, err)
	}

	switch kind {
	case excelize.CellTypeError:
		return types.Missing(), nil
	case excelize.CellTypeBool:
		return types.Bool(raw == "1" || strings.EqualFold(raw, "true")), nil
	case excelize.CellTypeDate:
		if t, ok := parseISO(raw); ok {
			return types.Time(t), nil
		}
		return types.String(raw), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return types.String(raw), nil
	}

	// Number or untyped: the common encoding for numeric cells.
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return types.String(raw), nil
	}
	isDate, err := c.dateStyled(axis)
	if err != nil {
		return types.Missing(), err
	}
	if isDate {
		t, err := excelize.ExcelDateToTime(n, c.date1904)
		if err == nil {
			return types.Time(t), nil
		}
	}
	return types.Number(n), nil
}

func (c *cellReader) dateStyled(axis string) (bool, error) {
	id, err := c.f.GetCellStyle(c.sheet, axis)
	if err != nil {
		return false, fmt.Errorf("cell %s style: %w", axis, err)
	}
	if id == 0 {
		return false, nil
	}
	if d, ok := c.styles[id]; ok {
		return d, nil
	}
	style, err := c.f.GetStyle(id)
	if err != nil {
		return false, fmt.Errorf("style %d: %w", id, err)
	}
	d := isDateFormat(style)
	c.styles[id] = d
	return d, nil
}

// isDateFormat reports whether style formats numbers as dates or times.
// Built-in ids 14-22 and 45-47 are the date and time formats; custom
// formats are recognized by their y/m/d/h/s tokens outside quoted text.
func isDateFormat(style *excelize.Style) bool {
	if style == nil {
		return false
	}
	if style.CustomNumFmt != nil {
		return customIsDate(*style.CustomNumFmt)
	}
	switch n := style.NumFmt; {
	case n >= 14 && n <= 22, n >= 45 && n <= 47:
		return true
	}
	return false
}

func customIsDate(format string) bool {
	inQuote, inBracket := false, false
	for i := 0; i < len(format); i++ {
		ch := format[i]
		switch {
		case ch == '"':
			inQuote = !inQuote
		case inQuote:
		case ch == '\\':
			i++
		case ch == '[':
			inBracket = true
		case ch == ']':
			inBracket = false
		case inBracket:
		default:
			switch ch {
			case 'y', 'Y', 'm', 'M', 'd', 'D', 'h', 'H', 's', 'S':
				return true
			}
		}
	}
	return false
}

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseISO(s string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ColumnSummary holds the per-column figures of a structural report.
type ColumnSummary struct {
	Name    string `json:"name" yaml:"name"`
	NonNull int    `json:"non_null" yaml:"non_null"`
}

// Summary is the structural report of a dataset: size, column layout,
// per-column fill counts, and a rendered sample of the leading rows.
type Summary struct {
	Rows    int             `json:"rows" yaml:"rows"`
	Columns []ColumnSummary `json:"columns" yaml:"columns"`

	// SampleHeader and Sample hold the first rows as display strings.
	SampleHeader []string   `json:"sample_header" yaml:"sample_header"`
	Sample       [][]string `json:"sample" yaml:"sample"`
}

// ColumnNames returns the column names in order.
func (s Summary) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// AddedColumn records a column appended by the annotator.
type AddedColumn struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

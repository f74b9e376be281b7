package types

// Encoding names the text encoding of the written CSV.
type Encoding string

const (
	// EncodingUTF8BOM is UTF-8 with a leading byte-order mark, the form the
	// CRM importer detects reliably.
	EncodingUTF8BOM     Encoding = "utf-8-sig"
	EncodingUTF8        Encoding = "utf-8"
	EncodingWindows1254 Encoding = "windows-1254"
	EncodingISO88599    Encoding = "iso-8859-9"
)

// BoolStyle selects how boolean cells are spelled in the CSV.
type BoolStyle string

const (
	// BoolLiteral writes true/false.
	BoolLiteral BoolStyle = "literal"

	// BoolPython writes True/False, the spelling in earlier CRM import
	// files.
	BoolPython BoolStyle = "python"
)

// ReportFormat selects the rendering of the structural report.
type ReportFormat string

const (
	ReportText ReportFormat = "text"
	ReportJSON ReportFormat = "json"
)

// DefaultInput is the workbook converted when no input path is given.
const DefaultInput = "Trideck_45M_REBASE_IMPORT.xlsx"

// DefaultSampleRows is the number of leading rows shown in the report.
const DefaultSampleRows = 5

// CSVOptions controls CSV serialization.
type CSVOptions struct {
	// Encoding is the output text encoding (default utf-8-sig).
	Encoding Encoding `json:"encoding" yaml:"encoding"`

	// BoolStyle selects the spelling of booleans (default literal).
	BoolStyle BoolStyle `json:"bool_style" yaml:"bool_style"`
}

// ReportConfig controls the structural report.
type ReportConfig struct {
	// SampleRows is how many leading rows to render (default 5).
	SampleRows int `json:"sample_rows" yaml:"sample_rows"`

	// Format is text or json (default text).
	Format ReportFormat `json:"format" yaml:"format"`
}

// ImportConfig holds everything one conversion run needs.
type ImportConfig struct {
	// Input is the workbook path. Empty means DefaultInput.
	Input string `json:"input" yaml:"input"`

	// Output is the CSV path. Empty means derived from Input.
	Output string `json:"output" yaml:"output"`

	CSV    CSVOptions   `json:"csv" yaml:"csv"`
	Report ReportConfig `json:"report" yaml:"report"`

	// Manifest, when set, is where a YAML or JSON run record is written.
	Manifest string `json:"manifest,omitempty" yaml:"manifest,omitempty"`

	// Verify re-reads the written CSV and compares it with the dataset.
	Verify bool `json:"verify" yaml:"verify"`
}

// WithDefaults returns a copy of c with empty fields filled in.
func (c ImportConfig) WithDefaults() ImportConfig {
	if c.Input == "" {
		c.Input = DefaultInput
	}
	if c.CSV.Encoding == "" {
		c.CSV.Encoding = EncodingUTF8BOM
	}
	if c.CSV.BoolStyle == "" {
		c.CSV.BoolStyle = BoolLiteral
	}
	if c.Report.SampleRows <= 0 {
		c.Report.SampleRows = DefaultSampleRows
	}
	if c.Report.Format == "" {
		c.Report.Format = ReportText
	}
	return c
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package importer drives one conversion run: load, report, annotate,
// write. Each stage completes before the next starts and the first error
// ends the run.
package importer

import (
	"fmt"
	"io"

	"github.com/pdiddy/crm-import/internal/annotate"
	"github.com/pdiddy/crm-import/internal/csvout"
	"github.com/pdiddy/crm-import/internal/load"
	"github.com/pdiddy/crm-import/internal/manifest"
	"github.com/pdiddy/crm-import/internal/report"
	"github.com/pdiddy/crm-import/pkg/types"
)

// Result holds the outcome of a completed run.
type Result struct {
	Dataset *types.Dataset
	Output  string
	Summary types.Summary
	Added   []annotate.Column
}

// Run converts cfg.Input into an annotated CSV, writing progress and the
// structural report to w.
func Run(cfg types.ImportConfig, w io.Writer) (*Result, error) {
	cfg = cfg.WithDefaults()
	output := cfg.Output
	if output == "" {
		output = csvout.DefaultOutputPath(cfg.Input)
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}

	fmt.Fprintf(w, "Reading: %s\n", cfg.Input)
	ds, err := load.Workbook(cfg.Input)
	if err != nil {
		return nil, err
	}

	summary := report.Summarize(ds, cfg.Report.SampleRows)
	if err := report.Write(w, summary, cfg.Report.Format); err != nil {
		return nil, err
	}

	fmt.Fprintln(w)
	added := annotate.Apply(ds)
	annotate.Notify(w, added, ds.Len())

	if err := csvout.Write(output, ds, cfg.CSV); err != nil {
		return nil, err
	}
	if cfg.Verify {
		if err := csvout.Verify(output, ds, cfg.CSV); err != nil {
			return nil, err
		}
	}

	if cfg.Manifest != "" {
		m := manifest.New()
		m.Input = cfg.Input
		m.Output = output
		m.Encoding = cfg.CSV.Encoding
		m.BoolStyle = cfg.CSV.BoolStyle
		m.Verified = cfg.Verify
		m.Added = annotate.Records(added)
		m.Summary = summary
		if err := manifest.Write(cfg.Manifest, m); err != nil {
			return nil, err
		}
	}

	fmt.Fprintf(w, "\n=== OUTPUT ===\n")
	fmt.Fprintf(w, "Exported to: %s\n", output)
	if cfg.Verify {
		fmt.Fprintf(w, "Verified: %d records, %d columns\n", ds.Len(), len(ds.Columns))
	}
	fmt.Fprintln(w, "Ready for CRM import with manual review workflow")

	return &Result{Dataset: ds, Output: output, Summary: summary, Added: added}, nil
}

// Inspect loads cfg.Input and writes only the structural report.
func Inspect(cfg types.ImportConfig, w io.Writer) (types.Summary, error) {
	cfg = cfg.WithDefaults()
	if err := validate(cfg); err != nil {
		return types.Summary{}, err
	}
	ds, err := load.Workbook(cfg.Input)
	if err != nil {
		return types.Summary{}, err
	}
	summary := report.Summarize(ds, cfg.Report.SampleRows)
	if err := report.Write(w, summary, cfg.Report.Format); err != nil {
		return types.Summary{}, err
	}
	return summary, nil
}

// validate rejects option values before any file is touched.
func validate(cfg types.ImportConfig) error {
	if _, err := csvout.Encoding(cfg.CSV.Encoding); err != nil {
		return err
	}
	switch cfg.CSV.BoolStyle {
	case types.BoolLiteral, types.BoolPython:
	default:
		return fmt.Errorf("unsupported bool style %q: use literal or python", cfg.CSV.BoolStyle)
	}
	switch cfg.Report.Format {
	case types.ReportText, types.ReportJSON:
	default:
		return fmt.Errorf("unsupported report format %q: use text or json", cfg.Report.Format)
	}
	return nil
}

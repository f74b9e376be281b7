package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/crm-import/internal/importer"
)

var reportCmd = &cobra.Command{
	Use:   "report [input.xlsx]",
	Short: "Print the structure of a workbook without writing a CSV",
	Long: `Report loads the first sheet of the workbook and prints the record
count, column names, non-null counts per column, and a sample of the
leading rows. Nothing is written. Use --report-format json for a
machine-readable summary.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := importer.Inspect(importConfig(args), cmd.OutOrStdout())
		return err
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

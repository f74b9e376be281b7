// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the crm-import CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/crm-import/internal/importer"
	"github.com/pdiddy/crm-import/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd converts one workbook into a CRM-ready CSV.
var rootCmd = &cobra.Command{
	Use:   "crm-import [input.xlsx]",
	Short: "Prepare a spreadsheet import for manual CRM review",
	Long: `crm-import reads the first sheet of a workbook, prints its structure,
and writes a CSV for the CRM importer with three review columns appended:

  CRM_STATUS           CONDITIONAL
  CRM_REVIEW_REQUIRED  true
  HAK_EDIS_AUTO_INFER  false

Columns that already exist are left untouched. Hak ediş values are never
inferred. Without an argument the default workbook
` + types.DefaultInput + ` in the current directory is used.

The output defaults to <input>_CRM_READY.csv, UTF-8 with a byte-order mark.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := importer.Run(importConfig(args), cmd.OutOrStdout())
		return err
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "YAML config file (read only when given)")
	rootCmd.PersistentFlags().Int("sample-rows", types.DefaultSampleRows, "number of leading rows shown in the report")
	rootCmd.PersistentFlags().String("report-format", string(types.ReportText), "report format: text or json")

	rootCmd.Flags().StringP("output", "o", "", "output CSV path (default: <input>_CRM_READY.csv)")
	rootCmd.Flags().String("encoding", string(types.EncodingUTF8BOM), "output encoding: utf-8-sig, utf-8, windows-1254, or iso-8859-9")
	rootCmd.Flags().String("bool-style", string(types.BoolLiteral), "boolean spelling: literal (true/false) or python (True/False)")
	rootCmd.Flags().String("manifest", "", "write a YAML (or .json) run manifest to this path")
	rootCmd.Flags().Bool("verify", false, "re-read the written CSV and compare it with the dataset")

	viper.SetDefault("input", types.DefaultInput)
	bindFlag("report.sample_rows", rootCmd.PersistentFlags().Lookup("sample-rows"))
	bindFlag("report.format", rootCmd.PersistentFlags().Lookup("report-format"))
	bindFlag("output", rootCmd.Flags().Lookup("output"))
	bindFlag("csv.encoding", rootCmd.Flags().Lookup("encoding"))
	bindFlag("csv.bool_style", rootCmd.Flags().Lookup("bool-style"))
	bindFlag("manifest", rootCmd.Flags().Lookup("manifest"))
	bindFlag("verify", rootCmd.Flags().Lookup("verify"))
}

// initConfig reads the config file named by --config. No search path and
// no environment variables are consulted.
func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile == "" {
		return
	}
	viper.SetConfigFile(cfgFile)
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not read config %s: %v\n", cfgFile, err)
		return
	}
	fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
}

// importConfig assembles the run configuration from flags, the optional
// config file, and the positional input path.
func importConfig(args []string) types.ImportConfig {
	input := viper.GetString("input")
	if len(args) > 0 {
		input = args[0]
	}
	return types.ImportConfig{
		Input:  input,
		Output: viper.GetString("output"),
		CSV: types.CSVOptions{
			Encoding:  types.Encoding(viper.GetString("csv.encoding")),
			BoolStyle: types.BoolStyle(viper.GetString("csv.bool_style")),
		},
		Report: types.ReportConfig{
			SampleRows: viper.GetInt("report.sample_rows"),
			Format:     types.ReportFormat(viper.GetString("report.format")),
		},
		Manifest: viper.GetString("manifest"),
		Verify:   viper.GetBool("verify"),
	}
}

func bindFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// errorMessage renders err for the terminal.
func errorMessage(err error) string {
	var pe *types.PathError
	if errors.As(err, &pe) && errors.Is(err, types.ErrFileNotFound) {
		return "Error: File not found: " + pe.Path
	}
	return "Error: " + err.Error()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		os.Exit(1)
	}
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/research-data-tools/depositcsv/validate"
)

var (
	validateInput string
	validateJSON  bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check CSV rows without converting",
	Long: `Check CSV rows against the property catalog and report findings:
missing required or recommended fields, unknown columns, and values
that do not follow the field conventions.

Findings are advisory. The command always exits 0; nothing here blocks
a later convert or upload.

Examples:
  depositcsv validate -i items.csv
  depositcsv validate -i items.csv --json`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "Input CSV file (default: stdin)")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Emit the report as JSON")
}

func runValidate(cmd *cobra.Command, args []string) error {
	rows, name, err := readRows(validateInput)
	if err != nil {
		return err
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	report := validate.Rows(rows, cat, validate.DefaultOptions())

	if validateJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Printf("Checked %d rows from %s\n", len(rows), name)
	if len(report.Findings) == 0 {
		fmt.Println("No findings.")
		return nil
	}

	for _, f := range report.Findings {
		fmt.Printf("  row %d  %-7s %-12s %s\n", f.Row, f.Severity, f.Field, f.Message)
	}
	if len(report.MissingRequired) > 0 {
		fmt.Printf("Missing required fields: %v\n", report.MissingRequired)
	}
	if len(report.MissingRecommended) > 0 {
		fmt.Printf("Missing recommended fields: %v\n", report.MissingRecommended)
	}
	if len(report.UnknownFields) > 0 {
		fmt.Printf("Unknown columns (skipped at conversion): %v\n", report.UnknownFields)
	}
	return nil
}

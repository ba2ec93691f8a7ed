package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/research-data-tools/depositcsv/csvio"
	"github.com/research-data-tools/depositcsv/deposit"
	"github.com/research-data-tools/depositcsv/meta"
)

var (
	inputFile   string
	outputFile  string
	pretty      bool
	stripHTML   bool
	collections bool
	delimiter   string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert CSV rows to deposit metadata",
	Long: `Convert CSV rows into the JSON payloads the deposit API expects,
one object per row, each carrying its "metas" list.

Input defaults to stdin, output defaults to stdout.

Examples:
  depositcsv convert -i items.csv --pretty
  cat items.csv | depositcsv convert > payloads.json
  depositcsv convert -i collections.csv --collections`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input CSV file (default: stdin)")
	convertCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	convertCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	convertCmd.Flags().BoolVar(&stripHTML, "strip-html", false, "Strip HTML from description values")
	convertCmd.Flags().BoolVar(&collections, "collections", false, "Treat rows as collections instead of data items")
	convertCmd.Flags().StringVar(&delimiter, "delimiter", ",", "CSV field delimiter")
}

func runConvert(cmd *cobra.Command, args []string) (err error) {
	rows, _, err := readRows(inputFile)
	if err != nil {
		return err
	}

	var output io.Writer
	if outputFile != "" {
		f, createErr := os.Create(outputFile)
		if createErr != nil {
			return fmt.Errorf("creating output file: %w", createErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", cerr)
			}
		}()
		output = f
	} else {
		output = os.Stdout
	}

	resources, err := prepareResources(rows)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(output)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(resources); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Converted %d rows\n", len(rows))
	return nil
}

// readRows reads the input CSV from a file or stdin and returns the
// rows plus a name for reports and the journal.
func readRows(path string) ([]*meta.Row, string, error) {
	opts := &csvio.Options{StripHTML: stripHTML}
	if len(delimiter) > 0 {
		opts.Comma = rune(delimiter[0])
	}

	if path != "" {
		rows, err := csvio.ReadFile(path, opts)
		return rows, path, err
	}
	rows, err := csvio.Read(os.Stdin, opts)
	return rows, "stdin", err
}

func prepareResources(rows []*meta.Row) ([]*deposit.Resource, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	assembler := meta.NewAssembler(cat)

	kind := deposit.KindData
	if collections {
		kind = deposit.KindCollection
	}

	resources := make([]*deposit.Resource, 0, len(rows))
	for i, row := range rows {
		res, err := deposit.Prepare(row, assembler, cat, kind)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		resources = append(resources, res)
	}
	return resources, nil
}

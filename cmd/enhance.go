package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/research-data-tools/depositcsv/enhance"
)

var (
	enhanceInput string
	enhanceApply bool
	enhanceRows  string
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance",
	Short: "Suggest improved metadata from row content",
	Long: `Classify each row's text against content-type keyword sets and
suggest improved title, description and keywords with a confidence
score. Suggestions are printed as JSON.

With --apply, the selected suggestions (all by default, or --rows) are
merged into the rows and the updated rows are printed instead.

Examples:
  depositcsv enhance -i items.csv
  depositcsv enhance -i items.csv --apply
  depositcsv enhance -i items.csv --apply --rows 0,2`,
	RunE: runEnhance,
}

func init() {
	enhanceCmd.Flags().StringVarP(&enhanceInput, "input", "i", "", "Input CSV file (default: stdin)")
	enhanceCmd.Flags().BoolVar(&enhanceApply, "apply", false, "Merge suggestions into the rows and print the rows")
	enhanceCmd.Flags().StringVar(&enhanceRows, "rows", "", "Comma-separated row indices to apply (default: all suggested)")
}

func runEnhance(cmd *cobra.Command, args []string) error {
	rows, _, err := readRows(enhanceInput)
	if err != nil {
		return err
	}

	suggestions := enhance.Suggest(rows)
	fmt.Fprintf(os.Stderr, "%d of %d rows matched a content type\n", len(suggestions), len(rows))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if !enhanceApply {
		return enc.Encode(suggestions)
	}

	selected, err := selectedIndices(suggestions)
	if err != nil {
		return err
	}
	merged := enhance.Apply(rows, suggestions, selected)
	return enc.Encode(merged)
}

// selectedIndices parses --rows, defaulting to every suggested row.
func selectedIndices(suggestions []enhance.Suggestion) ([]int, error) {
	if enhanceRows == "" {
		indices := make([]int, 0, len(suggestions))
		for _, s := range suggestions {
			indices = append(indices, s.RowIndex)
		}
		return indices, nil
	}

	var indices []int
	for _, part := range strings.Split(enhanceRows, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid row index %q", part)
		}
		indices = append(indices, n)
	}
	return indices, nil
}

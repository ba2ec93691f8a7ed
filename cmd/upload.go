package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/research-data-tools/depositcsv/deposit"
	"github.com/research-data-tools/depositcsv/journal"
	"github.com/research-data-tools/depositcsv/validate"
)

var (
	uploadInput   string
	apiURL        string
	apiKey        string
	dryRun        bool
	journalPath   string
	skipDeposited bool
)

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Convert CSV rows and submit them to the deposit API",
	Long: `Convert each CSV row to a deposit resource and submit it. Outcomes
are recorded in a local journal; rows that already have a created
resource are skipped on re-runs.

The API key comes from --api-key or the DEPOSIT_API_KEY environment
variable. Failed submissions are reported and journaled, marked
retryable or not; this command never retries on its own.

Examples:
  depositcsv upload -i items.csv --api-url https://api.example.org
  depositcsv upload -i items.csv --api-url https://api.example.org --dry-run
  depositcsv upload -i collections.csv --collections --api-url https://api.example.org`,
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().StringVarP(&uploadInput, "input", "i", "", "Input CSV file (default: stdin)")
	uploadCmd.Flags().StringVar(&apiURL, "api-url", "", "Deposit API base URL")
	uploadCmd.Flags().StringVar(&apiKey, "api-key", "", "API key (default: DEPOSIT_API_KEY env)")
	uploadCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Prepare everything but do not submit")
	uploadCmd.Flags().StringVar(&journalPath, "journal", "deposit-journal.db", "Journal database file")
	uploadCmd.Flags().BoolVar(&skipDeposited, "skip-deposited", true, "Skip rows the journal marks as created")
	uploadCmd.Flags().BoolVar(&collections, "collections", false, "Treat rows as collections instead of data items")
	uploadCmd.Flags().BoolVar(&stripHTML, "strip-html", false, "Strip HTML from description values")
}

func runUpload(cmd *cobra.Command, args []string) error {
	if !dryRun && apiURL == "" {
		return fmt.Errorf("--api-url is required unless --dry-run is set")
	}
	if apiKey == "" {
		apiKey = os.Getenv("DEPOSIT_API_KEY")
	}

	var transport deposit.Transport
	if !dryRun {
		transport = deposit.NewClient(apiURL, apiKey)
	}

	return uploadFile(cmd.Context(), uploadInput, transport)
}

// uploadFile runs the full pipeline for one CSV: read, report
// findings, prepare, submit, journal. A nil transport means dry run.
func uploadFile(ctx context.Context, path string, transport deposit.Transport) error {
	rows, source, err := readRows(path)
	if err != nil {
		return err
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	report := validate.Rows(rows, cat, validate.DefaultOptions())
	for _, f := range report.Findings {
		fmt.Fprintf(os.Stderr, "  row %d  %-7s %-12s %s\n", f.Row, f.Severity, f.Field, f.Message)
	}

	resources, err := prepareResources(rows)
	if err != nil {
		return err
	}

	jnl, err := journal.Open(journalPath)
	if err != nil {
		return err
	}
	defer jnl.Close()

	created, failed, skipped := 0, 0, 0
	for i, res := range resources {
		if skipDeposited {
			done, err := jnl.Deposited(source, i)
			if err != nil {
				return err
			}
			if done {
				skipped++
				continue
			}
		}

		if transport == nil {
			fmt.Fprintf(os.Stderr, "dry run: row %d prepared with %d metas\n", i+1, len(res.Metas))
			continue
		}

		id, err := transport.Submit(ctx, res)
		rec := journal.Record{Source: source, RowIndex: i}
		if err != nil {
			failed++
			rec.Status = journal.StatusFailed
			rec.Message = err.Error()
			retry := ""
			if deposit.IsRetryable(err) {
				retry = " (retryable)"
			}
			fmt.Fprintf(os.Stderr, "row %d: %v%s\n", i+1, err, retry)
		} else {
			created++
			rec.Status = journal.StatusCreated
			rec.ResourceID = id
			fmt.Printf("row %d -> %s\n", i+1, id)
		}
		if err := jnl.Write(rec); err != nil {
			return fmt.Errorf("journaling row %d: %w", i+1, err)
		}
	}

	fmt.Fprintf(os.Stderr, "Done: %d created, %d failed, %d skipped\n", created, failed, skipped)
	return nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/research-data-tools/depositcsv/deposit"
	"github.com/research-data-tools/depositcsv/watch"
)

var watchDir string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a directory and upload dropped CSV files",
	Long: `Watch a directory for new or updated CSV files and run the upload
pipeline on each. Runs until interrupted.

The journal keeps re-written files from re-depositing rows that
already succeeded.

Examples:
  depositcsv watch --dir ./drop --api-url https://api.example.org
  depositcsv watch --dir ./drop --dry-run`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchDir, "dir", ".", "Directory to watch")
	watchCmd.Flags().StringVar(&apiURL, "api-url", "", "Deposit API base URL")
	watchCmd.Flags().StringVar(&apiKey, "api-key", "", "API key (default: DEPOSIT_API_KEY env)")
	watchCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Prepare everything but do not submit")
	watchCmd.Flags().StringVar(&journalPath, "journal", "deposit-journal.db", "Journal database file")
}

func runWatch(cmd *cobra.Command, args []string) error {
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

	w, err := watch.New()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer w.Close()

	ctx := cmd.Context()
	paths, err := w.Watch(ctx, watchDir)
	if err != nil {
		return fmt.Errorf("watching %s: %w", watchDir, err)
	}

	fmt.Fprintf(os.Stderr, "Watching %s for CSV files\n", watchDir)
	for path := range paths {
		fmt.Fprintf(os.Stderr, "Processing %s\n", path)
		if err := uploadFile(ctx, path, transport); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		}
	}
	return nil
}

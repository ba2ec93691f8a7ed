package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the fields the active catalog understands",
	Long: `List every CSV column the active property catalog maps, with its
property URI and how its value is interpreted. Columns not listed here
are skipped at conversion (and reported by validate).

Examples:
  depositcsv fields
  depositcsv fields --catalog my-project.yaml`,
	RunE: runFields,
}

func runFields(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	for _, name := range cat.Fields() {
		d, _ := cat.Lookup(name)
		flags := ""
		if d.Multilingual {
			flags += " multilingual"
		}
		if d.MultiValued {
			flags += " multivalued"
		}
		fmt.Printf("%-14s %-6s%-26s %s\n", name, d.Kind, flags, d.Property)
	}
	return nil
}

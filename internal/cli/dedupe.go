package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dedupeCmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Remove near-duplicate memories",
	Long: `Collapse memories whose normalized content signatures match, keeping
the first occurrence of each. This is the same pass the daemon janitor runs on
its schedule.`,
	RunE: runDedupe,
}

func init() {
	rootCmd.AddCommand(dedupeCmd)
}

func runDedupe(cmd *cobra.Command, args []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.close()

	removed, remaining := a.store.Deduplicate(cmd.Context())
	fmt.Printf("Removed %d duplicates, %d memories remain\n", removed, remaining)
	return nil
}

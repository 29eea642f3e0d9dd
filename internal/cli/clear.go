package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every memory",
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "confirm deletion")
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	if !clearYes {
		return fmt.Errorf("refusing to clear without --yes")
	}

	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.close()

	count := a.store.Len(cmd.Context())
	a.store.ClearAll(cmd.Context())
	fmt.Printf("Cleared %d memories\n", count)
	return nil
}
